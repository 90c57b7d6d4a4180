package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"repairflow/internal/domain/entities"
	"repairflow/internal/domain/errs"
	"repairflow/internal/domain/workflow"
	"repairflow/internal/infrastructure/metrics"
	"repairflow/internal/infrastructure/tracing"
	"repairflow/internal/usecase/interfaces"

	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

const defaultPublishTimeout = 10 * time.Second

var (
	ErrReportNotFound      = errors.New("technician report not found")
	ErrReportAlreadyExists = fmt.Errorf("%w: order already has a technician report", errs.ErrAlreadyExists)
	ErrInvalidReportID     = fmt.Errorf("%w: invalid report id", errs.ErrInvalidState)
)

// DraftReportInput carries the fields a technician fills in when opening a report.
type DraftReportInput struct {
	OrderID       string
	Diagnosis     string
	ActionPlan    string
	EstimatedCost *float64
	EstimatedTime string
}

// DraftReportPatch is a partial update; nil fields are left as they are.
type DraftReportPatch struct {
	Diagnosis     *string
	ActionPlan    *string
	EstimatedCost *float64
	EstimatedTime *string
}

// IReportWorkflowUseCase drives technician reports through their lifecycle.
type IReportWorkflowUseCase interface {
	CreateDraftReport(ctx context.Context, technicianID string, in DraftReportInput) (entities.TechnicianReport, error)
	UpdateDraftReport(ctx context.Context, reportID, technicianID string, patch DraftReportPatch) (entities.TechnicianReport, error)
	DeleteDraftReport(ctx context.Context, reportID, technicianID string) error
	GetReport(ctx context.Context, reportID string, role entities.Role, callerID string) (entities.TechnicianReport, error)

	Submit(ctx context.Context, reportID, technicianID string) (entities.TechnicianReport, error)
	Approve(ctx context.Context, reportID, customerID string) (entities.TechnicianReport, error)
	Reject(ctx context.Context, reportID, customerID string) (entities.TechnicianReport, error)
	StartWork(ctx context.Context, reportID, technicianID string) (entities.TechnicianReport, error)
	Complete(ctx context.Context, reportID, technicianID string) (entities.TechnicianReport, error)
}

type ReportWorkflowUseCase struct {
	reports   interfaces.ITechnicianReportRepository
	orders    interfaces.IRepairOrderRepository
	publisher interfaces.ICompletionPublisher
	now       func() time.Time

	publishTimeout time.Duration
}

var _ IReportWorkflowUseCase = (*ReportWorkflowUseCase)(nil)

// NewReportWorkflowUseCase wires the report workflow. publisher may be nil, in
// which case completions are only logged.
func NewReportWorkflowUseCase(reports interfaces.ITechnicianReportRepository, orders interfaces.IRepairOrderRepository, publisher interfaces.ICompletionPublisher) *ReportWorkflowUseCase {
	return &ReportWorkflowUseCase{
		reports:        reports,
		orders:         orders,
		publisher:      publisher,
		now:            time.Now,
		publishTimeout: defaultPublishTimeout,
	}
}

func (u *ReportWorkflowUseCase) CreateDraftReport(ctx context.Context, technicianID string, in DraftReportInput) (entities.TechnicianReport, error) {
	technicianID = strings.TrimSpace(technicianID)
	orderID := strings.TrimSpace(in.OrderID)
	if orderID == "" {
		return entities.TechnicianReport{}, ErrInvalidOrderID
	}
	log := zap.L().With(zap.String("order_id", orderID), zap.String("technician_id", technicianID))

	order, err := loadOrder(ctx, u.orders, orderID)
	if err != nil {
		return entities.TechnicianReport{}, err
	}
	if technicianID == "" || technicianID != order.TechnicianID {
		metrics.AccessDeniedTotal.WithLabelValues("create_draft").Inc()
		return entities.TechnicianReport{}, errs.IllegalAccess("technician %s is not assigned to order %s", technicianID, orderID)
	}
	if order.Status != entities.RepairOrderStatusPendingConfirmation {
		return entities.TechnicianReport{}, errs.InvalidState("order %s is %s, reports can only be opened on %s orders",
			orderID, order.Status, entities.RepairOrderStatusPendingConfirmation)
	}

	existing, err := u.reports.GetByOrderID(ctx, orderID)
	if err != nil {
		return entities.TechnicianReport{}, errs.NewDatabaseError("get report by order", err)
	}
	if existing.ID != "" {
		return entities.TechnicianReport{}, ErrReportAlreadyExists
	}

	// The report takes its order's id; the store refuses a second report for it.
	now := u.now().UTC()
	draft := workflow.NewDraft(entities.TechnicianReport{
		ID:            orderID,
		OrderID:       orderID,
		TechnicianID:  technicianID,
		CustomerID:    order.CustomerID,
		Diagnosis:     strings.TrimSpace(in.Diagnosis),
		ActionPlan:    strings.TrimSpace(in.ActionPlan),
		EstimatedCost: in.EstimatedCost,
		EstimatedTime: strings.TrimSpace(in.EstimatedTime),
		Version:       1,
		CreatedAt:     now,
		LastUpdatedAt: now,
	}, u.now).Report()

	if err := workflow.ValidateDraftFields(draft); err != nil {
		return entities.TechnicianReport{}, err
	}

	created, err := u.reports.Create(ctx, draft)
	if errors.Is(err, errs.ErrAlreadyExists) {
		log.Info("[report][usecase] concurrent draft for order lost the create race")
		return entities.TechnicianReport{}, ErrReportAlreadyExists
	}
	if err != nil {
		return entities.TechnicianReport{}, u.wrapStoreErr("create_draft", "create report", err)
	}
	log.Info("[report][usecase] draft created", zap.String("report_id", created.ID))
	return created, nil
}

func (u *ReportWorkflowUseCase) UpdateDraftReport(ctx context.Context, reportID, technicianID string, patch DraftReportPatch) (entities.TechnicianReport, error) {
	report, err := u.loadAuthorized(ctx, reportID, entities.Caller{Role: entities.RoleTechnician, ID: technicianID}, workflow.OpUpdateDraft)
	if err != nil {
		return entities.TechnicianReport{}, err
	}

	expected := report.Version
	if patch.Diagnosis != nil {
		report.Diagnosis = strings.TrimSpace(*patch.Diagnosis)
	}
	if patch.ActionPlan != nil {
		report.ActionPlan = strings.TrimSpace(*patch.ActionPlan)
	}
	if patch.EstimatedCost != nil {
		cost := *patch.EstimatedCost
		report.EstimatedCost = &cost
	}
	if patch.EstimatedTime != nil {
		report.EstimatedTime = strings.TrimSpace(*patch.EstimatedTime)
	}
	if err := workflow.ValidateDraftFields(report); err != nil {
		return entities.TechnicianReport{}, err
	}
	report.Version = expected + 1
	report.LastUpdatedAt = u.now().UTC()

	updated, err := u.reports.Update(ctx, report, expected)
	if err != nil {
		return entities.TechnicianReport{}, u.wrapStoreErr("update_draft", "update report", err)
	}
	zap.L().Info("[report][usecase] draft updated", zap.String("report_id", updated.ID), zap.Int64("version", updated.Version))
	return updated, nil
}

func (u *ReportWorkflowUseCase) DeleteDraftReport(ctx context.Context, reportID, technicianID string) error {
	report, err := u.loadAuthorized(ctx, reportID, entities.Caller{Role: entities.RoleTechnician, ID: technicianID}, workflow.OpDeleteDraft)
	if err != nil {
		return err
	}
	if err := u.reports.Delete(ctx, report.ID, report.Version); err != nil {
		return u.wrapStoreErr("delete_draft", "delete report", err)
	}
	zap.L().Info("[report][usecase] draft deleted", zap.String("report_id", report.ID))
	return nil
}

func (u *ReportWorkflowUseCase) GetReport(ctx context.Context, reportID string, role entities.Role, callerID string) (entities.TechnicianReport, error) {
	return u.loadAuthorized(ctx, reportID, entities.Caller{Role: role, ID: callerID}, workflow.OpRead)
}

func (u *ReportWorkflowUseCase) Submit(ctx context.Context, reportID, technicianID string) (entities.TechnicianReport, error) {
	return u.transition(ctx, reportID, entities.Caller{Role: entities.RoleTechnician, ID: technicianID}, workflow.ActionSubmit)
}

func (u *ReportWorkflowUseCase) Approve(ctx context.Context, reportID, customerID string) (entities.TechnicianReport, error) {
	return u.transition(ctx, reportID, entities.Caller{Role: entities.RoleCustomer, ID: customerID}, workflow.ActionApprove)
}

func (u *ReportWorkflowUseCase) Reject(ctx context.Context, reportID, customerID string) (entities.TechnicianReport, error) {
	return u.transition(ctx, reportID, entities.Caller{Role: entities.RoleCustomer, ID: customerID}, workflow.ActionReject)
}

func (u *ReportWorkflowUseCase) StartWork(ctx context.Context, reportID, technicianID string) (entities.TechnicianReport, error) {
	return u.transition(ctx, reportID, entities.Caller{Role: entities.RoleTechnician, ID: technicianID}, workflow.ActionStartWork)
}

func (u *ReportWorkflowUseCase) Complete(ctx context.Context, reportID, technicianID string) (entities.TechnicianReport, error) {
	return u.transition(ctx, reportID, entities.Caller{Role: entities.RoleTechnician, ID: technicianID}, workflow.ActionComplete)
}

func (u *ReportWorkflowUseCase) transition(ctx context.Context, reportID string, caller entities.Caller, action workflow.Action) (entities.TechnicianReport, error) {
	ctx, span := tracing.Start(ctx, "report."+action.String(),
		attribute.String("report.id", reportID),
		attribute.String("caller.role", string(caller.Role)),
	)
	report, err := u.runTransition(ctx, reportID, caller, action)
	if err == nil {
		span.SetAttributes(attribute.String("report.status", report.Status), attribute.Int64("report.version", report.Version))
	}
	tracing.End(span, err)
	return report, err
}

// runTransition runs load, gate, engine and commit for one action. Nothing is
// written unless every step before the commit succeeds.
func (u *ReportWorkflowUseCase) runTransition(ctx context.Context, reportID string, caller entities.Caller, action workflow.Action) (entities.TechnicianReport, error) {
	op := workflow.OperationFor(action)
	report, err := u.loadAuthorized(ctx, reportID, caller, op)
	if err != nil {
		return entities.TechnicianReport{}, err
	}
	log := zap.L().With(zap.String("report_id", report.ID), zap.String("action", action.String()))

	engine, err := workflow.Load(report, u.now)
	if err != nil {
		log.Error("[report][usecase] stored state unreadable", zap.String("status", report.Status), zap.Error(err))
		return entities.TechnicianReport{}, err
	}
	if err := engine.Fire(action); err != nil {
		metrics.ReportTransitionsTotal.WithLabelValues(action.String(), "rejected").Inc()
		log.Info("[report][usecase] transition refused", zap.String("state", engine.State().String()), zap.Error(err))
		return entities.TechnicianReport{}, err
	}

	orderStatus, err := workflow.OrderStatusFor(engine.State())
	if err != nil {
		return entities.TechnicianReport{}, err
	}

	next := engine.Report()
	next.Version = report.Version + 1
	committed, err := u.reports.CommitTransition(ctx, next, report.Version, orderStatus)
	if err != nil {
		metrics.ReportTransitionsTotal.WithLabelValues(action.String(), "failed").Inc()
		return entities.TechnicianReport{}, u.wrapStoreErr(string(op), "commit transition", err)
	}

	metrics.ReportTransitionsTotal.WithLabelValues(action.String(), "ok").Inc()
	log.Info("[report][usecase] transition committed", zap.String("state", committed.Status), zap.String("order_status", string(orderStatus)))

	if engine.State() == workflow.StateCompleted {
		u.publishCompletion(ctx, committed)
	}
	return committed, nil
}

func (u *ReportWorkflowUseCase) loadAuthorized(ctx context.Context, reportID string, caller entities.Caller, op workflow.Operation) (entities.TechnicianReport, error) {
	reportID = strings.TrimSpace(reportID)
	if reportID == "" {
		return entities.TechnicianReport{}, ErrInvalidReportID
	}

	report, err := u.reports.GetByID(ctx, reportID)
	if err != nil {
		metrics.OperationErrorsTotal.WithLabelValues(string(op)).Inc()
		return entities.TechnicianReport{}, errs.NewDatabaseError("get report", err)
	}
	if report.ID == "" {
		return entities.TechnicianReport{}, ErrReportNotFound
	}

	if err := workflow.Authorize(report, caller, op); err != nil {
		if errors.Is(err, errs.ErrIllegalAccess) {
			metrics.AccessDeniedTotal.WithLabelValues(string(op)).Inc()
		}
		zap.L().Info("[report][usecase] access denied",
			zap.String("report_id", reportID),
			zap.String("operation", string(op)),
			zap.String("role", string(caller.Role)),
			zap.Error(err))
		return entities.TechnicianReport{}, err
	}
	return report, nil
}

func (u *ReportWorkflowUseCase) publishCompletion(ctx context.Context, r entities.TechnicianReport) {
	event := entities.CompletionEvent{
		OrderID:      r.OrderID,
		ReportID:     r.ID,
		TechnicianID: r.TechnicianID,
		CustomerID:   r.CustomerID,
		CompletedAt:  r.LastUpdatedAt,
	}
	if r.EstimatedCost != nil {
		event.Amount = *r.EstimatedCost
	}

	log := zap.L().With(zap.String("report_id", r.ID), zap.String("order_id", r.OrderID))
	if u.publisher == nil {
		log.Info("[report][usecase] completion recorded, no publisher configured")
		return
	}
	// The commit already happened; the request ending must not drop the event.
	pubCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), u.publishTimeout)
	defer cancel()
	if err := u.publisher.PublishCompletion(pubCtx, event); err != nil {
		metrics.CompletionPublishFailuresTotal.Inc()
		log.Error("[report][usecase] completion publish failed", zap.Error(err))
		return
	}
	log.Info("[report][usecase] completion published")
}

// wrapStoreErr keeps version conflicts recognisable and turns everything else
// into a database error.
func (u *ReportWorkflowUseCase) wrapStoreErr(operation, op string, err error) error {
	metrics.OperationErrorsTotal.WithLabelValues(operation).Inc()
	if errors.Is(err, errs.ErrConcurrentModification) {
		zap.L().Warn("[report][usecase] version conflict", zap.String("operation", operation))
		return err
	}
	zap.L().Error("[report][usecase] store failure", zap.String("operation", operation), zap.Error(err))
	return errs.NewDatabaseError(op, err)
}
