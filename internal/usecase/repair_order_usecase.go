package usecase

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"repairflow/internal/domain/entities"
	"repairflow/internal/domain/errs"
	"repairflow/internal/infrastructure/metrics"
	"repairflow/internal/infrastructure/tracing"
	"repairflow/internal/usecase/interfaces"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

var (
	ErrRepairOrderNotFound = errors.New("repair order not found")
	ErrInvalidOrderID      = fmt.Errorf("%w: invalid order id", errs.ErrInvalidState)
)

// CreateRepairOrderRequest is the intake form for a new repair.
type CreateRepairOrderRequest struct {
	ItemName           string    `json:"item_name" validate:"required,max=120"`
	ItemCondition      string    `json:"item_condition" validate:"required,max=500"`
	IssueDescription   string    `json:"issue_description" validate:"required,max=2000"`
	PaymentMethodID    string    `json:"payment_method_id" validate:"required,max=64"`
	DesiredServiceDate time.Time `json:"desired_service_date"`
}

// IRepairOrderUseCase exposes repair order operations.
//
//   - CreateOrder validates the intake, assigns a technician and persists the order
//   - GetOrder returns an order to its customer or assigned technician
//   - ListCustomerOrders returns the caller's own orders
type IRepairOrderUseCase interface {
	CreateOrder(ctx context.Context, req *CreateRepairOrderRequest, customer *entities.Customer) (entities.RepairOrder, error)
	GetOrder(ctx context.Context, orderID string, caller entities.Caller) (entities.RepairOrder, error)
	ListCustomerOrders(ctx context.Context, caller entities.Caller) ([]entities.RepairOrder, error)
}

type RepairOrderUseCase struct {
	repo      interfaces.IRepairOrderRepository
	directory interfaces.ITechnicianDirectory
	catalog   interfaces.IPaymentMethodCatalog
	validate  *validator.Validate
	now       func() time.Time
}

var _ IRepairOrderUseCase = (*RepairOrderUseCase)(nil)

// NewRepairOrderUseCase wires the order factory. catalog may be nil, in which case
// payment-method references are only checked for presence.
func NewRepairOrderUseCase(repo interfaces.IRepairOrderRepository, directory interfaces.ITechnicianDirectory, catalog interfaces.IPaymentMethodCatalog) *RepairOrderUseCase {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return f.Name
		}
		return name
	})
	return &RepairOrderUseCase{repo: repo, directory: directory, catalog: catalog, validate: v, now: time.Now}
}

func (u *RepairOrderUseCase) CreateOrder(ctx context.Context, req *CreateRepairOrderRequest, customer *entities.Customer) (entities.RepairOrder, error) {
	ctx, span := tracing.Start(ctx, "order.create")
	order, err := u.createOrder(ctx, req, customer)
	if err == nil {
		span.SetAttributes(attribute.String("order.id", order.ID), attribute.String("technician.id", order.TechnicianID))
	}
	tracing.End(span, err)
	return order, err
}

func (u *RepairOrderUseCase) createOrder(ctx context.Context, req *CreateRepairOrderRequest, customer *entities.Customer) (entities.RepairOrder, error) {
	in, customerID, err := u.validateIntake(req, customer)
	if err != nil {
		zap.L().Info("[order][usecase] intake rejected", zap.Error(err))
		return entities.RepairOrder{}, err
	}
	log := zap.L().With(zap.String("customer_id", customerID))
	log.Info("[order][usecase] create start", zap.String("item_name", in.ItemName))

	if u.repo == nil {
		return entities.RepairOrder{}, errors.New("repair order repository not configured")
	}
	if u.directory == nil {
		return entities.RepairOrder{}, errors.New("technician directory not configured")
	}

	if u.catalog != nil {
		known, err := u.catalog.Exists(ctx, in.PaymentMethodID)
		if err != nil {
			log.Warn("[order][usecase] payment method lookup failed", zap.String("payment_method_id", in.PaymentMethodID), zap.Error(err))
			return entities.RepairOrder{}, fmt.Errorf("payment method lookup: %w", err)
		}
		if !known {
			return entities.RepairOrder{}, errs.InvalidState("payment_method_id %q is not a known payment method", in.PaymentMethodID)
		}
	}

	technicianID, err := u.assignTechnician(ctx)
	if err != nil {
		log.Warn("[order][usecase] technician assignment failed", zap.Error(err))
		return entities.RepairOrder{}, err
	}

	now := u.now().UTC()
	order := entities.RepairOrder{
		ID:                 uuid.NewString(),
		CustomerID:         customerID,
		TechnicianID:       technicianID,
		ItemName:           in.ItemName,
		ItemCondition:      in.ItemCondition,
		IssueDescription:   in.IssueDescription,
		PaymentMethodID:    in.PaymentMethodID,
		DesiredServiceDate: in.DesiredServiceDate.UTC(),
		Status:             entities.RepairOrderStatusPendingConfirmation,
		CreatedAt:          now,
		UpdatedAt:          now,
	}

	created, err := u.repo.Create(ctx, order)
	if err != nil {
		metrics.OperationErrorsTotal.WithLabelValues("create_order").Inc()
		log.Error("[order][usecase] repository create failed", zap.String("order_id", order.ID), zap.Error(err))
		return entities.RepairOrder{}, errs.NewDatabaseError("create repair order", err)
	}

	metrics.OrdersCreatedTotal.Inc()
	log.Info("[order][usecase] create success", zap.String("order_id", created.ID), zap.String("technician_id", created.TechnicianID))
	return created, nil
}

// validateIntake returns a trimmed copy of the request and the customer id after
// checking every field. It runs before any external call is made.
func (u *RepairOrderUseCase) validateIntake(req *CreateRepairOrderRequest, customer *entities.Customer) (CreateRepairOrderRequest, string, error) {
	if req == nil {
		return CreateRepairOrderRequest{}, "", errs.InvalidState("request is required")
	}
	if customer == nil {
		return CreateRepairOrderRequest{}, "", errs.InvalidState("customer is required")
	}
	customerID := strings.TrimSpace(customer.ID)
	if _, err := uuid.Parse(customerID); err != nil {
		return CreateRepairOrderRequest{}, "", errs.InvalidState("customer id %q is not a valid identifier", customerID)
	}

	in := *req
	in.ItemName = strings.TrimSpace(in.ItemName)
	in.ItemCondition = strings.TrimSpace(in.ItemCondition)
	in.IssueDescription = strings.TrimSpace(in.IssueDescription)
	in.PaymentMethodID = strings.TrimSpace(in.PaymentMethodID)

	if err := u.validate.Struct(in); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return CreateRepairOrderRequest{}, "", errs.InvalidState("%s", describeFieldError(verrs[0]))
		}
		return CreateRepairOrderRequest{}, "", errs.InvalidState("%v", err)
	}

	if in.DesiredServiceDate.IsZero() {
		return CreateRepairOrderRequest{}, "", errs.InvalidState("desired_service_date is required")
	}
	if dateOnly(in.DesiredServiceDate).Before(dateOnly(u.now())) {
		return CreateRepairOrderRequest{}, "", errs.InvalidState("desired_service_date must be today or later")
	}
	return in, customerID, nil
}

// assignTechnician performs the single directory lookup for an order.
func (u *RepairOrderUseCase) assignTechnician(ctx context.Context) (string, error) {
	technicianID, found, err := u.directory.GetRandomTechnician(ctx)
	if err != nil {
		metrics.TechnicianUnavailableTotal.Inc()
		return "", errs.TechnicianUnavailable(err)
	}
	if !found {
		metrics.TechnicianUnavailableTotal.Inc()
		return "", errs.TechnicianUnavailable(nil)
	}

	technicianID = strings.TrimSpace(technicianID)
	if _, err := uuid.Parse(technicianID); err != nil {
		return "", errs.InvalidState("technician directory returned malformed id %q", technicianID)
	}
	return technicianID, nil
}

func (u *RepairOrderUseCase) GetOrder(ctx context.Context, orderID string, caller entities.Caller) (entities.RepairOrder, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return entities.RepairOrder{}, ErrInvalidOrderID
	}

	order, err := loadOrder(ctx, u.repo, orderID)
	if err != nil {
		return entities.RepairOrder{}, err
	}

	callerID := strings.TrimSpace(caller.ID)
	switch {
	case caller.Role == entities.RoleCustomer && callerID != "" && callerID == order.CustomerID:
		return order, nil
	case caller.Role == entities.RoleTechnician && callerID != "" && callerID == order.TechnicianID:
		return order, nil
	}
	return entities.RepairOrder{}, errs.IllegalAccess("caller %s may not read order %s", callerID, orderID)
}

func (u *RepairOrderUseCase) ListCustomerOrders(ctx context.Context, caller entities.Caller) ([]entities.RepairOrder, error) {
	if caller.Role != entities.RoleCustomer {
		return nil, errs.IllegalAccess("only customers can list their orders")
	}
	customerID := strings.TrimSpace(caller.ID)
	if customerID == "" {
		return nil, errs.InvalidState("customer id is required")
	}

	orders, err := u.repo.ListByCustomerID(ctx, customerID)
	if err != nil {
		return nil, errs.NewDatabaseError("list repair orders", err)
	}
	return orders, nil
}

func loadOrder(ctx context.Context, repo interfaces.IRepairOrderRepository, orderID string) (entities.RepairOrder, error) {
	order, err := repo.GetByID(ctx, orderID)
	if err != nil {
		return entities.RepairOrder{}, errs.NewDatabaseError("get repair order", err)
	}
	if order.ID == "" {
		return entities.RepairOrder{}, ErrRepairOrderNotFound
	}
	return order, nil
}

func describeFieldError(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("%s is invalid (%s)", fe.Field(), fe.Tag())
	}
}

func dateOnly(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
