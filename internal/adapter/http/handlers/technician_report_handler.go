package handlers

import (
	"context"
	"net/http"

	request "repairflow/internal/adapter/http/dto/request"
	response "repairflow/internal/adapter/http/dto/response"
	"repairflow/internal/domain/entities"
	"repairflow/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// TechnicianReportHandler handles HTTP requests for technician reports and
// their workflow actions.
type TechnicianReportHandler struct {
	usecase usecase.IReportWorkflowUseCase
}

func NewTechnicianReportHandler(uc usecase.IReportWorkflowUseCase) *TechnicianReportHandler {
	return &TechnicianReportHandler{usecase: uc}
}

type reportAction func(ctx context.Context, reportID, callerID string) (entities.TechnicianReport, error)

// CreateDraft opens a draft report on an order assigned to the calling technician.
//
// @Summary  Create draft report
// @Tags     reports
// @Accept   json
// @Produce  json
// @Param    body body request.CreateDraftReportRequest true "Draft"
// @Success  201 {object} response.TechnicianReportResponse
// @Failure  400 {object} pkg.HTTPError
// @Failure  409 {object} pkg.HTTPError
// @Router   /reports [post]
func (h *TechnicianReportHandler) CreateDraft(c *gin.Context) {
	caller, ok := callerWithRole(c, entities.RoleTechnician)
	if !ok {
		return
	}

	var payload request.CreateDraftReportRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	report, err := h.usecase.CreateDraftReport(c.Request.Context(), caller.ID, usecase.DraftReportInput{
		OrderID:       payload.OrderID,
		Diagnosis:     payload.Diagnosis,
		ActionPlan:    payload.ActionPlan,
		EstimatedCost: payload.EstimatedCost,
		EstimatedTime: payload.EstimatedTime,
	})
	if err != nil {
		h.fail(c, "create_draft", err)
		return
	}
	zap.L().Info("[report][handler] draft created", zap.String("report_id", report.ID))
	c.JSON(http.StatusCreated, response.FromTechnicianReport(report))
}

// GetReport returns a report if the caller may see it in its current state.
//
// @Summary  Get report
// @Tags     reports
// @Produce  json
// @Param    report_id path string true "Report id"
// @Success  200 {object} response.TechnicianReportResponse
// @Failure  403 {object} pkg.HTTPError
// @Failure  404 {object} pkg.HTTPError
// @Router   /reports/{report_id} [get]
func (h *TechnicianReportHandler) GetReport(c *gin.Context) {
	caller, ok := callerFrom(c)
	if !ok {
		c.JSON(errMissingCaller.HTTPStatus, errMissingCaller.ToHTTPError())
		return
	}

	report, err := h.usecase.GetReport(c.Request.Context(), c.Param("report_id"), caller.Role, caller.ID)
	if err != nil {
		h.fail(c, "get", err)
		return
	}
	c.JSON(http.StatusOK, response.FromTechnicianReport(report))
}

// UpdateDraft applies a partial update to a draft.
//
// @Summary  Update draft report
// @Tags     reports
// @Accept   json
// @Produce  json
// @Param    report_id path string true "Report id"
// @Param    body body request.UpdateDraftReportRequest true "Fields to change"
// @Success  200 {object} response.TechnicianReportResponse
// @Failure  403 {object} pkg.HTTPError
// @Failure  409 {object} pkg.HTTPError
// @Router   /reports/{report_id} [patch]
func (h *TechnicianReportHandler) UpdateDraft(c *gin.Context) {
	caller, ok := callerWithRole(c, entities.RoleTechnician)
	if !ok {
		return
	}

	var payload request.UpdateDraftReportRequest
	if err := c.ShouldBindJSON(&payload); err != nil || payload.IsEmpty() {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	report, err := h.usecase.UpdateDraftReport(c.Request.Context(), c.Param("report_id"), caller.ID, usecase.DraftReportPatch{
		Diagnosis:     payload.Diagnosis,
		ActionPlan:    payload.ActionPlan,
		EstimatedCost: payload.EstimatedCost,
		EstimatedTime: payload.EstimatedTime,
	})
	if err != nil {
		h.fail(c, "update_draft", err)
		return
	}
	c.JSON(http.StatusOK, response.FromTechnicianReport(report))
}

// DeleteDraft removes a draft.
//
// @Summary  Delete draft report
// @Tags     reports
// @Param    report_id path string true "Report id"
// @Success  204
// @Failure  403 {object} pkg.HTTPError
// @Router   /reports/{report_id} [delete]
func (h *TechnicianReportHandler) DeleteDraft(c *gin.Context) {
	caller, ok := callerWithRole(c, entities.RoleTechnician)
	if !ok {
		return
	}

	if err := h.usecase.DeleteDraftReport(c.Request.Context(), c.Param("report_id"), caller.ID); err != nil {
		h.fail(c, "delete_draft", err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Submit sends a complete draft to the customer.
//
// @Summary  Submit report
// @Tags     reports
// @Param    report_id path string true "Report id"
// @Success  200 {object} response.TechnicianReportResponse
// @Failure  400 {object} pkg.HTTPError
// @Failure  409 {object} pkg.HTTPError
// @Router   /reports/{report_id}/submit [post]
func (h *TechnicianReportHandler) Submit(c *gin.Context) {
	h.runAction(c, "submit", entities.RoleTechnician, h.usecase.Submit)
}

// Approve accepts the estimate.
//
// @Summary  Approve report
// @Tags     reports
// @Param    report_id path string true "Report id"
// @Success  200 {object} response.TechnicianReportResponse
// @Router   /reports/{report_id}/approve [post]
func (h *TechnicianReportHandler) Approve(c *gin.Context) {
	h.runAction(c, "approve", entities.RoleCustomer, h.usecase.Approve)
}

// Reject declines the estimate. Rejection is final.
//
// @Summary  Reject report
// @Tags     reports
// @Param    report_id path string true "Report id"
// @Success  200 {object} response.TechnicianReportResponse
// @Router   /reports/{report_id}/reject [post]
func (h *TechnicianReportHandler) Reject(c *gin.Context) {
	h.runAction(c, "reject", entities.RoleCustomer, h.usecase.Reject)
}

// @Summary  Start work on an approved report
// @Tags     reports
// @Param    report_id path string true "Report id"
// @Success  200 {object} response.TechnicianReportResponse
// @Router   /reports/{report_id}/start [post]
func (h *TechnicianReportHandler) StartWork(c *gin.Context) {
	h.runAction(c, "start_work", entities.RoleTechnician, h.usecase.StartWork)
}

// @Summary  Complete the repair
// @Tags     reports
// @Param    report_id path string true "Report id"
// @Success  200 {object} response.TechnicianReportResponse
// @Router   /reports/{report_id}/complete [post]
func (h *TechnicianReportHandler) Complete(c *gin.Context) {
	h.runAction(c, "complete", entities.RoleTechnician, h.usecase.Complete)
}

func (h *TechnicianReportHandler) runAction(c *gin.Context, name string, role entities.Role, action reportAction) {
	caller, ok := callerWithRole(c, role)
	if !ok {
		return
	}

	reportID := c.Param("report_id")
	report, err := action(c.Request.Context(), reportID, caller.ID)
	if err != nil {
		h.fail(c, name, err)
		return
	}
	zap.L().Info("[report][handler] action success",
		zap.String("action", name),
		zap.String("report_id", reportID),
		zap.String("status", report.Status))
	c.JSON(http.StatusOK, response.FromTechnicianReport(report))
}

func (h *TechnicianReportHandler) fail(c *gin.Context, name string, err error) {
	appErr := mapDomainError(err)
	logAppError("[report][handler] "+name, appErr)
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}
