package handlers

import (
	"errors"
	"net/http"

	"repairflow/internal/domain/errs"
	"repairflow/internal/usecase"
	"repairflow/pkg"

	"go.uber.org/zap"
)

var errInvalidPayload = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request payload", http.StatusBadRequest)

// mapDomainError translates use case and domain errors into API errors.
// Validation messages are safe to show and are passed through.
func mapDomainError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrRepairOrderNotFound):
		return pkg.NewDomainErrorSimple("ORDER_NOT_FOUND", "Repair order not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrReportNotFound):
		return pkg.NewDomainErrorSimple("REPORT_NOT_FOUND", "Technician report not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrReportAlreadyExists):
		return pkg.NewDomainErrorSimple("REPORT_ALREADY_EXISTS", "Order already has a technician report", http.StatusConflict)
	case errors.Is(err, errs.ErrInvalidState):
		return pkg.NewDomainError("INVALID_STATE", err.Error(), err, http.StatusBadRequest)
	case errors.Is(err, errs.ErrIllegalStateTransition):
		return pkg.NewDomainError("ILLEGAL_STATE_TRANSITION", err.Error(), err, http.StatusConflict)
	case errors.Is(err, errs.ErrIllegalAccess):
		return pkg.NewDomainError("ILLEGAL_ACCESS", "Access to this resource is not allowed", err, http.StatusForbidden)
	case errors.Is(err, errs.ErrConcurrentModification):
		return pkg.NewDomainError("CONCURRENT_MODIFICATION", "Report was changed by another request, reload and retry", err, http.StatusConflict)
	case errors.Is(err, errs.ErrTechnicianUnavailable):
		return pkg.NewDomainError("TECHNICIAN_UNAVAILABLE", "No technician is available right now", err, http.StatusServiceUnavailable)
	case errors.Is(err, errs.ErrDatabase):
		return pkg.NewDomainError("DATABASE_ERROR", "A storage error occurred", err, http.StatusInternalServerError)
	case errors.Is(err, errs.ErrUnknownState):
		return pkg.NewDomainError("UNKNOWN_STATE", "Stored report is in an unknown state", err, http.StatusInternalServerError)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

func logAppError(scope string, appErr *pkg.AppError) {
	if appErr.HTTPStatus >= http.StatusInternalServerError {
		zap.L().Error(scope+" request failed", zap.String("code", appErr.Code), zap.Error(appErr.Err))
		return
	}
	zap.L().Info(scope+" request rejected", zap.String("code", appErr.Code), zap.Error(appErr.Err))
}
