package workflow

import (
	"strings"

	"repairflow/internal/domain/entities"
	"repairflow/internal/domain/errs"
)

// Guard checks the preconditions of a transition against the report contents.
type Guard func(report entities.TechnicianReport) error

// ValidateForSubmission evaluates whether a draft may be submitted.
// Rules:
// - Diagnosis must not be blank
// - Action plan must not be blank
// - Estimated cost must be present and non-negative
func ValidateForSubmission(report entities.TechnicianReport) error {
	return validateEstimateComplete(report)
}

// ValidateForApproval repeats the submission checks so a report placed in
// SUBMITTED without going through submit is still rejected.
func ValidateForApproval(report entities.TechnicianReport) error {
	return validateEstimateComplete(report)
}

// ValidateForWorkStart confirms the approved estimate is still fully populated.
func ValidateForWorkStart(report entities.TechnicianReport) error {
	return validateEstimateComplete(report)
}

// ValidateDraftFields checks the fields a draft may carry while incomplete.
// Rules:
// - Estimated cost, when present, must be non-negative
func ValidateDraftFields(report entities.TechnicianReport) error {
	if report.EstimatedCost != nil && *report.EstimatedCost < 0 {
		return errs.InvalidState("estimated cost must not be negative (got %v)", *report.EstimatedCost)
	}
	return nil
}

func validateEstimateComplete(report entities.TechnicianReport) error {
	if strings.TrimSpace(report.Diagnosis) == "" {
		return errs.InvalidState("diagnosis is required")
	}
	if strings.TrimSpace(report.ActionPlan) == "" {
		return errs.InvalidState("action plan is required")
	}
	if report.EstimatedCost == nil {
		return errs.InvalidState("estimated cost is required")
	}
	return ValidateDraftFields(report)
}
