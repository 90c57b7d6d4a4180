package response

import (
	"time"

	"repairflow/internal/domain/entities"
	"repairflow/internal/domain/workflow"
)

type TechnicianReportResponse struct {
	ID               string    `json:"id"`
	OrderID          string    `json:"order_id"`
	TechnicianID     string    `json:"technician_id"`
	CustomerID       string    `json:"customer_id"`
	Diagnosis        string    `json:"diagnosis"`
	ActionPlan       string    `json:"action_plan"`
	EstimatedCost    *float64  `json:"estimated_cost,omitempty"`
	EstimatedTime    string    `json:"estimated_time"`
	Status           string    `json:"status"`
	Version          int64     `json:"version"`
	AvailableActions []string  `json:"available_actions"`
	CreatedAt        time.Time `json:"created_at"`
	LastUpdatedAt    time.Time `json:"last_updated_at"`
}

// FromTechnicianReport maps a report. AvailableActions lists the transitions the
// current state allows, regardless of who is asking.
func FromTechnicianReport(r entities.TechnicianReport) TechnicianReportResponse {
	actions := []string{}
	if s, err := workflow.ParseState(r.Status); err == nil {
		for _, a := range workflow.PermittedActions(s) {
			actions = append(actions, a.String())
		}
	}
	return TechnicianReportResponse{
		ID:               r.ID,
		OrderID:          r.OrderID,
		TechnicianID:     r.TechnicianID,
		CustomerID:       r.CustomerID,
		Diagnosis:        r.Diagnosis,
		ActionPlan:       r.ActionPlan,
		EstimatedCost:    r.EstimatedCost,
		EstimatedTime:    r.EstimatedTime,
		Status:           r.Status,
		Version:          r.Version,
		AvailableActions: actions,
		CreatedAt:        r.CreatedAt,
		LastUpdatedAt:    r.LastUpdatedAt,
	}
}
