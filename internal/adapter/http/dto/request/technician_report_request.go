package request

// CreateDraftReportRequest opens a report against an order.
type CreateDraftReportRequest struct {
	OrderID       string   `json:"order_id" binding:"required"`
	Diagnosis     string   `json:"diagnosis"`
	ActionPlan    string   `json:"action_plan"`
	EstimatedCost *float64 `json:"estimated_cost"`
	EstimatedTime string   `json:"estimated_time"`
}

// UpdateDraftReportRequest is a partial update; omitted fields are kept.
type UpdateDraftReportRequest struct {
	Diagnosis     *string  `json:"diagnosis"`
	ActionPlan    *string  `json:"action_plan"`
	EstimatedCost *float64 `json:"estimated_cost"`
	EstimatedTime *string  `json:"estimated_time"`
}

func (r UpdateDraftReportRequest) IsEmpty() bool {
	return r.Diagnosis == nil && r.ActionPlan == nil && r.EstimatedCost == nil && r.EstimatedTime == nil
}
