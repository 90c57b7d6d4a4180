package entities

import "time"

// TechnicianReport is the diagnosis/estimate a technician writes against an order.
//
// Storage model (DynamoDB):
//   - PK: id, equal to order_id (one report per order)
//
// Status holds the canonical name of the workflow state; the state itself is
// rebuilt from it on every load. Version is bumped on every write and used as an
// optimistic lock.
//
// CustomerID is copied from the owning order so access checks need no extra lookup.
type TechnicianReport struct {
	ID            string    `json:"id"`
	OrderID       string    `json:"order_id"`
	TechnicianID  string    `json:"technician_id"`
	CustomerID    string    `json:"customer_id"`
	Diagnosis     string    `json:"diagnosis"`
	ActionPlan    string    `json:"action_plan"`
	EstimatedCost *float64  `json:"estimated_cost,omitempty"`
	EstimatedTime string    `json:"estimated_time"`
	Status        string    `json:"status"`
	Version       int64     `json:"version"`
	CreatedAt     time.Time `json:"created_at"`
	LastUpdatedAt time.Time `json:"last_updated_at"`
}

// CompletionEvent is published once a report reaches COMPLETED.
type CompletionEvent struct {
	OrderID      string    `json:"order_id"`
	ReportID     string    `json:"report_id"`
	TechnicianID string    `json:"technician_id"`
	CustomerID   string    `json:"customer_id"`
	Amount       float64   `json:"amount"`
	CompletedAt  time.Time `json:"completed_at"`
}
