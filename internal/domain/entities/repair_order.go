package entities

import "time"

// RepairOrderStatus mirrors the lifecycle of the report attached to the order.
type RepairOrderStatus string

const (
	RepairOrderStatusPendingConfirmation RepairOrderStatus = "PENDING_CONFIRMATION"
	RepairOrderStatusAwaitingApproval    RepairOrderStatus = "AWAITING_APPROVAL"
	RepairOrderStatusApproved            RepairOrderStatus = "APPROVED"
	RepairOrderStatusRejected            RepairOrderStatus = "REJECTED"
	RepairOrderStatusInProgress          RepairOrderStatus = "IN_PROGRESS"
	RepairOrderStatusCompleted           RepairOrderStatus = "COMPLETED"
)

// RepairOrder is the customer's repair request persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (customer_id-index): customer_id
//
// TechnicianID is assigned synchronously at creation and is never empty afterwards.
// Orders are never deleted; only Status and UpdatedAt change.
type RepairOrder struct {
	ID                 string            `json:"id"`
	CustomerID         string            `json:"customer_id"`
	TechnicianID       string            `json:"technician_id"`
	ItemName           string            `json:"item_name"`
	ItemCondition      string            `json:"item_condition"`
	IssueDescription   string            `json:"issue_description"`
	PaymentMethodID    string            `json:"payment_method_id"`
	DesiredServiceDate time.Time         `json:"desired_service_date"`
	Status             RepairOrderStatus `json:"status"`
	CreatedAt          time.Time         `json:"created_at"`
	UpdatedAt          time.Time         `json:"updated_at"`
}

// Customer is the authenticated customer placing an order.
type Customer struct {
	ID string
}
