package response

import (
	"time"

	"repairflow/internal/domain/entities"
)

type RepairOrderResponse struct {
	ID                 string    `json:"id"`
	CustomerID         string    `json:"customer_id"`
	TechnicianID       string    `json:"technician_id"`
	ItemName           string    `json:"item_name"`
	ItemCondition      string    `json:"item_condition"`
	IssueDescription   string    `json:"issue_description"`
	PaymentMethodID    string    `json:"payment_method_id"`
	DesiredServiceDate string    `json:"desired_service_date"`
	Status             string    `json:"status"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

func FromRepairOrder(o entities.RepairOrder) RepairOrderResponse {
	res := RepairOrderResponse{
		ID:               o.ID,
		CustomerID:       o.CustomerID,
		TechnicianID:     o.TechnicianID,
		ItemName:         o.ItemName,
		ItemCondition:    o.ItemCondition,
		IssueDescription: o.IssueDescription,
		PaymentMethodID:  o.PaymentMethodID,
		Status:           string(o.Status),
		CreatedAt:        o.CreatedAt,
		UpdatedAt:        o.UpdatedAt,
	}
	if !o.DesiredServiceDate.IsZero() {
		res.DesiredServiceDate = o.DesiredServiceDate.Format("2006-01-02")
	}
	return res
}

func FromRepairOrders(orders []entities.RepairOrder) []RepairOrderResponse {
	out := make([]RepairOrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, FromRepairOrder(o))
	}
	return out
}
