package request

import (
	"strings"

	"supplyops/internal/domain/entities"
)

type OrderItemRequest struct {
	ProductRef string  `json:"product_ref" binding:"required"`
	Qty        int     `json:"qty" binding:"required"`
	UnitPrice  float64 `json:"unit_price"`
}

// SubmitOrderRequest is posted by the consumer-facing ordering channel.
type SubmitOrderRequest struct {
	ID         string             `json:"id"`
	ConsumerID string             `json:"consumer_id" binding:"required"`
	SupplierID string             `json:"supplier_id"`
	Items      []OrderItemRequest `json:"items" binding:"required"`
}

func (r SubmitOrderRequest) ToEntity() entities.Order {
	return entities.Order{
		ID:         strings.TrimSpace(r.ID),
		ConsumerID: r.ConsumerID,
		SupplierID: strings.TrimSpace(r.SupplierID),
		Items:      toOrderItems(r.Items),
	}
}

type AmendItemsRequest struct {
	Version int64              `json:"version"`
	Items   []OrderItemRequest `json:"items" binding:"required"`
}

func (r AmendItemsRequest) OrderItems() []entities.OrderItem {
	return toOrderItems(r.Items)
}

func toOrderItems(in []OrderItemRequest) []entities.OrderItem {
	out := make([]entities.OrderItem, 0, len(in))
	for _, it := range in {
		out = append(out, entities.OrderItem{
			ProductRef: strings.TrimSpace(it.ProductRef),
			Qty:        it.Qty,
			UnitPrice:  it.UnitPrice,
		})
	}
	return out
}
