package request

import (
	"testing"

	"supplyops/internal/domain/entities"
)

func TestSubmitOrderRequest_ToEntity(t *testing.T) {
	r := SubmitOrderRequest{
		ID:         " o-1 ",
		ConsumerID: "c-1",
		Items:      []OrderItemRequest{{ProductRef: " sku-1 ", Qty: 2, UnitPrice: 1.5}},
	}
	o := r.ToEntity()
	if o.ID != "o-1" || o.Items[0].ProductRef != "sku-1" || o.TotalAmount() != 3 {
		t.Fatalf("unexpected order: %+v", o)
	}
}

func TestOpenIncidentRequest_ToEntity(t *testing.T) {
	i := OpenIncidentRequest{OrderID: "o-1", Severity: " high "}.ToEntity()
	if i.Severity != entities.SeverityHigh {
		t.Fatalf("expected HIGH, got %q", i.Severity)
	}
}

func TestComplaintRequest_ToEntity(t *testing.T) {
	c := ComplaintRequest{Description: "Broken seal", Type: " Quality issue "}.ToEntity("o-9")
	if c.OrderID != "o-9" || c.Type != "Quality issue" {
		t.Fatalf("unexpected complaint: %+v", c)
	}
}
