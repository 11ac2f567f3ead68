package response

import (
	"testing"
	"time"

	"supplyops/internal/domain/entities"
)

func TestFromOrder(t *testing.T) {
	now := time.Now().UTC()
	res := FromOrder(entities.Order{
		ID:        "o-1",
		Status:    entities.OrderStatusInProgress,
		Items:     []entities.OrderItem{{ProductRef: "a", Qty: 2, UnitPrice: 2.5}, {ProductRef: "b", Qty: 1, UnitPrice: 1}},
		Version:   3,
		CreatedAt: now,
	})
	if res.TotalAmount != 6 || res.Status != "IN_PROGRESS" || len(res.Items) != 2 || res.Version != 3 {
		t.Fatalf("unexpected response: %+v", res)
	}
}

func TestFromComplaint_NotesNeverNull(t *testing.T) {
	res := FromComplaint(entities.Complaint{ID: "c-1"})
	if res.InternalNotes == nil {
		t.Fatalf("expected empty notes slice")
	}
}

func TestFromList(t *testing.T) {
	out := FromList([]entities.Incident{{ID: "i-1"}, {ID: "i-2"}}, FromIncident)
	if len(out) != 2 || out[1].ID != "i-2" {
		t.Fatalf("unexpected list: %+v", out)
	}
}
