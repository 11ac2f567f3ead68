package usecase

import (
	"context"
	"testing"

	"supplyops/internal/adapter/persistence/memory"
	"supplyops/internal/domain/entities"
	"supplyops/internal/infrastructure/lock"

	"github.com/stretchr/testify/require"
)

var (
	owner   = entities.Actor{StaffID: "staff-owner", Role: entities.RoleOwner}
	manager = entities.Actor{StaffID: "staff-manager", Role: entities.RoleManager}
	sales   = entities.Actor{StaffID: "staff-sales", Role: entities.RoleSales}
)

func as(actor entities.Actor) Call { return Call{Actor: actor} }

// fixture wires every lifecycle against one in-memory store.
type fixture struct {
	store      *memory.Store
	orders     *OrderUseCase
	links      *LinkUseCase
	complaints *ComplaintUseCase
	incidents  *IncidentUseCase
	escalation *EscalationUseCase
}

func newFixture() *fixture {
	s := memory.NewStore()
	esc := NewEscalationUseCase(s.Complaints, s.Incidents, s, lock.NewLocalLocker(), entities.SeverityMedium, Observers{})
	return &fixture{
		store:      s,
		orders:     NewOrderUseCase(s.Orders, Observers{}),
		links:      NewLinkUseCase(s.Links, Observers{}),
		complaints: NewComplaintUseCase(s.Complaints, s.Orders, esc, Observers{}),
		incidents:  NewIncidentUseCase(s.Incidents, s.Orders, Observers{}),
		escalation: esc,
	}
}

func (f *fixture) seedOrder(t *testing.T, id string, status entities.OrderStatus) entities.Order {
	t.Helper()
	o, err := f.store.Orders.Create(context.Background(), entities.Order{
		ID:         id,
		ConsumerID: "consumer-1",
		SupplierID: "supplier-1",
		Status:     status,
		Items:      []entities.OrderItem{{ProductRef: "sku-1", Qty: 2, UnitPrice: 9.5}},
	})
	require.NoError(t, err)
	return o
}

func (f *fixture) seedLink(t *testing.T, id string, status entities.LinkStatus, notes ...string) entities.ConsumerLink {
	t.Helper()
	l := entities.ConsumerLink{ID: id, ConsumerID: "consumer-1", SupplierID: "supplier-1", Status: status}
	for _, n := range notes {
		l.Notes = append(l.Notes, entities.Note{Text: n, Author: "seed"})
	}
	l, err := f.store.Links.Create(context.Background(), l)
	require.NoError(t, err)
	return l
}

func (f *fixture) seedComplaint(t *testing.T, id, orderID string, status entities.ComplaintStatus) entities.Complaint {
	t.Helper()
	c, err := f.store.Complaints.Create(context.Background(), entities.Complaint{
		ID:          id,
		OrderID:     orderID,
		ConsumerRef: "consumer-1",
		Type:        "Quality issue",
		Description: "Crates arrived damaged",
		Status:      status,
	})
	require.NoError(t, err)
	return c
}

func (f *fixture) seedIncident(t *testing.T, id string, status entities.IncidentStatus) entities.Incident {
	t.Helper()
	i, err := f.store.Incidents.Create(context.Background(), entities.Incident{
		ID:       id,
		OrderID:  "o-1",
		Summary:  "Cold chain broken",
		Status:   status,
		Severity: entities.SeverityLow,
	})
	require.NoError(t, err)
	return i
}
