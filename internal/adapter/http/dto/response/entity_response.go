package response

import (
	"time"

	"supplyops/internal/domain/entities"
)

type NoteResponse struct {
	Text   string    `json:"text"`
	Author string    `json:"author,omitempty"`
	At     time.Time `json:"at"`
}

func fromNotes(notes []entities.Note) []NoteResponse {
	out := make([]NoteResponse, 0, len(notes))
	for _, n := range notes {
		out = append(out, NoteResponse{Text: n.Text, Author: n.Author, At: n.At})
	}
	return out
}

type OrderItemResponse struct {
	ProductRef string  `json:"product_ref"`
	Qty        int     `json:"qty"`
	UnitPrice  float64 `json:"unit_price"`
}

type OrderResponse struct {
	ID          string              `json:"id"`
	ConsumerID  string              `json:"consumer_id"`
	SupplierID  string              `json:"supplier_id,omitempty"`
	Status      string              `json:"status"`
	Items       []OrderItemResponse `json:"items"`
	TotalAmount float64             `json:"total_amount"`
	Version     int64               `json:"version"`
	CreatedAt   time.Time           `json:"created_at"`
	UpdatedAt   time.Time           `json:"updated_at"`
}

func FromOrder(o entities.Order) OrderResponse {
	items := make([]OrderItemResponse, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, OrderItemResponse{ProductRef: it.ProductRef, Qty: it.Qty, UnitPrice: it.UnitPrice})
	}
	return OrderResponse{
		ID:          o.ID,
		ConsumerID:  o.ConsumerID,
		SupplierID:  o.SupplierID,
		Status:      string(o.Status),
		Items:       items,
		TotalAmount: o.TotalAmount(),
		Version:     o.Version,
		CreatedAt:   o.CreatedAt,
		UpdatedAt:   o.UpdatedAt,
	}
}

type LinkResponse struct {
	ID         string         `json:"id"`
	ConsumerID string         `json:"consumer_id"`
	SupplierID string         `json:"supplier_id"`
	Status     string         `json:"status"`
	Notes      []NoteResponse `json:"notes"`
	Version    int64          `json:"version"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
}

func FromLink(l entities.ConsumerLink) LinkResponse {
	return LinkResponse{
		ID:         l.ID,
		ConsumerID: l.ConsumerID,
		SupplierID: l.SupplierID,
		Status:     string(l.Status),
		Notes:      fromNotes(l.Notes),
		Version:    l.Version,
		CreatedAt:  l.CreatedAt,
		UpdatedAt:  l.UpdatedAt,
	}
}

type ComplaintResponse struct {
	ID            string         `json:"id"`
	OrderID       string         `json:"order_id"`
	ConsumerRef   string         `json:"consumer_ref,omitempty"`
	Type          string         `json:"type,omitempty"`
	Status        string         `json:"status"`
	Description   string         `json:"description"`
	InternalNotes []NoteResponse `json:"internal_notes"`
	Version       int64          `json:"version"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
}

func FromComplaint(c entities.Complaint) ComplaintResponse {
	return ComplaintResponse{
		ID:            c.ID,
		OrderID:       c.OrderID,
		ConsumerRef:   c.ConsumerRef,
		Type:          c.Type,
		Status:        string(c.Status),
		Description:   c.Description,
		InternalNotes: fromNotes(c.InternalNotes),
		Version:       c.Version,
		CreatedAt:     c.CreatedAt,
		UpdatedAt:     c.UpdatedAt,
	}
}

type IncidentResponse struct {
	ID            string         `json:"id"`
	OrderID       string         `json:"order_id"`
	ComplaintID   string         `json:"complaint_id,omitempty"`
	ConsumerRef   string         `json:"consumer_ref,omitempty"`
	Summary       string         `json:"summary,omitempty"`
	Status        string         `json:"status"`
	Severity      string         `json:"severity"`
	AssignedTo    string         `json:"assigned_to,omitempty"`
	InternalNotes []NoteResponse `json:"internal_notes"`
	Version       int64          `json:"version"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
}

func FromIncident(i entities.Incident) IncidentResponse {
	return IncidentResponse{
		ID:            i.ID,
		OrderID:       i.OrderID,
		ComplaintID:   i.ComplaintID,
		ConsumerRef:   i.ConsumerRef,
		Summary:       i.Summary,
		Status:        string(i.Status),
		Severity:      string(i.Severity),
		AssignedTo:    i.AssignedTo,
		InternalNotes: fromNotes(i.InternalNotes),
		Version:       i.Version,
		CreatedAt:     i.CreatedAt,
		UpdatedAt:     i.UpdatedAt,
	}
}

// FromList maps a slice with the given converter.
func FromList[E any, R any](in []E, conv func(E) R) []R {
	out := make([]R, 0, len(in))
	for _, e := range in {
		out = append(out, conv(e))
	}
	return out
}
