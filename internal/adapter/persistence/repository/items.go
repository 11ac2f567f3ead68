package repository

import (
	"supplyops/internal/domain/entities"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// GSI names; TableSchemas creates them.
const (
	orderIDIndex     = "order_id-index"
	complaintIDIndex = "complaint_id-index"
)

// codec converts one entity kind to and from its DynamoDB item.
type codec[T entities.Record[T]] struct {
	kind   string
	encode func(T) (map[string]types.AttributeValue, error)
	decode func(map[string]types.AttributeValue) (T, error)
	// index picks a GSI for the filter; ok is false when a scan is needed.
	index func(f entities.Filter) (name, attr, value string, ok bool)
}

func newCodec[T entities.Record[T], I any](kind string, to func(T) I, from func(I) T) codec[T] {
	return codec[T]{
		kind: kind,
		encode: func(rec T) (map[string]types.AttributeValue, error) {
			return attributevalue.MarshalMap(to(rec))
		},
		decode: func(av map[string]types.AttributeValue) (T, error) {
			var it I
			if err := attributevalue.UnmarshalMap(av, &it); err != nil {
				var zero T
				return zero, err
			}
			return from(it), nil
		},
		index: func(entities.Filter) (string, string, string, bool) { return "", "", "", false },
	}
}

// Orders table: PK id.
type orderItem struct {
	ID         string          `dynamodbav:"id"`
	ConsumerID string          `dynamodbav:"consumer_id"`
	SupplierID string          `dynamodbav:"supplier_id,omitempty"`
	Status     string          `dynamodbav:"status"`
	Items      []orderLineItem `dynamodbav:"items"`
	Version    int64           `dynamodbav:"version"`
	CreatedAt  string          `dynamodbav:"created_at"`
	UpdatedAt  string          `dynamodbav:"updated_at"`
}

type orderLineItem struct {
	ProductRef string  `dynamodbav:"product_ref"`
	Qty        int     `dynamodbav:"qty"`
	UnitPrice  float64 `dynamodbav:"unit_price"`
}

var orderCodec = newCodec("order", toOrderItem, fromOrderItem)

func toOrderItem(o entities.Order) orderItem {
	lines := make([]orderLineItem, 0, len(o.Items))
	for _, it := range o.Items {
		lines = append(lines, orderLineItem{ProductRef: it.ProductRef, Qty: it.Qty, UnitPrice: it.UnitPrice})
	}
	return orderItem{
		ID:         o.ID,
		ConsumerID: o.ConsumerID,
		SupplierID: o.SupplierID,
		Status:     string(o.Status),
		Items:      lines,
		Version:    o.Version,
		CreatedAt:  formatTime(o.CreatedAt),
		UpdatedAt:  formatTime(o.UpdatedAt),
	}
}

func fromOrderItem(it orderItem) entities.Order {
	var items []entities.OrderItem
	for _, l := range it.Items {
		items = append(items, entities.OrderItem{ProductRef: l.ProductRef, Qty: l.Qty, UnitPrice: l.UnitPrice})
	}
	return entities.Order{
		ID:         it.ID,
		ConsumerID: it.ConsumerID,
		SupplierID: it.SupplierID,
		Status:     entities.OrderStatus(it.Status),
		Items:      items,
		Version:    it.Version,
		CreatedAt:  parseTime(it.CreatedAt),
		UpdatedAt:  parseTime(it.UpdatedAt),
	}
}

// Links table: PK id.
type linkItem struct {
	ID         string     `dynamodbav:"id"`
	ConsumerID string     `dynamodbav:"consumer_id"`
	SupplierID string     `dynamodbav:"supplier_id"`
	Status     string     `dynamodbav:"status"`
	Notes      []noteItem `dynamodbav:"notes,omitempty"`
	Version    int64      `dynamodbav:"version"`
	CreatedAt  string     `dynamodbav:"created_at"`
	UpdatedAt  string     `dynamodbav:"updated_at"`
}

var linkCodec = newCodec("link", toLinkItem, fromLinkItem)

func toLinkItem(l entities.ConsumerLink) linkItem {
	return linkItem{
		ID:         l.ID,
		ConsumerID: l.ConsumerID,
		SupplierID: l.SupplierID,
		Status:     string(l.Status),
		Notes:      toNoteItems(l.Notes),
		Version:    l.Version,
		CreatedAt:  formatTime(l.CreatedAt),
		UpdatedAt:  formatTime(l.UpdatedAt),
	}
}

func fromLinkItem(it linkItem) entities.ConsumerLink {
	return entities.ConsumerLink{
		ID:         it.ID,
		ConsumerID: it.ConsumerID,
		SupplierID: it.SupplierID,
		Status:     entities.LinkStatus(it.Status),
		Notes:      fromNoteItems(it.Notes),
		Version:    it.Version,
		CreatedAt:  parseTime(it.CreatedAt),
		UpdatedAt:  parseTime(it.UpdatedAt),
	}
}

// Complaints table: PK id, GSI order_id-index (PK order_id).
type complaintItem struct {
	ID            string     `dynamodbav:"id"`
	OrderID       string     `dynamodbav:"order_id"`
	ConsumerRef   string     `dynamodbav:"consumer_ref,omitempty"`
	Type          string     `dynamodbav:"type,omitempty"`
	Status        string     `dynamodbav:"status"`
	Description   string     `dynamodbav:"description"`
	InternalNotes []noteItem `dynamodbav:"internal_notes,omitempty"`
	Version       int64      `dynamodbav:"version"`
	CreatedAt     string     `dynamodbav:"created_at"`
	UpdatedAt     string     `dynamodbav:"updated_at"`
}

var complaintCodec = func() codec[entities.Complaint] {
	c := newCodec("complaint", toComplaintItem, fromComplaintItem)
	c.index = func(f entities.Filter) (string, string, string, bool) {
		if f.OrderID != "" {
			return orderIDIndex, "order_id", f.OrderID, true
		}
		return "", "", "", false
	}
	return c
}()

func toComplaintItem(c entities.Complaint) complaintItem {
	return complaintItem{
		ID:            c.ID,
		OrderID:       c.OrderID,
		ConsumerRef:   c.ConsumerRef,
		Type:          c.Type,
		Status:        string(c.Status),
		Description:   c.Description,
		InternalNotes: toNoteItems(c.InternalNotes),
		Version:       c.Version,
		CreatedAt:     formatTime(c.CreatedAt),
		UpdatedAt:     formatTime(c.UpdatedAt),
	}
}

func fromComplaintItem(it complaintItem) entities.Complaint {
	return entities.Complaint{
		ID:            it.ID,
		OrderID:       it.OrderID,
		ConsumerRef:   it.ConsumerRef,
		Type:          it.Type,
		Status:        entities.ComplaintStatus(it.Status),
		Description:   it.Description,
		InternalNotes: fromNoteItems(it.InternalNotes),
		Version:       it.Version,
		CreatedAt:     parseTime(it.CreatedAt),
		UpdatedAt:     parseTime(it.UpdatedAt),
	}
}

// Incidents table: PK id, GSI order_id-index (PK order_id) and sparse GSI
// complaint_id-index (PK complaint_id).
type incidentItem struct {
	ID            string     `dynamodbav:"id"`
	OrderID       string     `dynamodbav:"order_id"`
	ComplaintID   string     `dynamodbav:"complaint_id,omitempty"`
	ConsumerRef   string     `dynamodbav:"consumer_ref,omitempty"`
	Summary       string     `dynamodbav:"summary,omitempty"`
	Status        string     `dynamodbav:"status"`
	Severity      string     `dynamodbav:"severity"`
	AssignedTo    string     `dynamodbav:"assigned_to,omitempty"`
	InternalNotes []noteItem `dynamodbav:"internal_notes,omitempty"`
	Version       int64      `dynamodbav:"version"`
	CreatedAt     string     `dynamodbav:"created_at"`
	UpdatedAt     string     `dynamodbav:"updated_at"`
}

var incidentCodec = func() codec[entities.Incident] {
	c := newCodec("incident", toIncidentItem, fromIncidentItem)
	c.index = func(f entities.Filter) (string, string, string, bool) {
		switch {
		case f.ComplaintID != "":
			return complaintIDIndex, "complaint_id", f.ComplaintID, true
		case f.OrderID != "":
			return orderIDIndex, "order_id", f.OrderID, true
		}
		return "", "", "", false
	}
	return c
}()

func toIncidentItem(i entities.Incident) incidentItem {
	return incidentItem{
		ID:            i.ID,
		OrderID:       i.OrderID,
		ComplaintID:   i.ComplaintID,
		ConsumerRef:   i.ConsumerRef,
		Summary:       i.Summary,
		Status:        string(i.Status),
		Severity:      string(i.Severity),
		AssignedTo:    i.AssignedTo,
		InternalNotes: toNoteItems(i.InternalNotes),
		Version:       i.Version,
		CreatedAt:     formatTime(i.CreatedAt),
		UpdatedAt:     formatTime(i.UpdatedAt),
	}
}

func fromIncidentItem(it incidentItem) entities.Incident {
	return entities.Incident{
		ID:            it.ID,
		OrderID:       it.OrderID,
		ComplaintID:   it.ComplaintID,
		ConsumerRef:   it.ConsumerRef,
		Summary:       it.Summary,
		Status:        entities.IncidentStatus(it.Status),
		Severity:      entities.Severity(it.Severity),
		AssignedTo:    it.AssignedTo,
		InternalNotes: fromNoteItems(it.InternalNotes),
		Version:       it.Version,
		CreatedAt:     parseTime(it.CreatedAt),
		UpdatedAt:     parseTime(it.UpdatedAt),
	}
}
