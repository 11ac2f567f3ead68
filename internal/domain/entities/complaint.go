package entities

import "time"

type ComplaintStatus string

const (
	ComplaintStatusOpen      ComplaintStatus = "OPEN"
	ComplaintStatusInReview  ComplaintStatus = "IN_REVIEW"
	ComplaintStatusResolved  ComplaintStatus = "RESOLVED"
	ComplaintStatusEscalated ComplaintStatus = "ESCALATED"
)

func (s ComplaintStatus) String() string { return string(s) }

func (s ComplaintStatus) Terminal() bool {
	return s == ComplaintStatusResolved || s == ComplaintStatusEscalated
}

// Complaint is raised by a consumer against one of their orders.
//
// OrderID and Description are fixed at creation. InternalNotes only grows.
type Complaint struct {
	ID            string          `json:"id"`
	OrderID       string          `json:"order_id"`
	ConsumerRef   string          `json:"consumer_ref"`
	Type          string          `json:"type,omitempty"`
	Status        ComplaintStatus `json:"status"`
	Description   string          `json:"description"`
	InternalNotes []Note          `json:"internal_notes"`
	Version       int64           `json:"version"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

var _ Record[Complaint] = Complaint{}

func (c Complaint) GetID() string     { return c.ID }
func (c Complaint) GetVersion() int64 { return c.Version }

func (c Complaint) Stamp(version int64, at time.Time) Complaint {
	c.Version = version
	c.UpdatedAt = at
	return c
}

func (c Complaint) Clone() Complaint {
	c.InternalNotes = cloneNotes(c.InternalNotes)
	return c
}

func (c Complaint) Matches(f Filter) bool {
	if f.OrderID != "" && f.OrderID != c.OrderID {
		return false
	}
	return f.matchStatus(string(c.Status)) && f.matchQuery(c.ID, c.OrderID, c.ConsumerRef, c.Type, c.Description)
}
