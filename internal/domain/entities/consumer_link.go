package entities

import "time"

type LinkStatus string

const (
	LinkStatusPending LinkStatus = "PENDING"
	LinkStatusActive  LinkStatus = "ACTIVE"
	LinkStatusBlocked LinkStatus = "BLOCKED"
)

func (s LinkStatus) String() string { return string(s) }

// ConsumerLink is the relationship between a consumer and the supplier.
// Notes is an append-only audit trail.
type ConsumerLink struct {
	ID         string     `json:"id"`
	ConsumerID string     `json:"consumer_id"`
	SupplierID string     `json:"supplier_id"`
	Status     LinkStatus `json:"status"`
	Notes      []Note     `json:"notes"`
	Version    int64      `json:"version"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

var _ Record[ConsumerLink] = ConsumerLink{}

func (l ConsumerLink) GetID() string     { return l.ID }
func (l ConsumerLink) GetVersion() int64 { return l.Version }

func (l ConsumerLink) Stamp(version int64, at time.Time) ConsumerLink {
	l.Version = version
	l.UpdatedAt = at
	return l
}

func (l ConsumerLink) Clone() ConsumerLink {
	l.Notes = cloneNotes(l.Notes)
	return l
}

func (l ConsumerLink) Matches(f Filter) bool {
	return f.matchStatus(string(l.Status)) && f.matchQuery(l.ID, l.ConsumerID, l.SupplierID)
}
