package entities

import (
	"strings"
	"time"
)

// Record is the contract every stored entity satisfies. T is the entity type
// itself so stores can hand back stamped copies without reflection.
type Record[T any] interface {
	GetID() string
	GetVersion() int64
	// Stamp returns a copy carrying the given version and update time.
	Stamp(version int64, at time.Time) T
	// Clone returns a deep copy; slices are never shared with the store.
	Clone() T
	Matches(f Filter) bool
}

// Filter narrows list results. Empty fields match everything.
type Filter struct {
	Status      string
	Query       string
	OrderID     string
	ComplaintID string
}

func (f Filter) matchQuery(fields ...string) bool {
	q := strings.ToLower(strings.TrimSpace(f.Query))
	if q == "" {
		return true
	}
	for _, field := range fields {
		if strings.Contains(strings.ToLower(field), q) {
			return true
		}
	}
	return false
}

func (f Filter) matchStatus(status string) bool {
	return f.Status == "" || strings.EqualFold(f.Status, status)
}

// Note is one entry of an append-only audit trail.
type Note struct {
	Text   string    `json:"text"`
	Author string    `json:"author,omitempty"`
	At     time.Time `json:"at"`
}

func cloneNotes(n []Note) []Note {
	if n == nil {
		return nil
	}
	out := make([]Note, len(n))
	copy(out, n)
	return out
}
