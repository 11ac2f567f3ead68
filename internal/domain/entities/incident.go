package entities

import (
	"strings"
	"time"
)

type IncidentStatus string

const (
	IncidentStatusOpen       IncidentStatus = "OPEN"
	IncidentStatusInProgress IncidentStatus = "IN_PROGRESS"
	IncidentStatusResolved   IncidentStatus = "RESOLVED"
)

func (s IncidentStatus) String() string { return string(s) }

func ParseIncidentStatus(s string) (IncidentStatus, bool) {
	switch st := IncidentStatus(strings.ToUpper(strings.TrimSpace(s))); st {
	case IncidentStatusOpen, IncidentStatusInProgress, IncidentStatusResolved:
		return st, true
	}
	return "", false
}

type Severity string

const (
	SeverityLow    Severity = "LOW"
	SeverityMedium Severity = "MEDIUM"
	SeverityHigh   Severity = "HIGH"
)

func (s Severity) String() string { return string(s) }

func ParseSeverity(s string) (Severity, bool) {
	switch sev := Severity(strings.ToUpper(strings.TrimSpace(s))); sev {
	case SeverityLow, SeverityMedium, SeverityHigh:
		return sev, true
	}
	return "", false
}

// Incident tracks an operational problem tied to an order. ComplaintID is set
// iff the incident came from a complaint escalation.
type Incident struct {
	ID            string         `json:"id"`
	OrderID       string         `json:"order_id"`
	ComplaintID   string         `json:"complaint_id,omitempty"`
	ConsumerRef   string         `json:"consumer_ref,omitempty"`
	Summary       string         `json:"summary,omitempty"`
	Status        IncidentStatus `json:"status"`
	Severity      Severity       `json:"severity"`
	AssignedTo    string         `json:"assigned_to,omitempty"`
	InternalNotes []Note         `json:"internal_notes"`
	Version       int64          `json:"version"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
}

var _ Record[Incident] = Incident{}

func (i Incident) GetID() string     { return i.ID }
func (i Incident) GetVersion() int64 { return i.Version }

func (i Incident) Stamp(version int64, at time.Time) Incident {
	i.Version = version
	i.UpdatedAt = at
	return i
}

func (i Incident) Clone() Incident {
	i.InternalNotes = cloneNotes(i.InternalNotes)
	return i
}

func (i Incident) Matches(f Filter) bool {
	if f.OrderID != "" && f.OrderID != i.OrderID {
		return false
	}
	if f.ComplaintID != "" && f.ComplaintID != i.ComplaintID {
		return false
	}
	return f.matchStatus(string(i.Status)) && f.matchQuery(i.ID, i.OrderID, i.ComplaintID, i.Summary, i.AssignedTo)
}
