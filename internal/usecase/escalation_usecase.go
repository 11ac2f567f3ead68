package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"supplyops/internal/domain/entities"
	"supplyops/internal/domain/errs"
	"supplyops/internal/domain/permissions"
	"supplyops/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// escalationNamespace seeds the UUIDv5 used as incident id for an escalated
// complaint, so one complaint can only ever map to one incident id.
var escalationNamespace = uuid.MustParse("6f1c1d0e-5b7a-4f43-9a55-3c1e0b7a2d11")

// EscalatedIncidentID returns the incident id reserved for complaintID.
func EscalatedIncidentID(complaintID string) string {
	return uuid.NewSHA1(escalationNamespace, []byte(complaintID)).String()
}

// IEscalationUseCase turns a complaint into an incident in one atomic step.
type IEscalationUseCase interface {
	EscalateToIncident(ctx context.Context, complaintID string, call Call, severity entities.Severity) (entities.Incident, error)
}

type EscalationUseCase struct {
	complaints      interfaces.IEntityStore[entities.Complaint]
	incidents       interfaces.IEntityStore[entities.Incident]
	tx              interfaces.IEscalationStore
	locker          interfaces.ILocker
	defaultSeverity entities.Severity
	obs             Observers
}

var _ IEscalationUseCase = (*EscalationUseCase)(nil)

func NewEscalationUseCase(
	complaints interfaces.IEntityStore[entities.Complaint],
	incidents interfaces.IEntityStore[entities.Incident],
	tx interfaces.IEscalationStore,
	locker interfaces.ILocker,
	defaultSeverity entities.Severity,
	obs Observers,
) *EscalationUseCase {
	if sev, ok := entities.ParseSeverity(string(defaultSeverity)); ok {
		defaultSeverity = sev
	} else {
		defaultSeverity = entities.SeverityMedium
	}
	return &EscalationUseCase{
		complaints:      complaints,
		incidents:       incidents,
		tx:              tx,
		locker:          locker,
		defaultSeverity: defaultSeverity,
		obs:             obs,
	}
}

// EscalateToIncident moves the complaint to ESCALATED and creates its incident
// (status OPEN, order copied from the complaint). Runs are serialized per
// complaint. If the complaint is already escalated the existing incident is
// returned and nothing is written.
func (u *EscalationUseCase) EscalateToIncident(ctx context.Context, complaintID string, call Call, severity entities.Severity) (entities.Incident, error) {
	ev := event(complaintKind, complaintID, string(permissions.ComplaintEscalate), call.Actor)
	before, incident, created, err := u.escalate(ctx, complaintID, call, severity)
	if err == nil && !created {
		zap.L().Info("[complaint][usecase] complaint:escalate already escalated",
			zap.String("id", complaintID), zap.String("incident_id", incident.ID))
		return incident, nil
	}
	if err == nil {
		ev.From, ev.To, ev.Version = string(before.Status), string(entities.ComplaintStatusEscalated), before.Version+1
	}
	u.obs.done(ctx, ev, err)
	if err == nil {
		inc := event(incidentKind, incident.ID, string(permissions.IncidentOpen), call.Actor)
		inc.To, inc.Version = string(incident.Status), incident.Version
		u.obs.done(ctx, inc, nil)
	}
	return incident, err
}

func (u *EscalationUseCase) escalate(ctx context.Context, complaintID string, call Call, severity entities.Severity) (entities.Complaint, entities.Incident, bool, error) {
	if err := authorize(call.Actor, permissions.ComplaintEscalate); err != nil {
		return entities.Complaint{}, entities.Incident{}, false, err
	}
	complaintID, err := requireID("complaint_id", complaintID)
	if err != nil {
		return entities.Complaint{}, entities.Incident{}, false, err
	}
	if strings.TrimSpace(string(severity)) == "" {
		severity = u.defaultSeverity
	}
	sev, ok := entities.ParseSeverity(string(severity))
	if !ok {
		return entities.Complaint{}, entities.Incident{}, false, errs.Invalid("severity", fmt.Sprintf("unknown severity %q", severity))
	}

	release, err := u.locker.Acquire(ctx, "escalation:"+complaintID)
	if err != nil {
		return entities.Complaint{}, entities.Incident{}, false, err
	}
	defer release()

	complaint, err := u.complaints.Get(ctx, complaintID)
	if err != nil {
		return entities.Complaint{}, entities.Incident{}, false, err
	}
	if complaint.Status == entities.ComplaintStatusEscalated {
		existing, err := u.existingIncident(ctx, complaintID)
		return complaint, existing, false, err
	}
	if err := checkVersion(complaintKind, complaintID, call.Version, complaint.Version); err != nil {
		return complaint, entities.Incident{}, false, err
	}
	e := complaintEdges[permissions.ComplaintEscalate]
	if !e.allows(complaint.Status) {
		return complaint, entities.Incident{}, false, errs.Transition(complaintKind, complaintID, string(complaint.Status), string(e.to))
	}

	now := nowUTC()
	incident := entities.Incident{
		ID:          EscalatedIncidentID(complaintID),
		OrderID:     complaint.OrderID,
		ComplaintID: complaintID,
		ConsumerRef: complaint.ConsumerRef,
		Summary:     complaint.Description,
		Status:      entities.IncidentStatusOpen,
		Severity:    sev,
		InternalNotes: []entities.Note{
			note("Escalated from complaint "+complaintID+".", call.Actor, now),
		},
		CreatedAt: now,
	}
	next := complaint.Clone()
	next.Status = e.to
	next.InternalNotes = append(next.InternalNotes, note(noteEscalated, call.Actor, now))

	_, stored, err := u.tx.CommitEscalation(ctx, next, incident)
	if err != nil {
		return complaint, entities.Incident{}, false, err
	}
	return complaint, stored, true, nil
}

func (u *EscalationUseCase) existingIncident(ctx context.Context, complaintID string) (entities.Incident, error) {
	inc, err := u.incidents.Get(ctx, EscalatedIncidentID(complaintID))
	if err == nil {
		return inc, nil
	}
	if !errors.Is(err, errs.ErrNotFound) {
		return entities.Incident{}, err
	}
	// Incidents attached under a different id (e.g. imported data).
	found, err := u.incidents.List(ctx, entities.Filter{ComplaintID: complaintID})
	if err != nil {
		return entities.Incident{}, err
	}
	if len(found) == 0 {
		return entities.Incident{}, fmt.Errorf("complaint %s is escalated but has no incident", complaintID)
	}
	return found[0], nil
}
