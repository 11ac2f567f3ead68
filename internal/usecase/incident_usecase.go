package usecase

import (
	"context"
	"fmt"
	"strings"

	"supplyops/internal/domain/entities"
	"supplyops/internal/domain/errs"
	"supplyops/internal/domain/permissions"
	"supplyops/internal/usecase/interfaces"

	"github.com/google/uuid"
)

const incidentKind = "incident"

// IIncidentUseCase exposes the incident lifecycle:
//
//	OPEN <-> IN_PROGRESS, either -> RESOLVED
//
// RESOLVED is terminal; reopening is refused.
type IIncidentUseCase interface {
	Open(ctx context.Context, incident entities.Incident, actor entities.Actor) (entities.Incident, error)
	SetStatus(ctx context.Context, incidentID string, call Call, status entities.IncidentStatus) (entities.Incident, error)
	Assign(ctx context.Context, incidentID string, call Call, staffRef string) (entities.Incident, error)
	Retriage(ctx context.Context, incidentID string, call Call, severity entities.Severity) (entities.Incident, error)
	AddNote(ctx context.Context, incidentID string, call Call, text string) (entities.Incident, error)
	GetByID(ctx context.Context, incidentID string, actor entities.Actor) (entities.Incident, error)
	List(ctx context.Context, actor entities.Actor, filter entities.Filter) ([]entities.Incident, error)
}

// incidentEdges maps a target status to the statuses it may be reached from.
var incidentEdges = map[entities.IncidentStatus][]entities.IncidentStatus{
	entities.IncidentStatusOpen:       {entities.IncidentStatusInProgress},
	entities.IncidentStatusInProgress: {entities.IncidentStatusOpen},
	entities.IncidentStatusResolved:   {entities.IncidentStatusOpen, entities.IncidentStatusInProgress},
}

type IncidentUseCase struct {
	repo   interfaces.IEntityStore[entities.Incident]
	orders interfaces.IEntityStore[entities.Order]
	obs    Observers
}

var _ IIncidentUseCase = (*IncidentUseCase)(nil)

func NewIncidentUseCase(repo interfaces.IEntityStore[entities.Incident], orders interfaces.IEntityStore[entities.Order], obs Observers) *IncidentUseCase {
	return &IncidentUseCase{repo: repo, orders: orders, obs: obs}
}

// Open creates an incident directly against an order, without a complaint.
func (u *IncidentUseCase) Open(ctx context.Context, incident entities.Incident, actor entities.Actor) (entities.Incident, error) {
	ev := event(incidentKind, incident.ID, string(permissions.IncidentOpen), actor)
	created, err := u.open(ctx, incident, actor)
	if err == nil {
		ev.EntityID, ev.To, ev.Version = created.ID, string(created.Status), created.Version
	}
	u.obs.done(ctx, ev, err)
	return created, err
}

func (u *IncidentUseCase) open(ctx context.Context, incident entities.Incident, actor entities.Actor) (entities.Incident, error) {
	if err := authorize(actor, permissions.IncidentOpen); err != nil {
		return entities.Incident{}, err
	}
	orderID, err := requireID("order_id", incident.OrderID)
	if err != nil {
		return entities.Incident{}, err
	}
	if strings.TrimSpace(string(incident.Severity)) == "" {
		incident.Severity = entities.SeverityMedium
	}
	sev, ok := entities.ParseSeverity(string(incident.Severity))
	if !ok {
		return entities.Incident{}, errs.Invalid("severity", fmt.Sprintf("unknown severity %q", incident.Severity))
	}
	incident.Severity = sev
	if _, err := u.orders.Get(ctx, orderID); err != nil {
		return entities.Incident{}, err
	}
	now := nowUTC()
	incident.OrderID = orderID
	incident.ComplaintID = ""
	incident.ID = strings.TrimSpace(incident.ID)
	if incident.ID == "" {
		incident.ID = uuid.NewString()
	}
	incident.Status = entities.IncidentStatusOpen
	incident.AssignedTo = strings.TrimSpace(incident.AssignedTo)
	incident.InternalNotes = nil
	incident.CreatedAt = now
	return u.repo.Create(ctx, incident)
}

func (u *IncidentUseCase) SetStatus(ctx context.Context, incidentID string, call Call, status entities.IncidentStatus) (entities.Incident, error) {
	ev := event(incidentKind, incidentID, "incident:status", call.Actor)
	before, updated, err := u.setStatus(ctx, incidentID, call, status)
	if err == nil {
		ev.From, ev.To, ev.Version = string(before.Status), string(updated.Status), updated.Version
	}
	u.obs.done(ctx, ev, err)
	return updated, err
}

func (u *IncidentUseCase) setStatus(ctx context.Context, incidentID string, call Call, status entities.IncidentStatus) (entities.Incident, entities.Incident, error) {
	if err := authorize(call.Actor, permissions.IncidentResolve); err != nil {
		return entities.Incident{}, entities.Incident{}, err
	}
	target, ok := entities.ParseIncidentStatus(string(status))
	if !ok {
		return entities.Incident{}, entities.Incident{}, errs.Invalid("status", fmt.Sprintf("unknown status %q", status))
	}
	e := edge[entities.IncidentStatus]{from: incidentEdges[target], to: target}
	return mutate(ctx, u.repo, incidentKind, incidentID, call.Version, func(i *entities.Incident) error {
		if !e.allows(i.Status) {
			return errs.Transition(incidentKind, i.ID, string(i.Status), string(target))
		}
		i.Status = target
		return nil
	})
}

// Assign sets the responsible staff member. The reference is not checked
// against any staff directory.
func (u *IncidentUseCase) Assign(ctx context.Context, incidentID string, call Call, staffRef string) (entities.Incident, error) {
	staffRef = strings.TrimSpace(staffRef)
	return u.edit(ctx, incidentID, call, permissions.IncidentAssign, func(i *entities.Incident) error {
		if staffRef == "" {
			return errs.Invalid("staff_ref", "required")
		}
		i.AssignedTo = staffRef
		return nil
	})
}

// Retriage changes the severity of an unresolved incident.
func (u *IncidentUseCase) Retriage(ctx context.Context, incidentID string, call Call, severity entities.Severity) (entities.Incident, error) {
	return u.edit(ctx, incidentID, call, permissions.IncidentRetriage, func(i *entities.Incident) error {
		sev, ok := entities.ParseSeverity(string(severity))
		if !ok {
			return errs.Invalid("severity", fmt.Sprintf("unknown severity %q", severity))
		}
		if i.Status == entities.IncidentStatusResolved {
			return errs.Transition(incidentKind, i.ID, string(i.Status), "RETRIAGE")
		}
		i.Severity = sev
		return nil
	})
}

func (u *IncidentUseCase) AddNote(ctx context.Context, incidentID string, call Call, text string) (entities.Incident, error) {
	text = strings.TrimSpace(text)
	return u.edit(ctx, incidentID, call, permissions.IncidentNote, func(i *entities.Incident) error {
		if text == "" {
			return errs.Invalid("note", "required")
		}
		i.InternalNotes = append(i.InternalNotes, note(text, call.Actor, nowUTC()))
		return nil
	})
}

// edit runs a non-status change. Input validation happens inside change, but
// always after the permission check.
func (u *IncidentUseCase) edit(ctx context.Context, incidentID string, call Call, action permissions.Action, change func(*entities.Incident) error) (entities.Incident, error) {
	ev := event(incidentKind, incidentID, string(action), call.Actor)
	var updated entities.Incident
	err := authorize(call.Actor, action)
	if err == nil {
		_, updated, err = mutate(ctx, u.repo, incidentKind, incidentID, call.Version, change)
	}
	if err == nil {
		ev.From, ev.To, ev.Version = string(updated.Status), string(updated.Status), updated.Version
	}
	u.obs.done(ctx, ev, err)
	return updated, err
}

func (u *IncidentUseCase) GetByID(ctx context.Context, incidentID string, actor entities.Actor) (entities.Incident, error) {
	if err := authorize(actor, permissions.ViewEntity); err != nil {
		return entities.Incident{}, err
	}
	incidentID, err := requireID("incident_id", incidentID)
	if err != nil {
		return entities.Incident{}, err
	}
	return u.repo.Get(ctx, incidentID)
}

func (u *IncidentUseCase) List(ctx context.Context, actor entities.Actor, filter entities.Filter) ([]entities.Incident, error) {
	if err := authorize(actor, permissions.ViewEntity); err != nil {
		return nil, err
	}
	return u.repo.List(ctx, filter)
}
