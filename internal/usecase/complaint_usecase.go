package usecase

import (
	"context"
	"strings"

	"supplyops/internal/domain/entities"
	"supplyops/internal/domain/errs"
	"supplyops/internal/domain/permissions"
	"supplyops/internal/usecase/interfaces"

	"github.com/google/uuid"
)

const complaintKind = "complaint"

const (
	noteReviewStarted   = "Complaint moved to review."
	noteResolvedDefault = "Issue resolved, consumer informed."
	noteEscalated       = "Escalated to incident."
)

// IComplaintUseCase exposes the complaint lifecycle:
//
//	OPEN -> IN_REVIEW -> RESOLVED
//	OPEN | IN_REVIEW -> ESCALATED
//
// RESOLVED and ESCALATED are terminal for status; notes may still be added.
type IComplaintUseCase interface {
	Submit(ctx context.Context, complaint entities.Complaint) (entities.Complaint, error)
	StartReview(ctx context.Context, complaintID string, call Call) (entities.Complaint, error)
	Resolve(ctx context.Context, complaintID string, call Call, resolution string) (entities.Complaint, error)
	Escalate(ctx context.Context, complaintID string, call Call, severity entities.Severity) (entities.Incident, error)
	AddNote(ctx context.Context, complaintID string, call Call, text string) (entities.Complaint, error)
	GetByID(ctx context.Context, complaintID string, actor entities.Actor) (entities.Complaint, error)
	List(ctx context.Context, actor entities.Actor, filter entities.Filter) ([]entities.Complaint, error)
}

var complaintEdges = map[permissions.Action]edge[entities.ComplaintStatus]{
	permissions.ComplaintReview: {
		from: []entities.ComplaintStatus{entities.ComplaintStatusOpen},
		to:   entities.ComplaintStatusInReview,
	},
	permissions.ComplaintResolve: {
		from: []entities.ComplaintStatus{entities.ComplaintStatusOpen, entities.ComplaintStatusInReview},
		to:   entities.ComplaintStatusResolved,
	},
	permissions.ComplaintEscalate: {
		from: []entities.ComplaintStatus{entities.ComplaintStatusOpen, entities.ComplaintStatusInReview},
		to:   entities.ComplaintStatusEscalated,
	},
}

type ComplaintUseCase struct {
	repo      interfaces.IEntityStore[entities.Complaint]
	orders    interfaces.IEntityStore[entities.Order]
	escalator IEscalationUseCase
	obs       Observers
}

var _ IComplaintUseCase = (*ComplaintUseCase)(nil)

func NewComplaintUseCase(
	repo interfaces.IEntityStore[entities.Complaint],
	orders interfaces.IEntityStore[entities.Order],
	escalator IEscalationUseCase,
	obs Observers,
) *ComplaintUseCase {
	return &ComplaintUseCase{repo: repo, orders: orders, escalator: escalator, obs: obs}
}

// Submit records a consumer complaint against an existing order.
func (u *ComplaintUseCase) Submit(ctx context.Context, complaint entities.Complaint) (entities.Complaint, error) {
	orderID, err := requireID("order_id", complaint.OrderID)
	if err != nil {
		return entities.Complaint{}, err
	}
	complaint.Description = strings.TrimSpace(complaint.Description)
	if complaint.Description == "" {
		return entities.Complaint{}, errs.Invalid("description", "required")
	}
	if _, err := u.orders.Get(ctx, orderID); err != nil {
		return entities.Complaint{}, err
	}
	complaint.OrderID = orderID
	complaint.ID = strings.TrimSpace(complaint.ID)
	if complaint.ID == "" {
		complaint.ID = uuid.NewString()
	}
	complaint.Status = entities.ComplaintStatusOpen
	complaint.InternalNotes = nil
	complaint.CreatedAt = nowUTC()
	return u.repo.Create(ctx, complaint)
}

func (u *ComplaintUseCase) StartReview(ctx context.Context, complaintID string, call Call) (entities.Complaint, error) {
	return u.transition(ctx, complaintID, call, permissions.ComplaintReview, noteReviewStarted)
}

// Resolve closes the complaint. An empty resolution falls back to the
// canonical note.
func (u *ComplaintUseCase) Resolve(ctx context.Context, complaintID string, call Call, resolution string) (entities.Complaint, error) {
	text := strings.TrimSpace(resolution)
	if text == "" {
		text = noteResolvedDefault
	}
	return u.transition(ctx, complaintID, call, permissions.ComplaintResolve, text)
}

// Escalate hands over to the escalation coordinator. Escalating an already
// escalated complaint returns its existing incident.
func (u *ComplaintUseCase) Escalate(ctx context.Context, complaintID string, call Call, severity entities.Severity) (entities.Incident, error) {
	return u.escalator.EscalateToIncident(ctx, complaintID, call, severity)
}

func (u *ComplaintUseCase) AddNote(ctx context.Context, complaintID string, call Call, text string) (entities.Complaint, error) {
	ev := event(complaintKind, complaintID, string(permissions.ComplaintNote), call.Actor)
	updated, err := u.addNote(ctx, complaintID, call, text)
	if err == nil {
		ev.From, ev.To, ev.Version = string(updated.Status), string(updated.Status), updated.Version
	}
	u.obs.done(ctx, ev, err)
	return updated, err
}

func (u *ComplaintUseCase) addNote(ctx context.Context, complaintID string, call Call, text string) (entities.Complaint, error) {
	if err := authorize(call.Actor, permissions.ComplaintNote); err != nil {
		return entities.Complaint{}, err
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return entities.Complaint{}, errs.Invalid("note", "required")
	}
	_, updated, err := mutate(ctx, u.repo, complaintKind, complaintID, call.Version, func(c *entities.Complaint) error {
		c.InternalNotes = append(c.InternalNotes, note(text, call.Actor, nowUTC()))
		return nil
	})
	return updated, err
}

func (u *ComplaintUseCase) transition(ctx context.Context, complaintID string, call Call, action permissions.Action, text string) (entities.Complaint, error) {
	ev := event(complaintKind, complaintID, string(action), call.Actor)
	before, updated, err := u.apply(ctx, complaintID, call, action, text)
	if err == nil {
		ev.From, ev.To, ev.Version = string(before.Status), string(updated.Status), updated.Version
	}
	u.obs.done(ctx, ev, err)
	return updated, err
}

func (u *ComplaintUseCase) apply(ctx context.Context, complaintID string, call Call, action permissions.Action, text string) (entities.Complaint, entities.Complaint, error) {
	if err := authorize(call.Actor, action); err != nil {
		return entities.Complaint{}, entities.Complaint{}, err
	}
	e := complaintEdges[action]
	return mutate(ctx, u.repo, complaintKind, complaintID, call.Version, func(c *entities.Complaint) error {
		if !e.allows(c.Status) {
			return errs.Transition(complaintKind, c.ID, string(c.Status), string(e.to))
		}
		c.Status = e.to
		c.InternalNotes = append(c.InternalNotes, note(text, call.Actor, nowUTC()))
		return nil
	})
}

func (u *ComplaintUseCase) GetByID(ctx context.Context, complaintID string, actor entities.Actor) (entities.Complaint, error) {
	if err := authorize(actor, permissions.ViewEntity); err != nil {
		return entities.Complaint{}, err
	}
	complaintID, err := requireID("complaint_id", complaintID)
	if err != nil {
		return entities.Complaint{}, err
	}
	return u.repo.Get(ctx, complaintID)
}

func (u *ComplaintUseCase) List(ctx context.Context, actor entities.Actor, filter entities.Filter) ([]entities.Complaint, error) {
	if err := authorize(actor, permissions.ViewEntity); err != nil {
		return nil, err
	}
	return u.repo.List(ctx, filter)
}
