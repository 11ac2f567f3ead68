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

const linkKind = "link"

// ILinkUseCase exposes the consumer link lifecycle. Both ACTIVE and BLOCKED
// can be re-entered; every transition appends to the link notes.
type ILinkUseCase interface {
	Request(ctx context.Context, link entities.ConsumerLink, message string) (entities.ConsumerLink, error)
	Approve(ctx context.Context, linkID string, call Call) (entities.ConsumerLink, error)
	Reject(ctx context.Context, linkID string, call Call, reason string) (entities.ConsumerLink, error)
	Unlink(ctx context.Context, linkID string, call Call, reason string) (entities.ConsumerLink, error)
	Block(ctx context.Context, linkID string, call Call, reason string) (entities.ConsumerLink, error)
	Unblock(ctx context.Context, linkID string, call Call, reason string) (entities.ConsumerLink, error)
	GetByID(ctx context.Context, linkID string, actor entities.Actor) (entities.ConsumerLink, error)
	List(ctx context.Context, actor entities.Actor, filter entities.Filter) ([]entities.ConsumerLink, error)
}

type linkEdge struct {
	edge[entities.LinkStatus]
	defaultNote string
}

var linkEdges = map[permissions.Action]linkEdge{
	permissions.LinkApprove: {edge[entities.LinkStatus]{from: []entities.LinkStatus{entities.LinkStatusPending}, to: entities.LinkStatusActive}, "Link approved."},
	permissions.LinkReject:  {edge[entities.LinkStatus]{from: []entities.LinkStatus{entities.LinkStatusPending}, to: entities.LinkStatusBlocked}, "Link request rejected."},
	permissions.LinkUnlink:  {edge[entities.LinkStatus]{from: []entities.LinkStatus{entities.LinkStatusActive}, to: entities.LinkStatusBlocked}, "Unlinked by supplier."},
	permissions.LinkBlock:   {edge[entities.LinkStatus]{from: []entities.LinkStatus{entities.LinkStatusActive}, to: entities.LinkStatusBlocked}, "Blocked by supplier."},
	permissions.LinkUnblock: {edge[entities.LinkStatus]{from: []entities.LinkStatus{entities.LinkStatusBlocked}, to: entities.LinkStatusActive}, "Unblocked by supplier."},
}

type LinkUseCase struct {
	repo interfaces.IEntityStore[entities.ConsumerLink]
	obs  Observers
}

var _ ILinkUseCase = (*LinkUseCase)(nil)

func NewLinkUseCase(repo interfaces.IEntityStore[entities.ConsumerLink], obs Observers) *LinkUseCase {
	return &LinkUseCase{repo: repo, obs: obs}
}

// Request records a consumer's link request in PENDING. An optional message
// becomes the first note.
func (u *LinkUseCase) Request(ctx context.Context, link entities.ConsumerLink, message string) (entities.ConsumerLink, error) {
	link.ConsumerID = strings.TrimSpace(link.ConsumerID)
	link.SupplierID = strings.TrimSpace(link.SupplierID)
	if link.ConsumerID == "" {
		return entities.ConsumerLink{}, errs.Invalid("consumer_id", "required")
	}
	if link.SupplierID == "" {
		return entities.ConsumerLink{}, errs.Invalid("supplier_id", "required")
	}
	link.ID = strings.TrimSpace(link.ID)
	if link.ID == "" {
		link.ID = uuid.NewString()
	}
	now := nowUTC()
	link.Status = entities.LinkStatusPending
	link.CreatedAt = now
	link.Notes = nil
	if m := strings.TrimSpace(message); m != "" {
		link.Notes = []entities.Note{{Text: m, Author: link.ConsumerID, At: now}}
	}
	return u.repo.Create(ctx, link)
}

func (u *LinkUseCase) Approve(ctx context.Context, linkID string, call Call) (entities.ConsumerLink, error) {
	return u.transition(ctx, linkID, call, permissions.LinkApprove, "")
}

func (u *LinkUseCase) Reject(ctx context.Context, linkID string, call Call, reason string) (entities.ConsumerLink, error) {
	return u.transition(ctx, linkID, call, permissions.LinkReject, reason)
}

func (u *LinkUseCase) Unlink(ctx context.Context, linkID string, call Call, reason string) (entities.ConsumerLink, error) {
	return u.transition(ctx, linkID, call, permissions.LinkUnlink, reason)
}

func (u *LinkUseCase) Block(ctx context.Context, linkID string, call Call, reason string) (entities.ConsumerLink, error) {
	return u.transition(ctx, linkID, call, permissions.LinkBlock, reason)
}

func (u *LinkUseCase) Unblock(ctx context.Context, linkID string, call Call, reason string) (entities.ConsumerLink, error) {
	return u.transition(ctx, linkID, call, permissions.LinkUnblock, reason)
}

func (u *LinkUseCase) transition(ctx context.Context, linkID string, call Call, action permissions.Action, reason string) (entities.ConsumerLink, error) {
	ev := event(linkKind, linkID, string(action), call.Actor)
	before, updated, err := u.apply(ctx, linkID, call, action, reason)
	if err == nil {
		ev.From, ev.To, ev.Version = string(before.Status), string(updated.Status), updated.Version
	}
	u.obs.done(ctx, ev, err)
	return updated, err
}

func (u *LinkUseCase) apply(ctx context.Context, linkID string, call Call, action permissions.Action, reason string) (entities.ConsumerLink, entities.ConsumerLink, error) {
	if err := authorize(call.Actor, action); err != nil {
		return entities.ConsumerLink{}, entities.ConsumerLink{}, err
	}
	e := linkEdges[action]
	text := strings.TrimSpace(reason)
	if text == "" {
		text = e.defaultNote
	}
	return mutate(ctx, u.repo, linkKind, linkID, call.Version, func(l *entities.ConsumerLink) error {
		if !e.allows(l.Status) {
			return errs.Transition(linkKind, l.ID, string(l.Status), string(e.to))
		}
		l.Status = e.to
		l.Notes = append(l.Notes, note(text, call.Actor, nowUTC()))
		return nil
	})
}

func (u *LinkUseCase) GetByID(ctx context.Context, linkID string, actor entities.Actor) (entities.ConsumerLink, error) {
	if err := authorize(actor, permissions.ViewEntity); err != nil {
		return entities.ConsumerLink{}, err
	}
	linkID, err := requireID("link_id", linkID)
	if err != nil {
		return entities.ConsumerLink{}, err
	}
	return u.repo.Get(ctx, linkID)
}

func (u *LinkUseCase) List(ctx context.Context, actor entities.Actor, filter entities.Filter) ([]entities.ConsumerLink, error) {
	if err := authorize(actor, permissions.ViewEntity); err != nil {
		return nil, err
	}
	return u.repo.List(ctx, filter)
}
