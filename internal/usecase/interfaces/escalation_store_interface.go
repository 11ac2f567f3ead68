package interfaces

import (
	"context"

	"supplyops/internal/domain/entities"
)

// IEscalationStore commits the two writes of an escalation as one unit.
//
// complaint carries the version the caller read; incident is new. Either both
// are persisted or neither. A version mismatch on the complaint, or an
// incident already existing with the same id, yields errs.ErrConcurrentModification.
//
//go:generate mockgen -source=escalation_store_interface.go -destination=mocks/mock_escalation_store.go -package=mock_interfaces
type IEscalationStore interface {
	CommitEscalation(ctx context.Context, complaint entities.Complaint, incident entities.Incident) (entities.Complaint, entities.Incident, error)
}
