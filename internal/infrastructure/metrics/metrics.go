// Package metrics exports lifecycle counters to Prometheus.
package metrics

import (
	"errors"

	"supplyops/internal/domain/errs"
	"supplyops/internal/usecase/interfaces"

	"github.com/prometheus/client_golang/prometheus"
)

var _ interfaces.ITransitionRecorder = (*Recorder)(nil)

// Recorder counts lifecycle operations by entity, action and outcome.
type Recorder struct {
	operations *prometheus.CounterVec
}

func NewRecorder(reg prometheus.Registerer) *Recorder {
	r := &Recorder{
		operations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "supplyops",
			Name:      "lifecycle_operations_total",
			Help:      "Lifecycle operations by entity, action and outcome.",
		}, []string{"entity", "action", "outcome"}),
	}
	reg.MustRegister(r.operations)
	return r
}

func (r *Recorder) Observe(entity, action string, err error) {
	r.operations.WithLabelValues(entity, action, Outcome(err)).Inc()
}

// Outcome classifies err into a low-cardinality label.
func Outcome(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, errs.ErrPermissionDenied):
		return "permission_denied"
	case errors.Is(err, errs.ErrInvalidTransition):
		return "invalid_transition"
	case errors.Is(err, errs.ErrNotFound):
		return "not_found"
	case errors.Is(err, errs.ErrConcurrentModification):
		return "conflict"
	case errors.Is(err, errs.ErrValidation):
		return "invalid"
	default:
		return "error"
	}
}
