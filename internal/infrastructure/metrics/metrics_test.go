package metrics

import (
	"errors"
	"testing"

	"supplyops/internal/domain/errs"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestOutcome(t *testing.T) {
	assert.Equal(t, "ok", Outcome(nil))
	assert.Equal(t, "permission_denied", Outcome(&errs.PermissionError{Role: "SALES", Action: "order:accept"}))
	assert.Equal(t, "invalid_transition", Outcome(errs.Transition("order", "1", "NEW", "COMPLETED")))
	assert.Equal(t, "not_found", Outcome(errs.NotFound("order", "1")))
	assert.Equal(t, "conflict", Outcome(errs.Conflict("order", "1", 1, 2)))
	assert.Equal(t, "invalid", Outcome(errs.Invalid("note", "required")))
	assert.Equal(t, "error", Outcome(errors.New("boom")))
}

func TestRecorder_Observe(t *testing.T) {
	reg := prometheus.NewRegistry()
	r := NewRecorder(reg)

	r.Observe("order", "order:accept", nil)
	r.Observe("order", "order:accept", nil)
	r.Observe("order", "order:accept", errs.NotFound("order", "x"))

	assert.Equal(t, 2.0, testutil.ToFloat64(r.operations.WithLabelValues("order", "order:accept", "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.operations.WithLabelValues("order", "order:accept", "not_found")))
}
