package errs

import (
	"errors"
	"testing"
)

func TestTypedErrorsUnwrapToSentinels(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want error
	}{
		{"transition", Transition("order", "101", "COMPLETED", "IN_PROGRESS"), ErrInvalidTransition},
		{"permission", &PermissionError{Role: "SALES", Action: "order:complete"}, ErrPermissionDenied},
		{"not found", NotFound("order", "404"), ErrNotFound},
		{"conflict", Conflict("link", "3", 1, 2), ErrConcurrentModification},
		{"invalid", Invalid("note", "required"), ErrValidation},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if !errors.Is(tc.err, tc.want) {
				t.Fatalf("expected %v to wrap %v", tc.err, tc.want)
			}
		})
	}
}

func TestTransitionErrorCarriesStates(t *testing.T) {
	var te *TransitionError
	if !errors.As(Transition("order", "101", "COMPLETED", "IN_PROGRESS"), &te) {
		t.Fatalf("expected *TransitionError")
	}
	if te.From != "COMPLETED" || te.Attempted != "IN_PROGRESS" {
		t.Fatalf("unexpected states: %+v", te)
	}
	want := "invalid transition: order 101 cannot go from COMPLETED to IN_PROGRESS"
	if te.Error() != want {
		t.Fatalf("expected %q, got %q", want, te.Error())
	}
}
