package interfaces

// ITransitionRecorder counts lifecycle attempts by outcome.
//
//go:generate mockgen -source=transition_recorder_interface.go -destination=mocks/mock_transition_recorder.go -package=mock_interfaces
type ITransitionRecorder interface {
	Observe(entity, action string, err error)
}
