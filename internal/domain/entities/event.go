package entities

import "time"

// LifecycleEvent describes one applied transition.
type LifecycleEvent struct {
	Entity   string    `json:"entity"`
	EntityID string    `json:"entity_id"`
	Action   string    `json:"action"`
	From     string    `json:"from,omitempty"`
	To       string    `json:"to,omitempty"`
	Version  int64     `json:"version"`
	ActorID  string    `json:"actor_id,omitempty"`
	Role     Role      `json:"role"`
	At       time.Time `json:"at"`
}
