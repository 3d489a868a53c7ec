package models

import "time"

// Session event types.
const (
	EventStart       = "START"
	EventPause       = "PAUSE"
	EventStop        = "STOP"
	EventReset       = "RESET"
	EventResync      = "RESYNC"
	EventPhaseChange = "PHASE_CHANGE"
	EventComplete    = "COMPLETE"
)

// SessionEvent is a single log entry.
type SessionEvent struct {
	EventID     string    `json:"event_id"`
	OccurredAt  time.Time `json:"occurred_at"`
	Type        string    `json:"type"` // START | PAUSE | STOP | RESET | RESYNC | PHASE_CHANGE | COMPLETE
	WorkoutID   string    `json:"workout_id"`
	Description string    `json:"description"` // human-readable
	Metadata    any       `json:"metadata,omitempty"`
}
