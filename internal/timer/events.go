package timer

import (
	"time"

	"tabata_timer/internal/models"
)

// EventType defines the type of Machine event.
type EventType string

const (
	EventPhaseChange EventType = "phase_change"
	EventTick        EventType = "tick"
	EventControl     EventType = "control"
)

// Event represents a Machine update for observers.
type Event struct {
	Type    EventType
	Command CommandType // set on EventControl
	State   models.TimerState
	// Transitions lists every boundary crossed by one tick, in order.
	Transitions []Transition
	Progress    float64
	At          time.Time
}
