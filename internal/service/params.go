package service

import (
	"time"

	"tabata_timer/internal/timer"
)

// SelectParams chooses the workout for a new session.
type SelectParams struct {
	WorkoutID string
	Config    *timer.Config // nil: configured defaults, pair rest from the workout
	Resume    bool          // continue from an unfinished progress record
}

// LogFilter supports history filtering by time range, type and workout.
type LogFilter struct {
	From      time.Time // inclusive; zero means no lower bound
	To        time.Time // inclusive; zero means no upper bound
	Type      string    // "", "START", "PAUSE", "STOP", "RESET", "RESYNC", "PHASE_CHANGE", "COMPLETE"
	WorkoutID string
	Limit     int
}
