package models

import "time"

// WorkoutProgress is the persisted resume point of one workout.
type WorkoutProgress struct {
	WorkoutID        string     `json:"workout_id"`
	CurrentPairIndex int        `json:"current_pair_index"`
	CurrentRound     int        `json:"current_round"`
	IsCompleted      bool       `json:"is_completed"`
	CompletedAt      *time.Time `json:"completed_at,omitempty"`
}

// AudioSettings are the shell's cue preferences.
type AudioSettings struct {
	Enabled bool    `json:"enabled"`
	Volume  float64 `json:"volume"` // 0..1
}
