package models

// Phase is the timer's current activity.
type Phase string

const (
	PhaseWork     Phase = "work"
	PhaseRest     Phase = "rest"
	PhasePairRest Phase = "pairRest"
	PhaseFinished Phase = "finished"
)

// TimerState is the mutable snapshot of a running session.
type TimerState struct {
	IsActive         bool  `json:"is_active"`
	IsPaused         bool  `json:"is_paused"`
	CurrentPhase     Phase `json:"current_phase"`      // work | rest | pairRest | finished
	TimeRemaining    int   `json:"time_remaining"`     // seconds
	CurrentRound     int   `json:"current_round"`      // 1-based
	CurrentPairIndex int   `json:"current_pair_index"` // 0-based
}
