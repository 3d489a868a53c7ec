// Package timer implements the interval timer state machine.
//
// The transition logic is a pure reducer over models.TimerState; Machine wraps
// it with a monotonic time base and a ticking goroutine.
package timer

import (
	"errors"

	"tabata_timer/internal/models"
)

// Config holds the phase lengths, in seconds. It is fixed for a session.
type Config struct {
	WorkTime     int `json:"work_time"`
	RestTime     int `json:"rest_time"`
	PairRestTime int `json:"pair_rest_time"`
}

// DefaultConfig is 20s work, 10s rest and a minute between pairs.
var DefaultConfig = Config{WorkTime: 20, RestTime: 10, PairRestTime: 60}

var ErrInvalidConfig = errors.New("invalid timer config: work_time > 0, rest_time >= 0 and pair_rest_time >= 0 are required")

// Validate reports whether the phase lengths are usable.
func (c Config) Validate() error {
	if c.WorkTime <= 0 || c.RestTime < 0 || c.PairRestTime < 0 {
		return ErrInvalidConfig
	}
	return nil
}

// Plan is the shape of a workout as seen by the timer.
type Plan struct {
	Rounds int
	Pairs  int
}

// PlanFor derives the plan of w. The workout is assumed to be valid.
func PlanFor(w *models.Workout) Plan {
	if w == nil {
		return Plan{}
	}
	return Plan{Rounds: w.Rounds, Pairs: len(w.Pairs)}
}

// Initial returns the fresh, not yet started state.
func Initial(cfg Config) models.TimerState {
	return models.TimerState{
		CurrentPhase:     models.PhaseWork,
		TimeRemaining:    cfg.WorkTime,
		CurrentRound:     1,
		CurrentPairIndex: 0,
	}
}

// CommandType names a reducer input.
type CommandType string

const (
	CommandStart   CommandType = "start"
	CommandPause   CommandType = "pause"
	CommandStop    CommandType = "stop"
	CommandReset   CommandType = "reset"
	CommandElapsed CommandType = "elapsed"
	CommandResync  CommandType = "resync" // time base only; Reduce ignores it
)

// Command is a reducer input. Seconds is only read by CommandElapsed.
type Command struct {
	Type    CommandType
	Seconds int
}

// Transition describes one phase boundary crossed by Advance.
type Transition struct {
	From      models.Phase `json:"from"`
	To        models.Phase `json:"to"`
	Round     int          `json:"round"`
	PairIndex int          `json:"pair_index"`
	Remaining int          `json:"remaining"` // length of the entered phase
}

// Reduce applies cmd to s and returns the new state together with every
// phase transition it caused.
func Reduce(s models.TimerState, p Plan, cfg Config, cmd Command) (models.TimerState, []Transition) {
	switch cmd.Type {
	case CommandStart:
		if s.CurrentPhase == models.PhaseFinished {
			return s, nil
		}
		s.IsActive = true
		s.IsPaused = false
	case CommandPause:
		if s.CurrentPhase == models.PhaseFinished {
			return s, nil
		}
		s.IsActive = false
		s.IsPaused = true
	case CommandStop:
		s.IsActive = false
		s.IsPaused = false
	case CommandReset:
		return Initial(cfg), nil
	case CommandElapsed:
		if !s.IsActive || s.IsPaused {
			return s, nil
		}
		return Advance(s, p, cfg, cmd.Seconds)
	}
	return s, nil
}

// Advance consumes whole elapsed seconds, crossing as many phase boundaries
// as they cover. Zero-length phases are crossed without consuming time.
// Advance stops at finished.
func Advance(s models.TimerState, p Plan, cfg Config, seconds int) (models.TimerState, []Transition) {
	if seconds <= 0 || s.CurrentPhase == models.PhaseFinished {
		return s, nil
	}

	var transitions []Transition
	for s.CurrentPhase != models.PhaseFinished {
		if s.TimeRemaining > seconds {
			s.TimeRemaining -= seconds
			break
		}
		seconds -= s.TimeRemaining
		transitions = append(transitions, nextPhase(&s, p, cfg))
	}
	return s, transitions
}

func nextPhase(s *models.TimerState, p Plan, cfg Config) Transition {
	from := s.CurrentPhase

	switch s.CurrentPhase {
	case models.PhaseWork:
		s.CurrentPhase = models.PhaseRest
		s.TimeRemaining = cfg.RestTime
	case models.PhaseRest:
		switch {
		case s.CurrentRound < p.Rounds:
			s.CurrentRound++
			s.CurrentPhase = models.PhaseWork
			s.TimeRemaining = cfg.WorkTime
		case s.CurrentPairIndex < p.Pairs-1:
			s.CurrentPhase = models.PhasePairRest
			s.TimeRemaining = cfg.PairRestTime
		default:
			s.CurrentPhase = models.PhaseFinished
			s.TimeRemaining = 0
			s.IsActive = false
		}
	case models.PhasePairRest:
		s.CurrentPairIndex++
		s.CurrentRound = 1
		s.CurrentPhase = models.PhaseWork
		s.TimeRemaining = cfg.WorkTime
	}

	return Transition{
		From:      from,
		To:        s.CurrentPhase,
		Round:     s.CurrentRound,
		PairIndex: s.CurrentPairIndex,
		Remaining: s.TimeRemaining,
	}
}
