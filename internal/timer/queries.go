package timer

import "tabata_timer/internal/models"

// Slot identifies which exercise of the current pair is being performed.
type Slot string

const (
	SlotNone Slot = ""
	SlotA    Slot = "A"
	SlotB    Slot = "B"
)

// CurrentExercise returns A on odd rounds, B on even rounds and SlotNone
// during pair rest or once finished.
func CurrentExercise(s models.TimerState) Slot {
	if s.CurrentPhase == models.PhasePairRest || s.CurrentPhase == models.PhaseFinished {
		return SlotNone
	}
	if s.CurrentRound%2 == 1 {
		return SlotA
	}
	return SlotB
}

// ExerciseFor resolves the exercise being performed in s, if any.
func ExerciseFor(w *models.Workout, s models.TimerState) (models.Exercise, bool) {
	slot := CurrentExercise(s)
	if w == nil || slot == SlotNone || s.CurrentPairIndex < 0 || s.CurrentPairIndex >= len(w.Pairs) {
		return models.Exercise{}, false
	}
	pair := w.Pairs[s.CurrentPairIndex]
	if slot == SlotA {
		return pair.ExerciseA, true
	}
	return pair.ExerciseB, true
}

// IsWorkoutComplete reports whether s is terminal.
func IsWorkoutComplete(s models.TimerState) bool {
	return s.CurrentPhase == models.PhaseFinished
}

// ProgressPercentage returns overall completion in [0, 100].
//
// Completed rounds count fully. The round in progress adds up to half during
// work and the other half during rest. Pair rest follows a fully completed
// round, so it credits that round and nothing more. Crediting nothing for it
// would make progress drop on entering pair rest.
func ProgressPercentage(s models.TimerState, p Plan, cfg Config) float64 {
	if s.CurrentPhase == models.PhaseFinished {
		return 100
	}
	total := p.Pairs * p.Rounds
	if total <= 0 {
		return 0
	}

	completed := float64(s.CurrentPairIndex*p.Rounds + (s.CurrentRound - 1))

	var partial float64
	switch s.CurrentPhase {
	case models.PhaseWork:
		if cfg.WorkTime > 0 {
			partial = float64(cfg.WorkTime-s.TimeRemaining) / float64(cfg.WorkTime) * 0.5
		}
	case models.PhaseRest:
		partial = 1
		if cfg.RestTime > 0 {
			partial = 0.5 + float64(cfg.RestTime-s.TimeRemaining)/float64(cfg.RestTime)*0.5
		}
	case models.PhasePairRest:
		partial = 1
	}

	return clampPercent((completed + partial) / float64(total) * 100)
}

func clampPercent(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
