package catalog

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"tabata_timer/internal/models"
)

// ErrInvalidWorkout is wrapped by every validation failure.
var ErrInvalidWorkout = errors.New("invalid workout")

const maxExerciseNameLen = 100

// Validate checks w against the workout contract the timer relies on.
func Validate(w *models.Workout) error {
	if w == nil {
		return fmt.Errorf("%w: workout is nil", ErrInvalidWorkout)
	}
	if strings.TrimSpace(w.ID) == "" {
		return fmt.Errorf("%w: id is required", ErrInvalidWorkout)
	}
	if strings.TrimSpace(w.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidWorkout)
	}
	if len(w.Pairs) == 0 {
		return fmt.Errorf("%w: at least one pair is required", ErrInvalidWorkout)
	}
	if w.Rounds <= 0 {
		return fmt.Errorf("%w: rounds must be positive, got %d", ErrInvalidWorkout, w.Rounds)
	}
	if w.RestBetweenPairs < 0 {
		return fmt.Errorf("%w: rest_between_pairs must not be negative, got %d", ErrInvalidWorkout, w.RestBetweenPairs)
	}
	for i, p := range w.Pairs {
		if err := ValidateExercise(p.ExerciseA); err != nil {
			return fmt.Errorf("pair %d exercise_a: %w", i, err)
		}
		if err := ValidateExercise(p.ExerciseB); err != nil {
			return fmt.Errorf("pair %d exercise_b: %w", i, err)
		}
	}
	return nil
}

// ValidateExercise rejects blank, overlong, malformed or control-character names.
func ValidateExercise(e models.Exercise) error {
	name := strings.TrimSpace(e.Name)
	if name == "" {
		return fmt.Errorf("%w: exercise name is required", ErrInvalidWorkout)
	}
	if !utf8.ValidString(name) {
		return fmt.Errorf("%w: exercise name is not valid UTF-8", ErrInvalidWorkout)
	}
	if utf8.RuneCountInString(name) > maxExerciseNameLen {
		return fmt.Errorf("%w: exercise name longer than %d characters", ErrInvalidWorkout, maxExerciseNameLen)
	}
	if strings.IndexFunc(name, unicode.IsControl) >= 0 {
		return fmt.Errorf("%w: exercise name contains control characters", ErrInvalidWorkout)
	}
	return nil
}
