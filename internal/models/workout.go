package models

import "time"

// Exercise is a single movement performed during a work phase.
type Exercise struct {
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}

// WorkoutPair holds the two exercises alternated across the rounds of a pair.
// Odd rounds perform ExerciseA, even rounds ExerciseB.
type WorkoutPair struct {
	ExerciseA Exercise `json:"exercise_a" yaml:"exercise_a"`
	ExerciseB Exercise `json:"exercise_b" yaml:"exercise_b"`
}

// Workout is an immutable workout definition owned by the catalog.
type Workout struct {
	ID               string        `json:"id" yaml:"id"`
	Name             string        `json:"name" yaml:"name"`
	Description      string        `json:"description,omitempty" yaml:"description,omitempty"`
	Pairs            []WorkoutPair `json:"pairs" yaml:"pairs"`
	Rounds           int           `json:"rounds" yaml:"rounds"`                         // work/rest cycles per pair
	RestBetweenPairs int           `json:"rest_between_pairs" yaml:"rest_between_pairs"` // seconds
	ImportedAt       *time.Time    `json:"imported_at,omitempty" yaml:"-"`
}
