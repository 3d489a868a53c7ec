// Package catalog holds the workouts a session can be built from.
package catalog

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"tabata_timer/internal/duration"
	"tabata_timer/internal/logger"
	"tabata_timer/internal/models"
)

var (
	ErrWorkoutNotFound  = errors.New("workout not found")
	ErrDuplicateWorkout = errors.New("workout id already exists")
)

// Catalog is a concurrency-safe, insertion-ordered set of valid workouts.
type Catalog struct {
	mu       sync.RWMutex
	log      *logger.Logger
	order    []string
	workouts map[string]models.Workout
}

// New returns a catalog seeded with the predefined workouts.
func New(log *logger.Logger) *Catalog {
	c := &Catalog{
		log:      logger.OrNop(log),
		workouts: make(map[string]models.Workout),
	}
	for _, w := range Predefined() {
		if err := c.Add(w); err != nil {
			c.log.Errorw("catalog_predefined_rejected", "workout_id", w.ID, "error", err)
		}
	}
	return c
}

// Add validates w and makes it resolvable by id.
func (c *Catalog) Add(w models.Workout) error {
	if err := Validate(&w); err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.workouts[w.ID]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateWorkout, w.ID)
	}
	c.workouts[w.ID] = clone(w)
	c.order = append(c.order, w.ID)
	return nil
}

// Get returns a copy of the workout with the given id.
func (c *Catalog) Get(id string) (models.Workout, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	w, ok := c.workouts[id]
	if !ok {
		return models.Workout{}, fmt.Errorf("%w: %s", ErrWorkoutNotFound, id)
	}
	return clone(w), nil
}

// List returns copies of all workouts in insertion order.
func (c *Catalog) List() []models.Workout {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]models.Workout, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, clone(c.workouts[id]))
	}
	return out
}

// Len is the number of known workouts.
func (c *Catalog) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.order)
}

// Search matches query case-insensitively against workout names and the
// names of their exercises. An empty query returns everything.
func (c *Catalog) Search(query string) []models.Workout {
	all := c.List()
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return all
	}

	out := all[:0]
	for _, w := range all {
		if matches(w, q) {
			out = append(out, w)
		}
	}
	return out
}

// SortBy orders workouts in place by "name" or "duration". Any other key
// keeps the given order.
func SortBy(ws []models.Workout, key string) {
	switch key {
	case "name":
		sort.SliceStable(ws, func(i, j int) bool {
			return strings.ToLower(ws[i].Name) < strings.ToLower(ws[j].Name)
		})
	case "duration":
		sort.SliceStable(ws, func(i, j int) bool {
			return duration.TotalDuration(&ws[i]) < duration.TotalDuration(&ws[j])
		})
	}
}

func matches(w models.Workout, q string) bool {
	if strings.Contains(strings.ToLower(w.Name), q) {
		return true
	}
	for _, p := range w.Pairs {
		if strings.Contains(strings.ToLower(p.ExerciseA.Name), q) ||
			strings.Contains(strings.ToLower(p.ExerciseB.Name), q) {
			return true
		}
	}
	return false
}

func clone(w models.Workout) models.Workout {
	w.Pairs = append([]models.WorkoutPair(nil), w.Pairs...)
	if w.ImportedAt != nil {
		t := *w.ImportedAt
		w.ImportedAt = &t
	}
	return w
}
