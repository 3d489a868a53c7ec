package service

import (
	"fmt"

	"tabata_timer/internal/catalog"
	"tabata_timer/internal/duration"
	"tabata_timer/internal/logger"
	"tabata_timer/internal/models"
)

// WorkoutSummary is a workout with its display durations.
type WorkoutSummary struct {
	models.Workout
	TotalDuration  int                `json:"total_duration"`
	FormattedTotal string             `json:"formatted_total"`
	FormattedRest  string             `json:"formatted_rest"`
	Breakdown      duration.Breakdown `json:"breakdown"`
	Completed      bool               `json:"completed"`
}

// WorkoutService exposes the catalog together with import and export.
type WorkoutService struct {
	catalog  *catalog.Catalog
	progress *ProgressTracker
	log      *logger.Logger
}

func NewWorkoutService(c *catalog.Catalog, progress *ProgressTracker, log *logger.Logger) *WorkoutService {
	return &WorkoutService{catalog: c, progress: progress, log: logger.OrNop(log)}
}

// List returns the workouts matching query (all when empty), ordered by sort
// ("name" or "duration"; anything else keeps catalog order).
func (s *WorkoutService) List(query, sort string) []WorkoutSummary {
	ws := s.catalog.Search(query)
	catalog.SortBy(ws, sort)

	out := make([]WorkoutSummary, 0, len(ws))
	for _, w := range ws {
		out = append(out, s.summarize(w))
	}
	return out
}

func (s *WorkoutService) Get(id string) (WorkoutSummary, error) {
	w, err := s.catalog.Get(id)
	if err != nil {
		return WorkoutSummary{}, err
	}
	return s.summarize(w), nil
}

// Export renders the workout as indented JSON.
func (s *WorkoutService) Export(id string) ([]byte, error) {
	w, err := s.catalog.Get(id)
	if err != nil {
		return nil, err
	}
	return catalog.Export(w)
}

// Import decodes and validates data, assigns a fresh id and adds the workout
// to the catalog.
func (s *WorkoutService) Import(data []byte) (WorkoutSummary, error) {
	w, err := catalog.Import(data)
	if err != nil {
		return WorkoutSummary{}, err
	}
	if err := s.catalog.Add(w); err != nil {
		return WorkoutSummary{}, fmt.Errorf("add imported workout: %w", err)
	}
	s.log.Infow("workout_imported", "workout_id", w.ID, "name", w.Name, "pairs", len(w.Pairs))
	return s.summarize(w), nil
}

func (s *WorkoutService) summarize(w models.Workout) WorkoutSummary {
	total := duration.TotalDuration(&w)
	sum := WorkoutSummary{
		Workout:        w,
		TotalDuration:  total,
		FormattedTotal: duration.FormatDuration(total),
		FormattedRest:  duration.FormatRestTime(duration.TotalRestTime(&w)),
		Breakdown:      duration.GetBreakdown(&w),
	}
	if s.progress != nil {
		sum.Completed = s.progress.IsCompleted(w.ID)
	}
	return sum
}
