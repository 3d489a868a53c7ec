package service

import (
	"context"
	"encoding/json"
	"math"
	"sync"
	"time"

	"tabata_timer/internal/logger"
	"tabata_timer/internal/models"
	"tabata_timer/internal/repository"
)

// ProgressStoreKey namespaces the progress mapping in the KV store.
const ProgressStoreKey = "tabata-workout-progress"

// WorkoutCounter reports how many workouts are known.
type WorkoutCounter interface {
	Len() int
}

// ProgressUpdate carries the fields to merge; nil fields are kept.
type ProgressUpdate struct {
	CurrentPairIndex *int
	CurrentRound     *int
	IsCompleted      *bool
}

// ProgressTracker keeps per-workout resume points and completion flags.
// Persistence is best effort: store failures are logged and the in-memory
// mapping stays authoritative.
type ProgressTracker struct {
	mu         sync.Mutex
	store      repository.KVStore
	workouts   WorkoutCounter
	log        *logger.Logger
	now        func() time.Time
	records    map[string]models.WorkoutProgress
	onComplete []func(workoutID string)
}

// NewProgressTracker builds a tracker and loads the persisted mapping.
func NewProgressTracker(ctx context.Context, store repository.KVStore, workouts WorkoutCounter, log *logger.Logger) *ProgressTracker {
	t := &ProgressTracker{
		store:    store,
		workouts: workouts,
		log:      logger.OrNop(log),
		now:      time.Now,
		records:  make(map[string]models.WorkoutProgress),
	}
	t.Load(ctx)
	return t
}

// Load replaces the in-memory mapping with the persisted one. An absent or
// malformed entry yields an empty mapping.
func (t *ProgressTracker) Load(ctx context.Context) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.records = make(map[string]models.WorkoutProgress)
	raw, ok, err := t.store.Get(ctx, ProgressStoreKey)
	if err != nil {
		t.log.Warnw("progress_load_failed", "error", err)
		return
	}
	if !ok || raw == "" {
		return
	}

	var stored map[string]models.WorkoutProgress
	if err := json.Unmarshal([]byte(raw), &stored); err != nil {
		t.log.Warnw("progress_decode_failed", "error", err)
		return
	}
	for id, rec := range stored {
		rec.WorkoutID = id
		t.records[id] = rec
	}
}

func (t *ProgressTracker) saveLocked(ctx context.Context) {
	data, err := json.Marshal(t.records)
	if err != nil {
		t.log.Errorw("progress_encode_failed", "error", err)
		return
	}
	if err := t.store.Set(ctx, ProgressStoreKey, string(data)); err != nil {
		t.log.Warnw("progress_save_failed", "error", err)
	}
}

func defaultProgress(id string) models.WorkoutProgress {
	return models.WorkoutProgress{WorkoutID: id, CurrentPairIndex: 0, CurrentRound: 1}
}

// UpdateProgress merges u into the record for id, creating it if needed.
func (t *ProgressTracker) UpdateProgress(ctx context.Context, id string, u ProgressUpdate) models.WorkoutProgress {
	t.mu.Lock()
	defer t.mu.Unlock()

	rec, ok := t.records[id]
	if !ok {
		rec = defaultProgress(id)
	}
	if u.CurrentPairIndex != nil {
		rec.CurrentPairIndex = *u.CurrentPairIndex
	}
	if u.CurrentRound != nil {
		rec.CurrentRound = *u.CurrentRound
	}
	if u.IsCompleted != nil {
		rec.IsCompleted = *u.IsCompleted
	}
	t.records[id] = rec
	t.saveLocked(ctx)
	return rec
}

// MarkComplete flags id as completed now and rewinds its resume point.
func (t *ProgressTracker) MarkComplete(ctx context.Context, id string) models.WorkoutProgress {
	t.mu.Lock()
	completedAt := t.now().UTC()
	rec := defaultProgress(id)
	rec.IsCompleted = true
	rec.CompletedAt = &completedAt
	t.records[id] = rec
	t.saveLocked(ctx)
	callbacks := append([]func(string){}, t.onComplete...)
	t.mu.Unlock()

	for _, fn := range callbacks {
		fn(id)
	}
	return rec
}

// ResetProgress forgets id entirely.
func (t *ProgressTracker) ResetProgress(ctx context.Context, id string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	delete(t.records, id)
	t.saveLocked(ctx)
}

// SaveCurrentSession records the position of a live session. A finished
// session is marked complete; an idle one is ignored.
func (t *ProgressTracker) SaveCurrentSession(ctx context.Context, id string, s models.TimerState) {
	switch {
	case s.CurrentPhase == models.PhaseFinished:
		t.MarkComplete(ctx, id)
	case s.IsActive || s.IsPaused:
		completed := false
		t.UpdateProgress(ctx, id, ProgressUpdate{
			CurrentPairIndex: &s.CurrentPairIndex,
			CurrentRound:     &s.CurrentRound,
			IsCompleted:      &completed,
		})
	}
}

// Get returns the record for id.
func (t *ProgressTracker) Get(id string) (models.WorkoutProgress, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	rec, ok := t.records[id]
	return rec, ok
}

func (t *ProgressTracker) IsCompleted(id string) bool {
	rec, ok := t.Get(id)
	return ok && rec.IsCompleted
}

// All returns a copy of the mapping.
func (t *ProgressTracker) All() map[string]models.WorkoutProgress {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make(map[string]models.WorkoutProgress, len(t.records))
	for id, rec := range t.records {
		out[id] = rec
	}
	return out
}

func (t *ProgressTracker) CompletedCount() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	n := 0
	for _, rec := range t.records {
		if rec.IsCompleted {
			n++
		}
	}
	return n
}

// TotalCount is the size of the workout catalog.
func (t *ProgressTracker) TotalCount() int {
	if t.workouts == nil {
		return 0
	}
	return t.workouts.Len()
}

// OverallProgressPercent is the rounded share of completed workouts.
func (t *ProgressTracker) OverallProgressPercent() int {
	total := t.TotalCount()
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(t.CompletedCount()) / float64(total) * 100))
}

// ClearAll empties the mapping and removes the persisted entry.
func (t *ProgressTracker) ClearAll(ctx context.Context) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.records = make(map[string]models.WorkoutProgress)
	if err := t.store.Delete(ctx, ProgressStoreKey); err != nil {
		t.log.Warnw("progress_clear_failed", "error", err)
	}
}

// OnComplete registers fn to run after a workout is marked complete.
func (t *ProgressTracker) OnComplete(fn func(workoutID string)) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.onComplete = append(t.onComplete, fn)
}

// ProgressSummary is the aggregate view of all records.
type ProgressSummary struct {
	Records        map[string]models.WorkoutProgress `json:"records"`
	CompletedCount int                               `json:"completed_count"`
	TotalCount     int                               `json:"total_count"`
	OverallPercent int                               `json:"overall_percent"`
}

func (t *ProgressTracker) Summary() ProgressSummary {
	return ProgressSummary{
		Records:        t.All(),
		CompletedCount: t.CompletedCount(),
		TotalCount:     t.TotalCount(),
		OverallPercent: t.OverallProgressPercent(),
	}
}
