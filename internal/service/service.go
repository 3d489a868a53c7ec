package service

import (
	"context"

	"tabata_timer/internal/catalog"
	"tabata_timer/internal/logger"
	"tabata_timer/internal/models"
	"tabata_timer/internal/repository"
	"tabata_timer/internal/timer"
)

type Authorization interface {
	Enabled() bool
	GenerateToken(pin string) (string, error)
	ParseToken(accessToken string) (string, error)
}

// Session exposes the active timer session: selection, controls and updates.
type Session interface {
	Select(ctx context.Context, p SelectParams) (SessionSnapshot, error)
	Start(ctx context.Context) (SessionSnapshot, error)
	Pause(ctx context.Context) (SessionSnapshot, error)
	Stop(ctx context.Context) (SessionSnapshot, error)
	Reset(ctx context.Context) (SessionSnapshot, error)
	Resync(ctx context.Context) (SessionSnapshot, error)
	Snapshot() (SessionSnapshot, error)
	Subscribe(buffer int) (<-chan SessionUpdate, func())
	TestCue() bool
}

// Workouts exposes the catalog.
type Workouts interface {
	List(query, sort string) []WorkoutSummary
	Get(id string) (WorkoutSummary, error)
	Export(id string) ([]byte, error)
	Import(data []byte) (WorkoutSummary, error)
}

// Progress exposes per-workout resume points and completion.
type Progress interface {
	Summary() ProgressSummary
	Get(id string) (models.WorkoutProgress, bool)
	ResetProgress(ctx context.Context, id string)
	ClearAll(ctx context.Context)
}

// Audio exposes cue preferences.
type Audio interface {
	Get() models.AudioSettings
	Update(ctx context.Context, u AudioUpdate) models.AudioSettings
}

// EventLog exposes append-only logs with filtering access.
type EventLog interface {
	List(ctx context.Context, f LogFilter) ([]models.SessionEvent, error)
}

// Service aggregates all sub-services.
type Service struct {
	Session
	Workouts
	Progress
	Audio
	EventLog
	Authorization
}

// Options carries the runtime settings NewService needs beyond storage.
type Options struct {
	Defaults timer.Config
	Timer    timer.Options
	Auth     AuthConfig
	Log      *logger.Logger
}

// NewService wires the repository layer and catalog into concrete services.
// The returned closer tears down the active session.
func NewService(ctx context.Context, repos *repository.Repository, cat *catalog.Catalog, opts Options) (*Service, func(context.Context)) {
	log := logger.OrNop(opts.Log)

	progress := NewProgressTracker(ctx, repos.KV, cat, log)
	progress.OnComplete(func(workoutID string) {
		log.Infow("workout_completed", "workout_id", workoutID)
	})
	audio := NewAudioSettingsService(ctx, repos.KV, log)
	session := NewSessionService(SessionDeps{
		Workouts: cat,
		Progress: progress,
		Audio:    audio,
		Events:   repos.EventRepo,
		Log:      log,
		Defaults: opts.Defaults,
		Options:  opts.Timer,
	})

	return &Service{
		Session:       session,
		Workouts:      NewWorkoutService(cat, progress, log),
		Progress:      progress,
		Audio:         audio,
		EventLog:      NewEventLogService(repos.EventRepo),
		Authorization: NewAuthService(ctx, repos.KV, opts.Auth, log),
	}, session.Close
}
