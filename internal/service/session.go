package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"tabata_timer/internal/catalog"
	"tabata_timer/internal/duration"
	"tabata_timer/internal/logger"
	"tabata_timer/internal/models"
	"tabata_timer/internal/repository"
	"tabata_timer/internal/timer"
)

// ErrNoSession is returned by session commands before a workout is selected.
var ErrNoSession = errors.New("no workout session selected")

const (
	machineEventBuffer = 64
	persistTimeout     = 2 * time.Second
)

// WorkoutSource resolves workouts by id.
type WorkoutSource interface {
	Get(id string) (models.Workout, error)
}

// AudioSource supplies the current cue preferences.
type AudioSource interface {
	Get() models.AudioSettings
}

// UpdateType tags a SessionUpdate.
type UpdateType string

const (
	UpdateState UpdateType = "state"
	UpdateCue   UpdateType = "cue"
)

// SessionUpdate is pushed to session subscribers.
type SessionUpdate struct {
	Type     UpdateType       `json:"type"`
	Snapshot *SessionSnapshot `json:"snapshot,omitempty"`
	Cue      *Cue             `json:"cue,omitempty"`
}

// SessionSnapshot is the presentation view of the active session.
type SessionSnapshot struct {
	WorkoutID          string            `json:"workout_id"`
	WorkoutName        string            `json:"workout_name"`
	State              models.TimerState `json:"state"`
	Config             timer.Config      `json:"config"`
	CurrentExercise    timer.Slot        `json:"current_exercise,omitempty"`
	ExerciseName       string            `json:"exercise_name,omitempty"`
	ProgressPercentage float64           `json:"progress_percentage"`
	IsComplete         bool              `json:"is_complete"`
	Resumable          bool              `json:"resumable"`
	PairCount          int               `json:"pair_count"`
	Rounds             int               `json:"rounds"`
	TotalSeconds       int               `json:"total_seconds"`
}

type session struct {
	workout *models.Workout
	config  timer.Config
	machine *timer.Machine
	done    chan struct{}
}

// SessionService owns the single active timer session and fans its
// updates out to subscribers.
type SessionService struct {
	mu       sync.Mutex
	workouts WorkoutSource
	progress *ProgressTracker
	audio    AudioSource
	events   repository.EventRepo
	log      *logger.Logger
	defaults timer.Config
	options  timer.Options
	current  *session

	subMu     sync.Mutex
	subs      map[int]chan SessionUpdate
	nextSubID int
}

// SessionDeps groups SessionService collaborators.
type SessionDeps struct {
	Workouts WorkoutSource
	Progress *ProgressTracker
	Audio    AudioSource
	Events   repository.EventRepo
	Log      *logger.Logger
	Defaults timer.Config  // work and rest used when a selection has no config
	Options  timer.Options // tick interval and clock
}

func NewSessionService(deps SessionDeps) *SessionService {
	if deps.Defaults == (timer.Config{}) {
		deps.Defaults = timer.DefaultConfig
	}
	return &SessionService{
		workouts: deps.Workouts,
		progress: deps.Progress,
		audio:    deps.Audio,
		events:   deps.Events,
		log:      logger.OrNop(deps.Log),
		defaults: deps.Defaults,
		options:  deps.Options,
		subs:     make(map[int]chan SessionUpdate),
	}
}

// Select validates the workout and replaces the active session with a fresh
// one. The previous session's position is saved first.
func (s *SessionService) Select(ctx context.Context, p SelectParams) (SessionSnapshot, error) {
	w, err := s.workouts.Get(p.WorkoutID)
	if err != nil {
		return SessionSnapshot{}, err
	}
	if err := catalog.Validate(&w); err != nil {
		return SessionSnapshot{}, err
	}

	cfg := s.defaults
	cfg.PairRestTime = w.RestBetweenPairs
	if p.Config != nil {
		cfg = *p.Config
	}
	if err := cfg.Validate(); err != nil {
		return SessionSnapshot{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.teardownLocked(ctx)

	m := timer.New(&w, cfg, s.options)
	if p.Resume {
		if rec, ok := s.progress.Get(w.ID); ok && !rec.IsCompleted {
			m.Restore(rec.CurrentPairIndex, rec.CurrentRound)
		}
	}

	// Machine.Close closes the channel, which ends the pump.
	events, _ := m.Subscribe(machineEventBuffer)
	cur := &session{
		workout: &w,
		config:  cfg,
		machine: m,
		done:    make(chan struct{}),
	}
	s.current = cur
	go s.pump(cur, events)

	snap := s.snapshotOf(cur, m.Snapshot())
	s.publish(SessionUpdate{Type: UpdateState, Snapshot: &snap})
	s.log.Infow("session_selected", "workout_id", w.ID, "resume", p.Resume,
		"pair_index", snap.State.CurrentPairIndex, "round", snap.State.CurrentRound)
	return snap, nil
}

func (s *SessionService) Start(ctx context.Context) (SessionSnapshot, error) {
	return s.command(func(m *timer.Machine) { m.Start() })
}

func (s *SessionService) Pause(ctx context.Context) (SessionSnapshot, error) {
	return s.command(func(m *timer.Machine) { m.Pause() })
}

// Stop persists the current position, then halts the timer. A later Start
// continues from that position.
func (s *SessionService) Stop(ctx context.Context) (SessionSnapshot, error) {
	return s.commandWithSession(func(cur *session) {
		s.savePosition(ctx, cur)
		cur.machine.Stop()
	})
}

func (s *SessionService) Reset(ctx context.Context) (SessionSnapshot, error) {
	return s.command(func(m *timer.Machine) { m.Reset() })
}

// Resync drops time accumulated while the shell was hidden.
func (s *SessionService) Resync(ctx context.Context) (SessionSnapshot, error) {
	return s.command(func(m *timer.Machine) { m.Resync() })
}

// Snapshot returns the current session view.
func (s *SessionService) Snapshot() (SessionSnapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return SessionSnapshot{}, ErrNoSession
	}
	return s.snapshotOf(s.current, s.current.machine.Snapshot()), nil
}

// TestCue pushes a work-start cue so the shell can check its audio. It
// reports false when audio is disabled.
func (s *SessionService) TestCue() bool {
	settings := s.audio.Get()
	if !settings.Enabled {
		return false
	}
	cue := NewCue(CueWorkStart, settings.Volume, time.Now().UTC())
	s.publish(SessionUpdate{Type: UpdateCue, Cue: &cue})
	return true
}

// Subscribe registers for session updates. Slow subscribers miss updates.
func (s *SessionService) Subscribe(buffer int) (<-chan SessionUpdate, func()) {
	if buffer <= 0 {
		buffer = 1
	}
	ch := make(chan SessionUpdate, buffer)

	s.subMu.Lock()
	id := s.nextSubID
	s.nextSubID++
	s.subs[id] = ch
	s.subMu.Unlock()

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			s.subMu.Lock()
			defer s.subMu.Unlock()
			if _, ok := s.subs[id]; ok {
				delete(s.subs, id)
				close(ch)
			}
		})
	}
}

// Close saves and tears down the active session and closes all subscribers.
func (s *SessionService) Close(ctx context.Context) {
	s.mu.Lock()
	s.teardownLocked(ctx)
	s.mu.Unlock()

	s.subMu.Lock()
	defer s.subMu.Unlock()
	for id, ch := range s.subs {
		delete(s.subs, id)
		close(ch)
	}
}

func (s *SessionService) command(fn func(m *timer.Machine)) (SessionSnapshot, error) {
	return s.commandWithSession(func(cur *session) { fn(cur.machine) })
}

func (s *SessionService) commandWithSession(fn func(cur *session)) (SessionSnapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return SessionSnapshot{}, ErrNoSession
	}
	fn(s.current)
	return s.snapshotOf(s.current, s.current.machine.Snapshot()), nil
}

// teardownLocked waits for the pump so no event of the old session is
// handled after the new one starts.
func (s *SessionService) teardownLocked(ctx context.Context) {
	cur := s.current
	if cur == nil {
		return
	}
	s.savePosition(ctx, cur)
	cur.machine.Close()
	<-cur.done
	s.current = nil
}

// savePosition records where an unfinished session stands. Completion is
// recorded once, by the pump, when the finishing transition arrives.
func (s *SessionService) savePosition(ctx context.Context, cur *session) {
	st := cur.machine.Snapshot()
	if timer.IsWorkoutComplete(st) {
		return
	}
	s.progress.SaveCurrentSession(ctx, cur.workout.ID, st)
}

func (s *SessionService) pump(cur *session, events <-chan timer.Event) {
	defer close(cur.done)

	var cues CueTracker
	for ev := range events {
		s.handleEvent(cur, &cues, ev)
	}
}

func (s *SessionService) handleEvent(cur *session, cues *CueTracker, ev timer.Event) {
	ctx, cancel := context.WithTimeout(context.Background(), persistTimeout)
	defer cancel()

	id := cur.workout.ID
	switch ev.Type {
	case timer.EventPhaseChange:
		if len(ev.Transitions) == 0 {
			break
		}
		s.progress.SaveCurrentSession(ctx, id, ev.State)
		for _, tr := range ev.Transitions {
			s.appendEvent(ctx, transitionEvent(id, ev.At, tr))
		}
	case timer.EventControl:
		if ev.Command != timer.CommandStop {
			s.progress.SaveCurrentSession(ctx, id, ev.State)
		}
		s.appendEvent(ctx, controlEvent(id, ev))
	}

	snap := s.snapshotOf(cur, ev.State)
	s.publish(SessionUpdate{Type: UpdateState, Snapshot: &snap})

	fired := cues.Observe(ev)
	if len(fired) == 0 {
		return
	}
	settings := s.audio.Get()
	if !settings.Enabled {
		return
	}
	for _, t := range fired {
		cue := NewCue(t, settings.Volume, ev.At.UTC())
		s.publish(SessionUpdate{Type: UpdateCue, Cue: &cue})
	}
}

func (s *SessionService) appendEvent(ctx context.Context, e models.SessionEvent) {
	if s.events == nil {
		return
	}
	if err := s.events.Append(ctx, e); err != nil {
		s.log.Warnw("session_event_append_failed", "type", e.Type, "workout_id", e.WorkoutID, "error", err)
	}
}

func (s *SessionService) publish(u SessionUpdate) {
	s.subMu.Lock()
	defer s.subMu.Unlock()
	for _, ch := range s.subs {
		select {
		case ch <- u:
		default:
		}
	}
}

func (s *SessionService) snapshotOf(cur *session, st models.TimerState) SessionSnapshot {
	w := cur.workout
	plan := timer.PlanFor(w)
	snap := SessionSnapshot{
		WorkoutID:          w.ID,
		WorkoutName:        w.Name,
		State:              st,
		Config:             cur.config,
		CurrentExercise:    timer.CurrentExercise(st),
		ProgressPercentage: timer.ProgressPercentage(st, plan, cur.config),
		IsComplete:         timer.IsWorkoutComplete(st),
		PairCount:          plan.Pairs,
		Rounds:             plan.Rounds,
		TotalSeconds: duration.Timing{Work: cur.config.WorkTime, Rest: cur.config.RestTime}.
			SessionLength(w, cur.config.PairRestTime),
	}
	if ex, ok := timer.ExerciseFor(w, st); ok {
		snap.ExerciseName = ex.Name
	}
	if rec, ok := s.progress.Get(w.ID); ok {
		snap.Resumable = !rec.IsCompleted && (rec.CurrentPairIndex > 0 || rec.CurrentRound > 1)
	}
	return snap
}

func controlEvent(workoutID string, ev timer.Event) models.SessionEvent {
	types := map[timer.CommandType]string{
		timer.CommandStart:  models.EventStart,
		timer.CommandPause:  models.EventPause,
		timer.CommandStop:   models.EventStop,
		timer.CommandReset:  models.EventReset,
		timer.CommandResync: models.EventResync,
	}
	return models.SessionEvent{
		OccurredAt:  ev.At,
		Type:        types[ev.Command],
		WorkoutID:   workoutID,
		Description: fmt.Sprintf("Session %s", ev.Command),
		Metadata:    stateMeta(ev.State),
	}
}

func transitionEvent(workoutID string, at time.Time, tr timer.Transition) models.SessionEvent {
	e := models.SessionEvent{
		OccurredAt:  at,
		Type:        models.EventPhaseChange,
		WorkoutID:   workoutID,
		Description: fmt.Sprintf("Phase %s -> %s", tr.From, tr.To),
		Metadata: map[string]any{
			"from":       tr.From,
			"to":         tr.To,
			"round":      tr.Round,
			"pair_index": tr.PairIndex,
			"remaining":  tr.Remaining,
		},
	}
	if tr.To == models.PhaseFinished {
		e.Type = models.EventComplete
		e.Description = "Workout complete"
	}
	return e
}

func stateMeta(st models.TimerState) map[string]any {
	return map[string]any{
		"phase":      st.CurrentPhase,
		"remaining":  st.TimeRemaining,
		"round":      st.CurrentRound,
		"pair_index": st.CurrentPairIndex,
	}
}
