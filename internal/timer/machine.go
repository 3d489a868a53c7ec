package timer

import (
	"sync"
	"time"

	"tabata_timer/internal/models"
)

// Options contains runtime options for Machine.
type Options struct {
	TickInterval time.Duration
	Clock        Clock
}

// Machine drives the reducer from a monotonic time base. Elapsed time is
// measured on each tick rather than assumed, so late ticks are absorbed;
// Resync drops time accumulated while the shell was hidden.
type Machine struct {
	mu          sync.Mutex
	workout     *models.Workout
	plan        Plan
	config      Config
	options     Options
	state       models.TimerState
	base        time.Time
	stopCh      chan struct{}
	subscribers map[int]chan Event
	nextSubID   int
}

// New creates a Machine for w. The workout is borrowed and never mutated; it
// must already be valid.
func New(w *models.Workout, config Config, options Options) *Machine {
	if options.TickInterval <= 0 {
		options.TickInterval = time.Second
	}
	if options.Clock == nil {
		options.Clock = NewRealClock()
	}
	return &Machine{
		workout:     w,
		plan:        PlanFor(w),
		config:      config,
		options:     options,
		state:       Initial(config),
		subscribers: make(map[int]chan Event),
	}
}

// Restore moves an idle machine to the start of the given pair and round.
// Out-of-range positions are clamped. It is a no-op while active.
func (m *Machine) Restore(pairIndex, round int) models.TimerState {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.state.IsActive {
		return m.state
	}

	pairIndex = min(max(pairIndex, 0), max(m.plan.Pairs-1, 0))
	round = min(max(round, 1), max(m.plan.Rounds, 1))

	m.state = Initial(m.config)
	m.state.CurrentPairIndex = pairIndex
	m.state.CurrentRound = round
	return m.state
}

// Workout returns the borrowed workout.
func (m *Machine) Workout() *models.Workout { return m.workout }

// Plan returns the workout shape.
func (m *Machine) Plan() Plan { return m.plan }

// Config returns the phase lengths.
func (m *Machine) Config() Config { return m.config }

// Snapshot returns a copy of the current state.
func (m *Machine) Snapshot() models.TimerState {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// ProgressPercentage returns the overall completion of the current state.
func (m *Machine) ProgressPercentage() float64 {
	return ProgressPercentage(m.Snapshot(), m.plan, m.config)
}

// Subscribe registers an observer channel. Slow observers miss events rather
// than stall the timer. The returned func unregisters and closes the channel.
func (m *Machine) Subscribe(buffer int) (<-chan Event, func()) {
	if buffer <= 0 {
		buffer = 1
	}
	ch := make(chan Event, buffer)

	m.mu.Lock()
	id := m.nextSubID
	m.nextSubID++
	m.subscribers[id] = ch
	m.mu.Unlock()

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			m.mu.Lock()
			defer m.mu.Unlock()
			if _, ok := m.subscribers[id]; ok {
				delete(m.subscribers, id)
				close(ch)
			}
		})
	}
}

// Start begins or resumes ticking. Calling it while already running, or once
// finished, changes nothing.
func (m *Machine) Start() models.TimerState {
	m.mu.Lock()
	defer m.mu.Unlock()

	before := m.state
	m.state, _ = Reduce(m.state, m.plan, m.config, Command{Type: CommandStart})
	if m.state == before {
		return m.state
	}

	m.base = m.options.Clock.Now()
	m.startLoopLocked()
	m.emitControlLocked(CommandStart)
	return m.state
}

// Pause freezes the countdown, keeping position and remaining time.
func (m *Machine) Pause() models.TimerState {
	return m.control(CommandPause)
}

// Stop halts ticking without marking the session paused.
func (m *Machine) Stop() models.TimerState {
	return m.control(CommandStop)
}

// Reset returns to the initial state and re-bases the clock, so a later
// Start does not inherit stale elapsed time.
func (m *Machine) Reset() models.TimerState {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.stopLoopLocked()
	m.state, _ = Reduce(m.state, m.plan, m.config, Command{Type: CommandReset})
	m.base = m.options.Clock.Now()
	m.emitControlLocked(CommandReset)
	return m.state
}

// Resync re-bases the elapsed-time clock to now. The shell calls it when it
// becomes visible again; it has no effect unless the timer is running.
func (m *Machine) Resync() models.TimerState {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.state.IsActive && !m.state.IsPaused {
		m.base = m.options.Clock.Now()
		m.emitControlLocked(CommandResync)
	}
	return m.state
}

// Close stops ticking and closes all observer channels.
func (m *Machine) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.stopLoopLocked()
	for id, ch := range m.subscribers {
		delete(m.subscribers, id)
		close(ch)
	}
}

func (m *Machine) control(cmd CommandType) models.TimerState {
	m.mu.Lock()
	defer m.mu.Unlock()

	before := m.state
	m.state, _ = Reduce(m.state, m.plan, m.config, Command{Type: cmd})
	m.stopLoopLocked()
	if m.state != before {
		m.emitControlLocked(cmd)
	}
	return m.state
}

func (m *Machine) startLoopLocked() {
	if m.stopCh != nil {
		return
	}
	m.stopCh = make(chan struct{})
	go m.run(m.stopCh)
}

func (m *Machine) stopLoopLocked() {
	if m.stopCh == nil {
		return
	}
	close(m.stopCh)
	m.stopCh = nil
}

func (m *Machine) run(stopCh <-chan struct{}) {
	ticker := m.options.Clock.NewTicker(m.options.TickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-stopCh:
			return
		case now := <-ticker.C():
			if !m.tick(now) {
				return
			}
		}
	}
}

// tick advances by the whole seconds elapsed since the time base and reports
// whether ticking should continue. The sub-second remainder stays in the base.
func (m *Machine) tick(now time.Time) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.state.IsActive || m.state.IsPaused || m.state.CurrentPhase == models.PhaseFinished {
		return false
	}

	elapsed := now.Sub(m.base)
	if elapsed < time.Second {
		return true
	}
	whole := int(elapsed / time.Second)
	m.base = m.base.Add(time.Duration(whole) * time.Second)

	var transitions []Transition
	m.state, transitions = Reduce(m.state, m.plan, m.config, Command{Type: CommandElapsed, Seconds: whole})

	progress := ProgressPercentage(m.state, m.plan, m.config)
	if len(transitions) > 0 {
		m.emitLocked(Event{
			Type:        EventPhaseChange,
			State:       m.state,
			Transitions: transitions,
			Progress:    progress,
			At:          now,
		})
	}
	m.emitLocked(Event{
		Type:     EventTick,
		State:    m.state,
		Progress: progress,
		At:       now,
	})

	if m.state.CurrentPhase == models.PhaseFinished {
		m.stopLoopLocked()
		return false
	}
	return true
}

func (m *Machine) emitControlLocked(cmd CommandType) {
	m.emitLocked(Event{
		Type:     EventControl,
		Command:  cmd,
		State:    m.state,
		Progress: ProgressPercentage(m.state, m.plan, m.config),
		At:       m.options.Clock.Now(),
	})
}

func (m *Machine) emitLocked(event Event) {
	for _, ch := range m.subscribers {
		select {
		case ch <- event:
		default:
		}
	}
}
