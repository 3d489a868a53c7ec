package timer

import (
	"testing"

	"tabata_timer/internal/models"
)

var testConfig = Config{WorkTime: 5, RestTime: 3, PairRestTime: 10}

func testWorkout(pairs, rounds int) *models.Workout {
	w := &models.Workout{ID: "test", Name: "Test", Rounds: rounds, RestBetweenPairs: 10}
	for i := 0; i < pairs; i++ {
		w.Pairs = append(w.Pairs, models.WorkoutPair{
			ExerciseA: models.Exercise{Name: "Burpees"},
			ExerciseB: models.Exercise{Name: "Push-ups"},
		})
	}
	return w
}

// runSeconds feeds n one-second elapsed commands.
func runSeconds(s models.TimerState, p Plan, cfg Config, n int) (models.TimerState, []Transition) {
	var all []Transition
	for i := 0; i < n; i++ {
		var tr []Transition
		s, tr = Reduce(s, p, cfg, Command{Type: CommandElapsed, Seconds: 1})
		all = append(all, tr...)
	}
	return s, all
}

func TestInitial(t *testing.T) {
	got := Initial(testConfig)
	want := models.TimerState{CurrentPhase: models.PhaseWork, TimeRemaining: 5, CurrentRound: 1}
	if got != want {
		t.Fatalf("Initial = %+v, want %+v", got, want)
	}
}

func TestReduce_EndToEndScenario(t *testing.T) {
	plan := PlanFor(testWorkout(2, 2))
	s, _ := Reduce(Initial(testConfig), plan, testConfig, Command{Type: CommandStart})
	if !s.IsActive || s.IsPaused || s.CurrentPhase != models.PhaseWork || s.TimeRemaining != 5 || s.CurrentRound != 1 || s.CurrentPairIndex != 0 {
		t.Fatalf("fresh start: %+v", s)
	}

	steps := []struct {
		at        int
		phase     models.Phase
		remaining int
		round     int
		pairIndex int
	}{
		{5, models.PhaseRest, 3, 1, 0},
		{8, models.PhaseWork, 5, 2, 0},
		{16, models.PhasePairRest, 10, 2, 0},
		{26, models.PhaseWork, 5, 1, 1},
	}

	elapsed := 0
	for _, step := range steps {
		s, _ = runSeconds(s, plan, testConfig, step.at-elapsed)
		elapsed = step.at
		if s.CurrentPhase != step.phase || s.TimeRemaining != step.remaining || s.CurrentRound != step.round || s.CurrentPairIndex != step.pairIndex {
			t.Fatalf("at %ds: got %+v, want phase=%s remaining=%d round=%d pair=%d",
				step.at, s, step.phase, step.remaining, step.round, step.pairIndex)
		}
	}

	s, _ = runSeconds(s, plan, testConfig, 42-elapsed)
	if s.CurrentPhase != models.PhaseFinished || s.IsActive {
		t.Fatalf("at 42s: expected finished and inactive, got %+v", s)
	}
	if !IsWorkoutComplete(s) {
		t.Fatalf("IsWorkoutComplete = false at finish")
	}
}

func TestReduce_NotFinishedOneSecondEarly(t *testing.T) {
	plan := PlanFor(testWorkout(2, 2))
	s, _ := Reduce(Initial(testConfig), plan, testConfig, Command{Type: CommandStart})
	s, _ = runSeconds(s, plan, testConfig, 41)
	if s.CurrentPhase != models.PhaseRest || s.TimeRemaining != 1 {
		t.Fatalf("at 41s: got %+v", s)
	}
}

func TestAdvance_LargeElapsedMatchesSteppedTicks(t *testing.T) {
	plan := PlanFor(testWorkout(2, 2))
	start, _ := Reduce(Initial(testConfig), plan, testConfig, Command{Type: CommandStart})

	for _, n := range []int{1, 4, 5, 7, 16, 20, 26, 41} {
		stepped, steppedTr := runSeconds(start, plan, testConfig, n)
		jumped, jumpedTr := Reduce(start, plan, testConfig, Command{Type: CommandElapsed, Seconds: n})
		if stepped != jumped {
			t.Fatalf("n=%d: stepped %+v, jumped %+v", n, stepped, jumped)
		}
		if len(steppedTr) != len(jumpedTr) {
			t.Fatalf("n=%d: stepped %d transitions, jumped %d", n, len(steppedTr), len(jumpedTr))
		}
	}

	got, tr := Advance(start, plan, testConfig, 1000)
	if got.CurrentPhase != models.PhaseFinished || got.IsActive {
		t.Fatalf("huge elapsed must finish, got %+v", got)
	}
	if last := tr[len(tr)-1]; last.From != models.PhaseRest || last.To != models.PhaseFinished {
		t.Fatalf("last transition = %+v", last)
	}
}

func TestAdvance_TransitionsDescribeEnteredPhase(t *testing.T) {
	plan := PlanFor(testWorkout(2, 2))
	s, _ := Reduce(Initial(testConfig), plan, testConfig, Command{Type: CommandStart})
	_, tr := Advance(s, plan, testConfig, 16)

	want := []Transition{
		{From: models.PhaseWork, To: models.PhaseRest, Round: 1, PairIndex: 0, Remaining: 3},
		{From: models.PhaseRest, To: models.PhaseWork, Round: 2, PairIndex: 0, Remaining: 5},
		{From: models.PhaseWork, To: models.PhaseRest, Round: 2, PairIndex: 0, Remaining: 3},
		{From: models.PhaseRest, To: models.PhasePairRest, Round: 2, PairIndex: 0, Remaining: 10},
	}
	if len(tr) != len(want) {
		t.Fatalf("got %d transitions, want %d: %+v", len(tr), len(want), tr)
	}
	for i := range want {
		if tr[i] != want[i] {
			t.Errorf("transition %d = %+v, want %+v", i, tr[i], want[i])
		}
	}
}

func TestAdvance_ZeroLengthPhasesAreSkipped(t *testing.T) {
	cfg := Config{WorkTime: 2, RestTime: 0, PairRestTime: 0}
	plan := PlanFor(testWorkout(2, 2))
	s, _ := Reduce(Initial(cfg), plan, cfg, Command{Type: CommandStart})

	s, _ = runSeconds(s, plan, cfg, 2)
	if s.CurrentPhase != models.PhaseWork || s.CurrentRound != 2 || s.TimeRemaining != 2 {
		t.Fatalf("after first work with zero rest: %+v", s)
	}
	s, _ = runSeconds(s, plan, cfg, 2)
	if s.CurrentPhase != models.PhaseWork || s.CurrentPairIndex != 1 || s.CurrentRound != 1 {
		t.Fatalf("zero pair rest must roll into next pair: %+v", s)
	}
	s, _ = runSeconds(s, plan, cfg, 4)
	if s.CurrentPhase != models.PhaseFinished {
		t.Fatalf("expected finished, got %+v", s)
	}
}

func TestReduce_ElapsedIgnoredUnlessRunning(t *testing.T) {
	plan := PlanFor(testWorkout(1, 2))
	fresh := Initial(testConfig)

	if got, _ := Reduce(fresh, plan, testConfig, Command{Type: CommandElapsed, Seconds: 3}); got != fresh {
		t.Fatalf("idle state advanced: %+v", got)
	}

	paused, _ := Reduce(fresh, plan, testConfig, Command{Type: CommandPause})
	if got, _ := Reduce(paused, plan, testConfig, Command{Type: CommandElapsed, Seconds: 3}); got != paused {
		t.Fatalf("paused state advanced: %+v", got)
	}
}

func TestReduce_ControlSemantics(t *testing.T) {
	plan := PlanFor(testWorkout(2, 2))
	s, _ := Reduce(Initial(testConfig), plan, testConfig, Command{Type: CommandStart})
	s, _ = runSeconds(s, plan, testConfig, 7)

	t.Run("pause preserves position and is idempotent", func(t *testing.T) {
		once, _ := Reduce(s, plan, testConfig, Command{Type: CommandPause})
		twice, _ := Reduce(once, plan, testConfig, Command{Type: CommandPause})
		if once != twice {
			t.Fatalf("pause twice %+v != once %+v", twice, once)
		}
		if once.IsActive || !once.IsPaused || once.TimeRemaining != s.TimeRemaining || once.CurrentPhase != s.CurrentPhase {
			t.Fatalf("pause changed position: %+v", once)
		}
	})

	t.Run("start is idempotent", func(t *testing.T) {
		once, _ := Reduce(s, plan, testConfig, Command{Type: CommandStart})
		twice, _ := Reduce(once, plan, testConfig, Command{Type: CommandStart})
		if once != twice || !once.IsActive || once.IsPaused {
			t.Fatalf("start: once=%+v twice=%+v", once, twice)
		}
	})

	t.Run("stop clears flags and keeps position", func(t *testing.T) {
		stopped, _ := Reduce(s, plan, testConfig, Command{Type: CommandStop})
		if stopped.IsActive || stopped.IsPaused {
			t.Fatalf("stop flags: %+v", stopped)
		}
		if stopped.CurrentPhase != s.CurrentPhase || stopped.CurrentRound != s.CurrentRound || stopped.TimeRemaining != s.TimeRemaining {
			t.Fatalf("stop moved position: %+v", stopped)
		}
	})

	t.Run("reset returns to initial from any phase", func(t *testing.T) {
		finished, _ := Advance(s, plan, testConfig, 1000)
		for _, from := range []models.TimerState{s, finished} {
			got, _ := Reduce(from, plan, testConfig, Command{Type: CommandReset})
			if got != Initial(testConfig) {
				t.Fatalf("reset from %+v = %+v", from, got)
			}
		}
	})

	t.Run("start and pause do not revive a finished workout", func(t *testing.T) {
		finished, _ := Advance(s, plan, testConfig, 1000)
		for _, cmd := range []CommandType{CommandStart, CommandPause} {
			got, _ := Reduce(finished, plan, testConfig, Command{Type: cmd})
			if got != finished {
				t.Fatalf("%s on finished = %+v", cmd, got)
			}
		}
	})
}

func TestInvariantsAcrossWholeWorkout(t *testing.T) {
	for _, shape := range []struct{ pairs, rounds int }{{1, 1}, {2, 2}, {3, 4}, {4, 8}} {
		cfg := Config{WorkTime: 4, RestTime: 2, PairRestTime: 6}
		plan := PlanFor(testWorkout(shape.pairs, shape.rounds))
		s, _ := Reduce(Initial(cfg), plan, cfg, Command{Type: CommandStart})

		prev := ProgressPercentage(s, plan, cfg)
		pairsStarted := 1
		for i := 0; i < 10000 && s.CurrentPhase != models.PhaseFinished; i++ {
			var tr []Transition
			s, tr = Reduce(s, plan, cfg, Command{Type: CommandElapsed, Seconds: 1})
			for _, x := range tr {
				if x.From == models.PhasePairRest {
					pairsStarted++
				}
			}

			if s.CurrentPhase != models.PhaseFinished {
				if s.CurrentRound < 1 || s.CurrentRound > plan.Rounds {
					t.Fatalf("%+v: round out of range: %+v", shape, s)
				}
				if s.CurrentPairIndex < 0 || s.CurrentPairIndex > plan.Pairs-1 {
					t.Fatalf("%+v: pair index out of range: %+v", shape, s)
				}
			}

			pct := ProgressPercentage(s, plan, cfg)
			if pct < prev {
				t.Fatalf("%+v: progress regressed %.3f -> %.3f at %+v", shape, prev, pct, s)
			}
			if (pct == 100) != (s.CurrentPhase == models.PhaseFinished) {
				t.Fatalf("%+v: progress %.3f with phase %s", shape, pct, s.CurrentPhase)
			}
			prev = pct
		}
		if s.CurrentPhase != models.PhaseFinished {
			t.Fatalf("%+v: workout never finished", shape)
		}
		if pairsStarted != plan.Pairs {
			t.Fatalf("%+v: processed %d pairs, want %d", shape, pairsStarted, plan.Pairs)
		}
	}
}

func TestCurrentExercise(t *testing.T) {
	cases := []struct {
		phase models.Phase
		round int
		want  Slot
	}{
		{models.PhaseWork, 1, SlotA},
		{models.PhaseRest, 1, SlotA},
		{models.PhaseWork, 2, SlotB},
		{models.PhaseRest, 4, SlotB},
		{models.PhaseWork, 7, SlotA},
		{models.PhasePairRest, 3, SlotNone},
		{models.PhaseFinished, 2, SlotNone},
	}
	for _, tc := range cases {
		s := models.TimerState{CurrentPhase: tc.phase, CurrentRound: tc.round}
		if got := CurrentExercise(s); got != tc.want {
			t.Errorf("CurrentExercise(%s, round %d) = %q, want %q", tc.phase, tc.round, got, tc.want)
		}
	}
}

func TestExerciseFor(t *testing.T) {
	w := testWorkout(1, 2)
	if ex, ok := ExerciseFor(w, models.TimerState{CurrentPhase: models.PhaseWork, CurrentRound: 2}); !ok || ex.Name != "Push-ups" {
		t.Fatalf("round 2 exercise = %+v, %v", ex, ok)
	}
	if _, ok := ExerciseFor(w, models.TimerState{CurrentPhase: models.PhasePairRest, CurrentRound: 2}); ok {
		t.Fatalf("pair rest must not resolve an exercise")
	}
	if _, ok := ExerciseFor(w, models.TimerState{CurrentPhase: models.PhaseWork, CurrentRound: 1, CurrentPairIndex: 5}); ok {
		t.Fatalf("out-of-range pair must not resolve")
	}
}

func TestProgressPercentage(t *testing.T) {
	plan := Plan{Rounds: 2, Pairs: 2}
	cases := []struct {
		name  string
		state models.TimerState
		want  float64
	}{
		{"fresh", Initial(testConfig), 0},
		{"finished", models.TimerState{CurrentPhase: models.PhaseFinished}, 100},
		{"mid work", models.TimerState{CurrentPhase: models.PhaseWork, TimeRemaining: 0, CurrentRound: 1}, 12.5},
		{"rest start", models.TimerState{CurrentPhase: models.PhaseRest, TimeRemaining: 3, CurrentRound: 1}, 12.5},
		{"second round work start", models.TimerState{CurrentPhase: models.PhaseWork, TimeRemaining: 5, CurrentRound: 2}, 25},
		{"pair rest", models.TimerState{CurrentPhase: models.PhasePairRest, TimeRemaining: 10, CurrentRound: 2}, 50},
		{"second pair start", models.TimerState{CurrentPhase: models.PhaseWork, TimeRemaining: 5, CurrentRound: 1, CurrentPairIndex: 1}, 50},
	}
	for _, tc := range cases {
		if got := ProgressPercentage(tc.state, plan, testConfig); got != tc.want {
			t.Errorf("%s: ProgressPercentage = %v, want %v", tc.name, got, tc.want)
		}
	}

	if got := ProgressPercentage(Initial(testConfig), Plan{}, testConfig); got != 0 {
		t.Errorf("empty plan = %v, want 0", got)
	}
}

func TestProgressPercentage_NeverDecreases(t *testing.T) {
	w := testWorkout(3, 2)
	plan := PlanFor(w)
	s, _ := Reduce(Initial(testConfig), plan, testConfig, Command{Type: CommandStart})

	prev := ProgressPercentage(s, plan, testConfig)
	for i := 0; s.CurrentPhase != models.PhaseFinished; i++ {
		if i > 1000 {
			t.Fatalf("workout never finished: %+v", s)
		}
		s, _ = Advance(s, plan, testConfig, 1)
		got := ProgressPercentage(s, plan, testConfig)
		if got < prev {
			t.Fatalf("progress dropped from %v to %v at %+v", prev, got, s)
		}
		prev = got
	}
	if prev != 100 {
		t.Fatalf("final progress = %v, want 100", prev)
	}
}

func TestConfigValidate(t *testing.T) {
	if err := DefaultConfig.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	for _, c := range []Config{{WorkTime: 0}, {WorkTime: 5, RestTime: -1}, {WorkTime: 5, PairRestTime: -1}} {
		if err := c.Validate(); err == nil {
			t.Errorf("expected error for %+v", c)
		}
	}
}
