package duration

import (
	"testing"

	"tabata_timer/internal/models"
)

func workoutWith(pairs, rounds, restBetween int) *models.Workout {
	w := &models.Workout{ID: "w", Name: "W", Rounds: rounds, RestBetweenPairs: restBetween}
	for i := 0; i < pairs; i++ {
		w.Pairs = append(w.Pairs, models.WorkoutPair{
			ExerciseA: models.Exercise{Name: "A"},
			ExerciseB: models.Exercise{Name: "B"},
		})
	}
	return w
}

func TestPairDuration(t *testing.T) {
	cases := []struct {
		rounds int
		want   int
	}{
		{1, 20},
		{4, 110},
		{8, 230},
		{0, -10},
	}
	for _, tc := range cases {
		if got := PairDuration(tc.rounds); got != tc.want {
			t.Errorf("PairDuration(%d) = %d, want %d", tc.rounds, got, tc.want)
		}
	}

	custom := Timing{Work: 5, Rest: 3}
	if got := custom.PairDuration(2); got != 13 {
		t.Errorf("custom PairDuration(2) = %d, want 13", got)
	}
}

func TestTotalDuration(t *testing.T) {
	if got := TotalDuration(workoutWith(2, 8, 60)); got != 520 {
		t.Fatalf("TotalDuration = %d, want 520", got)
	}
	if got := TotalDuration(workoutWith(1, 8, 60)); got != 230 {
		t.Fatalf("single pair must not add pair rest, got %d", got)
	}
	if got := TotalDuration(nil); got != 0 {
		t.Fatalf("nil workout = %d, want 0", got)
	}
	if got := TotalDuration(workoutWith(0, 8, 60)); got != 0 {
		t.Fatalf("empty pairs = %d, want 0", got)
	}
}

func TestTotalRestTime(t *testing.T) {
	// 4 pairs * 7 * 10 + 3 * 45
	if got := TotalRestTime(workoutWith(4, 8, 45)); got != 280+135 {
		t.Fatalf("TotalRestTime = %d, want %d", got, 280+135)
	}
	if got := TotalRestTime(nil); got != 0 {
		t.Fatalf("nil workout = %d, want 0", got)
	}
}

func TestGetBreakdown(t *testing.T) {
	got := GetBreakdown(workoutWith(2, 8, 60))
	want := Breakdown{
		TotalDuration: 320 + 140 + 60,
		WorkTime:      320,
		RestTime:      140,
		PairRestTime:  60,
		Pairs:         2,
		Rounds:        8,
	}
	if got != want {
		t.Fatalf("GetBreakdown = %+v, want %+v", got, want)
	}
	if got.TotalDuration != TotalDuration(workoutWith(2, 8, 60)) {
		t.Fatalf("breakdown total disagrees with TotalDuration")
	}

	empty := GetBreakdown(workoutWith(0, 6, 30))
	if empty != (Breakdown{Rounds: 6}) {
		t.Fatalf("empty breakdown = %+v", empty)
	}
	if GetBreakdown(nil) != (Breakdown{}) {
		t.Fatalf("nil breakdown must be zero")
	}
}

func TestFormatDuration(t *testing.T) {
	cases := map[int]string{
		65:   "1:05",
		3665: "1:01:05",
		-10:  "0:00",
		0:    "0:00",
		59:   "0:59",
		3600: "1:00:00",
		520:  "8:40",
	}
	for in, want := range cases {
		if got := FormatDuration(in); got != want {
			t.Errorf("FormatDuration(%d) = %q, want %q", in, got, want)
		}
	}
}

func TestFormatRestTime(t *testing.T) {
	cases := map[int]string{
		90:  "1m 30s",
		120: "2m",
		45:  "45s",
		-5:  "0s",
		0:   "0s",
	}
	for in, want := range cases {
		if got := FormatRestTime(in); got != want {
			t.Errorf("FormatRestTime(%d) = %q, want %q", in, got, want)
		}
	}
}

func TestSessionLength(t *testing.T) {
	w := workoutWith(2, 2, 60)
	if got := (Timing{Work: 5, Rest: 3}).SessionLength(w, 10); got != 42 {
		t.Fatalf("SessionLength = %d, want 42", got)
	}
	// two trailing rests more than the display duration
	if got := DefaultTiming.SessionLength(w, w.RestBetweenPairs); got != TotalDuration(w)+2*DefaultTiming.Rest {
		t.Fatalf("default SessionLength = %d, want %d", got, TotalDuration(w)+2*DefaultTiming.Rest)
	}
	if got := DefaultTiming.SessionLength(nil, 10); got != 0 {
		t.Fatalf("nil workout = %d, want 0", got)
	}
}
