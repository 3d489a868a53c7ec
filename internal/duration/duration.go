// Package duration computes workout lengths and formats them for display.
package duration

import (
	"fmt"

	"tabata_timer/internal/models"
)

// Timing is the work/rest cadence of a single round, in seconds.
type Timing struct {
	Work int
	Rest int
}

// DefaultTiming is the classic tabata cadence: 20s work, 10s rest.
var DefaultTiming = Timing{Work: 20, Rest: 10}

// PairDuration returns the length of one pair: rounds work/rest cycles minus
// the trailing rest of the final cycle. Zero rounds yields a negative value;
// callers guard rounds >= 1.
func (t Timing) PairDuration(rounds int) int {
	return rounds*(t.Work+t.Rest) - t.Rest
}

// PairDuration uses DefaultTiming.
func PairDuration(rounds int) int {
	return DefaultTiming.PairDuration(rounds)
}

// TotalDuration returns the workout length in seconds. A nil workout or one
// without pairs is 0.
func TotalDuration(w *models.Workout) int {
	if !hasPairs(w) {
		return 0
	}
	pairs := len(w.Pairs)
	return PairDuration(w.Rounds)*pairs + pairRestTotal(w)
}

// SessionLength is how long the timer runs for w under t when each pair rest
// lasts pairRest seconds. Unlike TotalDuration it counts the rest that closes
// the last round of every pair, since the timer plays it out.
func (t Timing) SessionLength(w *models.Workout, pairRest int) int {
	if !hasPairs(w) {
		return 0
	}
	pairs := len(w.Pairs)
	return pairs*w.Rounds*(t.Work+t.Rest) + pairRest*max(0, pairs-1)
}

// TotalRestTime returns the in-pair rest (all but the last round of each pair)
// plus the rest between pairs.
func TotalRestTime(w *models.Workout) int {
	if !hasPairs(w) {
		return 0
	}
	return len(w.Pairs)*(w.Rounds-1)*DefaultTiming.Rest + pairRestTotal(w)
}

// Breakdown splits a workout's length by phase kind.
type Breakdown struct {
	TotalDuration int `json:"total_duration"`
	WorkTime      int `json:"work_time"`
	RestTime      int `json:"rest_time"`
	PairRestTime  int `json:"pair_rest_time"`
	Pairs         int `json:"pairs"`
	Rounds        int `json:"rounds"`
}

// GetBreakdown returns the time allocation of w.
func GetBreakdown(w *models.Workout) Breakdown {
	if !hasPairs(w) {
		b := Breakdown{}
		if w != nil {
			b.Rounds = w.Rounds
		}
		return b
	}

	pairs := len(w.Pairs)
	work := pairs * w.Rounds * DefaultTiming.Work
	rest := pairs * (w.Rounds - 1) * DefaultTiming.Rest
	pairRest := pairRestTotal(w)

	return Breakdown{
		TotalDuration: work + rest + pairRest,
		WorkTime:      work,
		RestTime:      rest,
		PairRestTime:  pairRest,
		Pairs:         pairs,
		Rounds:        w.Rounds,
	}
}

// FormatDuration renders seconds as "M:SS", or "H:MM:SS" from one hour up.
// Negative input renders as "0:00".
func FormatDuration(seconds int) string {
	if seconds < 0 {
		return "0:00"
	}
	hours := seconds / 3600
	minutes := (seconds % 3600) / 60
	secs := seconds % 60
	if hours > 0 {
		return fmt.Sprintf("%d:%02d:%02d", hours, minutes, secs)
	}
	return fmt.Sprintf("%d:%02d", minutes, secs)
}

// FormatRestTime renders seconds as "Xm Ys", dropping a zero seconds part
// ("2m") and the minutes part under a minute ("45s").
func FormatRestTime(seconds int) string {
	if seconds < 0 {
		return "0s"
	}
	minutes := seconds / 60
	secs := seconds % 60
	switch {
	case minutes > 0 && secs > 0:
		return fmt.Sprintf("%dm %ds", minutes, secs)
	case minutes > 0:
		return fmt.Sprintf("%dm", minutes)
	default:
		return fmt.Sprintf("%ds", secs)
	}
}

func hasPairs(w *models.Workout) bool {
	return w != nil && len(w.Pairs) > 0
}

func pairRestTotal(w *models.Workout) int {
	return w.RestBetweenPairs * max(0, len(w.Pairs)-1)
}
