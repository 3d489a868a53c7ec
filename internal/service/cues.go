package service

import (
	"time"

	"tabata_timer/internal/models"
	"tabata_timer/internal/timer"
)

// CueType names a sound the shell should play.
type CueType string

const (
	CueWorkStart       CueType = "workStart"
	CueRestStart       CueType = "restStart"
	CuePairRestStart   CueType = "pairRestStart"
	CueWorkoutComplete CueType = "workoutComplete"
	CueCountdown       CueType = "countdown"
)

// countdownFrom is the highest remaining second that beeps.
const countdownFrom = 3

// Tone is one synthesized beep.
type Tone struct {
	FrequencyHz int    `json:"frequency_hz"`
	DurationMs  int    `json:"duration_ms"`
	Waveform    string `json:"waveform"`
}

// Cue is pushed to the shell, which renders Tones in order with GapMs between.
type Cue struct {
	Type   CueType   `json:"type"`
	Tones  []Tone    `json:"tones"`
	GapMs  int       `json:"gap_ms,omitempty"`
	Volume float64   `json:"volume"`
	At     time.Time `json:"at"`
}

var cueTones = map[CueType]struct {
	tones []Tone
	gapMs int
}{
	CueWorkStart:       {tones: []Tone{{800, 300, "square"}}},
	CueRestStart:       {tones: []Tone{{400, 400, "sine"}}},
	CuePairRestStart:   {tones: []Tone{{600, 300, "sine"}, {400, 300, "sine"}}, gapMs: 200},
	CueWorkoutComplete: {tones: []Tone{{440, 400, "sine"}, {554, 400, "sine"}, {659, 400, "sine"}, {880, 400, "sine"}}, gapMs: 100},
	CueCountdown:       {tones: []Tone{{1000, 200, "square"}}},
}

// NewCue builds the cue of type t at the given volume.
func NewCue(t CueType, volume float64, at time.Time) Cue {
	recipe := cueTones[t]
	return Cue{
		Type:   t,
		Tones:  append([]Tone(nil), recipe.tones...),
		GapMs:  recipe.gapMs,
		Volume: volume,
		At:     at,
	}
}

var phaseCues = map[models.Phase]CueType{
	models.PhaseWork:     CueWorkStart,
	models.PhaseRest:     CueRestStart,
	models.PhasePairRest: CuePairRestStart,
	models.PhaseFinished: CueWorkoutComplete,
}

// CueTracker turns timer events into cues. It remembers the last observed
// phase and remaining time so each countdown second beeps once.
type CueTracker struct {
	phase     models.Phase
	remaining int
}

// Observe returns the cues triggered by ev, in order.
func (c *CueTracker) Observe(ev timer.Event) []CueType {
	switch ev.Type {
	case timer.EventPhaseChange:
		var fired []CueType
		for _, tr := range ev.Transitions {
			c.phase, c.remaining = tr.To, tr.Remaining
			if cue, ok := phaseCues[tr.To]; ok {
				fired = append(fired, cue)
			}
		}
		return fired
	case timer.EventTick:
		s := ev.State
		fire := (s.CurrentPhase == models.PhaseWork || s.CurrentPhase == models.PhaseRest) &&
			s.CurrentPhase == c.phase &&
			s.TimeRemaining > 0 && s.TimeRemaining <= countdownFrom &&
			s.TimeRemaining < c.remaining
		c.phase, c.remaining = s.CurrentPhase, s.TimeRemaining
		if fire {
			return []CueType{CueCountdown}
		}
	case timer.EventControl:
		c.phase, c.remaining = ev.State.CurrentPhase, ev.State.TimeRemaining
	}
	return nil
}
