package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"tabata_timer/internal/models"
)

func fixedZone(name string, offsetSec int) *time.Location {
	return time.FixedZone(name, offsetSec)
}

func mustTimeIn(loc *time.Location, y int, m time.Month, d, hh, mm, ss int) time.Time {
	return time.Date(y, m, d, hh, mm, ss, 0, loc)
}

func Test_normalizeToUTC(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   time.Time
		want func(time.Time) bool
	}{
		{
			name: "zero time remains zero",
			in:   time.Time{},
			want: func(out time.Time) bool { return out.IsZero() },
		},
		{
			name: "non-UTC converted to UTC preserving instant",
			in:   mustTimeIn(fixedZone("UTC+3", 3*3600), 2025, time.August, 1, 12, 34, 56),
			want: func(out time.Time) bool {
				exp := time.Date(2025, time.August, 1, 9, 34, 56, 0, time.UTC)
				return out.Location() == time.UTC && out.Equal(exp)
			},
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got := normalizeToUTC(tc.in)
			if !tc.want(got) {
				t.Fatalf("unexpected normalizeToUTC result: %v (loc=%v)", got, got.Location())
			}
		})
	}
}

func Test_normalizeAndValidateFilter(t *testing.T) {
	t.Parallel()

	fromLocal := mustTimeIn(fixedZone("UTC+2", 2*3600), 2025, time.September, 10, 10, 0, 0)
	toUTC := time.Date(2025, time.September, 10, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		in       LogFilter
		wantFrom time.Time
		wantType string
		wantID   string
		wantErr  error
	}{
		{
			name: "all zero/empty ok",
			in:   LogFilter{},
		},
		{
			name: "from after to -> error",
			in: LogFilter{
				From: time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC),
				To:   time.Date(2025, 1, 1, 23, 0, 0, 0, time.UTC),
			},
			wantErr: ErrInvalidTimeRange,
		},
		{
			name:    "negative limit -> error",
			in:      LogFilter{Limit: -1},
			wantErr: ErrInvalidLimit,
		},
		{
			name:    "oversized limit -> error",
			in:      LogFilter{Limit: 5000},
			wantErr: ErrInvalidLimit,
		},
		{
			name: "normalize tz, type and workout",
			in: LogFilter{
				From:      fromLocal,
				To:        toUTC,
				Type:      " phase_change ",
				WorkoutID: " quick-blast ",
			},
			wantFrom: time.Date(2025, time.September, 10, 8, 0, 0, 0, time.UTC),
			wantType: "PHASE_CHANGE",
			wantID:   "quick-blast",
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, err := normalizeAndValidateFilter(tc.in)

			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("expected err %v; got %v", tc.wantErr, err)
			}
			if !tc.wantFrom.IsZero() && !got.From.Equal(tc.wantFrom) {
				t.Fatalf("from: got %v; want %v", got.From, tc.wantFrom)
			}
			if got.Type != tc.wantType || got.WorkoutID != tc.wantID {
				t.Fatalf("got type=%q id=%q; want %q %q", got.Type, got.WorkoutID, tc.wantType, tc.wantID)
			}
		})
	}
}

func TestEventLogService_List_DelegatesNormalizedParams(t *testing.T) {
	t.Parallel()

	at := time.Date(2025, time.October, 1, 6, 0, 0, 0, time.UTC)
	frepo := &memEventRepo{events: []models.SessionEvent{
		{EventID: "1", OccurredAt: at, Type: models.EventStart, WorkoutID: "quick-blast"},
		{EventID: "2", OccurredAt: at, Type: models.EventPause, WorkoutID: "quick-blast"},
		{EventID: "3", OccurredAt: at, Type: models.EventStart, WorkoutID: "core-crusher"},
	}}
	svc := NewEventLogService(frepo)

	fromLocal := mustTimeIn(fixedZone("UTC+5", 5*3600), 2025, time.October, 1, 10, 0, 0)
	toLocal := mustTimeIn(fixedZone("UTC-2", -2*3600), 2025, time.October, 1, 12, 30, 0)

	out, err := svc.List(context.Background(), LogFilter{
		From:      fromLocal,
		To:        toLocal,
		Type:      "  start ",
		WorkoutID: "quick-blast",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out) != 1 || out[0].EventID != "1" {
		t.Fatalf("unexpected events: %+v", out)
	}

	wantFrom := time.Date(2025, time.October, 1, 5, 0, 0, 0, time.UTC)
	wantTo := time.Date(2025, time.October, 1, 14, 30, 0, 0, time.UTC)
	if !frepo.gotFilter.From.Equal(wantFrom) || !frepo.gotFilter.To.Equal(wantTo) {
		t.Fatalf("repo got from=%v to=%v", frepo.gotFilter.From, frepo.gotFilter.To)
	}
	if frepo.gotFilter.Type != "START" {
		t.Fatalf("repo gotType=%q; want %q", frepo.gotFilter.Type, "START")
	}
}

func TestEventLogService_List_RepoErrorPropagation(t *testing.T) {
	t.Parallel()

	frepo := &memEventRepo{listErr: errors.New("db down")}
	svc := NewEventLogService(frepo)

	if _, err := svc.List(context.Background(), LogFilter{}); !errors.Is(err, frepo.listErr) {
		t.Fatalf("expected repo error to propagate; got %v", err)
	}
}
