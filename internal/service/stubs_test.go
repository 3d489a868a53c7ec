package service

import (
	"context"
	"strings"
	"sync"
	"time"

	"tabata_timer/internal/models"
	"tabata_timer/internal/repository"
)

// memKV is an in-memory repository.KVStore with injectable failures.
type memKV struct {
	mu      sync.Mutex
	data    map[string]string
	getErr  error
	setErr  error
	delErr  error
	setCall int
}

func newMemKV() *memKV { return &memKV{data: map[string]string{}} }

func (m *memKV) Get(_ context.Context, key string) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.getErr != nil {
		return "", false, m.getErr
	}
	v, ok := m.data[key]
	return v, ok, nil
}

func (m *memKV) Set(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.setCall++
	if m.setErr != nil {
		return m.setErr
	}
	m.data[key] = value
	return nil
}

func (m *memKV) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.delErr != nil {
		return m.delErr
	}
	delete(m.data, key)
	return nil
}

func (m *memKV) value(key string) (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.data[key]
	return v, ok
}

// memEventRepo records appended events and filters them like the SQL repo.
type memEventRepo struct {
	mu        sync.Mutex
	events    []models.SessionEvent
	appendErr error
	listErr   error
	gotFilter repository.EventFilter
}

func (f *memEventRepo) Append(_ context.Context, e models.SessionEvent) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.appendErr != nil {
		return f.appendErr
	}
	if e.OccurredAt.IsZero() {
		e.OccurredAt = time.Now().UTC()
	}
	f.events = append(f.events, e)
	return nil
}

func (f *memEventRepo) List(_ context.Context, filter repository.EventFilter) ([]models.SessionEvent, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.gotFilter = filter
	if f.listErr != nil {
		return nil, f.listErr
	}
	var out []models.SessionEvent
	for _, e := range f.events {
		if !filter.From.IsZero() && e.OccurredAt.Before(filter.From) {
			continue
		}
		if !filter.To.IsZero() && e.OccurredAt.After(filter.To) {
			continue
		}
		if filter.Type != "" && !strings.EqualFold(e.Type, filter.Type) {
			continue
		}
		if filter.WorkoutID != "" && e.WorkoutID != filter.WorkoutID {
			continue
		}
		out = append(out, e)
	}
	return out, nil
}

func (f *memEventRepo) types() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, 0, len(f.events))
	for _, e := range f.events {
		out = append(out, e.Type)
	}
	return out
}

type fixedCounter int

func (c fixedCounter) Len() int { return int(c) }
