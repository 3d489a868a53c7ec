package repository

import (
	"context"
	"database/sql"

	"tabata_timer/internal/models"
)

// KVStore is a namespaced string store. Callers own the encoding of values.
type KVStore interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

type EventRepo interface {
	Append(ctx context.Context, e models.SessionEvent) error
	List(ctx context.Context, f EventFilter) ([]models.SessionEvent, error)
}

type Repository struct {
	KV        KVStore
	EventRepo EventRepo
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{
		KV:        NewKVSQLite(db),
		EventRepo: NewEventSQLite(db),
	}
}
