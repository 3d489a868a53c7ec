package catalog

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"tabata_timer/internal/models"
)

// Export serializes w as indented JSON suitable for sharing.
func Export(w models.Workout) ([]byte, error) {
	data, err := json.MarshalIndent(w, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("export workout %s: %w", w.ID, err)
	}
	return data, nil
}

// Import parses an exported workout, gives it a fresh id and import time,
// and validates the result. The catalog is not modified; call Add for that.
func Import(data []byte) (models.Workout, error) {
	return importWorkout(data, uuid.NewString(), time.Now().UTC())
}

func importWorkout(data []byte, id string, now time.Time) (models.Workout, error) {
	var w models.Workout
	if err := json.Unmarshal(data, &w); err != nil {
		return models.Workout{}, fmt.Errorf("%w: decode: %v", ErrInvalidWorkout, err)
	}

	w.ID = id
	w.ImportedAt = &now
	if err := Validate(&w); err != nil {
		return models.Workout{}, err
	}
	return w, nil
}
