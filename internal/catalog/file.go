package catalog

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"tabata_timer/internal/models"
)

type yamlCatalog struct {
	Workouts []models.Workout `yaml:"workouts"`
}

// ReadFile parses a YAML workout file. A missing file yields no workouts.
func ReadFile(path string) ([]models.Workout, error) {
	rawData, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read catalog file: %w", err)
	}

	var fileData yamlCatalog
	if err := yaml.Unmarshal(rawData, &fileData); err != nil {
		return nil, fmt.Errorf("parse catalog yaml: %w", err)
	}
	return fileData.Workouts, nil
}

// LoadFile adds the workouts of a YAML file to the catalog. Invalid or
// duplicate entries are skipped with a warning; the count added is returned.
func (c *Catalog) LoadFile(path string) (int, error) {
	if path == "" {
		return 0, nil
	}
	workouts, err := ReadFile(path)
	if err != nil {
		return 0, err
	}

	added := 0
	for _, w := range workouts {
		if err := c.Add(w); err != nil {
			c.log.Warnw("catalog_workout_skipped", "path", path, "workout_id", w.ID, "error", err)
			continue
		}
		added++
	}
	c.log.Infow("catalog_file_loaded", "path", path, "added", added, "skipped", len(workouts)-added)
	return added, nil
}
