package stations

import (
	"context"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// FileStore serves station scale factors from a YAML file loaded once at
// construction.
//
// File format:
//
//	XYZ:
//	  scale: 12500
//	ABC:
//	  scale: 8000
type FileStore struct {
	scales map[string]float64
}

type fileEntry struct {
	Scale float64 `yaml:"scale"`
}

// NewFileStore loads the station table from path.
func NewFileStore(path string) (*FileStore, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read stations file: %w", err)
	}

	var entries map[string]fileEntry
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("parse stations yaml: %w", err)
	}

	scales := make(map[string]float64, len(entries))
	for name, e := range entries {
		scales[name] = e.Scale
	}

	return &FileStore{scales: scales}, nil
}

// Scale implements Store.
func (s *FileStore) Scale(_ context.Context, station string) (float64, error) {
	scale, ok := s.scales[station]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrUnknownStation, station)
	}
	return scale, nil
}
