package stations

import (
	"context"
	"errors"
)

// ErrUnknownStation is returned when no metadata exists for a station.
var ErrUnknownStation = errors.New("unknown station")

// Store is a read-only lookup of station metadata.
type Store interface {
	// Scale returns the amplitude normalization divisor for a station.
	// Returns ErrUnknownStation when the station has no metadata.
	Scale(ctx context.Context, station string) (float64, error)
}
