package winston

import (
	"context"
	"fmt"

	"github.com/ibrewster/waveform-fetch/internal/model"
)

// GetAvailability fetches per-channel availability spans matching the query
// selection. Time bounds on the query are ignored: availability is reported
// for the full extent of the server's holdings.
func (c *Client) GetAvailability(ctx context.Context, q Query) ([]model.Availability, error) {
	var resp AvailabilityResponse
	if err := c.get(ctx, "/availability", q.selectionValues(), &resp); err != nil {
		return nil, fmt.Errorf("get availability: %w", err)
	}

	avail := make([]model.Availability, 0, len(resp.Channels))
	for _, a := range resp.Channels {
		avail = append(avail, toAvailability(a))
	}
	return avail, nil
}
