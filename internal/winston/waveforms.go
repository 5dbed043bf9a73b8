package winston

import (
	"context"
	"fmt"

	"github.com/ibrewster/waveform-fetch/internal/model"
)

// GetWaveforms fetches raw trace segments for the query window. The returned
// stream holds one trace per contiguous data segment; it may be empty when
// the server has no data in the window.
func (c *Client) GetWaveforms(ctx context.Context, q Query) (model.Stream, error) {
	var resp WaveformsResponse
	if err := c.get(ctx, "/waveforms", q.values(), &resp); err != nil {
		return nil, fmt.Errorf("get waveforms: %w", err)
	}

	stream := make(model.Stream, 0, len(resp.Traces))
	for _, t := range resp.Traces {
		stream = append(stream, toTrace(t))
	}

	c.logger.Debug("waveforms fetched",
		"station", q.Station,
		"channel", q.Channel,
		"traces", stream.Count(),
	)

	return stream, nil
}
