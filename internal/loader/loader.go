package loader

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/ibrewster/waveform-fetch/internal/config"
	"github.com/ibrewster/waveform-fetch/internal/model"
	"github.com/ibrewster/waveform-fetch/internal/signal"
	"github.com/ibrewster/waveform-fetch/internal/stations"
	"github.com/ibrewster/waveform-fetch/internal/winston"
)

// Request selects what to load. Station, Channel, Start and End are required
// for a meaningful fetch; Network and Location narrow the selection.
type Request struct {
	Network  string
	Station  string
	Location string
	Channel  string
	Start    time.Time
	End      time.Time

	// Availability, when non-nil, replaces the live availability query.
	Availability model.AvailabilityTable
}

// Loader fetches, cleans and normalizes waveform data.
type Loader struct {
	cfg      *config.Config
	client   *winston.Client
	stations stations.Store
	logger   *slog.Logger
}

// New creates a Loader.
func New(cfg *config.Config, client *winston.Client, store stations.Store, logger *slog.Logger) *Loader {
	if logger == nil {
		logger = slog.Default()
	}
	return &Loader{
		cfg:      cfg,
		client:   client,
		stations: store,
		logger:   logger,
	}
}

// Load retrieves waveform data for the request window and returns the
// cleaned stream together with a timestamp series aligned 1:1 with the
// primary trace's samples. Both returns are nil (with a nil error) when no
// usable data exists for the window; callers should treat that as "nothing
// to display".
func (l *Loader) Load(ctx context.Context, req Request) (model.Stream, []int64, error) {
	if req.Start.After(req.End) {
		return nil, nil, fmt.Errorf("start time %v is after end time %v", req.Start, req.End)
	}

	avail, found, err := l.availability(ctx, req)
	if err != nil {
		return nil, nil, err
	}
	if !found || !avail.Overlaps(req.Start, req.End) {
		l.logger.Warn("no availability",
			"station", req.Station,
			"channel", req.Channel,
			"start", req.Start,
			"end", req.End,
		)
		return nil, nil, nil
	}

	// Pad the window so trimming and filtering have edge margin.
	pad := l.cfg.Window.Padding
	from := req.Start.Add(-pad)
	to := req.End.Add(pad)

	stream, err := l.fetch(ctx, req, from, to)
	if err != nil {
		return nil, nil, err
	}

	if stream.Count() == 0 {
		l.logger.Warn("no data returned",
			"station", req.Station,
			"channel", req.Channel,
			"start", req.Start,
			"end", req.End,
		)
		return nil, nil, nil
	}

	// Merge cannot combine mismatched sample types.
	if l.cfg.Output.SampleFormat == "int" {
		signal.NormalizeInt(stream)
	}
	stream = signal.Merge(stream)

	if min := l.cfg.Window.MinSamples; min > 0 && stream.First().Count() < min {
		l.logger.Warn("not enough data in window",
			"station", req.Station,
			"samples", stream.First().Count(),
			"min_samples", min,
			"start", req.Start,
			"end", req.End,
		)
		return nil, nil, nil
	}

	if l.cfg.FilterEnabled() {
		l.filter(stream)
	}

	for _, tr := range stream {
		signal.Trim(tr, from, to)
	}

	// Timestamps come from the actual data start, which may differ
	// slightly from the requested start due to server rounding.
	times := timeSeries(stream.First(), model.TimeUnit(l.cfg.Output.TimeUnit))

	if l.cfg.NormalizeEnabled() {
		if err := l.normalize(ctx, req.Station, stream); err != nil {
			return nil, nil, err
		}
	}

	return stream, times, nil
}

// availability resolves the availability record for the request, either
// from a caller-supplied table or from a live query.
func (l *Loader) availability(ctx context.Context, req Request) (model.Availability, bool, error) {
	if req.Availability != nil {
		key := model.ChannelKey{Station: req.Station, Channel: req.Channel}
		rec, ok := req.Availability[key]
		return rec, ok, nil
	}

	recs, err := l.client.GetAvailability(ctx, winston.Query{
		Network:  req.Network,
		Station:  req.Station,
		Location: req.Location,
		Channel:  req.Channel,
	})
	if err != nil {
		return model.Availability{}, false, err
	}
	if len(recs) == 0 {
		return model.Availability{}, false, nil
	}
	return recs[0], true, nil
}

// fetch retrieves raw traces for [from, to]. When a channel is given, the
// first attempt wildcards its last character to broaden code coverage; a
// channel lookup rejection falls back to the exact name once.
func (l *Loader) fetch(ctx context.Context, req Request, from, to time.Time) (model.Stream, error) {
	q := winston.Query{
		Network:  req.Network,
		Station:  req.Station,
		Location: req.Location,
		Channel:  req.Channel,
		Start:    from,
		End:      to,
	}
	if req.Channel != "" {
		q.Channel = req.Channel[:len(req.Channel)-1] + "*"
	}

	stream, err := l.client.GetWaveforms(ctx, q)
	if err != nil && req.Channel != "" && errors.Is(err, winston.ErrChannelLookup) {
		// Some servers reject wildcards.
		l.logger.Debug("wildcard channel rejected, retrying exact",
			"station", req.Station,
			"channel", req.Channel,
		)
		q.Channel = req.Channel
		stream, err = l.client.GetWaveforms(ctx, q)
	}
	return stream, err
}

// filter detrends and bandpass-filters every trace in place.
func (l *Loader) filter(stream model.Stream) {
	for _, tr := range stream {
		signal.Detrend(tr.Data)

		bp, err := signal.NewBandpass(l.cfg.Filter.LowCut, l.cfg.Filter.HighCut, tr.SampleRate, l.cfg.Filter.Order)
		if err != nil {
			// Filter band does not fit this channel's sample rate.
			l.logger.Warn("skipping bandpass filter",
				"station", tr.Station,
				"channel", tr.Channel,
				"sample_rate", tr.SampleRate,
				"error", err,
			)
			continue
		}
		tr.Data = bp.ApplyZeroPhase(tr.Data)
	}
}

// normalize applies the per-station scale divisor and zero-centers each
// trace. An unknown station skips scaling with a warning; store failures
// propagate.
func (l *Loader) normalize(ctx context.Context, station string, stream model.Stream) error {
	scale, err := l.stations.Scale(ctx, station)
	if errors.Is(err, stations.ErrUnknownStation) {
		l.logger.Warn("no scale factor for station", "station", station)
		return nil
	}
	if err != nil {
		return fmt.Errorf("station scale lookup: %w", err)
	}

	for _, tr := range stream {
		signal.ScaleAndCenter(tr, scale)
	}
	return nil
}

// timeSeries builds per-sample epoch timestamps from the trace's actual
// start time.
func timeSeries(tr *model.Trace, unit model.TimeUnit) []int64 {
	times := make([]int64, tr.Count())
	for i := range times {
		ts := tr.TimeAt(i)
		if unit == model.Seconds {
			times[i] = ts.Unix()
		} else {
			times[i] = ts.UnixMilli()
		}
	}
	return times
}
