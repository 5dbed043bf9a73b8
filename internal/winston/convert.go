package winston

import (
	"time"

	"github.com/ibrewster/waveform-fetch/internal/model"
)

// toAvailability converts a gateway availability record to the model type.
func toAvailability(a APIAvailability) model.Availability {
	return model.Availability{
		Network:  a.Network,
		Station:  a.Station,
		Location: a.Location,
		Channel:  a.Channel,
		From:     time.UnixMilli(a.FromMS).UTC(),
		To:       time.UnixMilli(a.ToMS).UTC(),
	}
}

// toTrace converts a gateway trace segment to the model type.
func toTrace(t APITrace) *model.Trace {
	return &model.Trace{
		Network:    t.Network,
		Station:    t.Station,
		Location:   t.Location,
		Channel:    t.Channel,
		Start:      time.UnixMilli(t.StartMS).UTC(),
		SampleRate: t.SampleRate,
		Data:       t.Samples,
	}
}
