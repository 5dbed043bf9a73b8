package signal

import (
	"math"
	"sort"

	"github.com/ibrewster/waveform-fetch/internal/model"
)

// Merge combines overlapping and gapped segments of the same (station,
// channel) into single contiguous traces. Gaps are filled by repeating the
// latest preceding sample; overlapping samples are taken from the later
// segment. Segments whose sample rate disagrees with the first segment of
// their channel are left unmerged and appended after the merged traces.
func Merge(stream model.Stream) model.Stream {
	if len(stream) < 2 {
		return stream
	}

	var order []model.ChannelKey
	groups := make(map[model.ChannelKey][]*model.Trace)
	for _, tr := range stream {
		key := tr.Key()
		if _, seen := groups[key]; !seen {
			order = append(order, key)
		}
		groups[key] = append(groups[key], tr)
	}

	var merged model.Stream
	var leftover model.Stream
	for _, key := range order {
		segs := groups[key]
		rate := segs[0].SampleRate

		var same []*model.Trace
		for _, seg := range segs {
			if seg.SampleRate == rate {
				same = append(same, seg)
			} else {
				leftover = append(leftover, seg)
			}
		}

		merged = append(merged, mergeSegments(same))
	}

	return append(merged, leftover...)
}

// mergeSegments combines same-rate segments into one trace.
func mergeSegments(segs []*model.Trace) *model.Trace {
	if len(segs) == 1 {
		return segs[0]
	}

	sort.SliceStable(segs, func(i, j int) bool {
		return segs[i].Start.Before(segs[j].Start)
	})

	out := &model.Trace{
		Network:    segs[0].Network,
		Station:    segs[0].Station,
		Location:   segs[0].Location,
		Channel:    segs[0].Channel,
		Start:      segs[0].Start,
		SampleRate: segs[0].SampleRate,
		Data:       append([]float64(nil), segs[0].Data...),
	}
	delta := out.Delta().Seconds()

	for _, seg := range segs[1:] {
		if len(seg.Data) == 0 {
			continue
		}
		offset := int(math.Round(seg.Start.Sub(out.Start).Seconds() / delta))
		if offset < 0 {
			offset = 0
		}

		// Fill any gap with the latest preceding value.
		if offset > len(out.Data) {
			fill := 0.0
			if len(out.Data) > 0 {
				fill = out.Data[len(out.Data)-1]
			}
			for len(out.Data) < offset {
				out.Data = append(out.Data, fill)
			}
		}

		// Later samples win on overlap.
		for i, v := range seg.Data {
			idx := offset + i
			if idx < len(out.Data) {
				out.Data[idx] = v
			} else {
				out.Data = append(out.Data, v)
			}
		}
	}

	return out
}
