package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ibrewster/waveform-fetch/internal/config"
	"github.com/ibrewster/waveform-fetch/internal/loader"
	"github.com/ibrewster/waveform-fetch/internal/model"
	"github.com/ibrewster/waveform-fetch/internal/stations"
	"github.com/ibrewster/waveform-fetch/internal/version"
	"github.com/ibrewster/waveform-fetch/internal/winston"
)

func main() {
	configPath := flag.String("config", "configs/fetcher.yaml", "path to config file")
	network := flag.String("network", "", "network code (e.g. AV)")
	station := flag.String("station", "", "station code")
	location := flag.String("location", "", "location code")
	channel := flag.String("channel", "", "channel code (e.g. EHZ)")
	start := flag.String("start", "", "window start (RFC3339), default: duration before now")
	duration := flag.Duration("duration", time.Minute, "window length")
	verbose := flag.Bool("v", false, "enable debug logging")
	showVersion := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Println(version.String())
		return
	}

	// Set up structured logging on stderr, keeping stdout for data.
	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	if *station == "" || *channel == "" {
		logger.Error("both -station and -channel are required")
		os.Exit(1)
	}

	startTime := time.Now().UTC().Add(-*duration)
	if *start != "" {
		var err error
		startTime, err = time.Parse(time.RFC3339, *start)
		if err != nil {
			logger.Error("invalid -start time", "error", err)
			os.Exit(1)
		}
	}
	endTime := startTime.Add(*duration)

	cfg, err := config.LoadAndValidate(*configPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger.Info("starting fetcher",
		"version", version.Version,
		"server", cfg.Server.Host,
		"station", *station,
		"channel", *channel,
		"start", startTime,
		"end", endTime,
	)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	store, cleanup, err := newStore(ctx, cfg, logger)
	if err != nil {
		logger.Error("failed to open station store", "error", err)
		os.Exit(1)
	}
	defer cleanup()

	client := winston.NewClient(
		fmt.Sprintf("http://%s:%d", cfg.Server.Host, cfg.Server.Port),
		winston.WithTimeout(cfg.Server.Timeout),
		winston.WithRetries(cfg.Server.MaxRetries, cfg.Server.RetryBackoff),
		winston.WithLogger(logger),
	)

	l := loader.New(cfg, client, store, logger)

	stream, times, err := l.Load(ctx, loader.Request{
		Network:  *network,
		Station:  *station,
		Location: *location,
		Channel:  *channel,
		Start:    startTime,
		End:      endTime,
	})
	if err != nil {
		logger.Error("load failed", "error", err)
		os.Exit(1)
	}
	if stream == nil {
		logger.Warn("no data available",
			"station", *station,
			"channel", *channel,
			"start", startTime,
			"end", endTime,
		)
		return
	}

	if err := writeResult(os.Stdout, stream, times); err != nil {
		logger.Error("failed to write result", "error", err)
		os.Exit(1)
	}
}

// newStore opens the configured station metadata backend.
func newStore(ctx context.Context, cfg *config.Config, logger *slog.Logger) (stations.Store, func(), error) {
	if cfg.Database.Enabled() {
		logger.Info("using database station store",
			"host", cfg.Database.Host,
			"database", cfg.Database.Name,
		)
		db, err := stations.NewDBStore(ctx, cfg.Database)
		if err != nil {
			return nil, nil, err
		}
		return db, db.Close, nil
	}

	logger.Info("using file station store", "path", cfg.Stations.Path)
	fs, err := stations.NewFileStore(cfg.Stations.Path)
	if err != nil {
		return nil, nil, err
	}
	return fs, func() {}, nil
}

// resultTrace is the JSON shape of one output trace. Missing samples are
// encoded as null, since JSON has no NaN.
type resultTrace struct {
	Network    string     `json:"network,omitempty"`
	Station    string     `json:"station"`
	Location   string     `json:"location,omitempty"`
	Channel    string     `json:"channel"`
	Start      time.Time  `json:"start"`
	SampleRate float64    `json:"sample_rate"`
	Samples    []*float64 `json:"samples"`
}

func writeResult(w io.Writer, stream model.Stream, times []int64) error {
	out := struct {
		Traces []resultTrace `json:"traces"`
		Times  []int64       `json:"times"`
	}{
		Times: times,
	}

	for _, tr := range stream {
		rt := resultTrace{
			Network:    tr.Network,
			Station:    tr.Station,
			Location:   tr.Location,
			Channel:    tr.Channel,
			Start:      tr.Start,
			SampleRate: tr.SampleRate,
			Samples:    make([]*float64, len(tr.Data)),
		}
		for i := range tr.Data {
			if !math.IsNaN(tr.Data[i]) {
				v := tr.Data[i]
				rt.Samples[i] = &v
			}
		}
		out.Traces = append(out.Traces, rt)
	}

	enc := json.NewEncoder(w)
	return enc.Encode(out)
}
