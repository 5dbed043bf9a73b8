package stations

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ibrewster/waveform-fetch/internal/config"
)

// DBStore serves station scale factors from a PostgreSQL table.
type DBStore struct {
	pool *pgxpool.Pool
}

// BuildConnString builds a PostgreSQL connection string from config.
func BuildConnString(cfg config.DBConfig) string {
	// URL-encode password to handle special characters
	escapedPassword := url.QueryEscape(cfg.Password)

	sslMode := cfg.SSLMode
	if sslMode == "" {
		sslMode = "prefer"
	}

	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		cfg.User,
		escapedPassword,
		cfg.Host,
		cfg.Port,
		cfg.Name,
		sslMode,
	)
}

// NewDBStore connects to the station metadata database.
func NewDBStore(ctx context.Context, cfg config.DBConfig) (*DBStore, error) {
	poolCfg, err := pgxpool.ParseConfig(BuildConnString(cfg))
	if err != nil {
		return nil, fmt.Errorf("parse connection string: %w", err)
	}

	poolCfg.MinConns = int32(cfg.MinConns)
	poolCfg.MaxConns = int32(cfg.MaxConns)

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("create pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return &DBStore{pool: pool}, nil
}

// Scale implements Store.
func (s *DBStore) Scale(ctx context.Context, station string) (float64, error) {
	var scale float64
	err := s.pool.QueryRow(ctx,
		"SELECT scale FROM station_scales WHERE station = $1", station,
	).Scan(&scale)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, fmt.Errorf("%w: %s", ErrUnknownStation, station)
	}
	if err != nil {
		return 0, fmt.Errorf("query station scale: %w", err)
	}
	return scale, nil
}

// Close releases the connection pool.
func (s *DBStore) Close() {
	s.pool.Close()
}
