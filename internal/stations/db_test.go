package stations

import "github.com/ibrewster/waveform-fetch/internal/config"

func dbTestConfig() config.DBConfig {
	return config.DBConfig{
		Host:     "db.example.org",
		Port:     5432,
		Name:     "stations",
		User:     "fetcher",
		Password: "p@ss",
		SSLMode:  "require",
		MaxConns: 10,
		MinConns: 2,
	}
}
