package main

import (
	"github.com/vedicastro/panchanga-api/internal/domain/kundli"
	"github.com/vedicastro/panchanga-api/internal/domain/panchanga"
	"github.com/vedicastro/panchanga-api/internal/infra/config"
	"github.com/vedicastro/panchanga-api/internal/infra/ephemeris"
	"github.com/vedicastro/panchanga-api/pkg/metrics"
)

func providePanchangaConfig(cfg *config.Config) panchanga.Config {
	return panchanga.Config{
		DefaultTimezone:  cfg.Defaults.Timezone,
		DefaultLatitude:  cfg.Defaults.Latitude,
		DefaultLongitude: cfg.Defaults.Longitude,
	}
}

func provideKundliConfig(cfg *config.Config) kundli.Config {
	return kundli.Config{
		DefaultTimezone: cfg.Defaults.Timezone,
	}
}

func provideEphemeris(cfg *config.Config) (*ephemeris.Engine, error) {
	return ephemeris.New(ephemeris.Config{
		DataDir:  cfg.Ephemeris.DataDir,
		Ayanamsa: cfg.Ephemeris.Ayanamsa,
	})
}

func provideEphemerisAdapter(engine *ephemeris.Engine, collector *metrics.Collector) panchanga.Ephemeris {
	return ephemeris.NewInstrumented(engine, collector)
}

func provideCollector(cfg *config.Config) *metrics.Collector {
	return metrics.NewCollector(cfg.Metrics.Namespace)
}
