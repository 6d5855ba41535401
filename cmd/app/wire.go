//go:build wireinject
// +build wireinject

package main

import (
	"github.com/google/wire"

	"github.com/vedicastro/panchanga-api/internal/bootstrap"
	"github.com/vedicastro/panchanga-api/internal/domain/kundli"
	"github.com/vedicastro/panchanga-api/internal/domain/panchanga"
	"github.com/vedicastro/panchanga-api/internal/infra/config"
	httpiface "github.com/vedicastro/panchanga-api/internal/interface/http"
	"github.com/vedicastro/panchanga-api/pkg/logger"
)

func initializeApp() (*bootstrap.App, error) {
	wire.Build(
		config.Load,
		logger.New,
		providePanchangaConfig,
		provideKundliConfig,
		provideEphemeris,
		provideEphemerisAdapter,
		provideCollector,
		panchanga.NewService,
		kundli.NewService,
		httpiface.NewHandler,
		httpiface.NewRouter,
		bootstrap.NewApp,
	)
	return nil, nil
}
