//go:build wireinject
// +build wireinject

package main

import (
	"github.com/google/wire"

	"github.com/Rushabh16-9/travel-planner/internal/bootstrap"
	"github.com/Rushabh16-9/travel-planner/internal/domain/advisory"
	"github.com/Rushabh16-9/travel-planner/internal/domain/trip"
	"github.com/Rushabh16-9/travel-planner/internal/infra/config"
	httpiface "github.com/Rushabh16-9/travel-planner/internal/interface/http"
	"github.com/Rushabh16-9/travel-planner/pkg/logger"
)

func initializeApp() (*bootstrap.App, error) {
	wire.Build(
		config.Load,
		logger.New,
		provideTripConfig,
		provideAdvisoryConfig,
		provideGeocoder,
		provideWeatherClient,
		providePOIClient,
		provideImageClient,
		provideChain,
		provideTripStore,
		provideAdvisoryChat,
		trip.NewService,
		advisory.NewService,
		httpiface.NewHandler,
		httpiface.NewRouter,
		bootstrap.NewApp,
	)
	return nil, nil
}
