//go:build wireinject
// +build wireinject

package di

import (
	"AstroPulse/pkg/config"
	"AstroPulse/pkg/server"

	"github.com/google/wire"
)

// InitializeApp wires up all dependencies and returns the application.
// Wire will generate the implementation of this function.
func InitializeApp(cfg *config.Config) (*server.App, error) {
	wire.Build(
		ProvideLogger,
		ProvideCache,

		// Upstream clients
		ProvideEventProvider,
		ProvideConditionsProvider,
		ProvideEnhancer,

		// Use cases
		ProvideWeatherService,
		ProvideForecaster,
		ProvideAlertService,
		ProvideChatService,

		// HTTP layer
		ProvideHandlers,
		ProvideApp,
	)
	return &server.App{}, nil
}
