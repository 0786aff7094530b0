package di

import (
	"fmt"

	"AstroPulse/internal/domain/service"
	"AstroPulse/internal/handler/api"
	icache "AstroPulse/internal/service/cache"
	"AstroPulse/internal/service/donki"
	"AstroPulse/internal/service/metrics"
	"AstroPulse/internal/service/swpc"
	"AstroPulse/internal/services/forecast"
	"AstroPulse/internal/usecase"
	"AstroPulse/pkg/config"
	xhttp "AstroPulse/pkg/http"
	applogger "AstroPulse/pkg/logger"
	"AstroPulse/pkg/server"
)

// ProvideLogger creates the application logger.
func ProvideLogger(cfg *config.Config) (*applogger.Logger, error) {
	l, err := applogger.New(&applogger.Config{
		Level:  cfg.Logger.Level,
		Format: cfg.Logger.Format,
		Output: cfg.Logger.Output,
	})
	if err != nil {
		return nil, fmt.Errorf("logger: %w", err)
	}
	return l, nil
}

// ProvideCache creates the shared upstream byte cache. A negative
// cache.ttl turns caching off; zero falls back to the 60s default.
func ProvideCache(cfg *config.Config) icache.BytesCache {
	if cfg.Cache.TTL < 0 {
		return icache.Nop{}
	}
	return icache.NewTTLCache()
}

// ProvideEventProvider creates the NASA DONKI client.
func ProvideEventProvider(cfg *config.Config, cache icache.BytesCache) service.EventProvider {
	metrics.Register()
	return donki.New(cfg.Donki.APIKey, cfg.Donki.BaseURL, cfg.Donki.Timeout, cache, cfg.Cache.TTL)
}

// ProvideConditionsProvider creates the NOAA SWPC client.
func ProvideConditionsProvider(cfg *config.Config, cache icache.BytesCache) service.ConditionsProvider {
	metrics.Register()
	return swpc.New(cfg.SWPC.BaseURL, cfg.SWPC.Timeout, cache, cfg.Cache.TTL)
}

// ProvideEnhancer creates the optional post-scoring enhancer.
func ProvideEnhancer(cfg *config.Config) service.Enhancer {
	return forecast.NewEnhancer(cfg.Enhancer.Transformers, cfg.Enhancer.Ollama)
}

// ProvideWeatherService creates the telemetry usecase.
func ProvideWeatherService(events service.EventProvider, conditions service.ConditionsProvider, logger *applogger.Logger) *usecase.WeatherService {
	return usecase.NewWeatherService(events, conditions, logger)
}

// ProvideForecaster creates the scoring usecase with both predictors.
func ProvideForecaster(weather *usecase.WeatherService, enhancer service.Enhancer, logger *applogger.Logger) *usecase.Forecaster {
	return usecase.NewForecaster(weather, forecast.NewFlarePredictor(), forecast.NewRadiationPredictor(), enhancer, logger)
}

// ProvideAlertService creates the alert synthesis usecase.
func ProvideAlertService(weather *usecase.WeatherService, logger *applogger.Logger) *usecase.AlertService {
	return usecase.NewAlertService(weather, logger)
}

// ProvideChatService creates the assistant usecase.
func ProvideChatService(events service.EventProvider, conditions service.ConditionsProvider, logger *applogger.Logger) *usecase.ChatService {
	return usecase.NewChatService(events, conditions, logger)
}

// ProvideHandlers assembles the full route set.
func ProvideHandlers(
	logger *applogger.Logger,
	weather *usecase.WeatherService,
	forecaster *usecase.Forecaster,
	alerts *usecase.AlertService,
	chat *usecase.ChatService,
) []xhttp.Handler {
	return []xhttp.Handler{
		api.NewRootHandler(),
		api.NewWeatherHandler(logger, weather),
		api.NewPredictionsHandler(logger, forecaster),
		api.NewAlertsHandler(logger, alerts),
		api.NewChatHandler(logger, chat),
	}
}

// ProvideApp creates the application server.
func ProvideApp(cfg *config.Config, logger *applogger.Logger, handlers []xhttp.Handler) *server.App {
	return server.New(cfg, logger, handlers)
}
