package usecase

import (
	"context"
	"sync"
	"time"

	"AstroPulse/internal/domain/models"
	domsvc "AstroPulse/internal/domain/service"
	applogger "AstroPulse/pkg/logger"
)

// WeatherService serves raw upstream telemetry. Every accessor degrades
// to an empty result on upstream failure: one dead feed must never fail
// a whole response.
type WeatherService struct {
	events     domsvc.EventProvider
	conditions domsvc.ConditionsProvider
	logger     *applogger.Logger
}

func NewWeatherService(events domsvc.EventProvider, conditions domsvc.ConditionsProvider, logger *applogger.Logger) *WeatherService {
	return &WeatherService{events: events, conditions: conditions, logger: logger}
}

func (s *WeatherService) SolarFlares(ctx context.Context, days int) []models.RawEvent {
	events, err := s.events.SolarFlares(ctx, days)
	if err != nil {
		s.logger.Warn("solar flares fetch degraded", applogger.Error(err))
		return []models.RawEvent{}
	}
	return events
}

func (s *WeatherService) CMEEvents(ctx context.Context, days int) []models.RawEvent {
	events, err := s.events.CMEEvents(ctx, days)
	if err != nil {
		s.logger.Warn("cme fetch degraded", applogger.Error(err))
		return []models.RawEvent{}
	}
	return events
}

func (s *WeatherService) GeomagneticStorms(ctx context.Context, days int) []models.RawEvent {
	events, err := s.events.GeomagneticStorms(ctx, days)
	if err != nil {
		s.logger.Warn("geomagnetic storms fetch degraded", applogger.Error(err))
		return []models.RawEvent{}
	}
	return events
}

func (s *WeatherService) RadiationBeltEvents(ctx context.Context, days int) []models.RawEvent {
	events, err := s.events.RadiationBeltEvents(ctx, days)
	if err != nil {
		s.logger.Warn("radiation belt fetch degraded", applogger.Error(err))
		return []models.RawEvent{}
	}
	return events
}

func (s *WeatherService) NearEarthObjects(ctx context.Context, days int) models.RawEvent {
	feed, err := s.events.NearEarthObjects(ctx, days)
	if err != nil {
		s.logger.Warn("neo feed fetch degraded", applogger.Error(err))
		return models.RawEvent{"near_earth_objects": map[string]interface{}{}}
	}
	return feed
}

func (s *WeatherService) SolarWind(ctx context.Context) models.Series {
	series, err := s.conditions.SolarWind(ctx)
	if err != nil {
		s.logger.Warn("solar wind fetch degraded", applogger.Error(err))
		return models.Series{}
	}
	return series
}

func (s *WeatherService) KpIndex(ctx context.Context) models.Series {
	series, err := s.conditions.KpIndex(ctx)
	if err != nil {
		s.logger.Warn("kp index fetch degraded", applogger.Error(err))
		return models.Series{}
	}
	return series
}

func (s *WeatherService) XRayFlux(ctx context.Context) models.Series {
	series, err := s.conditions.XRayFlux(ctx)
	if err != nil {
		s.logger.Warn("xray flux fetch degraded", applogger.Error(err))
		return models.Series{}
	}
	return series
}

func (s *WeatherService) ProtonFlux(ctx context.Context) models.Series {
	series, err := s.conditions.ProtonFlux(ctx)
	if err != nil {
		s.logger.Warn("proton flux fetch degraded", applogger.Error(err))
		return models.Series{}
	}
	return series
}

// CurrentConditions fans out the three real-time series concurrently and
// joins before assembling the snapshot.
func (s *WeatherService) CurrentConditions(ctx context.Context) models.CurrentConditions {
	var wind, kp, xray models.Series

	var wg sync.WaitGroup
	wg.Add(3)
	go func() { defer wg.Done(); wind = s.SolarWind(ctx) }()
	go func() { defer wg.Done(); kp = s.KpIndex(ctx) }()
	go func() { defer wg.Done(); xray = s.XRayFlux(ctx) }()
	wg.Wait()

	return models.CurrentConditions{
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		SolarWind: wind.Tail(10),
		KpIndex:   kp.Tail(10),
		XRayFlux:  xray.Tail(10),
	}
}
