package service

import (
	"context"

	"AstroPulse/internal/domain/models"
)

// EventProvider is the DONKI-style discrete event feed.
type EventProvider interface {
	SolarFlares(ctx context.Context, days int) ([]models.RawEvent, error)
	CMEEvents(ctx context.Context, days int) ([]models.RawEvent, error)
	GeomagneticStorms(ctx context.Context, days int) ([]models.RawEvent, error)
	RadiationBeltEvents(ctx context.Context, days int) ([]models.RawEvent, error)
	NearEarthObjects(ctx context.Context, days int) (models.RawEvent, error)
}

// ConditionsProvider is the SWPC-style real-time telemetry feed. Every
// series is returned with the upstream header row already stripped.
type ConditionsProvider interface {
	SolarWind(ctx context.Context) (models.Series, error)
	KpIndex(ctx context.Context) (models.Series, error)
	XRayFlux(ctx context.Context) (models.Series, error)
	ProtonFlux(ctx context.Context) (models.Series, error)
}

// Enhancer is the optional post-scoring step (transformer/LLM hooks).
// Implementations must be safe to skip: a prediction is complete before
// Enhance runs.
type Enhancer interface {
	Enhance(ctx context.Context, p *models.FlarePrediction)
	Capabilities() models.Capabilities
}
