package forecast

import (
	"context"
	"fmt"

	"AstroPulse/internal/domain/models"
	domsvc "AstroPulse/internal/domain/service"
)

// StaticEnhancer is the optional post-scoring step. Capability flags are
// probed once at startup; a prediction is complete before Enhance runs,
// so every path through it is safe to skip.
type StaticEnhancer struct {
	caps models.Capabilities
}

// NewEnhancer builds the enhancer from the configured capability flags.
// The heuristic scorer is always on; the transformer and local-LLM hooks
// only annotate when explicitly enabled.
func NewEnhancer(transformers, ollama bool) *StaticEnhancer {
	return &StaticEnhancer{
		caps: models.Capabilities{
			AdvancedML:   true,
			Transformers: transformers,
			Ollama:       ollama,
		},
	}
}

// Enhance appends advisory insight lines when an optional capability is
// enabled. It never alters scores or tiers.
func (e *StaticEnhancer) Enhance(_ context.Context, p *models.FlarePrediction) {
	if p == nil || !e.caps.Transformers {
		return
	}
	p.Insights = append(p.Insights,
		fmt.Sprintf("Pattern context: current activity is consistent with a %s risk outlook", p.RiskLevel))
}

// Capabilities reports the startup-probed feature flags.
func (e *StaticEnhancer) Capabilities() models.Capabilities {
	return e.caps
}

var _ domsvc.Enhancer = (*StaticEnhancer)(nil)
