package usecase

import (
	"context"
	"fmt"
	"strings"

	"AstroPulse/internal/domain/models"
	domsvc "AstroPulse/internal/domain/service"
	"AstroPulse/internal/services/forecast"
	applogger "AstroPulse/pkg/logger"
)

// ChatService answers space weather questions with a keyword router over
// live telemetry. Unlike the forecast paths, an upstream failure here
// propagates to the caller so the client sees an explicit error instead
// of a silently stale answer.
type ChatService struct {
	events     domsvc.EventProvider
	conditions domsvc.ConditionsProvider
	logger     *applogger.Logger
}

func NewChatService(events domsvc.EventProvider, conditions domsvc.ConditionsProvider, logger *applogger.Logger) *ChatService {
	return &ChatService{events: events, conditions: conditions, logger: logger}
}

// Reply routes the message by keyword and builds an answer from the
// matching feed. History is accepted for API compatibility but the
// router is stateless.
func (s *ChatService) Reply(ctx context.Context, req models.ChatRequest) (models.ChatResponse, error) {
	message := strings.ToLower(req.Message)

	switch {
	case containsAny(message, "current", "now", "today", "latest", "real-time"):
		return s.currentConditions(ctx)
	case containsAny(message, "solar flare", "flare", "x-ray"):
		return s.solarFlares(ctx)
	case containsAny(message, "cme", "coronal mass ejection", "ejection"):
		return s.cmeActivity(ctx)
	case containsAny(message, "asteroid", "neo", "near earth object"):
		return s.nearEarthObjects(ctx)
	case containsAny(message, "radiation", "proton", "particle"):
		return s.radiation(ctx)
	case containsAny(message, "satellite", "spacecraft", "threat"):
		return satelliteThreats(), nil
	default:
		return overview(), nil
	}
}

func (s *ChatService) currentConditions(ctx context.Context) (models.ChatResponse, error) {
	wind, err := s.conditions.SolarWind(ctx)
	if err != nil {
		return models.ChatResponse{}, err
	}
	kp, err := s.conditions.KpIndex(ctx)
	if err != nil {
		return models.ChatResponse{}, err
	}

	var b strings.Builder
	b.WriteString("**Current Space Weather Conditions:**\n\n")
	if len(wind) > 0 {
		latest := wind[len(wind)-1]
		b.WriteString(fmt.Sprintf("**Solar Wind:** data recorded at %s\n", orNA(latest.StringAt(0))))
	}
	if len(kp) > 0 {
		latest := kp[len(kp)-1]
		b.WriteString(fmt.Sprintf("**Kp Index:** %s (geomagnetic activity)\n", orNA(latest.StringAt(1))))
	}
	b.WriteString("\nConditions are being monitored in real-time.")

	return models.ChatResponse{
		Response: b.String(),
		Sources:  []string{"NOAA Space Weather Prediction Center"},
	}, nil
}

func (s *ChatService) solarFlares(ctx context.Context) (models.ChatResponse, error) {
	flares, err := s.events.SolarFlares(ctx, 7)
	if err != nil {
		return models.ChatResponse{}, err
	}

	var response string
	if len(flares) > 0 {
		recent := flares[len(flares)-1]
		classType := recent.String("classType")
		if classType == "" {
			classType = "Unknown"
		}
		response = "**Recent Solar Flare Activity:**\n\n" +
			fmt.Sprintf("Most recent: **%s** class flare\n", classType) +
			fmt.Sprintf("Peak time: %s\n", orNA(recent.String("peakTime"))) +
			fmt.Sprintf("Total flares in last 7 days: %d\n\n", len(flares)) +
			"Solar flares are classified as A, B, C, M, or X, with X being the most intense. " +
			"They can affect GPS, communications, and power grids on Earth."
	} else {
		response = "No significant solar flare activity detected in the past 7 days. " +
			"The sun is relatively quiet at the moment."
	}

	return models.ChatResponse{Response: response, Sources: []string{"NASA DONKI"}}, nil
}

func (s *ChatService) cmeActivity(ctx context.Context) (models.ChatResponse, error) {
	cmes, err := s.events.CMEEvents(ctx, 7)
	if err != nil {
		return models.ChatResponse{}, err
	}

	var response string
	if len(cmes) > 0 {
		recent := cmes[len(cmes)-1]
		response = "**Recent CME Activity:**\n\n" +
			"Most recent CME detected\n" +
			fmt.Sprintf("Speed: %s km/s\n", forecast.FloatText(recent.Float("speed"))) +
			fmt.Sprintf("Start time: %s\n", orNA(recent.String("startTime"))) +
			fmt.Sprintf("Total CMEs in last 7 days: %d\n\n", len(cmes)) +
			"Coronal Mass Ejections are large expulsions of plasma and magnetic field from the Sun. " +
			"They can cause geomagnetic storms when directed at Earth."
	} else {
		response = "No Coronal Mass Ejections detected in the past 7 days."
	}

	return models.ChatResponse{Response: response, Sources: []string{"NASA DONKI"}}, nil
}

func (s *ChatService) nearEarthObjects(ctx context.Context) (models.ChatResponse, error) {
	feed, err := s.events.NearEarthObjects(ctx, 7)
	if err != nil {
		return models.ChatResponse{}, err
	}

	count := int(feed.Float("element_count"))
	response := "**Near Earth Objects (Asteroids):**\n\n" +
		fmt.Sprintf("**%d** near-Earth objects detected in the past week\n\n", count)
	if count > 0 {
		response += "Most NEOs pass by Earth at safe distances. NASA tracks all objects that could " +
			"potentially pose a threat. None of the currently tracked objects present an immediate danger."
	}

	return models.ChatResponse{Response: response, Sources: []string{"NASA NEO API"}}, nil
}

func (s *ChatService) radiation(ctx context.Context) (models.ChatResponse, error) {
	events, err := s.events.RadiationBeltEvents(ctx, 7)
	if err != nil {
		return models.ChatResponse{}, err
	}

	response := "**Space Radiation Status:**\n\n"
	if len(events) > 0 {
		response += fmt.Sprintf("%d radiation belt enhancement event(s) detected in the past week\n\n", len(events)) +
			"Radiation belt enhancements can pose risks to satellites and astronauts. " +
			"These events are closely monitored for space operations."
	} else {
		response += "No significant radiation belt enhancements detected in the past week. " +
			"Radiation levels are within normal ranges."
	}

	return models.ChatResponse{Response: response, Sources: []string{"NASA DONKI"}}, nil
}

func satelliteThreats() models.ChatResponse {
	response := "**Satellite Threats from Space Weather:**\n\n" +
		"Space weather can affect satellites through:\n\n" +
		"1. **Solar Flares:** can damage electronics and solar panels\n" +
		"2. **Geomagnetic Storms:** affect satellite orbits and operations\n" +
		"3. **Radiation Events:** pose risks to satellite components\n\n" +
		"Operators receive alerts to take protective measures when severe space weather is expected."

	return models.ChatResponse{Response: response, Sources: []string{"General Space Weather Knowledge"}}
}

func overview() models.ChatResponse {
	response := "**Space Weather Overview:**\n\n" +
		"I can help you understand space weather conditions and phenomena:\n\n" +
		"**Solar Flares** - intense bursts of radiation\n" +
		"**CME** - Coronal Mass Ejections\n" +
		"**Geomagnetic Storms** - disturbances in Earth's magnetic field\n" +
		"**Radiation Events** - energetic particle increases\n" +
		"**Asteroids** - near-Earth objects\n\n" +
		"Ask me about current conditions, recent events, or specific phenomena!"

	return models.ChatResponse{Response: response, Sources: []string{}}
}

func containsAny(message string, keywords ...string) bool {
	for _, keyword := range keywords {
		if strings.Contains(message, keyword) {
			return true
		}
	}
	return false
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
