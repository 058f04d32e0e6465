package metadata

import (
	"context"
	"encoding/json"

	"github.com/sirupsen/logrus"
	"github.com/yt-optimizer/internal/ai"
	"github.com/yt-optimizer/internal/models"
)

// Service generates video metadata and keyword tags through a Generator,
// degrading to deterministic fallback content when the model path fails.
type Service struct {
	generator ai.Generator
}

// NewService creates a new metadata service backed by the given generator.
func NewService(generator ai.Generator) *Service {
	return &Service{generator: generator}
}

// modelPayload mirrors the JSON shape requested from the model. All nested
// blocks are optional; missing ones default to empty maps.
type modelPayload struct {
	Title                 string         `json:"title"`
	Description           string         `json:"description"`
	Tags                  string         `json:"tags"`
	AIAnalysis            map[string]any `json:"ai_analysis"`
	OptimalTiming         map[string]any `json:"optimal_timing"`
	PerformancePrediction map[string]any `json:"performance_prediction"`
	ContentStrategy       map[string]any `json:"content_strategy"`
	OptimizationInsights  map[string]any `json:"optimization_insights"`
}

// Generate builds the strategist prompt for the topic, invokes the model,
// and reshapes its JSON into a fully populated VideoMetadata. Any call or
// parse failure delegates entirely to FallbackContent; no partial results are
// merged between the two paths, and both return the identical shape.
func (s *Service) Generate(ctx context.Context, topic string) *models.VideoMetadata {
	raw, err := s.generator.GenerateText(ctx, buildMetadataPrompt(topic))
	if err != nil {
		logrus.WithError(err).WithField("topic", topic).Warn("Model call failed, using fallback content")
		return FallbackContent(topic, "Generation error: "+err.Error())
	}

	cleaned := CleanModelResponse(raw)

	var payload modelPayload
	if err := json.Unmarshal([]byte(cleaned), &payload); err != nil {
		logrus.WithError(err).WithField("topic", topic).Warn("Model response is not valid JSON, using fallback content")
		return FallbackContent(topic, "Generation error: "+err.Error())
	}

	return &models.VideoMetadata{
		Title:                 clampRunes(OptimizeTitle(payload.Title), maxTitleLen),
		Description:           clampRunes(OptimizeDescription(payload.Description), maxDescriptionLen),
		Tags:                  clampRunes(OptimizeTags(payload.Tags), maxTagsLen),
		AIAnalysis:            orEmpty(payload.AIAnalysis),
		OptimalTiming:         orEmpty(payload.OptimalTiming),
		PerformancePrediction: orEmpty(payload.PerformancePrediction),
		ContentStrategy:       orEmpty(payload.ContentStrategy),
		OptimizationInsights:  orEmpty(payload.OptimizationInsights),
	}
}

func orEmpty(m map[string]any) map[string]any {
	if m == nil {
		return map[string]any{}
	}
	return m
}
