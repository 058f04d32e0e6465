package models

// VideoMetadata is the unified response shape for generated video metadata.
// Every field is always present in the JSON output: nested blocks that the
// model omits default to an empty map and missing strings to "" before
// length clamping. The Error and Details fields are only populated by the
// fallback path and are the sole way to tell the two paths apart.
type VideoMetadata struct {
	Title                 string         `json:"title"`
	Description           string         `json:"description"`
	Tags                  string         `json:"tags"`
	AIAnalysis            map[string]any `json:"ai_analysis"`
	OptimalTiming         map[string]any `json:"optimal_timing"`
	PerformancePrediction map[string]any `json:"performance_prediction"`
	ContentStrategy       map[string]any `json:"content_strategy"`
	OptimizationInsights  map[string]any `json:"optimization_insights"`
	Error                 string         `json:"error,omitempty"`
	Details               string         `json:"details,omitempty"`
}

// TagExtraction is the structured result of a watch-page scrape. Scrape
// failures are reported through this value inside a 200 response rather than
// as handler errors.
type TagExtraction struct {
	Success bool     `json:"success"`
	Tags    []string `json:"tags,omitempty"`
	Message string   `json:"message,omitempty"`
}
