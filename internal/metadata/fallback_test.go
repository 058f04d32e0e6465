package metadata

import (
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFallbackContentNeverFails(t *testing.T) {
	topics := []string{
		"",
		"   ",
		"!!!@@@###",
		"normal topic",
		strings.Repeat("very long topic ", 50),
	}

	for _, topic := range topics {
		t.Run(strconv.Quote(topic[:min(len(topic), 20)]), func(t *testing.T) {
			result := FallbackContent(topic, "boom")
			require.NotNil(t, result)

			assert.NotEmpty(t, result.Title)
			assert.NotEmpty(t, result.Description)
			assert.NotEmpty(t, result.Tags)
			assert.NotEmpty(t, result.AIAnalysis)
			assert.NotEmpty(t, result.OptimalTiming)
			assert.NotEmpty(t, result.PerformancePrediction)
			assert.NotEmpty(t, result.ContentStrategy)
			assert.NotEmpty(t, result.OptimizationInsights)
			assert.Equal(t, "boom", result.Details)
			assert.Equal(t, fallbackErrorMarker, result.Error)

			assert.LessOrEqual(t, len([]rune(result.Title)), maxTitleLen)
			assert.LessOrEqual(t, len([]rune(result.Description)), maxDescriptionLen)
			assert.LessOrEqual(t, len([]rune(result.Tags)), maxTagsLen)
		})
	}
}

func TestFallbackContentCategoryValues(t *testing.T) {
	result := FallbackContent("minecraft tips", "err")

	assert.Equal(t, "Gaming", result.AIAnalysis["primary_category"])
	assert.Equal(t, "Wednesday", result.OptimalTiming["best_posting_day"])
	assert.Equal(t, "EST", result.OptimalTiming["timezone"])

	// The sampled hour comes from the Gaming candidate list.
	optimalTime, ok := result.OptimalTiming["optimal_time"].(string)
	require.True(t, ok)
	hour, err := strconv.Atoi(strings.TrimSuffix(optimalTime, ":00"))
	require.NoError(t, err)
	assert.Contains(t, []int{15, 16, 17, 20, 21, 22}, hour)

	// The viral probability comes from the Gaming inclusive range.
	viral, ok := result.PerformancePrediction["viral_probability"].(string)
	require.True(t, ok)
	score, err := strconv.Atoi(viral)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, score, 70)
	assert.LessOrEqual(t, score, 90)
}

func TestFallbackContentDefaultCategory(t *testing.T) {
	result := FallbackContent("zzqqxx", "err")

	assert.Equal(t, "General", result.AIAnalysis["primary_category"])
	assert.Contains(t, result.Title, "Amazing zzqqxx")

	optimalTime := result.OptimalTiming["optimal_time"].(string)
	hour, err := strconv.Atoi(strings.TrimSuffix(optimalTime, ":00"))
	require.NoError(t, err)
	assert.Contains(t, defaultHours, hour)

	score, err := strconv.Atoi(result.PerformancePrediction["viral_probability"].(string))
	require.NoError(t, err)
	assert.GreaterOrEqual(t, score, defaultScoreRange.min)
	assert.LessOrEqual(t, score, defaultScoreRange.max)
}

func TestFallbackContentBespokeTemplates(t *testing.T) {
	gaming := FallbackContent("fortnite builds", "err")
	assert.Contains(t, gaming.Title, "INSANE fortnite builds Strategy")
	assert.Contains(t, gaming.Description, "#fortnitebuilds")
	assert.True(t, strings.HasPrefix(gaming.Tags, "fortnite builds, gaming"))

	tech := FallbackContent("AI gadgets", "err")
	assert.Contains(t, tech.Title, "AI gadgets in 2024")

	beauty := FallbackContent("makeup look", "err")
	assert.Contains(t, beauty.Title, "Viral makeup look Transformation")
}
