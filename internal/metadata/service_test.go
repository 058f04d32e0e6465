package metadata

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubGenerator returns a canned response or error and records the prompts
// it received.
type stubGenerator struct {
	response string
	err      error
	prompts  []string
}

func (g *stubGenerator) GenerateText(_ context.Context, prompt string) (string, error) {
	g.prompts = append(g.prompts, prompt)
	if g.err != nil {
		return "", g.err
	}
	return g.response, nil
}

func TestGenerateSuccess(t *testing.T) {
	gen := &stubGenerator{
		response: "```json\n" + `{
			"title": "How to cook pasta",
			"description": "A complete pasta guide.",
			"tags": "pasta, Pasta, cooking",
			"ai_analysis": {"primary_category": "Cooking"}
		}` + "\n```",
	}
	svc := NewService(gen)

	result := svc.Generate(context.Background(), "pasta")
	require.NotNil(t, result)

	// Post-processing was applied to all three fields.
	assert.Equal(t, "How to cook pasta ⚡", result.Title)
	assert.True(t, strings.HasPrefix(result.Description, "🔥 "))
	assert.Contains(t, result.Description, "LIKE and SUBSCRIBE")
	assert.Equal(t, "pasta, cooking", result.Tags)

	// Present blocks pass through verbatim; missing ones default to empty.
	assert.Equal(t, "Cooking", result.AIAnalysis["primary_category"])
	assert.NotNil(t, result.OptimalTiming)
	assert.Empty(t, result.OptimalTiming)
	assert.NotNil(t, result.PerformancePrediction)
	assert.Empty(t, result.PerformancePrediction)

	// The success path carries no error marker.
	assert.Empty(t, result.Error)
	assert.Empty(t, result.Details)

	// The prompt embeds the topic.
	require.Len(t, gen.prompts, 1)
	assert.Contains(t, gen.prompts[0], `TOPIC TO ANALYZE: "pasta"`)
}

func TestGenerateModelErrorFallsBack(t *testing.T) {
	gen := &stubGenerator{err: errors.New("quota exceeded")}
	svc := NewService(gen)

	result := svc.Generate(context.Background(), "minecraft tips")
	require.NotNil(t, result)

	assert.Equal(t, fallbackErrorMarker, result.Error)
	assert.Contains(t, result.Details, "quota exceeded")
	assert.Equal(t, "Gaming", result.AIAnalysis["primary_category"])
}

func TestGenerateUnparsableResponseFallsBack(t *testing.T) {
	gen := &stubGenerator{response: "I'm sorry, I can't do that."}
	svc := NewService(gen)

	result := svc.Generate(context.Background(), "travel vlog")
	require.NotNil(t, result)

	assert.Equal(t, fallbackErrorMarker, result.Error)
	assert.Equal(t, "Travel", result.AIAnalysis["primary_category"])
}

func TestGenerateClampsLengths(t *testing.T) {
	gen := &stubGenerator{
		response: `{"title": "` + strings.Repeat("t", 150) + `", "description": "` + strings.Repeat("d", 6000) + `", "tags": "a"}`,
	}
	svc := NewService(gen)

	result := svc.Generate(context.Background(), "topic")

	assert.Len(t, []rune(result.Title), maxTitleLen)
	assert.LessOrEqual(t, len([]rune(result.Description)), maxDescriptionLen)
}

func TestGenerateEmptyFieldsStayEmpty(t *testing.T) {
	gen := &stubGenerator{response: `{}`}
	svc := NewService(gen)

	result := svc.Generate(context.Background(), "topic")

	assert.Empty(t, result.Title)
	assert.Empty(t, result.Description)
	assert.Empty(t, result.Tags)
	assert.NotNil(t, result.AIAnalysis)
	assert.Empty(t, result.Error)
}
