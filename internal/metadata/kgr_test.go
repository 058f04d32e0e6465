package metadata

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateKGRTags(t *testing.T) {
	tests := []struct {
		name     string
		response string
		want     []string
	}{
		{
			name:     "bare json array",
			response: `["tag1","tag2"]`,
			want:     []string{"tag1", "tag2"},
		},
		{
			name:     "array wrapped in prose",
			response: `Here are the tags: ["tag1","tag2"] enjoy!`,
			want:     []string{"tag1", "tag2"},
		},
		{
			name:     "array spanning lines",
			response: "Sure:\n[\n  \"tag1\",\n  \"tag2\"\n]\nDone.",
			want:     []string{"tag1", "tag2"},
		},
		{
			name:     "no array at all",
			response: "I cannot produce tags for that.",
			want:     []string{},
		},
		{
			name:     "bracket span is not valid json",
			response: `Broken: [tag1, tag2] sorry`,
			want:     []string{},
		},
		{
			name:     "empty array",
			response: `[]`,
			want:     []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewService(&stubGenerator{response: tt.response})
			got := svc.GenerateKGRTags(context.Background(), "topic")
			require.NotNil(t, got)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGenerateKGRTagsModelError(t *testing.T) {
	svc := NewService(&stubGenerator{err: errors.New("unavailable")})
	got := svc.GenerateKGRTags(context.Background(), "topic")
	require.NotNil(t, got)
	assert.Empty(t, got)
}

func TestGenerateKGRTagsPrompt(t *testing.T) {
	gen := &stubGenerator{response: `[]`}
	svc := NewService(gen)
	svc.GenerateKGRTags(context.Background(), "mechanical keyboards")

	require.Len(t, gen.prompts, 1)
	assert.Contains(t, gen.prompts[0], "KGR (Keyword Golden Ratio)")
	assert.Contains(t, gen.prompts[0], "Topic: mechanical keyboards")
}
