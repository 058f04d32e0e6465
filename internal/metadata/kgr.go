package metadata

import (
	"context"
	"encoding/json"
	"regexp"

	"github.com/sirupsen/logrus"
)

// kgrArrayPattern recovers the first bracketed span from a reply that wraps
// the array in prose.
var kgrArrayPattern = regexp.MustCompile(`(?s)(\[.*?\])`)

// GenerateKGRTags asks the model for high-value keyword tags and parses a
// JSON array from the reply, falling back to bracket-span extraction when the
// reply isn't a bare array. Parse diagnostics are logged, never surfaced: the
// result degrades to an empty list. This path is independent of the
// rule-based metadata fallback.
func (s *Service) GenerateKGRTags(ctx context.Context, topic string) []string {
	raw, err := s.generator.GenerateText(ctx, buildKGRPrompt(topic))
	if err != nil {
		logrus.WithError(err).WithField("topic", topic).Warn("KGR model call failed")
		return []string{}
	}

	var keywords []string
	if err := json.Unmarshal([]byte(raw), &keywords); err == nil {
		if keywords == nil {
			return []string{}
		}
		return keywords
	}

	match := kgrArrayPattern.FindStringSubmatch(raw)
	if match == nil {
		logrus.WithField("response", raw).Warn("No JSON array found in KGR response")
		return []string{}
	}

	if err := json.Unmarshal([]byte(match[1]), &keywords); err != nil {
		logrus.WithError(err).Warn("Failed to parse KGR JSON from bracket match")
		return []string{}
	}
	if keywords == nil {
		return []string{}
	}

	return keywords
}
