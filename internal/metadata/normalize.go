package metadata

import "strings"

// CleanModelResponse strips markdown code fences from a model reply and
// slices out the first balanced-looking JSON object, so JSON embedded in
// explanatory prose still parses. The result is returned unparsed; parsing
// is the caller's responsibility.
func CleanModelResponse(text string) string {
	if strings.HasPrefix(text, "```json") {
		text = text[7:]
	}
	if strings.HasPrefix(text, "```") {
		text = text[3:]
	}
	if strings.HasSuffix(text, "```") {
		text = text[:len(text)-3]
	}

	text = strings.TrimSpace(text)

	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start != -1 && end != -1 && end >= start {
		text = text[start : end+1]
	}

	return strings.TrimSpace(text)
}
