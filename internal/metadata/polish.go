package metadata

import "strings"

const (
	maxTitleLen       = 100
	maxDescriptionLen = 5000
	maxTagsLen        = 500
)

var (
	titleEmphasis    = []string{"!", "?", "🔥", "💯", "😱", "⚡"}
	shockWords       = []string{"SHOCKING", "INSANE", "UNBELIEVABLE"}
	superlativeWords = []string{"TOP", "BEST", "ULTIMATE"}
	revealWords      = []string{"SECRET", "HIDDEN", "EXPOSED"}

	descriptionCTAs  = []string{"SUBSCRIBE", "LIKE", "COMMENT"}
	descriptionEmoji = []string{"👍", "🔔", "💬", "🔥", "✨"}
)

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

// OptimizeTitle appends one emphasis emoji to short titles that carry no
// emphasis of their own. Marker words are checked in priority order and the
// first matching rule wins.
func OptimizeTitle(title string) string {
	if title == "" {
		return title
	}

	if len([]rune(title)) < 90 && !containsAny(title, titleEmphasis) {
		upper := strings.ToUpper(title)
		switch {
		case containsAny(upper, shockWords):
			title += " 😱"
		case containsAny(upper, superlativeWords):
			title += " 💯"
		case containsAny(upper, revealWords):
			title += " 🔥"
		default:
			title += " ⚡"
		}
	}

	return strings.TrimSpace(title)
}

// OptimizeDescription appends a call-to-action line when none is present and
// prepends a fire marker when the description has no emoji. The two checks
// run independently.
func OptimizeDescription(description string) string {
	if description == "" {
		return description
	}

	if !containsAny(strings.ToUpper(description), descriptionCTAs) {
		description += "\n\n👍 Don't forget to LIKE and SUBSCRIBE for more amazing content!"
	}

	if !containsAny(description, descriptionEmoji) {
		description = "🔥 " + description
	}

	return strings.TrimSpace(description)
}

// OptimizeTags splits a comma-joined tag string, trims each entry, drops
// empties, and removes case-insensitive duplicates keeping the first-seen
// casing and order.
func OptimizeTags(tags string) string {
	if tags == "" {
		return tags
	}

	seen := make(map[string]bool)
	var unique []string
	for _, tag := range strings.Split(tags, ",") {
		tag = strings.TrimSpace(tag)
		if tag == "" {
			continue
		}
		key := strings.ToLower(tag)
		if seen[key] {
			continue
		}
		seen[key] = true
		unique = append(unique, tag)
	}

	return strings.Join(unique, ", ")
}

// clampRunes truncates s to at most max characters.
func clampRunes(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
