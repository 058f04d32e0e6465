package metadata

import "strings"

const defaultCategory = "General"

type categoryEntry struct {
	name     string
	keywords []string
}

// categoryTable pairs each category with its trigger keywords. Declaration
// order is significant: the first category with a matching keyword wins.
var categoryTable = []categoryEntry{
	{"Gaming", []string{"game", "gaming", "esports", "minecraft", "fortnite", "xbox", "playstation", "nintendo"}},
	{"Technology", []string{"tech", "ai", "robot", "gadget", "phone", "computer", "software", "programming"}},
	{"Beauty", []string{"makeup", "beauty", "skincare", "cosmetics", "fashion", "style", "hair"}},
	{"Cooking", []string{"recipe", "cooking", "food", "kitchen", "chef", "restaurant", "meal"}},
	{"Travel", []string{"travel", "trip", "vacation", "country", "city", "adventure", "explore"}},
	{"Education", []string{"learn", "tutorial", "guide", "how to", "education", "study", "course"}},
	{"Entertainment", []string{"funny", "comedy", "movie", "celebrity", "reaction", "meme"}},
	{"Music", []string{"music", "song", "artist", "album", "concert", "instrument", "cover"}},
	{"Fitness", []string{"workout", "fitness", "gym", "exercise", "health", "training", "muscle"}},
	{"Business", []string{"business", "entrepreneur", "money", "finance", "investing", "career"}},
	{"Diy", []string{"diy", "craft", "build", "make", "project", "home improvement"}},
	{"Automotive", []string{"car", "auto", "vehicle", "driving", "mechanic", "racing"}},
}

// DetectCategory classifies a topic by substring-matching the lower-cased
// topic against the fixed ordered keyword table. Topics matching nothing fall
// into the General category.
func DetectCategory(topic string) string {
	lower := strings.ToLower(topic)

	for _, entry := range categoryTable {
		for _, keyword := range entry.keywords {
			if strings.Contains(lower, keyword) {
				return entry.name
			}
		}
	}

	return defaultCategory
}
