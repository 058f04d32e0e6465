package metadata

import (
	"fmt"
	"math/rand/v2"
	"strconv"
	"strings"

	"github.com/yt-optimizer/internal/models"
)

const fallbackErrorMarker = "AI generation failed, using advanced intelligent fallback"

// optimalHours lists the candidate posting hours per category. Categories
// without an entry use defaultHours.
var optimalHours = map[string][]int{
	"Gaming":        {15, 16, 17, 20, 21, 22},
	"Technology":    {9, 10, 14, 15, 16},
	"Beauty":        {6, 7, 8, 19, 20, 21},
	"Cooking":       {11, 12, 17, 18, 19},
	"Travel":        {12, 13, 14, 19, 20},
	"Education":     {8, 9, 15, 16, 17},
	"Entertainment": {19, 20, 21},
	"Music":         {16, 17, 20, 21, 22},
	"Fitness":       {6, 7, 8, 17, 18, 19},
	"Business":      {8, 9, 13, 14, 15},
}

var defaultHours = []int{12, 13, 19, 20}

type scoreRange struct {
	min, max int
}

// viralScoreRanges holds the inclusive viral-probability range per category.
var viralScoreRanges = map[string]scoreRange{
	"Gaming":        {70, 90},
	"Technology":    {65, 85},
	"Beauty":        {75, 95},
	"Cooking":       {60, 80},
	"Travel":        {70, 90},
	"Education":     {55, 75},
	"Entertainment": {80, 95},
	"Music":         {65, 85},
	"Fitness":       {60, 80},
	"Business":      {50, 70},
}

var defaultScoreRange = scoreRange{60, 80}

type fallbackTemplate struct {
	title       string
	description string
	tags        string
}

// templateFor interpolates the raw topic into the per-category content
// template. Only Gaming, Technology, and Beauty have bespoke templates; every
// other category uses the default one.
func templateFor(category, topic string) fallbackTemplate {
	lower := strings.ToLower(topic)
	hashtag := strings.ReplaceAll(lower, " ", "")

	switch category {
	case "Gaming":
		return fallbackTemplate{
			title: fmt.Sprintf("INSANE %s Strategy - Pro Gamers Don't Want You to Know! 🔥", topic),
			description: fmt.Sprintf("🎮 Discover the ultimate %s techniques that will transform your gameplay! This comprehensive guide reveals secrets used by top players worldwide.\n\n"+
				"🔥 What you'll learn:\n• Advanced strategies and tactics\n• Pro tips and hidden mechanics\n• Common mistakes to avoid\n• Performance optimization tricks\n\n"+
				"💥 Don't forget to SMASH that LIKE button and SUBSCRIBE for more gaming content!\n\n"+
				"#gaming #%s #protips #strategy #viral", topic, hashtag),
			tags: fmt.Sprintf("%s, gaming, strategy, pro tips, guide, tutorial, gameplay, esports, viral", lower),
		}
	case "Technology":
		return fallbackTemplate{
			title: fmt.Sprintf("%s in 2024 - This Changes EVERYTHING! (Mind Blown) 💯", topic),
			description: fmt.Sprintf("🚀 The complete breakdown of %s with cutting-edge insights and future predictions!\n\n"+
				"✨ Key highlights:\n• Latest developments and trends\n• Expert analysis and reviews\n• Practical applications\n• Future predictions\n\n"+
				"🔔 SUBSCRIBE and hit the notification bell for more tech content!\n\n"+
				"#technology #%s #tech2024 #innovation #trending", topic, hashtag),
			tags: fmt.Sprintf("%s, technology, tech, 2024, innovation, review, analysis, trending, future", lower),
		}
	case "Beauty":
		return fallbackTemplate{
			title: fmt.Sprintf("Viral %s Transformation - Results Will SHOCK You! ✨", topic),
			description: fmt.Sprintf("💄 Amazing %s transformation that's breaking the internet!\n\n"+
				"🌟 What's included:\n• Step-by-step tutorial\n• Product recommendations\n• Professional tips and tricks\n• Before and after results\n\n"+
				"👍 LIKE if this helped you and SUBSCRIBE for more beauty content!\n\n"+
				"#beauty #%s #makeup #transformation #viral #glowup", topic, hashtag),
			tags: fmt.Sprintf("%s, beauty, makeup, transformation, tutorial, skincare, glowup, viral, trending", lower),
		}
	default:
		return fallbackTemplate{
			title: fmt.Sprintf("Amazing %s - You Need to See This! ⚡", topic),
			description: fmt.Sprintf("🔥 Everything you need to know about %s! Complete guide with expert insights and practical tips.\n\n"+
				"💡 Key points covered:\n• Comprehensive overview\n• Expert recommendations\n• Practical applications\n• Latest trends and updates\n\n"+
				"👆 LIKE and SUBSCRIBE for more amazing content!\n\n"+
				"#%s", topic, hashtag),
			tags: fmt.Sprintf("%s, guide, tips, trending, viral, amazing, complete, tutorial", lower),
		}
	}
}

func randIntRange(min, max int) int {
	return min + rand.IntN(max-min+1)
}

// FallbackContent builds a complete metadata response from fixed per-category
// tables without calling the model. It is pure computation over the tables
// and never fails, for any input string. The error marker and diagnostic
// details distinguish the payload from a model-produced one.
func FallbackContent(topic, errorDetails string) *models.VideoMetadata {
	category := DetectCategory(topic)

	hours, ok := optimalHours[category]
	if !ok {
		hours = defaultHours
	}
	recommendedHour := hours[rand.IntN(len(hours))]

	r, ok := viralScoreRanges[category]
	if !ok {
		r = defaultScoreRange
	}
	viralScore := randIntRange(r.min, r.max)

	tpl := templateFor(category, topic)

	return &models.VideoMetadata{
		Title:       clampRunes(tpl.title, maxTitleLen),
		Description: clampRunes(tpl.description, maxDescriptionLen),
		Tags:        clampRunes(tpl.tags, maxTagsLen),
		AIAnalysis: map[string]any{
			"primary_category":      category,
			"secondary_categories":  []string{category + " Tutorial", category + " Guide"},
			"category_confidence":   "85%",
			"cross_category_appeal": "7",
		},
		OptimalTiming: map[string]any{
			"best_posting_day":  "Wednesday",
			"optimal_time":      fmt.Sprintf("%d:00", recommendedHour),
			"timezone":          "EST",
			"posting_frequency": "2-3 times per week",
			"seasonal_factor":   "8/10",
		},
		PerformancePrediction: map[string]any{
			"viral_probability":      strconv.Itoa(viralScore),
			"expected_engagement":    "High",
			"algorithm_score":        strconv.Itoa(randIntRange(75, 90)),
			"monetization_potential": "Good",
		},
		ContentStrategy: map[string]any{
			"target_demographics":         category + " enthusiasts, 18-35 years old",
			"trending_integration":        "Current trends incorporated",
			"thumbnail_suggestion":        "Bold text overlay with " + category + " imagery",
			"series_potential":            "Perfect for " + category + " series",
			"collaboration_opportunities": category + " influencer partnerships",
		},
		OptimizationInsights: map[string]any{
			"keyword_strategy":       "Focus on " + strings.ToLower(category) + " + trending keywords",
			"engagement_tactics":     "Question hooks, call-to-actions, community posts",
			"algorithm_optimization": "Optimized for YouTube algorithm preferences",
			"growth_recommendations": "Consistent " + category + " content with viral elements",
		},
		Error:   fallbackErrorMarker,
		Details: errorDetails,
	}
}
