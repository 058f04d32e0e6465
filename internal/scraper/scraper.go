package scraper

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/sirupsen/logrus"
	"github.com/yt-optimizer/internal/models"
)

const (
	defaultBaseURL = "https://www.youtube.com"
	userAgent      = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"
)

// videoIDPatterns cover watch and short-link URLs, shorts URLs, and embed
// URLs. Order matters: the first matching pattern wins.
var videoIDPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?:youtube\.com/\S*[?&]v=|youtu\.be/)([^&\n?#]*)`),
	regexp.MustCompile(`youtube\.com/shorts/([^?&#]*)`),
	regexp.MustCompile(`youtube\.com/embed/([^?&#]*)`),
}

// Scraper recovers a video's keyword tags from its public watch page. The
// page markup is an unversioned external contract, so all parsing stays
// behind this type and callers never depend on its shape.
type Scraper struct {
	client  *http.Client
	baseURL string
}

// New creates a Scraper using the given HTTP client, or a default client
// when nil.
func New(client *http.Client) *Scraper {
	if client == nil {
		client = &http.Client{}
	}
	return &Scraper{
		client:  client,
		baseURL: defaultBaseURL,
	}
}

// ExtractVideoID pulls the video identifier out of a YouTube URL. The second
// return value is false when no pattern matches.
func ExtractVideoID(videoURL string) (string, bool) {
	for _, pattern := range videoIDPatterns {
		if m := pattern.FindStringSubmatch(videoURL); m != nil {
			return m[1], true
		}
	}
	return "", false
}

// videoRendererFragment is the embedded player JSON carrying the keyword
// list.
type videoRendererFragment struct {
	VideoRenderer struct {
		Keywords []string `json:"keywords"`
	} `json:"videoRenderer"`
}

// ExtractTags fetches the watch page for videoURL and recovers its tags,
// first from inline player scripts and then from the keywords meta tag.
// Every failure is returned as a structured result, never as an error.
func (s *Scraper) ExtractTags(ctx context.Context, videoURL string) models.TagExtraction {
	videoID, ok := ExtractVideoID(videoURL)
	if !ok {
		return models.TagExtraction{Success: false, Message: "Invalid YouTube URL"}
	}

	watchURL := fmt.Sprintf("%s/watch?v=%s", s.baseURL, videoID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, watchURL, nil)
	if err != nil {
		return models.TagExtraction{Success: false, Message: "Error extracting tags: " + err.Error()}
	}

	// YouTube serves a stripped-down page without a desktop user agent.
	req.Header.Set("User-Agent", userAgent)

	resp, err := s.client.Do(req)
	if err != nil {
		return models.TagExtraction{Success: false, Message: "Error extracting tags: " + err.Error()}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return models.TagExtraction{Success: false, Message: fmt.Sprintf("Failed to fetch video page: %d", resp.StatusCode)}
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return models.TagExtraction{Success: false, Message: "Error extracting tags: " + err.Error()}
	}

	if tags := tagsFromScripts(doc); len(tags) > 0 {
		return models.TagExtraction{Success: true, Tags: tags}
	}

	if tags := tagsFromMeta(doc); len(tags) > 0 {
		return models.TagExtraction{Success: true, Tags: tags}
	}

	return models.TagExtraction{Success: false, Message: "No tags found in video metadata"}
}

// tagsFromScripts scans inline scripts in document order for an embedded
// videoRenderer fragment carrying a non-empty keyword list. The first such
// script wins; unparsable fragments are skipped.
func tagsFromScripts(doc *goquery.Document) []string {
	var tags []string

	doc.Find("script").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		content := sel.Text()
		if !strings.Contains(content, `"keywords":[`) {
			return true
		}

		start := strings.Index(content, `{"videoRenderer":`)
		if start == -1 {
			return true
		}
		end := strings.Index(content[start:], "}</script>")
		if end == -1 {
			return true
		}

		fragment := content[start : start+end+1]
		var parsed videoRendererFragment
		if err := json.Unmarshal([]byte(fragment), &parsed); err != nil {
			logrus.WithError(err).Debug("Failed to parse videoRenderer fragment")
			return true
		}

		if len(parsed.VideoRenderer.Keywords) > 0 {
			tags = parsed.VideoRenderer.Keywords
			return false
		}
		return true
	})

	return tags
}

// tagsFromMeta reads the page's keywords meta tag and splits it on commas.
func tagsFromMeta(doc *goquery.Document) []string {
	content, exists := doc.Find(`meta[name="keywords"]`).Attr("content")
	if !exists || content == "" {
		return nil
	}

	parts := strings.Split(content, ",")
	tags := make([]string, 0, len(parts))
	for _, part := range parts {
		tags = append(tags, strings.TrimSpace(part))
	}
	return tags
}
