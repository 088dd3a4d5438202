// ABOUTME: Relevance Scorer rates a feed item against a search keyword and location
// ABOUTME: Pure function of its inputs; the current time is passed in explicitly

package scoring

import (
	"strings"
	"time"

	"freelance-radar-api/core/domain"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	// TermMatchWeight is added per occurrence of a search term
	TermMatchWeight = 2.0

	// TitleMatchBonus is added when the whole keyword appears in the title
	TitleMatchBonus = 10.0

	// QuestionBonus is added for items classified as questions
	QuestionBonus = 15.0

	// RegionMultiplier applies to French items when a location is requested
	RegionMultiplier = 2.0

	// FreshMultiplier applies to items at most FreshWindow old
	FreshMultiplier = 2.0

	// StalePenalty applies to items older than DecayWindow
	StalePenalty = 0.1
)

const (
	// FreshWindow is the age up to which items get the freshness boost
	FreshWindow = 7 * 24 * time.Hour

	// DecayWindow is the age at which the linear decay reaches zero
	DecayWindow = 30 * 24 * time.Hour
)

const day = 24 * time.Hour

// Score computes the relevance of item for keyword and location at time now.
// The result is never negative.
func Score(item domain.FeedItem, keyword, location string, now time.Time) float64 {
	lower := cases.Lower(language.French)
	text := lower.String(item.Title + " " + item.CleanedContent)

	score := 0.0
	for _, term := range strings.Fields(lower.String(keyword)) {
		score += float64(strings.Count(text, term)) * TermMatchWeight
	}

	if kw := strings.TrimSpace(lower.String(keyword)); kw != "" && strings.Contains(lower.String(item.Title), kw) {
		score += TitleMatchBonus
	}

	if item.IsQuestion {
		score += QuestionBonus
	}

	if strings.TrimSpace(location) != "" && strings.EqualFold(strings.TrimSpace(item.Region), domain.RegionFrance) {
		score *= RegionMultiplier
	}

	return score * RecencyMultiplier(now.Sub(item.PublishedAt))
}

// RecencyMultiplier maps an item age to its score multiplier: doubled up to a
// week, linear decay to zero between a week and a month, 0.1 beyond that.
func RecencyMultiplier(age time.Duration) float64 {
	daysOld := float64(age) / float64(day)

	switch {
	case age <= FreshWindow:
		return FreshMultiplier
	case age <= DecayWindow:
		return (30 - daysOld) / 30
	default:
		return StalePenalty
	}
}
