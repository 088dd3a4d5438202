// ABOUTME: FeedItem domain model represents one classified, scored feed entry
// ABOUTME: Entry carries the raw per-entry fields extracted by the document parser

package domain

import "time"

// Entry is a normalized feed entry as extracted from an RSS or Atom document.
// Missing fields are empty strings.
type Entry struct {
	Title     string
	Link      string
	Body      string
	Creator   string
	Published string

	// PublishedParsed is set when the parser could already decode Published
	PublishedParsed *time.Time
}

// FeedItem is an entry after cleaning and classification. It is immutable once
// built, apart from RelevanceScore which the ranker fills in.
type FeedItem struct {
	// Title is the entry headline with markup removed
	Title string `json:"title"`

	// Link is the URL of the original post
	Link string `json:"link"`

	// RawContent is the body exactly as found in the feed
	RawContent string `json:"-"`

	// CleanedContent is the plain-text preview, at most 300 characters plus "..."
	CleanedContent string `json:"content"`

	// Author is the entry creator, empty when the feed omits it
	Author string `json:"creator,omitempty"`

	// PublishedAt is when the entry was published
	PublishedAt time.Time `json:"pubDate"`

	// FormattedAge is a human relative age such as "il y a 2 jours"
	FormattedAge string `json:"formattedDate"`

	// SourceName is the display name of the source the item came from
	SourceName string `json:"source"`

	// IsQuestion reports whether the entry looks like a request for help
	IsQuestion bool `json:"isQuestion"`

	// Region is the region tag of the source
	Region string `json:"location"`

	// RelevanceScore is set by the ranker; nil before scoring
	RelevanceScore *float64 `json:"relevanceScore,omitempty"`
}

// Score returns the relevance score, or 0 when the item has not been scored
func (fi *FeedItem) Score() float64 {
	if fi.RelevanceScore == nil {
		return 0
	}
	return *fi.RelevanceScore
}

// WithScore returns a copy of the item carrying the given relevance score
func (fi FeedItem) WithScore(score float64) FeedItem {
	fi.RelevanceScore = &score
	return fi
}

// IsValid checks if the feed item has the fields needed downstream
func (fi *FeedItem) IsValid() bool {
	if fi.Title == "" && fi.CleanedContent == "" {
		return false
	}

	if fi.PublishedAt.IsZero() {
		return false
	}

	return true
}
