// ABOUTME: Response DTOs for search, source and analysis API endpoints
// ABOUTME: Field names follow the JSON shape consumed by the radar front end

package responses

import "time"

// FeedItemResponse represents a ranked feed item in API responses
type FeedItemResponse struct {
	Title          string    `json:"title" doc:"Item title"`
	Link           string    `json:"link" doc:"Link to the original post"`
	Content        string    `json:"content" doc:"Plain-text preview, at most 300 characters plus an ellipsis"`
	Creator        string    `json:"creator,omitempty" doc:"Author of the post"`
	PubDate        time.Time `json:"pubDate" doc:"Publication date"`
	FormattedDate  string    `json:"formattedDate" doc:"Relative age in French"`
	Source         string    `json:"source" doc:"Display name of the source"`
	IsQuestion     bool      `json:"isQuestion" doc:"Whether the post asks for help"`
	Location       string    `json:"location" doc:"Region of the source"`
	RelevanceScore float64   `json:"relevanceScore" doc:"Relevance score used for ranking"`
}

// SearchResponse is the ranked result of a search
type SearchResponse struct {
	Keyword  string             `json:"keyword" doc:"Searched keyword"`
	Location string             `json:"location" doc:"Searched location"`
	Count    int                `json:"count" doc:"Number of items returned"`
	Items    []FeedItemResponse `json:"items" doc:"Ranked items, best first"`
}

// SourceResponse describes one registry source
type SourceResponse struct {
	Name   string  `json:"name" doc:"Display name"`
	URL    string  `json:"url" doc:"Feed URL"`
	Type   string  `json:"type" doc:"Feed dialect, rss or atom"`
	Region string  `json:"region" doc:"Region tag"`
	Weight float64 `json:"weight" doc:"Reserved weight in (0,1]"`
}

// SourcesResponse lists the registry
type SourcesResponse struct {
	Count   int              `json:"count" doc:"Number of sources"`
	Sources []SourceResponse `json:"sources" doc:"Sources in registry order"`
}

// ProgressResponse is one reported milestone
type ProgressResponse struct {
	Step     string `json:"step" doc:"Milestone label"`
	Progress int    `json:"progress" doc:"Completion percentage"`
}

// AnalyzedPostResponse pairs a question with a suggested reply
type AnalyzedPostResponse struct {
	Title             string `json:"title"`
	URL               string `json:"url"`
	Content           string `json:"content"`
	Date              string `json:"date"`
	SuggestedResponse string `json:"suggestedResponse"`
}

// CostResponse is the token usage of an analysis
type CostResponse struct {
	Tokens int     `json:"tokens" doc:"Tokens used"`
	Cost   float64 `json:"cost" doc:"Estimated cost in dollars"`
}

// AnalyzeResponse is the ranking plus its analysis
type AnalyzeResponse struct {
	Keyword           string                 `json:"keyword"`
	Location          string                 `json:"location"`
	Items             []FeedItemResponse     `json:"items" doc:"Ranked items that were analysed"`
	TargetDescription string                 `json:"targetDescription" doc:"Profile of the freelances behind the questions"`
	PainPoints        []string               `json:"painPoints" doc:"Pain points identified"`
	RecentPosts       []AnalyzedPostResponse `json:"recentPosts" doc:"Questions with suggested replies"`
	Cost              CostResponse           `json:"cost"`
	Progress          []ProgressResponse     `json:"progress,omitempty" doc:"Milestones reported while processing"`
}

// SuggestionsResponse lists related search terms
type SuggestionsResponse struct {
	Suggestions []string `json:"suggestions"`
}

// RegenerateResponse is a newly drafted reply
type RegenerateResponse struct {
	Response string `json:"response"`
}

// HealthResponse reports service status
type HealthResponse struct {
	Status   string `json:"status" doc:"ok when the service is up"`
	Sources  int    `json:"sources" doc:"Number of configured sources"`
	Analysis bool   `json:"analysis" doc:"Whether analysis endpoints are available"`
	Lexicon  string `json:"lexicon" doc:"Version of the question lexicon"`
}
