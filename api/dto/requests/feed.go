// ABOUTME: Request DTOs for search and analysis API endpoints
// ABOUTME: Provides validation and normalization for incoming requests

package requests

import "strings"

// AnalyzeRequest asks for a ranking followed by a model analysis
type AnalyzeRequest struct {
	// Keyword is the freelance activity searched for
	Keyword string `json:"keyword" minLength:"1" maxLength:"200" doc:"Activity or expertise to search for, e.g. 'développeur web'"`

	// Location optionally narrows sources to a region
	Location string `json:"location,omitempty" maxLength:"100" doc:"Optional location, e.g. 'Paris'"`
}

// Normalize trims surrounding whitespace
func (r *AnalyzeRequest) Normalize() {
	r.Keyword = strings.TrimSpace(r.Keyword)
	r.Location = strings.TrimSpace(r.Location)
}

// SuggestionsRequest asks for related search terms
type SuggestionsRequest struct {
	Input string `json:"input" maxLength:"200" doc:"Partial search term"`
}

// RegenerateRequest asks for a new reply to one question
type RegenerateRequest struct {
	Title    string `json:"title" minLength:"1" maxLength:"500" doc:"Question title"`
	Content  string `json:"content" maxLength:"5000" doc:"Question content"`
	Location string `json:"location,omitempty" maxLength:"100" doc:"Optional location of the author"`
}

// Normalize trims surrounding whitespace
func (r *RegenerateRequest) Normalize() {
	r.Title = strings.TrimSpace(r.Title)
	r.Content = strings.TrimSpace(r.Content)
	r.Location = strings.TrimSpace(r.Location)
}
