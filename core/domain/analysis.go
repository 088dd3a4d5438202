// ABOUTME: Analysis domain models returned by the LLM collaborator
// ABOUTME: Mirrors the JSON shape the model is asked to produce

package domain

// Analysis is the structured result of analysing a ranked set of questions
type Analysis struct {
	// TargetDescription summarizes the freelance profile behind the questions
	TargetDescription string `json:"targetDescription"`

	// PainPoints lists the underlying problems identified
	PainPoints []string `json:"painPoints"`

	// RecentPosts pairs each analysed question with a ready-to-use reply
	RecentPosts []AnalyzedPost `json:"recentPosts"`

	// Cost is the token usage estimate of the call
	Cost CostEstimate `json:"cost"`
}

// AnalyzedPost is one question with its suggested response
type AnalyzedPost struct {
	Title             string `json:"title"`
	URL               string `json:"url"`
	Content           string `json:"content"`
	Date              string `json:"date"`
	SuggestedResponse string `json:"suggestedResponse"`
}

// CostEstimate is the token count and dollar cost of a model call
type CostEstimate struct {
	Tokens int     `json:"tokens"`
	Cost   float64 `json:"cost"`
}
