// ABOUTME: Service interfaces for the core business logic
// ABOUTME: Defines the contracts the API layer consumes

package interfaces

import (
	"context"

	"freelance-radar-api/core/domain"
)

// Ranker produces the ranked list of help-seeking feed items for a search
type Ranker interface {
	Rank(ctx context.Context, keyword, location string) []domain.FeedItem
	RankWithProgress(ctx context.Context, keyword, location string, sink domain.ProgressSink) []domain.FeedItem
}

// Analyzer turns ranked items into profile analysis and suggested replies
type Analyzer interface {
	Analyze(ctx context.Context, keyword, location string, items []domain.FeedItem, sink domain.ProgressSink) (*domain.Analysis, error)
	Suggest(ctx context.Context, input string) ([]string, error)
	Regenerate(ctx context.Context, title, content, location string) (string, error)
}
