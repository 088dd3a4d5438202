// ABOUTME: Ranking service fans out over every registry source and merges the results
// ABOUTME: Scores, filters and sorts help-seeking items into a short ranked list

package ranking

import (
	"cmp"
	"context"
	"slices"
	"time"

	"freelance-radar-api/core/domain"
	"freelance-radar-api/core/interfaces"
	"freelance-radar-api/core/scoring"

	"golang.org/x/sync/errgroup"
)

const (
	// MaxResults is the length bound of a ranked list
	MaxResults = 5

	// MaxAge excludes items published before now minus MaxAge
	MaxAge = 90 * 24 * time.Hour

	// MaxConcurrency bounds the number of sources fetched at once
	MaxConcurrency = 10
)

// Progress steps reported by RankWithProgress
const (
	StepFetching = "Récupération des flux"
	StepRanking  = "Classement des publications"
	StepDone     = "Recherche terminée"
)

// Collector turns one source into its feed items; failures yield no items
type Collector interface {
	Collect(ctx context.Context, src domain.Source, targetLocation string) []domain.FeedItem
}

// SourceLister provides the sources to search
type SourceLister interface {
	Sources() []domain.Source
}

// Config tunes the ranking; zero values select the package defaults
type Config struct {
	MaxResults     int
	MaxAge         time.Duration
	MaxConcurrency int
}

func (c Config) withDefaults() Config {
	if c.MaxResults <= 0 {
		c.MaxResults = MaxResults
	}
	if c.MaxAge <= 0 {
		c.MaxAge = MaxAge
	}
	if c.MaxConcurrency <= 0 {
		c.MaxConcurrency = MaxConcurrency
	}
	return c
}

// Service ranks feed items across all sources
type Service struct {
	deps      interfaces.Dependencies
	sources   SourceLister
	collector Collector
	cfg       Config
}

// NewService creates a new ranking service
func NewService(deps interfaces.Dependencies, sources SourceLister, collector Collector, cfg Config) *Service {
	return &Service{
		deps:      deps,
		sources:   sources,
		collector: collector,
		cfg:       cfg.withDefaults(),
	}
}

// Rank returns at most MaxResults help-seeking items relevant to keyword and
// location, best first. It never fails: unavailable sources contribute nothing
// and an empty, non-nil slice means nothing relevant was found.
func (s *Service) Rank(ctx context.Context, keyword, location string) []domain.FeedItem {
	return s.RankWithProgress(ctx, keyword, location, nil)
}

// RankWithProgress is Rank with milestones reported to sink
func (s *Service) RankWithProgress(ctx context.Context, keyword, location string, sink domain.ProgressSink) []domain.FeedItem {
	logger := s.deps.Log()
	srcs := s.sources.Sources()

	sink.Report(StepFetching, 0)

	// one slot per source; goroutines never share a slot
	collected := make([][]domain.FeedItem, len(srcs))

	var g errgroup.Group
	g.SetLimit(s.cfg.MaxConcurrency)
	for i, src := range srcs {
		g.Go(func() error {
			collected[i] = s.collector.Collect(ctx, src, location)
			return nil
		})
	}
	_ = g.Wait()

	sink.Report(StepRanking, 60)

	now := s.deps.Now()
	ranked := s.filter(collected, keyword, location, now)
	sortByRelevance(ranked)

	total := len(ranked)
	if len(ranked) > s.cfg.MaxResults {
		ranked = ranked[:s.cfg.MaxResults]
	}

	logger.Info("Ranking completed", map[string]interface{}{
		"keyword":   keyword,
		"location":  location,
		"sources":   len(srcs),
		"qualified": total,
		"returned":  len(ranked),
	})

	sink.Report(StepDone, 100)
	return ranked
}

// filter scores every item in registry order and keeps the recent
// help-seeking ones with a positive score
func (s *Service) filter(collected [][]domain.FeedItem, keyword, location string, now time.Time) []domain.FeedItem {
	cutoff := now.Add(-s.cfg.MaxAge)

	kept := make([]domain.FeedItem, 0)
	for _, items := range collected {
		for _, item := range items {
			score := scoring.Score(item, keyword, location, now)
			if score <= 0 || !item.IsQuestion || !item.PublishedAt.After(cutoff) {
				continue
			}
			kept = append(kept, item.WithScore(score))
		}
	}
	return kept
}

// SortKey is the composite ordering key: the score plus a tiny publication
// time term that favors newer items among equal scores
func SortKey(item domain.FeedItem) float64 {
	return item.Score() + float64(item.PublishedAt.Unix())/1e9
}

// sortByRelevance orders items by descending SortKey. The sort is stable so
// equal keys keep registry order.
func sortByRelevance(items []domain.FeedItem) {
	slices.SortStableFunc(items, func(a, b domain.FeedItem) int {
		return cmp.Compare(SortKey(b), SortKey(a))
	})
}
