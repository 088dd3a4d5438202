package handlers

import (
	"context"
	"time"

	"freelance-radar-api/core/domain"
)

type mockRanker struct {
	items    []domain.FeedItem
	keyword  string
	location string
	calls    int
}

func (m *mockRanker) Rank(ctx context.Context, keyword, location string) []domain.FeedItem {
	return m.RankWithProgress(ctx, keyword, location, nil)
}

func (m *mockRanker) RankWithProgress(ctx context.Context, keyword, location string, sink domain.ProgressSink) []domain.FeedItem {
	m.calls++
	m.keyword = keyword
	m.location = location
	sink.Report("Récupération des flux", 0)
	sink.Report("Recherche terminée", 100)
	return m.items
}

type mockAnalyzer struct {
	analyzeFunc    func(ctx context.Context, keyword, location string, items []domain.FeedItem, sink domain.ProgressSink) (*domain.Analysis, error)
	suggestFunc    func(ctx context.Context, input string) ([]string, error)
	regenerateFunc func(ctx context.Context, title, content, location string) (string, error)
}

func (m *mockAnalyzer) Analyze(ctx context.Context, keyword, location string, items []domain.FeedItem, sink domain.ProgressSink) (*domain.Analysis, error) {
	if m.analyzeFunc != nil {
		return m.analyzeFunc(ctx, keyword, location, items, sink)
	}
	return &domain.Analysis{}, nil
}

func (m *mockAnalyzer) Suggest(ctx context.Context, input string) ([]string, error) {
	if m.suggestFunc != nil {
		return m.suggestFunc(ctx, input)
	}
	return nil, nil
}

func (m *mockAnalyzer) Regenerate(ctx context.Context, title, content, location string) (string, error) {
	if m.regenerateFunc != nil {
		return m.regenerateFunc(ctx, title, content, location)
	}
	return "", nil
}

type staticSources []domain.Source

func (s staticSources) Sources() []domain.Source {
	return s
}

func testItem(title string, score float64) domain.FeedItem {
	return domain.FeedItem{
		Title:          title,
		Link:           "https://example.fr/" + title,
		CleanedContent: "Comment trouver des clients ?...",
		PublishedAt:    time.Date(2024, 6, 3, 10, 0, 0, 0, time.UTC),
		FormattedAge:   "il y a 2 jours",
		SourceName:     "Journal du Net",
		IsQuestion:     true,
		Region:         domain.RegionFrance,
	}.WithScore(score)
}

func testSources() staticSources {
	return staticSources{
		{URL: "https://www.journaldunet.com/rss/", DisplayName: "Journal du Net", Weight: 0.8, Type: domain.SourceTypeRSS, Region: domain.RegionFrance},
		{URL: "https://www.maddyness.com/feed/", DisplayName: "Maddyness", Weight: 0.7, Type: domain.SourceTypeRSS, Region: domain.RegionFrance},
	}
}
