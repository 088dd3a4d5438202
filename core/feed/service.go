// ABOUTME: Feed service turns one source into classified feed items
// ABOUTME: Runs fetch, parse, sanitize, classify and item assembly for a single source

package feed

import (
	"context"
	"errors"
	"strings"
	"time"

	"freelance-radar-api/core/classify"
	"freelance-radar-api/core/content"
	"freelance-radar-api/core/domain"
	coreerrors "freelance-radar-api/core/errors"
	"freelance-radar-api/core/interfaces"
	"freelance-radar-api/core/lexicon"
	timeutil "freelance-radar-api/pkg/utils/time"
)

// Config holds the feed service settings
type Config struct {
	Fetcher FetcherConfig

	// Lexicon drives location matching and question detection; nil selects the default
	Lexicon *lexicon.Lexicon
}

// FeedService collects the items of one source
type FeedService struct {
	deps       interfaces.Dependencies
	fetcher    *Fetcher
	parser     *Parser
	classifier *classify.Classifier
}

// NewFeedService creates a new feed service instance
func NewFeedService(deps interfaces.Dependencies, cfg Config) *FeedService {
	lex := cfg.Lexicon
	if lex == nil {
		lex = lexicon.Default()
	}

	return &FeedService{
		deps:       deps,
		fetcher:    NewFetcher(deps, lex, cfg.Fetcher),
		parser:     NewParser(),
		classifier: classify.NewClassifier(lex),
	}
}

// Collect fetches and parses a source and returns its items, in document order.
// Every failure is logged and degrades to fewer or no items.
func (s *FeedService) Collect(ctx context.Context, src domain.Source, targetLocation string) []domain.FeedItem {
	logger := s.deps.Log()

	var items []domain.FeedItem
	for _, doc := range s.fetcher.Fetch(ctx, src, targetLocation) {
		entries, err := s.parser.Parse(doc.Body)
		if err != nil {
			var parseErr *coreerrors.ParseError
			if errors.As(err, &parseErr) {
				parseErr.Source = src.DisplayName
			}
			logger.Warn("Failed to parse feed", map[string]interface{}{
				"source": src.DisplayName,
				"error":  err.Error(),
			})
			continue
		}

		now := s.deps.Now()
		for _, entry := range entries {
			item, ok := s.BuildItem(src, entry, now)
			if !ok {
				logger.Debug("Dropping entry without a date or text", map[string]interface{}{
					"source":    src.DisplayName,
					"title":     entry.Title,
					"published": entry.Published,
				})
				continue
			}
			items = append(items, item)
		}
	}

	logger.Debug("Source collected", map[string]interface{}{
		"source": src.DisplayName,
		"items":  len(items),
	})

	return items
}

// BuildItem assembles a FeedItem from a parsed entry. It reports false when the
// entry has no usable publication date or no text at all.
func (s *FeedService) BuildItem(src domain.Source, entry domain.Entry, now time.Time) (domain.FeedItem, bool) {
	title := content.CleanTitle(entry.Title)
	cleaned := content.Sanitize(entry.Body)

	item := domain.FeedItem{
		Title:          title,
		Link:           strings.TrimSpace(entry.Link),
		RawContent:     entry.Body,
		CleanedContent: cleaned,
		Author:         strings.TrimSpace(entry.Creator),
		PublishedAt:    publishedAt(entry),
		SourceName:     src.DisplayName,
		Region:         src.Region,
	}
	if !item.IsValid() {
		return domain.FeedItem{}, false
	}

	// classification sees the full text, the item only keeps the preview
	item.IsQuestion = s.classifier.IsQuestion(title, cleaned)
	item.CleanedContent = content.Preview(cleaned)
	item.FormattedAge = timeutil.FrenchAge(item.PublishedAt, now)

	return item, true
}

// publishedAt prefers the parser's decoded date, then flexible parsing
func publishedAt(entry domain.Entry) time.Time {
	if entry.PublishedParsed != nil && !entry.PublishedParsed.IsZero() {
		return entry.PublishedParsed.UTC()
	}
	if t := timeutil.ParseFlexibleTime(entry.Published); !t.IsZero() {
		return t.UTC()
	}
	return time.Time{}
}
