// ABOUTME: Feed Fetcher retrieves one raw feed document per source
// ABOUTME: Location pre-filter skips the network entirely; failures become empty results

package feed

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/url"
	"time"

	"freelance-radar-api/core/domain"
	coreerrors "freelance-radar-api/core/errors"
	"freelance-radar-api/core/interfaces"
	"freelance-radar-api/core/lexicon"
)

// DefaultMaxBodyBytes caps the size of a feed document
const DefaultMaxBodyBytes = 5 << 20

// Document is a raw feed document retrieved from a source
type Document struct {
	Source    domain.Source
	Body      []byte
	FetchedAt time.Time
}

// FetcherConfig controls how documents are retrieved
type FetcherConfig struct {
	// RelayURL, when set, prefixes the escaped feed URL (a CORS relay such as
	// "https://api.allorigins.win/raw?url=")
	RelayURL string

	// MaxBodyBytes caps the document size; 0 selects DefaultMaxBodyBytes
	MaxBodyBytes int64
}

// Fetcher retrieves feed documents through the injected HTTP client
type Fetcher struct {
	deps interfaces.Dependencies
	lex  *lexicon.Lexicon
	cfg  FetcherConfig
}

// NewFetcher creates a fetcher. A nil lexicon selects the embedded default.
func NewFetcher(deps interfaces.Dependencies, lex *lexicon.Lexicon, cfg FetcherConfig) *Fetcher {
	if lex == nil {
		lex = lexicon.Default()
	}
	if cfg.MaxBodyBytes <= 0 {
		cfg.MaxBodyBytes = DefaultMaxBodyBytes
	}
	return &Fetcher{deps: deps, lex: lex, cfg: cfg}
}

// Fetch retrieves the document of one source. It returns no documents when the
// target location does not match the source region (without touching the
// network) and when the retrieval fails; failures are logged, never returned.
func (f *Fetcher) Fetch(ctx context.Context, src domain.Source, targetLocation string) []Document {
	logger := f.deps.Log()

	if !f.lex.MatchesRegion(src.Region, targetLocation) {
		logger.Debug("Skipping source outside target location", map[string]interface{}{
			"source":   src.DisplayName,
			"region":   src.Region,
			"location": targetLocation,
		})
		return nil
	}

	body, err := f.retrieve(ctx, src)
	if err != nil {
		logger.Warn("Source unavailable", map[string]interface{}{
			"source": src.DisplayName,
			"url":    src.URL,
			"error":  err.Error(),
		})
		return nil
	}

	return []Document{{Source: src, Body: body, FetchedAt: f.deps.Now()}}
}

// RequestURL returns the URL actually requested for a source
func (f *Fetcher) RequestURL(src domain.Source) string {
	if f.cfg.RelayURL == "" {
		return src.URL
	}
	return f.cfg.RelayURL + url.QueryEscape(src.URL)
}

// retrieve performs the single GET for a source
func (f *Fetcher) retrieve(ctx context.Context, src domain.Source) ([]byte, error) {
	if f.deps.HTTPClient == nil {
		return nil, &coreerrors.SourceUnavailableError{Source: src.DisplayName, Err: errors.New("HTTP client not configured")}
	}

	resp, err := f.deps.HTTPClient.Get(ctx, f.RequestURL(src))
	if err != nil {
		return nil, &coreerrors.SourceUnavailableError{Source: src.DisplayName, Err: err}
	}
	defer resp.Body().Close()

	if resp.StatusCode() < http.StatusOK || resp.StatusCode() >= http.StatusMultipleChoices {
		return nil, &coreerrors.SourceUnavailableError{Source: src.DisplayName, StatusCode: resp.StatusCode()}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body(), f.cfg.MaxBodyBytes))
	if err != nil {
		return nil, &coreerrors.SourceUnavailableError{Source: src.DisplayName, Err: coreerrors.WrapError(err, "read feed body")}
	}

	return body, nil
}
