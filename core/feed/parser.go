// ABOUTME: Document Parser turns raw RSS/Atom documents into normalized entries
// ABOUTME: Unrecognized or malformed documents yield no entries, never a panic

package feed

import (
	"bytes"
	"strings"

	"freelance-radar-api/core/domain"
	coreerrors "freelance-radar-api/core/errors"
	"github.com/mmcdole/gofeed"
)

// Parser extracts entries from feed documents
type Parser struct{}

// NewParser creates a new document parser
func NewParser() *Parser {
	return &Parser{}
}

// Parse detects the feed dialect and extracts its entries. Documents that are
// neither RSS nor Atom return a ParseError marked Unrecognized; malformed XML
// returns a ParseError wrapping the decoder error. Both come with zero entries.
func (p *Parser) Parse(raw []byte) ([]domain.Entry, error) {
	if len(bytes.TrimSpace(raw)) == 0 {
		return nil, &coreerrors.ParseError{Unrecognized: true}
	}

	switch gofeed.DetectFeedType(bytes.NewReader(raw)) {
	case gofeed.FeedTypeRSS, gofeed.FeedTypeAtom:
	default:
		return nil, &coreerrors.ParseError{Unrecognized: true}
	}

	// gofeed parsers keep decoding state, so each document gets its own
	parsed, err := gofeed.NewParser().Parse(bytes.NewReader(raw))
	if err != nil {
		return nil, &coreerrors.ParseError{Err: err}
	}

	entries := make([]domain.Entry, 0, len(parsed.Items))
	for _, item := range parsed.Items {
		if item == nil {
			continue
		}
		entries = append(entries, convertItem(item))
	}

	return entries, nil
}

// convertItem maps a gofeed item onto an Entry, defaulting missing fields to ""
func convertItem(item *gofeed.Item) domain.Entry {
	entry := domain.Entry{
		Title:           item.Title,
		Link:            item.Link,
		Body:            entryBody(item),
		Creator:         entryCreator(item),
		Published:       item.Published,
		PublishedParsed: item.PublishedParsed,
	}

	// Atom links carry their URL in href
	if strings.TrimSpace(entry.Link) == "" {
		for _, link := range item.Links {
			if strings.TrimSpace(link) != "" {
				entry.Link = link
				break
			}
		}
	}

	return entry
}

// entryBody picks content:encoded / content first, then description / summary
func entryBody(item *gofeed.Item) string {
	if strings.TrimSpace(item.Content) != "" {
		return item.Content
	}
	return item.Description
}

// entryCreator picks the author name, falling back to dc:creator
func entryCreator(item *gofeed.Item) string {
	if item.Author != nil && item.Author.Name != "" {
		return item.Author.Name
	}

	for _, author := range item.Authors {
		if author != nil && author.Name != "" {
			return author.Name
		}
	}

	if item.DublinCoreExt != nil {
		for _, creator := range item.DublinCoreExt.Creator {
			if creator != "" {
				return creator
			}
		}
	}

	return ""
}
