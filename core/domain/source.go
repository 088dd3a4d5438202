// ABOUTME: Source domain model represents a configured RSS/Atom endpoint
// ABOUTME: Provides validation so malformed registry entries fail at startup, never at runtime

package domain

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// SourceType is the syndication dialect a source publishes
type SourceType string

const (
	// SourceTypeRSS marks an RSS 0.9x/2.0 endpoint
	SourceTypeRSS SourceType = "rss"

	// SourceTypeAtom marks an Atom 1.0 endpoint
	SourceTypeAtom SourceType = "atom"
)

// RegionFrance is the region tag carried by French sources
const RegionFrance = "france"

// Source represents a feed endpoint with its trust weight and region tag
type Source struct {
	// URL is the feed document URL
	URL string `json:"url" yaml:"url"`

	// DisplayName is the human-readable name shown next to items
	DisplayName string `json:"displayName" yaml:"name"`

	// Weight is the trust weight of the source, in (0, 1]
	Weight float64 `json:"weight" yaml:"weight"`

	// Type is the declared feed dialect
	Type SourceType `json:"type" yaml:"type"`

	// Region is the geographic tag used by location matching
	Region string `json:"region" yaml:"region"`
}

// Validate checks that the source is well formed
func (s *Source) Validate() error {
	if s.URL == "" {
		return errors.New("source URL cannot be empty")
	}

	parsed, err := url.Parse(s.URL)
	if err != nil || parsed.Host == "" {
		return fmt.Errorf("source URL %q is not a valid URL", s.URL)
	}
	if scheme := strings.ToLower(parsed.Scheme); scheme != "http" && scheme != "https" {
		return fmt.Errorf("source URL %q must use http or https", s.URL)
	}

	if strings.TrimSpace(s.DisplayName) == "" {
		return fmt.Errorf("source %q has no display name", s.URL)
	}

	if s.Weight <= 0 || s.Weight > 1 {
		return fmt.Errorf("source %q weight %v is outside (0, 1]", s.URL, s.Weight)
	}

	switch s.Type {
	case SourceTypeRSS, SourceTypeAtom:
	default:
		return fmt.Errorf("source %q has unknown type %q", s.URL, s.Type)
	}

	return nil
}
