// ABOUTME: Source Registry holds the static table of feed sources
// ABOUTME: Entries are read-only for the life of the process

package sources

import (
	"errors"
	"fmt"
	"os"

	"freelance-radar-api/core/domain"
	"gopkg.in/yaml.v3"
)

// defaultSources is never written after package initialization
var defaultSources = []domain.Source{
	{URL: "https://community.malt.com/feed", DisplayName: "Malt Community", Weight: 1.0, Type: domain.SourceTypeRSS, Region: domain.RegionFrance},
	{URL: "https://forum.freelance-republic.fr/feed", DisplayName: "Freelance Republic Forum", Weight: 1.0, Type: domain.SourceTypeRSS, Region: domain.RegionFrance},
	{URL: "https://www.freelance-info.fr/feed", DisplayName: "Freelance Info", Weight: 0.9, Type: domain.SourceTypeRSS, Region: domain.RegionFrance},
	{URL: "https://www.portail-autoentrepreneur.fr/feed", DisplayName: "Portail Auto-Entrepreneur", Weight: 0.9, Type: domain.SourceTypeRSS, Region: domain.RegionFrance},
	{URL: "https://www.federation-auto-entrepreneur.fr/feed", DisplayName: "Fédération Auto-Entrepreneur", Weight: 0.8, Type: domain.SourceTypeRSS, Region: domain.RegionFrance},
	{URL: "https://www.codeur.com/blog/feed/", DisplayName: "Codeur.com Blog", Weight: 0.9, Type: domain.SourceTypeRSS, Region: domain.RegionFrance},
	{URL: "https://www.freelance.com/blog/feed/", DisplayName: "Freelance.com Blog", Weight: 0.9, Type: domain.SourceTypeRSS, Region: domain.RegionFrance},
	{URL: "https://www.lecoindesentrepreneurs.fr/feed/", DisplayName: "Le Coin des Entrepreneurs", Weight: 0.8, Type: domain.SourceTypeRSS, Region: domain.RegionFrance},
	{URL: "https://www.netpme.fr/feed/", DisplayName: "NetPME", Weight: 0.7, Type: domain.SourceTypeRSS, Region: domain.RegionFrance},
	{URL: "https://www.journaldunet.com/management/direction-generale/rss/1/", DisplayName: "Journal du Net Management", Weight: 0.7, Type: domain.SourceTypeRSS, Region: domain.RegionFrance},
	{URL: "https://www.dynamique-mag.com/feed/", DisplayName: "Dynamique Entrepreneuriale", Weight: 0.7, Type: domain.SourceTypeRSS, Region: domain.RegionFrance},
	{URL: "https://www.leblogdudirigeant.com/feed/", DisplayName: "Le Blog du Dirigeant", Weight: 0.7, Type: domain.SourceTypeRSS, Region: domain.RegionFrance},
}

// Registry is an ordered, immutable set of sources
type Registry struct {
	sources []domain.Source
}

// Default returns the built-in French registry
func Default() *Registry {
	return &Registry{sources: defaultSources}
}

// MustDefault returns the built-in registry and panics if its table is malformed
func MustDefault() *Registry {
	reg := Default()
	if err := Validate(reg.sources); err != nil {
		panic(fmt.Sprintf("default source registry is invalid: %v", err))
	}
	return reg
}

// New builds a registry from a validated copy of the given sources
func New(list []domain.Source) (*Registry, error) {
	if err := Validate(list); err != nil {
		return nil, err
	}
	owned := make([]domain.Source, len(list))
	copy(owned, list)
	return &Registry{sources: owned}, nil
}

// Load reads a registry from a YAML file of the form `sources: [...]`
func Load(path string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read sources: %w", err)
	}

	var file struct {
		Sources []domain.Source `yaml:"sources"`
	}
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("decode sources: %w", err)
	}

	return New(file.Sources)
}

// Sources returns the registry entries in order. The returned slice is a copy.
func (r *Registry) Sources() []domain.Source {
	out := make([]domain.Source, len(r.sources))
	copy(out, r.sources)
	return out
}

// Len returns the number of sources
func (r *Registry) Len() int {
	return len(r.sources)
}

// Validate checks every source and rejects duplicate URLs
func Validate(list []domain.Source) error {
	if len(list) == 0 {
		return errors.New("source registry cannot be empty")
	}

	seen := make(map[string]struct{}, len(list))
	for i := range list {
		if err := list[i].Validate(); err != nil {
			return fmt.Errorf("source %d: %w", i, err)
		}
		if _, dup := seen[list[i].URL]; dup {
			return fmt.Errorf("source %d: duplicate URL %s", i, list[i].URL)
		}
		seen[list[i].URL] = struct{}{}
	}
	return nil
}
