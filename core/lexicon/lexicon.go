// ABOUTME: Versioned lexicons driving question detection and location matching
// ABOUTME: Word lists are data loaded from YAML, kept apart from the matching code

package lexicon

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

//go:embed lexicon_fr.yaml
var defaultYAML []byte

// Lexicon holds the word lists used by the classifier and location matcher
type Lexicon struct {
	Version            string              `yaml:"version"`
	Language           string              `yaml:"language"`
	QuestionIndicators []string            `yaml:"question_indicators"`
	Interrogatives     []string            `yaml:"interrogatives"`
	Regions            map[string][]string `yaml:"regions"`

	tag language.Tag
}

var (
	defaultOnce sync.Once
	defaultLex  *Lexicon
)

// Default returns the embedded French lexicon. The embedded file is part of the
// build, so a malformed one is a programming error and panics.
func Default() *Lexicon {
	defaultOnce.Do(func() {
		lex, err := Parse(defaultYAML)
		if err != nil {
			panic(fmt.Sprintf("embedded lexicon is invalid: %v", err))
		}
		defaultLex = lex
	})
	return defaultLex
}

// Load reads a lexicon from a YAML file
func Load(path string) (*Lexicon, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read lexicon: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates a YAML lexicon. All entries are normalized to
// lower case so matching never has to fold the word lists again.
func Parse(data []byte) (*Lexicon, error) {
	var lex Lexicon
	if err := yaml.Unmarshal(data, &lex); err != nil {
		return nil, fmt.Errorf("decode lexicon: %w", err)
	}

	if lex.Version == "" {
		return nil, errors.New("lexicon version cannot be empty")
	}
	if len(lex.QuestionIndicators) == 0 {
		return nil, errors.New("lexicon has no question indicators")
	}
	if len(lex.Interrogatives) == 0 {
		return nil, errors.New("lexicon has no interrogatives")
	}

	lex.tag = language.Make(lex.Language)
	lex.QuestionIndicators = lex.normalizeAll(lex.QuestionIndicators)
	lex.Interrogatives = lex.normalizeAll(lex.Interrogatives)

	regions := make(map[string][]string, len(lex.Regions))
	for region, aliases := range lex.Regions {
		regions[lex.Normalize(region)] = lex.normalizeAll(aliases)
	}
	lex.Regions = regions

	return &lex, nil
}

// Normalize lower-cases text using the lexicon language's casing rules.
// A cases.Caser is stateful, so one is built per call.
func (l *Lexicon) Normalize(s string) string {
	return cases.Lower(l.tag).String(s)
}

func (l *Lexicon) normalizeAll(words []string) []string {
	out := make([]string, 0, len(words))
	for _, w := range words {
		w = strings.TrimSpace(w)
		if w == "" {
			continue
		}
		out = append(out, l.Normalize(w))
	}
	return out
}

// ContainsAny reports whether normalized text contains any of the words
func ContainsAny(text string, words []string) bool {
	for _, w := range words {
		if strings.Contains(text, w) {
			return true
		}
	}
	return false
}

// HasAnyPrefix reports whether normalized text starts with any of the words
func HasAnyPrefix(text string, words []string) bool {
	for _, w := range words {
		if strings.HasPrefix(text, w) {
			return true
		}
	}
	return false
}
