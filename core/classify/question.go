// ABOUTME: Question Classifier flags feed items that look like requests for help
// ABOUTME: Deliberately permissive; scoring and filtering downstream compensate

package classify

import (
	"strings"

	"freelance-radar-api/core/lexicon"
)

// Classifier detects help-seeking posts using a lexicon
type Classifier struct {
	lex *lexicon.Lexicon
}

// NewClassifier creates a classifier bound to the given lexicon.
// A nil lexicon selects the embedded default.
func NewClassifier(lex *lexicon.Lexicon) *Classifier {
	if lex == nil {
		lex = lexicon.Default()
	}
	return &Classifier{lex: lex}
}

// IsQuestion reports whether the title and content look like a question. It is
// true when any of the following holds, case-insensitively:
//   - the combined text contains a question indicator
//   - the title starts with an interrogative word
//   - the combined text contains a '?'
func (c *Classifier) IsQuestion(title, content string) bool {
	text := c.lex.Normalize(title + " " + content)

	if lexicon.ContainsAny(text, c.lex.QuestionIndicators) {
		return true
	}

	if lexicon.HasAnyPrefix(c.lex.Normalize(title), c.lex.Interrogatives) {
		return true
	}

	return strings.Contains(text, "?")
}

// IsQuestion classifies using the default lexicon
func IsQuestion(title, content string) bool {
	return defaultClassifier.IsQuestion(title, content)
}

var defaultClassifier = NewClassifier(nil)
