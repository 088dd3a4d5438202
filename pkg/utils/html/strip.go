// ABOUTME: HTML utilities for extracting visible text from feed markup
// ABOUTME: Built on goquery for bodies and bluemonday for short inline fields

package html

import (
	stdhtml "html"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/microcosm-cc/bluemonday"
)

// invisibleSelectors are removed with their content before text extraction
const invisibleSelectors = "script, style, noscript, template"

// strictPolicy strips every tag. bluemonday policies are safe for concurrent use.
var strictPolicy = bluemonday.StrictPolicy()

// VisibleText parses markup as an HTML fragment and returns its visible text.
// Plain text without markup is returned with entities decoded.
func VisibleText(markup string) string {
	if strings.TrimSpace(markup) == "" {
		return ""
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		// The HTML tokenizer accepts any input; this only fails on reader errors
		return StripTags(markup)
	}

	doc.Find(invisibleSelectors).Remove()

	return doc.Text()
}

// StripTags removes all tags from a short inline string such as a title and
// decodes HTML entities
func StripTags(s string) string {
	if s == "" {
		return ""
	}
	return stdhtml.UnescapeString(strictPolicy.Sanitize(s))
}

// CollapseWhitespace replaces every run of whitespace with a single space
func CollapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
