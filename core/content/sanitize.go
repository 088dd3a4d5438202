// ABOUTME: Content Sanitizer turns feed item bodies into plain text
// ABOUTME: Removes markup, scripts, forum boilerplate and bracketed metadata

package content

import (
	"regexp"
	"unicode/utf8"

	htmlutil "freelance-radar-api/pkg/utils/html"
)

// PreviewLength is the maximum number of characters kept in an item preview
const PreviewLength = 300

// EllipsisMarker is appended to every preview
const EllipsisMarker = "..."

// Boilerplate patterns, applied in order. Link/comment footers must go before
// the generic bracket rule or the text between them would survive. Every
// pattern spans line breaks since feed bodies often wrap inside an aside.
var boilerplate = []*regexp.Regexp{
	regexp.MustCompile(`(?s)\[link\].*?\[comments\]`),
	regexp.MustCompile(`(?s)\(.*?\)`),
	regexp.MustCompile(`(?s)submitted by.*?to`),
	regexp.MustCompile(`(?s)\[.*?\]`),
}

// Sanitize extracts the visible text of markup or plain text, drops script and
// style blocks, bracketed metadata, parenthetical asides and the "submitted by
// ... to" footer, then collapses and trims whitespace.
func Sanitize(markup string) string {
	text := htmlutil.VisibleText(markup)

	for _, re := range boilerplate {
		text = re.ReplaceAllString(text, "")
	}

	return htmlutil.CollapseWhitespace(text)
}

// Preview truncates sanitized text to PreviewLength characters and appends the
// ellipsis marker. Truncation counts runes so multi-byte characters are never split.
func Preview(text string) string {
	if utf8.RuneCountInString(text) <= PreviewLength {
		return text + EllipsisMarker
	}

	runes := []rune(text)
	return string(runes[:PreviewLength]) + EllipsisMarker
}

// CleanTitle strips inline markup and entities from a title
func CleanTitle(title string) string {
	return htmlutil.CollapseWhitespace(htmlutil.StripTags(title))
}
