package analysis

import (
	"encoding/json"
	"fmt"
	"strings"

	"freelance-radar-api/core/domain"
)

const (
	defaultTargetDescription = "Analyse du problème"
	unanalysedResponse       = "Désolé, je n'ai pas pu analyser cette question correctement."
)

// parseReply decodes the model reply as JSON and otherwise falls back to line
// heuristics over the free text
func parseReply(reply string, items []domain.FeedItem) domain.Analysis {
	if analysis, ok := decodeJSON(reply); ok {
		return analysis
	}
	return heuristicAnalysis(reply, items)
}

func decodeJSON(reply string) (domain.Analysis, bool) {
	body := stripCodeFence(reply)
	if body == "" {
		return domain.Analysis{}, false
	}

	var analysis domain.Analysis
	if err := json.Unmarshal([]byte(body), &analysis); err != nil {
		return domain.Analysis{}, false
	}
	return analysis, true
}

// stripCodeFence removes a surrounding ```json ... ``` block
func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	if nl := strings.IndexByte(s, '\n'); nl >= 0 {
		s = s[nl+1:]
	}
	return strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(s), "```"))
}

func heuristicAnalysis(reply string, items []domain.FeedItem) domain.Analysis {
	lines := strings.Split(reply, "\n")

	analysis := domain.Analysis{
		TargetDescription: defaultTargetDescription,
		PainPoints:        []string{},
		RecentPosts:       make([]domain.AnalyzedPost, 0, len(items)),
	}

	for _, line := range lines {
		if strings.Contains(line, "Analyse") {
			analysis.TargetDescription = strings.TrimSpace(line)
			break
		}
	}

	for _, line := range lines {
		if strings.Contains(line, "- ") {
			analysis.PainPoints = append(analysis.PainPoints, strings.TrimSpace(strings.Replace(line, "- ", "", 1)))
		}
	}

	for i, item := range items {
		analysis.RecentPosts = append(analysis.RecentPosts, domain.AnalyzedPost{
			Title:             item.Title,
			URL:               item.Link,
			Content:           item.CleanedContent,
			Date:              item.FormattedAge,
			SuggestedResponse: questionSection(reply, i+1),
		})
	}

	return analysis
}

// questionSection returns the text from the "Question n" marker up to the next
// marker, or the apology text when the marker is absent
func questionSection(reply string, n int) string {
	start := strings.Index(reply, fmt.Sprintf("Question %d", n))
	if start < 0 {
		return unanalysedResponse
	}

	section := reply[start:]
	if end := strings.Index(section, fmt.Sprintf("Question %d", n+1)); end > 0 {
		section = section[:end]
	}

	if section = strings.TrimSpace(section); section == "" {
		return unanalysedResponse
	}
	return section
}

// splitSuggestions turns a comma-separated reply into at most limit entries
func splitSuggestions(reply string, limit int) []string {
	suggestions := make([]string, 0, limit)
	for _, part := range strings.Split(reply, ",") {
		part = strings.Trim(strings.TrimSpace(part), `"`)
		if part == "" {
			continue
		}
		suggestions = append(suggestions, part)
		if len(suggestions) == limit {
			break
		}
	}
	return suggestions
}
