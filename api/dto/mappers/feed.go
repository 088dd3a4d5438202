// ABOUTME: Mappers for converting between domain models and API DTOs
// ABOUTME: Provides clean separation between business logic and API layer

package mappers

import (
	"freelance-radar-api/api/dto/responses"
	"freelance-radar-api/core/domain"
)

// ToFeedItemResponse converts a ranked domain FeedItem to a FeedItemResponse DTO
func ToFeedItemResponse(item *domain.FeedItem) *responses.FeedItemResponse {
	if item == nil {
		return nil
	}

	return &responses.FeedItemResponse{
		Title:          item.Title,
		Link:           item.Link,
		Content:        item.CleanedContent,
		Creator:        item.Author,
		PubDate:        item.PublishedAt,
		FormattedDate:  item.FormattedAge,
		Source:         item.SourceName,
		IsQuestion:     item.IsQuestion,
		Location:       item.Region,
		RelevanceScore: item.Score(),
	}
}

// ToFeedItemResponses converts items in order; the result is never nil
func ToFeedItemResponses(items []domain.FeedItem) []responses.FeedItemResponse {
	out := make([]responses.FeedItemResponse, 0, len(items))
	for i := range items {
		out = append(out, *ToFeedItemResponse(&items[i]))
	}
	return out
}

// ToSearchResponse builds the response of a search
func ToSearchResponse(keyword, location string, items []domain.FeedItem) *responses.SearchResponse {
	mapped := ToFeedItemResponses(items)
	return &responses.SearchResponse{
		Keyword:  keyword,
		Location: location,
		Count:    len(mapped),
		Items:    mapped,
	}
}

// ToSourcesResponse lists sources in registry order
func ToSourcesResponse(sources []domain.Source) *responses.SourcesResponse {
	out := make([]responses.SourceResponse, 0, len(sources))
	for _, src := range sources {
		out = append(out, responses.SourceResponse{
			Name:   src.DisplayName,
			URL:    src.URL,
			Type:   string(src.Type),
			Region: src.Region,
			Weight: src.Weight,
		})
	}
	return &responses.SourcesResponse{Count: len(out), Sources: out}
}

// ToAnalyzeResponse combines the ranked items, their analysis and the
// reported milestones
func ToAnalyzeResponse(keyword, location string, items []domain.FeedItem, analysis *domain.Analysis, progress []domain.AnalysisProgress) *responses.AnalyzeResponse {
	resp := &responses.AnalyzeResponse{
		Keyword:     keyword,
		Location:    location,
		Items:       ToFeedItemResponses(items),
		PainPoints:  []string{},
		RecentPosts: []responses.AnalyzedPostResponse{},
	}

	if analysis != nil {
		resp.TargetDescription = analysis.TargetDescription
		if analysis.PainPoints != nil {
			resp.PainPoints = analysis.PainPoints
		}
		for _, post := range analysis.RecentPosts {
			resp.RecentPosts = append(resp.RecentPosts, responses.AnalyzedPostResponse{
				Title:             post.Title,
				URL:               post.URL,
				Content:           post.Content,
				Date:              post.Date,
				SuggestedResponse: post.SuggestedResponse,
			})
		}
		resp.Cost = responses.CostResponse{Tokens: analysis.Cost.Tokens, Cost: analysis.Cost.Cost}
	}

	for _, p := range progress {
		resp.Progress = append(resp.Progress, responses.ProgressResponse{Step: p.Step, Progress: p.Percent})
	}

	return resp
}
