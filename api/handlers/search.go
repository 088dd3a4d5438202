// ABOUTME: Search handlers for the Huma API
// ABOUTME: Exposes the ranked radar results and the source registry

package handlers

import (
	"context"
	"net/http"
	"strings"

	"freelance-radar-api/api/dto/mappers"
	"freelance-radar-api/api/dto/responses"
	"freelance-radar-api/core/domain"
	"freelance-radar-api/core/interfaces"
	"github.com/danielgtaylor/huma/v2"
)

// SourceLister exposes the configured sources
type SourceLister interface {
	Sources() []domain.Source
}

// SearchHandler handles ranking requests
type SearchHandler struct {
	ranker  interfaces.Ranker
	sources SourceLister
}

// NewSearchHandler creates a new search handler
func NewSearchHandler(ranker interfaces.Ranker, sources SourceLister) *SearchHandler {
	return &SearchHandler{ranker: ranker, sources: sources}
}

// RegisterRoutes registers all search-related routes
func (h *SearchHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "search",
		Method:      http.MethodGet,
		Path:        "/search",
		Summary:     "Rank help-seeking posts",
		Description: "Fetches every source concurrently and returns the five most relevant recent questions for a keyword",
		Tags:        []string{"Search"},
	}, h.Search)

	huma.Register(api, huma.Operation{
		OperationID: "listSources",
		Method:      http.MethodGet,
		Path:        "/sources",
		Summary:     "List feed sources",
		Description: "Returns the feed registry in declaration order",
		Tags:        []string{"Search"},
	}, h.ListSources)
}

// SearchInput defines the input for the Search operation
type SearchInput struct {
	Keyword  string `query:"keyword" required:"true" minLength:"1" maxLength:"200" doc:"Activity or expertise to search for"`
	Location string `query:"location" maxLength:"100" doc:"Optional location, e.g. 'Paris'"`
}

// SearchOutput defines the output for the Search operation
type SearchOutput struct {
	Body responses.SearchResponse
}

// Search handles the GET /search endpoint
func (h *SearchHandler) Search(ctx context.Context, input *SearchInput) (*SearchOutput, error) {
	keyword := strings.TrimSpace(input.Keyword)
	if keyword == "" {
		return nil, huma.Error400BadRequest("keyword cannot be blank")
	}
	location := strings.TrimSpace(input.Location)

	items := h.ranker.Rank(ctx, keyword, location)

	return &SearchOutput{
		Body: *mappers.ToSearchResponse(keyword, location, items),
	}, nil
}

// ListSourcesOutput defines the output for the ListSources operation
type ListSourcesOutput struct {
	Body responses.SourcesResponse
}

// ListSources handles the GET /sources endpoint
func (h *SearchHandler) ListSources(ctx context.Context, input *struct{}) (*ListSourcesOutput, error) {
	return &ListSourcesOutput{
		Body: *mappers.ToSourcesResponse(h.sources.Sources()),
	}, nil
}
