package service

import (
	"context"
	"net/url"

	"github.com/pedro-candido/mvvm-app/internal/httpapi"
	"github.com/pedro-candido/mvvm-app/internal/model"
)

// SearchService wraps the /search endpoint.
type SearchService struct {
	api *httpapi.Client
}

// NewSearchService creates a SearchService over the shared client.
func NewSearchService(api *httpapi.Client) *SearchService {
	return &SearchService{api: api}
}

// Search runs a cross-collection substring search.
func (s *SearchService) Search(ctx context.Context, query string) (model.SearchResult, error) {
	var result model.SearchResult
	err := s.api.Get(ctx, "/search?q="+url.QueryEscape(query), &result)
	return result, err
}
