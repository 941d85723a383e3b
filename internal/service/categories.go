package service

import (
	"context"
	"fmt"

	"github.com/pedro-candido/mvvm-app/internal/httpapi"
	"github.com/pedro-candido/mvvm-app/internal/model"
)

// CategoryService wraps the read-only /categories endpoints.
type CategoryService struct {
	api *httpapi.Client
}

// NewCategoryService creates a CategoryService over the shared client.
func NewCategoryService(api *httpapi.Client) *CategoryService {
	return &CategoryService{api: api}
}

// GetAll fetches every category.
func (s *CategoryService) GetAll(ctx context.Context) ([]model.Category, error) {
	var categories []model.Category
	if err := s.api.Get(ctx, "/categories", &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

// GetByID fetches one category.
func (s *CategoryService) GetByID(ctx context.Context, id int64) (model.Category, error) {
	var category model.Category
	err := s.api.Get(ctx, fmt.Sprintf("/categories/%d", id), &category)
	return category, err
}
