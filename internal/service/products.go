package service

import (
	"context"
	"fmt"
	"net/url"

	"github.com/pedro-candido/mvvm-app/internal/httpapi"
	"github.com/pedro-candido/mvvm-app/internal/model"
)

// ProductService wraps the /products endpoints.
type ProductService struct {
	api *httpapi.Client
}

// NewProductService creates a ProductService over the shared client.
func NewProductService(api *httpapi.Client) *ProductService {
	return &ProductService{api: api}
}

// GetAll fetches every product.
func (s *ProductService) GetAll(ctx context.Context) ([]model.Product, error) {
	var products []model.Product
	if err := s.api.Get(ctx, "/products", &products); err != nil {
		return nil, err
	}
	return products, nil
}

// GetByID fetches one product.
func (s *ProductService) GetByID(ctx context.Context, id int64) (model.Product, error) {
	var product model.Product
	err := s.api.Get(ctx, fmt.Sprintf("/products/%d", id), &product)
	return product, err
}

// GetByCategory fetches the products tagged with the category.
func (s *ProductService) GetByCategory(ctx context.Context, category string) ([]model.Product, error) {
	var products []model.Product
	path := "/products/category/" + url.PathEscape(category)
	if err := s.api.Get(ctx, path, &products); err != nil {
		return nil, err
	}
	return products, nil
}

// Create adds a product.
func (s *ProductService) Create(ctx context.Context, product model.Product) (model.Product, error) {
	var created model.Product
	err := s.api.Post(ctx, "/products", product, &created)
	return created, err
}

// Update replaces a product by id.
func (s *ProductService) Update(ctx context.Context, id int64, product model.Product) (model.Product, error) {
	var updated model.Product
	err := s.api.Put(ctx, fmt.Sprintf("/products/%d", id), product, &updated)
	return updated, err
}

// Delete removes a product by id.
func (s *ProductService) Delete(ctx context.Context, id int64) error {
	return s.api.Delete(ctx, fmt.Sprintf("/products/%d", id), nil)
}
