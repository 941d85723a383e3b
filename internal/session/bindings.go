package session

import (
	"context"

	"github.com/pedro-candido/mvvm-app/internal/model"
	"github.com/pedro-candido/mvvm-app/internal/service"
)

// NewUserSession binds a session to the user service.
func NewUserSession(ctx context.Context, svc *service.UserService) *Session[model.User] {
	return New(ctx, Funcs[model.User]{
		FetchAll: svc.GetAll,
		Create:   svc.Create,
		Update:   svc.Update,
		Delete:   svc.Delete,
		IDOf:     func(u model.User) int64 { return u.ID },
	})
}

// NewPostSession binds a session to the post service.
func NewPostSession(ctx context.Context, svc *service.PostService) *Session[model.Post] {
	return New(ctx, Funcs[model.Post]{
		FetchAll: svc.GetAll,
		Create:   svc.Create,
		Update:   svc.Update,
		Delete:   svc.Delete,
		IDOf:     func(p model.Post) int64 { return p.ID },
	})
}

// ProductSession adds the category-filtered fetch on top of the generic
// session, mirroring the product listing screens.
type ProductSession struct {
	*Session[model.Product]
	svc *service.ProductService
}

// NewProductSession binds a product session to the product service.
func NewProductSession(ctx context.Context, svc *service.ProductService) *ProductSession {
	return &ProductSession{
		Session: New(ctx, Funcs[model.Product]{
			FetchAll: svc.GetAll,
			Create:   svc.Create,
			Update:   svc.Update,
			Delete:   svc.Delete,
			IDOf:     func(p model.Product) int64 { return p.ID },
		}),
		svc: svc,
	}
}

// FetchByCategory replaces the session items with the products tagged with
// the category.
func (s *ProductSession) FetchByCategory(ctx context.Context, category string) error {
	return s.FetchWith(ctx, func(ctx context.Context) ([]model.Product, error) {
		return s.svc.GetByCategory(ctx, category)
	})
}

// NewCategorySession binds a read-only session to the category service.
// Categories have no mutating endpoints, so only the fetch path is wired.
func NewCategorySession(ctx context.Context, svc *service.CategoryService) *Session[model.Category] {
	return New(ctx, Funcs[model.Category]{
		FetchAll: svc.GetAll,
		IDOf:     func(c model.Category) int64 { return c.ID },
	})
}
