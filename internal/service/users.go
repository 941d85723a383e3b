// Package service translates domain operations into calls against the store
// server's fixed endpoint shapes. Each service is a thin, typed wrapper over
// the shared httpapi client with no logic of its own.
package service

import (
	"context"
	"fmt"

	"github.com/pedro-candido/mvvm-app/internal/httpapi"
	"github.com/pedro-candido/mvvm-app/internal/model"
)

// UserService wraps the /users endpoints.
type UserService struct {
	api *httpapi.Client
}

// NewUserService creates a UserService over the shared client.
func NewUserService(api *httpapi.Client) *UserService {
	return &UserService{api: api}
}

// GetAll fetches every user.
func (s *UserService) GetAll(ctx context.Context) ([]model.User, error) {
	var users []model.User
	if err := s.api.Get(ctx, "/users", &users); err != nil {
		return nil, err
	}
	return users, nil
}

// GetByID fetches one user.
func (s *UserService) GetByID(ctx context.Context, id int64) (model.User, error) {
	var user model.User
	err := s.api.Get(ctx, fmt.Sprintf("/users/%d", id), &user)
	return user, err
}

// GetPosts fetches the posts referencing the user.
func (s *UserService) GetPosts(ctx context.Context, userID int64) ([]model.Post, error) {
	var posts []model.Post
	if err := s.api.Get(ctx, fmt.Sprintf("/users/%d/posts", userID), &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

// Create adds a user.
func (s *UserService) Create(ctx context.Context, user model.User) (model.User, error) {
	var created model.User
	err := s.api.Post(ctx, "/users", user, &created)
	return created, err
}

// Update replaces a user by id.
func (s *UserService) Update(ctx context.Context, id int64, user model.User) (model.User, error) {
	var updated model.User
	err := s.api.Put(ctx, fmt.Sprintf("/users/%d", id), user, &updated)
	return updated, err
}

// Delete removes a user by id.
func (s *UserService) Delete(ctx context.Context, id int64) error {
	return s.api.Delete(ctx, fmt.Sprintf("/users/%d", id), nil)
}
