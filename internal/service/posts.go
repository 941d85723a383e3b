package service

import (
	"context"
	"fmt"

	"github.com/pedro-candido/mvvm-app/internal/httpapi"
	"github.com/pedro-candido/mvvm-app/internal/model"
)

// PostService wraps the /posts endpoints.
type PostService struct {
	api *httpapi.Client
}

// NewPostService creates a PostService over the shared client.
func NewPostService(api *httpapi.Client) *PostService {
	return &PostService{api: api}
}

// GetAll fetches every post.
func (s *PostService) GetAll(ctx context.Context) ([]model.Post, error) {
	var posts []model.Post
	if err := s.api.Get(ctx, "/posts", &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

// GetByID fetches one post.
func (s *PostService) GetByID(ctx context.Context, id int64) (model.Post, error) {
	var post model.Post
	err := s.api.Get(ctx, fmt.Sprintf("/posts/%d", id), &post)
	return post, err
}

// GetComments fetches the comments referencing the post.
func (s *PostService) GetComments(ctx context.Context, postID int64) ([]model.Comment, error) {
	var comments []model.Comment
	if err := s.api.Get(ctx, fmt.Sprintf("/posts/%d/comments", postID), &comments); err != nil {
		return nil, err
	}
	return comments, nil
}

// Create adds a post.
func (s *PostService) Create(ctx context.Context, post model.Post) (model.Post, error) {
	var created model.Post
	err := s.api.Post(ctx, "/posts", post, &created)
	return created, err
}

// Update replaces a post by id.
func (s *PostService) Update(ctx context.Context, id int64, post model.Post) (model.Post, error) {
	var updated model.Post
	err := s.api.Put(ctx, fmt.Sprintf("/posts/%d", id), post, &updated)
	return updated, err
}

// Delete removes a post by id.
func (s *PostService) Delete(ctx context.Context, id int64) error {
	return s.api.Delete(ctx, fmt.Sprintf("/posts/%d", id), nil)
}
