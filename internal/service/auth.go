package service

import (
	"context"

	"github.com/pedro-candido/mvvm-app/internal/httpapi"
	"github.com/pedro-candido/mvvm-app/internal/model"
)

// AuthService wraps the simulated /auth endpoints.
type AuthService struct {
	api *httpapi.Client
}

// NewAuthService creates an AuthService over the shared client.
func NewAuthService(api *httpapi.Client) *AuthService {
	return &AuthService{api: api}
}

// Login exchanges credentials for a fabricated token and user projection.
func (s *AuthService) Login(ctx context.Context, email, password string) (model.AuthResponse, error) {
	var resp model.AuthResponse
	err := s.api.Post(ctx, "/auth/login", model.LoginRequest{Email: email, Password: password}, &resp)
	return resp, err
}

// Register creates a user and returns the same token+projection shape as Login.
func (s *AuthService) Register(ctx context.Context, name, email, password string) (model.AuthResponse, error) {
	var resp model.AuthResponse
	err := s.api.Post(ctx, "/auth/register", model.RegisterRequest{Name: name, Email: email, Password: password}, &resp)
	return resp, err
}
