package handler

import (
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/labstack/echo/v4"

	apperrors "github.com/pedro-candido/mvvm-app/internal/errors"
	"github.com/pedro-candido/mvvm-app/internal/model"
	"github.com/pedro-candido/mvvm-app/internal/store"
)

// AuthHandler handles the simulated authentication endpoints. Passwords are
// never verified or persisted; the token is a fabricated placeholder string,
// not a credential.
type AuthHandler struct {
	store *store.Store
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(st *store.Store) *AuthHandler {
	return &AuthHandler{store: st}
}

// Login handles POST /auth/login. Any password is accepted for a known
// email; an unknown email yields 404.
func (h *AuthHandler) Login(c echo.Context) error {
	var req model.LoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Email and password are required")
	}

	user, ok := h.store.FindUserByEmail(req.Email)
	if !ok {
		return httpError(apperrors.ErrUserNotFound)
	}

	return c.JSON(http.StatusOK, model.AuthResponse{
		Token: fabricateToken(),
		User:  userProjection(user),
	})
}

// Register handles POST /auth/register. The new user is flushed to the
// backing file before the response is written.
func (h *AuthHandler) Register(c echo.Context) error {
	var req model.RegisterRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Name, email and password are required")
	}

	if _, exists := h.store.FindUserByEmail(req.Email); exists {
		return httpError(apperrors.ErrUserExists)
	}

	user, err := h.store.Insert("users", store.Record{
		"name":      req.Name,
		"email":     req.Email,
		"avatar":    avatarURL(req.Name),
		"createdAt": time.Now().UTC().Format(time.RFC3339),
	})
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusCreated, model.AuthResponse{
		Token: fabricateToken(),
		User:  userProjection(user),
	})
}

// fabricateToken builds the placeholder bearer token.
func fabricateToken() string {
	return fmt.Sprintf("fake-jwt-token-%d", time.Now().UnixMilli())
}

// avatarURL derives a placeholder avatar image keyed by the user's name.
func avatarURL(name string) string {
	return fmt.Sprintf("https://ui-avatars.com/api/?name=%s&background=random&color=fff", url.QueryEscape(name))
}

// userProjection strips a user record down to its public-safe fields.
func userProjection(rec store.Record) model.AuthUser {
	id, _ := store.RecordID(rec)
	name, _ := rec["name"].(string)
	email, _ := rec["email"].(string)
	avatar, _ := rec["avatar"].(string)
	return model.AuthUser{ID: id, Name: name, Email: email, Avatar: avatar}
}
