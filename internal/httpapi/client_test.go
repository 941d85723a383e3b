package httpapi

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMethodsAndBodies(t *testing.T) {
	var gotMethod, gotPath, gotBody string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		data, _ := io.ReadAll(r.Body)
		gotBody = string(data)
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"name": "Ana"})
	}))
	defer srv.Close()

	c := New(srv.URL)
	ctx := context.Background()

	var out map[string]string
	require.NoError(t, c.Get(ctx, "/users", &out))
	assert.Equal(t, http.MethodGet, gotMethod)
	assert.Equal(t, "/users", gotPath)
	assert.Equal(t, "Ana", out["name"])

	require.NoError(t, c.Post(ctx, "users", map[string]string{"name": "Ana"}, nil))
	assert.Equal(t, http.MethodPost, gotMethod)
	assert.Equal(t, "/users", gotPath, "missing leading slash is added")
	assert.JSONEq(t, `{"name":"Ana"}`, gotBody)

	require.NoError(t, c.Put(ctx, "/users/1", map[string]string{"name": "Bia"}, nil))
	assert.Equal(t, http.MethodPut, gotMethod)
	assert.JSONEq(t, `{"name":"Bia"}`, gotBody)

	require.NoError(t, c.Delete(ctx, "/users/1", nil))
	assert.Equal(t, http.MethodDelete, gotMethod)
	assert.Empty(t, gotBody)
}

func TestErrorMessageExtraction(t *testing.T) {
	tests := []struct {
		name        string
		status      int
		body        string
		wantMessage string
	}{
		{name: "json error body", status: http.StatusNotFound, body: `{"error":"User not found"}`, wantMessage: "User not found"},
		{name: "non-json body", status: http.StatusInternalServerError, body: "<html>boom</html>", wantMessage: "Network error"},
		{name: "json without error field", status: http.StatusBadRequest, body: `{"detail":"nope"}`, wantMessage: "Network error"},
		{name: "empty body", status: http.StatusBadGateway, body: "", wantMessage: "Network error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				io.WriteString(w, tt.body)
			}))
			defer srv.Close()

			err := New(srv.URL).Get(context.Background(), "/x", nil)
			require.Error(t, err)

			var apiErr *Error
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, tt.wantMessage, apiErr.Message)
			assert.Equal(t, tt.status, apiErr.StatusCode)
			assert.Equal(t, tt.wantMessage, err.Error(), "callers see the message alone")
		})
	}
}

func TestTransportFailureIsNormalized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // unreachable on purpose

	err := New(srv.URL).Get(context.Background(), "/users", nil)
	require.Error(t, err)

	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.NotEmpty(t, apiErr.Message)
	assert.Zero(t, apiErr.StatusCode)
}

func TestDefaultBaseURL(t *testing.T) {
	c := New("")
	assert.Equal(t, DefaultBaseURL, c.baseURL)

	c = New("http://example.com/api/")
	assert.Equal(t, "http://example.com/api", c.baseURL, "trailing slash is trimmed")
}
