package odin

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"purrlog/internal/ports/auth"
)

func newTestVerifier(t *testing.T, h http.HandlerFunc) *Verifier {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	c, err := NewClient(Config{BaseURL: srv.URL, APIKey: "k"})
	require.NoError(t, err)
	return NewVerifier(c)
}

func TestVerify_OK(t *testing.T) {
	v := newTestVerifier(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, verifyPath, r.URL.Path)
		assert.Equal(t, "k", r.Header.Get("X-Api-Key"))
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		_ = json.NewEncoder(w).Encode(map[string]string{"user_id": " u-1 ", "email": "a@b.c"})
	})

	claims, err := v.Verify(context.Background(), "tok")
	require.NoError(t, err)
	assert.Equal(t, auth.Claims{UserID: "u-1", Email: "a@b.c"}, claims)
}

func TestVerify_Unauthorized(t *testing.T) {
	v := newTestVerifier(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})
	_, err := v.Verify(context.Background(), "tok")
	assert.ErrorIs(t, err, auth.ErrUnauthorized)

	_, err = v.Verify(context.Background(), " ")
	assert.ErrorIs(t, err, auth.ErrUnauthorized)
}

func TestVerify_Upstream(t *testing.T) {
	v := newTestVerifier(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})
	_, err := v.Verify(context.Background(), "tok")
	assert.ErrorIs(t, err, ErrOdinUpstream)

	v = newTestVerifier(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"email":"x"}`))
	})
	_, err = v.Verify(context.Background(), "tok")
	assert.ErrorIs(t, err, ErrOdinUpstream)
}

func TestNewClient_NotConfigured(t *testing.T) {
	_, err := NewClient(Config{BaseURL: "http://odin"})
	assert.ErrorIs(t, err, ErrOdinNotConfigured)
}
