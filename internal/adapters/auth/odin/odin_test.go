package odin

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/juju/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newOdin(t *testing.T, h http.HandlerFunc) *Verifier {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	c, err := NewClient(Config{BaseURL: srv.URL, APIKey: "secret"})
	require.NoError(t, err)
	return NewVerifier(c)
}

func TestVerify_OK(t *testing.T) {
	v := newOdin(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, verifyPath, r.URL.Path)
		assert.Equal(t, "secret", r.Header.Get("X-Api-Key"))
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		_ = json.NewEncoder(w).Encode(map[string]any{
			"user_id":   " vet-1 ",
			"email":     "vet@clinic.test",
			"clinic_id": "c1",
			"roles":     []string{"vet"},
		})
	})

	claims, err := v.Verify(context.Background(), "tok")
	require.NoError(t, err)
	assert.Equal(t, "vet-1", claims.UserID)
	assert.Equal(t, "c1", claims.ClinicID)
	assert.True(t, claims.HasRole("VET"))
}

func TestVerify_Unauthorized(t *testing.T) {
	v := newOdin(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	})

	_, err := v.Verify(context.Background(), "tok")
	assert.True(t, errors.Is(err, ErrUnauthorized), "got %v", err)
}

func TestVerify_Upstream(t *testing.T) {
	v := newOdin(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	_, err := v.Verify(context.Background(), "tok")
	assert.True(t, errors.Is(err, ErrUpstream), "got %v", err)
}

func TestVerify_MissingUserID(t *testing.T) {
	v := newOdin(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"email":"x@y"}`))
	})

	_, err := v.Verify(context.Background(), "tok")
	assert.True(t, errors.Is(err, ErrUpstream), "got %v", err)
}

func TestVerify_EmptyTokenAndNotConfigured(t *testing.T) {
	c, err := NewClient(Config{})
	require.NoError(t, err)
	v := NewVerifier(c)

	_, err = v.Verify(context.Background(), "  ")
	assert.True(t, errors.Is(err, ErrTokenEmpty))

	_, err = v.Verify(context.Background(), "tok")
	assert.True(t, errors.Is(err, ErrNotConfigured))
}
