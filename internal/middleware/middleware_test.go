package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"petclinic/internal/platform/logger"
	"petclinic/internal/ports/auth"
)

type stubVerifier struct {
	claims auth.Claims
	err    error
}

func (s stubVerifier) Verify(ctx context.Context, token string) (auth.Claims, error) {
	if token != "good" {
		return auth.Claims{}, errors.New("bad token")
	}
	return s.claims, s.err
}

func captureClaims(got *auth.Claims, ok *bool) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*got, *ok = GetClaims(r.Context())
	})
}

func TestAuthContext_DevHeader(t *testing.T) {
	var got auth.Claims
	var ok bool
	h := AuthContext(nil)(captureClaims(&got, &ok))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(DebugUserHeader, " vet-7 ")
	req.Header.Set(DebugClinicHeader, "c1")
	h.ServeHTTP(httptest.NewRecorder(), req)

	require.True(t, ok)
	assert.Equal(t, "vet-7", got.UserID)
	assert.Equal(t, "c1", got.ClinicID)

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	assert.False(t, ok)
}

func TestAuthContext_Verifier(t *testing.T) {
	var got auth.Claims
	var ok bool
	h := AuthContext(stubVerifier{claims: auth.Claims{UserID: "u1"}})(captureClaims(&got, &ok))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "bearer good")
	h.ServeHTTP(httptest.NewRecorder(), req)
	require.True(t, ok)
	assert.Equal(t, "u1", got.UserID)

	// token inválido: sigue sin claims
	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer bad")
	h.ServeHTTP(httptest.NewRecorder(), req)
	assert.False(t, ok)

	// el header de debug se ignora con verifier
	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(DebugUserHeader, "intruder")
	h.ServeHTTP(httptest.NewRecorder(), req)
	assert.False(t, ok)
}

func TestBearerToken(t *testing.T) {
	assert.Equal(t, "abc", bearerToken("Bearer abc"))
	assert.Equal(t, "abc", bearerToken("  BEARER   abc "))
	assert.Empty(t, bearerToken("Basic abc"))
	assert.Empty(t, bearerToken("Bearer"))
	assert.Empty(t, bearerToken(""))
}

func TestAccessLog(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	h := chimw.RequestID(AuthContext(nil)(AccessLog(logger.NewWithCore(core))(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}),
	)))

	req := httptest.NewRequest(http.MethodGet, "/owners/99", nil)
	req.Header.Set(DebugUserHeader, "vet-1")
	req.Header.Set(DebugClinicHeader, "c1")
	h.ServeHTTP(httptest.NewRecorder(), req)

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, zapcore.WarnLevel, entries[0].Level)

	fields := entries[0].ContextMap()
	assert.Equal(t, "/owners/99", fields["path"])
	assert.EqualValues(t, http.StatusNotFound, fields["status"])
	assert.Equal(t, "vet-1", fields["user_id"])
	assert.Equal(t, "c1", fields["clinic_id"])
	assert.NotEmpty(t, fields["request_id"])
}
