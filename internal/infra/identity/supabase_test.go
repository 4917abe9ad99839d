package identity

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"labgas/config"
	deliverycontext "labgas/internal/delivery/context"
	"labgas/internal/domain/entity"
	domainerrors "labgas/internal/domain/errors"
	"labgas/internal/domain/service"
	"labgas/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testUserID = "0f8fad5b-d9cb-469f-a165-70867728950e"

func newTestSupabase(t *testing.T, handler http.HandlerFunc) *supabaseProvider {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return newSupabaseProvider(&config.SupabaseConfig{
		URL:     srv.URL + "/",
		AnonKey: "anon-key",
		Timeout: time.Second,
	}, srv.Client(), slog.New(slog.DiscardHandler))
}

func TestSupabaseProvider_SignIn(t *testing.T) {
	p := newTestSupabase(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/auth/v1/token", r.URL.Path)
		assert.Equal(t, "password", r.URL.Query().Get("grant_type"))
		assert.Equal(t, "anon-key", r.Header.Get("apikey"))
		assert.Equal(t, "Bearer anon-key", r.Header.Get("Authorization"))
		assert.Equal(t, "req-7", r.Header.Get("X-Request-Id"))

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "lab@example.com", body["email"])

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"access_token": "gotrue-token",
			"user": {"id": "` + testUserID + `", "email": "lab@example.com",
			         "user_metadata": {"name": "Lab", "role": "admin"}}
		}`))
	})

	ctx := deliverycontext.WithRequestID(context.Background(), "req-7")

	user, err := p.SignIn(ctx, "lab@example.com", "secret")
	require.NoError(t, err)
	assert.Equal(t, testUserID, user.ID.String())
	assert.Equal(t, "Lab", user.Name)
	assert.Equal(t, entity.RoleAdmin, user.Role)
}

func TestSupabaseProvider_SignInRejected(t *testing.T) {
	p := newTestSupabase(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":"invalid_grant","error_description":"Invalid login credentials"}`))
	})

	_, err := p.SignIn(context.Background(), "lab@example.com", "wrong")
	require.Error(t, err)

	upstream, ok := errors.AsType[*domainerrors.UpstreamError](err)
	require.True(t, ok)
	assert.Equal(t, http.StatusUnauthorized, upstream.HTTPCode())
	assert.Equal(t, "Invalid login credentials", upstream.Message())
	assert.Equal(t, "UPSTREAM_ERROR", upstream.ErrorCode())
}

func TestSupabaseProvider_MalformedUserID(t *testing.T) {
	p := newTestSupabase(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"access_token": "t", "id": "not-a-uuid", "user": {"id": "not-a-uuid"}}`))
	})

	_, err := p.SignIn(context.Background(), "lab@example.com", "secret")
	upstream, ok := errors.AsType[*domainerrors.UpstreamError](err)
	require.True(t, ok)
	assert.Equal(t, http.StatusUnauthorized, upstream.HTTPCode())

	_, err = p.SignUp(context.Background(), &service.SignUpInput{Email: "lab@example.com", Password: "secret123"})
	upstream, ok = errors.AsType[*domainerrors.UpstreamError](err)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, upstream.HTTPCode())
}

func TestSupabaseProvider_SignUpWithoutSession(t *testing.T) {
	p := newTestSupabase(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/auth/v1/signup", r.URL.Path)

		var body struct {
			Data map[string]string `json:"data"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "viewer", body.Data["role"])
		assert.Equal(t, "Nova", body.Data["name"])

		_, _ = w.Write([]byte(`{"id": "` + testUserID + `", "email": "nova@example.com",
			"user_metadata": {"name": "Nova", "role": "viewer"}}`))
	})

	user, err := p.SignUp(context.Background(), &service.SignUpInput{
		Email:    "nova@example.com",
		Password: "secret123",
		Name:     "Nova",
	})
	require.NoError(t, err)
	assert.Equal(t, testUserID, user.ID.String())
	assert.Equal(t, entity.RoleViewer, user.Role)
}

func TestSupabaseProvider_SignUpProviderMessage(t *testing.T) {
	p := newTestSupabase(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`{"code":422,"error_code":"user_already_exists","msg":"User already registered"}`))
	})

	_, err := p.SignUp(context.Background(), &service.SignUpInput{Email: "lab@example.com", Password: "secret123"})

	upstream, ok := errors.AsType[*domainerrors.UpstreamError](err)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, upstream.HTTPCode())
	assert.Equal(t, "User already registered", upstream.Message())
}

func TestSupabaseProvider_ResetPassword(t *testing.T) {
	var called bool
	p := newTestSupabase(t, func(w http.ResponseWriter, r *http.Request) {
		called = true
		assert.Equal(t, "/auth/v1/recover", r.URL.Path)
		_, _ = w.Write([]byte(`{}`))
	})

	require.NoError(t, p.ResetPassword(context.Background(), "lab@example.com"))
	assert.True(t, called)
}

func TestSupabaseProvider_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	p := newSupabaseProvider(&config.SupabaseConfig{URL: url, AnonKey: "k"}, http.DefaultClient, slog.New(slog.DiscardHandler))

	err := p.ResetPassword(context.Background(), "lab@example.com")

	upstream, ok := errors.AsType[*domainerrors.UpstreamError](err)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, upstream.HTTPCode())
	assert.Contains(t, upstream.Message(), "unreachable")
}
