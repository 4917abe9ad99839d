package identity

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"labgas/config"
	deliverycontext "labgas/internal/delivery/context"
	"labgas/internal/domain/entity"
	domainerrors "labgas/internal/domain/errors"
	"labgas/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const (
	supabaseTokenPath  = "/auth/v1/token?grant_type=password"
	supabaseSignUpPath = "/auth/v1/signup"
	supabaseRecover    = "/auth/v1/recover"
)

// supabaseProvider talks to the GoTrue REST API of a Supabase project.
type supabaseProvider struct {
	baseURL    string
	anonKey    string
	httpClient *http.Client
	logger     *slog.Logger
}

// gotrueUser is the subset of the GoTrue user object the app reads.
type gotrueUser struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
	UserMetadata struct {
		Name string `json:"name"`
		Role string `json:"role"`
	} `json:"user_metadata"`
}

// gotrueSession is returned by the token endpoint and, with auto-confirm on,
// by signup. Without auto-confirm signup returns the bare user object.
type gotrueSession struct {
	AccessToken string      `json:"access_token"`
	User        *gotrueUser `json:"user"`
	gotrueUser
}

// gotrueError covers both the legacy and the current GoTrue error bodies.
type gotrueError struct {
	Msg              string `json:"msg"`
	Message          string `json:"message"`
	ErrorDescription string `json:"error_description"`
	Error            string `json:"error"`
}

func (e gotrueError) text() string {
	for _, s := range []string{e.Msg, e.Message, e.ErrorDescription, e.Error} {
		if s != "" {
			return s
		}
	}

	return ""
}

// NewSupabaseProvider creates a provider for the project at cfg.URL.
func NewSupabaseProvider(cfg *config.SupabaseConfig, logger *slog.Logger) service.IdentityProvider {
	return newSupabaseProvider(cfg, &http.Client{Timeout: cfg.Timeout}, logger)
}

func newSupabaseProvider(cfg *config.SupabaseConfig, client *http.Client, logger *slog.Logger) *supabaseProvider {
	return &supabaseProvider{
		baseURL:    strings.TrimRight(cfg.URL, "/"),
		anonKey:    cfg.AnonKey,
		httpClient: client,
		logger:     logger,
	}
}

func (p *supabaseProvider) SignIn(ctx context.Context, email, password string) (*entity.User, error) {
	var session gotrueSession
	if err := p.post(ctx, supabaseTokenPath, map[string]string{
		"email":    email,
		"password": password,
	}, &session); err != nil {
		return nil, asUpstream(err, http.StatusUnauthorized)
	}

	if session.User == nil {
		return nil, domainerrors.NewUpstreamError(errors.New("token response without user"), http.StatusUnauthorized, "")
	}

	return toUser(session.User, http.StatusUnauthorized)
}

func (p *supabaseProvider) SignUp(ctx context.Context, input *service.SignUpInput) (*entity.User, error) {
	body := map[string]any{
		"email":    input.Email,
		"password": input.Password,
		"data": map[string]string{
			"name": input.Name,
			"role": entity.RoleOrDefault(input.Role.String()).String(),
		},
	}

	var session gotrueSession
	if err := p.post(ctx, supabaseSignUpPath, body, &session); err != nil {
		return nil, asUpstream(err, http.StatusBadRequest)
	}

	user := session.User
	if user == nil {
		user = &session.gotrueUser
	}

	return toUser(user, http.StatusBadRequest)
}

func (p *supabaseProvider) ResetPassword(ctx context.Context, email string) error {
	if err := p.post(ctx, supabaseRecover, map[string]string{"email": email}, nil); err != nil {
		return asUpstream(err, http.StatusBadRequest)
	}

	deliverycontext.GetLoggerOrDefault(ctx, p.logger).InfoContext(ctx, "Password recovery email requested")

	return nil
}

// providerError is a non-2xx answer from GoTrue.
type providerError struct {
	status  int
	message string
}

func (e *providerError) Error() string {
	return e.message
}

func (p *supabaseProvider) post(ctx context.Context, path string, payload, out any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return errors.WithStack(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("apikey", p.anonKey)
	req.Header.Set("Authorization", "Bearer "+p.anonKey)
	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		req.Header.Set(deliverycontext.HeaderXRequestID, requestID)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return errors.Wrap(err, "identity provider unreachable")
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.Wrap(err, "read identity provider response")
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		var ge gotrueError
		_ = json.Unmarshal(raw, &ge)

		message := ge.text()
		if message == "" {
			message = http.StatusText(resp.StatusCode)
		}

		return &providerError{status: resp.StatusCode, message: message}
	}

	if out == nil || len(raw) == 0 {
		return nil
	}

	return errors.Wrap(json.Unmarshal(raw, out), "decode identity provider response")
}

func asUpstream(err error, httpCode int) error {
	var pe *providerError
	if errors.As(err, &pe) {
		return domainerrors.NewUpstreamError(err, httpCode, pe.message)
	}

	return domainerrors.NewUpstreamError(err, httpCode, "")
}

// toUser maps a GoTrue user. A malformed id is answered with httpCode, the
// status of the calling operation.
func toUser(u *gotrueUser, httpCode int) (*entity.User, error) {
	id, err := uuid.Parse(u.ID)
	if err != nil {
		return nil, domainerrors.NewUpstreamError(errors.Wrap(err, "parse user id"), httpCode, "")
	}

	return &entity.User{
		ID:        id,
		Email:     u.Email,
		Name:      u.UserMetadata.Name,
		Role:      entity.RoleOrDefault(u.UserMetadata.Role),
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}, nil
}
