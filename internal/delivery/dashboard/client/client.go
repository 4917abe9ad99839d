// Package client talks to the REST API on behalf of the dashboard.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"labgas/config"
	"labgas/internal/delivery/api/response"
	"labgas/internal/delivery/api/router/handler"
	deliverycontext "labgas/internal/delivery/context"
	"labgas/internal/domain/entity"

	"github.com/pkg/errors"
)

const defaultTimeout = 10 * time.Second

// APIError is a non-2xx answer of the API.
type APIError struct {
	Status  int
	Code    string
	Message string
	Details string
}

func (e *APIError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("api %d %s: %s: %s", e.Status, e.Code, e.Message, e.Details)
	}

	return fmt.Sprintf("api %d %s: %s", e.Status, e.Code, e.Message)
}

// IsUnauthorized reports whether err means the session token is no longer accepted.
func IsUnauthorized(err error) bool {
	var apiErr *APIError

	return errors.As(err, &apiErr) && apiErr.Status == http.StatusUnauthorized
}

// Session is the result of a successful login.
type Session struct {
	Token string       `json:"token"`
	User  *entity.User `json:"user"`
}

// Client is a typed wrapper over the REST API.
type Client struct {
	baseURL string
	http    *http.Client
	logger  *slog.Logger
}

// New builds a client for the configured API base URL.
func New(cfg *config.Config, logger *slog.Logger) (*Client, error) {
	if cfg.Dashboard == nil || cfg.Dashboard.APIBaseURL == "" {
		return nil, errors.New("dashboard.apiBaseUrl is required")
	}

	return NewWithHTTPClient(cfg.Dashboard.APIBaseURL, &http.Client{Timeout: defaultTimeout}, logger), nil
}

// NewWithHTTPClient builds a client around httpClient.
func NewWithHTTPClient(baseURL string, httpClient *http.Client, logger *slog.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    httpClient,
		logger:  logger,
	}
}

// --- Auth ---

func (c *Client) Login(ctx context.Context, email, password string) (*Session, error) {
	var out Session
	if err := c.do(ctx, http.MethodPost, "/auth/login", "", handler.LoginRequest{Email: email, Password: password}, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

func (c *Client) Register(ctx context.Context, req handler.RegisterRequest) error {
	return c.do(ctx, http.MethodPost, "/auth/register", "", req, nil)
}

func (c *Client) ResetPassword(ctx context.Context, email string) error {
	return c.do(ctx, http.MethodPost, "/auth/reset-password", "", handler.ResetPasswordRequest{Email: email}, nil)
}

func (c *Client) Logout(ctx context.Context, token string) error {
	return c.do(ctx, http.MethodPost, "/auth/logout", token, nil, nil)
}

func (c *Client) Me(ctx context.Context, token string) (*entity.Identity, error) {
	var out entity.Identity
	if err := c.do(ctx, http.MethodGet, "/auth/me", token, nil, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

func (c *Client) Stats(ctx context.Context, token string) (*entity.RecordCounts, error) {
	var out entity.RecordCounts
	if err := c.do(ctx, http.MethodGet, "/stats", token, nil, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

// --- Cylinders ---

// Cylinders lists the caller's cylinders. An empty status lists all of them.
func (c *Client) Cylinders(ctx context.Context, token string, status entity.CylinderStatus) ([]*entity.Cylinder, error) {
	path := "/cilindros"
	if status != "" {
		path += "?" + url.Values{"status": {string(status)}}.Encode()
	}

	var out []*entity.Cylinder
	if err := c.do(ctx, http.MethodGet, path, token, nil, &out); err != nil {
		return nil, err
	}

	return out, nil
}

func (c *Client) CreateCylinder(ctx context.Context, token string, req handler.CreateCylinderRequest) (*entity.Cylinder, error) {
	var out entity.Cylinder
	if err := c.do(ctx, http.MethodPost, "/cilindros", token, req, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

func (c *Client) UpdateCylinder(ctx context.Context, token string, id int64, req handler.UpdateCylinderRequest) error {
	return c.do(ctx, http.MethodPut, "/cilindros/"+strconv.FormatInt(id, 10), token, req, nil)
}

func (c *Client) DeleteCylinder(ctx context.Context, token string, id int64) error {
	return c.do(ctx, http.MethodDelete, "/cilindros/"+strconv.FormatInt(id, 10), token, nil, nil)
}

// CylinderLabel fetches the PNG label. It is the one route not wrapped in the JSON envelope.
func (c *Client) CylinderLabel(ctx context.Context, token string, id int64) ([]byte, error) {
	resp, err := c.send(ctx, http.MethodGet, "/cilindros/"+strconv.FormatInt(id, 10)+"/label", token, nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusMultipleChoices {
		return nil, decodeError(resp)
	}

	png, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "read label")
	}

	return png, nil
}

// --- Elements ---

func (c *Client) Elements(ctx context.Context, token string) ([]*entity.Element, error) {
	var out []*entity.Element
	if err := c.do(ctx, http.MethodGet, "/elementos", token, nil, &out); err != nil {
		return nil, err
	}

	return out, nil
}

func (c *Client) CreateElement(ctx context.Context, token string, req handler.CreateElementRequest) error {
	return c.do(ctx, http.MethodPost, "/elementos", token, req, nil)
}

func (c *Client) UpdateElement(ctx context.Context, token string, id int64, req handler.UpdateElementRequest) error {
	return c.do(ctx, http.MethodPut, "/elementos/"+strconv.FormatInt(id, 10), token, req, nil)
}

func (c *Client) DeleteElement(ctx context.Context, token string, id int64) error {
	return c.do(ctx, http.MethodDelete, "/elementos/"+strconv.FormatInt(id, 10), token, nil, nil)
}

// --- Samples ---

func (c *Client) Samples(ctx context.Context, token string) ([]*entity.SampleView, error) {
	var out []*entity.SampleView
	if err := c.do(ctx, http.MethodGet, "/amostras", token, nil, &out); err != nil {
		return nil, err
	}

	return out, nil
}

func (c *Client) CreateSample(ctx context.Context, token string, req handler.CreateSampleRequest) error {
	return c.do(ctx, http.MethodPost, "/amostras", token, req, nil)
}

func (c *Client) DeleteSample(ctx context.Context, token string, id int64) error {
	return c.do(ctx, http.MethodDelete, "/amostras/"+strconv.FormatInt(id, 10), token, nil, nil)
}

// --- Flame times ---

func (c *Client) FlameTimes(ctx context.Context, token string) ([]*entity.FlameTimeView, error) {
	var out []*entity.FlameTimeView
	if err := c.do(ctx, http.MethodGet, "/tempo-chama", token, nil, &out); err != nil {
		return nil, err
	}

	return out, nil
}

func (c *Client) CreateFlameTime(ctx context.Context, token string, req handler.CreateFlameTimeRequest) error {
	return c.do(ctx, http.MethodPost, "/tempo-chama", token, req, nil)
}

func (c *Client) DeleteFlameTime(ctx context.Context, token string, id int64) error {
	return c.do(ctx, http.MethodDelete, "/tempo-chama/"+strconv.FormatInt(id, 10), token, nil, nil)
}

func (c *Client) FlameTimeSummary(ctx context.Context, token string) (*entity.ConsumptionSummary, error) {
	var out entity.ConsumptionSummary
	if err := c.do(ctx, http.MethodGet, "/tempo-chama/summary", token, nil, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

// --- transport ---

// do sends body as JSON and decodes the envelope's data into out when out is non-nil.
func (c *Client) do(ctx context.Context, method, path, token string, body, out any) error {
	resp, err := c.send(ctx, method, path, token, body)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusMultipleChoices {
		return decodeError(resp)
	}

	if out == nil {
		return nil
	}

	envelope := response.SuccessResponse{Data: out}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return errors.Wrapf(err, "decode %s %s", method, path)
	}

	return nil
}

func (c *Client) send(ctx context.Context, method, path, token string, body any) (*http.Response, error) {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, errors.Wrap(err, "encode request")
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, errors.Wrap(err, "build request")
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		req.Header.Set(deliverycontext.HeaderXRequestID, requestID)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, c.logger).WarnContext(ctx, "API request failed",
			slog.String("method", method),
			slog.String("path", path),
			slog.Any("error", err),
		)

		return nil, errors.Wrapf(err, "%s %s", method, path)
	}

	return resp, nil
}

func decodeError(resp *http.Response) error {
	apiErr := &APIError{Status: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}

	var envelope struct {
		Error *struct {
			Code    string `json:"code"`
			Message string `json:"message"`
			Details any    `json:"details"`
		} `json:"error"`
	}
	if err := json.NewDecoder(io.LimitReader(resp.Body, 1<<16)).Decode(&envelope); err == nil && envelope.Error != nil {
		apiErr.Code = envelope.Error.Code
		apiErr.Message = envelope.Error.Message
		if envelope.Error.Details != nil {
			apiErr.Details = fmt.Sprint(envelope.Error.Details)
		}
	}

	return apiErr
}
