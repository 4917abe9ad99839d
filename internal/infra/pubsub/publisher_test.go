package pubsub

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"labgas/config"
	"labgas/internal/domain/constants"
	"labgas/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testEvent() *service.RecordEvent {
	return &service.RecordEvent{
		RequestID:  "req-1",
		Entity:     constants.EntityCylinder,
		Action:     constants.ActionUpdated,
		RecordID:   42,
		UserID:     "5b0e7d8c-4d89-4a55-9b3e-0d7c8f4f2a11",
		OccurredAt: time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestLocalHTTPPublisher_PushFormat(t *testing.T) {
	var got PushMessage
	var requestID string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID = r.Header.Get("X-Request-Id")
		body, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(body, &got)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	publisher := newLocalHTTPPublisher(srv.URL, srv.Client(), slog.New(slog.DiscardHandler))

	require.NoError(t, publisher.PublishRecordEvent(context.Background(), testEvent()))

	assert.Equal(t, "req-1", requestID)
	assert.Equal(t, localSubscription, got.Subscription)
	assert.Equal(t, "cylinder.updated.42", got.Message.MessageID)
	assert.Equal(t, "2024-06-01T12:00:00Z", got.Message.PublishTime)
	assert.Equal(t, "42", got.Message.Attributes["record_id"])
	assert.Equal(t, "cylinder", got.Message.Attributes["entity"])

	data, err := base64.StdEncoding.DecodeString(got.Message.Data)
	require.NoError(t, err)

	var decoded service.RecordEvent
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, int64(42), decoded.RecordID)
	assert.Equal(t, constants.ActionUpdated, decoded.Action)
}

func TestLocalHTTPPublisher_NonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	publisher := newLocalHTTPPublisher(srv.URL, srv.Client(), slog.New(slog.DiscardHandler))

	err := publisher.PublishRecordEvent(context.Background(), testEvent())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "503")
}

func TestNewPublisher_SelectsProvider(t *testing.T) {
	logger := slog.New(slog.DiscardHandler)
	ctx := context.Background()

	p, err := newPublisher(ctx, nil, logger)
	require.NoError(t, err)
	assert.IsType(t, &noopPublisher{}, p)
	require.NoError(t, p.PublishRecordEvent(ctx, testEvent()))

	p, err = newPublisher(ctx, &config.PubSubConfig{Provider: constants.PubSubProviderLocal, LocalEndpoint: "http://localhost:8085/push"}, logger)
	require.NoError(t, err)
	assert.IsType(t, &localHTTPPublisher{}, p)

	_, err = newPublisher(ctx, &config.PubSubConfig{Provider: constants.PubSubProviderLocal}, logger)
	require.Error(t, err)

	_, err = newPublisher(ctx, &config.PubSubConfig{Provider: constants.PubSubProviderGoogle, TopicID: "t"}, logger)
	require.Error(t, err)

	_, err = newPublisher(ctx, &config.PubSubConfig{Provider: "kafka"}, logger)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown pubsub provider")
}
