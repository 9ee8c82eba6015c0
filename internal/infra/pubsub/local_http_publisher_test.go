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

	"petfeeder/config"
	"petfeeder/internal/domain/constants"
	"petfeeder/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalHTTPPublisher_PublishMessagesQueued(t *testing.T) {
	var (
		got       PushMessage
		requestID string
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID = r.Header.Get("X-Request-Id")
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	publisher := NewLocalHTTPPublisher(srv.URL, slog.New(slog.NewTextHandler(io.Discard, nil)))
	event := &service.MessagesQueuedEvent{RequestID: "req-1", MessageIDs: []string{"a", "b"}}

	require.NoError(t, publisher.PublishMessagesQueued(context.Background(), event))

	assert.Equal(t, "req-1", requestID)
	assert.Equal(t, "2", got.Message.Attributes["message_count"])
	assert.Equal(t, "messages_queued", got.Message.Attributes["event"])
	assert.Equal(t, localPushSubscription, got.Subscription)
	assert.Equal(t, "req-1", got.Message.Attributes["request_id"])

	data, err := base64.StdEncoding.DecodeString(got.Message.Data)
	require.NoError(t, err)
	var decoded service.MessagesQueuedEvent
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, []string{"a", "b"}, decoded.MessageIDs)
}

func TestLocalHTTPPublisher_NonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	publisher := NewLocalHTTPPublisher(srv.URL, slog.New(slog.NewTextHandler(io.Discard, nil)))

	err := publisher.PublishMessagesQueued(context.Background(), &service.MessagesQueuedEvent{MessageIDs: []string{"a"}})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "503")
}

func TestSelectPublisher(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	t.Run("no provider disables wakeups", func(t *testing.T) {
		publisher, err := selectPublisher(context.Background(), nil, logger)

		require.NoError(t, err)
		assert.IsType(t, disabledPublisher{}, publisher)
		assert.NoError(t, publisher.PublishMessagesQueued(context.Background(), &service.MessagesQueuedEvent{}))
	})

	t.Run("local provider", func(t *testing.T) {
		publisher, err := selectPublisher(context.Background(), &config.PubSubConfig{
			Provider:      constants.PubSubProviderLocal,
			LocalEndpoint: "http://localhost:8081/push",
		}, logger)

		require.NoError(t, err)
		assert.IsType(t, &localHTTPPublisher{}, publisher)
	})

	rejected := map[string]*config.PubSubConfig{
		"local without endpoint": {Provider: constants.PubSubProviderLocal},
		"google without project": {Provider: constants.PubSubProviderGoogle, TopicID: "wakeup"},
		"google without topic":   {Provider: constants.PubSubProviderGoogle, ProjectID: "feeder"},
		"unknown provider":       {Provider: "kafka"},
	}
	for name, cfg := range rejected {
		t.Run(name, func(t *testing.T) {
			_, err := selectPublisher(context.Background(), cfg, logger)

			assert.Error(t, err)
		})
	}
}
