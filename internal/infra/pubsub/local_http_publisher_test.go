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

	"bazaar/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestLocalHTTPPublisher_PublishNotificationEvent(t *testing.T) {
	var received PushEnvelope
	var requestID, contentType string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID = r.Header.Get("X-Request-Id")
		contentType = r.Header.Get("Content-Type")
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	publisher := NewLocalHTTPPublisher(srv.URL, time.Second, discardLogger())
	publisher.(*localPushPublisher).now = func() time.Time {
		return time.Date(2026, 3, 1, 12, 0, 0, 0, time.FixedZone("UTC+8", 8*3600))
	}

	event := &service.NotificationEvent{
		RequestID:      "req-1",
		NotificationID: "n-1",
		UserID:         "u-1",
		Event:          "new_order",
		Title:          "New order",
		Body:           "You received a new order",
		Data:           map[string]string{"order_id": "o-1"},
	}

	require.NoError(t, publisher.PublishNotificationEvent(context.Background(), event))

	assert.Equal(t, "req-1", requestID)
	assert.Equal(t, "application/json", contentType)
	assert.Equal(t, localSubscription, received.Subscription)
	assert.Equal(t, "n-1", received.Message.MessageID)
	assert.Equal(t, "2026-03-01T04:00:00Z", received.Message.PublishTime)
	assert.Equal(t, "u-1", received.Message.Attributes[attrUserID])

	raw, err := base64.StdEncoding.DecodeString(received.Message.Data)
	require.NoError(t, err)

	var decoded service.NotificationEvent
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, *event, decoded)
}

func TestLocalHTTPPublisher_NonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "devices table locked", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	publisher := NewLocalHTTPPublisher(srv.URL, time.Second, discardLogger())
	err := publisher.PublishNotificationEvent(context.Background(), &service.NotificationEvent{NotificationID: "n-1", UserID: "u-1"})

	assert.ErrorContains(t, err, "non-success status: 503 devices table locked")
}

func TestLocalHTTPPublisher_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	endpoint := srv.URL
	srv.Close()

	publisher := NewLocalHTTPPublisher(endpoint, time.Second, discardLogger())
	err := publisher.PublishNotificationEvent(context.Background(), &service.NotificationEvent{NotificationID: "n-1", UserID: "u-1"})

	assert.ErrorContains(t, err, "failed to reach push endpoint")
	assert.NoError(t, publisher.Close())
}

func TestLocalHTTPPublisher_InvalidEventIsNotSent(t *testing.T) {
	called := false
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) { called = true }))
	defer srv.Close()

	publisher := NewLocalHTTPPublisher(srv.URL, time.Second, discardLogger())
	err := publisher.PublishNotificationEvent(context.Background(), &service.NotificationEvent{NotificationID: "n-1"})

	assert.ErrorContains(t, err, "missing ids")
	assert.False(t, called)
}
