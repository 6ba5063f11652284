package handler

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"bazaar/config"
	"bazaar/internal/domain/constants"
	"bazaar/internal/domain/service"
	"bazaar/internal/infra/pubsub"
	mockRepo "bazaar/internal/mocks/repository"
	mockService "bazaar/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type pushFixture struct {
	handler    *PushHandler
	pushSvc    *mockService.MockPushService
	deviceRepo *mockRepo.MockDeviceRepository
}

func newPushFixture(t *testing.T) pushFixture {
	pushSvc := mockService.NewMockPushService(t)
	deviceRepo := mockRepo.NewMockDeviceRepository(t)

	cfg := &config.Config{}
	cfg.Env.Env = constants.EnvDevelop

	return pushFixture{
		handler: NewPushHandler(PushHandlerParams{
			Config:     cfg,
			Logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
			PushSvc:    pushSvc,
			DeviceRepo: deviceRepo,
		}),
		pushSvc:    pushSvc,
		deviceRepo: deviceRepo,
	}
}

func pushRequest(t *testing.T, event service.NotificationEvent, attributes map[string]string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	payload, err := json.Marshal(event)
	require.NoError(t, err)

	var msg pubsub.PushEnvelope
	msg.Message.Data = base64.StdEncoding.EncodeToString(payload)
	msg.Message.Attributes = attributes
	msg.Message.MessageID = "m-1"
	body, err := json.Marshal(msg)
	require.NoError(t, err)

	return rawPushRequest(string(body))
}

func rawPushRequest(body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	return echo.New().NewContext(req, rec), rec
}

func TestPushHandler_DeliversToActiveDevices(t *testing.T) {
	fx := newPushFixture(t)
	userID := uuid.New()
	event := service.NotificationEvent{
		NotificationID: "n-1",
		UserID:         userID.String(),
		Event:          constants.EventNewOrder,
		Title:          "New order",
		Body:           "You have a new order",
		Link:           "/orders/o-1",
		Data:           map[string]string{"order_id": "o-1"},
	}

	fx.deviceRepo.EXPECT().FindActiveTokensByUser(mock.Anything, userID).Return([]string{"a", "b", "stale"}, nil)
	fx.pushSvc.EXPECT().
		Multicast(mock.Anything, []string{"a", "b", "stale"}, service.PushMessage{
			Title: "New order",
			Body:  "You have a new order",
			Data: map[string]string{
				"order_id":        "o-1",
				"notification_id": "n-1",
				"event":           constants.EventNewOrder,
				"link":            "/orders/o-1",
			},
		}).
		Return(&service.PushReport{Sent: 2, Failed: 1, InvalidTokens: []string{"stale"}}, nil)
	fx.deviceRepo.EXPECT().DeleteByTokens(mock.Anything, []string{"stale"}).Return(int64(1), nil)

	c, rec := pushRequest(t, event, nil)

	require.NoError(t, fx.handler.HandlePush(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_SplitsIntoBatches(t *testing.T) {
	fx := newPushFixture(t)
	userID := uuid.New()

	tokens := make([]string, maxBatchTokens+20)
	for i := range tokens {
		tokens[i] = fmt.Sprintf("token-%d", i)
	}

	fx.deviceRepo.EXPECT().FindActiveTokensByUser(mock.Anything, userID).Return(tokens, nil)
	fx.pushSvc.EXPECT().
		Multicast(mock.Anything, tokens[:maxBatchTokens], mock.Anything).
		Return(&service.PushReport{Sent: maxBatchTokens}, nil).Once()
	fx.pushSvc.EXPECT().
		Multicast(mock.Anything, tokens[maxBatchTokens:], mock.Anything).
		Return(&service.PushReport{Sent: 20}, nil).Once()

	c, rec := pushRequest(t, service.NotificationEvent{UserID: userID.String(), Title: "t"}, nil)

	require.NoError(t, fx.handler.HandlePush(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_RetryDecisions(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name       string
		setup      func(fx pushFixture)
		wantStatus int
	}{
		{
			name: "device lookup fails",
			setup: func(fx pushFixture) {
				fx.deviceRepo.EXPECT().FindActiveTokensByUser(mock.Anything, userID).Return(nil, errors.New("connection refused"))
			},
			wantStatus: http.StatusServiceUnavailable,
		},
		{
			name: "provider down for every batch",
			setup: func(fx pushFixture) {
				fx.deviceRepo.EXPECT().FindActiveTokensByUser(mock.Anything, userID).Return([]string{"a"}, nil)
				fx.pushSvc.EXPECT().Multicast(mock.Anything, []string{"a"}, mock.Anything).
					Return(nil, errors.New("unavailable"))
			},
			wantStatus: http.StatusServiceUnavailable,
		},
		{
			name: "no devices",
			setup: func(fx pushFixture) {
				fx.deviceRepo.EXPECT().FindActiveTokensByUser(mock.Anything, userID).Return(nil, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "invalid token cleanup fails",
			setup: func(fx pushFixture) {
				fx.deviceRepo.EXPECT().FindActiveTokensByUser(mock.Anything, userID).Return([]string{"a"}, nil)
				fx.pushSvc.EXPECT().Multicast(mock.Anything, []string{"a"}, mock.Anything).
					Return(&service.PushReport{Failed: 1, InvalidTokens: []string{"a"}}, nil)
				fx.deviceRepo.EXPECT().DeleteByTokens(mock.Anything, []string{"a"}).Return(int64(0), errors.New("timeout"))
			},
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := newPushFixture(t)
			tt.setup(fx)

			c, rec := pushRequest(t, service.NotificationEvent{UserID: userID.String()}, nil)

			require.NoError(t, fx.handler.HandlePush(c))
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestPushHandler_MalformedInput(t *testing.T) {
	t.Run("not json", func(t *testing.T) {
		fx := newPushFixture(t)
		c, rec := rawPushRequest("{")

		require.NoError(t, fx.handler.HandlePush(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("data not base64", func(t *testing.T) {
		fx := newPushFixture(t)
		c, rec := rawPushRequest(`{"message":{"data":"***"}}`)

		require.NoError(t, fx.handler.HandlePush(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("bad recipient is acknowledged", func(t *testing.T) {
		fx := newPushFixture(t)
		c, rec := pushRequest(t, service.NotificationEvent{UserID: "not-a-uuid"}, nil)

		require.NoError(t, fx.handler.HandlePush(c))
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestPushHandler_RejectsUnverifiedPush(t *testing.T) {
	fx := newPushFixture(t)
	fx.handler.verifyPushAuth = true
	fx.handler.verifyToken = func(*http.Request) error { return errors.New("missing authorization header") }

	c, rec := pushRequest(t, service.NotificationEvent{UserID: uuid.New().String()}, nil)

	require.NoError(t, fx.handler.HandlePush(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestPushHandler_ExtractRequestID(t *testing.T) {
	h := newPushFixture(t).handler
	ctx := httptest.NewRequest(http.MethodPost, "/push", nil).Context()

	var msg pubsub.PushEnvelope
	msg.Message.Attributes = map[string]string{"request_id": "from-attr"}
	assert.Equal(t, "from-attr", h.extractRequestID(ctx, &msg, &service.NotificationEvent{RequestID: "from-event"}))

	assert.Equal(t, "from-event", h.extractRequestID(ctx, &pubsub.PushEnvelope{}, &service.NotificationEvent{RequestID: "from-event"}))

	generated := h.extractRequestID(ctx, &pubsub.PushEnvelope{}, &service.NotificationEvent{})
	_, err := uuid.Parse(generated)
	assert.NoError(t, err)
}

func TestVerifyPubSubToken_HeaderChecks(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/push", nil)
	assert.ErrorContains(t, verifyPubSubToken(req), "missing authorization header")

	req.Header.Set("Authorization", "Basic abc")
	assert.ErrorContains(t, verifyPubSubToken(req), "invalid authorization header format")
}
