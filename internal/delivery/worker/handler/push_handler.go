package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"maps"
	"net/http"
	"strings"

	"bazaar/config"
	deliverycontext "bazaar/internal/delivery/context"
	"bazaar/internal/domain/constants"
	"bazaar/internal/domain/repository"
	"bazaar/internal/domain/service"
	"bazaar/internal/infra/pubsub"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

const maxBatchTokens = service.MaxMulticastTokens

// retryableError wraps an error to indicate it should trigger a Pub/Sub retry
type retryableError struct {
	err error
}

func (e *retryableError) Error() string {
	return fmt.Sprintf("retryable: %v", e.err)
}

func (e *retryableError) Unwrap() error {
	return e.err
}

func newRetryableError(err error) error {
	return &retryableError{err: err}
}

func isRetryableError(err error) bool {
	var re *retryableError

	return errors.As(err, &re)
}

// deliveryResult summarises one event's fan-out.
type deliveryResult struct {
	sent    int
	failed  int
	removed int64
}

// PushHandler delivers notification events to the recipient's devices.
type PushHandler struct {
	verifyPushAuth bool
	logger         *slog.Logger
	pushSvc        service.PushService
	deviceRepo     repository.DeviceRepository
	verifyToken    func(req *http.Request) error
}

// PushHandlerParams holds dependencies for the PushHandler
type PushHandlerParams struct {
	fx.In

	Config     *config.Config
	Logger     *slog.Logger
	PushSvc    service.PushService
	DeviceRepo repository.DeviceRepository
}

// NewPushHandler creates a new Pub/Sub push handler
func NewPushHandler(params PushHandlerParams) *PushHandler {
	// Google signs push requests; the local HTTP publisher does not.
	verifyPushAuth := params.Config.PubSub != nil &&
		params.Config.PubSub.Provider == constants.PubSubProviderGoogle &&
		params.Config.Env.Env != constants.EnvDevelop

	return &PushHandler{
		verifyPushAuth: verifyPushAuth,
		logger:         params.Logger,
		pushSvc:        params.PushSvc,
		deviceRepo:     params.DeviceRepo,
		verifyToken:    verifyPubSubToken,
	}
}

// HandlePush handles incoming Pub/Sub push messages. A 503 asks Pub/Sub to
// redeliver; malformed or undeliverable events are acknowledged with 200.
func (h *PushHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()

	if h.verifyPushAuth {
		if err := h.verifyToken(c.Request()); err != nil {
			h.logger.Warn("[Worker] Invalid Pub/Sub token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	var pushMsg pubsub.PushEnvelope
	if err := c.Bind(&pushMsg); err != nil {
		h.logger.Error("[Worker] Failed to parse push message", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	data, err := base64.StdEncoding.DecodeString(pushMsg.Message.Data)
	if err != nil {
		h.logger.Error("[Worker] Failed to decode message data", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	var event service.NotificationEvent
	if err := json.Unmarshal(data, &event); err != nil {
		h.logger.Error("[Worker] Failed to parse notification event", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	requestID := h.extractRequestID(ctx, &pushMsg, &event)
	reqLogger := h.logger.With(slog.String("request_id", requestID))
	ctx = deliverycontext.WithRequestID(ctx, requestID)
	ctx = deliverycontext.WithLogger(ctx, reqLogger)

	reqLogger.Info("[Worker] Processing notification event",
		slog.String("notification_id", event.NotificationID),
		slog.String("event", event.Event),
		slog.String("user_id", event.UserID),
	)

	result, err := h.deliver(ctx, &event)
	if err != nil {
		reqLogger.Error("[Worker] Failed to deliver notification",
			slog.String("notification_id", event.NotificationID),
			slog.Any("error", err),
			slog.Bool("retryable", isRetryableError(err)),
		)
		if isRetryableError(err) {
			return c.NoContent(http.StatusServiceUnavailable)
		}

		return c.NoContent(http.StatusOK)
	}

	reqLogger.Info("[Worker] Notification delivered",
		slog.String("notification_id", event.NotificationID),
		slog.Int("sent", result.sent),
		slog.Int("failed", result.failed),
		slog.Int64("devices_removed", result.removed),
	)

	return c.NoContent(http.StatusOK)
}

// extractRequestID picks the trace id from message attributes, then the
// event payload, then the inbound request, and mints one otherwise.
func (h *PushHandler) extractRequestID(ctx context.Context, pushMsg *pubsub.PushEnvelope, event *service.NotificationEvent) string {
	if requestID, ok := pushMsg.Message.Attributes["request_id"]; ok && requestID != "" {
		return requestID
	}

	if event.RequestID != "" {
		return event.RequestID
	}

	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		return requestID
	}

	return uuid.New().String()
}

// deliver sends the event to every active device of the recipient and
// forgets devices whose tokens the provider rejected.
func (h *PushHandler) deliver(ctx context.Context, event *service.NotificationEvent) (deliveryResult, error) {
	var result deliveryResult

	userID, err := uuid.Parse(event.UserID)
	if err != nil {
		return result, errors.Wrap(err, "invalid recipient id")
	}

	tokens, err := h.deviceRepo.FindActiveTokensByUser(ctx, userID)
	if err != nil {
		return result, newRetryableError(errors.Wrap(err, "failed to load devices"))
	}

	if len(tokens) == 0 {
		deliverycontext.GetLoggerOrDefault(ctx, h.logger).Info("[Worker] Recipient has no active devices",
			slog.String("user_id", event.UserID),
		)

		return result, nil
	}

	msg := service.PushMessage{Title: event.Title, Body: event.Body, Data: pushData(event)}
	var invalidTokens []string
	var lastErr error

	for start := 0; start < len(tokens); start += maxBatchTokens {
		batch := tokens[start:min(start+maxBatchTokens, len(tokens))]

		report, sendErr := h.pushSvc.Multicast(ctx, batch, msg)
		if sendErr != nil {
			deliverycontext.GetLoggerOrDefault(ctx, h.logger).Error("[Worker] Failed to send batch",
				slog.Int("batch_start", start),
				slog.Int("batch_size", len(batch)),
				slog.Any("error", sendErr),
			)
			result.failed += len(batch)
			lastErr = sendErr

			continue
		}

		result.sent += report.Sent
		result.failed += report.Failed
		invalidTokens = append(invalidTokens, report.InvalidTokens...)
	}

	if len(invalidTokens) > 0 {
		removed, err := h.deviceRepo.DeleteByTokens(ctx, invalidTokens)
		if err != nil {
			deliverycontext.GetLoggerOrDefault(ctx, h.logger).Warn("[Worker] Failed to remove invalid devices",
				slog.Int("token_count", len(invalidTokens)),
				slog.Any("error", err),
			)
		}
		result.removed = removed
	}

	// Retry only when nothing got through; partial delivery would duplicate pushes.
	if lastErr != nil && result.sent == 0 {
		return result, newRetryableError(errors.Wrap(lastErr, "push provider unavailable"))
	}

	return result, nil
}

// pushData is the FCM data payload: the event's own data plus routing keys
// the client uses to open the right screen.
func pushData(event *service.NotificationEvent) map[string]string {
	data := make(map[string]string, len(event.Data)+3)
	maps.Copy(data, event.Data)
	data["notification_id"] = event.NotificationID
	data["event"] = event.Event
	if event.Link != "" {
		data["link"] = event.Link
	}

	return data
}

// verifyPubSubToken verifies the OIDC token Google attaches to push requests.
func verifyPubSubToken(req *http.Request) error {
	authHeader := req.Header.Get("Authorization")
	if authHeader == "" {
		return errors.New("missing authorization header")
	}

	token, found := strings.CutPrefix(authHeader, "Bearer ")
	if !found {
		return errors.New("invalid authorization header format")
	}

	// The audience is the push endpoint URL configured on the subscription.
	scheme := "https"
	if req.TLS == nil {
		scheme = "http"
	}
	audience := fmt.Sprintf("%s://%s%s", scheme, req.Host, req.URL.Path)

	payload, err := idtoken.Validate(req.Context(), token, audience)
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}

	if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}

	if emailVerified, ok := payload.Claims["email_verified"].(bool); ok && !emailVerified {
		return errors.New("email not verified")
	}

	return nil
}
