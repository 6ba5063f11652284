package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "bazaar/internal/delivery/context"
	"bazaar/internal/domain/entity"
	"bazaar/internal/domain/repository"
	"bazaar/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// notificationTitles are the push titles shown for each inbox type.
var notificationTitles = map[entity.NotificationType]string{
	entity.NotificationTypeOrder:         "New order",
	entity.NotificationTypeOrderApproved: "Order approved",
	entity.NotificationTypeOrderDeclined: "Order declined",
	entity.NotificationTypeReview:        "New review",
	entity.NotificationTypeMessage:       "New message",
	entity.NotificationTypeApproval:      "Approval update",
}

// notificationSink stores an inbox entry, then hands it to the event
// publisher so the push worker can deliver it to the user's devices.
type notificationSink struct {
	notificationRepo repository.NotificationRepository
	publisher        service.EventPublisher
	emailSender      service.EmailSender
	logger           *slog.Logger
}

// NotificationSinkParams holds dependencies for the notification sink, injected by Fx.
type NotificationSinkParams struct {
	fx.In

	NotificationRepo repository.NotificationRepository
	Publisher        service.EventPublisher
	EmailSender      service.EmailSender
	Logger           *slog.Logger
}

// NewNotificationSink is the constructor for notificationSink.
func NewNotificationSink(params NotificationSinkParams) service.NotificationSink {
	return &notificationSink{
		notificationRepo: params.NotificationRepo,
		publisher:        params.Publisher,
		emailSender:      params.EmailSender,
		logger:           params.Logger,
	}
}

func (s *notificationSink) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// Notify persists the inbox entry and publishes the real-time event. The entry
// stays stored when publishing fails.
func (s *notificationSink) Notify(ctx context.Context, targetUserID uuid.UUID, input service.NotificationInput) error {
	notification := &entity.Notification{
		ID:        uuid.New(),
		UserID:    targetUserID,
		Type:      input.Type,
		Content:   input.Content,
		Link:      input.Link,
		CreatedAt: time.Now(),
	}

	if err := s.notificationRepo.Create(ctx, notification); err != nil {
		return errors.Wrap(err, "failed to store notification")
	}

	event := &service.NotificationEvent{
		RequestID:      deliverycontext.GetRequestIDFromContext(ctx),
		NotificationID: notification.ID.String(),
		UserID:         targetUserID.String(),
		Event:          input.Event,
		Title:          notificationTitle(input.Type),
		Body:           input.Content,
		Link:           input.Link,
		Data:           input.Data,
	}

	if err := s.publisher.PublishNotificationEvent(ctx, event); err != nil {
		return errors.Wrapf(err, "failed to publish notification %s", notification.ID)
	}

	s.log(ctx).Debug("Notification dispatched",
		slog.String("notificationID", event.NotificationID),
		slog.String("userID", event.UserID),
		slog.String("event", event.Event),
	)

	return nil
}

// SendEmail sends a plain-text email. An empty address is skipped.
func (s *notificationSink) SendEmail(ctx context.Context, address, subject, body string) error {
	address = strings.TrimSpace(address)
	if address == "" {
		s.log(ctx).Debug("Skipping email without recipient", slog.String("subject", subject))

		return nil
	}

	if err := s.emailSender.Send(ctx, service.EmailMessage{
		To:      address,
		Subject: subject,
		Body:    body,
	}); err != nil {
		return errors.Wrap(err, "failed to send email")
	}

	return nil
}

func notificationTitle(notificationType entity.NotificationType) string {
	if title, ok := notificationTitles[notificationType]; ok {
		return title
	}

	return "Notification"
}
