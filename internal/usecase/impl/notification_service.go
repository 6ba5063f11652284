package impl

import (
	"context"
	"log/slog"

	deliverycontext "bazaar/internal/delivery/context"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/repository"
	"bazaar/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	defaultNotificationPageSize = 20
	maxNotificationPageSize     = 100
)

// notificationService implements the NotificationUsecase interface over the
// recipient's inbox.
type notificationService struct {
	notificationRepo repository.NotificationRepository
	logger           *slog.Logger
}

// NotificationServiceParams holds dependencies for NotificationService, injected by Fx.
type NotificationServiceParams struct {
	fx.In

	NotificationRepo repository.NotificationRepository
	Logger           *slog.Logger
}

// NewNotificationService creates a new notification service instance
func NewNotificationService(params NotificationServiceParams) usecase.NotificationUsecase {
	return &notificationService{
		notificationRepo: params.NotificationRepo,
		logger:           params.Logger,
	}
}

func (s *notificationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// ListNotifications returns one page of the inbox, newest first, with the
// total for the current filter and the overall unread count.
func (s *notificationService) ListNotifications(ctx context.Context, userID uuid.UUID, query usecase.NotificationQuery) (*usecase.NotificationPage, error) {
	page := max(query.Page, 1)
	limit := query.Limit
	if limit <= 0 {
		limit = defaultNotificationPageSize
	}
	limit = min(limit, maxNotificationPageSize)

	items, err := s.notificationRepo.FindByUser(ctx, userID, repository.NotificationFilter{
		UnreadOnly: query.UnreadOnly,
		Limit:      limit,
		Offset:     (page - 1) * limit,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list notifications")
	}

	total, err := s.notificationRepo.CountByUser(ctx, userID, query.UnreadOnly)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count notifications")
	}

	unread := total
	if !query.UnreadOnly {
		unread, err = s.notificationRepo.CountByUser(ctx, userID, true)
		if err != nil {
			return nil, errors.Wrap(err, "failed to count unread notifications")
		}
	}

	return &usecase.NotificationPage{
		Items:       items,
		Total:       total,
		UnreadCount: unread,
		Page:        page,
		Limit:       limit,
	}, nil
}

// MarkAsRead flags one notification of the user as read.
func (s *notificationService) MarkAsRead(ctx context.Context, userID, notificationID uuid.UUID) error {
	if err := s.notificationRepo.MarkAsRead(ctx, notificationID, userID); err != nil {
		return translateNotificationError(err, "failed to mark notification as read")
	}

	return nil
}

// MarkAllAsRead flags every unread notification of the user.
func (s *notificationService) MarkAllAsRead(ctx context.Context, userID uuid.UUID) (int64, error) {
	updated, err := s.notificationRepo.MarkAllAsRead(ctx, userID)
	if err != nil {
		return 0, errors.Wrap(err, "failed to mark all notifications as read")
	}

	s.log(ctx).Debug("Notifications marked as read", slog.Any("userID", userID), slog.Int64("count", updated))

	return updated, nil
}

// DeleteNotification removes one notification of the user.
func (s *notificationService) DeleteNotification(ctx context.Context, userID, notificationID uuid.UUID) error {
	if err := s.notificationRepo.Delete(ctx, notificationID, userID); err != nil {
		return translateNotificationError(err, "failed to delete notification")
	}

	return nil
}

// ClearNotifications removes every notification of the user.
func (s *notificationService) ClearNotifications(ctx context.Context, userID uuid.UUID) (int64, error) {
	deleted, err := s.notificationRepo.DeleteAllByUser(ctx, userID)
	if err != nil {
		return 0, errors.Wrap(err, "failed to clear notifications")
	}

	s.log(ctx).Info("Notifications cleared", slog.Any("userID", userID), slog.Int64("count", deleted))

	return deleted, nil
}

func translateNotificationError(err error, message string) error {
	if errors.Is(err, repository.ErrNotificationNotFound) {
		return domainerrors.ErrNotificationNotFound
	}

	return errors.Wrap(err, message)
}
