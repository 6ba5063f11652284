package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/repository"
	mockRepo "bazaar/internal/mocks/repository"
	"bazaar/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestNotificationService(t *testing.T) (usecase.NotificationUsecase, *mockRepo.MockNotificationRepository) {
	notificationRepo := mockRepo.NewMockNotificationRepository(t)

	return NewNotificationService(NotificationServiceParams{
		NotificationRepo: notificationRepo,
		Logger:           slog.New(slog.NewTextHandler(io.Discard, nil)),
	}), notificationRepo
}

func TestNotificationService_ListNotifications(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	items := []*entity.Notification{{ID: uuid.New(), UserID: userID}}

	tests := []struct {
		name       string
		query      usecase.NotificationQuery
		wantFilter repository.NotificationFilter
		setup      func(repo *mockRepo.MockNotificationRepository)
		want       usecase.NotificationPage
	}{
		{
			name:       "defaults",
			query:      usecase.NotificationQuery{},
			wantFilter: repository.NotificationFilter{Limit: 20, Offset: 0},
			setup: func(repo *mockRepo.MockNotificationRepository) {
				repo.EXPECT().CountByUser(ctx, userID, false).Return(7, nil)
				repo.EXPECT().CountByUser(ctx, userID, true).Return(2, nil)
			},
			want: usecase.NotificationPage{Items: items, Total: 7, UnreadCount: 2, Page: 1, Limit: 20},
		},
		{
			name:       "unread only with capped limit",
			query:      usecase.NotificationQuery{UnreadOnly: true, Page: 3, Limit: 500},
			wantFilter: repository.NotificationFilter{UnreadOnly: true, Limit: 100, Offset: 200},
			setup: func(repo *mockRepo.MockNotificationRepository) {
				repo.EXPECT().CountByUser(ctx, userID, true).Return(4, nil).Once()
			},
			want: usecase.NotificationPage{Items: items, Total: 4, UnreadCount: 4, Page: 3, Limit: 100},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, repo := createTestNotificationService(t)
			repo.EXPECT().FindByUser(ctx, userID, tt.wantFilter).Return(items, nil)
			tt.setup(repo)

			page, err := service.ListNotifications(ctx, userID, tt.query)

			require.NoError(t, err)
			assert.Equal(t, tt.want, *page)
		})
	}
}

func TestNotificationService_ListNotifications_RepoError(t *testing.T) {
	service, repo := createTestNotificationService(t)
	ctx := context.Background()
	userID := uuid.New()

	repo.EXPECT().FindByUser(ctx, userID, repository.NotificationFilter{Limit: 20}).Return(nil, errors.New("database error"))

	_, err := service.ListNotifications(ctx, userID, usecase.NotificationQuery{})

	assert.ErrorContains(t, err, "failed to list notifications")
}

func TestNotificationService_MarkAsRead(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	notificationID := uuid.New()

	t.Run("success", func(t *testing.T) {
		service, repo := createTestNotificationService(t)
		repo.EXPECT().MarkAsRead(ctx, notificationID, userID).Return(nil)

		require.NoError(t, service.MarkAsRead(ctx, userID, notificationID))
	})

	t.Run("not found", func(t *testing.T) {
		service, repo := createTestNotificationService(t)
		repo.EXPECT().MarkAsRead(ctx, notificationID, userID).Return(repository.ErrNotificationNotFound)

		assert.ErrorIs(t, service.MarkAsRead(ctx, userID, notificationID), domainerrors.ErrNotificationNotFound)
	})
}

func TestNotificationService_BulkOperations(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	service, repo := createTestNotificationService(t)

	repo.EXPECT().MarkAllAsRead(ctx, userID).Return(3, nil)
	repo.EXPECT().DeleteAllByUser(ctx, userID).Return(5, nil)

	updated, err := service.MarkAllAsRead(ctx, userID)
	require.NoError(t, err)
	assert.EqualValues(t, 3, updated)

	deleted, err := service.ClearNotifications(ctx, userID)
	require.NoError(t, err)
	assert.EqualValues(t, 5, deleted)
}

func TestNotificationService_DeleteNotification(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	notificationID := uuid.New()
	service, repo := createTestNotificationService(t)

	repo.EXPECT().Delete(ctx, notificationID, userID).Return(repository.ErrNotificationNotFound)

	assert.ErrorIs(t, service.DeleteNotification(ctx, userID, notificationID), domainerrors.ErrNotificationNotFound)
}
