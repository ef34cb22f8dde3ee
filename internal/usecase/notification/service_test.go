package notification_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Guyuepp/blog-comment-thread/domain"
	"github.com/Guyuepp/blog-comment-thread/domain/mocks"
	"github.com/Guyuepp/blog-comment-thread/internal/usecase/notification"
)

func TestListMarksUnseen(t *testing.T) {
	repo := mocks.NewNotificationRepository(t)
	svc := notification.NewService(repo)

	page := []domain.Notification{
		{ID: 9, Type: domain.NotificationReply, Seen: false},
		{ID: 8, Type: domain.NotificationComment, Seen: true},
		{ID: 7, Type: domain.NotificationComment, Seen: false},
	}
	repo.On("Fetch", mock.Anything, int64(2), domain.NotificationFilterAll, int64(10), int64(domain.NotificationPageSize)).Return(page, nil).Once()
	repo.On("MarkSeen", mock.Anything, int64(2), []int64{9, 7}).Return(nil).Once()

	res, err := svc.List(context.Background(), 2, "", 2, 0)
	require.NoError(t, err)
	assert.Len(t, res, 3)
	// the page shows what was unseen when it was fetched
	assert.False(t, res[0].Seen)
}

func TestListMarkSeenFailureIsNotFatal(t *testing.T) {
	repo := mocks.NewNotificationRepository(t)
	svc := notification.NewService(repo)

	repo.On("Fetch", mock.Anything, int64(2), "reply", int64(0), int64(domain.NotificationPageSize)).
		Return([]domain.Notification{{ID: 1}}, nil).Once()
	repo.On("MarkSeen", mock.Anything, int64(2), []int64{1}).Return(errors.New("down")).Once()

	res, err := svc.List(context.Background(), 2, "reply", 1, 0)
	require.NoError(t, err)
	assert.Len(t, res, 1)
}

func TestListShiftsByDeleted(t *testing.T) {
	repo := mocks.NewNotificationRepository(t)
	svc := notification.NewService(repo)
	ctx := context.Background()

	// page 2 after removing 3 items from page 1 starts at 7, not 10
	repo.On("Fetch", mock.Anything, int64(2), domain.NotificationFilterAll, int64(7), int64(domain.NotificationPageSize)).
		Return([]domain.Notification{{ID: 5, Seen: true}}, nil).Once()
	repo.On("MarkSeen", mock.Anything, int64(2), []int64{}).Return(nil).Once()
	res, err := svc.List(ctx, 2, "all", 2, 3)
	require.NoError(t, err)
	assert.Len(t, res, 1)

	// the offset never goes below zero
	repo.On("Fetch", mock.Anything, int64(2), domain.NotificationFilterAll, int64(0), int64(domain.NotificationPageSize)).
		Return([]domain.Notification{}, nil).Once()
	repo.On("MarkSeen", mock.Anything, int64(2), []int64{}).Return(nil).Once()
	_, err = svc.List(ctx, 2, "all", 1, 4)
	require.NoError(t, err)
}

func TestListRejectsUnknownFilter(t *testing.T) {
	svc := notification.NewService(mocks.NewNotificationRepository(t))

	_, err := svc.List(context.Background(), 2, "mentions", 1, 0)
	assert.ErrorIs(t, err, domain.ErrBadParamInput)
	_, err = svc.Count(context.Background(), 2, "mentions")
	assert.ErrorIs(t, err, domain.ErrBadParamInput)
}

func TestCountAndHasNew(t *testing.T) {
	repo := mocks.NewNotificationRepository(t)
	svc := notification.NewService(repo)

	repo.On("Count", mock.Anything, int64(2), "comment").Return(int64(4), nil).Once()
	repo.On("HasUnseen", mock.Anything, int64(2)).Return(true, nil).Once()

	n, err := svc.Count(context.Background(), 2, "comment")
	require.NoError(t, err)
	assert.Equal(t, int64(4), n)

	has, err := svc.HasNew(context.Background(), 2)
	require.NoError(t, err)
	assert.True(t, has)
}
