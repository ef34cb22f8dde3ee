package mysql

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sqlmock "gopkg.in/DATA-DOG/go-sqlmock.v1"

	"github.com/Guyuepp/blog-comment-thread/domain"
)

var notificationColumns = []string{"id", "type", "blog_id", "comment_id", "replied_on_comment", "recipient_id", "actor_id", "seen", "created_at"}

func TestNotificationCreate(t *testing.T) {
	gdb, mock := newMockDB(t)
	repo := NewNotificationRepository(gdb)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO `notification`")).WillReturnResult(sqlmock.NewResult(5, 1))

	n := &domain.Notification{Type: domain.NotificationReply, BlogID: 1, CommentID: 9, RepliedOnComment: 3, RecipientID: 2, ActorID: 4}
	require.NoError(t, repo.Create(context.Background(), n))
	assert.Equal(t, int64(5), n.ID)
	assert.False(t, n.CreatedAt.IsZero())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestNotificationFetch(t *testing.T) {
	gdb, mock := newMockDB(t)
	repo := NewNotificationRepository(gdb)
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM `notification` WHERE recipient_id = ? AND type = ? ORDER BY created_at DESC,id DESC")).
		WillReturnRows(sqlmock.NewRows(notificationColumns).
			AddRow(8, "reply", 1, 9, 3, 2, 4, false, now).
			AddRow(6, "reply", 1, 7, 3, 2, 5, true, now.Add(-time.Hour)))

	res, err := repo.Fetch(context.Background(), 2, "reply", 0, 10)
	require.NoError(t, err)
	require.Len(t, res, 2)
	assert.Equal(t, domain.NotificationReply, res[0].Type)
	assert.Equal(t, int64(3), res[0].RepliedOnComment)
	assert.False(t, res[0].Seen)
	assert.True(t, res[1].Seen)

	// "all" does not filter on type
	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM `notification` WHERE recipient_id = ? ORDER BY")).
		WillReturnRows(sqlmock.NewRows(notificationColumns))
	res, err = repo.Fetch(context.Background(), 2, domain.NotificationFilterAll, 10, 10)
	require.NoError(t, err)
	assert.Empty(t, res)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestNotificationCountAndUnseen(t *testing.T) {
	gdb, mock := newMockDB(t)
	repo := NewNotificationRepository(gdb)
	ctx := context.Background()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT count(*) FROM `notification` WHERE recipient_id = ?")).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(12))
	total, err := repo.Count(ctx, 2, domain.NotificationFilterAll)
	require.NoError(t, err)
	assert.Equal(t, int64(12), total)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT `id` FROM `notification` WHERE recipient_id = ? AND seen = ?")).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(8))
	has, err := repo.HasUnseen(ctx, 2)
	require.NoError(t, err)
	assert.True(t, has)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT `id` FROM `notification` WHERE recipient_id = ? AND seen = ?")).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	has, err = repo.HasUnseen(ctx, 3)
	require.NoError(t, err)
	assert.False(t, has)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestNotificationMarkSeenAndDelete(t *testing.T) {
	gdb, mock := newMockDB(t)
	repo := NewNotificationRepository(gdb)
	ctx := context.Background()

	mock.ExpectExec(regexp.QuoteMeta("UPDATE `notification` SET `seen`=? WHERE recipient_id = ? AND id IN (?,?)")).
		WillReturnResult(sqlmock.NewResult(0, 2))
	require.NoError(t, repo.MarkSeen(ctx, 2, []int64{8, 6}))

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM `notification` WHERE comment_id IN (?)")).
		WillReturnResult(sqlmock.NewResult(0, 1))
	require.NoError(t, repo.DeleteByCommentIDs(ctx, []int64{9}))

	// empty id lists never reach the database
	require.NoError(t, repo.MarkSeen(ctx, 2, nil))
	require.NoError(t, repo.DeleteByCommentIDs(ctx, nil))

	assert.NoError(t, mock.ExpectationsWereMet())
}
