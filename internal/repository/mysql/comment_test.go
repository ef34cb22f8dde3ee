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

var commentColumns = []string{"id", "blog_id", "user_id", "content", "parent_id", "created_at"}

func TestCommentStoreRoot(t *testing.T) {
	gdb, mock := newMockDB(t)
	repo := NewCommentRepository(gdb, NewNotificationRepository(gdb))

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO `comment`")).WillReturnResult(sqlmock.NewResult(10, 1))
	mock.ExpectCommit()

	c := &domain.Comment{BlogID: 1, UserID: 2, Content: "hi"}
	require.NoError(t, repo.Store(context.Background(), c))
	assert.Equal(t, int64(10), c.ID)
	assert.False(t, c.IsReply)
	assert.NotNil(t, c.Children)
	assert.False(t, c.CreatedAt.IsZero())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCommentStoreReply(t *testing.T) {
	gdb, mock := newMockDB(t)
	repo := NewCommentRepository(gdb, NewNotificationRepository(gdb))

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, blog_id FROM `comment` WHERE id = ?")).
		WillReturnRows(sqlmock.NewRows([]string{"id", "blog_id"}).AddRow(3, 1))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO `comment`")).WillReturnResult(sqlmock.NewResult(11, 1))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO `comment_children`")).WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	c := &domain.Comment{BlogID: 1, UserID: 2, Content: "hey", ParentID: 3}
	require.NoError(t, repo.Store(context.Background(), c))
	assert.Equal(t, int64(11), c.ID)
	assert.True(t, c.IsReply)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCommentStoreReplyToOtherBlog(t *testing.T) {
	gdb, mock := newMockDB(t)
	repo := NewCommentRepository(gdb, NewNotificationRepository(gdb))

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, blog_id FROM `comment` WHERE id = ?")).
		WillReturnRows(sqlmock.NewRows([]string{"id", "blog_id"}).AddRow(3, 9))
	mock.ExpectRollback()

	err := repo.Store(context.Background(), &domain.Comment{BlogID: 1, UserID: 2, Content: "hey", ParentID: 3})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCommentDeleteSubtree(t *testing.T) {
	gdb, mock := newMockDB(t)
	repo := NewCommentRepository(gdb, NewNotificationRepository(gdb))

	// 1 -> 2, 3; 2 -> 4
	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, blog_id, parent_id FROM `comment` WHERE id = ?")).
		WillReturnRows(sqlmock.NewRows([]string{"id", "blog_id", "parent_id"}).AddRow(1, 7, 0))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT `id` FROM `comment` WHERE parent_id IN (?)")).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(2).AddRow(3))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT `id` FROM `comment` WHERE parent_id IN (?,?)")).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(4))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT `id` FROM `comment` WHERE parent_id IN (?)")).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM `notification` WHERE comment_id IN (?,?,?,?)")).
		WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM `comment_children` WHERE")).
		WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM `comment` WHERE id IN (?,?,?,?)")).
		WillReturnResult(sqlmock.NewResult(0, 4))
	mock.ExpectCommit()

	res, err := repo.DeleteSubtree(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, int64(7), res.BlogID)
	assert.Equal(t, []int64{1, 2, 3, 4}, res.RemovedIDs)
	assert.True(t, res.RootRemoved)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCommentDeleteSubtreeAbsent(t *testing.T) {
	gdb, mock := newMockDB(t)
	repo := NewCommentRepository(gdb, NewNotificationRepository(gdb))

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, blog_id, parent_id FROM `comment` WHERE id = ?")).
		WillReturnRows(sqlmock.NewRows([]string{"id", "blog_id", "parent_id"}))
	mock.ExpectCommit()

	res, err := repo.DeleteSubtree(context.Background(), 1)
	require.NoError(t, err)
	assert.Empty(t, res.RemovedIDs)
	assert.Zero(t, res.BlogID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCommentGetByID(t *testing.T) {
	gdb, mock := newMockDB(t)
	repo := NewCommentRepository(gdb, NewNotificationRepository(gdb))
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM `comment` WHERE id = ?")).
		WillReturnRows(sqlmock.NewRows(commentColumns).AddRow(3, 1, 2, "hi", 0, now))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM `comment_children` WHERE parent_id IN (?)")).
		WillReturnRows(sqlmock.NewRows([]string{"id", "parent_id", "child_id"}).AddRow(1, 3, 5).AddRow(2, 3, 8))

	c, err := repo.GetByID(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, int64(3), c.ID)
	assert.Equal(t, "hi", c.Content)
	assert.Equal(t, []int64{5, 8}, c.Children)
	assert.False(t, c.IsReply)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM `comment` WHERE id = ?")).
		WillReturnRows(sqlmock.NewRows(commentColumns))
	_, err = repo.GetByID(context.Background(), 4)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCommentFetchRootsAndChildren(t *testing.T) {
	gdb, mock := newMockDB(t)
	repo := NewCommentRepository(gdb, NewNotificationRepository(gdb))
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM `comment` WHERE blog_id = ? AND parent_id = 0 ORDER BY created_at DESC,id DESC")).
		WillReturnRows(sqlmock.NewRows(commentColumns).
			AddRow(6, 1, 2, "newer", 0, now).
			AddRow(5, 1, 2, "older", 0, now.Add(-time.Minute)))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM `comment_children` WHERE parent_id IN (?,?)")).
		WillReturnRows(sqlmock.NewRows([]string{"id", "parent_id", "child_id"}).AddRow(1, 5, 7))

	roots, err := repo.FetchRoots(context.Background(), 1, 0, 5)
	require.NoError(t, err)
	require.Len(t, roots, 2)
	assert.Equal(t, int64(6), roots[0].ID)
	assert.Empty(t, roots[0].Children)
	assert.Equal(t, []int64{7}, roots[1].Children)

	// no replies is an empty list, not an error
	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM `comment` WHERE parent_id = ? ORDER BY created_at DESC,id DESC")).
		WillReturnRows(sqlmock.NewRows(commentColumns))
	children, err := repo.FetchChildren(context.Background(), 5, 0, 5)
	require.NoError(t, err)
	assert.NotNil(t, children)
	assert.Empty(t, children)

	assert.NoError(t, mock.ExpectationsWereMet())
}
