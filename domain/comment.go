package domain

import (
	"context"
	"time"
)

const (
	// DefaultCommentPageSize is the page size used by roots and replies listing
	DefaultCommentPageSize = 5
	// MaxCommentPageSize caps a single listing request
	MaxCommentPageSize = 30
	// MaxCommentLength is the longest accepted comment body, in runes
	MaxCommentLength = 2000
)

// Comment domain model
type Comment struct {
	ID       int64 `json:"id"`
	BlogID   int64 `json:"blog_id"`
	UserID   int64 `json:"user_id"`
	ParentID int64 `json:"parent_id"` // 0 for root comments
	// Children 子评论ID，按挂载顺序排列
	Children  []int64   `json:"children"`
	Content   string    `json:"content"`
	IsReply   bool      `json:"is_reply"`
	CreatedAt time.Time `json:"created_at"`

	// User 评论作者信息
	User *User `json:"user,omitempty"`
}

// IsRoot reports whether the comment is attached directly to a blog.
func (c *Comment) IsRoot() bool {
	return c.ParentID == 0
}

// SubtreeRemoval is the outcome of a cascading delete.
type SubtreeRemoval struct {
	// BlogID is the blog the subtree belonged to, 0 when nothing was removed.
	BlogID int64
	// RemovedIDs lists every comment removed, the subtree root first.
	RemovedIDs []int64
	// RootRemoved is true when the subtree root had no parent, i.e. a root
	// comment disappeared and total_parent_comments must drop by one.
	RootRemoved bool
}

// AddCommentInput carries a new comment or reply.
type AddCommentInput struct {
	BlogID  int64  `validate:"required,gt=0"`
	UserID  int64  `validate:"required,gt=0"`
	Content string `validate:"required,notblank,max=2000"`
	// ReplyTo is the parent comment id, 0 for a root comment.
	ReplyTo int64 `validate:"gte=0"`
}

// AddedComment is the created comment plus the parent's children list after
// linking, so that callers can update their local view without a refetch.
type AddedComment struct {
	Comment
	ParentChildren []int64 `json:"parent_children,omitempty"`
}

// CommentUsecase 业务逻辑接口
type CommentUsecase interface {
	// AddComment creates a root comment or, when ReplyTo is set, a reply.
	AddComment(ctx context.Context, in AddCommentInput) (AddedComment, error)
	// DeleteComment removes the comment and all its descendants.
	// Returns ErrNotFound if absent and ErrForbidden unless the requester
	// wrote the comment or the blog.
	DeleteComment(ctx context.Context, id int64, requesterID int64) error
	// ListRoots returns a page (1-based) of root comments, newest first.
	ListRoots(ctx context.Context, blogID int64, page, pageSize int64) ([]Comment, error)
	// ListReplies returns direct replies of a comment, newest first.
	ListReplies(ctx context.Context, parentID int64, skip, pageSize int64) ([]Comment, error)
}

// CommentRepository 数据存取接口
type CommentRepository interface {
	// Store persists c and backfills ID and CreatedAt. When c.ParentID is set
	// the new id is appended to the parent's children.
	// Returns ErrNotFound if the parent doesn't exist.
	Store(ctx context.Context, c *Comment) error

	// DeleteSubtree removes the comment, its descendants and the
	// notifications referencing any of them. Deleting an absent id is a
	// no-op with an empty result.
	DeleteSubtree(ctx context.Context, id int64) (SubtreeRemoval, error)

	// GetByID returns ErrNotFound if the comment doesn't exist.
	GetByID(ctx context.Context, id int64) (Comment, error)

	// FetchRoots 获取一级评论，新的在前
	FetchRoots(ctx context.Context, blogID int64, skip, limit int64) ([]Comment, error)

	// FetchChildren 获取直接回复，新的在前
	FetchChildren(ctx context.Context, parentID int64, skip, limit int64) ([]Comment, error)
}

// RootPageCache caches the first page of root comments of a blog.
type RootPageCache interface {
	// GetRoots returns ErrCacheMiss when nothing is cached. expired reports a
	// logically expired entry that is still usable while it is rebuilt.
	GetRoots(ctx context.Context, blogID int64) (res []Comment, expired bool, err error)
	SetRoots(ctx context.Context, blogID int64, roots []Comment, ttl time.Duration) error
	Invalidate(ctx context.Context, blogID int64) error
}

// Transactor runs fn in a single storage transaction. Repositories called
// with the ctx handed to fn join that transaction.
type Transactor interface {
	WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
