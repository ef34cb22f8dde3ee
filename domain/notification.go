package domain

import (
	"context"
	"time"
)

// NotificationType tells what triggered a notification
type NotificationType string

const (
	NotificationComment NotificationType = "comment"
	NotificationReply   NotificationType = "reply"
	NotificationLike    NotificationType = "like"
)

// NotificationFilterAll matches every notification type
const NotificationFilterAll = "all"

// NotificationPageSize is the number of notifications per page
const NotificationPageSize = 10

// Notification is written alongside comments and removed with them
type Notification struct {
	ID        int64            `json:"id"`
	Type      NotificationType `json:"type"`
	BlogID    int64            `json:"blog_id"`
	CommentID int64            `json:"comment_id"`
	// RepliedOnComment is the parent comment of a reply notification
	RepliedOnComment int64     `json:"replied_on_comment,omitempty"`
	RecipientID      int64     `json:"recipient_id"`
	ActorID          int64     `json:"actor_id"`
	Seen             bool      `json:"seen"`
	CreatedAt        time.Time `json:"created_at"`
}

// ParseNotificationFilter validates a filter query value. The empty string
// means NotificationFilterAll.
func ParseNotificationFilter(s string) (string, error) {
	switch s {
	case "", NotificationFilterAll:
		return NotificationFilterAll, nil
	case string(NotificationComment), string(NotificationReply), string(NotificationLike):
		return s, nil
	default:
		return "", ErrBadParamInput
	}
}

// NotificationRepository is the notification sink plus the per-user reads
type NotificationRepository interface {
	// Create backfills ID and CreatedAt.
	Create(ctx context.Context, n *Notification) error

	// DeleteByCommentIDs removes every notification referencing the ids.
	DeleteByCommentIDs(ctx context.Context, commentIDs []int64) error

	// Fetch returns the recipient's notifications, newest first.
	Fetch(ctx context.Context, recipientID int64, filter string, skip, limit int64) ([]Notification, error)

	Count(ctx context.Context, recipientID int64, filter string) (int64, error)

	// HasUnseen reports whether the recipient has any unseen notification.
	HasUnseen(ctx context.Context, recipientID int64) (bool, error)

	MarkSeen(ctx context.Context, recipientID int64, ids []int64) error
}

// NotificationUsecase serves the notification inbox
type NotificationUsecase interface {
	// List returns a 1-based page. deleted is the number of notifications
	// the caller removed from earlier pages; the offset shrinks by it so
	// that no item is skipped.
	List(ctx context.Context, userID int64, filter string, page, deleted int64) ([]Notification, error)
	Count(ctx context.Context, userID int64, filter string) (int64, error)
	HasNew(ctx context.Context, userID int64) (bool, error)
}
