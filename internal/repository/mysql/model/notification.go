package model

import (
	"time"

	"github.com/Guyuepp/blog-comment-thread/domain"
)

type Notification struct {
	ID               int64     `gorm:"primaryKey;autoIncrement"`
	Type             string    `gorm:"type:varchar(16);not null"`
	BlogID           int64     `gorm:"column:blog_id;not null"`
	CommentID        int64     `gorm:"column:comment_id;not null;index"`
	RepliedOnComment int64     `gorm:"column:replied_on_comment;default:0"`
	RecipientID      int64     `gorm:"column:recipient_id;not null;index"`
	ActorID          int64     `gorm:"column:actor_id;not null"`
	Seen             bool      `gorm:"default:false"`
	CreatedAt        time.Time `gorm:"type:datetime(3)"`
}

func (Notification) TableName() string {
	return "notification"
}

func NewNotificationFromDomain(n *domain.Notification) *Notification {
	return &Notification{
		ID:               n.ID,
		Type:             string(n.Type),
		BlogID:           n.BlogID,
		CommentID:        n.CommentID,
		RepliedOnComment: n.RepliedOnComment,
		RecipientID:      n.RecipientID,
		ActorID:          n.ActorID,
		Seen:             n.Seen,
		CreatedAt:        n.CreatedAt,
	}
}

func (m *Notification) ToDomain() domain.Notification {
	return domain.Notification{
		ID:               m.ID,
		Type:             domain.NotificationType(m.Type),
		BlogID:           m.BlogID,
		CommentID:        m.CommentID,
		RepliedOnComment: m.RepliedOnComment,
		RecipientID:      m.RecipientID,
		ActorID:          m.ActorID,
		Seen:             m.Seen,
		CreatedAt:        m.CreatedAt,
	}
}
