package model

import (
	"time"

	"github.com/Guyuepp/blog-comment-thread/domain"
)

type Comment struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	BlogID    int64     `gorm:"column:blog_id;not null;index:idx_blog_parent"`
	UserID    int64     `gorm:"column:user_id;not null"`
	Content   string    `gorm:"type:text;not null"`
	ParentID  int64     `gorm:"column:parent_id;default:0;index:idx_blog_parent"`
	CreatedAt time.Time `gorm:"type:datetime(3)"`
}

func (Comment) TableName() string {
	return "comment"
}

// CommentChild links a comment to its parent. The auto-increment id keeps
// the order in which replies were attached.
type CommentChild struct {
	ID       int64 `gorm:"primaryKey;autoIncrement"`
	ParentID int64 `gorm:"column:parent_id;not null;index"`
	ChildID  int64 `gorm:"column:child_id;not null;uniqueIndex"`
}

func (CommentChild) TableName() string {
	return "comment_children"
}

func NewCommentFromDomain(c *domain.Comment) *Comment {
	return &Comment{
		ID:        c.ID,
		BlogID:    c.BlogID,
		UserID:    c.UserID,
		Content:   c.Content,
		ParentID:  c.ParentID,
		CreatedAt: c.CreatedAt,
	}
}

func (m *Comment) ToDomain() domain.Comment {
	return domain.Comment{
		ID:        m.ID,
		BlogID:    m.BlogID,
		UserID:    m.UserID,
		Content:   m.Content,
		ParentID:  m.ParentID,
		IsReply:   m.ParentID != 0,
		Children:  []int64{},
		CreatedAt: m.CreatedAt,
	}
}
