package model

import (
	"github.com/Guyuepp/blog-comment-thread/domain"
)

type Blog struct {
	ID                  int64  `gorm:"primaryKey;autoIncrement"`
	Title               string `gorm:"type:varchar(255);not null"`
	AuthorID            int64  `gorm:"column:author_id;not null"`
	TotalComments       int64  `gorm:"column:total_comments;default:0"`
	TotalParentComments int64  `gorm:"column:total_parent_comments;default:0"`
}

func (Blog) TableName() string {
	return "blog"
}

func (m *Blog) ToDomain() domain.Blog {
	return domain.Blog{
		ID:                  m.ID,
		Title:               m.Title,
		AuthorID:            m.AuthorID,
		TotalComments:       m.TotalComments,
		TotalParentComments: m.TotalParentComments,
	}
}
