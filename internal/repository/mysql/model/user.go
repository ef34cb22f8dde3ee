package model

import (
	"github.com/Guyuepp/blog-comment-thread/domain"
)

type User struct {
	ID         int64  `gorm:"primaryKey;autoIncrement"`
	Name       string `gorm:"type:varchar(64);not null"`
	Username   string `gorm:"type:varchar(64);uniqueIndex;not null"`
	ProfileImg string `gorm:"column:profile_img;type:varchar(255)"`
}

func (User) TableName() string {
	return "user"
}

func (m *User) ToDomain() domain.User {
	return domain.User{
		ID:         m.ID,
		Name:       m.Name,
		Username:   m.Username,
		ProfileImg: m.ProfileImg,
	}
}
