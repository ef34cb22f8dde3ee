package response

import "github.com/Guyuepp/blog-comment-thread/domain"

const DateTimeFormat = "2006-01-02 15:04:05"

type User struct {
	ID         int64  `json:"id"`
	Name       string `json:"fullname"`
	Username   string `json:"username"`
	ProfileImg string `json:"profile_img"`
}

func NewUserFromDomain(u *domain.User) *User {
	if u == nil {
		return nil
	}
	return &User{
		ID:         u.ID,
		Name:       u.Name,
		Username:   u.Username,
		ProfileImg: u.ProfileImg,
	}
}
