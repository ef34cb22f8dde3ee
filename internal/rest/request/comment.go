package request

import "github.com/Guyuepp/blog-comment-thread/domain"

type Comment struct {
	Content    string `json:"comment" binding:"required"`
	ReplyingTo int64  `json:"replying_to"`
}

// ToDomain: Request -> Domain
func (r *Comment) ToDomain(blogID, userID int64) domain.AddCommentInput {
	return domain.AddCommentInput{
		BlogID:  blogID,
		UserID:  userID,
		Content: r.Content,
		ReplyTo: r.ReplyingTo,
	}
}
