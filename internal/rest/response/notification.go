package response

import "github.com/Guyuepp/blog-comment-thread/domain"

type Notification struct {
	ID               int64  `json:"id"`
	Type             string `json:"type"`
	BlogID           int64  `json:"blog_id"`
	CommentID        int64  `json:"comment_id"`
	RepliedOnComment int64  `json:"replied_on_comment,omitempty"`
	ActorID          int64  `json:"actor_id"`
	Seen             bool   `json:"seen"`
	CreatedAt        string `json:"created_at"`
}

func NewNotificationsFromDomain(list []domain.Notification) []Notification {
	res := make([]Notification, len(list))
	for i, n := range list {
		res[i] = Notification{
			ID:               n.ID,
			Type:             string(n.Type),
			BlogID:           n.BlogID,
			CommentID:        n.CommentID,
			RepliedOnComment: n.RepliedOnComment,
			ActorID:          n.ActorID,
			Seen:             n.Seen,
			CreatedAt:        n.CreatedAt.Format(DateTimeFormat),
		}
	}
	return res
}
