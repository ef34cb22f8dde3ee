package response

import "github.com/Guyuepp/blog-comment-thread/domain"

// Activity is the comment counters of a blog
type Activity struct {
	BlogID              int64 `json:"blog_id"`
	TotalComments       int64 `json:"total_comments"`
	TotalParentComments int64 `json:"total_parent_comments"`
}

func NewActivityFromDomain(b *domain.Blog) Activity {
	return Activity{
		BlogID:              b.ID,
		TotalComments:       b.TotalComments,
		TotalParentComments: b.TotalParentComments,
	}
}
