package response

import "github.com/Guyuepp/blog-comment-thread/domain"

type Comment struct {
	ID        int64   `json:"id"`
	BlogID    int64   `json:"blog_id"`
	Comment   string  `json:"comment"`
	ParentID  int64   `json:"parent_id,omitempty"`
	IsReply   bool    `json:"is_reply"`
	Children  []int64 `json:"children"`
	CreatedAt string  `json:"created_at"`

	// CommentedBy 评论作者信息
	CommentedBy *User `json:"commented_by,omitempty"`
}

// AddedComment is the created comment plus, for a reply, the parent's
// updated children list
type AddedComment struct {
	Comment
	ParentChildren []int64 `json:"parent_children,omitempty"`
}

// NewCommentFromDomain: Domain -> Response
func NewCommentFromDomain(c *domain.Comment) Comment {
	children := c.Children
	if children == nil {
		children = []int64{}
	}
	return Comment{
		ID:          c.ID,
		BlogID:      c.BlogID,
		Comment:     c.Content,
		ParentID:    c.ParentID,
		IsReply:     c.IsReply,
		Children:    children,
		CreatedAt:   c.CreatedAt.Format(DateTimeFormat),
		CommentedBy: NewUserFromDomain(c.User),
	}
}

func NewCommentsFromDomain(list []domain.Comment) []Comment {
	res := make([]Comment, len(list))
	for i := range list {
		res[i] = NewCommentFromDomain(&list[i])
	}
	return res
}

func NewAddedCommentFromDomain(a *domain.AddedComment) AddedComment {
	return AddedComment{
		Comment:        NewCommentFromDomain(&a.Comment),
		ParentChildren: a.ParentChildren,
	}
}
