package thread

import (
	"context"

	"github.com/Guyuepp/blog-comment-thread/domain"
)

// ServiceSource feeds a Projection straight from the comment usecase, acting
// as one user.
type ServiceSource struct {
	svc      domain.CommentUsecase
	userID   int64
	pageSize int64
}

var _ Source = (*ServiceSource)(nil)

// NewServiceSource binds the usecase to the acting user. userID 0 is an
// anonymous reader that cannot write.
func NewServiceSource(svc domain.CommentUsecase, userID int64) *ServiceSource {
	return &ServiceSource{
		svc:      svc,
		userID:   userID,
		pageSize: domain.DefaultCommentPageSize,
	}
}

func (s *ServiceSource) ListRoots(ctx context.Context, blogID int64, page int64) ([]domain.Comment, error) {
	return s.svc.ListRoots(ctx, blogID, page, s.pageSize)
}

func (s *ServiceSource) ListReplies(ctx context.Context, parentID int64, skip int64) ([]domain.Comment, error) {
	return s.svc.ListReplies(ctx, parentID, skip, s.pageSize)
}

func (s *ServiceSource) AddComment(ctx context.Context, blogID int64, content string, replyTo int64) (domain.AddedComment, error) {
	if s.userID == 0 {
		return domain.AddedComment{}, domain.ErrUnauthorized
	}
	return s.svc.AddComment(ctx, domain.AddCommentInput{
		BlogID:  blogID,
		UserID:  s.userID,
		Content: content,
		ReplyTo: replyTo,
	})
}

func (s *ServiceSource) DeleteComment(ctx context.Context, id int64) error {
	if s.userID == 0 {
		return domain.ErrUnauthorized
	}
	return s.svc.DeleteComment(ctx, id, s.userID)
}
