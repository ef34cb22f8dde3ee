package comment

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/Guyuepp/blog-comment-thread/domain"
	"github.com/Guyuepp/blog-comment-thread/internal/repository"
)

type Service struct {
	commentRepo      domain.CommentRepository
	blogRepo         domain.BlogAggregateStore
	notificationRepo domain.NotificationRepository
	userRepo         domain.UserRepository
	bloomRepo        domain.BloomRepository
	tx               domain.Transactor
	repairWorker     domain.CounterRepairWorker
	validate         *validator.Validate
}

var _ domain.CommentUsecase = (*Service)(nil)

// NewService will create a new comment service object
func NewService(
	c domain.CommentRepository,
	b domain.BlogAggregateStore,
	n domain.NotificationRepository,
	u domain.UserRepository,
	bloom domain.BloomRepository,
	tx domain.Transactor,
	w domain.CounterRepairWorker,
) *Service {
	v, err := newValidator()
	if err != nil {
		logrus.Fatalf("failed to build comment validator: %v", err)
	}
	return &Service{
		commentRepo:      c,
		blogRepo:         b,
		notificationRepo: n,
		userRepo:         u,
		bloomRepo:        bloom,
		tx:               tx,
		repairWorker:     w,
		validate:         v,
	}
}

func newValidator() (*validator.Validate, error) {
	v := validator.New(validator.WithRequiredStructEnabled())
	if err := v.RegisterValidation("notblank", validators.NotBlank); err != nil {
		return nil, fmt.Errorf("register notblank: %w", err)
	}
	return v, nil
}

// ensureBlog 布隆过滤器命中则直接放行；未命中时回源确认，并修补过滤器
// (博客由内容服务创建，过滤器可能落后)
func (s *Service) ensureBlog(ctx context.Context, blogID int64) error {
	exists, err := s.bloomRepo.Exists(ctx, blogID)
	if err == nil && exists {
		return nil
	}
	if err != nil {
		logrus.Warnf("bloom filter unavailable for blog %d: %v", blogID, err)
	}

	if _, err := s.blogRepo.GetByID(ctx, blogID); err != nil {
		return err
	}
	if addErr := s.bloomRepo.Add(ctx, blogID); addErr != nil {
		logrus.Warnf("failed to add blog %d to bloom filter: %v", blogID, addErr)
	}
	return nil
}

func (s *Service) AddComment(ctx context.Context, in domain.AddCommentInput) (domain.AddedComment, error) {
	if err := s.validate.Struct(in); err != nil {
		return domain.AddedComment{}, fmt.Errorf("%w: %v", domain.ErrBadParamInput, err)
	}

	var (
		blog   domain.Blog
		parent domain.Comment
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		blog, err = s.blogRepo.GetByID(gctx, in.BlogID)
		return
	})
	if in.ReplyTo != 0 {
		g.Go(func() (err error) {
			parent, err = s.commentRepo.GetByID(gctx, in.ReplyTo)
			return
		})
	}
	if err := g.Wait(); err != nil {
		return domain.AddedComment{}, err
	}
	if in.ReplyTo != 0 && parent.BlogID != in.BlogID {
		return domain.AddedComment{}, fmt.Errorf("%w: comment %d is not on blog %d", domain.ErrNotFound, in.ReplyTo, in.BlogID)
	}

	c := domain.Comment{
		BlogID:   in.BlogID,
		UserID:   in.UserID,
		ParentID: in.ReplyTo,
		Content:  in.Content,
	}
	n := domain.Notification{
		Type:        domain.NotificationComment,
		BlogID:      in.BlogID,
		RecipientID: blog.AuthorID,
		ActorID:     in.UserID,
	}
	delta := domain.CounterDelta{Comments: 1, ParentComments: 1}
	if in.ReplyTo != 0 {
		n.Type = domain.NotificationReply
		n.RecipientID = parent.UserID
		n.RepliedOnComment = parent.ID
		delta.ParentComments = 0
	}

	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		if err := s.commentRepo.Store(ctx, &c); err != nil {
			return err
		}
		if err := s.blogRepo.Incr(ctx, in.BlogID, delta); err != nil {
			return err
		}
		n.CommentID = c.ID
		return s.notificationRepo.Create(ctx, &n)
	})
	if err != nil {
		logrus.Errorf("failed to add comment on blog %d: %v", in.BlogID, err)
		return domain.AddedComment{}, err
	}

	res := domain.AddedComment{Comment: c}
	if in.ReplyTo != 0 {
		res.ParentChildren = s.parentChildren(ctx, parent, c.ID)
	}
	if u, err := s.userRepo.GetByID(ctx, in.UserID); err == nil {
		res.User = &u
	} else {
		logrus.Warnf("failed to load author %d of comment %d: %v", in.UserID, c.ID, err)
	}
	return res, nil
}

// parentChildren rereads the parent after linking; falls back to the list
// read before the insert.
func (s *Service) parentChildren(ctx context.Context, parent domain.Comment, childID int64) []int64 {
	fresh, err := s.commentRepo.GetByID(ctx, parent.ID)
	if err == nil {
		return fresh.Children
	}
	logrus.Warnf("failed to reload children of comment %d: %v", parent.ID, err)
	children := make([]int64, 0, len(parent.Children)+1)
	children = append(children, parent.Children...)
	return append(children, childID)
}

func (s *Service) DeleteComment(ctx context.Context, id int64, requesterID int64) error {
	c, err := s.commentRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	blog, err := s.blogRepo.GetByID(ctx, c.BlogID)
	if err != nil {
		return err
	}
	if requesterID != c.UserID && requesterID != blog.AuthorID {
		return domain.ErrForbidden
	}

	removal, err := s.commentRepo.DeleteSubtree(ctx, id)
	if err != nil {
		logrus.Errorf("failed to delete comment subtree %d: %v", id, err)
		return err
	}
	// someone else finished the same delete first
	if len(removal.RemovedIDs) == 0 {
		return nil
	}

	delta := domain.CounterDelta{Comments: -int64(len(removal.RemovedIDs))}
	if removal.RootRemoved {
		delta.ParentComments = -1
	}
	if err := s.blogRepo.Incr(ctx, removal.BlogID, delta); err != nil {
		logrus.Errorf("comments %v removed but counters of blog %d not updated: %v", removal.RemovedIDs, removal.BlogID, err)
		s.repairWorker.Send(removal.BlogID)
		if errors.Is(err, domain.ErrTransientStorage) {
			return err
		}
		return fmt.Errorf("%w: %v", domain.ErrTransientStorage, err)
	}
	return nil
}

func (s *Service) ListRoots(ctx context.Context, blogID int64, page, pageSize int64) ([]domain.Comment, error) {
	repository.PageVerify(&pageSize, domain.DefaultCommentPageSize, domain.MaxCommentPageSize)
	if err := s.ensureBlog(ctx, blogID); err != nil {
		return nil, err
	}

	res, err := s.commentRepo.FetchRoots(ctx, blogID, repository.PageToSkip(page, pageSize), pageSize)
	if err != nil {
		return nil, err
	}
	return s.fillUserDetails(ctx, res), nil
}

func (s *Service) ListReplies(ctx context.Context, parentID int64, skip, pageSize int64) ([]domain.Comment, error) {
	repository.PageVerify(&pageSize, domain.DefaultCommentPageSize, domain.MaxCommentPageSize)
	if skip < 0 {
		skip = 0
	}

	res, err := s.commentRepo.FetchChildren(ctx, parentID, skip, pageSize)
	if err != nil {
		return nil, err
	}
	return s.fillUserDetails(ctx, res), nil
}

// fillUserDetails 批量填充评论作者信息，失败时返回未填充的评论
func (s *Service) fillUserDetails(ctx context.Context, comments []domain.Comment) []domain.Comment {
	if len(comments) == 0 {
		return []domain.Comment{}
	}

	userIDs := make([]int64, 0, len(comments))
	existMap := make(map[int64]bool)
	for _, c := range comments {
		if !existMap[c.UserID] {
			userIDs = append(userIDs, c.UserID)
			existMap[c.UserID] = true
		}
	}

	users, err := s.userRepo.GetByIDs(ctx, userIDs)
	if err != nil {
		logrus.Warnf("failed to fill comment authors: %v", err)
		return comments
	}

	userMap := make(map[int64]domain.User, len(users))
	for _, u := range users {
		userMap[u.ID] = u
	}
	for i := range comments {
		if u, ok := userMap[comments[i].UserID]; ok {
			comments[i].User = &u
		}
	}
	return comments
}
