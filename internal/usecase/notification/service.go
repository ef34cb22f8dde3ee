package notification

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/Guyuepp/blog-comment-thread/domain"
	"github.com/Guyuepp/blog-comment-thread/internal/repository"
)

type Service struct {
	repo domain.NotificationRepository
}

var _ domain.NotificationUsecase = (*Service)(nil)

func NewService(r domain.NotificationRepository) *Service {
	return &Service{repo: r}
}

// List returns a page of the user's inbox and marks it seen
func (s *Service) List(ctx context.Context, userID int64, filter string, page, deleted int64) ([]domain.Notification, error) {
	filter, err := domain.ParseNotificationFilter(filter)
	if err != nil {
		return nil, err
	}

	skip := repository.PageToSkip(page, domain.NotificationPageSize)
	if deleted > 0 {
		skip = max(skip-deleted, 0)
	}
	res, err := s.repo.Fetch(ctx, userID, filter, skip, domain.NotificationPageSize)
	if err != nil {
		return nil, err
	}

	unseen := make([]int64, 0, len(res))
	for _, n := range res {
		if !n.Seen {
			unseen = append(unseen, n.ID)
		}
	}
	if err := s.repo.MarkSeen(ctx, userID, unseen); err != nil {
		logrus.Warnf("failed to mark notifications of user %d seen: %v", userID, err)
	}
	return res, nil
}

func (s *Service) Count(ctx context.Context, userID int64, filter string) (int64, error) {
	filter, err := domain.ParseNotificationFilter(filter)
	if err != nil {
		return 0, err
	}
	return s.repo.Count(ctx, userID, filter)
}

func (s *Service) HasNew(ctx context.Context, userID int64) (bool, error) {
	return s.repo.HasUnseen(ctx, userID)
}
