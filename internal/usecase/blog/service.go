package blog

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/Guyuepp/blog-comment-thread/domain"
)

const bloomInitBatch = 1000

type Service struct {
	blogRepo  domain.BlogAggregateStore
	bloomRepo domain.BloomRepository
}

var _ domain.BlogUsecase = (*Service)(nil)

// NewService will create a new blog service object
func NewService(b domain.BlogAggregateStore, bloom domain.BloomRepository) *Service {
	return &Service{
		blogRepo:  b,
		bloomRepo: bloom,
	}
}

// GetActivity returns the comment counters of a blog
func (s *Service) GetActivity(ctx context.Context, blogID int64) (domain.Blog, error) {
	return s.blogRepo.GetByID(ctx, blogID)
}

// InitBloomFilter 启动时把所有博客ID写入布隆过滤器
func (s *Service) InitBloomFilter(ctx context.Context) error {
	var (
		cursor int64
		total  int
	)
	for {
		ids, err := s.blogRepo.FetchIDs(ctx, cursor, bloomInitBatch)
		if err != nil {
			logrus.Errorf("failed to FetchIDs from repo: %v", err)
			return err
		}
		if len(ids) == 0 {
			break
		}
		if err := s.bloomRepo.BulkAdd(ctx, ids); err != nil {
			logrus.Errorf("failed to BulkAdd to bloom filter: %v", err)
			return err
		}
		total += len(ids)
		cursor = ids[len(ids)-1]
		if len(ids) < bloomInitBatch {
			break
		}
	}
	logrus.Infof("bloom filter loaded with %d blog ids", total)
	return nil
}
