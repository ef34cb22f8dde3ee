package repository

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"

	"github.com/Guyuepp/blog-comment-thread/domain"
)

const rootsCacheTTL = 30 * time.Second

// commentRepository 协调层，协调缓存和数据库
type commentRepository struct {
	db           domain.CommentRepository
	cache        domain.RootPageCache
	rebuildGroup singleflight.Group
	// only a first page of exactly this size is cached
	pageSize int64
}

var _ domain.CommentRepository = (*commentRepository)(nil)

// NewCommentRepository 创建协调层repository
func NewCommentRepository(db domain.CommentRepository, cache domain.RootPageCache, pageSize int64) *commentRepository {
	return &commentRepository{
		db:       db,
		cache:    cache,
		pageSize: pageSize,
	}
}

// Store 创建评论，事务提交后使该博客的首页评论缓存失效
func (r *commentRepository) Store(ctx context.Context, c *domain.Comment) error {
	if err := r.db.Store(ctx, c); err != nil {
		return err
	}
	r.invalidateAfterCommit(ctx, c.BlogID)
	return nil
}

// DeleteSubtree 级联删除
func (r *commentRepository) DeleteSubtree(ctx context.Context, id int64) (domain.SubtreeRemoval, error) {
	res, err := r.db.DeleteSubtree(ctx, id)
	if err != nil {
		return res, err
	}
	if res.BlogID != 0 {
		r.invalidateAfterCommit(ctx, res.BlogID)
	}
	return res, nil
}

func (r *commentRepository) GetByID(ctx context.Context, id int64) (domain.Comment, error) {
	return r.db.GetByID(ctx, id)
}

func (r *commentRepository) FetchChildren(ctx context.Context, parentID int64, skip, limit int64) ([]domain.Comment, error) {
	return r.db.FetchChildren(ctx, parentID, skip, limit)
}

// FetchRoots 首页走逻辑过期缓存，其余页直接查库
func (r *commentRepository) FetchRoots(ctx context.Context, blogID int64, skip, limit int64) ([]domain.Comment, error) {
	if skip != 0 || limit != r.pageSize {
		return r.db.FetchRoots(ctx, blogID, skip, limit)
	}

	roots, expired, err := r.cache.GetRoots(ctx, blogID)
	if err == nil {
		if expired {
			go r.rebuildRoots(context.Background(), blogID)
		}
		return roots, nil
	}
	if !errors.Is(err, domain.ErrCacheMiss) {
		logrus.Warnf("failed to get roots of blog %d from cache: %v", blogID, err)
	}

	// 缓存未命中，使用singleflight避免缓存击穿
	result, err, _ := r.rebuildGroup.Do(rootsKey(blogID), func() (any, error) {
		return r.loadRoots(ctx, blogID)
	})
	if err != nil {
		return nil, err
	}
	return result.([]domain.Comment), nil
}

func (r *commentRepository) loadRoots(ctx context.Context, blogID int64) ([]domain.Comment, error) {
	roots, err := r.db.FetchRoots(ctx, blogID, 0, r.pageSize)
	if err != nil {
		return nil, err
	}
	if err := r.cache.SetRoots(ctx, blogID, roots, rootsCacheTTL); err != nil {
		logrus.Warnf("failed to set roots cache of blog %d: %v", blogID, err)
	}
	return roots, nil
}

// rebuildRoots 异步重建首页评论缓存
func (r *commentRepository) rebuildRoots(ctx context.Context, blogID int64) {
	_, err, _ := r.rebuildGroup.Do(rootsKey(blogID), func() (any, error) {
		return r.loadRoots(ctx, blogID)
	})
	if err != nil {
		logrus.Errorf("rebuildRoots failed for blog %d: %v", blogID, err)
	}
}

// invalidateAfterCommit defers the eviction until the write is visible, so a
// reader cannot refill the page from pre-commit rows.
func (r *commentRepository) invalidateAfterCommit(ctx context.Context, blogID int64) {
	AfterCommit(ctx, func(ctx context.Context) {
		if err := r.cache.Invalidate(ctx, blogID); err != nil {
			logrus.Warnf("failed to invalidate roots cache of blog %d: %v", blogID, err)
		}
	})
}

func rootsKey(blogID int64) string {
	return "roots:" + strconv.FormatInt(blogID, 10)
}
