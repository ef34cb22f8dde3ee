package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Guyuepp/blog-comment-thread/domain"
	"github.com/Guyuepp/blog-comment-thread/internal/repository/cache"
	"github.com/redis/go-redis/v9"
)

const (
	KeyBlogRootComments = "comment:blog:%d:roots"

	// the physical TTL outlives the logical one so stale data can be served
	// while it is rebuilt
	rootsPhysicalTTLFactor = 3
)

type commentCache struct {
	client *redis.Client
}

var _ domain.RootPageCache = (*commentCache)(nil)

func NewCommentCache(client *redis.Client) *commentCache {
	return &commentCache{
		client,
	}
}

func (c *commentCache) GetRoots(ctx context.Context, blogID int64) ([]domain.Comment, bool, error) {
	key := fmt.Sprintf(KeyBlogRootComments, blogID)
	data, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, domain.ErrCacheMiss
	} else if err != nil {
		return nil, false, err
	}

	var entry cache.DataWithLogicalExpire[[]domain.Comment]
	if err = json.Unmarshal(data, &entry); err != nil {
		return nil, false, err
	}
	return entry.Data, entry.IsLogicalExpired(), nil
}

func (c *commentCache) SetRoots(ctx context.Context, blogID int64, roots []domain.Comment, ttl time.Duration) error {
	key := fmt.Sprintf(KeyBlogRootComments, blogID)
	data, err := json.Marshal(cache.NewDataWithLogicalExpire(roots, ttl))
	if err != nil {
		return err
	}
	return c.client.Set(ctx, key, data, ttl*rootsPhysicalTTLFactor).Err()
}

func (c *commentCache) Invalidate(ctx context.Context, blogID int64) error {
	key := fmt.Sprintf(KeyBlogRootComments, blogID)
	return c.client.Del(ctx, key).Err()
}
