package redis

import (
	"context"
	"fmt"
	"hash/crc32"
	"hash/fnv"
	"strconv"

	"github.com/Guyuepp/blog-comment-thread/domain"
	"github.com/redis/go-redis/v9"
)

// KeyBlogBloom holds the bits of every blog id known to take comments
const KeyBlogBloom = "bloom:blog:ids"

const (
	bloomHashes = 3
	// bulkAddChunk bounds the number of ids sent in one pipeline
	bulkAddChunk = 512
)

type redisBloomRepo struct {
	client  *redis.Client
	key     string
	bitSize uint64
}

var _ domain.BloomRepository = (*redisBloomRepo)(nil)

func NewRedisBloomRepo(client *redis.Client, bitSize uint64) *redisBloomRepo {
	if bitSize == 0 {
		bitSize = 1
	}
	return &redisBloomRepo{
		client:  client,
		key:     KeyBlogBloom,
		bitSize: bitSize,
	}
}

func (r *redisBloomRepo) Add(ctx context.Context, blogID int64) error {
	return r.BulkAdd(ctx, []int64{blogID})
}

func (r *redisBloomRepo) BulkAdd(ctx context.Context, blogIDs []int64) error {
	for start := 0; start < len(blogIDs); start += bulkAddChunk {
		end := min(start+bulkAddChunk, len(blogIDs))

		pipe := r.client.Pipeline()
		for _, id := range blogIDs[start:end] {
			for _, off := range r.offsets(id) {
				pipe.SetBit(ctx, r.key, int64(off), 1)
			}
		}
		if _, err := pipe.Exec(ctx); err != nil {
			return fmt.Errorf("bloom: add %d blog ids: %w", end-start, err)
		}
	}
	return nil
}

func (r *redisBloomRepo) Exists(ctx context.Context, blogID int64) (bool, error) {
	pipe := r.client.Pipeline()
	bits := make([]*redis.IntCmd, 0, bloomHashes)
	for _, off := range r.offsets(blogID) {
		bits = append(bits, pipe.GetBit(ctx, r.key, int64(off)))
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return false, fmt.Errorf("bloom: check blog %d: %w", blogID, err)
	}

	for _, b := range bits {
		if b.Val() == 0 {
			return false, nil
		}
	}
	return true, nil
}

// offsets derives the bit positions of an id by double hashing:
// crc32 + i*fnv64a, modulo the filter size.
func (r *redisBloomRepo) offsets(blogID int64) []uint64 {
	data := strconv.AppendInt(nil, blogID, 10)

	h1 := uint64(crc32.ChecksumIEEE(data))
	f := fnv.New64a()
	_, _ = f.Write(data)
	h2 := f.Sum64() | 1

	res := make([]uint64, bloomHashes)
	for i := range res {
		res[i] = (h1 + uint64(i)*h2) % r.bitSize
	}
	return res
}
