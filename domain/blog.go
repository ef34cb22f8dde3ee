package domain

import "context"

// Blog is the part of a blog post this service reads or owns. The post body
// lives in the content store.
type Blog struct {
	ID                  int64  `json:"id"`
	Title               string `json:"title"`
	AuthorID            int64  `json:"author_id"`
	TotalComments       int64  `json:"total_comments"`
	TotalParentComments int64  `json:"total_parent_comments"`
}

// CounterDelta is applied to both aggregate counters in a single statement.
type CounterDelta struct {
	Comments       int64
	ParentComments int64
}

// IsZero reports whether applying d would change nothing.
func (d CounterDelta) IsZero() bool {
	return d.Comments == 0 && d.ParentComments == 0
}

// BlogAggregateStore defines the contract for blog reads and counter updates
type BlogAggregateStore interface {
	// GetByID returns ErrNotFound if the blog doesn't exist.
	GetByID(ctx context.Context, id int64) (Blog, error)

	// Incr atomically adds delta to the blog counters, without reading them
	// first. Returns ErrNotFound if the blog doesn't exist.
	Incr(ctx context.Context, blogID int64, delta CounterDelta) error

	// Recount overwrites both counters with the persisted comment counts.
	Recount(ctx context.Context, blogID int64) error

	// FetchIDs returns up to limit blog ids greater than cursor, ascending.
	FetchIDs(ctx context.Context, cursor, limit int64) ([]int64, error)
}

// BlogUsecase exposes blog activity
type BlogUsecase interface {
	GetActivity(ctx context.Context, blogID int64) (Blog, error)
	InitBloomFilter(ctx context.Context) error
}
