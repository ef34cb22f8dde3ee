package domain

import "context"

// BloomRepository answers "may this blog exist" without touching MySQL.
// Blogs are created by another service, so a negative answer is only a hint
// and callers confirm it against the database.
type BloomRepository interface {
	Add(ctx context.Context, blogID int64) error
	// Exists reports false only when the blog was never added
	Exists(ctx context.Context, blogID int64) (bool, error)
	BulkAdd(ctx context.Context, blogIDs []int64) error
}
