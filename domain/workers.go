package domain

import "context"

// CounterRepairWorker recomputes blog counters that may have drifted after a
// cascade succeeded but the counter update did not.
type CounterRepairWorker interface {
	Start(ctx context.Context)

	// Send queues a blog for recount. It never blocks.
	Send(blogID int64)
}
