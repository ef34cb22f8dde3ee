package workers

import (
	"context"
	"time"

	"github.com/Guyuepp/blog-comment-thread/domain"
	"github.com/sirupsen/logrus"
)

const (
	repairBatchSize     = 100
	repairFlushInterval = 1 * time.Second
)

type counterRepairWorker struct {
	BlogRepo domain.BlogAggregateStore
	ch       chan int64
}

var _ domain.CounterRepairWorker = (*counterRepairWorker)(nil)

func NewCounterRepairWorker(br domain.BlogAggregateStore) *counterRepairWorker {
	return &counterRepairWorker{
		BlogRepo: br,
		ch:       make(chan int64, 1024),
	}
}

// Send queues a recount of the blog counters
func (w *counterRepairWorker) Send(blogID int64) {
	select {
	case w.ch <- blogID:
	default:
		logrus.Warnf("CounterRepairWorker's channel is full, recount of blog %d dropped", blogID)
	}
}

func (w *counterRepairWorker) Start(ctx context.Context) {
	ticker := time.NewTicker(repairFlushInterval)
	defer ticker.Stop()

	batch := make([]int64, 0, repairBatchSize)
	for {
		select {
		case blogID := <-w.ch:
			batch = append(batch, blogID)
			if len(batch) == repairBatchSize {
				w.flush(ctx, batch)
				batch = make([]int64, 0, repairBatchSize)
			}
		case <-ticker.C:
			if len(batch) > 0 {
				w.flush(ctx, batch)
				batch = make([]int64, 0, repairBatchSize)
			}
		case <-ctx.Done():
			logrus.Info("shutting down CounterRepairWorker, flushing remain tasks...")
			w.drain(batch)
			return
		}
	}
}

// drain flushes what is buffered with a fresh context, the worker's own
// context being already cancelled.
func (w *counterRepairWorker) drain(batch []int64) {
	for {
		select {
		case blogID := <-w.ch:
			batch = append(batch, blogID)
		default:
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			w.flush(ctx, batch)
			return
		}
	}
}

func (w *counterRepairWorker) flush(ctx context.Context, batch []int64) {
	seen := make(map[int64]struct{}, len(batch))
	for _, blogID := range batch {
		if _, ok := seen[blogID]; ok {
			continue
		}
		seen[blogID] = struct{}{}
		if err := w.BlogRepo.Recount(ctx, blogID); err != nil {
			logrus.Errorf("failed to recount comments of blog %d: %v", blogID, err)
			continue
		}
		logrus.Infof("recounted comment counters of blog %d", blogID)
	}
}
