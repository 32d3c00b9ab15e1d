// Package tasks provides the small in-process queue behind the application's
// fire-and-forget remote writes. Submitting never blocks the caller's state
// transition; a task's outcome only ever affects logging.
package tasks

import (
	"github.com/panjf2000/ants/v2"
	"go.uber.org/zap"
)

// Submitter schedules a named task for asynchronous execution. Failures are
// observed (logged), never propagated to the submitter.
type Submitter interface {
	Submit(name string, fn func() error)
}

// Queue runs tasks on a bounded ants worker pool.
type Queue struct {
	pool *ants.Pool
}

var _ Submitter = (*Queue)(nil)

func NewQueue(size int) (*Queue, error) {
	pool, err := ants.NewPool(size, ants.WithNonblocking(false))
	if err != nil {
		return nil, err
	}
	return &Queue{pool: pool}, nil
}

func (q *Queue) Submit(name string, fn func() error) {
	err := q.pool.Submit(func() {
		if err := fn(); err != nil {
			zap.L().Warn("background task failed",
				zap.String("task", name),
				zap.Error(err),
			)
		}
	})
	if err != nil {
		zap.L().Warn("background task rejected",
			zap.String("task", name),
			zap.Error(err),
		)
	}
}

// Release stops the pool. Pending tasks are allowed to finish.
func (q *Queue) Release() {
	q.pool.Release()
}

// Inline runs every submitted task synchronously. Used in tests where the
// write must have settled before assertions run.
type Inline struct{}

var _ Submitter = Inline{}

func (Inline) Submit(name string, fn func() error) {
	if err := fn(); err != nil {
		zap.L().Warn("background task failed",
			zap.String("task", name),
			zap.Error(err),
		)
	}
}
