package engine

import (
	"context"
	"sync"

	"go.uber.org/zap"
)

// WorkerPoolI bounds how many jobs the pipeline touches at once.
type WorkerPoolI interface {
	AddTask(ctx context.Context, task Task) error
	Close()
}

// Task is one unit of pipeline work, a submit or poll for a single job.
type Task func() error

// WorkerPool runs tasks on a fixed set of goroutines. Task errors are
// logged and swallowed so one failing job never takes a worker down.
type WorkerPool struct {
	tasks     chan Task
	workers   sync.WaitGroup
	closeOnce sync.Once
}

func NewWorkerPool(size int) *WorkerPool {
	wp := &WorkerPool{tasks: make(chan Task, size)}
	wp.workers.Add(size)
	for i := 0; i < size; i++ {
		go func() {
			defer wp.workers.Done()
			for task := range wp.tasks {
				if err := task(); err != nil {
					zap.L().Error("Task execution failed", zap.Error(err))
				}
			}
		}()
	}
	return wp
}

// AddTask hands a task to the pool, blocking while every worker is busy
// and the backlog is full.
func (wp *WorkerPool) AddTask(ctx context.Context, task Task) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case wp.tasks <- task:
		return nil
	}
}

// Close stops intake and waits for the backlog to drain. Safe to call
// more than once.
func (wp *WorkerPool) Close() {
	wp.closeOnce.Do(func() {
		close(wp.tasks)
	})
	wp.workers.Wait()
}
