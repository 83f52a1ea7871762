package receipts

import (
	"context"
	"sync"

	"go.uber.org/zap"
)

//go:generate mockgen -source=workerpool.go -destination=mock_workerpool.go -package=receipts

type WorkerPoolI interface {
	AddTask(ctx context.Context, task Task) error
	Close()
}

type Task func() error

// WorkerPool runs tasks on a fixed number of goroutines. Task errors are
// logged and never stop a worker.
type WorkerPool struct {
	tasks chan Task
	once  sync.Once
	wg    sync.WaitGroup
}

func NewWorkerPool(size int) *WorkerPool {
	if size < 1 {
		size = 1
	}
	wp := &WorkerPool{tasks: make(chan Task, size)}
	wp.wg.Add(size)
	for i := 0; i < size; i++ {
		go wp.worker()
	}
	return wp
}

func (wp *WorkerPool) worker() {
	defer wp.wg.Done()
	for task := range wp.tasks {
		if err := task(); err != nil {
			zap.L().Error("receipt check failed", zap.Error(err))
		}
	}
}

func (wp *WorkerPool) AddTask(ctx context.Context, task Task) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case wp.tasks <- task:
		return nil
	}
}

// Close stops accepting tasks and waits for queued ones to finish. It must
// not race with AddTask.
func (wp *WorkerPool) Close() {
	wp.once.Do(func() {
		close(wp.tasks)
	})
	wp.wg.Wait()
}
