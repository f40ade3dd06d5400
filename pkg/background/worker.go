package background

import (
	"context"
	"fmt"
	"runtime/debug"
	"time"

	"golang.org/x/sync/errgroup"
	"ordertracker/pkg/logger"
)

// Task is a unit of periodic work.
type Task interface {
	// TTL is the pause between two runs. A non-positive TTL means run once at start only.
	TTL() time.Duration
	Do(ctx context.Context) error
	// Info names the task in logs.
	Info() string
}

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Worker struct {
	log   handlerLogger
	tasks []Task
}

// New runs every task once concurrently and fails if any of those first runs
// fails or panics. Afterwards each task is rescheduled on its own ticker until
// ctx is cancelled.
func New(ctx context.Context, log handlerLogger, tasks []Task) (*Worker, error) {
	w := &Worker{
		log:   log,
		tasks: tasks,
	}

	if err := w.warmUp(ctx); err != nil {
		return nil, fmt.Errorf("warm up background tasks: %w", err)
	}

	for _, task := range tasks {
		go w.loop(ctx, task)
	}

	return w, nil
}

func (w *Worker) warmUp(ctx context.Context) error {
	group, groupCtx := errgroup.WithContext(ctx)
	for _, task := range w.tasks {
		group.Go(func() (err error) {
			defer func() {
				if r := recover(); r != nil {
					err = fmt.Errorf("task %q panicked: %v", task.Info(), r)
					w.log.Error("background task panic during warm up",
						logger.NewField("task", task.Info()),
						logger.NewField("recover", r),
						logger.NewField("stack", string(debug.Stack())),
					)
				}
			}()

			w.log.Info("background task warm up",
				logger.NewField("task", task.Info()),
			)
			return task.Do(groupCtx)
		})
	}
	return group.Wait()
}

func (w *Worker) loop(ctx context.Context, task Task) {
	ttl := task.TTL()
	if ttl <= 0 {
		w.log.Warn("background task has no TTL, periodic runs disabled",
			logger.NewField("task", task.Info()),
		)
		return
	}

	w.log.Info("background task scheduled",
		logger.NewField("task", task.Info()),
		logger.NewField("ttl", ttl.String()),
	)

	ticker := time.NewTicker(ttl)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.log.Info("background task stopped",
				logger.NewField("task", task.Info()),
			)
			return
		case <-ticker.C:
			w.runSafely(ctx, task)
		}
	}
}

func (w *Worker) runSafely(ctx context.Context, task Task) {
	defer func() {
		if r := recover(); r != nil {
			w.log.Error("background task panic",
				logger.NewField("task", task.Info()),
				logger.NewField("recover", r),
				logger.NewField("stack", string(debug.Stack())),
			)
		}
	}()

	if err := task.Do(ctx); err != nil {
		w.log.Error("background task failed",
			logger.NewField("task", task.Info()),
			logger.NewField("error", err),
		)
	}
}
