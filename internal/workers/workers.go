// Package workers runs detached best-effort background jobs.
// The portal uses it for work that must not delay or fail a response,
// such as the duplicate-safe profile creation attempted after every
// login and signup.
package workers

import (
	"context"
	"sync"
	"time"

	"github.com/domy-v-italii/portal/internal/logger"
)

// defaultJobTimeout bounds a single background job.
const defaultJobTimeout = 10 * time.Second

// Job is one unit of background work. The context it receives is
// detached from any HTTP request and carries only a deadline.
type Job func(ctx context.Context) error

// JobRunner executes jobs on their own goroutines. Failures are logged
// and dropped; callers never observe them.
type JobRunner struct {
	logger  *logger.Logger
	timeout time.Duration

	wg sync.WaitGroup
}

// NewJobRunner constructs a runner with the default per-job timeout.
func NewJobRunner(logger *logger.Logger) *JobRunner {
	return &JobRunner{
		logger:  logger,
		timeout: defaultJobTimeout,
	}
}

// Submit schedules job under the given name and returns immediately.
func (r *JobRunner) Submit(name string, job Job) {
	r.wg.Add(1)

	go func() {
		defer r.wg.Done()

		ctx, cancel := context.WithTimeout(context.Background(), r.timeout)
		defer cancel()

		if err := job(ctx); err != nil {
			r.logger.Err(err).Str("job", name).Msg("background job failed")
			return
		}
		r.logger.Debug().Str("job", name).Msg("background job finished")
	}()
}

// Wait blocks until every submitted job has finished. Called during
// graceful shutdown.
func (r *JobRunner) Wait() {
	r.wg.Wait()
}
