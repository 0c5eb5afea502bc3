package workpool

import (
	"errors"
	"fmt"
	"github.com/alitto/pond/v2"
	"runtime"
	"sync"
)

// ErrClosed is returned when submitting to a Pool which no longer accepts work.
var ErrClosed = errors.New("workpool: pool is closed")

// DefaultSize is twice the number of logical CPUs.
func DefaultSize() int {
	return 2 * runtime.NumCPU()
}

// A Pool runs fire-and-forget jobs on at most a fixed number of workers.
// Jobs queue without bound so Submit never blocks: rows are dispatched before
// the presenter starts draining pixels.
type Pool struct {
	pool pond.Pool

	stopOnce sync.Once
	stopped  pond.Task
}

// New starts a Pool with size workers. A size below 1 starts one worker.
func New(size int) *Pool {
	if size < 1 {
		size = 1
	}

	return &Pool{pool: pond.NewPool(size)}
}

// Size is the number of workers.
func (p *Pool) Size() int {
	return p.pool.MaxConcurrency()
}

// Submit queues job for execution.
func (p *Pool) Submit(job func()) error {
	err := p.pool.Go(job)
	if errors.Is(err, pond.ErrPoolStopped) {
		return ErrClosed
	}
	if err != nil {
		return fmt.Errorf("queueing job: %w", err)
	}

	return nil
}

// Close stops the Pool accepting work. Jobs already queued still run.
func (p *Pool) Close() {
	p.stopOnce.Do(func() {
		p.stopped = p.pool.Stop()
	})
}

// Wait closes the Pool and blocks until every queued job has finished.
func (p *Pool) Wait() {
	p.Close()
	_ = p.stopped.Wait()
}
