package pixels

import (
	"image/color"
	"sync"
)

// DefaultCapacity matches SDL's event queue limit.
const DefaultCapacity = 65535

// Result is one computed pixel.
type Result struct {
	X, Y  int
	Color color.RGBA
}

// Channel is a bounded multi-producer, single-consumer queue of Results.
// Delivery order between producers is unspecified.
type Channel struct {
	results chan Result

	closeOnce sync.Once
	done      chan struct{}
}

// NewChannel creates a Channel holding at most capacity undelivered Results.
func NewChannel(capacity int) *Channel {
	if capacity < 1 {
		capacity = 1
	}

	return &Channel{
		results: make(chan Result, capacity),
		done:    make(chan struct{}),
	}
}

// TrySend enqueues r if there is room and the consumer has not gone away.
// It never blocks.
func (c *Channel) TrySend(r Result) bool {
	select {
	case <-c.done:
		return false
	default:
	}

	select {
	case c.results <- r:
		return true
	default:
		return false
	}
}

// TryReceive dequeues the next available Result. It never blocks; ok is false
// when nothing is waiting.
func (c *Channel) TryReceive() (r Result, ok bool) {
	select {
	case r = <-c.results:
		return r, true
	default:
		return Result{}, false
	}
}

// Len is the number of Results currently waiting.
func (c *Channel) Len() int {
	return len(c.results)
}

// Cap is the capacity of the Channel.
func (c *Channel) Cap() int {
	return cap(c.results)
}

// Close records that the consumer is gone. Later sends fail. Results still
// queued remain receivable.
func (c *Channel) Close() {
	c.closeOnce.Do(func() {
		close(c.done)
	})
}
