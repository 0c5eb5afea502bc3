package pixels

import (
	"sync/atomic"
	"time"
)

// FrameInterval is how long a producer backs off after a failed send.
const FrameInterval = time.Second / 60

// Producer is the sending side used by workers.
//
// Send is best effort: when the Channel is full or closed the worker sleeps
// for Pause and the Result is dropped, not retried. Under sustained
// backpressure pixels are lost; Dropped counts them.
type Producer struct {
	Channel *Channel

	// Pause defaults to FrameInterval.
	Pause time.Duration
	// Sleep defaults to time.Sleep.
	Sleep func(time.Duration)

	dropped atomic.Int64
}

// NewProducer returns a Producer with the default backoff.
func NewProducer(c *Channel) *Producer {
	return &Producer{
		Channel: c,
		Pause:   FrameInterval,
		Sleep:   time.Sleep,
	}
}

// Send attempts to deliver r once. It reports whether r was delivered.
func (p *Producer) Send(r Result) bool {
	if p.Channel.TrySend(r) {
		return true
	}

	p.dropped.Add(1)

	sleep := p.Sleep
	if sleep == nil {
		sleep = time.Sleep
	}
	pause := p.Pause
	if pause <= 0 {
		pause = FrameInterval
	}
	sleep(pause)

	return false
}

// Dropped is the number of Results lost to backpressure so far.
func (p *Producer) Dropped() int64 {
	return p.dropped.Load()
}
