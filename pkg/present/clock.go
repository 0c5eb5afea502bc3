package present

import (
	"github.com/willbeason/julia-live/pkg/pixels"
	"time"
)

// FrameInterval is the minimum time between presents, capping the frame rate
// at 60 Hz. Producers back off for the same interval.
const FrameInterval = pixels.FrameInterval

// FrameClock tracks how long the current frame has been open.
//
// A frame opens on the first Begin after a Reset and stays open across loop
// iterations until the presenter flips it, so a loop which spins faster than
// the frame interval still presents at the frame rate.
type FrameClock struct {
	Interval time.Duration
	Now      func() time.Time

	start time.Time
}

// NewFrameClock returns a wall-clock FrameClock with the default interval.
func NewFrameClock() *FrameClock {
	return &FrameClock{Interval: FrameInterval, Now: time.Now}
}

// Begin stamps the start of a frame unless one is already open.
func (c *FrameClock) Begin() {
	if c.start.IsZero() {
		c.start = c.Now()
	}
}

// Elapsed is the time since the current frame opened.
func (c *FrameClock) Elapsed() time.Duration {
	if c.start.IsZero() {
		return 0
	}
	return c.Now().Sub(c.start)
}

// Due reports whether the current frame has been open for a full interval.
func (c *FrameClock) Due() bool {
	return !c.start.IsZero() && c.Elapsed() >= c.Interval
}

// Reset closes the current frame.
func (c *FrameClock) Reset() {
	c.start = time.Time{}
}
