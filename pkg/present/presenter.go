// Package present paints streamed pixel results onto a display surface from a
// single goroutine, flipping the surface at a capped frame rate until the user
// quits.
package present

import (
	"context"
	"fmt"
	"github.com/willbeason/julia-live/pkg/pixels"
	"image"
	"image/color"
)

// Surface is the display the presenter draws on. Implementations need not be
// safe for concurrent use; only the presenter goroutine touches them.
type Surface interface {
	SetDrawColor(c color.RGBA) error
	DrawPoint(x, y int) error
	// Present makes every point drawn so far visible.
	Present() error
	// PollEvent returns the next pending input event without waiting.
	PollEvent() (Event, bool)
}

// Source yields pixel results without blocking. *pixels.Channel is one.
type Source interface {
	TryReceive() (pixels.Result, bool)
	Len() int
}

// State is the presenter's lifecycle state.
type State int

const (
	Running State = iota
	Terminated
)

func (s State) String() string {
	switch s {
	case Running:
		return "running"
	case Terminated:
		return "terminated"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Stats counts what the presenter has done so far.
type Stats struct {
	Iterations int
	Painted    int
	Discarded  int
	Presents   int
}

// Presenter owns the framebuffer of a Surface.
type Presenter struct {
	surface Surface
	source  Source
	bounds  image.Rectangle
	clock   *FrameClock

	state State
	stats Stats
}

// New creates a Running presenter for a width by height surface.
func New(surface Surface, source Source, width, height int) *Presenter {
	return &Presenter{
		surface: surface,
		source:  source,
		bounds:  image.Rect(0, 0, width, height),
		clock:   NewFrameClock(),
	}
}

// WithClock replaces the presenter's frame clock.
func (p *Presenter) WithClock(c *FrameClock) *Presenter {
	p.clock = c
	return p
}

func (p *Presenter) State() State {
	return p.state
}

func (p *Presenter) Stats() Stats {
	return p.stats
}

// Run loops until a terminating event arrives, ctx is cancelled, or the surface
// fails. Surface failures are returned and are not recoverable.
func (p *Presenter) Run(ctx context.Context) error {
	for p.state == Running {
		select {
		case <-ctx.Done():
			p.state = Terminated
			return nil
		default:
		}

		if err := p.Step(); err != nil {
			return err
		}
	}

	return nil
}

// Step runs one loop iteration: paint every result available when the
// iteration started, handle pending input, and present if the frame is due.
//
// The frame start is stamped on the first iteration after a present and kept
// across iterations until the next present, rather than restamped every
// iteration. Elapsed time is therefore measured per frame, so a loop spinning
// faster than FrameInterval still presents about 60 times a second and never
// sooner than FrameInterval after the frame opened.
//
// Step does nothing once the presenter has terminated.
func (p *Presenter) Step() error {
	if p.state != Running {
		return nil
	}

	p.stats.Iterations++
	p.clock.Begin()

	if err := p.paint(); err != nil {
		return err
	}

	for {
		e, ok := p.surface.PollEvent()
		if !ok {
			break
		}
		if e.Terminates() {
			p.state = Terminated
			return nil
		}
	}

	if p.clock.Due() {
		if err := p.surface.Present(); err != nil {
			return fmt.Errorf("presenting frame: %w", err)
		}
		p.stats.Presents++
		p.clock.Reset()
	}

	return nil
}

func (p *Presenter) paint() error {
	// Results arriving while painting wait for the next iteration, so a busy
	// pool cannot keep the loop from polling input.
	for n := p.source.Len(); n > 0; n-- {
		r, ok := p.source.TryReceive()
		if !ok {
			break
		}

		if !image.Pt(r.X, r.Y).In(p.bounds) {
			p.stats.Discarded++
			continue
		}

		if err := p.surface.SetDrawColor(r.Color); err != nil {
			return fmt.Errorf("setting draw color: %w", err)
		}
		if err := p.surface.DrawPoint(r.X, r.Y); err != nil {
			return fmt.Errorf("drawing point (%d, %d): %w", r.X, r.Y, err)
		}
		p.stats.Painted++
	}

	return nil
}
