package surface

import (
	"errors"
	"fmt"
	"github.com/willbeason/julia-live/pkg/present"
	"image"
	"image/color"
	"image/draw"
)

// ErrOutOfBounds is returned when drawing outside the surface.
var ErrOutOfBounds = errors.New("point outside surface")

// Canvas is an in-memory surface. Points are drawn onto a back buffer and
// copied to the front image on Present.
type Canvas struct {
	back  *image.RGBA
	front *image.RGBA
	color color.RGBA

	events    []present.Event
	quitAfter int
	quitSent  bool

	painted  int
	presents int
}

// NewCanvas creates a black width by height Canvas.
func NewCanvas(width, height int) *Canvas {
	r := image.Rect(0, 0, width, height)
	c := &Canvas{
		back:  image.NewRGBA(r),
		front: image.NewRGBA(r),
	}
	fillBlack(c.back)
	fillBlack(c.front)

	return c
}

func fillBlack(img *image.RGBA) {
	draw.Draw(img, img.Rect, image.NewUniform(color.RGBA{A: 0xff}), image.Point{}, draw.Src)
}

// Push queues an input event for PollEvent.
func (c *Canvas) Push(e present.Event) {
	c.events = append(c.events, e)
}

// QuitAfter makes the Canvas report a Quit event once n points have been
// drawn.
func (c *Canvas) QuitAfter(n int) {
	c.quitAfter = n
	c.quitSent = false
}

func (c *Canvas) SetDrawColor(col color.RGBA) error {
	c.color = col
	return nil
}

func (c *Canvas) DrawPoint(x, y int) error {
	if !image.Pt(x, y).In(c.back.Rect) {
		return fmt.Errorf("%w: (%d, %d) on %v", ErrOutOfBounds, x, y, c.back.Rect)
	}

	c.back.SetRGBA(x, y, c.color)
	c.painted++

	return nil
}

func (c *Canvas) Present() error {
	copy(c.front.Pix, c.back.Pix)
	c.presents++

	return nil
}

func (c *Canvas) PollEvent() (present.Event, bool) {
	if len(c.events) > 0 {
		e := c.events[0]
		c.events = c.events[1:]
		return e, true
	}

	if c.quitAfter > 0 && !c.quitSent && c.painted >= c.quitAfter {
		c.quitSent = true
		return present.Event{Kind: present.Quit}, true
	}

	return present.Event{}, false
}

// Painted is the number of points drawn so far.
func (c *Canvas) Painted() int {
	return c.painted
}

// Presents is the number of times the Canvas has been presented.
func (c *Canvas) Presents() int {
	return c.presents
}

// Image is everything drawn so far, presented or not.
func (c *Canvas) Image() *image.RGBA {
	return c.back
}

// Visible is the image as of the last Present.
func (c *Canvas) Visible() *image.RGBA {
	return c.front
}

var _ present.Surface = (*Canvas)(nil)
