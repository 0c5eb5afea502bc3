// Package window is the SDL2 display surface: a fixed-size window whose
// renderer is drawn point by point and flipped on Present.
//
// SDL must be driven from the main OS thread. Callers lock it with
// runtime.LockOSThread before calling Open.
package window

import (
	"fmt"
	"github.com/veandco/go-sdl2/sdl"
	"github.com/willbeason/julia-live/pkg/present"
	"image/color"
)

// Window is an SDL window and its renderer.
type Window struct {
	window   *sdl.Window
	renderer *sdl.Renderer
}

// Open initializes SDL video and creates a centered width by height window
// cleared to black.
func Open(title string, width, height int) (*Window, error) {
	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		return nil, fmt.Errorf("initializing SDL video: %w", err)
	}

	w, err := sdl.CreateWindow(title, sdl.WINDOWPOS_CENTERED, sdl.WINDOWPOS_CENTERED,
		int32(width), int32(height), sdl.WINDOW_SHOWN)
	if err != nil {
		sdl.Quit()
		return nil, fmt.Errorf("creating window: %w", err)
	}

	r, err := sdl.CreateRenderer(w, -1, sdl.RENDERER_ACCELERATED)
	if err != nil {
		_ = w.Destroy()
		sdl.Quit()
		return nil, fmt.Errorf("creating renderer: %w", err)
	}

	win := &Window{window: w, renderer: r}

	if err := r.SetDrawColor(0, 0, 0, 0xff); err != nil {
		win.Close()
		return nil, fmt.Errorf("clearing window: %w", err)
	}
	if err := r.Clear(); err != nil {
		win.Close()
		return nil, fmt.Errorf("clearing window: %w", err)
	}
	r.Present()

	return win, nil
}

func (w *Window) SetDrawColor(c color.RGBA) error {
	return w.renderer.SetDrawColor(c.R, c.G, c.B, c.A)
}

func (w *Window) DrawPoint(x, y int) error {
	return w.renderer.DrawPoint(int32(x), int32(y))
}

func (w *Window) Present() error {
	w.renderer.Present()
	return nil
}

// PollEvent translates the next pending SDL event.
func (w *Window) PollEvent() (present.Event, bool) {
	event := sdl.PollEvent()
	if event == nil {
		return present.Event{}, false
	}

	switch e := event.(type) {
	case *sdl.QuitEvent:
		return present.Event{Kind: present.Quit}, true
	case *sdl.KeyboardEvent:
		if e.Type != sdl.KEYDOWN {
			return present.Event{Kind: present.Other}, true
		}
		key := present.KeyUnknown
		if e.Keysym.Sym == sdl.K_ESCAPE {
			key = present.KeyEscape
		}
		return present.Event{Kind: present.KeyDown, Key: key}, true
	default:
		return present.Event{Kind: present.Other}, true
	}
}

// Close destroys the renderer and window and shuts SDL down.
func (w *Window) Close() {
	_ = w.renderer.Destroy()
	_ = w.window.Destroy()
	sdl.Quit()
}

var _ present.Surface = (*Window)(nil)
