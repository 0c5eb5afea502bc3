package render

import (
	"errors"
	"github.com/willbeason/julia-live/pkg/pixels"
	"github.com/willbeason/julia-live/pkg/spectrum"
	"github.com/willbeason/julia-live/pkg/transforms"
	"github.com/willbeason/julia-live/pkg/workpool"
	"sync"
	"testing"
	"time"
)

func drain(c *pixels.Channel) []pixels.Result {
	var results []pixels.Result
	for {
		r, ok := c.TryReceive()
		if !ok {
			return results
		}
		results = append(results, r)
	}
}

func TestDispatchDefaultImage(t *testing.T) {
	p := Default()

	c := pixels.NewChannel(p.Pixels())
	producer := pixels.NewProducer(c)
	pool := workpool.New(workpool.DefaultSize())

	if err := Dispatch(pool, p, producer); err != nil {
		t.Fatalf("Dispatch() error = %v", err)
	}
	pool.Wait()

	if producer.Dropped() != 0 {
		t.Fatalf("Dropped() = %d on a channel sized for the whole image", producer.Dropped())
	}

	results := drain(c)
	if len(results) != 90000 {
		t.Fatalf("received %d results, expected 90000", len(results))
	}

	j := transforms.Julia2{C: complex(-0.8, 0.156)}
	seen := make(map[[2]int]bool, len(results))
	for _, r := range results {
		if r.X < 0 || r.X >= 300 || r.Y < 0 || r.Y >= 300 {
			t.Fatalf("result (%d, %d) outside the image", r.X, r.Y)
		}

		key := [2]int{r.X, r.Y}
		if seen[key] {
			t.Fatalf("pixel (%d, %d) delivered twice", r.X, r.Y)
		}
		seen[key] = true

		i := j.Escape(r.X, r.Y, 300, 300, 300)
		if expected := spectrum.Wavelength(380 + i*400/300); r.Color != expected {
			t.Fatalf("pixel (%d, %d) color = %v, expected %v", r.X, r.Y, r.Color, expected)
		}
	}
}

type recordingSender struct {
	mu      sync.Mutex
	results []pixels.Result
}

func (s *recordingSender) Send(r pixels.Result) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.results = append(s.results, r)
	return true
}

type inlinePool struct {
	submitted int
}

func (p *inlinePool) Submit(job func()) error {
	p.submitted++
	job()
	return nil
}

func TestDispatchOneJobPerRow(t *testing.T) {
	p := Params{Width: 7, Height: 5, MaxIterations: 20, C: C}

	pool := &inlinePool{}
	out := &recordingSender{}

	if err := Dispatch(pool, p, out); err != nil {
		t.Fatalf("Dispatch() error = %v", err)
	}

	if pool.submitted != p.Height {
		t.Errorf("submitted %d jobs, expected %d", pool.submitted, p.Height)
	}
	if len(out.results) != p.Pixels() {
		t.Fatalf("sent %d results, expected %d", len(out.results), p.Pixels())
	}

	// Within a row pixels are emitted in ascending x.
	for i, r := range out.results {
		if r.X != i%p.Width || r.Y != i/p.Width {
			t.Fatalf("result %d is (%d, %d), expected (%d, %d)", i, r.X, r.Y, i%p.Width, i/p.Width)
		}
	}
}

func TestDispatchClosedPool(t *testing.T) {
	pool := workpool.New(1)
	pool.Close()
	defer pool.Wait()

	err := Dispatch(pool, Default(), &recordingSender{})
	if !errors.Is(err, workpool.ErrClosed) {
		t.Errorf("Dispatch() error = %v, expected %v", err, workpool.ErrClosed)
	}
}

func TestDispatchInvalidParams(t *testing.T) {
	pool := &inlinePool{}

	err := Dispatch(pool, Params{Width: 0, Height: 10, MaxIterations: 10}, &recordingSender{})
	if !errors.Is(err, ErrInvalidParams) {
		t.Errorf("Dispatch() error = %v, expected %v", err, ErrInvalidParams)
	}
	if pool.submitted != 0 {
		t.Errorf("submitted %d jobs for invalid params, expected 0", pool.submitted)
	}
}

// Delivery is best effort: under backpressure pixels are dropped rather than
// retried, and every pixel is either delivered or counted as dropped.
func TestDispatchLossyUnderBackpressure(t *testing.T) {
	p := Params{Width: 40, Height: 30, MaxIterations: 50, C: C}

	c := pixels.NewChannel(16)
	producer := &pixels.Producer{
		Channel: c,
		Pause:   time.Nanosecond,
		Sleep:   func(time.Duration) {},
	}
	pool := workpool.New(4)

	if err := Dispatch(pool, p, producer); err != nil {
		t.Fatalf("Dispatch() error = %v", err)
	}
	pool.Wait()

	delivered := len(drain(c))
	if delivered != c.Cap() {
		t.Errorf("delivered %d results, expected the channel capacity %d", delivered, c.Cap())
	}
	if total := int64(delivered) + producer.Dropped(); total != int64(p.Pixels()) {
		t.Errorf("delivered + dropped = %d, expected %d", total, p.Pixels())
	}
}
