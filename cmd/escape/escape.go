package main

import (
	"context"
	"errors"
	"fmt"
	"github.com/corona10/goimagehash"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"github.com/willbeason/julia-live/pkg/pixels"
	"github.com/willbeason/julia-live/pkg/present"
	"github.com/willbeason/julia-live/pkg/render"
	"github.com/willbeason/julia-live/pkg/surface"
	"github.com/willbeason/julia-live/pkg/workpool"
	"image"
	"io"
	"os"
	"os/signal"
	"time"
)

// ErrMismatch is returned when the streamed image differs from the serial one.
var ErrMismatch = errors.New("streamed image differs from reference")

func mainCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "escape",
		Short: "Stream the Julia set onto an off-screen canvas and check every pixel",
		Args:  cobra.ExactArgs(0),
		RunE:  runCmd,
	}

	return cmd
}

// Report summarizes one headless run.
type Report struct {
	Pixels     int
	Painted    int
	Mismatched int
	Dropped    int64
	Presents   int
	Elapsed    time.Duration

	Hash          *goimagehash.ImageHash
	ReferenceHash *goimagehash.ImageHash
}

// progressCanvas advances a progress bar for every point drawn.
type progressCanvas struct {
	*surface.Canvas
	bar *progressbar.ProgressBar
}

func (c progressCanvas) DrawPoint(x, y int) error {
	if err := c.Canvas.DrawPoint(x, y); err != nil {
		return err
	}
	return c.bar.Add(1)
}

func newBar(total int, w io.Writer) *progressbar.ProgressBar {
	return progressbar.NewOptions(total,
		progressbar.OptionSetWriter(w),
		progressbar.OptionSetDescription("painting"),
		progressbar.OptionShowCount(),
		progressbar.OptionThrottle(65*time.Millisecond),
		progressbar.OptionClearOnFinish(),
	)
}

// check runs the full pipeline with a channel sized never to drop, stopping
// once every pixel has been painted, and compares the result with the serial
// render.
func check(ctx context.Context, p render.Params, progress io.Writer) (Report, error) {
	start := time.Now()

	canvas := surface.NewCanvas(p.Width, p.Height)
	canvas.QuitAfter(p.Pixels())
	bar := newBar(p.Pixels(), progress)

	results := pixels.NewChannel(p.Pixels())
	defer results.Close()
	producer := pixels.NewProducer(results)

	pool := workpool.New(workpool.DefaultSize())
	defer pool.Close()

	if err := render.Dispatch(pool, p, producer); err != nil {
		return Report{}, err
	}

	presenter := present.New(progressCanvas{Canvas: canvas, bar: bar}, results, p.Width, p.Height)
	if err := presenter.Run(ctx); err != nil {
		return Report{}, err
	}
	_ = bar.Finish()

	report := Report{
		Pixels:   p.Pixels(),
		Painted:  canvas.Painted(),
		Dropped:  producer.Dropped(),
		Presents: canvas.Presents(),
		Elapsed:  time.Since(start),
	}

	if report.Painted < report.Pixels {
		return report, fmt.Errorf("interrupted after %d of %d pixels", report.Painted, report.Pixels)
	}

	ref := render.Reference(p)
	report.Mismatched = mismatches(canvas.Image(), ref)

	var err error
	report.Hash, err = goimagehash.PerceptionHash(canvas.Image())
	if err != nil {
		return report, fmt.Errorf("hashing streamed image: %w", err)
	}
	report.ReferenceHash, err = goimagehash.PerceptionHash(ref)
	if err != nil {
		return report, fmt.Errorf("hashing reference image: %w", err)
	}

	if report.Mismatched > 0 {
		return report, fmt.Errorf("%w: %d pixels", ErrMismatch, report.Mismatched)
	}

	return report, nil
}

// mismatches counts the pixels where a and b differ.
func mismatches(a, b *image.RGBA) int {
	n := 0
	r := a.Bounds().Union(b.Bounds())
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			if a.RGBAAt(x, y) != b.RGBAAt(x, y) {
				n++
			}
		}
	}
	return n
}

func runCmd(cmd *cobra.Command, _ []string) error {
	// At this point usage information has already been printed if obviously incorrect.
	cmd.SilenceUsage = true

	p := render.Default()
	fmt.Println(headerStyle.Render(fmt.Sprintf("Julia set c=%v, %dx%d, %d iterations",
		p.C, p.Width, p.Height, p.MaxIterations)))

	report, err := check(cmd.Context(), p, cmd.ErrOrStderr())
	if err != nil {
		fmt.Println(errorStyle.Render(fmt.Sprintf("❌ %v", err)))
		return err
	}

	fmt.Println(infoStyle.Render(fmt.Sprintf("Painted %d pixels in %v across %d presents (%d dropped)",
		report.Painted, report.Elapsed.Round(time.Millisecond), report.Presents, report.Dropped)))
	fmt.Println(infoStyle.Render(fmt.Sprintf("Perceptual hash %s", report.Hash.ToString())))

	distance, err := report.Hash.Distance(report.ReferenceHash)
	if err != nil {
		return fmt.Errorf("comparing hashes: %w", err)
	}
	fmt.Println(successStyle.Render(fmt.Sprintf("✅ All %d pixels match the serial render (hash distance %d)",
		report.Pixels, distance)))

	return nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)

	err := mainCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		// At this point the error has already been printed; no need to print again.
		os.Exit(1)
	}
}
