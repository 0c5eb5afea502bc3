package main

import (
	"context"
	"fmt"
	"github.com/spf13/cobra"
	"github.com/willbeason/julia-live/pkg/pixels"
	"github.com/willbeason/julia-live/pkg/present"
	"github.com/willbeason/julia-live/pkg/render"
	"github.com/willbeason/julia-live/pkg/surface/window"
	"github.com/willbeason/julia-live/pkg/workpool"
	"os"
	"os/signal"
	"runtime"
)

func init() {
	// SDL calls must come from the main thread.
	runtime.LockOSThread()
}

func mainCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "julia",
		Short: "Render a Julia set into a window as the pixels are computed",
		Args:  cobra.ExactArgs(0),
		RunE:  runCmd,
	}

	return cmd
}

func runCmd(cmd *cobra.Command, _ []string) error {
	// At this point usage information has already been printed if obviously incorrect.
	cmd.SilenceUsage = true

	p := render.Default()

	w, err := window.Open("fractal", p.Width, p.Height)
	if err != nil {
		return err
	}
	defer w.Close()

	results := pixels.NewChannel(pixels.DefaultCapacity)
	// Rows still computing after the window closes have their pixels dropped.
	defer results.Close()

	pool := workpool.New(workpool.DefaultSize())
	defer pool.Close()

	fmt.Println(headerStyle.Render(fmt.Sprintf("Julia set c=%v", p.C)))
	fmt.Println(infoStyle.Render(fmt.Sprintf("%dx%d, %d iterations, %d workers. Press Esc to quit.",
		p.Width, p.Height, p.MaxIterations, pool.Size())))

	err = render.Dispatch(pool, p, pixels.NewProducer(results))
	if err != nil {
		return err
	}

	return present.New(w, results, p.Width, p.Height).Run(cmd.Context())
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
