package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"runtime"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-rain/engine"
	"github.com/lixenwraith/vi-rain/parameter"
	"github.com/lixenwraith/vi-rain/parameter/visual"
	"github.com/lixenwraith/vi-rain/rain"
	"github.com/lixenwraith/vi-rain/render"
	"github.com/lixenwraith/vi-rain/status"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes one invocation and returns the process exit code
// os.Exit is left to main so deferred cleanup, including the log file, always runs
func run(args []string, stdout, stderr io.Writer) int {
	o, err := parseOptions(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		fmt.Fprintf(stderr, "vi-rain: %v\n", err)
		return 2
	}

	logFile := setupLogging(o.debug)
	defer closeLogging(logFile)

	if o.list {
		printList(stdout)
		return 0
	}

	r, err := o.build()
	if err != nil {
		log.Printf("config error: %v", err)
		fmt.Fprintf(stderr, "vi-rain: %v\n", err)
		return 2
	}
	log.Printf("config: preset=%s %s", o.preset, describe(r.Config()))

	if o.snapshot {
		if err := runSnapshot(stdout, r, o); err != nil {
			fmt.Fprintf(stderr, "vi-rain: %v\n", err)
			return 1
		}
		return 0
	}

	if err := runInteractive(r, o); err != nil {
		log.Printf("exit: %v", err)
		fmt.Fprintf(stderr, "vi-rain: %v\n", err)
		return 1
	}
	return 0
}

// describe is a one-line summary of cfg for logs and captions
func describe(cfg rain.Config) string {
	return fmt.Sprintf("chars=%s density=%s speed=%s variance=%g tail=%v noise=%v seed=%d",
		cfg.Charset, cfg.Density, cfg.Speed, cfg.Variance, cfg.TailLifespan, cfg.NoiseInterval, cfg.Seed)
}

// runInteractive animates r on the terminal until q, Esc or Ctrl-C
// Frames are composited into a RenderBuffer across workers, then blitted to the screen
func runInteractive(r rain.Rain, o options) (err error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}

	// Panic Recovery: restore the terminal before printing the crash
	defer func() {
		if p := recover(); p != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "\n\x1b[31mVI-RAIN CRASHED: %v\x1b[0m\n", p)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			err = fmt.Errorf("panic: %v", p)
		}
	}()
	defer screen.Fini()

	screen.SetStyle(tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite))
	screen.HideCursor()
	screen.Clear()

	clock := engine.NewPausableClock(nil, o.at)
	sink := render.NewScreenSink(screen)
	w, h := sink.Size()
	buf := render.NewRenderBuffer(w, h, visual.RgbBlack)
	workers := runtime.GOMAXPROCS(0)
	line := newStatusLine(o.preset)

	quit := make(chan struct{})
	defer close(quit)
	events := make(chan tcell.Event, parameter.EventQueueSize)
	go func() {
		for {
			ev := screen.PollEvent()
			// nil after Fini
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-quit:
				return
			}
		}
	}()

	ticker := time.NewTicker(time.Second / time.Duration(o.fps))
	defer ticker.Stop()

	stats := status.NewRegistry()
	frames := stats.Counter("frames")
	slowFrames := stats.Counter("slow_frames")
	resizes := stats.Counter("resizes")
	drops := stats.Gauge("drops")
	frameMs := stats.Gauge("frame_ms")
	peakMs := stats.Gauge("peak_frame_ms")
	defer func() { log.Print(exitSummary(stats, clock)) }()

	for {
		select {
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventResize:
				screen.Sync()
				resizes.Add(1)
				w, h = screen.Size()
				buf.Resize(w, h)
				log.Printf("resize: %dx%d", w, h)
			case *tcell.EventKey:
				if !handleKey(ev, clock, &r, line) {
					return nil
				}
			}

		case <-ticker.C:
			start := time.Now()
			frame, err := r.WithElapsed(clock.Elapsed()).Compose(w, h)
			if err != nil {
				return err
			}
			buf.Clear()
			frame.DrawParallel(buf, workers)
			line.draw(buf, frame.Elapsed(), clock.IsPaused())
			sink.Blit(buf)
			screen.Show()

			d := time.Since(start)
			ms := float64(d) / float64(time.Millisecond)
			frames.Add(1)
			drops.Store(float64(frame.DropCount()))
			frameMs.Store(ms)
			peakMs.StoreMax(ms)
			if d > parameter.SlowFrameThreshold {
				slowFrames.Add(1)
				log.Printf("slow frame: %v at %dx%d", d, w, h)
			}
		}
	}
}

// exitSummary is the stats line logged when the interactive loop ends
func exitSummary(stats *status.Registry, clock *engine.PausableClock) string {
	return fmt.Sprintf("stats: %s paused=%v", stats.Summary(), clock.TotalPauseDuration().Truncate(time.Millisecond))
}

// handleKey applies one key press; false means quit
func handleKey(ev *tcell.EventKey, clock *engine.PausableClock, r *rain.Rain, line *statusLine) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyLeft:
		clock.Seek(-parameter.SeekStep)
		line.flash(fmt.Sprintf("seek %v", clock.Elapsed().Truncate(time.Millisecond)))
	case tcell.KeyRight:
		clock.Seek(parameter.SeekStep)
		line.flash(fmt.Sprintf("seek %v", clock.Elapsed().Truncate(time.Millisecond)))
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q', 'Q':
			return false
		case ' ':
			if clock.Toggle() {
				log.Printf("paused at %v", clock.Elapsed())
			}
		case 'n':
			*r = r.WithSeed(r.Config().Seed + 1)
			line.flash(fmt.Sprintf("seed %d", r.Config().Seed))
		case 'N':
			*r = r.WithSeed(r.Config().Seed - 1)
			line.flash(fmt.Sprintf("seed %d", r.Config().Seed))
		}
	}
	return true
}

// runSnapshot writes a caption and one frame to w
func runSnapshot(w io.Writer, r rain.Rain, o options) error {
	buf := render.NewRenderBuffer(o.width, o.height, visual.RgbBlack)
	if err := r.Render(buf, o.width, o.height); err != nil {
		return err
	}
	profile := resolveProfile(o.profile, w)
	if _, err := fmt.Fprintln(w, caption(r, o.preset, profile)); err != nil {
		return err
	}
	return render.WriteANSI(w, buf, profile)
}
