package hal

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"
)

// HeadlessConfig controls the no-window host runner.
type HeadlessConfig struct {
	Enabled bool
	Hz      int
	Ticks   uint64 // stop after N ticks (0 = run until quit or cancel)

	// Unpaced steps back to back instead of waiting on a ticker. dt is still 1/Hz.
	Unpaced bool

	// Output receives log lines; nil means stdout.
	Output io.Writer
}

// RunHeadless runs the simulation without opening a window.
//
// It returns nil when the tick budget is used up or the step function returns
// ErrQuit, and ctx.Err() when ctx is cancelled.
func RunHeadless(ctx context.Context, newApp func(HAL) StepFunc, cfg HeadlessConfig) error {
	if cfg.Hz <= 0 {
		cfg.Hz = 60
	}
	out := cfg.Output
	if out == nil {
		out = os.Stdout
	}

	d := time.Second / time.Duration(cfg.Hz)
	if d <= 0 {
		return fmt.Errorf("invalid headless hz: %d", cfg.Hz)
	}
	dt := 1 / float64(cfg.Hz)

	h := newHost(out)
	step := newApp(h)

	var tickC <-chan time.Time
	if !cfg.Unpaced {
		t := time.NewTicker(d)
		defer t.Stop()
		tickC = t.C
	}

	var tick uint64
	for {
		if tickC != nil {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-tickC:
			}
		} else if err := ctx.Err(); err != nil {
			return err
		}

		if step != nil {
			if err := step(dt); err != nil {
				if errors.Is(err, ErrQuit) {
					return nil
				}
				return err
			}
		}
		tick++
		if cfg.Ticks > 0 && tick >= cfg.Ticks {
			return nil
		}
	}
}
