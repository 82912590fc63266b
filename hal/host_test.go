package hal

import (
	"bytes"
	"context"
	"errors"
	"testing"
)

func TestRunHeadlessStopsAfterTicks(t *testing.T) {
	var steps int
	var dts []float64
	err := RunHeadless(context.Background(), func(HAL) StepFunc {
		return func(dt float64) error {
			steps++
			dts = append(dts, dt)
			return nil
		}
	}, HeadlessConfig{Hz: 50, Ticks: 7, Unpaced: true, Output: &bytes.Buffer{}})
	if err != nil {
		t.Fatalf("RunHeadless: %v", err)
	}
	if steps != 7 {
		t.Fatalf("steps = %d, want 7", steps)
	}
	for _, dt := range dts {
		if dt != 1.0/50 {
			t.Fatalf("dt = %v, want 0.02", dt)
		}
	}
}

func TestRunHeadlessQuitIsClean(t *testing.T) {
	var steps int
	err := RunHeadless(context.Background(), func(HAL) StepFunc {
		return func(float64) error {
			steps++
			if steps == 3 {
				return ErrQuit
			}
			return nil
		}
	}, HeadlessConfig{Unpaced: true, Output: &bytes.Buffer{}})
	if err != nil {
		t.Fatalf("RunHeadless: %v", err)
	}
	if steps != 3 {
		t.Fatalf("steps = %d, want 3", steps)
	}
}

func TestRunHeadlessPropagatesErrors(t *testing.T) {
	boom := errors.New("boom")
	err := RunHeadless(context.Background(), func(HAL) StepFunc {
		return func(float64) error { return boom }
	}, HeadlessConfig{Unpaced: true, Output: &bytes.Buffer{}})
	if !errors.Is(err, boom) {
		t.Fatalf("err = %v, want boom", err)
	}
}

func TestRunHeadlessCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	var steps int
	err := RunHeadless(ctx, func(HAL) StepFunc {
		return func(float64) error {
			steps++
			if steps == 5 {
				cancel()
			}
			return nil
		}
	}, HeadlessConfig{Unpaced: true, Output: &bytes.Buffer{}})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
}

func TestHostLoggerWritesLines(t *testing.T) {
	var buf bytes.Buffer
	err := RunHeadless(context.Background(), func(h HAL) StepFunc {
		h.Logger().WriteLineString("hello")
		h.Logger().WriteLineBytes([]byte("world"))
		return nil
	}, HeadlessConfig{Ticks: 1, Unpaced: true, Output: &buf})
	if err != nil {
		t.Fatalf("RunHeadless: %v", err)
	}
	if got := buf.String(); got != "hello\nworld\n" {
		t.Fatalf("log = %q", got)
	}
}

func TestTitleTakeOnlyOnChange(t *testing.T) {
	h := newHost(&bytes.Buffer{})
	d := h.Display()
	d.SetTitle("a")
	if s, ok := h.title.take(); !ok || s != "a" {
		t.Fatalf("take = %q, %v", s, ok)
	}
	d.SetTitle("a")
	if _, ok := h.title.take(); ok {
		t.Fatal("unchanged title reported dirty")
	}
	d.SetTitle("b")
	if s, _ := h.title.take(); s != "b" {
		t.Fatalf("take = %q, want b", s)
	}
}

func TestFramebufferPresentPublishesFrame(t *testing.T) {
	fb := newHostFramebuffer(2, 1)
	fb.ClearRGB(0xFF, 0, 0)

	snap := make([]byte, len(fb.buf))
	fb.snapshotRGB565(snap)
	if !bytes.Equal(snap, make([]byte, len(snap))) {
		t.Fatal("frame visible before Present")
	}

	if err := fb.Present(); err != nil {
		t.Fatalf("Present: %v", err)
	}
	fb.snapshotRGB565(snap)

	rgba := make([]byte, 8)
	expandRGB565(rgba, snap)
	if !bytes.Equal(rgba, []byte{0xFF, 0, 0, 0xFF, 0xFF, 0, 0, 0xFF}) {
		t.Fatalf("rgba = % x", rgba)
	}
}
