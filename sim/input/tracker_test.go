package input

import (
	"errors"
	"testing"

	"armsim/hal"
)

func TestPressAndReleaseWithinTickIsSeenOnce(t *testing.T) {
	tr := NewTracker(nil)
	tr.Apply(hal.KeyEvent{Code: hal.KeyX, Press: true})
	tr.Apply(hal.KeyEvent{Code: hal.KeyX})

	if s := tr.Snapshot(); !s.Joints.Toggle {
		t.Fatal("tap was lost")
	}
	if s := tr.Snapshot(); s.Joints.Toggle {
		t.Fatal("tap reported twice")
	}
}

func TestRepressWithinTickIsNotLost(t *testing.T) {
	tr := NewTracker(nil)
	tr.Apply(hal.KeyEvent{Code: hal.KeyX, Press: true})
	if s := tr.Snapshot(); !s.Joints.Toggle {
		t.Fatal("first press not seen")
	}
	tr.Apply(hal.KeyEvent{Code: hal.KeyX})
	tr.Apply(hal.KeyEvent{Code: hal.KeyX, Press: true})
	tr.Apply(hal.KeyEvent{Code: hal.KeyX})

	if s := tr.Snapshot(); s.Joints.Toggle {
		t.Fatal("re-press did not produce a low tick")
	}
	if s := tr.Snapshot(); !s.Joints.Toggle {
		t.Fatal("second press was lost")
	}
	if s := tr.Snapshot(); s.Joints.Toggle {
		t.Fatal("second press reported twice")
	}
}

func TestRepressedKeyStaysHeld(t *testing.T) {
	tr := NewTracker(nil)
	tr.Apply(hal.KeyEvent{Code: hal.KeyW, Press: true})
	tr.Snapshot()
	tr.Apply(hal.KeyEvent{Code: hal.KeyW})
	tr.Apply(hal.KeyEvent{Code: hal.KeyW, Press: true})

	if s := tr.Snapshot(); s.Joints.ShoulderInc {
		t.Fatal("expected one low tick")
	}
	for i := 0; i < 2; i++ {
		if s := tr.Snapshot(); !s.Joints.ShoulderInc {
			t.Fatalf("tick %d: shoulder+ not held after re-press", i)
		}
	}
}

func TestHeldKeyPersists(t *testing.T) {
	tr := NewTracker(nil)
	tr.Apply(hal.KeyEvent{Code: hal.KeyW, Press: true})
	for i := 0; i < 3; i++ {
		if s := tr.Snapshot(); !s.Joints.ShoulderInc {
			t.Fatalf("tick %d: shoulder+ not held", i)
		}
	}
	tr.Apply(hal.KeyEvent{Code: hal.KeyW})
	if s := tr.Snapshot(); s.Joints.ShoulderInc {
		t.Fatal("shoulder+ still held after release")
	}
	if tr.Held(ActionShoulderInc) {
		t.Fatal("Held reports released key")
	}
}

func TestUnboundKeysIgnored(t *testing.T) {
	tr := NewTracker(nil)
	tr.Apply(hal.KeyEvent{Code: hal.KeyUnknown, Press: true})
	if s := tr.Snapshot(); s != (Snapshot{}) {
		t.Fatalf("snapshot = %+v", s)
	}
}

func TestDrainDoesNotBlock(t *testing.T) {
	ch := make(chan hal.KeyEvent, 4)
	ch <- hal.KeyEvent{Code: hal.KeyUp, Press: true}
	ch <- hal.KeyEvent{Code: hal.KeyPageUp, Press: true}
	ch <- hal.KeyEvent{Code: hal.KeyEscape, Press: true}

	tr := NewTracker(nil)
	tr.Drain(ch)
	s := tr.Snapshot()
	if !s.Camera.Up || !s.Camera.ZoomIn || !s.Joints.Quit {
		t.Fatalf("snapshot = %+v", s)
	}
}

type chanKeyboard chan hal.KeyEvent

func (c chanKeyboard) Events() <-chan hal.KeyEvent { return c }

func TestKeyboardSource(t *testing.T) {
	kbd := make(chanKeyboard, 2)
	src := NewKeyboardSource(kbd, nil)
	kbd <- hal.KeyEvent{Code: hal.KeyQ, Press: true}
	s, ok := src.Next()
	if !ok || !s.Joints.BaseInc {
		t.Fatalf("Next = %+v, %v", s, ok)
	}
}

func TestParseAction(t *testing.T) {
	for a := ActionBaseInc; a < actionCount; a++ {
		got, err := ParseAction(a.String())
		if err != nil || got != a {
			t.Fatalf("ParseAction(%q) = %v, %v", a.String(), got, err)
		}
	}
	if _, err := ParseAction("jump"); !errors.Is(err, ErrUnknownAction) {
		t.Fatalf("expected ErrUnknownAction, got %v", err)
	}
	if _, err := ParseAction("none"); !errors.Is(err, ErrUnknownAction) {
		t.Fatalf("none should not parse, got %v", err)
	}
}
