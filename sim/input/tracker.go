package input

import "armsim/hal"

// Source yields one snapshot per tick. ok is false once the source is exhausted.
type Source interface {
	Next() (s Snapshot, ok bool)
}

// Tracker folds press/release events into held state.
//
// A press that is released before the next Snapshot is still reported for
// that one tick. A release and re-press of a key that the last Snapshot
// reported held is reported as one low tick followed by a high one.
type Tracker struct {
	bindings Bindings
	held     set
	latched  set

	reported set // active set of the last Snapshot
	released set // released since the last Snapshot
	repress  set // re-pressed after a release since the last Snapshot
}

func NewTracker(b Bindings) *Tracker {
	if b == nil {
		b = DefaultBindings()
	}
	return &Tracker{bindings: b}
}

// Apply records a single key event. Unbound keys are ignored.
func (t *Tracker) Apply(ev hal.KeyEvent) {
	a, ok := t.bindings[ev.Code]
	if !ok || a == ActionNone || a >= actionCount {
		return
	}
	if ev.Press {
		if t.reported[a] && t.released[a] {
			t.repress[a] = true
		}
		t.held[a] = true
		t.latched[a] = true
		return
	}
	t.held[a] = false
	t.released[a] = true
}

// Drain applies every event currently queued on ch without blocking.
func (t *Tracker) Drain(ch <-chan hal.KeyEvent) {
	if ch == nil {
		return
	}
	for {
		select {
		case ev, ok := <-ch:
			if !ok {
				return
			}
			t.Apply(ev)
		default:
			return
		}
	}
}

// Snapshot returns the active actions and clears the press latch.
func (t *Tracker) Snapshot() Snapshot {
	var active, next set
	for a := range active {
		if t.repress[a] {
			next[a] = true
			continue
		}
		active[a] = t.held[a] || t.latched[a]
	}
	t.latched = next
	t.reported = active
	t.released = set{}
	t.repress = set{}
	return active.snapshot()
}

// Held reports whether a is currently held down.
func (t *Tracker) Held(a Action) bool {
	return a < actionCount && t.held[a]
}

// KeyboardSource reads the HAL keyboard each tick.
type KeyboardSource struct {
	kbd     hal.Keyboard
	tracker *Tracker
}

func NewKeyboardSource(kbd hal.Keyboard, b Bindings) *KeyboardSource {
	return &KeyboardSource{kbd: kbd, tracker: NewTracker(b)}
}

func (k *KeyboardSource) Next() (Snapshot, bool) {
	if k.kbd != nil {
		k.tracker.Drain(k.kbd.Events())
	}
	return k.tracker.Snapshot(), true
}
