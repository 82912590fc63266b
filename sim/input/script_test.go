package input

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

const sampleScript = `
steps:
  - hold: [shoulder+, base-]
    ticks: 3
  - press: [gripper]
    ticks: 2
  - {}
  - press: [quit]
`

func TestScriptReplay(t *testing.T) {
	s, err := ParseScript([]byte(sampleScript))
	if err != nil {
		t.Fatalf("ParseScript: %v", err)
	}
	if s.Len() != 7 {
		t.Fatalf("Len = %d, want 7", s.Len())
	}

	var snaps []Snapshot
	for {
		snap, ok := s.Next()
		if !ok {
			break
		}
		snaps = append(snaps, snap)
	}
	if len(snaps) != 7 {
		t.Fatalf("got %d snapshots, want 7", len(snaps))
	}
	for i := 0; i < 3; i++ {
		if !snaps[i].Joints.ShoulderInc || !snaps[i].Joints.BaseDec {
			t.Fatalf("tick %d: %+v", i, snaps[i])
		}
	}
	if !snaps[3].Joints.Toggle || snaps[4].Joints.Toggle {
		t.Fatal("press should last exactly one tick")
	}
	if snaps[5] != (Snapshot{}) {
		t.Fatalf("idle tick = %+v", snaps[5])
	}
	if !snaps[6].Joints.Quit {
		t.Fatal("quit not pressed")
	}
	if _, ok := s.Next(); ok {
		t.Fatal("exhausted script yielded a snapshot")
	}
}

func TestScriptRejectsUnknownAction(t *testing.T) {
	_, err := ParseScript([]byte("steps:\n  - hold: [fly]\n"))
	if !errors.Is(err, ErrUnknownAction) {
		t.Fatalf("expected ErrUnknownAction, got %v", err)
	}
}

func TestScriptRejectsUnknownField(t *testing.T) {
	if _, err := ParseScript([]byte("steps:\n  - hodl: [base+]\n")); err == nil {
		t.Fatal("expected error for unknown field")
	}
	if _, err := ParseScript([]byte("steps:\n  - ticks: -2\n")); err == nil {
		t.Fatal("expected error for negative ticks")
	}
}

func TestEmptyScript(t *testing.T) {
	s, err := ParseScript(nil)
	if err != nil {
		t.Fatalf("ParseScript: %v", err)
	}
	if _, ok := s.Next(); ok {
		t.Fatal("empty script yielded a snapshot")
	}
}

func TestLoadScript(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.yaml")
	if err := os.WriteFile(path, []byte(sampleScript), 0o644); err != nil {
		t.Fatal(err)
	}
	s, err := LoadScript(path)
	if err != nil {
		t.Fatalf("LoadScript: %v", err)
	}
	if len(s.Steps) != 4 {
		t.Fatalf("steps = %d", len(s.Steps))
	}
	if _, err := LoadScript(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
