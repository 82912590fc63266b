package main

import (
	"bytes"
	"strings"
	"testing"

	"armsim/internal/profile"
	"armsim/sim/chain"
	"armsim/sim/input"
	"armsim/sim/joint"
)

func TestPrintPose(t *testing.T) {
	var buf bytes.Buffer
	printPose(&buf, chain.DefaultLinks(), joint.State{}, joint.Gripper{})
	out := buf.String()
	if !strings.Contains(out, "tool        0.000    4.500    0.000") {
		t.Fatalf("output:\n%s", out)
	}
	if !strings.Contains(out, "Reach: 4.50 | Gripper: Closed") {
		t.Fatalf("output:\n%s", out)
	}
}

func TestReplayTrace(t *testing.T) {
	s, err := input.ParseScript([]byte("steps:\n  - hold: [shoulder+]\n    ticks: 120\n"))
	if err != nil {
		t.Fatalf("ParseScript: %v", err)
	}
	var buf bytes.Buffer
	if err := replay(&buf, profile.Default(), s, 60, 60); err != nil {
		t.Fatalf("replay: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "ticks: 120") {
		t.Fatalf("output:\n%s", out)
	}
	if !strings.Contains(out, "\n120,0.000,90.000,") {
		t.Fatalf("trace row missing:\n%s", out)
	}
	if !strings.Contains(out, "X: 0.00 Y: 2.00 Z: 2.50") {
		t.Fatalf("final pose missing:\n%s", out)
	}
}

func TestReplayRejectsBadRate(t *testing.T) {
	if err := replay(&bytes.Buffer{}, profile.Default(), &input.Script{}, 0, 0); err == nil {
		t.Fatal("expected error")
	}
}
