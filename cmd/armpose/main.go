package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"armsim/internal/profile"
	"armsim/sim/chain"
	"armsim/sim/input"
	"armsim/sim/joint"
	"armsim/sim/status"
)

func main() {
	var (
		mode        = flag.String("mode", "pose", "pose|replay.")
		profilePath = flag.String("profile", "", "YAML arm profile.")
		scriptPath  = flag.String("script", "", "Input script (replay mode).")
		hz          = flag.Int("hz", 60, "Tick rate for replay.")
		every       = flag.Int("every", 0, "Print a trace row every N ticks (replay mode, 0 = final pose only).")
		base        = flag.Float64("base", 0, "Base yaw in degrees (pose mode).")
		shoulder    = flag.Float64("shoulder", 0, "Shoulder pitch in degrees (pose mode).")
		elbow       = flag.Float64("elbow", 0, "Elbow pitch in degrees (pose mode).")
		wrist       = flag.Float64("wrist", 0, "Wrist roll in degrees (pose mode).")
	)
	flag.Parse()

	p, err := profile.Load(*profilePath)
	if err != nil {
		fatalf("profile: %v", err)
	}

	out := bufio.NewWriter(os.Stdout)
	defer out.Flush()

	switch strings.ToLower(*mode) {
	case "pose":
		j := joint.State{Base: *base, Shoulder: *shoulder, Elbow: *elbow, WristRoll: *wrist}
		printPose(out, p.LinkSpec(), j, joint.Gripper{})
	case "replay":
		if *scriptPath == "" {
			fatalf("usage: armpose -mode replay -script run.yaml [-profile arm.yaml] [-hz 60] [-every N]")
		}
		s, err := input.LoadScript(*scriptPath)
		if err != nil {
			fatalf("script: %v", err)
		}
		if err := replay(out, p, s, *hz, *every); err != nil {
			out.Flush()
			fatalf("replay: %v", err)
		}
	default:
		fatalf("unknown mode: %s", *mode)
	}
}

func fatalf(format string, args ...any) {
	_, _ = fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(2)
}

func printPose(w io.Writer, links chain.LinkSpec, j joint.State, g joint.Gripper) {
	pose := chain.Evaluate(j, links)
	for _, a := range pose.Anchors {
		pos := a.Position()
		fmt.Fprintf(w, "%-8s %8.3f %8.3f %8.3f\n", a.Kind, pos.X(), pos.Y(), pos.Z())
	}
	fmt.Fprintln(w, status.Line(status.FromPose(pose, g, j)))
}

// replay runs the script through the joint controller without rendering.
func replay(w io.Writer, p profile.Profile, s *input.Script, hz, every int) error {
	if hz <= 0 {
		return fmt.Errorf("invalid hz: %d", hz)
	}
	dt := 1 / float64(hz)
	ctrl := joint.NewController(p.JointConfig())
	links := p.LinkSpec()

	if every > 0 {
		fmt.Fprintln(w, "tick,base,shoulder,elbow,wrist,gripper,x,y,z,reach")
	}
	tick := 0
	for {
		snap, ok := s.Next()
		if !ok {
			break
		}
		ctrl.Tick(snap.Joints, dt)
		tick++
		if ctrl.QuitRequested() {
			break
		}
		if every > 0 && tick%every == 0 {
			j, g := ctrl.Joints(), ctrl.Gripper()
			pose := chain.Evaluate(j, links)
			fmt.Fprintf(w, "%d,%.3f,%.3f,%.3f,%.3f,%.3f,%.4f,%.4f,%.4f,%.4f\n",
				tick, j.Base, j.Shoulder, j.Elbow, j.WristRoll, g.Angle,
				pose.EndEffector.X(), pose.EndEffector.Y(), pose.EndEffector.Z(), pose.Reach)
		}
	}

	fmt.Fprintf(w, "ticks: %d\n", tick)
	printPose(w, links, ctrl.Joints(), ctrl.Gripper())
	return nil
}
