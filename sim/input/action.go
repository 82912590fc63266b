// Package input turns key events and scripts into per-tick control snapshots.
package input

import (
	"errors"
	"fmt"
	"strings"

	"armsim/hal"
	"armsim/sim/camera"
	"armsim/sim/joint"
)

var ErrUnknownAction = errors.New("unknown action")

// Action is one logical control.
type Action uint8

const (
	ActionNone Action = iota
	ActionBaseInc
	ActionBaseDec
	ActionShoulderInc
	ActionShoulderDec
	ActionElbowInc
	ActionElbowDec
	ActionWristInc
	ActionWristDec
	ActionGripper
	ActionOrbitUp
	ActionOrbitDown
	ActionOrbitLeft
	ActionOrbitRight
	ActionZoomIn
	ActionZoomOut
	ActionQuit

	actionCount
)

var actionNames = [actionCount]string{
	ActionNone:        "none",
	ActionBaseInc:     "base+",
	ActionBaseDec:     "base-",
	ActionShoulderInc: "shoulder+",
	ActionShoulderDec: "shoulder-",
	ActionElbowInc:    "elbow+",
	ActionElbowDec:    "elbow-",
	ActionWristInc:    "wrist+",
	ActionWristDec:    "wrist-",
	ActionGripper:     "gripper",
	ActionOrbitUp:     "orbit-up",
	ActionOrbitDown:   "orbit-down",
	ActionOrbitLeft:   "orbit-left",
	ActionOrbitRight:  "orbit-right",
	ActionZoomIn:      "zoom-in",
	ActionZoomOut:     "zoom-out",
	ActionQuit:        "quit",
}

func (a Action) String() string {
	if a < actionCount {
		return actionNames[a]
	}
	return fmt.Sprintf("action(%d)", uint8(a))
}

// ParseAction resolves a script action name.
func ParseAction(s string) (Action, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for a := ActionBaseInc; a < actionCount; a++ {
		if actionNames[a] == name {
			return a, nil
		}
	}
	return ActionNone, fmt.Errorf("%w: %q", ErrUnknownAction, s)
}

// Snapshot is the control state for a single tick.
type Snapshot struct {
	Joints joint.Input
	Camera camera.Input
}

// set is a fixed-size action set.
type set [actionCount]bool

func (s *set) snapshot() Snapshot {
	return Snapshot{
		Joints: joint.Input{
			BaseInc:     s[ActionBaseInc],
			BaseDec:     s[ActionBaseDec],
			ShoulderInc: s[ActionShoulderInc],
			ShoulderDec: s[ActionShoulderDec],
			ElbowInc:    s[ActionElbowInc],
			ElbowDec:    s[ActionElbowDec],
			WristInc:    s[ActionWristInc],
			WristDec:    s[ActionWristDec],
			Toggle:      s[ActionGripper],
			Quit:        s[ActionQuit],
		},
		Camera: camera.Input{
			Up:      s[ActionOrbitUp],
			Down:    s[ActionOrbitDown],
			Left:    s[ActionOrbitLeft],
			Right:   s[ActionOrbitRight],
			ZoomIn:  s[ActionZoomIn],
			ZoomOut: s[ActionZoomOut],
		},
	}
}

// Bindings maps keys to actions.
type Bindings map[hal.KeyCode]Action

// DefaultBindings returns the reference keyboard layout.
func DefaultBindings() Bindings {
	return Bindings{
		hal.KeyQ:        ActionBaseInc,
		hal.KeyE:        ActionBaseDec,
		hal.KeyW:        ActionShoulderInc,
		hal.KeyS:        ActionShoulderDec,
		hal.KeyA:        ActionElbowInc,
		hal.KeyD:        ActionElbowDec,
		hal.KeyR:        ActionWristInc,
		hal.KeyF:        ActionWristDec,
		hal.KeyX:        ActionGripper,
		hal.KeyUp:       ActionOrbitUp,
		hal.KeyDown:     ActionOrbitDown,
		hal.KeyLeft:     ActionOrbitLeft,
		hal.KeyRight:    ActionOrbitRight,
		hal.KeyPageUp:   ActionZoomIn,
		hal.KeyPageDown: ActionZoomOut,
		hal.KeyEscape:   ActionQuit,
	}
}

// Legend is the short controls hint shown in the status line.
const Legend = "Q/E: Base, W/S: Shoulder, A/D: Elbow, R/F: Wrist, X: Gripper, Arrows/PgUp/PgDn: Camera, Esc: Quit"
