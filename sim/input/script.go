package input

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Step is one script entry. Hold actions are active for every tick of the
// step; press actions only on its first tick.
type Step struct {
	Hold  []Action `yaml:"hold"`
	Press []Action `yaml:"press"`
	Ticks int      `yaml:"ticks"`
}

// Script replays a fixed sequence of steps, one snapshot per tick.
//
// Two consecutive presses of the gripper need an idle tick between them to
// register as two toggles.
type Script struct {
	Steps []Step `yaml:"steps"`

	step int
	tick int
}

func (a *Action) UnmarshalYAML(n *yaml.Node) error {
	var s string
	if err := n.Decode(&s); err != nil {
		return err
	}
	v, err := ParseAction(s)
	if err != nil {
		return fmt.Errorf("line %d: %w", n.Line, err)
	}
	*a = v
	return nil
}

// ParseScript decodes a YAML script. Steps without ticks run for one tick.
func ParseScript(data []byte) (*Script, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var s Script
	if err := dec.Decode(&s); err != nil {
		if errors.Is(err, io.EOF) {
			return &s, nil
		}
		return nil, fmt.Errorf("parse script: %w", err)
	}
	for i := range s.Steps {
		switch {
		case s.Steps[i].Ticks < 0:
			return nil, fmt.Errorf("parse script: step %d: negative ticks %d", i, s.Steps[i].Ticks)
		case s.Steps[i].Ticks == 0:
			s.Steps[i].Ticks = 1
		}
	}
	return &s, nil
}

// LoadScript reads and parses a script file.
func LoadScript(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read script: %w", err)
	}
	return ParseScript(data)
}

// Len returns the total number of ticks the script covers.
func (s *Script) Len() int {
	n := 0
	for _, st := range s.Steps {
		n += st.Ticks
	}
	return n
}

func (s *Script) Next() (Snapshot, bool) {
	for s.step < len(s.Steps) && s.tick >= s.Steps[s.step].Ticks {
		s.step++
		s.tick = 0
	}
	if s.step >= len(s.Steps) {
		return Snapshot{}, false
	}

	st := s.Steps[s.step]
	var active set
	for _, a := range st.Hold {
		active[a] = true
	}
	if s.tick == 0 {
		for _, a := range st.Press {
			active[a] = true
		}
	}
	s.tick++
	return active.snapshot(), true
}
