// SPDX-License-Identifier: Unlicense OR MIT

// Package scene loads simulated devices from YAML files.
//
// A scene describes a view tree with declarative safe area attributes,
// the platform API level, the layout direction and a sequence of
// system inset reports:
//
//	api: 29
//	direction: ltr
//	insets:
//	  systemBars: {top: 24, bottom: 48}
//	root:
//	  name: root
//	  type: frame
//	  safeAreaEdges: top|bottom
//	  children:
//	    - name: list
//	      margin: {left: 4, right: 4}
//	      safeArea: {edges: horizontal, kind: margin}
//	events:
//	  - name: keyboard
//	    systemBars: {top: 24, bottom: 48}
//	    ime: {bottom: 300}
//	  - name: landscape
//	    rotate: true
package scene

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/insetkit/safearea"
)

var (
	// ErrUnknownType is returned for nodes of an unknown type.
	ErrUnknownType = errors.New("scene: unknown node type")
	// ErrInvalid is returned for scenes that can't be built.
	ErrInvalid = errors.New("scene: invalid scene")
)

// Scene is a simulated device.
type Scene struct {
	// API is the platform API level. Zero means the host level.
	API       int     `yaml:"api"`
	Direction string  `yaml:"direction"`
	Insets    Insets  `yaml:"insets"`
	Root      Node    `yaml:"root"`
	Events    []Event `yaml:"events"`
}

// Insets are reported system insets, per surface.
type Insets struct {
	SystemBars safearea.Rect `yaml:"systemBars"`
	Cutout     safearea.Rect `yaml:"cutout"`
	IME        safearea.Rect `yaml:"ime"`
}

// Node describes a view.
type Node struct {
	Name string `yaml:"name"`
	// Type is "view", "group" or "frame". Nodes with children default
	// to "group", others to "view".
	Type      string         `yaml:"type"`
	Padding   safearea.Rect  `yaml:"padding"`
	Margin    *safearea.Rect `yaml:"margin"`
	Direction string         `yaml:"direction"`
	// Params is "margin" (the default) or "plain" for layout
	// parameters without margins.
	Params string `yaml:"params"`
	// SafeArea applies safe area handling to a view or group.
	SafeArea *SafeArea `yaml:"safeArea"`
	// SafeAreaEdges is the edges attribute of a frame.
	SafeAreaEdges string `yaml:"safeAreaEdges"`
	// ForceDispatch makes a group dispatch insets to every child.
	ForceDispatch bool   `yaml:"forceDispatch"`
	Children      []Node `yaml:"children"`
}

// SafeArea are the arguments of safearea.Apply.
type SafeArea struct {
	// Edges in edge.Parse syntax. Empty means all edges.
	Edges string        `yaml:"edges"`
	Kind  safearea.Kind `yaml:"kind"`
}

// Event is a new system inset report.
type Event struct {
	Name   string `yaml:"name"`
	Insets `yaml:",inline"`
	// Direction, if set, changes the window layout direction.
	Direction string `yaml:"direction"`
	// Rotate turns the current insets a quarter clockwise instead of
	// reporting Insets.
	Rotate bool `yaml:"rotate"`
}

// Load reads a scene file.
func Load(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scene: %w", err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Parse decodes a scene. Unknown fields are errors.
func Parse(data []byte) (*Scene, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	s := new(Scene)
	if err := dec.Decode(s); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse scene: %w", err)
	}
	if err := s.validate(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Scene) validate() error {
	if s.Root.Name == "" {
		return fmt.Errorf("%w: missing root", ErrInvalid)
	}
	if _, err := ParseDirection(s.Direction); err != nil {
		return err
	}
	seen := make(map[string]bool)
	var check func(n *Node) error
	check = func(n *Node) error {
		if n.Name == "" {
			return fmt.Errorf("%w: node without a name", ErrInvalid)
		}
		if seen[n.Name] {
			return fmt.Errorf("%w: duplicate node %q", ErrInvalid, n.Name)
		}
		seen[n.Name] = true
		switch n.kind() {
		case "view":
			if len(n.Children) > 0 {
				return fmt.Errorf("%w: view %q has children", ErrInvalid, n.Name)
			}
		case "group", "frame":
		default:
			return fmt.Errorf("%w %q for %q", ErrUnknownType, n.Type, n.Name)
		}
		if n.kind() == "frame" && n.SafeArea != nil {
			return fmt.Errorf("%w: frame %q uses safeAreaEdges, not safeArea", ErrInvalid, n.Name)
		}
		if n.kind() != "frame" && n.SafeAreaEdges != "" {
			return fmt.Errorf("%w: safeAreaEdges on %s %q", ErrInvalid, n.kind(), n.Name)
		}
		if n.ForceDispatch && (n.kind() != "group" || n.SafeArea != nil) {
			return fmt.Errorf("%w: forceDispatch needs a group without safeArea: %q", ErrInvalid, n.Name)
		}
		switch n.Params {
		case "", "margin", "plain":
		default:
			return fmt.Errorf("%w: unknown params %q for %q", ErrInvalid, n.Params, n.Name)
		}
		if n.Params == "plain" && n.Margin != nil {
			return fmt.Errorf("%w: %q has a margin without margin params", ErrInvalid, n.Name)
		}
		if _, err := ParseDirection(n.Direction); err != nil {
			return err
		}
		for i := range n.Children {
			if err := check(&n.Children[i]); err != nil {
				return err
			}
		}
		return nil
	}
	if err := check(&s.Root); err != nil {
		return err
	}
	for _, e := range s.Events {
		if _, err := ParseDirection(e.Direction); err != nil {
			return err
		}
	}
	return nil
}

func (n *Node) kind() string {
	if n.Type != "" {
		return strings.ToLower(n.Type)
	}
	if len(n.Children) > 0 {
		return "group"
	}
	return "view"
}

// ParseDirection parses "ltr" or "rtl". The empty string is LTR.
func ParseDirection(s string) (safearea.Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "ltr":
		return safearea.LTR, nil
	case "rtl":
		return safearea.RTL, nil
	default:
		return safearea.LTR, fmt.Errorf("%w: unknown direction %q", ErrInvalid, s)
	}
}

// Notification converts in to an inset notification.
func (in Insets) Notification() safearea.Insets {
	return safearea.Insets{
		SystemBars:    in.SystemBars,
		DisplayCutout: in.Cutout,
		IME:           in.IME,
	}
}

// Rotate turns insets a quarter clockwise, as the screen edges move
// when a device is turned clockwise.
func Rotate(in safearea.Insets) safearea.Insets {
	rot := func(r safearea.Rect) safearea.Rect {
		return safearea.Rect{Left: r.Bottom, Top: r.Left, Right: r.Top, Bottom: r.Right}
	}
	return safearea.Insets{
		SystemBars:    rot(in.SystemBars),
		DisplayCutout: rot(in.DisplayCutout),
		IME:           rot(in.IME),
	}
}
