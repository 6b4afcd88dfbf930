// SPDX-License-Identifier: Unlicense OR MIT

// Package edge describes sets of the four edges of a view.
//
// A Mask is a bit set over Left, Top, Right and Bottom. The composites
// Horizontal, Vertical and All name the common combinations, and None
// is the empty set.
package edge

import (
	"errors"
	"fmt"
	"strings"
)

// Mask is a set of edges.
type Mask uint8

const (
	None   Mask = 0
	Left   Mask = 1 << 0
	Top    Mask = 1 << 1
	Right  Mask = 1 << 2
	Bottom Mask = 1 << 3

	Horizontal = Left | Right
	Vertical   = Top | Bottom
	All        = Horizontal | Vertical
)

// ErrUnknownEdge is returned by Parse for names that don't denote
// an edge.
var ErrUnknownEdge = errors.New("edge: unknown edge")

var names = map[string]Mask{
	"none":       None,
	"left":       Left,
	"top":        Top,
	"right":      Right,
	"bottom":     Bottom,
	"horizontal": Horizontal,
	"vertical":   Vertical,
	"all":        All,
}

// Has reports whether every edge of e is in m. The empty mask None is
// only contained in None itself.
func (m Mask) Has(e Mask) bool {
	if e == None {
		return m == None
	}
	return m&e == e
}

// Parse parses a '|' separated list of edge names, for example
// "top|bottom" or "horizontal". The empty string denotes All.
func Parse(s string) (Mask, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return All, nil
	}
	var m Mask
	for _, name := range strings.Split(s, "|") {
		name = strings.ToLower(strings.TrimSpace(name))
		e, ok := names[name]
		if !ok {
			return None, fmt.Errorf("%w %q in %q", ErrUnknownEdge, name, s)
		}
		m |= e
	}
	return m, nil
}

func (m Mask) String() string {
	if m&^All != 0 {
		return fmt.Sprintf("Mask(%#x)", uint8(m))
	}
	switch m {
	case None:
		return "none"
	case All:
		return "all"
	}
	var parts []string
	if m.Has(Horizontal) {
		parts = append(parts, "horizontal")
	} else if m.Has(Left) {
		parts = append(parts, "left")
	}
	if m.Has(Vertical) {
		parts = append(parts, "vertical")
	} else if m.Has(Top) {
		parts = append(parts, "top")
	}
	if !m.Has(Horizontal) && m.Has(Right) {
		parts = append(parts, "right")
	}
	if !m.Has(Vertical) && m.Has(Bottom) {
		parts = append(parts, "bottom")
	}
	return strings.Join(parts, "|")
}

// MarshalText implements encoding.TextMarshaler.
func (m Mask) MarshalText() ([]byte, error) {
	if m&^All != 0 {
		return nil, fmt.Errorf("edge: invalid mask %#x", uint8(m))
	}
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *Mask) UnmarshalText(text []byte) error {
	v, err := Parse(string(text))
	if err != nil {
		return err
	}
	*m = v
	return nil
}
