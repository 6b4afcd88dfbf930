// SPDX-License-Identifier: Unlicense OR MIT

package safearea

import (
	"fmt"
	"strings"

	"github.com/insetkit/safearea/edge"
)

// Rect is an amount of space on each side of a view, in pixels.
type Rect struct {
	Left, Top, Right, Bottom int
}

// Kind selects the spacing adjusted for system insets.
type Kind uint8

// Direction is the layout direction of a view.
type Direction uint8

const (
	// Padding adjusts the space between a view's bounds and its content.
	Padding Kind = iota
	// Margin adjusts the space around a view, inside its parent.
	Margin
)

const (
	// LTR lays out from left to right.
	LTR Direction = iota
	// RTL lays out from right to left. Views with a single horizontal
	// edge take the inset of the opposite side.
	RTL
)

// IsZero reports whether all sides of r are zero.
func (r Rect) IsZero() bool {
	return r == Rect{}
}

// Add returns the side-wise sum of r and o.
func (r Rect) Add(o Rect) Rect {
	return Rect{
		Left:   r.Left + o.Left,
		Top:    r.Top + o.Top,
		Right:  r.Right + o.Right,
		Bottom: r.Bottom + o.Bottom,
	}
}

// Union returns the side-wise maximum of r and o.
func (r Rect) Union(o Rect) Rect {
	return Rect{
		Left:   max(r.Left, o.Left),
		Top:    max(r.Top, o.Top),
		Right:  max(r.Right, o.Right),
		Bottom: max(r.Bottom, o.Bottom),
	}
}

// Get returns the amount on a single edge. It panics if e is not one of
// edge.Left, edge.Top, edge.Right or edge.Bottom.
func (r Rect) Get(e edge.Mask) int {
	switch e {
	case edge.Left:
		return r.Left
	case edge.Top:
		return r.Top
	case edge.Right:
		return r.Right
	case edge.Bottom:
		return r.Bottom
	default:
		panic(fmt.Sprintf("safearea: %v is not a single edge", e))
	}
}

func (r Rect) String() string {
	return fmt.Sprintf("(%d,%d,%d,%d)", r.Left, r.Top, r.Right, r.Bottom)
}

func (k Kind) String() string {
	switch k {
	case Padding:
		return "padding"
	case Margin:
		return "margin"
	default:
		panic("unknown kind")
	}
}

// ParseKind parses "padding" or "margin".
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "padding":
		return Padding, nil
	case "margin":
		return Margin, nil
	default:
		return Padding, fmt.Errorf("safearea: unknown spacing kind %q", s)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Kind) UnmarshalText(text []byte) error {
	v, err := ParseKind(string(text))
	if err != nil {
		return err
	}
	*k = v
	return nil
}

func (d Direction) String() string {
	switch d {
	case LTR:
		return "LTR"
	case RTL:
		return "RTL"
	default:
		panic("unknown direction")
	}
}
