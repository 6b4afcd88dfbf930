// SPDX-License-Identifier: Unlicense OR MIT

package safearea

import (
	"log/slog"

	"github.com/insetkit/safearea/edge"
)

const (
	// LevelMarginLayout is the first API level where margin changes
	// are laid out without a request to the parent.
	LevelMarginLayout = 26
	// LevelInsetsDispatch is the first API level where a container that
	// consumes insets still dispatches them to its children.
	LevelInsetsDispatch = 30
)

// Settings adjusts the spacing of a view for system insets. The
// spacing the view had when the Settings was created is kept as the
// base that insets are added to.
type Settings struct {
	base  Rect
	edges edge.Mask
	kind  Kind

	platform Platform
	logger   *slog.Logger
}

// NewSettings captures the current padding or margin of v. For the
// Margin kind, v must be a MarginView with margin layout parameters.
func NewSettings(v View, edges edge.Mask, kind Kind) *Settings {
	return defaultCoordinator.NewSettings(v, edges, kind)
}

// Base returns the spacing captured at creation.
func (s *Settings) Base() Rect { return s.base }

// Edges returns the edges that receive insets.
func (s *Settings) Edges() edge.Mask { return s.edges }

// Kind returns the adjusted spacing kind.
func (s *Settings) Kind() Kind { return s.kind }

// ComputeOverlaps returns the spacing for the reported system insets:
// the base spacing plus the insets of the selected edges. Zero insets
// result in zero spacing.
//
// In RTL layouts a selection with a single horizontal edge takes the
// reported inset of the opposite side.
func (s *Settings) ComputeOverlaps(inset Rect, dir Direction) Rect {
	if inset.IsZero() {
		return Rect{}
	}
	var add Rect
	if s.edges.Has(edge.Left) {
		add.Left = inset.Left
	}
	if s.edges.Has(edge.Top) {
		add.Top = inset.Top
	}
	if s.edges.Has(edge.Right) {
		add.Right = inset.Right
	}
	if s.edges.Has(edge.Bottom) {
		add.Bottom = inset.Bottom
	}
	if dir == RTL && !s.edges.Has(edge.Horizontal) {
		add.Left, add.Right = 0, 0
		if s.edges.Has(edge.Left) {
			add.Left = inset.Right
		}
		if s.edges.Has(edge.Right) {
			add.Right = inset.Left
		}
	}
	return s.base.Add(add)
}

// UpdateInsets sets the spacing of v for the reported system insets.
func (s *Settings) UpdateInsets(v View, inset Rect) {
	dir := v.LayoutDirection()
	r := s.ComputeOverlaps(inset, dir)
	s.logger.Debug("update insets",
		"kind", s.kind,
		"edges", s.edges,
		"direction", dir,
		"insets", inset,
		"spacing", r,
	)
	switch s.kind {
	case Padding:
		v.SetPadding(r)
	case Margin:
		mv := v.(MarginView)
		mv.SetMargins(r)
		if s.platform.APILevel() < LevelMarginLayout {
			if p := mv.Parent(); p != nil {
				p.RequestLayout()
			}
		}
	default:
		panic("unknown kind")
	}
}
