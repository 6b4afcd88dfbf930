// SPDX-License-Identifier: Unlicense OR MIT

package viewtree

import (
	"log/slog"

	"github.com/insetkit/safearea"
	"github.com/insetkit/safearea/internal/platform"
)

// Window holds a root node and the system insets reported for it.
//
// Reported insets and inset requests are delivered by Flush, which
// plays the role of the host's traversal.
type Window struct {
	// Platform selects the dispatch rules. Nil means the host.
	Platform safearea.Platform
	// Direction is the layout direction of nodes that don't set one.
	Direction safearea.Direction
	// Logger receives debug records of dispatches. Nil means
	// slog.Default.
	Logger *slog.Logger

	root          *Node
	insets        safearea.Insets
	insetsPending bool
	layoutPending bool
	dispatches    int
}

// Attach makes root the root of w. A previous root is detached first.
func (w *Window) Attach(root *Node) {
	if root.parent != nil {
		panic("viewtree: root " + root.Name + " has a parent")
	}
	if w.root != nil {
		w.Detach()
	}
	w.root = root
	root.attachTo(w)
	w.insetsPending = true
	w.layoutPending = true
}

// Detach detaches the root of w.
func (w *Window) Detach() {
	if w.root == nil {
		return
	}
	r := w.root
	w.root = nil
	r.detach()
}

// Root returns the root node, or nil.
func (w *Window) Root() *Node { return w.root }

// Report records new system insets, to be dispatched by the next
// Flush.
func (w *Window) Report(in safearea.Insets) {
	w.insets = in
	w.insetsPending = true
}

// Insets returns the last reported system insets.
func (w *Window) Insets() safearea.Insets { return w.insets }

// SetDirection changes the default layout direction and redispatches
// insets.
func (w *Window) SetDirection(d safearea.Direction) {
	w.Direction = d
	w.insetsPending = true
	w.requestLayout()
}

// Flush dispatches pending insets from the root. It reports whether a
// dispatch took place.
func (w *Window) Flush() bool {
	w.layoutPending = false
	if !w.insetsPending || w.root == nil {
		return false
	}
	w.insetsPending = false
	w.dispatches++
	out := w.root.DispatchApplyInsets(w.insets)
	w.logger().Debug("dispatch insets",
		"root", w.root.Name,
		"insets", w.insets.Rect(),
		"consumed", out.Consumed(),
		"level", w.level(),
	)
	return true
}

// Dispatches returns the number of dispatches made by Flush.
func (w *Window) Dispatches() int { return w.dispatches }

// LayoutPending reports whether a node requested a layout since the
// last Flush.
func (w *Window) LayoutPending() bool { return w.layoutPending }

func (w *Window) requestLayout() {
	w.layoutPending = true
}

func (w *Window) level() int {
	if w.Platform != nil {
		return w.Platform.APILevel()
	}
	return platform.Level()
}

func (w *Window) logger() *slog.Logger {
	if w.Logger != nil {
		return w.Logger
	}
	return slog.Default()
}
