// SPDX-License-Identifier: Unlicense OR MIT

package gioarea

import (
	"gioui.org/layout"
	"gioui.org/unit"

	"github.com/insetkit/safearea"
)

// Area lays out a widget inside a margin and a padding, in pixels. It
// implements safearea.MarginView. An area is attached from its first
// Layout until it is removed from its window.
type Area struct {
	// Background, if set, fills the area inside the margin.
	Background layout.Widget

	win       *Window
	padding   safearea.Rect
	margin    safearea.Rect
	dir       safearea.Direction
	attached  bool
	requested bool
	listener  safearea.InsetsListener
	attach    []safearea.AttachListener
}

// NewArea returns a detached area of w.
func (w *Window) NewArea(padding, margin safearea.Rect) *Area {
	a := &Area{win: w, padding: padding, margin: margin}
	w.areas = append(w.areas, a)
	return a
}

// Layout lays out content inside the margin and padding of a. The
// layout direction is taken from gtx.Locale; a change of direction
// delivers the window insets to a again.
func (a *Area) Layout(gtx layout.Context, content layout.Widget) layout.Dimensions {
	defer a.win.frame()()
	if dir := direction(gtx.Locale); dir != a.dir {
		a.dir = dir
		if a.attached {
			a.requested = true
		}
	}
	if !a.attached {
		a.attached = true
		for _, l := range a.attach {
			l.ViewAttached(a)
		}
	}
	if a.requested {
		a.requested = false
		a.DispatchApplyInsets(a.win.Notification())
	}
	padded := func(gtx layout.Context) layout.Dimensions {
		return dp(gtx.Metric, a.padding).Layout(gtx, content)
	}
	return dp(gtx.Metric, a.margin).Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		if a.Background == nil {
			return padded(gtx)
		}
		return layout.Background{}.Layout(gtx, a.Background, padded)
	})
}

func dp(m unit.Metric, r safearea.Rect) layout.Inset {
	return layout.Inset{
		Top:    m.PxToDp(r.Top),
		Bottom: m.PxToDp(r.Bottom),
		Left:   m.PxToDp(r.Left),
		Right:  m.PxToDp(r.Right),
	}
}

// Padding implements safearea.View.
func (a *Area) Padding() safearea.Rect { return a.padding }

// SetPadding implements safearea.View. A change invalidates the
// window outside of a frame.
func (a *Area) SetPadding(p safearea.Rect) {
	if p == a.padding {
		return
	}
	a.padding = p
	a.win.invalidate()
}

// Margins implements safearea.MarginView.
func (a *Area) Margins() safearea.Rect { return a.margin }

// SetMargins implements safearea.MarginView.
func (a *Area) SetMargins(m safearea.Rect) {
	if m == a.margin {
		return
	}
	a.margin = m
	a.win.invalidate()
}

// Parent returns nil; Gio lays out every frame.
func (a *Area) Parent() safearea.Layouter { return nil }

// LayoutDirection returns the direction of the last Layout.
func (a *Area) LayoutDirection() safearea.Direction { return a.dir }

// SetOnApplyInsets implements safearea.View.
func (a *Area) SetOnApplyInsets(l safearea.InsetsListener) { a.listener = l }

// DispatchApplyInsets passes in to the inset listener of a, if any.
func (a *Area) DispatchApplyInsets(in safearea.Insets) safearea.Insets {
	if a.listener == nil {
		return in
	}
	return a.listener(a, in)
}

// RequestApplyInsets delivers the window insets to a during its next
// Layout.
func (a *Area) RequestApplyInsets() {
	a.requested = true
	a.win.invalidate()
}

// Attached reports whether a was laid out since it was created or
// last removed.
func (a *Area) Attached() bool { return a.attached }

// AddAttachListener implements safearea.View.
func (a *Area) AddAttachListener(l safearea.AttachListener) {
	a.attach = append(a.attach, l)
}
