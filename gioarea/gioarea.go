// SPDX-License-Identifier: Unlicense OR MIT

/*
Package gioarea keeps Gio widgets clear of system insets in edge-to-edge
windows.

app.NewContext removes the window insets from the whole frame. A
Window instead hands out a context covering the full window and
delivers the insets to its areas, which add them to their padding or
margin through package safearea:

	sw := &gioarea.Window{Invalidate: w.Invalidate}
	bar := sw.NewArea(gioarea.Px(metric, layout.UniformInset(8)), safearea.Rect{})
	safearea.Apply(bar, safearea.Edges(edge.Top))
	...
	case app.FrameEvent:
		gtx := sw.Frame(&ops, e)
		bar.Layout(gtx, toolbar)
		e.Frame(gtx.Ops)

A Window and its areas must be used from the goroutine handling the
window events.
*/
package gioarea

import (
	"log/slog"

	"gioui.org/app"
	"gioui.org/io/system"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/unit"

	"github.com/insetkit/safearea"
)

// Window distributes the system insets of a Gio window to areas.
type Window struct {
	// Locale is set on the contexts returned by Frame. Its direction
	// is the layout direction of the areas.
	Locale system.Locale
	// Invalidate, if set, is called when an area changes outside of a
	// frame, typically app.Window.Invalidate.
	Invalidate func()
	// Logger receives debug records of inset changes. Nil means
	// slog.Default.
	Logger *slog.Logger

	areas   []*Area
	insets  safearea.Rect
	dir     safearea.Direction
	framing bool
}

// Px converts an inset to pixels.
func Px(m unit.Metric, in layout.Inset) safearea.Rect {
	return safearea.Rect{
		Left:   m.Dp(in.Left),
		Top:    m.Dp(in.Top),
		Right:  m.Dp(in.Right),
		Bottom: m.Dp(in.Bottom),
	}
}

// Frame returns a context for e that covers the whole window, and
// delivers changed insets to the attached areas.
func (w *Window) Frame(ops *op.Ops, e app.FrameEvent) layout.Context {
	in := Px(e.Metric, layout.Inset{
		Top:    e.Insets.Top,
		Bottom: e.Insets.Bottom,
		Left:   e.Insets.Left,
		Right:  e.Insets.Right,
	})
	e.Insets = app.Insets{}
	gtx := app.NewContext(ops, e)
	gtx.Locale = w.Locale

	defer w.frame()()
	dir := direction(w.Locale)
	if in == w.insets && dir == w.dir {
		return gtx
	}
	w.logger().Debug("window insets changed",
		"from", w.insets, "to", in,
		"direction", dir,
	)
	w.insets = in
	w.dir = dir
	for _, a := range w.areas {
		if a.attached {
			a.dir = dir
			a.DispatchApplyInsets(w.Notification())
		}
	}
	return gtx
}

// frame suppresses invalidation until the returned function is
// called. Spacing changed during a frame is laid out by that frame.
func (w *Window) frame() func() {
	framing := w.framing
	w.framing = true
	return func() { w.framing = framing }
}

func direction(l system.Locale) safearea.Direction {
	if l.Direction == system.RTL {
		return safearea.RTL
	}
	return safearea.LTR
}

// Insets returns the insets of the last frame, in pixels.
func (w *Window) Insets() safearea.Rect { return w.insets }

// Notification returns the insets of the last frame as a
// notification.
func (w *Window) Notification() safearea.Insets {
	return safearea.Insets{SystemBars: w.insets}
}

// Remove detaches a from w.
func (w *Window) Remove(a *Area) {
	for i, aa := range w.areas {
		if aa != a {
			continue
		}
		w.areas = append(w.areas[:i], w.areas[i+1:]...)
		if a.attached {
			a.attached = false
			for _, l := range a.attach {
				l.ViewDetached(a)
			}
		}
		return
	}
}

func (w *Window) invalidate() {
	if w.framing || w.Invalidate == nil {
		return
	}
	w.Invalidate()
}

func (w *Window) logger() *slog.Logger {
	if w.Logger != nil {
		return w.Logger
	}
	return slog.Default()
}
