// SPDX-License-Identifier: Unlicense OR MIT

package safearea

// View is the part of a host view used to keep it clear of system
// insets.
type View interface {
	// Padding returns the current padding.
	Padding() Rect
	// SetPadding replaces the padding and schedules a layout.
	SetPadding(p Rect)
	// LayoutDirection returns the resolved layout direction.
	LayoutDirection() Direction
	// SetOnApplyInsets replaces the inset listener. A nil listener
	// restores the host's default handling.
	SetOnApplyInsets(l InsetsListener)
	// DispatchApplyInsets delivers insets to the view and, depending on
	// the host, its descendants. It returns the insets left after
	// the view's handling.
	DispatchApplyInsets(in Insets) Insets
	// RequestApplyInsets asks the host for a new inset dispatch.
	RequestApplyInsets()
	// Attached reports whether the view is attached to a window.
	Attached() bool
	// AddAttachListener registers a listener for attach state changes.
	AddAttachListener(l AttachListener)
}

// MarginView is a View whose layout parameters carry margins.
type MarginView interface {
	View
	// Margins returns the current margins.
	Margins() Rect
	// SetMargins replaces the margins and re-applies the layout
	// parameters.
	SetMargins(m Rect)
	// Parent returns the parent of the view, or nil.
	Parent() Layouter
}

// Layouter can be asked for a new layout pass.
type Layouter interface {
	RequestLayout()
}

// Container is a View with child views.
type Container interface {
	View
	NumChildren() int
	Child(i int) View
}

// InsetsListener handles an inset notification for v and returns the
// insets that remain for the rest of the dispatch.
type InsetsListener func(v View, in Insets) Insets

// AttachListener is notified when a view is attached to or detached
// from a window.
type AttachListener interface {
	ViewAttached(v View)
	ViewDetached(v View)
}

// AttachFuncs adapts a pair of functions to AttachListener. Nil
// functions are ignored.
type AttachFuncs struct {
	Attached func(v View)
	Detached func(v View)
}

// Insets is an inset notification. Each field holds the space taken by
// one kind of system surface.
type Insets struct {
	// SystemBars is the space of the status and navigation bars.
	SystemBars Rect
	// DisplayCutout is the space of notches and camera holes.
	DisplayCutout Rect
	// IME is the space of the on-screen keyboard.
	IME Rect

	consumed bool
}

// Platform reports the API level of the host platform.
type Platform interface {
	APILevel() int
}

// PlatformLevel is a Platform with a fixed level.
type PlatformLevel int

// Rect returns the space overlapped by any system surface.
func (in Insets) Rect() Rect {
	return in.SystemBars.Union(in.DisplayCutout).Union(in.IME)
}

// Consume returns the notification marked as fully handled, with no
// insets left.
func (in Insets) Consume() Insets {
	return Insets{consumed: true}
}

// Consumed reports whether the notification was fully handled.
func (in Insets) Consumed() bool {
	return in.consumed
}

func (a AttachFuncs) ViewAttached(v View) {
	if a.Attached != nil {
		a.Attached(v)
	}
}

func (a AttachFuncs) ViewDetached(v View) {
	if a.Detached != nil {
		a.Detached(v)
	}
}

func (p PlatformLevel) APILevel() int {
	return int(p)
}
