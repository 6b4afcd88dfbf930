// SPDX-License-Identifier: Unlicense OR MIT

// Package viewtree is a retained view tree that hosts safearea.
//
// Nodes carry padding, layout parameters and a layout direction, and
// receive inset notifications from the Window they are attached to.
// A Window dispatches insets from its root the way Android's view
// system does: before safearea.LevelInsetsDispatch a node consuming
// the notification hides it from its later siblings, from that level
// on every child receives the insets its parent received.
//
// Nodes and windows must be used from a single goroutine.
package viewtree

import (
	"fmt"

	"github.com/insetkit/safearea"
)

// LayoutParams describe how a node is placed in its parent.
type LayoutParams interface {
	params() *Params
}

// Params are layout parameters without margins.
type Params struct {
	Width, Height int
}

// MarginParams are layout parameters with margins.
type MarginParams struct {
	Params
	Margins safearea.Rect
}

// Node is a view in a tree. The zero value is not usable; use NewView
// or NewGroup.
type Node struct {
	// Name identifies the node in logs and scenes.
	Name string

	group    bool
	padding  safearea.Rect
	params   LayoutParams
	dir      safearea.Direction
	dirSet   bool
	parent   *Node
	children []*Node
	window   *Window

	listener safearea.InsetsListener
	attach   []safearea.AttachListener

	insetRequests  int
	layoutRequests int
}

// NewView returns a leaf node with margin layout parameters.
func NewView(name string) *Node {
	return &Node{Name: name, params: new(MarginParams)}
}

// NewGroup returns a node that holds children.
func NewGroup(name string, children ...*Node) *Node {
	n := NewView(name)
	n.group = true
	for _, c := range children {
		n.Add(c)
	}
	return n
}

func (p *Params) params() *Params { return p }

// Add appends a child to the group n. The child is attached if n is.
func (n *Node) Add(c *Node) {
	if !n.group {
		panic(fmt.Sprintf("viewtree: %s is not a group", n.Name))
	}
	if c.parent != nil {
		panic(fmt.Sprintf("viewtree: %s already has a parent", c.Name))
	}
	c.parent = n
	n.children = append(n.children, c)
	if n.window != nil {
		c.attachTo(n.window)
		n.window.requestLayout()
	}
}

// Remove detaches c from the group n.
func (n *Node) Remove(c *Node) {
	for i, cc := range n.children {
		if cc != c {
			continue
		}
		n.children = append(n.children[:i], n.children[i+1:]...)
		c.parent = nil
		if c.window != nil {
			c.detach()
		}
		return
	}
}

// NumChildren implements safearea.Container.
func (n *Node) NumChildren() int { return len(n.children) }

// Child implements safearea.Container.
func (n *Node) Child(i int) safearea.View { return n.children[i] }

// Children returns the children of n.
func (n *Node) Children() []*Node { return n.children }

// Walk calls fn for n and its descendants, parents before children.
func (n *Node) Walk(fn func(n *Node)) {
	fn(n)
	for _, c := range n.children {
		c.Walk(fn)
	}
}

// Padding implements safearea.View.
func (n *Node) Padding() safearea.Rect { return n.padding }

// SetPadding implements safearea.View.
func (n *Node) SetPadding(p safearea.Rect) {
	if p == n.padding {
		return
	}
	n.padding = p
	n.RequestLayout()
}

// Params returns the layout parameters of n.
func (n *Node) Params() LayoutParams { return n.params }

// SetParams replaces the layout parameters of n.
func (n *Node) SetParams(p LayoutParams) {
	n.params = p
	n.RequestLayout()
}

// Margins implements safearea.MarginView. It panics if the layout
// parameters of n are not *MarginParams.
func (n *Node) Margins() safearea.Rect {
	return n.params.(*MarginParams).Margins
}

// SetMargins implements safearea.MarginView. It panics if the layout
// parameters of n are not *MarginParams.
func (n *Node) SetMargins(m safearea.Rect) {
	lp := n.params.(*MarginParams)
	lp.Margins = m
	n.SetParams(lp)
}

// Parent implements safearea.MarginView.
func (n *Node) Parent() safearea.Layouter {
	if n.parent == nil {
		return nil
	}
	return n.parent
}

// SetLayoutDirection fixes the layout direction of n. Nodes without a
// direction inherit it from their parent and finally their window.
func (n *Node) SetLayoutDirection(d safearea.Direction) {
	n.dir, n.dirSet = d, true
	n.RequestLayout()
}

// LayoutDirection implements safearea.View.
func (n *Node) LayoutDirection() safearea.Direction {
	for p := n; p != nil; p = p.parent {
		if p.dirSet {
			return p.dir
		}
	}
	if n.window != nil {
		return n.window.Direction
	}
	return safearea.LTR
}

// RequestLayout implements safearea.Layouter.
func (n *Node) RequestLayout() {
	n.layoutRequests++
	if n.window != nil {
		n.window.requestLayout()
	}
}

// LayoutRequests returns the number of layout requests made on n.
func (n *Node) LayoutRequests() int { return n.layoutRequests }

// InsetRequests returns the number of inset requests made on n.
func (n *Node) InsetRequests() int { return n.insetRequests }

// SetOnApplyInsets implements safearea.View.
func (n *Node) SetOnApplyInsets(l safearea.InsetsListener) {
	n.listener = l
}

// RequestApplyInsets implements safearea.View.
func (n *Node) RequestApplyInsets() {
	n.insetRequests++
	if n.window != nil {
		n.window.insetsPending = true
	}
}

// DispatchApplyInsets implements safearea.View. The insets are first
// handled by the listener of n, then dispatched to its children unless
// consumed.
func (n *Node) DispatchApplyInsets(in safearea.Insets) safearea.Insets {
	out := in
	if n.listener != nil {
		out = n.listener(n, in)
	}
	if out.Consumed() || len(n.children) == 0 {
		return out
	}
	if n.level() >= safearea.LevelInsetsDispatch {
		for _, c := range n.children {
			c.DispatchApplyInsets(out)
		}
		return out
	}
	for _, c := range n.children {
		out = c.DispatchApplyInsets(out)
		if out.Consumed() {
			break
		}
	}
	return out
}

// Attached implements safearea.View.
func (n *Node) Attached() bool { return n.window != nil }

// Window returns the window n is attached to, or nil.
func (n *Node) Window() *Window { return n.window }

// AddAttachListener implements safearea.View.
func (n *Node) AddAttachListener(l safearea.AttachListener) {
	n.attach = append(n.attach, l)
}

func (n *Node) level() int {
	if n.window != nil {
		return n.window.level()
	}
	return safearea.LevelInsetsDispatch
}

func (n *Node) attachTo(w *Window) {
	n.Walk(func(n *Node) {
		n.window = w
	})
	n.Walk(func(n *Node) {
		for _, l := range n.attach {
			l.ViewAttached(n)
		}
	})
}

func (n *Node) detach() {
	n.Walk(func(n *Node) {
		for _, l := range n.attach {
			l.ViewDetached(n)
		}
	})
	n.Walk(func(n *Node) {
		n.window = nil
	})
}

func (n *Node) String() string {
	return n.Name
}
