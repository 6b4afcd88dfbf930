// SPDX-License-Identifier: Unlicense OR MIT

package safearea_test

import (
	"fmt"
	"testing"

	"github.com/insetkit/safearea"
	"github.com/insetkit/safearea/edge"
	"github.com/insetkit/safearea/viewtree"
)

func TestApplyPaddingScenario(t *testing.T) {
	c := &safearea.Coordinator{Platform: safearea.PlatformLevel(34)}
	v := viewtree.NewView("content")
	v.SetPadding(safearea.Rect{Top: 8, Bottom: 8})
	c.Apply(v)

	w := &viewtree.Window{Platform: c.Platform}
	w.Attach(v)
	w.Report(safearea.Insets{SystemBars: safearea.Rect{Top: 24, Bottom: 48}})
	w.Flush()

	if got, want := v.Padding(), (safearea.Rect{Top: 32, Bottom: 56}); got != want {
		t.Errorf("padding = %v, want %v", got, want)
	}
}

func TestApplyMarginScenario(t *testing.T) {
	c := &safearea.Coordinator{Platform: safearea.PlatformLevel(34)}
	v := viewtree.NewView("list")
	v.SetMargins(safearea.Rect{Left: 4, Top: 4, Right: 4, Bottom: 4})
	s := c.Apply(v, safearea.Edges(edge.Vertical), safearea.As(safearea.Margin))
	if s.Kind() != safearea.Margin || s.Edges() != edge.Vertical {
		t.Fatalf("settings = %v %v", s.Kind(), s.Edges())
	}

	w := &viewtree.Window{Platform: c.Platform}
	w.Attach(viewtree.NewGroup("root", v))
	w.Report(safearea.Insets{SystemBars: safearea.Rect{Left: 10, Top: 20, Right: 10, Bottom: 30}})
	w.Flush()

	if got, want := v.Margins(), (safearea.Rect{Left: 4, Top: 24, Right: 4, Bottom: 34}); got != want {
		t.Errorf("margins = %v, want %v", got, want)
	}
	if got := v.Padding(); !got.IsZero() {
		t.Errorf("padding changed to %v", got)
	}
}

func TestApplyDefaults(t *testing.T) {
	c := &safearea.Coordinator{Platform: safearea.PlatformLevel(34)}
	tests := []struct {
		opts  []safearea.Option
		edges edge.Mask
		kind  safearea.Kind
	}{
		{nil, edge.All, safearea.Padding},
		{[]safearea.Option{safearea.As(safearea.Margin)}, edge.All, safearea.Margin},
		{[]safearea.Option{safearea.Edges(edge.Top)}, edge.Top, safearea.Padding},
		{[]safearea.Option{safearea.Edges(edge.Bottom), safearea.As(safearea.Margin)}, edge.Bottom, safearea.Margin},
	}
	for _, test := range tests {
		s := c.Apply(viewtree.NewView("v"), test.opts...)
		if s.Edges() != test.edges || s.Kind() != test.kind {
			t.Errorf("got %v %v, want %v %v", s.Edges(), s.Kind(), test.edges, test.kind)
		}
	}
}

func TestApplyConsumes(t *testing.T) {
	c := &safearea.Coordinator{Platform: safearea.PlatformLevel(34)}
	v := viewtree.NewView("v")
	c.Apply(v, safearea.Edges(edge.Top))
	out := v.DispatchApplyInsets(safearea.Insets{SystemBars: safearea.Rect{Top: 24}})
	if !out.Consumed() {
		t.Error("notification not consumed")
	}
	if !out.Rect().IsZero() {
		t.Errorf("consumed notification carries %v", out.Rect())
	}
}

func TestApplyUnion(t *testing.T) {
	c := &safearea.Coordinator{Platform: safearea.PlatformLevel(34)}
	v := viewtree.NewView("v")
	c.Apply(v)
	v.DispatchApplyInsets(safearea.Insets{
		SystemBars:    safearea.Rect{Top: 24, Bottom: 48},
		DisplayCutout: safearea.Rect{Left: 30, Top: 32},
		IME:           safearea.Rect{Bottom: 300},
	})
	if got, want := v.Padding(), (safearea.Rect{Left: 30, Top: 32, Bottom: 300}); got != want {
		t.Errorf("padding = %v, want %v", got, want)
	}
}

func TestApplyAttached(t *testing.T) {
	c := &safearea.Coordinator{Platform: safearea.PlatformLevel(34)}
	v := viewtree.NewView("v")
	w := &viewtree.Window{Platform: c.Platform}
	w.Attach(v)
	c.Apply(v)
	if got := v.InsetRequests(); got != 1 {
		t.Errorf("inset requests = %d, want 1", got)
	}
}

func TestApplyDeferredUntilAttach(t *testing.T) {
	c := &safearea.Coordinator{Platform: safearea.PlatformLevel(34)}
	v := viewtree.NewView("v")
	c.Apply(v)
	if got := v.InsetRequests(); got != 0 {
		t.Fatalf("inset requests before attach = %d", got)
	}

	w := &viewtree.Window{Platform: c.Platform}
	w.Attach(v)
	if got := v.InsetRequests(); got != 1 {
		t.Errorf("inset requests after attach = %d, want 1", got)
	}
	w.Detach()
	if got := v.InsetRequests(); got != 1 {
		t.Errorf("inset requests after detach = %d, want 1", got)
	}
	w.Attach(v)
	if got := v.InsetRequests(); got != 1 {
		t.Errorf("inset requests after second attach = %d, want 1", got)
	}
}

func TestApplyReplacesListener(t *testing.T) {
	c := &safearea.Coordinator{Platform: safearea.PlatformLevel(34)}
	v := viewtree.NewView("v")
	c.Apply(v, safearea.Edges(edge.Top))
	c.Apply(v, safearea.Edges(edge.Bottom))
	v.DispatchApplyInsets(safearea.Insets{SystemBars: safearea.Rect{Top: 24, Bottom: 48}})
	if got, want := v.Padding(), (safearea.Rect{Bottom: 48}); got != want {
		t.Errorf("padding = %v, want %v", got, want)
	}
}

func TestInsetsRect(t *testing.T) {
	in := safearea.Insets{
		SystemBars:    safearea.Rect{Top: 24, Bottom: 48},
		DisplayCutout: safearea.Rect{Left: 30},
		IME:           safearea.Rect{Bottom: 300},
	}
	if got, want := in.Rect(), (safearea.Rect{Left: 30, Top: 24, Bottom: 300}); got != want {
		t.Errorf("Rect() = %v, want %v", got, want)
	}
	if in.Consumed() {
		t.Error("new notification is consumed")
	}
	if !in.Consume().Consumed() {
		t.Error("Consume() not consumed")
	}
}

// siblings returns an attached root group with two children that both
// keep clear of system insets.
func siblings(c *safearea.Coordinator) (w *viewtree.Window, root, a, b *viewtree.Node) {
	a = viewtree.NewView("a")
	b = viewtree.NewView("b")
	c.Apply(a, safearea.Edges(edge.Top))
	c.Apply(b, safearea.Edges(edge.Bottom))
	root = viewtree.NewGroup("root", a, b)
	w = &viewtree.Window{Platform: c.Platform}
	w.Attach(root)
	return w, root, a, b
}

func TestLegacyDispatchStopsAtConsumer(t *testing.T) {
	c := &safearea.Coordinator{Platform: safearea.PlatformLevel(29)}
	w, _, a, b := siblings(c)
	w.Report(safearea.Insets{SystemBars: safearea.Rect{Top: 24, Bottom: 48}})
	w.Flush()
	if got := a.Padding(); got != (safearea.Rect{Top: 24}) {
		t.Errorf("a padding = %v", got)
	}
	if got := b.Padding(); !got.IsZero() {
		t.Errorf("b padding = %v, want zero on a legacy dispatch", got)
	}
}

func TestForceDispatchInsets(t *testing.T) {
	c := &safearea.Coordinator{Platform: safearea.PlatformLevel(29)}
	w, root, a, b := siblings(c)
	c.ForceDispatchInsets(root)
	w.Report(safearea.Insets{SystemBars: safearea.Rect{Top: 24, Bottom: 48}})
	w.Flush()
	if got := a.Padding(); got != (safearea.Rect{Top: 24}) {
		t.Errorf("a padding = %v", got)
	}
	if got := b.Padding(); got != (safearea.Rect{Bottom: 48}) {
		t.Errorf("b padding = %v", got)
	}

	// Without a consuming child the notification passes through.
	plain := viewtree.NewGroup("plain", viewtree.NewView("leaf"))
	c.ForceDispatchInsets(plain)
	in := safearea.Insets{IME: safearea.Rect{Bottom: 300}}
	out := plain.DispatchApplyInsets(in)
	if out.Consumed() || out != in {
		t.Errorf("got %+v, want the original notification", out)
	}
}

func TestForceDispatchInsetsModern(t *testing.T) {
	c := &safearea.Coordinator{Platform: safearea.PlatformLevel(safearea.LevelInsetsDispatch)}
	w, root, a, b := siblings(c)
	c.ForceDispatchInsets(root)
	w.Report(safearea.Insets{SystemBars: safearea.Rect{Top: 24, Bottom: 48}})
	w.Flush()
	if got := a.Padding(); got != (safearea.Rect{Top: 24}) {
		t.Errorf("a padding = %v", got)
	}
	if got := b.Padding(); got != (safearea.Rect{Bottom: 48}) {
		t.Errorf("b padding = %v", got)
	}
}

func ExampleApply() {
	c := &safearea.Coordinator{Platform: safearea.PlatformLevel(34)}

	toolbar := viewtree.NewView("toolbar")
	toolbar.SetPadding(safearea.Rect{Left: 16, Top: 8, Right: 16, Bottom: 8})
	c.Apply(toolbar, safearea.Edges(edge.Top))

	w := new(viewtree.Window)
	w.Platform = c.Platform
	w.Attach(toolbar)
	w.Report(safearea.Insets{SystemBars: safearea.Rect{Top: 24, Bottom: 48}})
	w.Flush()
	fmt.Println(toolbar.Padding())

	w.Report(safearea.Insets{})
	w.Flush()
	fmt.Println(toolbar.Padding())
	// Output:
	// (16,32,16,8)
	// (0,0,0,0)
}
