// SPDX-License-Identifier: Unlicense OR MIT

package viewtree_test

import (
	"errors"
	"testing"

	"github.com/insetkit/safearea"
	"github.com/insetkit/safearea/edge"
	"github.com/insetkit/safearea/viewtree"
)

func TestFrame(t *testing.T) {
	c := &safearea.Coordinator{Platform: safearea.PlatformLevel(34)}
	content := viewtree.NewView("content")
	attrs := viewtree.Attrs{
		Padding:       safearea.Rect{Left: 4, Top: 8},
		SafeAreaEdges: "top|bottom",
	}
	f, err := viewtree.NewFrame("frame", attrs, c, content)
	if err != nil {
		t.Fatal(err)
	}

	w := &viewtree.Window{Platform: c.Platform}
	w.Attach(f)
	w.Report(safearea.Insets{SystemBars: safearea.Rect{Left: 9, Top: 24, Bottom: 48}})
	w.Flush()

	if got, want := f.Padding(), (safearea.Rect{Left: 4, Top: 32, Bottom: 48}); got != want {
		t.Errorf("frame padding = %v, want %v", got, want)
	}
	if got := content.Padding(); !got.IsZero() {
		t.Errorf("content padding = %v", got)
	}
}

func TestFrameDefaultEdges(t *testing.T) {
	c := &safearea.Coordinator{Platform: safearea.PlatformLevel(34)}
	f, err := viewtree.NewFrame("frame", viewtree.Attrs{}, c)
	if err != nil {
		t.Fatal(err)
	}
	f.DispatchApplyInsets(safearea.Insets{SystemBars: safearea.Rect{Left: 1, Top: 2, Right: 3, Bottom: 4}})
	if got, want := f.Padding(), (safearea.Rect{Left: 1, Top: 2, Right: 3, Bottom: 4}); got != want {
		t.Errorf("padding = %v, want %v", got, want)
	}
}

func TestFrameBadEdges(t *testing.T) {
	if _, err := viewtree.NewFrame("frame", viewtree.Attrs{SafeAreaEdges: "top|start"}, nil); !errors.Is(err, edge.ErrUnknownEdge) {
		t.Errorf("err = %v, want ErrUnknownEdge", err)
	}
}

func TestLayoutDirection(t *testing.T) {
	leaf := viewtree.NewView("leaf")
	mid := viewtree.NewGroup("mid", leaf)
	root := viewtree.NewGroup("root", mid)
	if got := leaf.LayoutDirection(); got != safearea.LTR {
		t.Errorf("detached direction = %v", got)
	}
	w := &viewtree.Window{Direction: safearea.RTL}
	w.Attach(root)
	if got := leaf.LayoutDirection(); got != safearea.RTL {
		t.Errorf("window direction not inherited: %v", got)
	}
	mid.SetLayoutDirection(safearea.LTR)
	if got := leaf.LayoutDirection(); got != safearea.LTR {
		t.Errorf("parent direction not inherited: %v", got)
	}
}

func TestAttachListeners(t *testing.T) {
	leaf := viewtree.NewView("leaf")
	var attached, detached int
	leaf.AddAttachListener(safearea.AttachFuncs{
		Attached: func(safearea.View) { attached++ },
		Detached: func(safearea.View) { detached++ },
	})
	root := viewtree.NewGroup("root")
	w := new(viewtree.Window)
	w.Attach(root)
	if leaf.Attached() {
		t.Fatal("leaf attached before Add")
	}
	root.Add(leaf)
	if !leaf.Attached() || leaf.Window() != w || attached != 1 {
		t.Errorf("after Add: attached=%v listener=%d", leaf.Attached(), attached)
	}
	root.Remove(leaf)
	if leaf.Attached() || detached != 1 {
		t.Errorf("after Remove: attached=%v listener=%d", leaf.Attached(), detached)
	}
	if root.NumChildren() != 0 {
		t.Errorf("root has %d children", root.NumChildren())
	}
}

func TestFlush(t *testing.T) {
	root := viewtree.NewView("root")
	var got []safearea.Rect
	root.SetOnApplyInsets(func(v safearea.View, in safearea.Insets) safearea.Insets {
		got = append(got, in.Rect())
		return in
	})
	w := &viewtree.Window{Platform: safearea.PlatformLevel(34)}
	if w.Flush() {
		t.Error("Flush without a root dispatched")
	}
	w.Attach(root)
	w.Report(safearea.Insets{IME: safearea.Rect{Bottom: 300}})
	if !w.Flush() {
		t.Error("Flush after Report did not dispatch")
	}
	if w.Flush() {
		t.Error("Flush dispatched twice")
	}
	root.RequestApplyInsets()
	w.Flush()
	if len(got) != 2 || w.Dispatches() != 2 {
		t.Fatalf("dispatches: %v (%d)", got, w.Dispatches())
	}
	if got[1] != (safearea.Rect{Bottom: 300}) {
		t.Errorf("redispatched %v", got[1])
	}
}

func TestLayoutRequests(t *testing.T) {
	v := viewtree.NewView("v")
	w := new(viewtree.Window)
	w.Attach(v)
	w.Flush()
	v.SetPadding(safearea.Rect{})
	if v.LayoutRequests() != 0 || w.LayoutPending() {
		t.Error("unchanged padding requested a layout")
	}
	v.SetPadding(safearea.Rect{Top: 1})
	if v.LayoutRequests() != 1 || !w.LayoutPending() {
		t.Error("padding change did not request a layout")
	}
}

func TestAddTwicePanics(t *testing.T) {
	v := viewtree.NewView("v")
	viewtree.NewGroup("a", v)
	defer func() {
		if recover() == nil {
			t.Error("expected a panic")
		}
	}()
	viewtree.NewGroup("b", v)
}
