// SPDX-License-Identifier: Unlicense OR MIT

package scene

import (
	"fmt"
	"log/slog"

	"github.com/insetkit/safearea"
	"github.com/insetkit/safearea/edge"
	"github.com/insetkit/safearea/viewtree"
)

// Device is a built scene.
type Device struct {
	Window *viewtree.Window
	// Nodes lists the nodes in tree order.
	Nodes []*viewtree.Node

	byName map[string]*viewtree.Node
}

// Build creates the view tree of s, applies its safe area attributes
// with a coordinator for the scene's API level, attaches the tree and
// reports the initial insets. Nothing is dispatched until the first
// Flush or Play.
func (s *Scene) Build(logger *slog.Logger) (*Device, error) {
	c := &safearea.Coordinator{Logger: logger}
	w := &viewtree.Window{Logger: logger}
	if s.API > 0 {
		c.Platform = safearea.PlatformLevel(s.API)
		w.Platform = c.Platform
	}
	dir, err := ParseDirection(s.Direction)
	if err != nil {
		return nil, err
	}
	w.Direction = dir
	d := &Device{Window: w, byName: make(map[string]*viewtree.Node)}
	root, err := d.build(c, &s.Root)
	if err != nil {
		return nil, err
	}
	root.Walk(func(n *viewtree.Node) {
		d.Nodes = append(d.Nodes, n)
	})
	w.Attach(root)
	w.Report(s.Insets.Notification())
	return d, nil
}

func (d *Device) build(c *safearea.Coordinator, sn *Node) (*viewtree.Node, error) {
	var children []*viewtree.Node
	for i := range sn.Children {
		cn, err := d.build(c, &sn.Children[i])
		if err != nil {
			return nil, err
		}
		children = append(children, cn)
	}
	var n *viewtree.Node
	switch sn.kind() {
	case "frame":
		f, err := viewtree.NewFrame(sn.Name, viewtree.Attrs{
			Padding:       sn.Padding,
			SafeAreaEdges: sn.SafeAreaEdges,
		}, c, children...)
		if err != nil {
			return nil, err
		}
		n = f
	case "group":
		n = viewtree.NewGroup(sn.Name, children...)
	case "view":
		n = viewtree.NewView(sn.Name)
	default:
		return nil, fmt.Errorf("%w %q for %q", ErrUnknownType, sn.Type, sn.Name)
	}
	if sn.kind() != "frame" {
		n.SetPadding(sn.Padding)
	}
	if sn.Params == "plain" {
		n.SetParams(new(viewtree.Params))
	}
	if sn.Margin != nil {
		n.SetMargins(*sn.Margin)
	}
	if sn.Direction != "" {
		dir, err := ParseDirection(sn.Direction)
		if err != nil {
			return nil, err
		}
		n.SetLayoutDirection(dir)
	}
	if sa := sn.SafeArea; sa != nil {
		m, err := edge.Parse(sa.Edges)
		if err != nil {
			return nil, fmt.Errorf("scene: node %s: %w", sn.Name, err)
		}
		if sa.Kind == safearea.Margin && sn.Params == "plain" {
			return nil, fmt.Errorf("%w: %q applies margins without margin params", ErrInvalid, sn.Name)
		}
		c.Apply(n, safearea.Edges(m), safearea.As(sa.Kind))
	}
	if sn.ForceDispatch {
		c.ForceDispatchInsets(n)
	}
	d.byName[sn.Name] = n
	return n, nil
}

// Node returns the node with the given name, or nil.
func (d *Device) Node(name string) *viewtree.Node {
	return d.byName[name]
}

// Flush dispatches pending insets.
func (d *Device) Flush() {
	d.Window.Flush()
}

// Play reports the insets of e and dispatches them.
func (d *Device) Play(e Event) error {
	if e.Direction != "" {
		dir, err := ParseDirection(e.Direction)
		if err != nil {
			return err
		}
		d.Window.SetDirection(dir)
	}
	in := e.Notification()
	if e.Rotate {
		in = Rotate(d.Window.Insets())
	}
	d.Window.Report(in)
	d.Window.Flush()
	return nil
}
