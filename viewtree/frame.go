// SPDX-License-Identifier: Unlicense OR MIT

package viewtree

import (
	"fmt"

	"github.com/insetkit/safearea"
	"github.com/insetkit/safearea/edge"
)

// Attrs are the construction attributes of a frame.
type Attrs struct {
	// Padding is the padding the frame is created with.
	Padding safearea.Rect
	// SafeAreaEdges names the edges kept clear of system insets, in
	// the syntax of edge.Parse. The empty string selects all edges.
	SafeAreaEdges string
}

// NewFrame returns a group that keeps its content clear of system
// insets by padding, on top of the padding in attrs. A nil coordinator
// means the zero Coordinator.
func NewFrame(name string, attrs Attrs, c *safearea.Coordinator, children ...*Node) (*Node, error) {
	m, err := edge.Parse(attrs.SafeAreaEdges)
	if err != nil {
		return nil, fmt.Errorf("viewtree: frame %s: %w", name, err)
	}
	if c == nil {
		c = new(safearea.Coordinator)
	}
	g := NewGroup(name, children...)
	g.padding = attrs.Padding
	c.Apply(g, safearea.Edges(m), safearea.As(safearea.Padding))
	return g, nil
}
