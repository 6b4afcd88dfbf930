// SPDX-License-Identifier: Unlicense OR MIT

// Package preview renders simulated devices in the terminal.
package preview

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/insetkit/safearea"
	"github.com/insetkit/safearea/scene"
	"github.com/insetkit/safearea/viewtree"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	headerStyle = lipgloss.NewStyle().Bold(true).Underline(true)
	nameStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	changeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	boxStyle    = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
)

// Render returns a table of the spacing of every node of d.
func Render(title string, d *scene.Device) string {
	var b strings.Builder
	in := d.Window.Insets()
	fmt.Fprintf(&b, "%s\n", titleStyle.Render(title))
	fmt.Fprintf(&b, "%s %v  %s %v  %s %v\n\n",
		dimStyle.Render("bars"), in.SystemBars,
		dimStyle.Render("cutout"), in.DisplayCutout,
		dimStyle.Render("ime"), in.IME,
	)
	fmt.Fprintf(&b, "%s\n", headerStyle.Render(fmt.Sprintf("%-16s %-4s %-18s %-18s", "node", "dir", "padding", "margin")))
	if root := d.Window.Root(); root != nil {
		row(&b, root, 0)
	}
	return boxStyle.Render(strings.TrimRight(b.String(), "\n"))
}

func row(b *strings.Builder, n *viewtree.Node, depth int) {
	margin := dimStyle.Render(fmt.Sprintf("%-18s", "-"))
	if lp, ok := n.Params().(*viewtree.MarginParams); ok {
		margin = spacing(lp.Margins)
	}
	fmt.Fprintf(b, "%s %-4s %s %s\n",
		nameStyle.Render(fmt.Sprintf("%-16s", strings.Repeat("  ", depth)+n.Name)),
		n.LayoutDirection(),
		spacing(n.Padding()),
		margin,
	)
	for _, c := range n.Children() {
		row(b, c, depth+1)
	}
}

func spacing(r safearea.Rect) string {
	s := fmt.Sprintf("%-18s", r)
	if r.IsZero() {
		return s
	}
	return changeStyle.Render(s)
}
