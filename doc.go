// SPDX-License-Identifier: Unlicense OR MIT

/*
Package safearea keeps views clear of system surfaces in edge-to-edge
applications.

When an application draws behind the status bar, navigation bar,
display cutouts and the on-screen keyboard, content near the screen
edges is overlapped by those surfaces. Apply records the padding or
margin a view was given by the developer and, whenever the window
reports new system insets, sets the view's spacing to that original
spacing plus the insets of the edges the caller selected:

	safearea.Apply(toolbar, safearea.Edges(edge.Top))
	safearea.Apply(list, safearea.Edges(edge.Bottom), safearea.As(safearea.Margin))

The host user interface is reached only through the View, MarginView
and Container interfaces. Package viewtree implements them for a
retained view tree and package gioarea for Gio programs.

All functions must be called from the goroutine that dispatches inset
notifications for the views involved.
*/
package safearea
