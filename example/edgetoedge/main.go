// SPDX-License-Identifier: Unlicense OR MIT

package main

// An edge-to-edge Gio program. The toolbar stays below the status bar
// and the footer above the navigation bar and keyboard, while their
// backgrounds extend behind them.

import (
	"image"
	"image/color"
	"log"
	"os"

	"gioui.org/app"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/unit"

	"github.com/insetkit/safearea"
	"github.com/insetkit/safearea/edge"
	"github.com/insetkit/safearea/gioarea"
)

func main() {
	go func() {
		w := new(app.Window)
		w.Option(app.Title("Edge to edge"))
		if err := loop(w); err != nil {
			log.Fatal(err)
		}
		os.Exit(0)
	}()
	app.Main()
}

func loop(w *app.Window) error {
	var ops op.Ops
	sw := &gioarea.Window{Invalidate: w.Invalidate}
	var bar, footer *gioarea.Area
	for {
		switch e := w.Event().(type) {
		case app.DestroyEvent:
			return e.Err
		case app.FrameEvent:
			if bar == nil {
				bar = sw.NewArea(gioarea.Px(e.Metric, layout.UniformInset(8)), safearea.Rect{})
				bar.Background = fill(color.NRGBA{R: 0x3f, G: 0x51, B: 0xb5, A: 0xff})
				safearea.Apply(bar, safearea.Edges(edge.Horizontal|edge.Top))

				footer = sw.NewArea(safearea.Rect{}, gioarea.Px(e.Metric, layout.UniformInset(16)))
				footer.Background = fill(color.NRGBA{R: 0xff, G: 0x40, B: 0x81, A: 0xff})
				safearea.Apply(footer, safearea.Edges(edge.Horizontal|edge.Bottom), safearea.As(safearea.Margin))
			}
			gtx := sw.Frame(&ops, e)
			layout.Flex{Axis: layout.Vertical}.Layout(gtx,
				layout.Rigid(func(gtx layout.Context) layout.Dimensions {
					return bar.Layout(gtx, strip(56))
				}),
				layout.Flexed(1, func(gtx layout.Context) layout.Dimensions {
					gtx.Constraints.Min = gtx.Constraints.Max
					return fill(color.NRGBA{R: 0xee, G: 0xee, B: 0xee, A: 0xff})(gtx)
				}),
				layout.Rigid(func(gtx layout.Context) layout.Dimensions {
					return footer.Layout(gtx, strip(48))
				}),
			)
			e.Frame(gtx.Ops)
		}
	}
}

// strip is a full width widget of height dp.
func strip(height unit.Dp) layout.Widget {
	return func(gtx layout.Context) layout.Dimensions {
		return layout.Dimensions{Size: image.Pt(gtx.Constraints.Max.X, gtx.Dp(height))}
	}
}

func fill(c color.NRGBA) layout.Widget {
	return func(gtx layout.Context) layout.Dimensions {
		defer clip.Rect{Max: gtx.Constraints.Min}.Push(gtx.Ops).Pop()
		paint.ColorOp{Color: c}.Add(gtx.Ops)
		paint.PaintOp{}.Add(gtx.Ops)
		return layout.Dimensions{Size: gtx.Constraints.Min}
	}
}
