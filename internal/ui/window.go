// Package ui shows figures in a desktop window and feeds mouse presses on
// them back to the click handlers.
package ui

import (
	"fmt"
	"image"
	"image/color"
	"os"

	"gioui.org/app"
	"gioui.org/io/event"
	"gioui.org/io/key"
	"gioui.org/io/pointer"
	"gioui.org/io/system"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/unit"
	"github.com/sirupsen/logrus"

	"github.com/HamletTheHamster/Spectroscopy-Tools-in-Go/internal/events"
	"github.com/HamletTheHamster/Spectroscopy-Tools-in-Go/internal/plotting"
)

var background = color.NRGBA{R: 255, G: 255, B: 255, A: 255}

type closer interface {
	CloseRequested() bool
}

// Result tells how a window ended.
type Result struct {
	// Quit is set when the user pressed Escape or Q.
	Quit bool
}

// Show opens a window with scene and blocks until it is closed. Presses on
// the plot are converted to data coordinates and dispatched to d, which may
// be nil for a plain viewer. Shift+left click stands in for the middle
// button.
func Show(title string, scene plotting.Drawer, d *events.Dispatcher) (Result, error) {
	w := new(app.Window)
	w.Option(app.Title(title))
	w.Option(app.Size(unit.Dp(1100), unit.Dp(700)))

	return run(w, scene, d)
}

func run(w *app.Window, scene plotting.Drawer, d *events.Dispatcher) (Result, error) {
	var (
		ops       op.Ops
		res       Result
		img       image.Image
		tr        plotting.Transform
		size      image.Point
		rev       uint64
		renderErr error
		closing   bool
	)
	tag := new(int)

	for {
		switch e := w.Event().(type) {
		case app.DestroyEvent:
			if renderErr != nil {
				return res, renderErr
			}
			return res, e.Err

		case app.FrameEvent:
			gtx := app.NewContext(&ops, e)

			for {
				ev, ok := gtx.Event(key.Filter{Name: key.NameEscape}, key.Filter{Name: "Q"})
				if !ok {
					break
				}
				if ke, ok := ev.(key.Event); ok && ke.State == key.Press {
					res.Quit = true
					closing = true
				}
			}

			for {
				ev, ok := gtx.Event(pointer.Filter{Target: tag, Kinds: pointer.Press})
				if !ok {
					break
				}
				pe, ok := ev.(pointer.Event)
				if !ok || d == nil || !tr.Valid() {
					continue
				}
				b, ok := buttonOf(pe)
				if !ok {
					continue
				}
				x, y := tr.PixelToData(float64(pe.Position.X), float64(pe.Position.Y))
				logrus.WithFields(logrus.Fields{"button": b, "x": x, "y": y}).Debug("click")
				d.Dispatch(events.Click{X: x, Y: y, Button: b})
			}

			if c, ok := scene.(closer); ok && c.CloseRequested() {
				closing = true
			}

			if e.Size.X > 0 && e.Size.Y > 0 && renderErr == nil &&
				(img == nil || e.Size != size || scene.Revision() != rev) {
				img, tr, renderErr = plotting.Render(scene, e.Size.X, e.Size.Y)
				size, rev = e.Size, scene.Revision()
				if renderErr != nil {
					logrus.WithError(renderErr).Error("figure not drawn")
					img = nil
					closing = true
				}
			}

			paint.Fill(&ops, background)
			if img != nil {
				paint.NewImageOp(img).Add(&ops)
				paint.PaintOp{}.Add(&ops)
			}

			area := clip.Rect(image.Rectangle{Max: e.Size}).Push(&ops)
			event.Op(&ops, tag)
			area.Pop()

			e.Frame(gtx.Ops)

			if closing {
				w.Perform(system.ActionClose)
			}
		}
	}
}

func buttonOf(pe pointer.Event) (events.Button, bool) {
	switch {
	case pe.Buttons.Contain(pointer.ButtonTertiary):
		return events.Middle, true
	case pe.Buttons.Contain(pointer.ButtonSecondary):
		return events.Right, true
	case pe.Buttons.Contain(pointer.ButtonPrimary):
		if pe.Modifiers.Contain(key.ModShift) {
			return events.Middle, true
		}
		return events.Left, true
	}
	return 0, false
}

// Main runs tool while the window system owns the main goroutine, then
// exits the process with the tool's status. It does not return.
func Main(tool func() error) {
	go func() {
		if err := tool(); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		os.Exit(0)
	}()
	app.Main()
}
