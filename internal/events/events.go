// Package events routes mouse presses on a plot to the listeners registered
// for each button.
package events

// Button identifies a mouse button.
type Button int

const (
	Left Button = iota + 1
	Middle
	Right
)

func (b Button) String() string {
	switch b {
	case Left:
		return "left"
	case Middle:
		return "middle"
	case Right:
		return "right"
	}
	return "unknown"
}

// Click is a button press in data coordinates.
type Click struct {
	X, Y   float64
	Button Button
}

// Listener reacts to clicks.
type Listener interface {
	OnClick(Click)
}

// ListenerFunc adapts a function to Listener.
type ListenerFunc func(Click)

func (f ListenerFunc) OnClick(c Click) { f(c) }

// Dispatcher keeps one listener list per button.
type Dispatcher struct {
	listeners map[Button][]Listener
}

func NewDispatcher() *Dispatcher {
	return &Dispatcher{listeners: make(map[Button][]Listener)}
}

// On registers l for presses of button b.
func (d *Dispatcher) On(b Button, l Listener) {
	d.listeners[b] = append(d.listeners[b], l)
}

// Dispatch invokes the listeners of c.Button in registration order.
// Presses of buttons nobody listens to are dropped.
func (d *Dispatcher) Dispatch(c Click) {
	for _, l := range d.listeners[c.Button] {
		l.OnClick(c)
	}
}

// Surface is the plot that listeners annotate while the user clicks.
type Surface interface {
	// VLine draws a short red marker at x from y0 to y1.
	VLine(x, y0, y1 float64)
	// Dot draws a red point.
	Dot(x, y float64)
	// Curve draws a yellow fitted curve.
	Curve(xs, ys []float64)
	// Reset drops every annotation and leaves the base series.
	Reset()
	// Close asks for the window to be closed.
	Close()
}
