// Package view holds the board viewer's camera: rotation about three axes,
// zoom, and the drag and scroll commands that change them. It has no
// dependency on a windowing toolkit; renderers read the camera and subscribe to
// change notifications.
package view

// Axis selects one of the camera's rotation axes.
type Axis int

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

func (a Axis) String() string {
	switch a {
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	case AxisZ:
		return "z"
	}
	return "?"
}

// Button identifies the mouse button held during a drag.
type Button int

const (
	ButtonNone Button = iota
	ButtonLeft
	ButtonRight
)

const (
	// AngleUnits is the number of rotation units per degree.
	AngleUnits = 16
	fullTurn   = 360 * AngleUnits

	dragGain  = 8
	zoomStep  = 0.1
	minZoom   = 0.1
	startZoom = 1.0
)

// Change describes a single camera update.
type Change struct {
	Axis  Axis
	Angle int
	Zoom  float64
	// Zoomed is set for zoom changes; Axis and Angle are meaningful otherwise.
	Zoomed bool
}

// Camera is the mutable orientation and zoom of the board view.
type Camera struct {
	rot       [3]int
	zoom      float64
	lastX     int
	lastY     int
	observers []func(Change)
}

// NewCamera returns a camera looking straight at the board.
func NewCamera() *Camera {
	return &Camera{zoom: startZoom}
}

// OnChange registers fn to be called after every effective change.
func (c *Camera) OnChange(fn func(Change)) {
	if fn != nil {
		c.observers = append(c.observers, fn)
	}
}

func (c *Camera) notify(ch Change) {
	for _, fn := range c.observers {
		fn(ch)
	}
}

// Rotation returns the angle about axis in sixteenths of a degree.
func (c *Camera) Rotation(axis Axis) int { return c.rot[axis] }

// Degrees returns the angle about axis in degrees.
func (c *Camera) Degrees(axis Axis) float64 {
	return float64(c.rot[axis]) / AngleUnits
}

// Zoom returns the zoom factor; larger values show more of the scene.
func (c *Camera) Zoom() float64 { return c.zoom }

// SetRotation normalises angle and applies it; observers fire only when the
// stored value changes.
func (c *Camera) SetRotation(axis Axis, angle int) {
	angle = NormalizeAngle(angle)
	if angle == c.rot[axis] {
		return
	}
	c.rot[axis] = angle
	c.notify(Change{Axis: axis, Angle: angle, Zoom: c.zoom})
}

// NormalizeAngle folds angle into [0, 360*AngleUnits].
func NormalizeAngle(angle int) int {
	for angle < 0 {
		angle += fullTurn
	}
	for angle > fullTurn {
		angle -= fullTurn
	}
	return angle
}

// Press records the cursor position that starts a drag.
func (c *Camera) Press(x, y int) {
	c.lastX, c.lastY = x, y
}

// Drag rotates the camera by the cursor movement since the last Press or
// Drag. The left button tilts about X and Y, the right button about X and Z.
func (c *Camera) Drag(x, y int, b Button) {
	dx := x - c.lastX
	dy := y - c.lastY
	switch b {
	case ButtonLeft:
		c.SetRotation(AxisX, c.rot[AxisX]+dragGain*dy)
		c.SetRotation(AxisY, c.rot[AxisY]+dragGain*dx)
	case ButtonRight:
		c.SetRotation(AxisX, c.rot[AxisX]+dragGain*dy)
		c.SetRotation(AxisZ, c.rot[AxisZ]+dragGain*dx)
	}
	c.lastX, c.lastY = x, y
}

// Scroll zooms in for positive dy (wheel up) and out otherwise.
func (c *Camera) Scroll(dy float64) {
	if dy == 0 {
		return
	}
	z := c.zoom + zoomStep
	if dy > 0 {
		z = c.zoom - zoomStep
	}
	if z < minZoom {
		z = minZoom
	}
	if z == c.zoom {
		return
	}
	c.zoom = z
	c.notify(Change{Zoom: z, Zoomed: true})
}

// Reset restores the initial orientation and zoom.
func (c *Camera) Reset() {
	for _, axis := range []Axis{AxisX, AxisY, AxisZ} {
		c.SetRotation(axis, 0)
	}
	if c.zoom != startZoom {
		c.zoom = startZoom
		c.notify(Change{Zoom: startZoom, Zoomed: true})
	}
}
