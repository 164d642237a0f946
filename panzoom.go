package panzoom

// Vec2 is a 2D vector used for positions, deltas, and focal points
// throughout the API.
type Vec2 struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v.X + o.X, v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{v.X - o.X, v.Y - o.Y}
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Center returns the geometric center of the rectangle.
func (r Rect) Center() Vec2 {
	return Vec2{r.X + r.Width/2, r.Y + r.Height/2}
}

// DeviceKind identifies the input device that produced a gesture sample.
type DeviceKind uint8

const (
	DeviceUnknown  DeviceKind = iota // unclassified input source
	DeviceMouse                      // mouse pointer
	DeviceTouch                      // direct touch contact
	DeviceTrackpad                   // trackpad pan-zoom gesture
	DeviceStylus                     // pen / stylus
)

// ButtonMask is a bitmask of pressed pointer buttons.
// Values can be combined with bitwise OR (e.g. ButtonPrimary | ButtonSecondary).
type ButtonMask uint8

const (
	ButtonPrimary   ButtonMask = 1 << iota // primary (left) button
	ButtonSecondary                        // secondary (right) button
	ButtonMiddle                           // middle button (wheel click)
)

// ScrollBehavior selects how a raw scroll-wheel tick maps onto the transform.
// Exactly one of translation, rotation, or scale is perturbed per tick.
type ScrollBehavior uint8

const (
	ScrollIgnore                 ScrollBehavior = iota // drop the event entirely
	ScrollTranslateX                                   // pan horizontally (scroll down moves content left)
	ScrollTranslateXInvert                             // pan horizontally, inverted
	ScrollTranslateY                                   // pan along the raw delta (scroll down moves content up)
	ScrollTranslateYInvert                             // pan along the raw delta, inverted
	ScrollRotateClockwise                              // rotate clockwise on scroll down
	ScrollRotateCounterClockwise                       // rotate counter-clockwise on scroll down
	ScrollScale                                        // zoom (default; scroll down zooms out)
)
