package panzoom

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// pinchState tracks an in-progress two-finger gesture. Scale and rotation
// are reported cumulatively against the initial contact geometry, matching
// what platform gesture recognizers deliver; the engine's delta tracker
// turns them back into frame increments.
type pinchState struct {
	active       bool
	initialDist  float64
	initialAngle float64
}

// InputSource polls ebiten's mouse, touch, and wheel state each frame and
// feeds the engine normalized gesture events: button drags become pointer
// moves, two-finger touches become a pinch gesture, wheel ticks go through
// the scroll policy.
//
// The feed methods below take already-sampled state, so the gesture state
// machine can run without a display.
type InputSource struct {
	engine *Engine

	mouseDown bool
	pinch     pinchState
	touchDown bool
	contacts  int

	touchIDs []ebiten.TouchID
	touchBuf []Vec2
}

// NewInputSource creates a poller feeding the given engine.
func NewInputSource(e *Engine) *InputSource {
	return &InputSource{engine: e}
}

// Update polls ebiten input once. Call it from the game's Update.
func (s *InputSource) Update() {
	mx, my := ebiten.CursorPosition()
	var buttons ButtonMask
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		buttons |= ButtonPrimary
	}
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight) {
		buttons |= ButtonSecondary
	}
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonMiddle) {
		buttons |= ButtonMiddle
	}
	cursor := Vec2{float64(mx), float64(my)}

	s.touchIDs = ebiten.AppendTouchIDs(s.touchIDs[:0])
	s.touchBuf = s.touchBuf[:0]
	for _, tid := range s.touchIDs {
		tx, ty := ebiten.TouchPosition(tid)
		s.touchBuf = append(s.touchBuf, Vec2{float64(tx), float64(ty)})
	}

	// Touch owns the gesture while any contact is down.
	if len(s.touchBuf) > 0 || s.touchDown {
		s.feedTouches(s.touchBuf)
	} else {
		s.feedMouse(cursor, buttons)
	}

	// ebiten reports scroll up as positive Y; the scroll policy expects
	// positive to mean scroll down.
	wx, wy := ebiten.Wheel()
	if wx != 0 || wy != 0 {
		s.feedWheel(cursor, Vec2{-wx, -wy})
	}
}

// feedMouse runs the mouse pointer state machine for one sampled frame.
func (s *InputSource) feedMouse(pos Vec2, buttons ButtonMask) {
	ev := PointerEvent{Position: pos, LocalPosition: pos, Device: DeviceMouse, Buttons: buttons}

	switch {
	case buttons != 0 && !s.mouseDown:
		s.mouseDown = true
		s.engine.GestureStart(ev.Start())
	case buttons != 0 && s.mouseDown:
		s.engine.GestureUpdate(ev.Move())
	default:
		s.mouseDown = false
	}
}

// feedTouches runs the touch state machine for one sampled frame. A change
// in contact count restarts the gesture so cumulative values stay anchored
// to consistent geometry.
func (s *InputSource) feedTouches(points []Vec2) {
	count := len(points)
	if count == 0 {
		s.touchDown = false
		s.pinch.active = false
		s.contacts = 0
		return
	}

	restarted := count != s.contacts || !s.touchDown
	s.contacts = count
	s.touchDown = true

	switch count {
	case 1:
		s.pinch.active = false
		ev := ScaleGestureEvent{
			Focal:        points[0],
			LocalFocal:   points[0],
			Scale:        1.0,
			Rotation:     0.0,
			PointerCount: 1,
		}
		if restarted {
			s.engine.GestureStart(ev.Start())
			return
		}
		s.engine.GestureUpdate(ev.Update())
	default:
		// Two or more contacts: pinch on the first two.
		p0, p1 := points[0], points[1]
		mid := Vec2{(p0.X + p1.X) / 2, (p0.Y + p1.Y) / 2}
		dx, dy := p1.X-p0.X, p1.Y-p0.Y
		dist := math.Hypot(dx, dy)
		angle := math.Atan2(dy, dx)

		if restarted || !s.pinch.active {
			s.pinch = pinchState{active: true, initialDist: dist, initialAngle: angle}
			s.engine.GestureStart(GestureStart{Focal: mid})
			return
		}

		scale := 1.0
		if s.pinch.initialDist > 0 {
			scale = dist / s.pinch.initialDist
		}
		ev := ScaleGestureEvent{
			Focal:        mid,
			LocalFocal:   mid,
			Scale:        scale,
			Rotation:     angle - s.pinch.initialAngle,
			PointerCount: count,
		}
		s.engine.GestureUpdate(ev.Update())
	}
}

// feedWheel forwards one scroll tick through the engine's scroll policy.
func (s *InputSource) feedWheel(pos Vec2, delta Vec2) {
	s.engine.Scroll(ScrollEvent{
		Position:      pos,
		LocalPosition: pos,
		Delta:         delta,
		Device:        DeviceMouse,
	})
}
