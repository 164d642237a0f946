package panzoom

// GestureStart marks the beginning of one continuous gesture. It carries
// only the initial focal point; the engine uses it to reset delta tracking.
type GestureStart struct {
	Focal Vec2
}

// GestureUpdate is one normalized input sample. Scale and Rotation are
// cumulative since the gesture started (platform gesture APIs report
// gesture-total values, not frame deltas); the engine converts them to
// increments internally.
//
// Scale defaults to 1.0 and Rotation to 0.0; a sample carrying exactly the
// default means that axis is inactive for this sample.
type GestureUpdate struct {
	Focal        Vec2       // focal point in global coordinates
	LocalFocal   Vec2       // focal point in content-local coordinates
	Scale        float64    // cumulative scale since gesture start
	Rotation     float64    // cumulative rotation since gesture start, radians
	Device       DeviceKind // source device
	Buttons      ButtonMask // pressed buttons, zero when not applicable
	PointerCount int        // contacts driving the gesture; 0 for trackpad
}

// --- Raw event adapters ---
//
// Each adapter maps one raw platform event shape onto the uniform
// GestureStart/GestureUpdate model. Adapters are stateless and pure;
// filtering of unrecognized event kinds happens upstream.

// ScaleGestureEvent is a raw touch scale/rotate gesture sample as reported
// by a legacy scale-gesture API.
type ScaleGestureEvent struct {
	Focal        Vec2
	LocalFocal   Vec2
	Scale        float64
	Rotation     float64
	PointerCount int
}

// Start normalizes the gesture-begin sample.
func (e ScaleGestureEvent) Start() GestureStart {
	return GestureStart{Focal: e.Focal}
}

// Update normalizes an in-progress sample. Device kind is fixed to touch:
// legacy scale-gesture APIs do not report the source device.
func (e ScaleGestureEvent) Update() GestureUpdate {
	return GestureUpdate{
		Focal:        e.Focal,
		LocalFocal:   e.LocalFocal,
		Scale:        e.Scale,
		Rotation:     e.Rotation,
		Device:       DeviceTouch,
		PointerCount: e.PointerCount,
	}
}

// PanZoomEvent is a raw synthetic trackpad pan-zoom sample. Position is the
// gesture origin and Pan the accumulated pan since the gesture began.
type PanZoomEvent struct {
	Position      Vec2
	LocalPosition Vec2
	Pan           Vec2
	Scale         float64
	Rotation      float64
	Device        DeviceKind
	Buttons       ButtonMask
}

// Start normalizes the gesture-begin sample, anchored at the raw position.
func (e PanZoomEvent) Start() GestureStart {
	return GestureStart{Focal: e.Position}
}

// Update normalizes an in-progress sample. The focal point is the origin
// plus accumulated pan. Pointer count is 0: trackpad gestures are not
// finger-counted.
func (e PanZoomEvent) Update() GestureUpdate {
	return GestureUpdate{
		Focal:        e.Position.Add(e.Pan),
		LocalFocal:   e.LocalPosition.Add(e.Pan),
		Scale:        e.Scale,
		Rotation:     e.Rotation,
		Device:       e.Device,
		Buttons:      e.Buttons,
		PointerCount: 0,
	}
}

// PointerEvent is a raw non-touch pointer sample (mouse, stylus).
type PointerEvent struct {
	Position      Vec2
	LocalPosition Vec2
	Device        DeviceKind
	Buttons       ButtonMask
}

// Start normalizes a pointer-down at the pointer position.
func (e PointerEvent) Start() GestureStart {
	return GestureStart{Focal: e.Position}
}

// Move normalizes a pointer-move: translation only, scale and rotation held
// at their identity defaults, a single pointer.
func (e PointerEvent) Move() GestureUpdate {
	return GestureUpdate{
		Focal:        e.Position,
		LocalFocal:   e.LocalPosition,
		Scale:        1.0,
		Rotation:     0.0,
		Device:       e.Device,
		Buttons:      e.Buttons,
		PointerCount: 1,
	}
}
