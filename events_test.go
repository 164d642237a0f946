package panzoom

import "testing"

func TestScaleGestureAdapter(t *testing.T) {
	ev := ScaleGestureEvent{
		Focal:        Vec2{100, 50},
		LocalFocal:   Vec2{10, 5},
		Scale:        1.3,
		Rotation:     0.2,
		PointerCount: 2,
	}

	start := ev.Start()
	assertVec(t, "start focal", start.Focal, Vec2{100, 50})

	up := ev.Update()
	assertVec(t, "focal", up.Focal, Vec2{100, 50})
	assertVec(t, "local", up.LocalFocal, Vec2{10, 5})
	assertNear(t, "scale", up.Scale, 1.3)
	assertNear(t, "rotation", up.Rotation, 0.2)
	if up.Device != DeviceTouch {
		t.Errorf("device = %v, want touch", up.Device)
	}
	if up.PointerCount != 2 {
		t.Errorf("pointer count = %d, want 2", up.PointerCount)
	}
}

func TestPanZoomAdapter(t *testing.T) {
	ev := PanZoomEvent{
		Position:      Vec2{200, 100},
		LocalPosition: Vec2{20, 10},
		Pan:           Vec2{-15, 30},
		Scale:         0.8,
		Rotation:      -0.1,
		Device:        DeviceTrackpad,
		Buttons:       ButtonPrimary,
	}

	start := ev.Start()
	assertVec(t, "start focal", start.Focal, Vec2{200, 100})

	up := ev.Update()
	// Focal point is the gesture origin plus accumulated pan.
	assertVec(t, "focal", up.Focal, Vec2{185, 130})
	assertVec(t, "local", up.LocalFocal, Vec2{5, 40})
	if up.Device != DeviceTrackpad {
		t.Errorf("device = %v, want trackpad", up.Device)
	}
	if up.Buttons != ButtonPrimary {
		t.Errorf("buttons = %v, want primary", up.Buttons)
	}
	if up.PointerCount != 0 {
		t.Errorf("pointer count = %d, want 0 for trackpad", up.PointerCount)
	}
}

func TestPointerAdapter(t *testing.T) {
	ev := PointerEvent{
		Position:      Vec2{30, 40},
		LocalPosition: Vec2{3, 4},
		Device:        DeviceMouse,
		Buttons:       ButtonSecondary,
	}

	start := ev.Start()
	assertVec(t, "start focal", start.Focal, Vec2{30, 40})

	up := ev.Move()
	assertVec(t, "focal", up.Focal, Vec2{30, 40})
	assertNear(t, "scale identity", up.Scale, 1.0)
	assertNear(t, "rotation identity", up.Rotation, 0.0)
	if up.PointerCount != 1 {
		t.Errorf("pointer count = %d, want 1", up.PointerCount)
	}
}
