package panzoom

// ScrollEvent is a raw scroll-wheel (or trackpad scroll) tick.
type ScrollEvent struct {
	Position      Vec2       // pointer position when the tick occurred
	LocalPosition Vec2       // position in content-local coordinates
	Delta         Vec2       // raw scroll delta; positive Y is scroll down
	Device        DeviceKind // mouse or trackpad
}

// resolveScroll maps a raw scroll tick onto a single-axis GestureUpdate
// according to behavior. Sensitivity must be strictly positive; the
// effective scale step is sensitivity/10 and translation moves by a fifth
// of the raw delta. Exactly one of translation, rotation, or scale is
// perturbed; the others stay at their identity defaults.
//
// Returns ok=false for ScrollIgnore: the caller must synthesize neither a
// start nor an update event.
func resolveScroll(ev ScrollEvent, behavior ScrollBehavior, sensitivity float64) (GestureUpdate, bool) {
	up := GestureUpdate{
		Focal:        ev.Position,
		LocalFocal:   ev.LocalPosition,
		Scale:        1.0,
		Rotation:     0.0,
		Device:       ev.Device,
		PointerCount: 1,
	}

	switch behavior {
	case ScrollIgnore:
		return GestureUpdate{}, false
	case ScrollTranslateX:
		up.Focal.X -= ev.Delta.Y / 5
		up.LocalFocal.X -= ev.Delta.Y / 5
	case ScrollTranslateXInvert:
		up.Focal.X += ev.Delta.Y / 5
		up.LocalFocal.X += ev.Delta.Y / 5
	case ScrollTranslateY:
		up.Focal = up.Focal.Sub(Vec2{ev.Delta.X / 5, ev.Delta.Y / 5})
		up.LocalFocal = up.LocalFocal.Sub(Vec2{ev.Delta.X / 5, ev.Delta.Y / 5})
	case ScrollTranslateYInvert:
		up.Focal = up.Focal.Add(Vec2{ev.Delta.X / 5, ev.Delta.Y / 5})
		up.LocalFocal = up.LocalFocal.Add(Vec2{ev.Delta.X / 5, ev.Delta.Y / 5})
	case ScrollRotateClockwise:
		if ev.Delta.Y > 0 {
			up.Rotation = -0.1
		} else {
			up.Rotation = 0.1
		}
	case ScrollRotateCounterClockwise:
		if ev.Delta.Y > 0 {
			up.Rotation = 0.1
		} else {
			up.Rotation = -0.1
		}
	default: // ScrollScale
		if ev.Delta.Y > 0 {
			up.Scale = 1.0 - sensitivity/10
		} else {
			up.Scale = 1.0 + sensitivity/10
		}
	}
	return up, true
}
