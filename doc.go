// Package panzoom is a gesture-to-transform engine for panning, zooming,
// and rotating an unbounded 2D content plane.
//
// The engine normalizes heterogeneous input — touch scale/rotate gestures,
// trackpad pan-zoom, mouse drags, and scroll-wheel ticks — into a uniform
// gesture model, and maintains a single composed affine transform across a
// sequence of incremental updates. Scale and rotation are anchored at the
// gesture's focal point, so the content under the user's fingers or cursor
// stays fixed.
//
// # Quick start
//
//	engine, err := panzoom.NewEngine(panzoom.DefaultConfig())
//	if err != nil {
//		// invalid configuration
//	}
//	src := panzoom.NewInputSource(engine)
//
//	// in the game loop:
//	src.Update()            // poll input, apply gestures
//	engine.Update(dt)       // advance controller animations
//	m := engine.Transform() // render content under m
//
// A runnable demo lives in examples/viewer.
//
// # Gestures
//
// Platform gesture APIs report scale and rotation cumulatively since the
// gesture started. The engine tracks the last observed absolute sample per
// axis and composes only the frame-to-frame increment onto the transform,
// in fixed order: translate, then scale, then rotate.
//
// [InputSource] polls [Ebitengine] directly. Hosts with their own input
// plumbing feed the engine through the raw event adapters
// ([ScaleGestureEvent], [PanZoomEvent], [PointerEvent], [ScrollEvent])
// or construct [GestureStart] and [GestureUpdate] values themselves.
//
// # Programmatic control
//
// [Controller] exposes get/set access to scale, translation, and rotation
// outside the gesture stream, plus an animated batch mode interpolating the
// transform under a configurable easing curve (via [gween]):
//
//	ctrl := engine.Controller()
//	ctrl.Animate(func(c *panzoom.Controller) {
//		c.SetScale(2)
//		c.SetRotation(math.Pi / 4)
//	})
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
package panzoom
