package panzoom

import (
	"errors"
	"math"
	"testing"
)

// tweenEpsilon covers float32 precision in animated values mid-flight.
const tweenEpsilon = 1e-3

func TestControllerNotReadyBeforeAttach(t *testing.T) {
	c := NewController()

	if _, err := c.Scale(); !errors.Is(err, ErrNotReady) {
		t.Errorf("Scale err = %v, want ErrNotReady", err)
	}
	if _, err := c.Rotation(); !errors.Is(err, ErrNotReady) {
		t.Errorf("Rotation err = %v, want ErrNotReady", err)
	}
	if _, err := c.Translation(); !errors.Is(err, ErrNotReady) {
		t.Errorf("Translation err = %v, want ErrNotReady", err)
	}
	if err := c.SetScale(2); !errors.Is(err, ErrNotReady) {
		t.Errorf("SetScale err = %v, want ErrNotReady", err)
	}
	if err := c.Reset(); !errors.Is(err, ErrNotReady) {
		t.Errorf("Reset err = %v, want ErrNotReady", err)
	}
	if err := c.Animate(func(*Controller) {}); !errors.Is(err, ErrNotReady) {
		t.Errorf("Animate err = %v, want ErrNotReady", err)
	}
}

func TestOnReadyFiresOnceAfterAttach(t *testing.T) {
	var readyCalls int
	var fromCallback *Controller
	e := newTestEngine(t, func(c *Config) {
		c.OnReady = func(ctrl *Controller) {
			readyCalls++
			fromCallback = ctrl
			// The surface is usable inside the callback.
			if err := ctrl.SetScale(2); err != nil {
				t.Errorf("SetScale in OnReady: %v", err)
			}
		}
	})
	if readyCalls != 1 {
		t.Fatalf("OnReady calls = %d, want 1", readyCalls)
	}
	if fromCallback != e.Controller() {
		t.Error("OnReady received a different controller")
	}
	assertNear(t, "initial scale applied", e.Scale(), 2)
}

func TestExternalControllerIsAttached(t *testing.T) {
	ctrl := NewController()
	e := newTestEngine(t, func(c *Config) { c.Controller = ctrl })
	if e.Controller() != ctrl {
		t.Fatal("engine did not adopt the supplied controller")
	}
	if err := ctrl.SetScale(1.5); err != nil {
		t.Fatalf("SetScale: %v", err)
	}
}

// --- Absolute setters ---

func TestSetScaleRoundTrip(t *testing.T) {
	e := newTestEngine(t, nil)
	c := e.Controller()

	// Prior rotation and translation must not disturb the round trip.
	if err := c.SetRotation(0.7); err != nil {
		t.Fatal(err)
	}
	if err := c.SetTranslation(Vec2{40, -25}); err != nil {
		t.Fatal(err)
	}
	if err := c.SetScale(2.0); err != nil {
		t.Fatal(err)
	}

	got, err := c.Scale()
	if err != nil {
		t.Fatal(err)
	}
	assertNear(t, "round trip", got, 2.0)

	// Setting scale leaves the rotation component alone.
	rot, _ := c.Rotation()
	assertNear(t, "rotation preserved", rot, 0.7)
}

func TestSetScaleRejectsNonPositive(t *testing.T) {
	e := newTestEngine(t, nil)
	c := e.Controller()
	if err := c.SetScale(0); !errors.Is(err, ErrDegenerateScale) {
		t.Errorf("SetScale(0) err = %v, want ErrDegenerateScale", err)
	}
	if err := c.SetScale(-1); !errors.Is(err, ErrDegenerateScale) {
		t.Errorf("SetScale(-1) err = %v, want ErrDegenerateScale", err)
	}
}

func TestSetRotationIsAbsolute(t *testing.T) {
	e := newTestEngine(t, nil)
	c := e.Controller()

	if err := c.SetRotation(0.5); err != nil {
		t.Fatal(err)
	}
	if err := c.SetRotation(0.5); err != nil {
		t.Fatal(err)
	}
	rot, _ := c.Rotation()
	assertNear(t, "absolute, not additive", rot, 0.5)
}

func TestSetRotationAnchorsAtViewportCenter(t *testing.T) {
	e := newTestEngine(t, nil)
	c := e.Controller()
	center := Vec2{400, 300}

	if err := c.SetRotation(math.Pi / 3); err != nil {
		t.Fatal(err)
	}
	assertVec(t, "center fixed", e.Transform().Apply(center), center)
}

func TestRotationDegrees(t *testing.T) {
	e := newTestEngine(t, nil)
	c := e.Controller()

	if err := c.SetRotationDegrees(45); err != nil {
		t.Fatal(err)
	}
	rad, _ := c.Rotation()
	assertNear(t, "radians", rad, math.Pi/4)
	degs, _ := c.RotationDegrees()
	assertNear(t, "degrees", degs, 45)
}

func TestSetTranslation(t *testing.T) {
	e := newTestEngine(t, nil)
	c := e.Controller()

	if err := c.SetTranslation(Vec2{10, 20}); err != nil {
		t.Fatal(err)
	}
	if err := c.SetTranslation(Vec2{-5, 8}); err != nil {
		t.Fatal(err)
	}
	got, _ := c.Translation()
	assertVec(t, "absolute", got, Vec2{-5, 8})
}

func TestResetIsIdempotent(t *testing.T) {
	e := newTestEngine(t, nil)
	c := e.Controller()

	// Arbitrary gesture history.
	e.GestureStart(GestureStart{Focal: Vec2{10, 10}})
	e.GestureUpdate(GestureUpdate{Focal: Vec2{60, 90}, LocalFocal: Vec2{60, 90}, Scale: 1.7, Rotation: 0.9})
	if err := c.SetScale(3); err != nil {
		t.Fatal(err)
	}

	if err := c.Reset(); err != nil {
		t.Fatal(err)
	}
	assertMatrix(t, "reset", e.Transform(), IdentityAffine)

	if err := c.Reset(); err != nil {
		t.Fatal(err)
	}
	assertMatrix(t, "reset twice", e.Transform(), IdentityAffine)
}

// --- Animated batch ---

func TestAnimateBatchEndpoints(t *testing.T) {
	e := newTestEngine(t, nil)
	c := e.Controller()

	if err := c.SetTranslation(Vec2{10, 5}); err != nil {
		t.Fatal(err)
	}
	preBatch := e.Transform()

	err := c.Animate(func(c *Controller) {
		if err := c.SetTranslation(Vec2{60, 5}); err != nil {
			t.Errorf("SetTranslation in batch: %v", err)
		}
	})
	if err != nil {
		t.Fatal(err)
	}

	// At t=0 nothing has been applied yet.
	assertMatrix(t, "t=0", e.Transform(), preBatch)
	if !e.Animating() {
		t.Fatal("expected an in-flight animation")
	}

	// Half way through a linear 0.3s animation.
	e.Update(0.15)
	tx := e.Translation()
	if math.Abs(tx.X-35) > tweenEpsilon {
		t.Errorf("midpoint tx = %v, want ≈35", tx.X)
	}

	// Past the full duration the transform settles exactly on the target.
	e.Update(0.2)
	want := Multiply(TranslationAffine(Vec2{50, 0}), preBatch)
	assertMatrix(t, "t=duration", e.Transform(), want)
	if e.Animating() {
		t.Error("animation should be complete")
	}
}

func TestBatchWritesStayInBuffer(t *testing.T) {
	e := newTestEngine(t, nil)
	c := e.Controller()

	var inBatch float64
	err := c.Animate(func(c *Controller) {
		if err := c.SetScale(2); err != nil {
			t.Fatal(err)
		}
		// Getters inside the batch read the buffer...
		inBatch, _ = c.Scale()
		// ...while the live transform is untouched.
		assertMatrix(t, "live untouched", e.Transform(), IdentityAffine)
	})
	if err != nil {
		t.Fatal(err)
	}
	assertNear(t, "buffered read", inBatch, 2)
}

func TestAnimateReentrantFails(t *testing.T) {
	e := newTestEngine(t, nil)
	c := e.Controller()

	var inner error
	if err := c.Animate(func(c *Controller) {
		inner = c.Animate(func(*Controller) {})
	}); err != nil {
		t.Fatal(err)
	}
	if !errors.Is(inner, ErrBatchOpen) {
		t.Errorf("nested Animate err = %v, want ErrBatchOpen", inner)
	}
}

func TestRetriggerSnapshotsMidFlightValue(t *testing.T) {
	e := newTestEngine(t, nil)
	c := e.Controller()

	if err := c.Animate(func(c *Controller) {
		_ = c.SetTranslation(Vec2{100, 0})
	}); err != nil {
		t.Fatal(err)
	}
	e.Update(0.15)
	mid := e.Transform() // roughly half way, tx ≈ 50

	// A second batch snapshots whatever the transform currently is —
	// including a mid-flight interpolated value. An empty batch therefore
	// animates to the snapshot itself, dropping the first animation.
	if err := c.Animate(func(*Controller) {}); err != nil {
		t.Fatal(err)
	}
	e.Update(0.5) // run the new animation to completion

	assertMatrix(t, "settled on snapshot", e.Transform(), mid)
	if tx := e.Translation(); math.Abs(tx.X-100) < 1 {
		t.Error("first animation kept running past the retrigger")
	}
}

func TestLiveGestureAbortsAnimation(t *testing.T) {
	e := newTestEngine(t, nil)
	c := e.Controller()

	if err := c.Animate(func(c *Controller) {
		_ = c.SetTranslation(Vec2{100, 0})
	}); err != nil {
		t.Fatal(err)
	}
	e.Update(0.1)
	if !e.Animating() {
		t.Fatal("expected an in-flight animation")
	}

	// Live gesture takes precedence: the interpolation is dropped and the
	// gesture writes directly to the composed transform.
	e.GestureStart(GestureStart{Focal: Vec2{0, 0}})
	if e.Animating() {
		t.Fatal("gesture start must abort the animation")
	}
	before := e.Translation()
	e.GestureUpdate(GestureUpdate{Focal: Vec2{10, 0}, LocalFocal: Vec2{10, 0}, Scale: 1})
	assertVec(t, "gesture applied", e.Translation(), Vec2{before.X + 10, before.Y})

	e.Update(1.0)
	assertVec(t, "no further animation", e.Translation(), Vec2{before.X + 10, before.Y})
}

func TestDirectSetterAbortsAnimation(t *testing.T) {
	e := newTestEngine(t, nil)
	c := e.Controller()

	if err := c.Animate(func(c *Controller) {
		_ = c.SetTranslation(Vec2{100, 0})
	}); err != nil {
		t.Fatal(err)
	}
	e.Update(0.1)

	if err := c.SetTranslation(Vec2{-20, 0}); err != nil {
		t.Fatal(err)
	}
	if e.Animating() {
		t.Fatal("direct write must abort the animation")
	}
	got, _ := c.Translation()
	assertVec(t, "direct value", got, Vec2{-20, 0})
}
