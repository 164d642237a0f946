package panzoom

import (
	"fmt"
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Config configures an Engine. Use DefaultConfig as the starting point;
// the zero value is not valid (scroll sensitivity must be positive).
type Config struct {
	// ShouldTranslate, ShouldScale, and ShouldRotate enable the three
	// transform axes for live gestures.
	ShouldTranslate bool
	ShouldScale     bool
	ShouldRotate    bool

	// TranslateTest, ScaleTest, and RotateTest optionally veto an axis per
	// update. A nil predicate (or a true result) allows the axis.
	TranslateTest func(GestureUpdate) bool
	ScaleTest     func(GestureUpdate) bool
	RotateTest    func(GestureUpdate) bool

	// ScrollBehavior maps scroll-wheel ticks onto the transform.
	// ScrollOverride, when set, resolves the behavior per event instead.
	ScrollBehavior ScrollBehavior
	ScrollOverride func(ScrollEvent) ScrollBehavior

	// ScrollSensitivity scales the zoom step per wheel tick (step is
	// sensitivity/10). Must be strictly positive.
	ScrollSensitivity float64

	// SnapThreshold and SnapIncrement control display-only rotation
	// snapping, both in degrees. A threshold of 0 disables snapping.
	SnapThreshold float64
	SnapIncrement float64

	// FocalAlignment, when set, anchors scale and rotation at this fixed
	// point instead of the per-event focal point.
	FocalAlignment *Vec2

	// Viewport is the content area; its center anchors Controller setters.
	Viewport Rect

	// AnimationCurve and AnimationDuration (seconds) drive the
	// Controller's animated batch mode.
	AnimationCurve    ease.TweenFunc
	AnimationDuration float32

	// OnChange, when set, is invoked with the composed transform after
	// every mutation. This is the redraw request hook.
	OnChange func(Affine)

	// Controller, when set, is attached to the engine at construction.
	// When nil the engine creates its own (see Engine.Controller).
	Controller *Controller

	// OnReady, when set, is invoked exactly once with the attached
	// controller, before any gesture is processed.
	OnReady func(*Controller)
}

// DefaultConfig returns the documented defaults: translate and scale
// enabled, rotation disabled, wheel zooms at sensitivity 1, snapping off
// with a 90 degree increment, linear 300ms batch animation.
func DefaultConfig() Config {
	return Config{
		ShouldTranslate:   true,
		ShouldScale:       true,
		ShouldRotate:      false,
		ScrollBehavior:    ScrollScale,
		ScrollSensitivity: 1.0,
		SnapThreshold:     0,
		SnapIncrement:     90,
		AnimationCurve:    ease.Linear,
		AnimationDuration: 0.3,
	}
}

// transformAnim interpolates the composed transform between two endpoints,
// one tween per affine component.
type transformAnim struct {
	tweens [6]*gween.Tween
	target Affine
}

// Engine is the gesture-to-transform core. It owns the composed transform
// and converts normalized gesture events, scroll ticks, and controller
// writes into matrix updates.
//
// All methods must be called from the single event-processing goroutine;
// the engine performs no locking.
type Engine struct {
	cfg        Config
	transform  Affine
	tracker    deltaTracker
	anim       *transformAnim
	controller *Controller

	snapThreshold float64 // radians
	snapIncrement float64 // radians
}

// NewEngine validates cfg, creates the engine with an identity transform,
// attaches the controller, and fires OnReady.
func NewEngine(cfg Config) (*Engine, error) {
	if cfg.ScrollSensitivity <= 0 {
		return nil, fmt.Errorf("panzoom: scroll sensitivity must be positive, got %v", cfg.ScrollSensitivity)
	}
	if cfg.SnapThreshold < 0 {
		return nil, fmt.Errorf("panzoom: snap threshold must not be negative, got %v", cfg.SnapThreshold)
	}
	if cfg.SnapIncrement <= 0 {
		return nil, fmt.Errorf("panzoom: snap increment must be positive, got %v", cfg.SnapIncrement)
	}
	if cfg.AnimationDuration <= 0 {
		return nil, fmt.Errorf("panzoom: animation duration must be positive, got %v", cfg.AnimationDuration)
	}
	if cfg.AnimationCurve == nil {
		cfg.AnimationCurve = ease.Linear
	}

	e := &Engine{
		cfg:           cfg,
		transform:     IdentityAffine,
		snapThreshold: cfg.SnapThreshold * math.Pi / 180,
		snapIncrement: cfg.SnapIncrement * math.Pi / 180,
	}

	e.controller = cfg.Controller
	if e.controller == nil {
		e.controller = NewController()
	}
	e.controller.attach(e)
	if cfg.OnReady != nil {
		cfg.OnReady(e.controller)
	}
	return e, nil
}

// Controller returns the attached control surface.
func (e *Engine) Controller() *Controller {
	return e.controller
}

// Transform returns the current composed transform.
func (e *Engine) Transform() Affine {
	return e.transform
}

// Scale returns the uniform scale component of the composed transform.
func (e *Engine) Scale() float64 {
	return scaleOf(e.transform)
}

// Translation returns the translation component of the composed transform.
func (e *Engine) Translation() Vec2 {
	return e.transform.Translation()
}

// Rotation returns the raw rotation component of the composed transform in
// radians.
func (e *Engine) Rotation() float64 {
	return rotationOf(e.transform)
}

// DisplayRotation returns the snap-filtered rotation angle for rendering.
// The composed transform itself is never snapped.
func (e *Engine) DisplayRotation() float64 {
	return snapAngle(e.Rotation(), e.snapThreshold, e.snapIncrement)
}

// GestureStart begins a new gesture. Any in-flight batch animation is
// aborted: a live gesture always takes precedence.
func (e *Engine) GestureStart(s GestureStart) {
	e.anim = nil
	e.tracker.start(s.Focal)
}

// GestureUpdate applies one normalized gesture sample to the composed
// transform. The three axes compose in fixed order — translate, then scale,
// then rotate — each left-multiplied onto the result of the previous step,
// and the working copy replaces the composed transform atomically.
func (e *Engine) GestureUpdate(u GestureUpdate) {
	e.anim = nil

	focal := u.LocalFocal
	if e.cfg.FocalAlignment != nil {
		focal = *e.cfg.FocalAlignment
	}

	working := e.transform

	if e.cfg.ShouldTranslate && allows(e.cfg.TranslateTest, u) {
		d := e.tracker.translationDelta(u.Focal)
		working = Multiply(TranslationAffine(d), working)
	}
	// A sample carrying the identity value means the axis is inactive:
	// skip it without consulting the gate. Non-positive scale samples are
	// also dropped — composing one would make the transform singular.
	if e.cfg.ShouldScale && u.Scale != 1.0 && u.Scale > 0 && allows(e.cfg.ScaleTest, u) {
		d := e.tracker.scaleDelta(u.Scale)
		working = Multiply(ScaleAbout(d, focal), working)
	}
	if e.cfg.ShouldRotate && u.Rotation != 0.0 && allows(e.cfg.RotateTest, u) {
		d := e.tracker.rotationDelta(u.Rotation)
		working = Multiply(RotateAbout(d, focal), working)
	}

	e.setTransform(working)
}

// Scroll handles one raw scroll-wheel tick: resolves the behavior,
// synthesizes a gesture start at the tick position, and applies the
// resulting single-axis update. A tick resolved to ScrollIgnore begins no
// gesture at all.
func (e *Engine) Scroll(ev ScrollEvent) {
	behavior := e.cfg.ScrollBehavior
	if e.cfg.ScrollOverride != nil {
		behavior = e.cfg.ScrollOverride(ev)
	}
	up, ok := resolveScroll(ev, behavior, e.cfg.ScrollSensitivity)
	if !ok {
		return
	}
	e.GestureStart(GestureStart{Focal: ev.Position})
	e.GestureUpdate(up)
}

// Update advances an in-flight batch animation by dt seconds. It is a
// cooperative per-frame tick: call it from the host's update loop. No-op
// when nothing is animating.
func (e *Engine) Update(dt float32) {
	if e.anim == nil {
		return
	}
	var m Affine
	done := true
	for i, tw := range e.anim.tweens {
		v, finished := tw.Update(dt)
		m[i] = float64(v)
		if !finished {
			done = false
		}
	}
	if done {
		// Settle exactly on the target, not on the float32 tween output.
		m = e.anim.target
		e.anim = nil
	}
	e.setTransform(m)
}

// Animating reports whether a batch animation is in flight.
func (e *Engine) Animating() bool {
	return e.anim != nil
}

// startAnimation begins interpolating the composed transform from its
// current value to target.
func (e *Engine) startAnimation(target Affine) {
	a := &transformAnim{target: target}
	for i := range a.tweens {
		a.tweens[i] = gween.New(float32(e.transform[i]), float32(target[i]),
			e.cfg.AnimationDuration, e.cfg.AnimationCurve)
	}
	e.anim = a
}

// setTransform swaps in a fully computed transform and fires the redraw hook.
func (e *Engine) setTransform(m Affine) {
	e.transform = m
	if e.cfg.OnChange != nil {
		e.cfg.OnChange(m)
	}
}

// viewportCenter is the anchor for controller setters.
func (e *Engine) viewportCenter() Vec2 {
	return e.cfg.Viewport.Center()
}

func allows(test func(GestureUpdate) bool, u GestureUpdate) bool {
	return test == nil || test(u)
}
