package panzoom

import (
	"errors"
	"math"
)

// ErrNotReady is returned by Controller accessors used before the
// controller has been attached to an engine.
var ErrNotReady = errors.New("panzoom: controller not attached to an engine")

// ErrDegenerateScale is returned when a setter would read or write a scale
// component at or below zero. Gesture and controller primitives never drive
// the composed transform there, so hitting this indicates a logic error.
var ErrDegenerateScale = errors.New("panzoom: degenerate scale component")

// ErrBatchOpen is returned by Animate when called re-entrantly from inside
// a batch function.
var ErrBatchOpen = errors.New("panzoom: animation batch already open")

// Controller is the external control surface: programmatic get/set access
// to the composed transform outside the live gesture stream.
//
// A Controller has a two-phase lifecycle: construct it with NewController
// (or let the engine create one), then let NewEngine attach it. Every
// accessor fails with ErrNotReady before attachment.
//
// Setters anchor at the viewport center rather than a gesture focal point,
// and write absolute values: the current scale/rotation component is undone
// before the requested value is composed in.
type Controller struct {
	engine *Engine
	batch  *Affine // non-nil while an Animate batch is open
}

// NewController creates an unattached controller. Pass it to NewEngine via
// Config.Controller to attach it.
func NewController() *Controller {
	return &Controller{}
}

// attach binds the controller to a live engine. Run once per engine
// construction.
func (c *Controller) attach(e *Engine) {
	c.engine = e
}

// current returns the transform a getter should read and a setter should
// start from: the batch buffer while a batch is open, otherwise the live
// composed transform.
func (c *Controller) current() (Affine, error) {
	if c.engine == nil {
		return Affine{}, ErrNotReady
	}
	if c.batch != nil {
		return *c.batch, nil
	}
	return c.engine.transform, nil
}

// write stores a fully computed transform: into the batch buffer while a
// batch is open, otherwise directly into the engine, aborting any in-flight
// animation first.
func (c *Controller) write(m Affine) {
	if c.batch != nil {
		*c.batch = m
		return
	}
	c.engine.anim = nil
	c.engine.setTransform(m)
}

// Scale returns the uniform scale component.
func (c *Controller) Scale() (float64, error) {
	m, err := c.current()
	if err != nil {
		return 0, err
	}
	return scaleOf(m), nil
}

// SetScale sets the absolute scale, anchored at the viewport center. The
// requested scale must be positive.
func (c *Controller) SetScale(s float64) error {
	m, err := c.current()
	if err != nil {
		return err
	}
	if s <= 0 {
		return ErrDegenerateScale
	}
	cur := scaleOf(m)
	if cur <= 1e-12 {
		return ErrDegenerateScale
	}
	c.write(Multiply(ScaleAbout(s/cur, c.engine.viewportCenter()), m))
	return nil
}

// Rotation returns the rotation component in radians.
func (c *Controller) Rotation() (float64, error) {
	m, err := c.current()
	if err != nil {
		return 0, err
	}
	return rotationOf(m), nil
}

// SetRotation sets the absolute rotation in radians, anchored at the
// viewport center.
func (c *Controller) SetRotation(r float64) error {
	m, err := c.current()
	if err != nil {
		return err
	}
	cur := rotationOf(m)
	c.write(Multiply(RotateAbout(r-cur, c.engine.viewportCenter()), m))
	return nil
}

// RotationDegrees returns the rotation component in degrees.
func (c *Controller) RotationDegrees() (float64, error) {
	r, err := c.Rotation()
	return r * 180 / math.Pi, err
}

// SetRotationDegrees sets the absolute rotation in degrees.
func (c *Controller) SetRotationDegrees(deg float64) error {
	return c.SetRotation(deg * math.Pi / 180)
}

// Translation returns the translation component.
func (c *Controller) Translation() (Vec2, error) {
	m, err := c.current()
	if err != nil {
		return Vec2{}, err
	}
	return m.Translation(), nil
}

// SetTranslation sets the absolute translation component.
func (c *Controller) SetTranslation(t Vec2) error {
	m, err := c.current()
	if err != nil {
		return err
	}
	c.write(Multiply(TranslationAffine(t.Sub(m.Translation())), m))
	return nil
}

// Reset returns the composed transform to identity, regardless of prior
// gesture history.
func (c *Controller) Reset() error {
	if c.engine == nil {
		return ErrNotReady
	}
	c.write(IdentityAffine)
	return nil
}

// Animate opens a batched mutation: fn's setter calls accumulate into a
// buffer snapshotted from the current composed transform (including a
// mid-flight animated value), and closing the batch starts a timed
// interpolation from the pre-batch transform to the buffer's final value
// using the engine's configured curve and duration. Drive it with
// Engine.Update.
func (c *Controller) Animate(fn func(*Controller)) error {
	if c.engine == nil {
		return ErrNotReady
	}
	if c.batch != nil {
		return ErrBatchOpen
	}
	target := c.engine.transform
	c.batch = &target
	fn(c)
	c.batch = nil
	c.engine.startAnimation(target)
	return nil
}
