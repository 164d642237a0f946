package panzoom

// deltaTracker converts the cumulative translation/scale/rotation samples
// that gesture APIs report into frame-to-frame increments. It holds the
// last observed absolute value per axis for the gesture in progress.
type deltaTracker struct {
	lastTranslation Vec2
	lastScale       float64
	lastRotation    float64
}

// start resets the tracker at the beginning of a gesture: translation to
// the initial focal point, scale to 1, rotation to 0.
func (t *deltaTracker) start(focal Vec2) {
	t.lastTranslation = focal
	t.lastScale = 1.0
	t.lastRotation = 0.0
}

// translationDelta returns the movement since the last sample and records
// the new sample.
func (t *deltaTracker) translationDelta(abs Vec2) Vec2 {
	d := abs.Sub(t.lastTranslation)
	t.lastTranslation = abs
	return d
}

// scaleDelta returns the multiplicative scale change since the last sample
// and records the new sample. The previous scale is never 0: it starts at 1
// and only ever holds values the composer accepted.
func (t *deltaTracker) scaleDelta(abs float64) float64 {
	d := abs / t.lastScale
	t.lastScale = abs
	return d
}

// rotationDelta returns the additive rotation change in radians since the
// last sample and records the new sample.
func (t *deltaTracker) rotationDelta(abs float64) float64 {
	d := abs - t.lastRotation
	t.lastRotation = abs
	return d
}
