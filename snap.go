package panzoom

import "math"

// snapAngle computes the display-only snapped rotation angle. When rot is
// within threshold of a multiple of increment, the nearest multiple is
// returned; otherwise rot passes through unchanged. All values are radians.
// A threshold of 0 disables snapping.
//
// This never feeds back into the composed transform: it only tells the
// renderer how much extra counter-rotation to draw so content sticks at
// snap angles.
func snapAngle(rot, threshold, increment float64) float64 {
	if threshold <= 0 || increment <= 0 {
		return rot
	}
	if math.Mod(math.Abs(rot)+threshold/2, increment) < threshold {
		return math.Round(rot/increment) * increment
	}
	return rot
}
