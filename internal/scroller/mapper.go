package scroller

import "math"

// boundaryEpsilon absorbs float error in offset/stride quotients.
const boundaryEpsilon = 1e-9

// FirstVisibleIndex returns the virtual index of the first item that is fully
// or partially visible at offset.
//
// Vertical content grows toward negative Y and horizontal content toward
// positive X. An offset partially past an item boundary before the start of
// the content maps to the item before it. Offsets within boundaryEpsilon of a
// boundary are treated as on it, so fractional spacing does not land one item
// short.
func FirstVisibleIndex(offset Vec, extent, spacing float64, dir Direction) int {
	stride := extent + spacing
	if stride <= 0 {
		return 0
	}

	var v float64
	switch dir {
	case Horizontal:
		v = offset.X
	default:
		v = -offset.Y
	}

	return int(math.Floor(v/stride + boundaryEpsilon))
}

// ElementPosition returns the content position of the item at index.
func ElementPosition(index int, extent, spacing float64, dir Direction) Vec {
	pos := float64(index) * (extent + spacing)
	if dir == Horizontal {
		return Vec{X: pos}
	}
	return Vec{Y: -pos}
}

// ContentExtent returns the length of the scrollable region for count items.
func ContentExtent(count int, extent, spacing float64) float64 {
	return max(0, float64(count)*(extent+spacing)-spacing)
}

// DisplayIndex reduces a looped virtual index into [0, count).
func DisplayIndex(index, count int) int {
	if count <= 0 {
		return 0
	}
	return ((index % count) + count) % count
}
