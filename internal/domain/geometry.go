package domain

import "math"

// BaselineDPI is the DPI at 100% scale. DPI-aware dimensions are expressed
// relative to it.
const BaselineDPI = 96

// Rect is a rectangle in the virtualized desktop coordinate space.
// Coordinates can be negative (e.g. a monitor left of or above the primary).
type Rect struct {
	Left   int32
	Top    int32
	Right  int32
	Bottom int32
}

func (r Rect) Width() int32  { return r.Right - r.Left }
func (r Rect) Height() int32 { return r.Bottom - r.Top }

// Union returns the smallest rectangle containing both r and other.
func (r Rect) Union(other Rect) Rect {
	return Rect{
		Left:   min(r.Left, other.Left),
		Top:    min(r.Top, other.Top),
		Right:  max(r.Right, other.Right),
		Bottom: max(r.Bottom, other.Bottom),
	}
}

// CombinedRect returns the bounding union of all rects, or the zero Rect
// for an empty slice.
func CombinedRect(rects []Rect) Rect {
	if len(rects) == 0 {
		return Rect{}
	}

	combined := rects[0]
	for _, r := range rects[1:] {
		combined = combined.Union(r)
	}

	return combined
}

// ScaleToDPIAware converts a length in DPI-unaware pixels into DPI-aware
// units for a monitor reporting the given effective DPI. The result is
// rounded half away from zero.
func ScaleToDPIAware(px int32, dpi int) int {
	return int(math.Round(float64(px) * BaselineDPI / float64(dpi)))
}
