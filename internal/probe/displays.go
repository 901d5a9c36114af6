// Package probe lists raw display bounds through the cross-platform
// capture library, independent of the win32 snapshot path. Useful for
// comparing what the two stacks report.
package probe

import "github.com/kbinani/screenshot"

// Display is one entry of the raw display listing.
type Display struct {
	Index  int `json:"index"`
	Left   int `json:"left"`
	Top    int `json:"top"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

// ActiveDisplays reports the bounds of every active display. An empty
// slice means no display backend is available.
func ActiveDisplays() []Display {
	n := screenshot.NumActiveDisplays()

	displays := make([]Display, 0, n)
	for i := 0; i < n; i++ {
		bounds := screenshot.GetDisplayBounds(i)
		displays = append(displays, Display{
			Index:  i,
			Left:   bounds.Min.X,
			Top:    bounds.Min.Y,
			Width:  bounds.Dx(),
			Height: bounds.Dy(),
		})
	}

	return displays
}
