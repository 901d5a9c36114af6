//go:build windows

package display

import (
	"zonesnap/internal/adapters/display/win32"
	"zonesnap/internal/ports"
)

// New returns the win32-backed display provider.
func New() ports.DisplayProvider {
	return win32.NewProvider()
}
