//go:build !windows

package display

import (
	"context"

	"zonesnap/internal/domain"
	"zonesnap/internal/ports"
)

// New returns a stub provider on platforms without a win32 display stack.
// Every call reports domain.ErrUnsupportedPlatform.
func New() ports.DisplayProvider {
	return unsupported{}
}

type unsupported struct{}

func (unsupported) EnumerateUnaware(ctx context.Context, combined bool) (domain.Topology, error) {
	return domain.Topology{}, domain.ErrUnsupportedPlatform
}

func (unsupported) EffectiveDPI(domain.MonitorHandle) (int, error) {
	return 0, domain.ErrUnsupportedPlatform
}

func (unsupported) TargetFromCursor() (domain.MonitorHandle, error) {
	return 0, domain.ErrUnsupportedPlatform
}

func (unsupported) TargetFromForegroundWindow() (domain.MonitorHandle, error) {
	return 0, domain.ErrUnsupportedPlatform
}
