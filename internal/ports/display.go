package ports

import (
	"context"

	"zonesnap/internal/domain"
)

// DisplayProvider exposes the OS display topology. EnumerateUnaware must
// report every rectangle in a single DPI-unaware coordinate space without
// leaking that thread mode to the caller, and must serialize passes so
// concurrent snapshots cannot race on the mode switch.
type DisplayProvider interface {
	// EnumerateUnaware performs one scoped DPI-unaware enumeration pass.
	// When combined is true a second pass on the same execution context
	// also computes the bounding union of all work areas.
	EnumerateUnaware(ctx context.Context, combined bool) (domain.Topology, error)

	// EffectiveDPI reports the effective DPI of a monitor, or wraps
	// domain.ErrDPIQueryFailed.
	EffectiveDPI(handle domain.MonitorHandle) (int, error)

	// TargetFromCursor resolves the monitor under the pointer, defaulting
	// to the primary monitor.
	TargetFromCursor() (domain.MonitorHandle, error)

	// TargetFromForegroundWindow resolves the monitor hosting the
	// foreground window, defaulting to the primary monitor.
	TargetFromForegroundWindow() (domain.MonitorHandle, error)
}
