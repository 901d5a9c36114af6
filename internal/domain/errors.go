package domain

import "errors"

var (
	// ErrDesktopUnavailable implies the OS could not report the current
	// virtual desktop. Fatal: no snapshot is exported without it.
	ErrDesktopUnavailable = errors.New("current virtual desktop unavailable")

	// ErrNoTargetMonitor implies no monitor could be resolved for the
	// editor window. Fatal in per-monitor mode.
	ErrNoTargetMonitor = errors.New("no target monitor")

	// ErrDPIQueryFailed implies a single monitor did not report its
	// effective DPI. That monitor is dropped; the snapshot continues.
	ErrDPIQueryFailed = errors.New("dpi query failed")

	// ErrUnsupportedPlatform implies the display stack is unavailable on
	// this OS.
	ErrUnsupportedPlatform = errors.New("display topology requires windows")
)
