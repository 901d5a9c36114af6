//go:build windows

package win32

import "syscall"

var (
	user32 = syscall.NewLazyDLL("user32.dll")
	shcore = syscall.NewLazyDLL("shcore.dll")

	procEnumDisplayMonitors          = user32.NewProc("EnumDisplayMonitors")
	procGetMonitorInfoW              = user32.NewProc("GetMonitorInfoW")
	procGetCursorPos                 = user32.NewProc("GetCursorPos")
	procMonitorFromPoint             = user32.NewProc("MonitorFromPoint")
	procMonitorFromWindow            = user32.NewProc("MonitorFromWindow")
	procGetForegroundWindow          = user32.NewProc("GetForegroundWindow")
	procSetThreadDpiAwarenessContext = user32.NewProc("SetThreadDpiAwarenessContext")
	procSetThreadDpiHostingBehavior  = user32.NewProc("SetThreadDpiHostingBehavior")

	procGetDpiForMonitor = shcore.NewProc("GetDpiForMonitor")
)

const (
	monitorDefaultToPrimary = 1 // MONITOR_DEFAULTTOPRIMARY
	mdtEffectiveDPI         = 0 // MDT_EFFECTIVE_DPI
	dpiHostingBehaviorMixed = 1 // DPI_HOSTING_BEHAVIOR_MIXED
	monitorinfofPrimary     = 1 // MONITORINFOF_PRIMARY
)

// DPI_AWARENESS_CONTEXT_UNAWARE is (DPI_AWARENESS_CONTEXT)-1.
var dpiAwarenessContextUnaware = ^uintptr(0)
