//go:build windows

package win32

import (
	"context"
	"fmt"
	"sync"
	"unsafe"

	"zonesnap/internal/domain"
	"zonesnap/internal/ports"
)

// Provider implements ports.DisplayProvider against user32/shcore.
type Provider struct {
	// mu serializes enumeration passes: the DPI-unaware switch is global
	// per thread, and only one dedicated executor may exist at a time.
	mu sync.Mutex
}

func NewProvider() *Provider {
	return &Provider{}
}

var _ ports.DisplayProvider = (*Provider)(nil)

// EnumerateUnaware spins up a short-lived locked-thread executor, switches
// that thread to the DPI-unaware mixed-hosting context, and runs the
// enumeration there. With combined set, a second pass on the same thread
// computes the union of all work areas. The caller blocks until both
// complete; the executor thread is then discarded.
func (p *Provider) EnumerateUnaware(ctx context.Context, combined bool) (domain.Topology, error) {
	if err := ctx.Err(); err != nil {
		return domain.Topology{}, err
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	exec := newOnThread(applyDPIUnawareContext)
	defer exec.stop()

	var (
		topo domain.Topology
		err  error
	)
	exec.run(func() {
		topo.Monitors, err = enumerateMonitors()
	})
	if err != nil {
		return domain.Topology{}, err
	}

	if combined {
		exec.run(func() {
			topo.CombinedWorkArea, err = combinedWorkArea()
		})
		if err != nil {
			return domain.Topology{}, err
		}
	}

	return topo, nil
}

func applyDPIUnawareContext() {
	procSetThreadDpiAwarenessContext.Call(dpiAwarenessContextUnaware)
	procSetThreadDpiHostingBehavior.Call(dpiHostingBehaviorMixed)
}

// EffectiveDPI queries MDT_EFFECTIVE_DPI for a monitor. Any failure wraps
// domain.ErrDPIQueryFailed so the caller can drop just that monitor.
func (p *Provider) EffectiveDPI(handle domain.MonitorHandle) (int, error) {
	if procGetDpiForMonitor.Find() != nil {
		return 0, fmt.Errorf("GetDpiForMonitor unavailable: %w", domain.ErrDPIQueryFailed)
	}

	var dpiX, dpiY uint32
	hr, _, _ := procGetDpiForMonitor.Call(
		uintptr(handle),
		mdtEffectiveDPI,
		uintptr(unsafe.Pointer(&dpiX)),
		uintptr(unsafe.Pointer(&dpiY)),
	)
	if hr != 0 {
		return 0, fmt.Errorf("GetDpiForMonitor returned 0x%08x: %w", hr, domain.ErrDPIQueryFailed)
	}

	return int(dpiX), nil
}

type point struct {
	X int32
	Y int32
}

func (p *Provider) TargetFromCursor() (domain.MonitorHandle, error) {
	var pt point
	ret, _, _ := procGetCursorPos.Call(uintptr(unsafe.Pointer(&pt)))
	if ret == 0 {
		return 0, fmt.Errorf("GetCursorPos failed: %w", domain.ErrNoTargetMonitor)
	}

	// POINT is 8 bytes and is passed by value in a single register slot.
	packed := uintptr(uint64(uint32(pt.X)) | uint64(uint32(pt.Y))<<32)
	handle, _, _ := procMonitorFromPoint.Call(packed, monitorDefaultToPrimary)
	if handle == 0 {
		return 0, domain.ErrNoTargetMonitor
	}

	return domain.MonitorHandle(handle), nil
}

func (p *Provider) TargetFromForegroundWindow() (domain.MonitorHandle, error) {
	// A zero foreground window is fine: MonitorFromWindow still defaults
	// to the primary monitor.
	hwnd, _, _ := procGetForegroundWindow.Call()
	handle, _, _ := procMonitorFromWindow.Call(hwnd, monitorDefaultToPrimary)
	if handle == 0 {
		return 0, domain.ErrNoTargetMonitor
	}

	return domain.MonitorHandle(handle), nil
}
