//go:build windows

package win32

import (
	"fmt"
	"syscall"
	"unsafe"

	"golang.org/x/sys/windows"

	"zonesnap/internal/domain"
)

type rect32 struct {
	Left   int32
	Top    int32
	Right  int32
	Bottom int32
}

type monitorInfoExW struct {
	Size    uint32
	Monitor rect32
	Work    rect32
	Flags   uint32
	Device  [32]uint16
}

// enumerateMonitors walks all active monitors via EnumDisplayMonitors.
// It must run on the DPI-unaware executor thread so every rectangle comes
// back in the same virtualized coordinate space. Zero monitors is a valid
// empty result.
func enumerateMonitors() ([]domain.Monitor, error) {
	var monitors []domain.Monitor

	cb := syscall.NewCallback(func(hMonitor, hdcMonitor, lprcMonitor, dwData uintptr) uintptr {
		var mi monitorInfoExW
		mi.Size = uint32(unsafe.Sizeof(mi))

		ret, _, _ := procGetMonitorInfoW.Call(hMonitor, uintptr(unsafe.Pointer(&mi)))
		if ret != 0 {
			monitors = append(monitors, domain.Monitor{
				Handle:   domain.MonitorHandle(hMonitor),
				Device:   windows.UTF16ToString(mi.Device[:]),
				Bounds:   toRect(mi.Monitor),
				WorkArea: toRect(mi.Work),
				Primary:  mi.Flags&monitorinfofPrimary != 0,
			})
		}
		return 1
	})

	ret, _, _ := procEnumDisplayMonitors.Call(0, 0, cb, 0)
	if ret == 0 {
		return nil, fmt.Errorf("EnumDisplayMonitors failed")
	}

	return monitors, nil
}

// combinedWorkArea re-enumerates and returns the bounding union of all
// monitor work areas. Also executor-thread only.
func combinedWorkArea() (domain.Rect, error) {
	monitors, err := enumerateMonitors()
	if err != nil {
		return domain.Rect{}, err
	}

	rects := make([]domain.Rect, 0, len(monitors))
	for _, mon := range monitors {
		rects = append(rects, mon.WorkArea)
	}

	return domain.CombinedRect(rects), nil
}

func toRect(r rect32) domain.Rect {
	return domain.Rect{Left: r.Left, Top: r.Top, Right: r.Right, Bottom: r.Bottom}
}
