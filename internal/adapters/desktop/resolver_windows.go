//go:build windows

package desktop

import (
	"context"
	"fmt"

	"golang.org/x/sys/windows"
	"golang.org/x/sys/windows/registry"

	"zonesnap/internal/domain"
	"zonesnap/internal/ports"
)

const (
	sessionKeyFormat = `Software\Microsoft\Windows\CurrentVersion\Explorer\SessionInfo\%d\VirtualDesktops`
	fallbackKey      = `Software\Microsoft\Windows\CurrentVersion\Explorer\VirtualDesktops`
	currentValueName = "CurrentVirtualDesktop"
)

// Resolver reads the active virtual-desktop GUID from the registry. The
// per-session key tracks the desktop the shell currently shows; the
// session-independent key is the fallback for hosts that do not populate
// SessionInfo.
type Resolver struct{}

func New() ports.DesktopResolver {
	return Resolver{}
}

func (Resolver) CurrentDesktopID(ctx context.Context) (domain.DesktopID, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	raw, err := readCurrentDesktopGUID()
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrDesktopUnavailable, err)
	}

	id, err := desktopIDFromGUID(raw)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrDesktopUnavailable, err)
	}

	return id, nil
}

func readCurrentDesktopGUID() ([]byte, error) {
	var session uint32
	if err := windows.ProcessIdToSessionId(windows.GetCurrentProcessId(), &session); err == nil {
		if raw, err := readGUIDValue(fmt.Sprintf(sessionKeyFormat, session)); err == nil {
			return raw, nil
		}
	}

	return readGUIDValue(fallbackKey)
}

func readGUIDValue(path string) ([]byte, error) {
	key, err := registry.OpenKey(registry.CURRENT_USER, path, registry.QUERY_VALUE)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer key.Close()

	raw, _, err := key.GetBinaryValue(currentValueName)
	if err != nil {
		return nil, fmt.Errorf("read %s\\%s: %w", path, currentValueName, err)
	}

	return raw, nil
}
