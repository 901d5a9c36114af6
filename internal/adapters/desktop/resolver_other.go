//go:build !windows

package desktop

import (
	"context"
	"fmt"

	"zonesnap/internal/domain"
	"zonesnap/internal/ports"
)

type Resolver struct{}

func New() ports.DesktopResolver {
	return Resolver{}
}

func (Resolver) CurrentDesktopID(ctx context.Context) (domain.DesktopID, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	return "", fmt.Errorf("%w: virtual desktops are windows-only", domain.ErrDesktopUnavailable)
}
