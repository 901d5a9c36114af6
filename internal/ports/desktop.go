package ports

import (
	"context"

	"zonesnap/internal/domain"
)

type DesktopResolver interface {
	// CurrentDesktopID returns the identifier of the active virtual
	// desktop, or wraps domain.ErrDesktopUnavailable.
	CurrentDesktopID(ctx context.Context) (domain.DesktopID, error)
}
