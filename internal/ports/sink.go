package ports

import (
	"context"

	"zonesnap/internal/domain"
)

// ParameterSink persists one editor parameters payload, replacing any
// previous one.
type ParameterSink interface {
	Write(ctx context.Context, params domain.EditorParameters) error
}
