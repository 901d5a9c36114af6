package ports

import "context"

// Settings are the read-only flags consumed once per snapshot.
type Settings struct {
	// SpanZonesAcrossMonitors treats all monitors as one combined surface
	// and exports a single synthetic record.
	SpanZonesAcrossMonitors bool

	// UseCursorPositionForEditorStartup selects the target monitor under
	// the pointer instead of the one hosting the foreground window.
	UseCursorPositionForEditorStartup bool
}

type SettingsStore interface {
	Load(ctx context.Context) (Settings, error)
}
