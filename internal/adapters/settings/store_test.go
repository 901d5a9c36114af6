package settings

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStoreSeedsDefaultFile(t *testing.T) {
	dir := t.TempDir()

	store, err := NewStore(dir)
	require.NoError(t, err)

	raw, err := os.ReadFile(filepath.Join(dir, "zonesnap.toml"))
	require.NoError(t, err)
	assert.Contains(t, string(raw), "span-zones-across-monitors = false")
	assert.Contains(t, string(raw), "use-cursor-position-for-editor-startup = true")

	cfg, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.False(t, cfg.SpanZonesAcrossMonitors)
	assert.True(t, cfg.UseCursorPositionForEditorStartup)
}

func TestLoadReadsExistingFile(t *testing.T) {
	dir := t.TempDir()
	content := "span-zones-across-monitors = true\nuse-cursor-position-for-editor-startup = false\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "zonesnap.toml"), []byte(content), 0o644))

	store, err := NewStore(dir)
	require.NoError(t, err)

	cfg, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.True(t, cfg.SpanZonesAcrossMonitors)
	assert.False(t, cfg.UseCursorPositionForEditorStartup)
}

func TestLoadEnvironmentOverridesFile(t *testing.T) {
	dir := t.TempDir()
	content := "span-zones-across-monitors = false\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "zonesnap.toml"), []byte(content), 0o644))

	t.Setenv("ZONESNAP_SPAN_ZONES_ACROSS_MONITORS", "true")

	store, err := NewStore(dir)
	require.NoError(t, err)

	cfg, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.True(t, cfg.SpanZonesAcrossMonitors)
}

func TestNewStoreRejectsMalformedFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "zonesnap.toml"), []byte("span-zones = [broken"), 0o644))

	_, err := NewStore(dir)
	require.Error(t, err)
}

func TestLoadHonorsCancelledContext(t *testing.T) {
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = store.Load(ctx)
	assert.Error(t, err)
}
