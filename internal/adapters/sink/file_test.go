package sink

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"zonesnap/internal/domain"
)

func sampleParams() domain.EditorParameters {
	return domain.EditorParameters{
		ProcessID: 4242,
		Monitors: []domain.MonitorRecord{{
			Name:           "DISPLAY1",
			VirtualDesktop: "{00112233-4455-6677-8899-AABBCCDDEEFF}",
			DPI:            96,
			WorkAreaWidth:  1920,
			WorkAreaHeight: 1040,
			MonitorWidth:   1920,
			MonitorHeight:  1080,
			IsSelected:     true,
		}},
	}
}

func TestWriteCreatesParametersFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	s := NewFileSink(dir)

	require.NoError(t, s.Write(context.Background(), sampleParams()))

	assert.Equal(t, filepath.Join(dir, ParametersFileName), s.Path())

	raw, err := os.ReadFile(s.Path())
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, float64(4242), decoded["process-id"])
	assert.Equal(t, false, decoded["span-zones-across-monitors"])

	monitors, ok := decoded["monitors"].([]any)
	require.True(t, ok)
	require.Len(t, monitors, 1)

	record, ok := monitors[0].(map[string]any)
	require.True(t, ok)
	for _, key := range []string{
		"monitor-name", "virtual-desktop", "dpi", "top", "left",
		"work-area-width", "work-area-height",
		"monitor-width", "monitor-height", "is-selected",
	} {
		assert.Contains(t, record, key)
	}
	assert.Equal(t, "DISPLAY1", record["monitor-name"])
	assert.Equal(t, true, record["is-selected"])
}

func TestWriteCreatesMissingDestinationFolder(t *testing.T) {
	t.Parallel()

	dir := filepath.Join(t.TempDir(), "nested", "zonesnap")
	s := NewFileSink(dir)

	require.NoError(t, s.Write(context.Background(), sampleParams()))
	_, err := os.Stat(s.Path())
	assert.NoError(t, err)
}

func TestWriteReplacesPreviousFile(t *testing.T) {
	t.Parallel()

	s := NewFileSink(t.TempDir())

	first := sampleParams()
	require.NoError(t, s.Write(context.Background(), first))

	second := sampleParams()
	second.ProcessID = 7
	require.NoError(t, s.Write(context.Background(), second))

	raw, err := os.ReadFile(s.Path())
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, float64(7), decoded["process-id"])
}

func TestWriteSameSnapshotIsByteIdentical(t *testing.T) {
	t.Parallel()

	s := NewFileSink(t.TempDir())

	require.NoError(t, s.Write(context.Background(), sampleParams()))
	first, err := os.ReadFile(s.Path())
	require.NoError(t, err)

	require.NoError(t, s.Write(context.Background(), sampleParams()))
	second, err := os.ReadFile(s.Path())
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestWriteEmptySnapshotEncodesEmptyMonitorList(t *testing.T) {
	t.Parallel()

	s := NewFileSink(t.TempDir())

	require.NoError(t, s.Write(context.Background(), domain.EditorParameters{ProcessID: 1}))

	raw, err := os.ReadFile(s.Path())
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))
	monitors, ok := decoded["monitors"].([]any)
	require.True(t, ok, "monitors must encode as an array, not null")
	assert.Empty(t, monitors)
}

func TestWriteLeavesNoTempFiles(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	s := NewFileSink(dir)

	require.NoError(t, s.Write(context.Background(), sampleParams()))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, ParametersFileName, entries[0].Name())
}

func TestWriteHonorsCancelledContext(t *testing.T) {
	t.Parallel()

	s := NewFileSink(t.TempDir())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	require.Error(t, s.Write(ctx, sampleParams()))
	_, err := os.Stat(s.Path())
	assert.True(t, os.IsNotExist(err))
}
