package sink

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"zonesnap/internal/domain"
	"zonesnap/internal/ports"
)

const (
	// ParametersFileName is the name the consuming editor watches for.
	ParametersFileName = "editor-parameters.json"

	fileMode        = 0o644
	dirMode         = 0o755
	tempFilePattern = ".editor-parameters-*.json.tmp"
)

// FileSink writes editor parameters into a destination folder, replacing
// any previous file. The write goes through a temp file and a rename so
// the editor never observes a torn file.
type FileSink struct {
	dir string
}

func NewFileSink(dir string) *FileSink {
	return &FileSink{dir: dir}
}

var _ ports.ParameterSink = (*FileSink)(nil)

// Path is the full destination path of the parameters file.
func (s *FileSink) Path() string {
	return filepath.Join(s.dir, ParametersFileName)
}

func (s *FileSink) Write(ctx context.Context, params domain.EditorParameters) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	// An empty snapshot still encodes as "monitors": [].
	if params.Monitors == nil {
		params.Monitors = []domain.MonitorRecord{}
	}

	encoded, err := json.MarshalIndent(params, "", "  ")
	if err != nil {
		return fmt.Errorf("encode editor parameters: %w", err)
	}

	if err := os.MkdirAll(s.dir, dirMode); err != nil {
		return fmt.Errorf("create destination folder: %w", err)
	}

	tempFile, err := os.CreateTemp(s.dir, tempFilePattern)
	if err != nil {
		return fmt.Errorf("create temp parameters file: %w", err)
	}
	tempName := tempFile.Name()

	if _, err := tempFile.Write(encoded); err != nil {
		tempFile.Close()
		os.Remove(tempName)
		return fmt.Errorf("write temp parameters file: %w", err)
	}
	if err := tempFile.Chmod(fileMode); err != nil {
		tempFile.Close()
		os.Remove(tempName)
		return fmt.Errorf("chmod temp parameters file: %w", err)
	}
	if err := tempFile.Close(); err != nil {
		os.Remove(tempName)
		return fmt.Errorf("close temp parameters file: %w", err)
	}

	if err := os.Rename(tempName, s.Path()); err != nil {
		os.Remove(tempName)
		return fmt.Errorf("replace parameters file: %w", err)
	}

	return nil
}
