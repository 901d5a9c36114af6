// Package paths resolves the zonesnap save folder shared by the settings
// file and the exported editor parameters.
package paths

import (
	"fmt"
	"os"
	"path/filepath"
)

// ModuleDir returns the zonesnap folder under the user config directory
// (%AppData% on Windows, $XDG_CONFIG_HOME or ~/.config elsewhere),
// creating it if needed.
func ModuleDir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve user config directory: %w", err)
	}

	dir := filepath.Join(base, "zonesnap")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create module folder: %w", err)
	}

	return dir, nil
}
