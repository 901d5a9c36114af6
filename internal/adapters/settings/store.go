package settings

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"

	"zonesnap/internal/ports"
)

const (
	configName = "zonesnap"
	configType = "toml"
	configMode = 0o644
	dirMode    = 0o755

	spanKey   = "span-zones-across-monitors"
	cursorKey = "use-cursor-position-for-editor-startup"

	envPrefix = "ZONESNAP"
)

// Store loads the snapshot flags from zonesnap.toml in the given folder.
// ZONESNAP_* environment variables override file values. When no file
// exists one is seeded with the defaults so users have something to edit.
type Store struct {
	cfg *viper.Viper
}

var _ ports.SettingsStore = (*Store)(nil)

func NewStore(dir string) (*Store, error) {
	_ = godotenv.Load()

	cfg := viper.New()
	cfg.SetConfigName(configName)
	cfg.SetConfigType(configType)
	cfg.AddConfigPath(dir)
	cfg.SetDefault(spanKey, false)
	cfg.SetDefault(cursorKey, true)
	cfg.SetEnvPrefix(envPrefix)
	cfg.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	cfg.AutomaticEnv()

	if err := cfg.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read settings file: %w", err)
		}
		if err := seedDefaults(filepath.Join(dir, configName+"."+configType)); err != nil {
			return nil, fmt.Errorf("seed default settings: %w", err)
		}
	}

	return &Store{cfg: cfg}, nil
}

func (s *Store) Load(ctx context.Context) (ports.Settings, error) {
	if err := ctx.Err(); err != nil {
		return ports.Settings{}, err
	}

	return ports.Settings{
		SpanZonesAcrossMonitors:           s.cfg.GetBool(spanKey),
		UseCursorPositionForEditorStartup: s.cfg.GetBool(cursorKey),
	}, nil
}

type fileSchema struct {
	SpanZonesAcrossMonitors           bool `toml:"span-zones-across-monitors"`
	UseCursorPositionForEditorStartup bool `toml:"use-cursor-position-for-editor-startup"`
}

func seedDefaults(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), dirMode); err != nil {
		return fmt.Errorf("create settings directory: %w", err)
	}

	encoded, err := toml.Marshal(fileSchema{UseCursorPositionForEditorStartup: true})
	if err != nil {
		return fmt.Errorf("encode default settings: %w", err)
	}

	return os.WriteFile(path, encoded, configMode)
}
