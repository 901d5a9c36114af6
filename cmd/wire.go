package cmd

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"zonesnap/internal/adapters/desktop"
	"zonesnap/internal/adapters/display"
	"zonesnap/internal/adapters/settings"
	"zonesnap/internal/adapters/sink"
	"zonesnap/internal/application"
	"zonesnap/internal/paths"
	"zonesnap/internal/ports"
)

type app struct {
	desktop    ports.DesktopResolver
	display    ports.DisplayProvider
	settings   ports.SettingsStore
	logger     *zap.Logger
	defaultDir string
}

func wireApp() (*app, error) {
	logger, err := newLogger()
	if err != nil {
		return nil, fmt.Errorf("wire logger: %w", err)
	}

	dir, err := paths.ModuleDir()
	if err != nil {
		return nil, fmt.Errorf("resolve module folder: %w", err)
	}

	store, err := settings.NewStore(dir)
	if err != nil {
		return nil, fmt.Errorf("wire settings store: %w", err)
	}

	return &app{
		desktop:    desktop.New(),
		display:    display.New(),
		settings:   store,
		logger:     logger,
		defaultDir: dir,
	}, nil
}

// exporterFor builds an exporter writing into dir. The export command uses
// it to honor --out without rewiring the rest of the app.
func (a *app) exporterFor(dir string) (*application.Exporter, *sink.FileSink) {
	fileSink := sink.NewFileSink(dir)
	return application.NewExporter(a.desktop, a.display, a.settings, fileSink, a.logger), fileSink
}

func newLogger() (*zap.Logger, error) {
	if os.Getenv("ZONESNAP_DEBUG") != "" {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
