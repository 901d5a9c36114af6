package application

import (
	"context"
	"errors"
	"fmt"
	"os"

	"go.uber.org/zap"

	"zonesnap/internal/domain"
	"zonesnap/internal/ports"
)

// Exporter drives one topology snapshot end to end: resolve the virtual
// desktop identity, enumerate monitors in the DPI-unaware coordinate
// space, pick the target monitor, normalize geometry per monitor, and hand
// the payload to the sink. A snapshot is built fresh on every call and
// never cached.
type Exporter struct {
	desktop  ports.DesktopResolver
	display  ports.DisplayProvider
	settings ports.SettingsStore
	sink     ports.ParameterSink
	log      *zap.Logger
	pid      func() int
}

func NewExporter(desktop ports.DesktopResolver, display ports.DisplayProvider, settings ports.SettingsStore, sink ports.ParameterSink, log *zap.Logger) *Exporter {
	if log == nil {
		log = zap.NewNop()
	}

	return &Exporter{
		desktop:  desktop,
		display:  display,
		settings: settings,
		sink:     sink,
		log:      log,
		pid:      os.Getpid,
	}
}

// Save snapshots the current topology and persists it through the sink.
// The outcome is a boolean: a missing virtual desktop identity, an
// unresolvable target monitor (per-monitor mode), or a failed write are
// logged and reported as false. A monitor that does not report its DPI is
// dropped without failing the save.
func (e *Exporter) Save(ctx context.Context) bool {
	params, err := e.Snapshot(ctx)
	if err != nil {
		e.log.Error("save editor parameters", zap.Error(err))
		return false
	}

	if err := e.sink.Write(ctx, params); err != nil {
		e.log.Error("write editor parameters", zap.Error(err))
		return false
	}

	return true
}

// Snapshot builds the editor parameters without persisting them.
func (e *Exporter) Snapshot(ctx context.Context) (domain.EditorParameters, error) {
	desktopID, err := e.desktop.CurrentDesktopID(ctx)
	if err != nil {
		return domain.EditorParameters{}, fmt.Errorf("resolve virtual desktop: %w", err)
	}

	cfg, err := e.settings.Load(ctx)
	if err != nil {
		return domain.EditorParameters{}, fmt.Errorf("load settings: %w", err)
	}

	topo, err := e.display.EnumerateUnaware(ctx, cfg.SpanZonesAcrossMonitors)
	if err != nil {
		return domain.EditorParameters{}, fmt.Errorf("enumerate monitors: %w", err)
	}

	params := domain.EditorParameters{
		ProcessID:               e.pid(),
		SpanZonesAcrossMonitors: cfg.SpanZonesAcrossMonitors,
	}

	if cfg.SpanZonesAcrossMonitors {
		params.Monitors = []domain.MonitorRecord{spannedRecord(desktopID, topo)}
		return params, nil
	}

	target, err := e.selectTarget(cfg)
	if err != nil {
		return domain.EditorParameters{}, fmt.Errorf("select target monitor: %w", err)
	}

	counts := deviceCounts{}
	for _, mon := range topo.Monitors {
		record, err := e.monitorRecord(desktopID, mon, counts, target)
		if err != nil {
			if errors.Is(err, domain.ErrDPIQueryFailed) {
				e.log.Warn("skipping monitor without dpi", zap.String("device", mon.Device))
				continue
			}
			return domain.EditorParameters{}, err
		}
		params.Monitors = append(params.Monitors, record)
	}

	return params, nil
}

// selectTarget resolves the monitor the editor window opens on, according
// to the configured policy. Both policies default to the primary monitor;
// a zero handle means not even a primary exists.
func (e *Exporter) selectTarget(cfg ports.Settings) (domain.MonitorHandle, error) {
	var (
		target domain.MonitorHandle
		err    error
	)
	if cfg.UseCursorPositionForEditorStartup {
		target, err = e.display.TargetFromCursor()
	} else {
		target, err = e.display.TargetFromForegroundWindow()
	}
	if err != nil {
		return 0, err
	}
	if target == 0 {
		return 0, domain.ErrNoTargetMonitor
	}

	return target, nil
}

func (e *Exporter) monitorRecord(desktopID domain.DesktopID, mon domain.Monitor, counts deviceCounts, target domain.MonitorHandle) (domain.MonitorRecord, error) {
	// The device index is claimed before the DPI query so that a skipped
	// monitor still advances the suffix numbering of its duplicates.
	name := uniqueDeviceID(mon.Device, counts)

	dpi, err := e.display.EffectiveDPI(mon.Handle)
	if err != nil {
		return domain.MonitorRecord{}, fmt.Errorf("effective dpi for %s: %w", name, err)
	}

	return domain.MonitorRecord{
		Name:           name,
		VirtualDesktop: desktopID,
		DPI:            dpi,
		Top:            int(mon.WorkArea.Top),
		Left:           int(mon.WorkArea.Left),
		WorkAreaWidth:  int(mon.WorkArea.Width()),
		WorkAreaHeight: int(mon.WorkArea.Height()),
		MonitorWidth:   domain.ScaleToDPIAware(mon.Bounds.Width(), dpi),
		MonitorHeight:  domain.ScaleToDPIAware(mon.Bounds.Height(), dpi),
		IsSelected:     mon.Handle == target,
	}, nil
}

// spannedRecord collapses the whole topology into one synthetic record:
// work area and bounds are the unions across all monitors, and the DPI
// field holds the domain.SpannedDPI sentinel.
func spannedRecord(desktopID domain.DesktopID, topo domain.Topology) domain.MonitorRecord {
	bounds := make([]domain.Rect, 0, len(topo.Monitors))
	for _, mon := range topo.Monitors {
		bounds = append(bounds, mon.Bounds)
	}
	combined := domain.CombinedRect(bounds)

	return domain.MonitorRecord{
		Name:           domain.MultiMonitorName,
		VirtualDesktop: desktopID,
		DPI:            domain.SpannedDPI,
		Top:            int(topo.CombinedWorkArea.Top),
		Left:           int(topo.CombinedWorkArea.Left),
		WorkAreaWidth:  int(topo.CombinedWorkArea.Width()),
		WorkAreaHeight: int(topo.CombinedWorkArea.Height()),
		MonitorWidth:   int(combined.Width()),
		MonitorHeight:  int(combined.Height()),
		IsSelected:     true,
	}
}
