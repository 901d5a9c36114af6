package domain

// MonitorHandle identifies a physical monitor for the lifetime of one
// snapshot. On Windows it is the HMONITOR value.
type MonitorHandle uintptr

// Monitor is one raw enumeration result: device name and geometry as
// reported in the DPI-unaware coordinate space.
type Monitor struct {
	Handle   MonitorHandle
	Device   string
	Bounds   Rect
	WorkArea Rect
	Primary  bool
}

// Topology is the result of one DPI-unaware enumeration pass.
type Topology struct {
	Monitors []Monitor

	// CombinedWorkArea is the bounding union of all monitor work areas.
	// It is only populated when the pass was asked to compute it
	// (spanned mode).
	CombinedWorkArea Rect
}

// MultiMonitorName is the reserved name of the synthetic record standing
// for all monitors combined in spanned mode.
const MultiMonitorName = "zonesnap#MultiMonitorDevice"

// SpannedDPI is the sentinel stored on the synthetic spanned record. It is
// not a DPI reading and the editor must not scale by it.
const SpannedDPI = 0

// MonitorRecord is one entry of the editor parameters payload. Work-area
// geometry is in DPI-unaware pixels; monitor width/height are DPI-aware.
// The field tags are the file contract with the layout editor.
type MonitorRecord struct {
	Name           string    `json:"monitor-name"`
	VirtualDesktop DesktopID `json:"virtual-desktop"`
	DPI            int       `json:"dpi"`
	Top            int       `json:"top"`
	Left           int       `json:"left"`
	WorkAreaWidth  int       `json:"work-area-width"`
	WorkAreaHeight int       `json:"work-area-height"`
	MonitorWidth   int       `json:"monitor-width"`
	MonitorHeight  int       `json:"monitor-height"`
	IsSelected     bool      `json:"is-selected"`
}

// EditorParameters is the full payload handed to the layout editor.
type EditorParameters struct {
	ProcessID               int             `json:"process-id"`
	SpanZonesAcrossMonitors bool            `json:"span-zones-across-monitors"`
	Monitors                []MonitorRecord `json:"monitors"`
}
