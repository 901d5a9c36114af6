// Package monitors renders a topology snapshot for terminal output.
package monitors

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"zonesnap/internal/domain"
)

type RenderOptions struct {
	Spanned bool
}

func Render(records []domain.MonitorRecord, opts RenderOptions) string {
	return renderView(records, opts, newStyles())
}

func renderView(records []domain.MonitorRecord, opts RenderOptions, s styles) string {
	header := fmt.Sprintf("monitors: %d", len(records))
	if opts.Spanned {
		header = "spanned across all monitors"
	}

	lines := []string{
		s.title.Render("Display Topology"),
		s.header.Render(header),
	}

	if len(records) == 0 {
		lines = append(lines, s.empty.Render("No monitors reported a DPI."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	for _, record := range records {
		lines = append(lines, s.section.Render(renderMonitor(record, s)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderMonitor(record domain.MonitorRecord, s styles) string {
	title := record.Name
	nameStyle := s.name
	if record.IsSelected {
		title += "  [selected]"
		nameStyle = s.selected
	}

	parts := []string{
		nameStyle.Render(title),
		s.detail.Render(fmt.Sprintf("work area: %dx%d at (%d, %d)",
			record.WorkAreaWidth, record.WorkAreaHeight, record.Left, record.Top)),
		s.detail.Render(fmt.Sprintf("monitor:   %dx%d  dpi: %s",
			record.MonitorWidth, record.MonitorHeight, dpiLabel(record.DPI))),
		s.meta.Render("virtual desktop: " + string(record.VirtualDesktop)),
	}

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func dpiLabel(dpi int) string {
	if dpi == domain.SpannedDPI {
		return "n/a"
	}

	return fmt.Sprintf("%d (%d%%)", dpi, dpi*100/domain.BaselineDPI)
}
