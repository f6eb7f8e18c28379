package watch

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/rileyhilliard/nodewatch/internal/ui"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(ui.ColorPrimary)
	mutedStyle  = lipgloss.NewStyle().Foreground(ui.ColorMuted)
	healthStyle = lipgloss.NewStyle().Foreground(ui.ColorSuccess)
	alertStyle  = lipgloss.NewStyle().Foreground(ui.ColorError)
)

// View renders the fleet dashboard.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render("nodewatch"))
	if m.lastUpdate.IsZero() {
		b.WriteString(mutedStyle.Render("  running first cycle..."))
	} else {
		b.WriteString(mutedStyle.Render(fmt.Sprintf("  updated %s, refresh every %s",
			m.lastUpdate.Format("15:04:05"), m.interval)))
	}
	if m.refreshing && !m.lastUpdate.IsZero() {
		b.WriteString(mutedStyle.Render("  (refreshing)"))
	}
	b.WriteString("\n\n")

	b.WriteString(m.summaryLine())
	b.WriteString("\n\n")

	if len(m.dash.Nodes) > 0 {
		b.WriteString(m.nodeTable())
		b.WriteString("\n")
	}

	if len(m.dash.ActiveAlerts) > 0 {
		b.WriteString(titleStyle.Render("Active alerts"))
		b.WriteString("\n")
		for _, a := range m.dash.ActiveAlerts {
			line := fmt.Sprintf("%s [%s] %s: %s", ui.SymbolAlert, a.Severity, a.NodeID, a.Message)
			b.WriteString(lipgloss.NewStyle().Foreground(ui.SeverityColor(string(a.Severity))).Render(line))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	if m.err != nil {
		b.WriteString(alertStyle.Render("error: " + m.err.Error()))
		b.WriteString("\n")
	}

	b.WriteString(mutedStyle.Render("r refresh now • q quit"))
	b.WriteString("\n")

	return b.String()
}

// summaryLine is the one-line fleet rollup.
func (m Model) summaryLine() string {
	healthy := healthStyle.Render(fmt.Sprintf("%d/%d healthy", m.dash.HealthyNodes, m.dash.TotalNodes))
	alerts := fmt.Sprintf("%d critical, %d warning", m.dash.CriticalAlerts, m.dash.WarningAlerts)
	if m.dash.CriticalAlerts > 0 || m.dash.WarningAlerts > 0 {
		alerts = alertStyle.Render(alerts)
	} else {
		alerts = mutedStyle.Render(alerts)
	}
	return healthy + mutedStyle.Render("  •  ") + alerts
}

// nodeTable renders one row per node.
func (m Model) nodeTable() string {
	columns := []ui.TableColumn{
		{Title: "", Width: 2},
		{Title: "NODE", Width: 16},
		{Title: "STATUS", Width: 10},
		{Title: "CPU", Width: 7},
		{Title: "MEM", Width: 7},
		{Title: "DISK", Width: 7},
		{Title: "LOAD", Width: 18},
	}

	rows := make([][]string, 0, len(m.dash.Nodes))
	for _, n := range m.dash.Nodes {
		status := "unknown"
		if n.Check != nil {
			status = string(n.Check.Status)
		}

		cpu, mem, disk, load := "-", "-", "-", "-"
		if n.Snapshot != nil {
			cpu = fmt.Sprintf("%.1f%%", n.Snapshot.CPUPercent)
			mem = fmt.Sprintf("%.1f%%", n.Snapshot.MemoryPercent)
			disk = fmt.Sprintf("%.1f%%", n.Snapshot.DiskPercent)
			load = fmt.Sprintf("%.2f %.2f %.2f",
				n.Snapshot.LoadAverage[0], n.Snapshot.LoadAverage[1], n.Snapshot.LoadAverage[2])
		}

		symbol := lipgloss.NewStyle().Foreground(ui.StatusColor(status)).Render(ui.StatusSymbol(status))
		rows = append(rows, []string{symbol, n.NodeID, status, cpu, mem, disk, load})
	}

	return ui.RenderSimpleTable(columns, rows)
}
