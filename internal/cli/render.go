package cli

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/rileyhilliard/nodewatch/internal/alert"
	"github.com/rileyhilliard/nodewatch/internal/engine"
	"github.com/rileyhilliard/nodewatch/internal/health"
	"github.com/rileyhilliard/nodewatch/internal/metrics"
	"github.com/rileyhilliard/nodewatch/internal/ui"
	"github.com/rileyhilliard/nodewatch/internal/util"
)

var (
	boldStyle  = lipgloss.NewStyle().Bold(true).Foreground(ui.ColorPrimary)
	mutedStyle = lipgloss.NewStyle().Foreground(ui.ColorMuted)
)

// renderCheck formats one health check result.
func renderCheck(check health.Check) string {
	var b strings.Builder

	statusStyle := lipgloss.NewStyle().Foreground(ui.StatusColor(string(check.Status)))
	fmt.Fprintf(&b, "%s %s is %s\n",
		statusStyle.Render(ui.StatusSymbol(string(check.Status))),
		boldStyle.Render(check.NodeID),
		statusStyle.Render(string(check.Status)))

	names := make([]string, 0, len(check.Checks))
	for name := range check.Checks {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		symbol := ui.SymbolSuccess
		style := lipgloss.NewStyle().Foreground(ui.ColorSuccess)
		if !check.Checks[name] {
			symbol = ui.SymbolFail
			style = lipgloss.NewStyle().Foreground(ui.ColorError)
		}
		fmt.Fprintf(&b, "  %s %-5s %s\n",
			style.Render(symbol), name,
			mutedStyle.Render(fmt.Sprintf("%.0fms", check.ResponseTimes[name])))
	}

	for _, msg := range check.ErrorMessages {
		fmt.Fprintf(&b, "  %s\n", mutedStyle.Render(msg))
	}

	return b.String()
}

// renderSnapshot formats one resource snapshot.
func renderSnapshot(snap metrics.Snapshot) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", boldStyle.Render(snap.NodeID))
	fmt.Fprintf(&b, "  cpu    %6.1f%%\n", snap.CPUPercent)
	fmt.Fprintf(&b, "  memory %6.1f%%\n", snap.MemoryPercent)
	fmt.Fprintf(&b, "  disk   %6.1f%%\n", snap.DiskPercent)
	fmt.Fprintf(&b, "  load   %.2f %.2f %.2f\n",
		snap.LoadAverage[0], snap.LoadAverage[1], snap.LoadAverage[2])
	return b.String()
}

// renderDashboard formats the aggregate fleet view.
func renderDashboard(d engine.Dashboard) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s  %d %s, %d healthy, %d critical / %d warning %s\n\n",
		boldStyle.Render("Fleet"),
		d.TotalNodes, util.Pluralize(d.TotalNodes, "node", "nodes"),
		d.HealthyNodes,
		d.CriticalAlerts, d.WarningAlerts,
		util.Pluralize(d.CriticalAlerts+d.WarningAlerts, "alert", "alerts"))

	if len(d.Nodes) == 0 {
		b.WriteString(mutedStyle.Render("No history yet. Run: nodewatch cycle"))
		b.WriteString("\n")
		return b.String()
	}

	columns := []ui.TableColumn{
		{Title: "", Width: 2},
		{Title: "NODE", Width: 16},
		{Title: "STATUS", Width: 10},
		{Title: "CPU", Width: 7},
		{Title: "MEM", Width: 7},
		{Title: "DISK", Width: 7},
		{Title: "CHECKED", Width: 10},
	}

	rows := make([][]string, 0, len(d.Nodes))
	for _, n := range d.Nodes {
		status := "unknown"
		checked := "-"
		if n.Check != nil {
			status = string(n.Check.Status)
			checked = n.Check.Timestamp.Local().Format("15:04:05")
		}

		cpu, mem, disk := "-", "-", "-"
		if n.Snapshot != nil {
			cpu = fmt.Sprintf("%.1f%%", n.Snapshot.CPUPercent)
			mem = fmt.Sprintf("%.1f%%", n.Snapshot.MemoryPercent)
			disk = fmt.Sprintf("%.1f%%", n.Snapshot.DiskPercent)
		}

		symbol := lipgloss.NewStyle().Foreground(ui.StatusColor(status)).Render(ui.StatusSymbol(status))
		rows = append(rows, []string{symbol, n.NodeID, status, cpu, mem, disk, checked})
	}
	b.WriteString(ui.RenderSimpleTable(columns, rows))

	if len(d.ActiveAlerts) > 0 {
		b.WriteString("\n")
		b.WriteString(renderAlerts(d.ActiveAlerts))
	}

	return b.String()
}

// renderAlerts formats an alert listing.
func renderAlerts(alerts []alert.Alert) string {
	if len(alerts) == 0 {
		return mutedStyle.Render("No alerts.") + "\n"
	}

	var b strings.Builder
	for _, a := range alerts {
		style := lipgloss.NewStyle().Foreground(ui.SeverityColor(string(a.Severity)))
		state := ""
		if a.Resolved {
			state = mutedStyle.Render(" (resolved)")
		} else if a.Acknowledged {
			state = mutedStyle.Render(" (acked)")
		}
		fmt.Fprintf(&b, "%s %s%s\n",
			style.Render(fmt.Sprintf("%s [%s] %s: %s", ui.SymbolAlert, a.Severity, a.NodeID, a.Message)),
			mutedStyle.Render(a.Timestamp.Local().Format("2006-01-02 15:04:05")),
			state)
		fmt.Fprintf(&b, "  %s\n", mutedStyle.Render("id: "+a.ID))
	}
	return b.String()
}

// renderStatus formats the per-node detail view.
func renderStatus(s engine.NodeStatus) string {
	var b strings.Builder

	if s.Check == nil && s.Snapshot == nil {
		fmt.Fprintf(&b, "%s\n%s\n", boldStyle.Render(s.NodeID),
			mutedStyle.Render("No history for this node yet. Run: nodewatch check "+s.NodeID))
		return b.String()
	}

	if s.Check != nil {
		b.WriteString(renderCheck(*s.Check))
	}
	if s.Snapshot != nil {
		b.WriteString("\n")
		b.WriteString(renderSnapshot(*s.Snapshot))
	}

	b.WriteString("\n")
	fmt.Fprintf(&b, "%s %d active\n", boldStyle.Render("Alerts:"), len(s.Alerts))
	if len(s.Alerts) > 0 {
		b.WriteString(renderAlerts(s.Alerts))
	}

	return b.String()
}
