package notify

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/rileyhilliard/nodewatch/internal/alert"
	"github.com/rileyhilliard/nodewatch/internal/ui"
	"golang.org/x/term"
)

// Console writes alerts to a terminal, colored by severity. It is the
// one channel that is always enabled.
type Console struct {
	out   io.Writer
	color bool
}

// NewConsole creates a console channel writing to stdout. Color is
// used only when stdout is a terminal.
func NewConsole() *Console {
	return &Console{
		out:   os.Stdout,
		color: term.IsTerminal(int(os.Stdout.Fd())),
	}
}

// NewConsoleWriter creates a console channel writing to w, for tests
// and captured output.
func NewConsoleWriter(w io.Writer, color bool) *Console {
	return &Console{out: w, color: color}
}

// Name implements alert.Notifier.
func (c *Console) Name() string { return "console" }

// Send implements alert.Notifier.
func (c *Console) Send(_ context.Context, a alert.Alert) error {
	line := fmt.Sprintf("%s [%s] %s: %s",
		ui.SymbolAlert, a.Severity, a.NodeID, a.Message)
	if c.color {
		line = lipgloss.NewStyle().Foreground(ui.SeverityColor(string(a.Severity))).Render(line)
	}
	_, err := fmt.Fprintln(c.out, line)
	return err
}
