package ui

// Unicode symbols for status indicators.
const (
	SymbolSuccess = "✓" // Probe passed / node healthy
	SymbolFail    = "✗" // Probe failed / node unhealthy
	SymbolPartial = "◐" // Node degraded
	SymbolUnknown = "○" // Node state unknown
	SymbolAlert   = "⚠" // Alert line prefix
)

// StatusSymbol maps a health status to its indicator symbol.
func StatusSymbol(status string) string {
	switch status {
	case "healthy":
		return SymbolSuccess
	case "degraded":
		return SymbolPartial
	case "unhealthy":
		return SymbolFail
	default:
		return SymbolUnknown
	}
}
