package style

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

var (
	ColorError = lipgloss.AdaptiveColor{
		Light: "#DC2626",
		Dark:  "#EF4444",
	}
	ColorWarning = lipgloss.AdaptiveColor{
		Light: "#D97706",
		Dark:  "#F59E0B",
	}
	ColorMuted = lipgloss.AdaptiveColor{
		Light: "#6B7280",
		Dark:  "#9CA3AF",
	}
)

// Styles holds the styles bound to one output stream.
type Styles struct {
	Error   lipgloss.Style
	Warning lipgloss.Style
	Muted   lipgloss.Style
}

// For returns styles whose colour profile is detected from w.
// Writers that are not terminals get unstyled output.
func For(w io.Writer) Styles {
	r := lipgloss.NewRenderer(w)
	return Styles{
		Error:   r.NewStyle().Foreground(ColorError).Bold(true),
		Warning: r.NewStyle().Foreground(ColorWarning),
		Muted:   r.NewStyle().Foreground(ColorMuted).Faint(true),
	}
}

// IsTerminal reports whether v is an *os.File attached to a terminal.
func IsTerminal(v any) bool {
	f, ok := v.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
