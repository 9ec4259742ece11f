package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Theme bundles palette + symbols + box borders.
// All UI helpers pull from `current`.
type Theme struct {
	Name string

	Title, Muted, Accent, Success, Error, Selected, Dragging lipgloss.Style

	Border                      lipgloss.Border
	BorderColor                 lipgloss.TerminalColor
	Cursor, Grip, SymOK, SymErr string
}

var current = classic()

func classic() Theme {
	return Theme{
		Name:        "classic",
		Title:       lipgloss.NewStyle().Bold(true),
		Muted:       lipgloss.NewStyle().Faint(true),
		Accent:      lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
		Success:     lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		Error:       lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		Selected:    lipgloss.NewStyle().Bold(true).Reverse(true),
		Dragging:    lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true),
		Border:      lipgloss.RoundedBorder(),
		BorderColor: lipgloss.Color("8"),
		Cursor:      "> ",
		Grip:        "≡",
		SymOK:       "✔",
		SymErr:      "✖",
	}
}

// SetTheme switches the active theme. Unknown names fall back to classic.
// "mono" also drops the color profile to plain ASCII.
func SetTheme(name string) {
	switch strings.ToLower(name) {
	case "neon":
		t := classic()
		t.Name = "neon"
		t.Title = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("13"))
		t.Accent = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
		t.Dragging = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)
		t.BorderColor = lipgloss.Color("13")
		t.Grip = "◆"
		current = t
	case "mono":
		lipgloss.SetColorProfile(termenv.Ascii)
		current = Theme{
			Name:        "mono",
			Title:       lipgloss.NewStyle(),
			Muted:       lipgloss.NewStyle(),
			Accent:      lipgloss.NewStyle(),
			Success:     lipgloss.NewStyle(),
			Error:       lipgloss.NewStyle(),
			Selected:    lipgloss.NewStyle(),
			Dragging:    lipgloss.NewStyle(),
			Border:      lipgloss.NormalBorder(),
			BorderColor: lipgloss.NoColor{},
			Cursor:      "> ",
			Grip:        "=",
			SymOK:       "ok",
			SymErr:      "error:",
		}
	default: // classic
		current = classic()
	}
}

// Expose what renderers need
func Current() Theme { return current }
