// Package ui holds the drphone CLI styles, symbols and terminal-aware
// rendering. All CLI visual output goes through these definitions.
package ui

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// Colors: ANSI 4-bit for maximum terminal compatibility.
var (
	ColorCyan   = lipgloss.Color("6")
	ColorGreen  = lipgloss.Color("2")
	ColorYellow = lipgloss.Color("3")
	ColorRed    = lipgloss.Color("1")
)

// Unicode status symbols.
const (
	SymbolCheck = "✓"
	SymbolCross = "✗"
	SymbolSkip  = "-"
	SymbolArrow = "→"
)

// ColorEnabledFd returns whether the given fd supports color.
// Respects NO_COLOR (https://no-color.org/).
func ColorEnabledFd(fd uintptr) bool {
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// Printer renders styled text for one output stream. Color is only emitted
// when the stream is a terminal.
type Printer struct {
	r *lipgloss.Renderer

	Bold    lipgloss.Style
	Label   lipgloss.Style
	Success lipgloss.Style
	Warning lipgloss.Style
	Error   lipgloss.Style
	Hint    lipgloss.Style
}

// NewPrinter returns a Printer for w.
func NewPrinter(w io.Writer) *Printer {
	r := lipgloss.NewRenderer(w)
	if f, ok := w.(interface{ Fd() uintptr }); !ok || !ColorEnabledFd(f.Fd()) {
		r.SetColorProfile(termenv.Ascii)
	}
	return &Printer{
		r:       r,
		Bold:    r.NewStyle().Bold(true),
		Label:   r.NewStyle().Bold(true).Foreground(ColorCyan).Width(16),
		Success: r.NewStyle().Foreground(ColorGreen),
		Warning: r.NewStyle().Foreground(ColorYellow),
		Error:   r.NewStyle().Bold(true).Foreground(ColorRed),
		Hint:    r.NewStyle().Faint(true),
	}
}

// Status returns a colored symbol for a pass, fail or skip outcome.
func (p *Printer) Status(passed, skipped bool) string {
	switch {
	case skipped:
		return p.Warning.Render(SymbolSkip)
	case passed:
		return p.Success.Render(SymbolCheck)
	default:
		return p.Error.Render(SymbolCross)
	}
}
