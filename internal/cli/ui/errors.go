package ui

import (
	"fmt"
	"strings"
)

// FormatError returns a styled error message with optional fix suggestions.
func (p *Printer) FormatError(msg string, suggestions ...string) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("%s %s\n", p.Error.Render("Error:"), msg))

	if len(suggestions) > 0 {
		b.WriteString("\n")
		b.WriteString(p.Hint.Render("  Try:") + "\n")
		for _, s := range suggestions {
			b.WriteString(fmt.Sprintf("    %s %s\n", p.Hint.Render(SymbolArrow), s))
		}
	}

	return b.String()
}
