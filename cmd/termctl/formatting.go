package termctl

import (
	"strings"
	"text/template"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/termctl/pkg/style"
	"github.com/arthur-debert/termctl/pkg/terminal"
)

// formatBold returns the string formatted as bold
func formatBold(s string) string {
	// Only apply formatting if output is a terminal
	if !terminal.IsTerminal(terminal.Stdout) {
		return s
	}
	return style.Bold + s + style.Reset
}

// formatUpper returns the string in uppercase
func formatUpper(s string) string {
	return strings.ToUpper(s)
}

// formatBoldUpper returns the string in uppercase and bold
func formatBoldUpper(s string) string {
	upper := strings.ToUpper(s)
	// Only apply formatting if output is a terminal
	if !terminal.IsTerminal(terminal.Stdout) {
		return upper
	}
	return style.Bold + upper + style.Reset
}

// initTemplateFormatting adds custom formatting functions to Cobra templates
func initTemplateFormatting() {
	cobra.AddTemplateFuncs(template.FuncMap{
		"bold":      formatBold,
		"upper":     formatUpper,
		"boldUpper": formatBoldUpper,
	})
}
