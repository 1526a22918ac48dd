package pihello

import (
	"fmt"
	"os"
	"sort"
	"strings"
	"text/template"

	"github.com/arthur-debert/pihello/pkg/errors"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

// formatBold returns the string formatted as bold using pterm
func formatBold(s string) string {
	// Only apply formatting if output is a terminal
	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		return s
	}
	return pterm.Bold.Sprint(s)
}

// formatUpper returns the string in uppercase
func formatUpper(s string) string {
	return strings.ToUpper(s)
}

// formatBoldUpper returns the string in uppercase and bold
func formatBoldUpper(s string) string {
	return formatBold(formatUpper(s))
}

// initTemplateFormatting adds custom formatting functions to Cobra templates
func initTemplateFormatting() {
	cobra.AddTemplateFuncs(template.FuncMap{
		"bold":      formatBold,
		"upper":     formatUpper,
		"boldUpper": formatBoldUpper,
	})
}

// FormatError renders err for the terminal: a red header, then the error
// code and details of coded errors, one per line.
func FormatError(err error) string {
	return formatError(err, lipgloss.NewRenderer(os.Stderr))
}

func formatError(err error, r *lipgloss.Renderer) string {
	header := r.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	dim := r.NewStyle().Faint(true)

	var b strings.Builder
	b.WriteString(header.Render("Error:"))
	b.WriteString(" ")
	b.WriteString(err.Error())

	code := errors.GetErrorCode(err)
	if code == errors.ErrUnknown {
		return b.String()
	}
	b.WriteString("\n")
	b.WriteString(dim.Render(fmt.Sprintf("  code: %s", code)))

	details := errors.GetErrorDetails(err)
	keys := make([]string, 0, len(details))
	for k := range details {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		b.WriteString("\n")
		b.WriteString(dim.Render(fmt.Sprintf("  %s: %v", k, details[k])))
	}
	return b.String()
}
