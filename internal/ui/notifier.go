package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Notifier receives human-facing status messages from the generation
// pipeline. Keeping this behind an interface keeps the generator pure:
// input config in, file set out, presentation elsewhere.
type Notifier interface {
	// Header prints a prominent section header.
	Header(text string)
	// Success reports a completed step.
	Success(text string)
	// Info reports neutral progress information.
	Info(text string)
	// Warn reports a recoverable condition (e.g. a missing template).
	Warn(text string)
	// Error reports a failure. It does not terminate anything.
	Error(text string)
}

// consoleNotifier renders notifications with lipgloss styles.
type consoleNotifier struct {
	theme  *Theme
	writer io.Writer

	header  lipgloss.Style
	success lipgloss.Style
	info    lipgloss.Style
	warn    lipgloss.Style
	errs    lipgloss.Style
}

// NewConsoleNotifier creates a Notifier writing styled lines to w.
func NewConsoleNotifier(theme *Theme, w io.Writer) Notifier {
	return &consoleNotifier{
		theme:   theme,
		writer:  w,
		header:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(theme.Colors.Primary)),
		success: lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Colors.Success)),
		info:    lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Colors.Muted)),
		warn:    lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Colors.Warning)),
		errs:    lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Colors.Error)),
	}
}

func (n *consoleNotifier) Header(text string) {
	rule := strings.Repeat("─", len(text)+2)
	if n.theme.NoColor {
		_, _ = fmt.Fprintf(n.writer, "\n%s\n %s\n%s\n", rule, text, rule)
		return
	}
	_, _ = fmt.Fprintf(n.writer, "\n%s\n %s\n%s\n",
		n.header.Render(rule), n.header.Render(text), n.header.Render(rule))
}

func (n *consoleNotifier) Success(text string) { n.line(n.success, "✓", text) }
func (n *consoleNotifier) Info(text string)    { n.line(n.info, "ℹ", text) }
func (n *consoleNotifier) Warn(text string)    { n.line(n.warn, "⚠", text) }
func (n *consoleNotifier) Error(text string)   { n.line(n.errs, "✗", text) }

func (n *consoleNotifier) line(style lipgloss.Style, glyph, text string) {
	if n.theme.NoColor {
		_, _ = fmt.Fprintf(n.writer, "%s %s\n", glyph, text)
		return
	}
	_, _ = fmt.Fprintf(n.writer, "%s %s\n", style.Render(glyph), text)
}

// silentNotifier discards everything. Used by tests and the preview path.
type silentNotifier struct{}

// NewSilentNotifier returns a Notifier that drops all messages.
func NewSilentNotifier() Notifier { return silentNotifier{} }

func (silentNotifier) Header(string)  {}
func (silentNotifier) Success(string) {}
func (silentNotifier) Info(string)    {}
func (silentNotifier) Warn(string)    {}
func (silentNotifier) Error(string)   {}
