package cli

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/robinvdvleuten/zaster/errors"
)

var (
	errCaretStyle   = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#FF5F87", Dark: "#FF5F87"})
	errContextStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#808080", Dark: "#808080"})
)

// ErrorRenderer renders errors with terminal styling and source context.
type ErrorRenderer struct {
	formatter *errors.TextFormatter
}

// NewErrorRenderer creates a renderer with source content for context.
func NewErrorRenderer(source []byte) *ErrorRenderer {
	var opts []errors.TextFormatterOption
	if source != nil {
		opts = append(opts, errors.WithSource(source))
	}
	return &ErrorRenderer{formatter: errors.NewTextFormatter(opts...)}
}

// Render formats a single error with styling and context.
func (r *ErrorRenderer) Render(err error) string {
	text := strings.TrimSuffix(r.formatter.Format(err), "\n")

	message, excerpt, found := strings.Cut(text, "\n\n")

	var buf strings.Builder
	buf.WriteString(errorStyle.Render(message))
	if !found {
		return buf.String()
	}

	buf.WriteString("\n\n")
	for i, line := range strings.Split(excerpt, "\n") {
		if i > 0 {
			buf.WriteByte('\n')
		}

		trimmed := strings.TrimLeft(line, " ")
		if trimmed == "^" {
			buf.WriteString(line[:len(line)-1])
			buf.WriteString(errCaretStyle.Render("^"))
			continue
		}

		// The excerpt is indented by three spaces; only the source text is styled.
		indent := min(3, len(line)-len(trimmed))
		buf.WriteString(line[:indent])
		buf.WriteString(errContextStyle.Render(line[indent:]))
	}

	return buf.String()
}

// RenderAll formats multiple errors, separating them with blank lines.
func (r *ErrorRenderer) RenderAll(errs []error) string {
	rendered := make([]string, 0, len(errs))
	for _, err := range errs {
		rendered = append(rendered, r.Render(err))
	}
	return strings.Join(rendered, "\n\n")
}
