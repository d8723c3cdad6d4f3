// Package errors renders ingestion and parse errors for people and for tools.
//
// The error types themselves live with the code that raises them (ledger, parser); this
// package only decides how they are presented:
//   - TextFormatter: message followed by the offending source lines
//   - JSONFormatter: structured objects for editors and scripts
package errors

import (
	"bytes"
	"encoding/json"
	stderrors "errors"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/robinvdvleuten/zaster/ast"
	"github.com/robinvdvleuten/zaster/ledger"
	"github.com/robinvdvleuten/zaster/parser"
)

// Formatter formats errors for output in different formats.
type Formatter interface {
	// Format formats a single error.
	Format(err error) string

	// FormatAll formats multiple errors.
	FormatAll(errs []error) string
}

// positioned is implemented by every error that knows where in the document it arose.
type positioned interface {
	error
	GetPosition() ast.Position
}

// TextFormatter formats errors for command-line output.
type TextFormatter struct {
	source  []byte
	context int
}

// TextFormatterOption is an option for configuring TextFormatter.
type TextFormatterOption func(*TextFormatter)

// WithSource sets the document the errors refer to, enabling source excerpts.
func WithSource(source []byte) TextFormatterOption {
	return func(tf *TextFormatter) {
		tf.source = source
	}
}

// WithContextLines sets how many lines are shown before the offending line. Default: 2.
func WithContextLines(n int) TextFormatterOption {
	return func(tf *TextFormatter) {
		tf.context = n
	}
}

// NewTextFormatter creates a new text formatter.
func NewTextFormatter(opts ...TextFormatterOption) *TextFormatter {
	tf := &TextFormatter{context: 2}
	for _, opt := range opts {
		opt(tf)
	}
	return tf
}

// Format formats a single error. Positioned errors get a source excerpt when the
// formatter has the source.
func (tf *TextFormatter) Format(err error) string {
	var e positioned
	if !stderrors.As(err, &e) || tf.source == nil {
		return err.Error()
	}

	pos := e.GetPosition()
	if pos.Line <= 0 {
		return err.Error()
	}

	return tf.formatWithSourceContext(pos, err.Error())
}

// FormatAll formats multiple errors, separating them with blank lines.
func (tf *TextFormatter) FormatAll(errs []error) string {
	if len(errs) == 0 {
		return ""
	}

	var buf bytes.Buffer
	for i, err := range errs {
		buf.WriteString(tf.Format(err))

		if i < len(errs)-1 {
			buf.WriteString("\n\n")
		}
	}

	return buf.String()
}

// formatWithSourceContext writes message, then the lines around pos with a caret under
// the offending column.
func (tf *TextFormatter) formatWithSourceContext(pos ast.Position, message string) string {
	var buf bytes.Buffer

	buf.WriteString(message)
	buf.WriteString("\n\n")

	lines := strings.Split(strings.ReplaceAll(string(tf.source), "\r\n", "\n"), "\n")

	// pos.Line is 1-based
	start := max(pos.Line-1-tf.context, 0)
	end := min(pos.Line, len(lines)-1)

	for i := start; i <= end; i++ {
		buf.WriteString("   ")
		buf.WriteString(expandTabs(lines[i]))
		buf.WriteByte('\n')

		if i == pos.Line-1 && pos.Column > 0 {
			buf.WriteString("   ")
			buf.WriteString(strings.Repeat(" ", caretOffset(lines[i], pos.Column)))
			buf.WriteString("^\n")
		}
	}

	return buf.String()
}

// tabWidth is the tab stop used when excerpting source lines.
const tabWidth = 4

// expandTabs replaces tabs with spaces up to the next tab stop, measuring other runes by
// their display width.
func expandTabs(line string) string {
	if !strings.Contains(line, "\t") {
		return line
	}

	var b strings.Builder
	width := 0
	for _, r := range line {
		if r == '\t' {
			n := tabWidth - width%tabWidth
			b.WriteString(strings.Repeat(" ", n))
			width += n
			continue
		}
		b.WriteRune(r)
		width += runewidth.RuneWidth(r)
	}
	return b.String()
}

// caretOffset converts a 1-based byte column into the display width of the text before it.
func caretOffset(line string, column int) int {
	prefix := line[:min(column-1, len(line))]
	return runewidth.StringWidth(expandTabs(prefix))
}

// JSONFormatter formats errors as JSON.
type JSONFormatter struct{}

// NewJSONFormatter creates a new JSON formatter.
func NewJSONFormatter() *JSONFormatter {
	return &JSONFormatter{}
}

// ErrorJSON represents an error in JSON format.
type ErrorJSON struct {
	Type     string            `json:"type"`
	Message  string            `json:"message"`
	Position *PositionJSON     `json:"position,omitempty"`
	Details  map[string]string `json:"details,omitempty"`
}

// PositionJSON represents a file position in JSON format.
type PositionJSON struct {
	Filename string `json:"filename,omitempty"`
	Line     int    `json:"line"`
	Column   int    `json:"column,omitempty"`
}

// Format formats a single error as JSON.
func (jf *JSONFormatter) Format(err error) string {
	data, _ := json.Marshal(jf.toJSON(err))
	return string(data)
}

// FormatAll formats multiple errors as a JSON array.
func (jf *JSONFormatter) FormatAll(errs []error) string {
	data, _ := json.MarshalIndent(jf.FormatAllToSlice(errs), "", "  ")
	return string(data)
}

// FormatAllToSlice returns errors as a slice of ErrorJSON structs.
func (jf *JSONFormatter) FormatAllToSlice(errs []error) []ErrorJSON {
	result := make([]ErrorJSON, 0, len(errs))
	for _, err := range errs {
		result = append(result, jf.toJSON(err))
	}
	return result
}

func (jf *JSONFormatter) toJSON(err error) ErrorJSON {
	errJSON := ErrorJSON{
		Type:    "error",
		Message: err.Error(),
		Details: map[string]string{},
	}

	var e positioned
	if stderrors.As(err, &e) {
		pos := e.GetPosition()
		if !pos.IsZero() {
			errJSON.Position = &PositionJSON{
				Filename: pos.Filename,
				Line:     pos.Line,
				Column:   pos.Column,
			}
		}
	}

	var (
		missing   *ledger.MissingFieldError
		duplicate *ledger.DuplicateError
		unknown   *ledger.UnknownReferenceError
		invalid   *ledger.InvalidValueError
		parseErr  *parser.ParseError
	)

	switch {
	case stderrors.As(err, &missing):
		errJSON.Type = "missing_field"
		errJSON.Details["element"] = missing.Element
		errJSON.Details["field"] = missing.Field
	case stderrors.As(err, &duplicate):
		errJSON.Type = "duplicate"
		errJSON.Details["element"] = duplicate.Element
		errJSON.Details["name"] = duplicate.Name
		if location := duplicate.First.Location(); location != "" {
			errJSON.Details["first"] = location
		}
	case stderrors.As(err, &unknown):
		errJSON.Type = "unknown_reference"
		errJSON.Details["element"] = unknown.Element
		errJSON.Details["field"] = unknown.Field
		errJSON.Details["reference"] = unknown.Reference
		if unknown.ID != "" {
			errJSON.Details["id"] = unknown.ID
		}
	case stderrors.As(err, &invalid):
		errJSON.Type = "invalid_value"
		errJSON.Details["element"] = invalid.Element
		errJSON.Details["id"] = invalid.ID
		errJSON.Details["field"] = invalid.Field
		errJSON.Details["value"] = invalid.Value
	case stderrors.As(err, &parseErr):
		errJSON.Type = "parse"
	}

	if len(errJSON.Details) == 0 {
		errJSON.Details = nil
	}

	return errJSON
}
