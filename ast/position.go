package ast

import "fmt"

// Position represents a location in the source document.
type Position struct {
	Filename string
	Offset   int // Byte offset
	Line     int // Line number (1-indexed)
	Column   int // Column number (1-indexed)
}

// IsZero returns true if no location information is available.
func (p Position) IsZero() bool {
	return p.Filename == "" && p.Line == 0
}

// Location returns the "filename:line" prefix used in error messages.
// Falls back to "line N" without a filename and to "" without any position.
func (p Position) Location() string {
	switch {
	case p.Filename != "" && p.Line > 0:
		return fmt.Sprintf("%s:%d", p.Filename, p.Line)
	case p.Filename != "":
		return p.Filename
	case p.Line > 0:
		return fmt.Sprintf("line %d", p.Line)
	default:
		return ""
	}
}

// String returns a human-readable representation of the position.
func (p Position) String() string {
	if p.Filename != "" {
		return fmt.Sprintf("%s:%d:%d", p.Filename, p.Line, p.Column)
	}
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// GoString returns a Go-syntax representation of the position.
func (p Position) GoString() string {
	return fmt.Sprintf("Position{Filename: %q, Line: %d, Column: %d}", p.Filename, p.Line, p.Column)
}
