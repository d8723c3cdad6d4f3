package parser

import (
	"encoding/xml"
	"errors"
	"fmt"

	"github.com/robinvdvleuten/zaster/ast"
)

// ParseError represents a malformed document.
type ParseError struct {
	Pos        ast.Position
	Message    string
	Underlying error
}

func (e *ParseError) Error() string {
	location := fmt.Sprintf("%s:%d", e.Pos.Filename, e.Pos.Line)
	if e.Pos.Filename == "" {
		location = fmt.Sprintf("line %d", e.Pos.Line)
	}

	return fmt.Sprintf("%s: %s", location, e.Message)
}

func (e *ParseError) GetPosition() ast.Position {
	return e.Pos
}

func (e *ParseError) Unwrap() error {
	return e.Underlying
}

// NewParseError creates a parse error from a decoder error.
// It extracts the line number from XML syntax errors.
func NewParseError(filename string, err error) *ParseError {
	var syntaxErr *xml.SyntaxError
	if errors.As(err, &syntaxErr) {
		return &ParseError{
			Pos: ast.Position{
				Filename: filename,
				Line:     syntaxErr.Line,
			},
			Message:    syntaxErr.Msg,
			Underlying: err,
		}
	}

	// Fallback for other error types, such as read failures or unknown encodings
	return &ParseError{
		Pos: ast.Position{
			Filename: filename,
			Line:     1,
		},
		Message:    err.Error(),
		Underlying: err,
	}
}
