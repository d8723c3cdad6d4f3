package ledger

import (
	"fmt"
	"strings"

	"github.com/robinvdvleuten/zaster/ast"
)

// Error types for ingestion errors. Each carries the position of the element that caused it.

// withLocation prefixes message with "filename:line: " when a position is known.
func withLocation(pos ast.Position, message string) string {
	if location := pos.Location(); location != "" {
		return location + ": " + message
	}
	return message
}

// title capitalizes an element kind for use at the start of a message.
func title(element string) string {
	if element == "" {
		return element
	}
	return strings.ToUpper(element[:1]) + element[1:]
}

// MissingFieldError is returned when a required attribute is absent or empty.
type MissingFieldError struct {
	Element string // "account" or "transaction"
	Field   string
	Pos     ast.Position
}

func (e *MissingFieldError) Error() string {
	return withLocation(e.Pos, fmt.Sprintf("Element '%s' lacks required attribute '%s'", e.Element, e.Field))
}

func (e *MissingFieldError) GetPosition() ast.Position {
	return e.Pos
}

// DuplicateError is returned when an account name or transaction id is defined twice.
type DuplicateError struct {
	Element string
	Name    string
	Pos     ast.Position
	First   ast.Position // Position of the definition that was kept
}

func (e *DuplicateError) Error() string {
	return withLocation(e.Pos, fmt.Sprintf("%s '%s' is defined multiple times", title(e.Element), e.Name))
}

func (e *DuplicateError) GetPosition() ast.Position {
	return e.Pos
}

// UnknownReferenceError is returned when a parent, from or to attribute names an account
// that has not been defined yet.
type UnknownReferenceError struct {
	Element   string // Kind of the referencing element
	ID        string // Account name or transaction id of the referencing element
	Field     string // "parent", "from" or "to"
	Reference string // The unresolved account name
	Pos       ast.Position
}

func (e *UnknownReferenceError) Error() string {
	var message string
	switch {
	case e.Field == "parent":
		message = fmt.Sprintf("%s '%s' references unknown parent '%s'", title(e.Element), e.ID, e.Reference)
	case e.ID == "":
		message = fmt.Sprintf("Unknown account '%s'", e.Reference)
	default:
		message = fmt.Sprintf("%s '%s' references unknown account '%s' in '%s' field",
			title(e.Element), e.ID, e.Reference, e.Field)
	}
	return withLocation(e.Pos, message)
}

func (e *UnknownReferenceError) GetPosition() ast.Position {
	return e.Pos
}

// InvalidValueError is returned when an attribute value cannot be interpreted, such as an
// amount that is not a decimal number.
type InvalidValueError struct {
	Element    string
	ID         string
	Field      string
	Value      string
	Underlying error
	Pos        ast.Position
}

func (e *InvalidValueError) Error() string {
	return withLocation(e.Pos, fmt.Sprintf("%s '%s' specifies bad value for field '%s': %s",
		title(e.Element), e.ID, e.Field, e.Value))
}

func (e *InvalidValueError) GetPosition() ast.Position {
	return e.Pos
}

func (e *InvalidValueError) Unwrap() error {
	return e.Underlying
}
