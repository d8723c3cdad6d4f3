package ledger

import (
	"errors"
	"testing"

	"github.com/alecthomas/assert/v2"

	"github.com/robinvdvleuten/zaster/ast"
)

func TestErrorMessages(t *testing.T) {
	pos := ast.Position{Filename: "books.xml", Line: 12, Column: 3}

	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "missing field",
			err:  &MissingFieldError{Element: "account", Field: "name", Pos: pos},
			want: "books.xml:12: Element 'account' lacks required attribute 'name'",
		},
		{
			name: "duplicate transaction",
			err:  &DuplicateError{Element: "transaction", Name: "42", Pos: pos},
			want: "books.xml:12: Transaction '42' is defined multiple times",
		},
		{
			name: "unknown parent",
			err:  &UnknownReferenceError{Element: "account", ID: "Child", Field: "parent", Reference: "Ghost", Pos: pos},
			want: "books.xml:12: Account 'Child' references unknown parent 'Ghost'",
		},
		{
			name: "unknown from",
			err:  &UnknownReferenceError{Element: "transaction", ID: "1", Field: "from", Reference: "Ghost"},
			want: "Transaction '1' references unknown account 'Ghost' in 'from' field",
		},
		{
			name: "invalid amount",
			err:  &InvalidValueError{Element: "transaction", ID: "1", Field: "amount", Value: "ten", Pos: ast.Position{Line: 4}},
			want: "line 4: Transaction '1' specifies bad value for field 'amount': ten",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
		})
	}
}

func TestErrorPositions(t *testing.T) {
	pos := ast.Position{Filename: "books.xml", Line: 7}

	errs := []interface {
		error
		GetPosition() ast.Position
	}{
		&MissingFieldError{Pos: pos},
		&DuplicateError{Pos: pos},
		&UnknownReferenceError{Pos: pos},
		&InvalidValueError{Pos: pos},
	}

	for _, err := range errs {
		assert.Equal(t, pos, err.GetPosition())
	}
}

func TestErrorsCarryElementPosition(t *testing.T) {
	pos := ast.Position{Filename: "books.xml", Line: 5, Column: 3}

	_, err := processErr(t,
		ast.NewAccount("A", ""),
		ast.NewTransaction("1", "2024-01-01", "1", "A", "Nowhere").At(pos),
	)

	var unknown *UnknownReferenceError
	assert.True(t, errors.As(err, &unknown))
	assert.Equal(t, pos, unknown.Pos)
	assert.Equal(t, "books.xml:5: Transaction '1' references unknown account 'Nowhere' in 'to' field", err.Error())
}

func TestInvalidValueError_Unwrap(t *testing.T) {
	underlying := errors.New("can't convert ten to decimal")
	err := &InvalidValueError{Element: "transaction", ID: "1", Field: "amount", Value: "ten", Underlying: underlying}

	assert.True(t, errors.Is(err, underlying))
}
