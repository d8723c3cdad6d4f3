package ledger

import (
	"github.com/shopspring/decimal"

	"github.com/robinvdvleuten/zaster/ast"
)

// Transaction is an immutable transfer of Amount from one account to another.
type Transaction struct {
	ID         string
	Date       string
	Amount     decimal.Decimal
	From       *Account
	To         *Account
	Comment    string
	// HasComment distinguishes an absent comment from an empty one.
	HasComment bool
	Pos        ast.Position
}

// SideOf reports on which side of the transaction the named account is.
// Accounts are compared by name, never by pointer.
func (t *Transaction) SideOf(name string) Side {
	side := SideNone
	if t.From != nil && t.From.Name == name {
		side |= SideFrom
	}
	if t.To != nil && t.To.Name == name {
		side |= SideTo
	}
	return side
}

// IsSelfTransfer returns true if both endpoints are the same account.
func (t *Transaction) IsSelfTransfer() bool {
	return t.SideOf(t.From.Name) == SideFrom|SideTo
}

// TransactionFields holds the raw attribute values of a transaction definition.
type TransactionFields struct {
	ID      string
	Date    string
	Amount  string
	From    string
	To         string
	Comment    string
	HasComment bool
	Pos        ast.Position
}

// transactionFieldsFromElement extracts transaction fields from an ingestion event.
func transactionFieldsFromElement(el ast.Element) TransactionFields {
	return TransactionFields{
		ID:      el.Attrs.Get("id"),
		Date:    el.Attrs.Get("date"),
		Amount:  el.Attrs.Get("amount"),
		From:    el.Attrs.Get("from"),
		To:      el.Attrs.Get("to"),
		Comment:    el.Attrs.Get("comment"),
		HasComment: el.Attrs.Has("comment"),
		Pos:        el.Pos,
	}
}

// required returns the mandatory fields in validation order.
func (f TransactionFields) required() []struct{ name, value string } {
	return []struct{ name, value string }{
		{"id", f.ID},
		{"date", f.Date},
		{"amount", f.Amount},
		{"from", f.From},
		{"to", f.To},
	}
}
