package ledger

import (
	"github.com/shopspring/decimal"
)

// Side identifies which end of a transaction an account is on.
type Side int

const (
	SideFrom Side = 1 << iota
	SideTo

	SideNone Side = 0
)

// String returns the attribute name of the side.
func (s Side) String() string {
	switch s {
	case SideFrom:
		return "from"
	case SideTo:
		return "to"
	case SideFrom | SideTo:
		return "from+to"
	default:
		return "none"
	}
}

// Posting records one direct participation of an account in a transaction.
type Posting struct {
	Transaction *Transaction
	Side        Side
}

// Delta returns the signed amount this posting applied to its account.
func (p *Posting) Delta() decimal.Decimal {
	if p.Side == SideFrom {
		return p.Transaction.Amount.Neg()
	}
	return p.Transaction.Amount
}

// Account is a named node in the account forest. Its totals include the activity of every
// descendant; Postings only lists transactions the account took part in directly.
type Account struct {
	Name   string
	Parent *Account

	Balance  decimal.Decimal
	TotalIn  decimal.Decimal
	TotalOut decimal.Decimal

	Postings []*Posting
}

func newAccount(name string, parent *Account) *Account {
	return &Account{
		Name:   name,
		Parent: parent,
	}
}

// IsRoot returns true if the account has no parent.
func (a *Account) IsRoot() bool {
	return a.Parent == nil
}

// ParentName returns the name of the parent account, or "" for roots.
func (a *Account) ParentName() string {
	if a.Parent == nil {
		return ""
	}
	return a.Parent.Name
}

// Depth returns the number of ancestors of the account.
func (a *Account) Depth() int {
	depth := 0
	for p := a.Parent; p != nil; p = p.Parent {
		depth++
	}
	return depth
}

// Ancestors returns the strict ancestors of the account, nearest first.
func (a *Account) Ancestors() []*Account {
	var ancestors []*Account
	for p := a.Parent; p != nil; p = p.Parent {
		ancestors = append(ancestors, p)
	}
	return ancestors
}

// Transactions returns the transactions the account took part in directly, in document order.
// A transfer from the account to itself appears twice, once per side.
func (a *Account) Transactions() []*Transaction {
	txns := make([]*Transaction, len(a.Postings))
	for i, p := range a.Postings {
		txns[i] = p.Transaction
	}
	return txns
}

// credit applies a signed delta to the account's own totals.
func (a *Account) credit(delta decimal.Decimal) {
	a.Balance = a.Balance.Add(delta)

	switch delta.Sign() {
	case 1:
		a.TotalIn = a.TotalIn.Add(delta)
	case -1:
		a.TotalOut = a.TotalOut.Sub(delta)
	}
}
