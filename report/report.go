// Package report projects an ingested ledger into balance summaries and per-account
// statements. It only reads ledger state.
package report

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/robinvdvleuten/zaster/ledger"
)

// ErrUnknownAccount is returned when a statement is requested for an undefined account.
var ErrUnknownAccount = errors.New("account unknown")

// BalanceRow summarizes one account, including the activity of its descendants.
type BalanceRow struct {
	Account  string
	Depth    int
	TotalOut decimal.Decimal
	TotalIn  decimal.Decimal
	Balance  decimal.Decimal
}

// Balances returns one row per account, ordered by account name.
func Balances(l *ledger.Ledger) []BalanceRow {
	names := l.Accounts().SortedNames()
	rows := make([]BalanceRow, 0, len(names))

	for _, name := range names {
		acc, _ := l.GetAccount(name)
		rows = append(rows, BalanceRow{
			Account:  acc.Name,
			Depth:    acc.Depth(),
			TotalOut: acc.TotalOut,
			TotalIn:  acc.TotalIn,
			Balance:  acc.Balance,
		})
	}

	return rows
}

// StatementLine is one direct posting of an account with the running balance after it.
type StatementLine struct {
	ID         string
	Date       string
	Out        decimal.Decimal
	In         decimal.Decimal
	Balance    decimal.Decimal
	Comment    string
	// HasComment is false when the transaction carries no comment attribute.
	HasComment bool
}

// AccountStatement lists the direct postings of one account.
type AccountStatement struct {
	Account string
	Lines   []StatementLine
}

// Statement builds the statement of the named account. Only postings made directly on the
// account are listed, so the final running balance excludes descendant activity.
func Statement(l *ledger.Ledger, name string) (*AccountStatement, error) {
	acc, ok := l.GetAccount(name)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownAccount, name)
	}

	stmt := &AccountStatement{
		Account: acc.Name,
		Lines:   make([]StatementLine, 0, len(acc.Postings)),
	}

	balance := decimal.Zero
	for _, p := range acc.Postings {
		txn := p.Transaction
		line := StatementLine{
			ID:         txn.ID,
			Date:       txn.Date,
			Out:        decimal.Zero,
			In:         decimal.Zero,
			Comment:    txn.Comment,
			HasComment: txn.HasComment,
		}

		switch p.Side {
		case ledger.SideFrom:
			line.Out = txn.Amount
		case ledger.SideTo:
			line.In = txn.Amount
		}

		balance = balance.Add(p.Delta())
		line.Balance = balance
		stmt.Lines = append(stmt.Lines, line)
	}

	return stmt, nil
}
