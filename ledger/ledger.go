// Package ledger provides the validation and aggregation engine for zaster documents.
// It consumes account and transaction definitions in document order, checks them as
// they arrive, and books every transaction on both endpoint accounts and all of their
// ancestors in a single pass.
//
// The ledger validates that:
//   - Every account name and transaction id is defined only once
//   - Parents are defined before their children
//   - Transactions only reference accounts that already exist
//   - Transactions carry an id, date, amount, source and destination
//   - Amounts are decimal numbers
//
// Amounts use decimal arithmetic, so Balance == TotalIn - TotalOut holds exactly for
// every account.
//
// Example usage:
//
//	l := ledger.New()
//	if err := parser.ParseBytes(ctx, "books.xml", data, l); err != nil {
//	    var dup *ledger.DuplicateError
//	    if errors.As(err, &dup) {
//	        // ...
//	    }
//	}
//	acc, _ := l.GetAccount("Household")
//	fmt.Println(acc.Balance)
package ledger

import (
	"context"
	"fmt"

	"github.com/robinvdvleuten/zaster/ast"
	"github.com/robinvdvleuten/zaster/telemetry"
)

// Ledger is the ingestion sink for one document. It owns an account registry and a
// transaction journal, and processes elements strictly in the order they are handed in.
// The first invalid element aborts ingestion; a Ledger that returned an error must be
// discarded.
//
// A Ledger is not safe for concurrent use.
type Ledger struct {
	accounts     *Registry
	transactions *Journal
}

// New creates a new empty ledger.
func New() *Ledger {
	accounts := NewRegistry()
	return &Ledger{
		accounts:     accounts,
		transactions: NewJournal(accounts),
	}
}

// HandleElement routes a single ingestion event. Elements of unknown kinds are ignored.
func (l *Ledger) HandleElement(ctx context.Context, el ast.Element) error {
	switch el.Kind {
	case ast.KindAccount:
		_, err := l.DefineAccount(ctx, el.Attrs.Get("name"), el.Attrs.Get("parent"), el.Pos)
		return err
	case ast.KindTransaction:
		_, err := l.DefineTransaction(ctx, transactionFieldsFromElement(el))
		return err
	default:
		return nil
	}
}

// DefineAccount registers an account. The parent, if not empty, must already exist.
func (l *Ledger) DefineAccount(ctx context.Context, name, parent string, pos ast.Position) (*Account, error) {
	return l.accounts.Define(name, parent, pos)
}

// DefineTransaction validates and books a transaction.
func (l *Ledger) DefineTransaction(ctx context.Context, fields TransactionFields) (*Transaction, error) {
	return l.transactions.Define(fields)
}

// Process handles a slice of elements in order and stops at the first error.
func (l *Ledger) Process(ctx context.Context, elements []ast.Element) error {
	timer := telemetry.StartTimer(ctx, fmt.Sprintf("ledger.processing (%d elements)", len(elements)))
	defer timer.End()

	for _, el := range elements {
		if err := l.HandleElement(ctx, el); err != nil {
			return err
		}
	}

	return nil
}

// MustProcess is like Process but panics on error.
func (l *Ledger) MustProcess(ctx context.Context, elements []ast.Element) {
	if err := l.Process(ctx, elements); err != nil {
		panic(err)
	}
}

// Accounts returns the account registry.
func (l *Ledger) Accounts() *Registry {
	return l.accounts
}

// Transactions returns the transaction journal.
func (l *Ledger) Transactions() *Journal {
	return l.transactions
}

// GetAccount returns an account by name.
func (l *Ledger) GetAccount(name string) (*Account, bool) {
	return l.accounts.Get(name)
}

// GetTransaction returns a transaction by id.
func (l *Ledger) GetTransaction(id string) (*Transaction, bool) {
	return l.transactions.Get(id)
}
