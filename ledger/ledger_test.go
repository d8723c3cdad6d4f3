package ledger

import (
	"context"
	"errors"
	"testing"

	"github.com/alecthomas/assert/v2"

	"github.com/robinvdvleuten/zaster/ast"
)

func TestLedger_FlatAccounts(t *testing.T) {
	l := process(t, flatFixture()...)

	assert.Equal(t, 3, l.Accounts().Len())
	assert.Equal(t, 3, l.Transactions().Len())

	for _, name := range []string{"Account A", "Account B", "Account C"} {
		acc, _ := l.GetAccount(name)
		assert.Equal(t, 2, len(acc.Transactions()), "%s should take part in two transactions", name)
	}

	checkAccount(t, l, "Account A", "-15", "0", "15")
	checkAccount(t, l, "Account B", "6.50", "10", "3.50")
	checkAccount(t, l, "Account C", "8.50", "8.50", "0")
	checkIdentity(t, l)
}

func TestLedger_BalanceOfParents(t *testing.T) {
	l := process(t, hierarchyFixture()...)

	assert.Equal(t, 11, l.Accounts().Len())
	assert.Equal(t, 4, l.Transactions().Len())

	tests := []struct {
		account  string
		balance  string
		totalIn  string
		totalOut string
	}{
		{"A", "-100", "0", "100"},
		{"A1", "-30", "0", "30"},
		{"A11", "-10", "0", "10"},
		{"A12", "-20", "0", "20"},
		{"A2", "-70", "0", "70"},
		{"A21", "-30", "0", "30"},
		{"A22", "-40", "0", "40"},
		{"B", "100", "100", "0"},
		{"B1", "100", "100", "0"},
		{"B11", "40", "40", "0"},
		{"B12", "60", "60", "0"},
	}

	for _, tt := range tests {
		t.Run(tt.account, func(t *testing.T) {
			checkAccount(t, l, tt.account, tt.balance, tt.totalIn, tt.totalOut)
		})
	}

	checkIdentity(t, l)
}

func TestLedger_AncestorsDoNotReceivePostings(t *testing.T) {
	l := process(t, hierarchyFixture()...)

	for _, name := range []string{"A", "A1", "A2", "B", "B1"} {
		acc, _ := l.GetAccount(name)
		assert.Equal(t, 0, len(acc.Postings), "%s only aggregates descendants", name)
	}

	b11, _ := l.GetAccount("B11")
	assert.Equal(t, []string{"1", "3"}, transactionIDs(b11))
}

func TestLedger_IgnoresUnknownElements(t *testing.T) {
	l := process(t,
		ast.NewElement("zaster", nil),
		ast.NewElement("accounts", nil),
		ast.NewAccount("A", ""),
		ast.NewElement("note", ast.Attributes{"text": "ignored"}),
		ast.NewAccount("B", ""),
		ast.NewTransaction("1", "2016-02-16", "1", "A", "B"),
	)

	assert.Equal(t, 2, l.Accounts().Len())
	assert.Equal(t, 1, l.Transactions().Len())
}

func TestLedger_StopsAtFirstError(t *testing.T) {
	l, err := processErr(t,
		ast.NewAccount("A", ""),
		ast.NewAccount("A", ""),
		ast.NewAccount("B", ""),
	)

	var dup *DuplicateError
	assert.True(t, errors.As(err, &dup))
	_, ok := l.GetAccount("B")
	assert.False(t, ok, "elements after the first error must not be processed")
}

func TestLedger_HandleElement(t *testing.T) {
	ctx := context.Background()
	l := New()

	assert.NoError(t, l.HandleElement(ctx, ast.NewAccount("A", "")))
	assert.NoError(t, l.HandleElement(ctx, ast.NewAccount("B", "")))
	assert.NoError(t, l.HandleElement(ctx, ast.NewTransaction("t1", "2024-01-01", "2.5", "A", "B")))

	txn, ok := l.GetTransaction("t1")
	assert.True(t, ok)
	assert.Equal(t, "A", txn.From.Name)
	assert.Equal(t, "B", txn.To.Name)
	assertDecimal(t, "2.5", txn.Amount, "amount")
}

func TestLedger_MustProcessPanics(t *testing.T) {
	defer func() {
		r := recover()
		assert.True(t, r != nil, "expected a panic")
	}()

	New().MustProcess(context.Background(), []ast.Element{ast.NewAccount("", "")})
}

func TestLedger_SiblingOrderIndependence(t *testing.T) {
	accounts := []ast.Element{
		ast.NewAccount("A", ""),
		ast.NewAccount("A1", "A"),
		ast.NewAccount("A2", "A"),
		ast.NewAccount("B", ""),
		ast.NewAccount("B1", "B"),
		ast.NewAccount("B2", "B"),
	}
	txns := []ast.Element{
		ast.NewTransaction("1", "2024-01-01", "12.34", "A1", "A2"),
		ast.NewTransaction("2", "2024-01-01", "7.5", "B1", "B2"),
		ast.NewTransaction("3", "2024-01-02", "-3", "A2", "A1"),
		ast.NewTransaction("4", "2024-01-02", "100", "B2", "B1"),
	}
	reversed := []ast.Element{txns[3], txns[2], txns[1], txns[0]}

	forward := process(t, append(append([]ast.Element{}, accounts...), txns...)...)
	backward := process(t, append(append([]ast.Element{}, accounts...), reversed...)...)

	for _, name := range forward.Accounts().Names() {
		f, _ := forward.GetAccount(name)
		b, _ := backward.GetAccount(name)
		assert.True(t, f.Balance.Equal(b.Balance), "%s balance", name)
		assert.True(t, f.TotalIn.Equal(b.TotalIn), "%s total in", name)
		assert.True(t, f.TotalOut.Equal(b.TotalOut), "%s total out", name)
	}
}

func transactionIDs(acc *Account) []string {
	var ids []string
	for _, txn := range acc.Transactions() {
		ids = append(ids, txn.ID)
	}
	return ids
}
