package ledger

import (
	"context"
	"testing"

	"github.com/alecthomas/assert/v2"
	"github.com/shopspring/decimal"

	"github.com/robinvdvleuten/zaster/ast"
)

// tolerance mirrors the float tolerance used when totals were kept as floats.
var tolerance = decimal.New(1, -6)

func assertDecimal(t *testing.T, want string, got decimal.Decimal, field string) {
	t.Helper()
	expected := decimal.RequireFromString(want)
	assert.True(t, expected.Sub(got).Abs().LessThanOrEqual(tolerance),
		"%s: expected %s, got %s", field, expected, got)
}

func checkAccount(t *testing.T, l *Ledger, name, balance, totalIn, totalOut string) {
	t.Helper()
	acc, ok := l.GetAccount(name)
	assert.True(t, ok, "account %s should exist", name)
	assertDecimal(t, balance, acc.Balance, name+" balance")
	assertDecimal(t, totalIn, acc.TotalIn, name+" total in")
	assertDecimal(t, totalOut, acc.TotalOut, name+" total out")
}

func checkIdentity(t *testing.T, l *Ledger) {
	t.Helper()
	for _, acc := range l.Accounts().All() {
		assert.True(t, acc.Balance.Equal(acc.TotalIn.Sub(acc.TotalOut)),
			"%s: balance %s != in %s - out %s", acc.Name, acc.Balance, acc.TotalIn, acc.TotalOut)
	}
}

func process(t *testing.T, elements ...ast.Element) *Ledger {
	t.Helper()
	l := New()
	assert.NoError(t, l.Process(context.Background(), elements))
	return l
}

func processErr(t *testing.T, elements ...ast.Element) (*Ledger, error) {
	t.Helper()
	l := New()
	err := l.Process(context.Background(), elements)
	assert.Error(t, err)
	return l, err
}

func flatFixture() []ast.Element {
	return []ast.Element{
		ast.NewAccount("Account A", ""),
		ast.NewAccount("Account B", ""),
		ast.NewAccount("Account C", ""),
		ast.NewTransaction("1", "2015-03-22", "10.00", "Account A", "Account B"),
		ast.NewTransaction("2", "2015-03-22", "5.00", "Account A", "Account C"),
		ast.NewTransaction("3", "2015-03-22", "3.50", "Account B", "Account C"),
	}
}

func hierarchyFixture() []ast.Element {
	return []ast.Element{
		ast.NewAccount("A", ""),
		ast.NewAccount("A1", "A"),
		ast.NewAccount("A11", "A1"),
		ast.NewAccount("A12", "A1"),
		ast.NewAccount("A2", "A"),
		ast.NewAccount("A21", "A2"),
		ast.NewAccount("A22", "A2"),
		ast.NewAccount("B", ""),
		ast.NewAccount("B1", "B"),
		ast.NewAccount("B11", "B1"),
		ast.NewAccount("B12", "B1"),
		ast.NewTransaction("1", "2016-02-16", "10.00", "A11", "B11").WithComment("test"),
		ast.NewTransaction("2", "2016-02-16", "20.00", "A12", "B12").WithComment("test"),
		ast.NewTransaction("3", "2016-02-16", "30.00", "A21", "B11").WithComment("test"),
		ast.NewTransaction("4", "2016-02-16", "40.00", "A22", "B12").WithComment("test"),
	}
}
