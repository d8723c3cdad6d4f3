package ledger

import (
	"fmt"
	"testing"

	"github.com/alecthomas/assert/v2"

	"github.com/robinvdvleuten/zaster/ast"
)

func TestPropagation_NegativeAmountInvertsDirection(t *testing.T) {
	l := process(t,
		ast.NewAccount("P", ""),
		ast.NewAccount("X", "P"),
		ast.NewAccount("Y", ""),
		ast.NewTransaction("1", "2024-01-01", "-5", "X", "Y"),
	)

	checkAccount(t, l, "X", "5", "5", "0")
	checkAccount(t, l, "P", "5", "5", "0")
	checkAccount(t, l, "Y", "-5", "0", "5")
	checkIdentity(t, l)
}

func TestPropagation_ZeroAmount(t *testing.T) {
	l := process(t,
		ast.NewAccount("X", ""),
		ast.NewAccount("Y", ""),
		ast.NewTransaction("1", "2024-01-01", "0.00", "X", "Y"),
	)

	checkAccount(t, l, "X", "0", "0", "0")
	checkAccount(t, l, "Y", "0", "0", "0")

	x, _ := l.GetAccount("X")
	assert.Equal(t, 1, len(x.Postings), "zero amounts are still recorded")
}

func TestPropagation_SelfTransfer(t *testing.T) {
	l := process(t,
		ast.NewAccount("P", ""),
		ast.NewAccount("X", "P"),
		ast.NewTransaction("1", "2024-01-01", "7.25", "X", "X"),
	)

	checkAccount(t, l, "X", "0", "7.25", "7.25")
	checkAccount(t, l, "P", "0", "7.25", "7.25")

	x, _ := l.GetAccount("X")
	assert.Equal(t, 2, len(x.Postings))
	assert.Equal(t, SideFrom, x.Postings[0].Side)
	assert.Equal(t, SideTo, x.Postings[1].Side)

	txn, _ := l.GetTransaction("1")
	assert.True(t, txn.IsSelfTransfer())
	assert.Equal(t, SideFrom|SideTo, txn.SideOf("X"))
}

func TestPropagation_Conservation(t *testing.T) {
	// Two chains of depth five; a transfer between the leaves moves the amount
	// through every ancestor on both sides.
	var elements []ast.Element
	for _, root := range []string{"L", "R"} {
		parent := ""
		for depth := 0; depth < 5; depth++ {
			name := fmt.Sprintf("%s%d", root, depth)
			elements = append(elements, ast.NewAccount(name, parent))
			parent = name
		}
	}
	elements = append(elements, ast.NewTransaction("1", "2024-01-01", "42.42", "L4", "R4"))

	l := process(t, elements...)

	for depth := 0; depth < 5; depth++ {
		checkAccount(t, l, fmt.Sprintf("L%d", depth), "-42.42", "0", "42.42")
		checkAccount(t, l, fmt.Sprintf("R%d", depth), "42.42", "42.42", "0")
	}
}

func TestPropagation_TransferWithinSubtree(t *testing.T) {
	l := process(t,
		ast.NewAccount("Household", ""),
		ast.NewAccount("Cash", "Household"),
		ast.NewAccount("Bank", "Household"),
		ast.NewTransaction("1", "2024-01-01", "50", "Bank", "Cash"),
	)

	checkAccount(t, l, "Bank", "-50", "0", "50")
	checkAccount(t, l, "Cash", "50", "50", "0")
	// The common ancestor sees both sides: the flows net out in the balance only.
	checkAccount(t, l, "Household", "0", "50", "50")
}

func TestPosting_Delta(t *testing.T) {
	l := process(t, flatFixture()...)

	b, _ := l.GetAccount("Account B")
	assert.Equal(t, 2, len(b.Postings))

	assert.Equal(t, SideTo, b.Postings[0].Side)
	assertDecimal(t, "10", b.Postings[0].Delta(), "first delta")

	assert.Equal(t, SideFrom, b.Postings[1].Side)
	assertDecimal(t, "-3.50", b.Postings[1].Delta(), "second delta")
}

func TestTransaction_SideOf(t *testing.T) {
	l := process(t, flatFixture()...)
	txn, _ := l.GetTransaction("3")

	assert.Equal(t, SideFrom, txn.SideOf("Account B"))
	assert.Equal(t, SideTo, txn.SideOf("Account C"))
	assert.Equal(t, SideNone, txn.SideOf("Account A"))
	assert.False(t, txn.IsSelfTransfer())
}

func TestSide_String(t *testing.T) {
	assert.Equal(t, "from", SideFrom.String())
	assert.Equal(t, "to", SideTo.String())
	assert.Equal(t, "from+to", (SideFrom | SideTo).String())
	assert.Equal(t, "none", SideNone.String())
}
