package ledger

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"

	"github.com/robinvdvleuten/zaster/ast"
)

// Journal owns the transactions of a ledger. It resolves account references through the
// registry and books every accepted transaction immediately.
type Journal struct {
	registry     *Registry
	transactions map[string]*Transaction
	order        []string
}

// NewJournal creates an empty journal resolving accounts through registry.
func NewJournal(registry *Registry) *Journal {
	return &Journal{
		registry:     registry,
		transactions: make(map[string]*Transaction),
	}
}

// Define validates and stores a transaction, then propagates its amount through the
// account hierarchy. Checks run in a fixed order so the first failing field is reported.
func (j *Journal) Define(fields TransactionFields) (*Transaction, error) {
	for _, f := range fields.required() {
		if f.value == "" {
			return nil, &MissingFieldError{Element: ast.KindTransaction, Field: f.name, Pos: fields.Pos}
		}
	}

	if existing, exists := j.transactions[fields.ID]; exists {
		return nil, &DuplicateError{
			Element: ast.KindTransaction,
			Name:    fields.ID,
			Pos:     fields.Pos,
			First:   existing.Pos,
		}
	}

	from, err := j.resolve(fields, "from", fields.From)
	if err != nil {
		return nil, err
	}

	to, err := j.resolve(fields, "to", fields.To)
	if err != nil {
		return nil, err
	}

	amount, err := parseAmount(fields.Amount)
	if err != nil {
		return nil, &InvalidValueError{
			Element:    ast.KindTransaction,
			ID:         fields.ID,
			Field:      "amount",
			Value:      fields.Amount,
			Underlying: err,
			Pos:        fields.Pos,
		}
	}

	txn := &Transaction{
		ID:         fields.ID,
		Date:       fields.Date,
		Amount:     amount,
		From:       from,
		To:         to,
		Comment:    fields.Comment,
		HasComment: fields.HasComment,
		Pos:        fields.Pos,
	}
	j.transactions[txn.ID] = txn
	j.order = append(j.order, txn.ID)

	apply(txn)

	return txn, nil
}

// maxAmountExponent bounds the decimal exponent of an amount. Beyond it, rescaling during
// addition would allocate digits proportional to the exponent.
const maxAmountExponent = 64

// parseAmount reads a decimal amount, tolerating surrounding whitespace.
func parseAmount(text string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(strings.TrimSpace(text))
	if err != nil {
		return decimal.Decimal{}, err
	}
	if exp := amount.Exponent(); exp > maxAmountExponent || exp < -maxAmountExponent {
		return decimal.Decimal{}, fmt.Errorf("exponent %d out of range [-%d, %d]", exp, maxAmountExponent, maxAmountExponent)
	}
	return amount, nil
}

// resolve looks up an endpoint account, attributing a failure to the transaction field.
func (j *Journal) resolve(fields TransactionFields, field, name string) (*Account, error) {
	account, ok := j.registry.Get(name)
	if !ok {
		return nil, &UnknownReferenceError{
			Element:   ast.KindTransaction,
			ID:        fields.ID,
			Field:     field,
			Reference: name,
			Pos:       fields.Pos,
		}
	}
	return account, nil
}

// Get returns the transaction with the given id.
func (j *Journal) Get(id string) (*Transaction, bool) {
	txn, ok := j.transactions[id]
	return txn, ok
}

// Len returns the number of transactions.
func (j *Journal) Len() int {
	return len(j.order)
}

// IDs returns the transaction ids in definition order.
func (j *Journal) IDs() []string {
	return slices.Clone(j.order)
}

// All returns the transactions in definition order.
func (j *Journal) All() []*Transaction {
	txns := make([]*Transaction, len(j.order))
	for i, id := range j.order {
		txns[i] = j.transactions[id]
	}
	return txns
}
