// Package ast declares the event types exchanged between a document reader and the ledger.
//
// A zaster document is consumed as a flat, ordered stream of elements. Each Element carries
// its kind ("account", "transaction", or anything else), the raw attribute values exactly as
// they appeared in the document, and the position it was read from. The ledger package
// interprets elements; readers such as the parser package only produce them.
package ast

import (
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Element kinds understood by the ledger. Other kinds are carried through but ignored.
const (
	KindAccount     = "account"
	KindTransaction = "transaction"
)

// Attributes maps attribute names to their raw text values.
type Attributes map[string]string

// Get returns the value of the named attribute, or "" when it is absent.
func (a Attributes) Get(name string) string {
	return a[name]
}

// Has reports whether the attribute is present, even if empty.
func (a Attributes) Has(name string) bool {
	_, ok := a[name]
	return ok
}

// Names returns the attribute names in lexical order.
func (a Attributes) Names() []string {
	names := maps.Keys(a)
	slices.Sort(names)
	return names
}

// Element is a single ingestion event: one defining element of a document.
type Element struct {
	Kind  string
	Attrs Attributes
	Pos   Position
}

// NewElement creates an element of the given kind with the given attributes.
func NewElement(kind string, attrs Attributes) Element {
	if attrs == nil {
		attrs = Attributes{}
	}
	return Element{Kind: kind, Attrs: attrs}
}

// NewAccount creates an account-definition element. An empty parent is omitted.
func NewAccount(name, parent string) Element {
	attrs := Attributes{"name": name}
	if parent != "" {
		attrs["parent"] = parent
	}
	return NewElement(KindAccount, attrs)
}

// NewTransaction creates a transaction-definition element with all required attributes set.
func NewTransaction(id, date, amount, from, to string) Element {
	return NewElement(KindTransaction, Attributes{
		"id":     id,
		"date":   date,
		"amount": amount,
		"from":   from,
		"to":     to,
	})
}

// WithComment returns a copy of the element with a comment attribute.
func (e Element) WithComment(comment string) Element {
	return e.With("comment", comment)
}

// With returns a copy of the element with the attribute set.
func (e Element) With(name, value string) Element {
	attrs := make(Attributes, len(e.Attrs)+1)
	maps.Copy(attrs, e.Attrs)
	attrs[name] = value
	e.Attrs = attrs
	return e
}

// Without returns a copy of the element with the attribute removed.
func (e Element) Without(name string) Element {
	attrs := maps.Clone(e.Attrs)
	delete(attrs, name)
	e.Attrs = attrs
	return e
}

// At returns a copy of the element positioned at pos.
func (e Element) At(pos Position) Element {
	e.Pos = pos
	return e
}
