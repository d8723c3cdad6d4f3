package ledger

import (
	"golang.org/x/exp/slices"

	"github.com/robinvdvleuten/zaster/ast"
)

// Registry owns the accounts of a ledger and their hierarchy.
// Accounts are never removed and parents must be defined before their children.
type Registry struct {
	accounts  map[string]*Account
	positions map[string]ast.Position
	order     []string
}

// NewRegistry creates an empty account registry.
func NewRegistry() *Registry {
	return &Registry{
		accounts:  make(map[string]*Account),
		positions: make(map[string]ast.Position),
	}
}

// Define creates the named account below parent. An empty parent creates a root account.
func (r *Registry) Define(name, parent string, pos ast.Position) (*Account, error) {
	if name == "" {
		return nil, &MissingFieldError{Element: ast.KindAccount, Field: "name", Pos: pos}
	}

	if _, exists := r.accounts[name]; exists {
		return nil, &DuplicateError{
			Element: ast.KindAccount,
			Name:    name,
			Pos:     pos,
			First:   r.positions[name],
		}
	}

	var parentAccount *Account
	if parent != "" {
		p, ok := r.accounts[parent]
		if !ok {
			return nil, &UnknownReferenceError{
				Element:   ast.KindAccount,
				ID:        name,
				Field:     "parent",
				Reference: parent,
				Pos:       pos,
			}
		}
		parentAccount = p
	}

	account := newAccount(name, parentAccount)
	r.accounts[name] = account
	r.positions[name] = pos
	r.order = append(r.order, name)

	return account, nil
}

// Lookup returns the named account or an UnknownReferenceError.
func (r *Registry) Lookup(name string) (*Account, error) {
	if account, ok := r.accounts[name]; ok {
		return account, nil
	}
	return nil, &UnknownReferenceError{Element: ast.KindAccount, Reference: name}
}

// Get returns the named account.
func (r *Registry) Get(name string) (*Account, bool) {
	account, ok := r.accounts[name]
	return account, ok
}

// Len returns the number of accounts.
func (r *Registry) Len() int {
	return len(r.order)
}

// Names returns the account names in definition order.
func (r *Registry) Names() []string {
	return slices.Clone(r.order)
}

// SortedNames returns the account names in lexical order.
func (r *Registry) SortedNames() []string {
	names := slices.Clone(r.order)
	slices.Sort(names)
	return names
}

// All returns the accounts in definition order.
func (r *Registry) All() []*Account {
	accounts := make([]*Account, len(r.order))
	for i, name := range r.order {
		accounts[i] = r.accounts[name]
	}
	return accounts
}

// Roots returns the accounts without a parent, in definition order.
func (r *Registry) Roots() []*Account {
	var roots []*Account
	for _, name := range r.order {
		if account := r.accounts[name]; account.IsRoot() {
			roots = append(roots, account)
		}
	}
	return roots
}

// Children returns the direct children of the named account, in definition order.
func (r *Registry) Children(name string) []*Account {
	var children []*Account
	for _, n := range r.order {
		if account := r.accounts[n]; account.ParentName() == name && account.Parent != nil {
			children = append(children, account)
		}
	}
	return children
}
