package ledger

import "github.com/shopspring/decimal"

// apply books a validated transaction: the source account is debited and the destination
// account credited, each together with all of its ancestors.
func apply(txn *Transaction) {
	post(txn.From, txn, SideFrom, txn.Amount.Neg())
	post(txn.To, txn, SideTo, txn.Amount)
}

// post records the transaction on account and walks the parent chain upward, applying
// the same signed delta at every level. Only account itself receives the posting.
func post(account *Account, txn *Transaction, side Side, delta decimal.Decimal) {
	account.Postings = append(account.Postings, &Posting{Transaction: txn, Side: side})

	for a := account; a != nil; a = a.Parent {
		a.credit(delta)
	}
}
