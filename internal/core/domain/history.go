package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// History is the prepend-only transaction log of one account.
//
// Entries are kept oldest-first in a growable slice and read back from the end,
// so the newest record is always at the logical front. Insertion order is the
// only ordering; the log is never re-sorted or truncated.
type History struct {
	accountID string
	entries   []Transaction
}

// NewHistory creates an empty history owned by the given account.
func NewHistory(accountID string) History {
	return History{accountID: accountID}
}

// Append places a new record at the front of the history and returns it.
// Kind and amount are not validated here.
func (h *History) Append(kind TransactionKind, amount decimal.Decimal, timestamp time.Time) Transaction {
	txn := Transaction{
		TransactionID: uuid.NewString(),
		AccountID:     h.accountID,
		Kind:          kind,
		Amount:        amount,
		Timestamp:     timestamp,
	}
	h.entries = append(h.entries, txn)
	return txn
}

// Len returns the number of records in the history.
func (h *History) Len() int {
	return len(h.entries)
}

// Recent returns the first min(n, Len()) records, newest first.
func (h *History) Recent(n int) []Transaction {
	return h.Page(0, n)
}

// Page returns up to limit records starting offset entries from the front.
func (h *History) Page(offset, limit int) []Transaction {
	if offset < 0 {
		offset = 0
	}
	if limit <= 0 || offset >= len(h.entries) {
		return []Transaction{}
	}

	end := offset + limit
	if end > len(h.entries) {
		end = len(h.entries)
	}

	out := make([]Transaction, 0, end-offset)
	last := len(h.entries) - 1
	for i := offset; i < end; i++ {
		out = append(out, h.entries[last-i])
	}
	return out
}

func (h *History) clone() History {
	entries := make([]Transaction, len(h.entries))
	copy(entries, h.entries)
	return History{accountID: h.accountID, entries: entries}
}
