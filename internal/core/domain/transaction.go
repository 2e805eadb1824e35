package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionKind is the free-form label of a ledger entry.
type TransactionKind string

const (
	KindInitialDeposit   TransactionKind = "Initial Deposit"
	KindDeposit          TransactionKind = "Deposit"
	KindWithdrawal       TransactionKind = "Withdrawal"
	KindInterestCredit   TransactionKind = "Interest Credit"
	KindMaturityInterest TransactionKind = "Maturity Interest"
)

// Transaction represents a single entry in an account's history.
// Records are stored and returned by value; nothing mutates one after it is appended.
type Transaction struct {
	TransactionID string          `json:"transactionID"` // UUID assigned on append
	AccountID     string          `json:"accountID"`
	Kind          TransactionKind `json:"kind"`
	Amount        decimal.Decimal `json:"amount"` // Positive = credit, negative = debit
	Timestamp     time.Time       `json:"timestamp"`
}

// IsCredit reports whether the entry increased the balance.
func (t Transaction) IsCredit() bool {
	return t.Amount.IsPositive()
}

// Posting is the result of a balance-changing service operation.
type Posting struct {
	Account     *Account     // Snapshot taken after the operation
	Transaction *Transaction // Nil when the operation changed nothing
}

// Applied reports whether the operation recorded a transaction.
func (p Posting) Applied() bool {
	return p.Transaction != nil
}
