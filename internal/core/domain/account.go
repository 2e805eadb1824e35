package domain

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

// AccountVariant identifies which withdrawal policy an account follows.
type AccountVariant string

const (
	Savings      AccountVariant = "SAVINGS"
	Current      AccountVariant = "CURRENT"
	FixedDeposit AccountVariant = "FIXED_DEPOSIT"
)

// IsValid reports whether v is one of the known variants.
func (v AccountVariant) IsValid() bool {
	switch v {
	case Savings, Current, FixedDeposit:
		return true
	}
	return false
}

// Label returns the display name of the variant.
func (v AccountVariant) Label() string {
	switch v {
	case Savings:
		return "Savings Account"
	case Current:
		return "Current Account"
	case FixedDeposit:
		return "Fixed Deposit Account"
	}
	return "Bank Account"
}

// Terms is the variant-specific payload of an Account.
// The implementations in this package are the complete set.
type Terms interface {
	Variant() AccountVariant
	validate() error
}

// SavingsTerms holds the parameters of a savings account.
type SavingsTerms struct {
	MinimumBalance decimal.Decimal `json:"minimumBalance"` // Hard floor for withdrawals
}

func (SavingsTerms) Variant() AccountVariant { return Savings }

func (t SavingsTerms) validate() error {
	if t.MinimumBalance.IsNegative() {
		return errors.New("minimum balance cannot be negative")
	}
	return nil
}

// CurrentTerms holds the parameters of a current account.
type CurrentTerms struct {
	OverdraftLimit decimal.Decimal `json:"overdraftLimit"` // Balance may reach -OverdraftLimit
}

func (CurrentTerms) Variant() AccountVariant { return Current }

func (t CurrentTerms) validate() error {
	if t.OverdraftLimit.IsNegative() {
		return errors.New("overdraft limit cannot be negative")
	}
	return nil
}

// FixedDepositTerms holds the parameters of a fixed deposit account.
type FixedDepositTerms struct {
	MaturityDate time.Time `json:"maturityDate"`
	Matured      bool      `json:"matured"` // Set once maturity interest has been credited
}

func (FixedDepositTerms) Variant() AccountVariant { return FixedDeposit }

func (t FixedDepositTerms) validate() error {
	if t.MaturityDate.IsZero() {
		return errors.New("maturity date is required")
	}
	return nil
}

// Account represents a bank account within the core domain.
//
// Balance and history are only reachable through methods, so every change to the
// balance goes through Deposit, Withdraw or one of the interest operations.
// Account is not safe for concurrent use; the registry serialises access.
type Account struct {
	AccountID string
	CreatedAt time.Time

	balance decimal.Decimal
	history History
	terms   Terms
	clock   Clock
}

// NewAccount builds an account of the variant described by terms.
// A positive initial balance is recorded as a single "Initial Deposit" entry.
// A nil clock falls back to SystemClock.
func NewAccount(accountID string, initialBalance decimal.Decimal, terms Terms, clock Clock) *Account {
	if clock == nil {
		clock = SystemClock
	}
	acc := &Account{
		AccountID: accountID,
		CreatedAt: clock.Now(),
		balance:   initialBalance,
		history:   NewHistory(accountID),
		terms:     terms,
		clock:     clock,
	}
	if initialBalance.IsPositive() {
		acc.RecordTransaction(KindInitialDeposit, initialBalance)
	}
	return acc
}

// Validate checks the structural rules of the account.
func (a *Account) Validate() error {
	if a.AccountID == "" {
		return errors.New("account ID cannot be empty")
	}
	if a.terms == nil {
		return errors.New("account variant is required")
	}
	if a.balance.IsNegative() {
		return errors.New("initial balance cannot be negative")
	}
	return a.terms.validate()
}

// Variant returns the account's variant.
func (a *Account) Variant() AccountVariant {
	if a.terms == nil {
		return ""
	}
	return a.terms.Variant()
}

// Terms returns a copy of the variant-specific parameters.
func (a *Account) Terms() Terms {
	return a.terms
}

// Balance returns the current balance.
func (a *Account) Balance() decimal.Decimal {
	return a.balance
}

// AcceptsDeposits reports whether Deposit can change the balance.
func (a *Account) AcceptsDeposits() bool {
	_, fixed := a.terms.(FixedDepositTerms)
	return !fixed
}

// Deposit adds a positive amount to the balance. Non-positive amounts are ignored,
// and fixed deposit accounts ignore every deposit after creation.
// Deposit never records history; callers pair it with RecordTransaction.
func (a *Account) Deposit(amount decimal.Decimal) {
	if !a.AcceptsDeposits() || !amount.IsPositive() {
		return
	}
	a.balance = a.balance.Add(amount)
}

// Withdraw applies the variant's withdrawal policy and reports whether the
// balance was reduced. A false result is a business outcome, not a fault;
// WithdrawalRejection explains it. Withdraw never records history.
func (a *Account) Withdraw(amount decimal.Decimal) bool {
	if a.WithdrawalRejection(amount) != RejectionNone {
		return false
	}
	a.balance = a.balance.Sub(amount)
	return true
}

// RecordTransaction appends an entry stamped with the account clock's current time.
func (a *Account) RecordTransaction(kind TransactionKind, amount decimal.Decimal) Transaction {
	return a.history.Append(kind, amount, a.clock.Now())
}

// RecentTransactions returns up to n of the newest history entries, newest first.
func (a *Account) RecentTransactions(n int) []Transaction {
	return a.history.Recent(n)
}

// TransactionPage returns up to limit entries starting offset entries from the newest.
func (a *Account) TransactionPage(offset, limit int) []Transaction {
	return a.history.Page(offset, limit)
}

// TransactionCount returns the length of the history.
func (a *Account) TransactionCount() int {
	return a.history.Len()
}

// IsMatured reports whether a fixed deposit account has reached its maturity date.
// It is recomputed from the clock on every call. Other variants never mature.
func (a *Account) IsMatured() bool {
	t, ok := a.terms.(FixedDepositTerms)
	if !ok {
		return false
	}
	return !a.clock.Now().Before(t.MaturityDate)
}

// CalculateInterest credits balance*rate to a savings account and records an
// "Interest Credit" entry. Every call posts interest again, so repeated calls
// compound; guarding against double posting is up to the caller.
// The boolean is false for non-savings accounts, which are left unchanged.
func (a *Account) CalculateInterest(rate decimal.Decimal) (decimal.Decimal, bool) {
	if _, ok := a.terms.(SavingsTerms); !ok {
		return decimal.Zero, false
	}
	interest := a.balance.Mul(rate)
	a.balance = a.balance.Add(interest)
	a.RecordTransaction(KindInterestCredit, interest)
	return interest, true
}

// ApplyMaturityInterest credits balance*rate to a matured fixed deposit account,
// records a "Maturity Interest" entry and marks the account as matured.
// It applies at most once; the boolean reports whether interest was credited.
func (a *Account) ApplyMaturityInterest(rate decimal.Decimal) (decimal.Decimal, bool) {
	t, ok := a.terms.(FixedDepositTerms)
	if !ok || t.Matured || !a.IsMatured() {
		return decimal.Zero, false
	}
	interest := a.balance.Mul(rate)
	a.balance = a.balance.Add(interest)
	a.RecordTransaction(KindMaturityInterest, interest)
	t.Matured = true
	a.terms = t
	return interest, true
}

// Clone returns a deep copy of the account, sharing only the clock.
func (a *Account) Clone() *Account {
	cp := *a
	cp.history = a.history.clone()
	return &cp
}
