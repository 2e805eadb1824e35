package domain

import "github.com/shopspring/decimal"

// RejectionReason names the rule a withdrawal would break.
type RejectionReason string

const (
	RejectionNone              RejectionReason = ""
	RejectionNonPositiveAmount RejectionReason = "NON_POSITIVE_AMOUNT"
	RejectionMinimumBalance    RejectionReason = "MINIMUM_BALANCE"
	RejectionOverdraftLimit    RejectionReason = "OVERDRAFT_LIMIT"
	RejectionNotMatured        RejectionReason = "NOT_MATURED"
	RejectionInsufficientFunds RejectionReason = "INSUFFICIENT_FUNDS"
	RejectionUnknownVariant    RejectionReason = "UNKNOWN_VARIANT"
)

// WithdrawalRejection evaluates the withdrawal policy for amount without changing
// the account. It returns RejectionNone when Withdraw(amount) would succeed.
//
//	Savings:      amount > 0 and balance-amount >= minimum balance
//	Current:      amount > 0 and balance-amount >= -overdraft limit
//	FixedDeposit: matured and 0 < amount <= balance
func (a *Account) WithdrawalRejection(amount decimal.Decimal) RejectionReason {
	switch t := a.terms.(type) {
	case SavingsTerms:
		if !amount.IsPositive() {
			return RejectionNonPositiveAmount
		}
		if a.balance.Sub(amount).LessThan(t.MinimumBalance) {
			return RejectionMinimumBalance
		}
	case CurrentTerms:
		if !amount.IsPositive() {
			return RejectionNonPositiveAmount
		}
		if a.balance.Sub(amount).LessThan(t.OverdraftLimit.Neg()) {
			return RejectionOverdraftLimit
		}
	case FixedDepositTerms:
		// Rejected outright before maturity, whatever the amount.
		if !a.IsMatured() {
			return RejectionNotMatured
		}
		if !amount.IsPositive() {
			return RejectionNonPositiveAmount
		}
		if amount.GreaterThan(a.balance) {
			return RejectionInsufficientFunds
		}
	default:
		return RejectionUnknownVariant
	}
	return RejectionNone
}

// WithdrawalOutcome is the result of a withdrawal request made through the
// account service. A rejected withdrawal carries the reason and leaves the
// balance untouched.
type WithdrawalOutcome struct {
	Applied     bool
	Reason      RejectionReason
	Account     *Account     // Snapshot taken after the attempt
	Transaction *Transaction // Set only when Applied
}
