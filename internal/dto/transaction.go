package dto

import (
	"fmt"
	"time"

	"github.com/SscSPs/bank_account_manager/internal/core/domain"
	"github.com/SscSPs/bank_account_manager/internal/utils"
	"github.com/shopspring/decimal"
)

// AmountRequest is the body of deposit and withdrawal requests.
type AmountRequest struct {
	Amount decimal.Decimal `json:"amount" binding:"required,gt=0"`
}

// InterestRequest is the body of interest requests. A nil rate uses the configured default.
type InterestRequest struct {
	Rate *decimal.Decimal `json:"rate,omitempty" binding:"omitempty,gte=0"`
}

// TransactionResponse mirrors domain.Transaction.
type TransactionResponse struct {
	TransactionID string                 `json:"transactionID"`
	AccountID     string                 `json:"accountID"`
	Kind          domain.TransactionKind `json:"kind"`
	Amount        decimal.Decimal        `json:"amount"`
	Timestamp     time.Time              `json:"timestamp"`
}

// ToTransactionResponse converts a domain.Transaction to its DTO.
func ToTransactionResponse(txn domain.Transaction) TransactionResponse {
	return TransactionResponse{
		TransactionID: txn.TransactionID,
		AccountID:     txn.AccountID,
		Kind:          txn.Kind,
		Amount:        txn.Amount,
		Timestamp:     txn.Timestamp,
	}
}

// ToTransactionResponses converts history entries, keeping their order.
func ToTransactionResponses(txns []domain.Transaction) []TransactionResponse {
	res := make([]TransactionResponse, len(txns))
	for i, txn := range txns {
		res[i] = ToTransactionResponse(txn)
	}
	return res
}

// PostingResponse is returned by deposit and interest operations.
type PostingResponse struct {
	AccountID   string               `json:"accountID"`
	Applied     bool                 `json:"applied"`
	Balance     decimal.Decimal      `json:"balance"`
	Transaction *TransactionResponse `json:"transaction,omitempty"`
	Message     string               `json:"message"`
}

// ToPostingResponse builds the response for a posting and its user-facing message.
func ToPostingResponse(p *domain.Posting, message string) PostingResponse {
	res := PostingResponse{
		AccountID: p.Account.AccountID,
		Applied:   p.Applied(),
		Balance:   p.Account.Balance(),
		Message:   message,
	}
	if p.Transaction != nil {
		txn := ToTransactionResponse(*p.Transaction)
		res.Transaction = &txn
	}
	return res
}

// WithdrawalResponse reports the outcome of a withdrawal. A rejected withdrawal
// carries the reason and a message naming the limit that was hit.
type WithdrawalResponse struct {
	AccountID   string                 `json:"accountID"`
	Applied     bool                   `json:"applied"`
	Reason      domain.RejectionReason `json:"reason,omitempty"`
	Balance     decimal.Decimal        `json:"balance"`
	Transaction *TransactionResponse   `json:"transaction,omitempty"`
	Message     string                 `json:"message"`
}

// ToWithdrawalResponse converts a withdrawal outcome for the given amount.
func ToWithdrawalResponse(outcome *domain.WithdrawalOutcome, amount decimal.Decimal) WithdrawalResponse {
	acc := outcome.Account
	res := WithdrawalResponse{
		AccountID: acc.AccountID,
		Applied:   outcome.Applied,
		Reason:    outcome.Reason,
		Balance:   acc.Balance(),
		Message:   WithdrawalMessage(outcome, amount),
	}
	if outcome.Transaction != nil {
		txn := ToTransactionResponse(*outcome.Transaction)
		res.Transaction = &txn
	}
	return res
}

// WithdrawalMessage explains a withdrawal outcome in terms of the account's own limits.
func WithdrawalMessage(outcome *domain.WithdrawalOutcome, amount decimal.Decimal) string {
	acc := outcome.Account
	balance := utils.FormatAmount(acc.Balance())
	if outcome.Applied {
		return fmt.Sprintf("Successfully withdrew %s from account %s", utils.FormatAmount(amount), acc.AccountID)
	}

	switch t := acc.Terms().(type) {
	case domain.SavingsTerms:
		if outcome.Reason == domain.RejectionMinimumBalance {
			return fmt.Sprintf("Withdrawal would violate minimum balance requirement of %s. Current balance: %s",
				utils.FormatAmount(t.MinimumBalance), balance)
		}
	case domain.CurrentTerms:
		if outcome.Reason == domain.RejectionOverdraftLimit {
			return fmt.Sprintf("Withdrawal would exceed overdraft limit of %s. Current balance: %s",
				utils.FormatAmount(t.OverdraftLimit), balance)
		}
	case domain.FixedDepositTerms:
		if outcome.Reason == domain.RejectionNotMatured {
			return fmt.Sprintf("Cannot withdraw from Fixed Deposit before maturity date: %s",
				t.MaturityDate.Format(time.DateOnly))
		}
	}

	if outcome.Reason == domain.RejectionNonPositiveAmount {
		return "Withdrawal amount must be positive"
	}
	return fmt.Sprintf("Insufficient funds. Current balance: %s", balance)
}

// ListTransactionsParams defines query parameters for listing an account's history.
type ListTransactionsParams struct {
	Limit     int     `form:"limit" binding:"omitempty,min=1,max=100"` // Zero means the configured page size
	NextToken *string `form:"nextToken"`
}

// ListTransactionsResponse returns a page of history, newest first.
type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	NextToken    *string               `json:"nextToken,omitempty"`
}
