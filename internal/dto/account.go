package dto

import (
	"time"

	"github.com/SscSPs/bank_account_manager/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateAccountRequest defines the data needed to create a new account.
// Variant parameters that do not apply to the requested variant are ignored;
// omitted ones fall back to the configured defaults.
type CreateAccountRequest struct {
	AccountID      string                `json:"accountID" binding:"required,numeric,max=32"`
	Variant        domain.AccountVariant `json:"variant" binding:"required,oneof=SAVINGS CURRENT FIXED_DEPOSIT"`
	InitialBalance *decimal.Decimal      `json:"initialBalance" binding:"required,gte=0"`
	MinimumBalance *decimal.Decimal      `json:"minimumBalance,omitempty" binding:"omitempty,gte=0"` // Savings only
	OverdraftLimit *decimal.Decimal      `json:"overdraftLimit,omitempty" binding:"omitempty,gte=0"` // Current only
	MaturityDate   *time.Time            `json:"maturityDate,omitempty"`                             // Fixed deposit only
}

// AccountResponse defines the data returned for an account.
type AccountResponse struct {
	AccountID        string                `json:"accountID"`
	Variant          domain.AccountVariant `json:"variant"`
	VariantLabel     string                `json:"variantLabel"`
	Balance          decimal.Decimal       `json:"balance"`
	CreatedAt        time.Time             `json:"createdAt"`
	TransactionCount int                   `json:"transactionCount"`
	MinimumBalance   *decimal.Decimal      `json:"minimumBalance,omitempty"`
	OverdraftLimit   *decimal.Decimal      `json:"overdraftLimit,omitempty"`
	MaturityDate     *time.Time            `json:"maturityDate,omitempty"`
	IsMatured        *bool                 `json:"isMatured,omitempty"`
	InterestApplied  *bool                 `json:"maturityInterestApplied,omitempty"`
}

// ToAccountResponse converts a domain.Account to AccountResponse DTO
func ToAccountResponse(acc *domain.Account) AccountResponse {
	res := AccountResponse{
		AccountID:        acc.AccountID,
		Variant:          acc.Variant(),
		VariantLabel:     acc.Variant().Label(),
		Balance:          acc.Balance(),
		CreatedAt:        acc.CreatedAt,
		TransactionCount: acc.TransactionCount(),
	}

	switch t := acc.Terms().(type) {
	case domain.SavingsTerms:
		res.MinimumBalance = &t.MinimumBalance
	case domain.CurrentTerms:
		res.OverdraftLimit = &t.OverdraftLimit
	case domain.FixedDepositTerms:
		matured := acc.IsMatured()
		res.MaturityDate = &t.MaturityDate
		res.IsMatured = &matured
		res.InterestApplied = &t.Matured
	}
	return res
}

// ToListAccountResponse converts a slice of domain.Account to a slice of AccountResponse DTOs
func ToListAccountResponse(accounts []domain.Account) []AccountResponse {
	res := make([]AccountResponse, len(accounts))
	for i := range accounts {
		res[i] = ToAccountResponse(&accounts[i])
	}
	return res
}

// AccountBalanceResponse defines the data returned for an account balance query.
type AccountBalanceResponse struct {
	AccountID string          `json:"accountID"`
	Balance   decimal.Decimal `json:"balance"`
}

// ListAccountsResponse wraps the list of accounts.
type ListAccountsResponse struct {
	Accounts []AccountResponse `json:"accounts"`
}
