package services

import (
	"context"

	"github.com/SscSPs/bank_account_manager/internal/core/domain"
	"github.com/SscSPs/bank_account_manager/internal/dto"
	"github.com/shopspring/decimal"
)

// AccountReaderSvc defines read operations for account data
type AccountReaderSvc interface {
	// GetAccountByID retrieves a specific account by its unique identifier.
	GetAccountByID(ctx context.Context, accountID string) (*domain.Account, error)

	// ListAccounts retrieves every account, ordered by account ID.
	ListAccounts(ctx context.Context) ([]domain.Account, error)

	// CheckBalance returns the current balance of an account.
	CheckBalance(ctx context.Context, accountID string) (decimal.Decimal, error)
}

// AccountWriterSvc defines write operations for account data
type AccountWriterSvc interface {
	// CreateAccount validates the request and registers a new account.
	CreateAccount(ctx context.Context, req dto.CreateAccountRequest) (*domain.Account, error)
}

// AccountOperationsSvc defines the balance-changing operations. Each successful
// change is recorded in the account's history together with the balance update.
type AccountOperationsSvc interface {
	// Deposit credits amount to the account.
	Deposit(ctx context.Context, accountID string, amount decimal.Decimal) (*domain.Posting, error)

	// Withdraw attempts to debit amount. A refused withdrawal is reported through
	// the outcome rather than as an error.
	Withdraw(ctx context.Context, accountID string, amount decimal.Decimal) (*domain.WithdrawalOutcome, error)

	// ApplySavingsInterest posts interest to a savings account. A nil rate uses the configured rate.
	ApplySavingsInterest(ctx context.Context, accountID string, rate *decimal.Decimal) (*domain.Posting, error)

	// ApplyMaturityInterest credits maturity interest to a fixed deposit account once.
	// The returned posting is not applied when the account has not matured or was already credited.
	ApplyMaturityInterest(ctx context.Context, accountID string, rate *decimal.Decimal) (*domain.Posting, error)
}

// TransactionReaderSvc defines read access to account history.
type TransactionReaderSvc interface {
	// ListTransactions returns a page of history, newest first.
	ListTransactions(ctx context.Context, accountID string, params dto.ListTransactionsParams) (*dto.ListTransactionsResponse, error)
}

// AccountSvcFacade combines all account-related service interfaces
// This is a facade for clients that need access to all operations
type AccountSvcFacade interface {
	AccountReaderSvc
	AccountWriterSvc
	AccountOperationsSvc
	TransactionReaderSvc
}
