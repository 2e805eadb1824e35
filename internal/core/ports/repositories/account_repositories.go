package repositories

import (
	"context"

	"github.com/SscSPs/bank_account_manager/internal/core/domain"
)

// AccountReader defines read operations for account data.
// Returned accounts are snapshots; changing them does not affect stored state.
type AccountReader interface {
	// FindAccountByID retrieves a specific account by its unique identifier.
	FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error)

	// ListAccounts retrieves every registered account in no particular order.
	ListAccounts(ctx context.Context) ([]domain.Account, error)
}

// AccountWriter defines write operations for account data
type AccountWriter interface {
	// SaveAccount registers a new account. It fails with apperrors.ErrDuplicate
	// if the identifier is taken, leaving the registry unchanged.
	SaveAccount(ctx context.Context, account *domain.Account) error

	// UpdateAccount runs fn against the stored account while holding its exclusive lock.
	// Every change fn makes, balance and history alike, becomes visible to readers at once.
	UpdateAccount(ctx context.Context, accountID string, fn func(*domain.Account) error) error
}

// AccountRepositoryFacade combines all account-related repository interfaces
// This is a facade for clients that need access to all operations
type AccountRepositoryFacade interface {
	AccountReader
	AccountWriter
}
