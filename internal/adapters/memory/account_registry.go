package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/SscSPs/bank_account_manager/internal/apperrors"
	"github.com/SscSPs/bank_account_manager/internal/core/domain"
	portsrepo "github.com/SscSPs/bank_account_manager/internal/core/ports/repositories"
)

// accountEntry guards one stored account.
type accountEntry struct {
	mu      sync.RWMutex
	account *domain.Account
}

// AccountRegistry keeps accounts in process memory, keyed by account ID.
//
// The map lock only protects membership; each entry has its own lock, so
// operations on different accounts do not block each other.
type AccountRegistry struct {
	mu      sync.RWMutex
	entries map[string]*accountEntry
}

// NewAccountRegistry creates an empty registry.
func NewAccountRegistry() *AccountRegistry {
	return &AccountRegistry{entries: make(map[string]*accountEntry)}
}

// Ensure AccountRegistry implements the AccountRepositoryFacade interface
var _ portsrepo.AccountRepositoryFacade = (*AccountRegistry)(nil)

func (r *AccountRegistry) entry(accountID string) (*accountEntry, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.entries[accountID]
	return e, ok
}

// SaveAccount stores a private copy of account.
func (r *AccountRegistry) SaveAccount(ctx context.Context, account *domain.Account) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if account == nil {
		return fmt.Errorf("account is nil: %w", apperrors.ErrValidation)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.entries[account.AccountID]; exists {
		return fmt.Errorf("account %s: %w", account.AccountID, apperrors.ErrDuplicate)
	}
	r.entries[account.AccountID] = &accountEntry{account: account.Clone()}
	return nil
}

func (r *AccountRegistry) FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	e, ok := r.entry(accountID)
	if !ok {
		return nil, fmt.Errorf("account %s: %w", accountID, apperrors.ErrNotFound)
	}

	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.account.Clone(), nil
}

func (r *AccountRegistry) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	entries := make([]*accountEntry, 0, len(r.entries))
	for _, e := range r.entries {
		entries = append(entries, e)
	}
	r.mu.RUnlock()

	accounts := make([]domain.Account, 0, len(entries))
	for _, e := range entries {
		e.mu.RLock()
		accounts = append(accounts, *e.account.Clone())
		e.mu.RUnlock()
	}
	return accounts, nil
}

// UpdateAccount applies fn to a working copy under the entry's write lock and
// commits the copy only when fn succeeds, so a failed fn leaves no partial change.
func (r *AccountRegistry) UpdateAccount(ctx context.Context, accountID string, fn func(*domain.Account) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	e, ok := r.entry(accountID)
	if !ok {
		return fmt.Errorf("account %s: %w", accountID, apperrors.ErrNotFound)
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	working := e.account.Clone()
	if err := fn(working); err != nil {
		return err
	}
	e.account = working
	return nil
}

// Len returns the number of registered accounts.
func (r *AccountRegistry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}
