package services

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/SscSPs/bank_account_manager/internal/apperrors"
	"github.com/SscSPs/bank_account_manager/internal/core/domain"
	portsrepo "github.com/SscSPs/bank_account_manager/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/bank_account_manager/internal/core/ports/services"
	"github.com/SscSPs/bank_account_manager/internal/dto"
	"github.com/SscSPs/bank_account_manager/internal/platform/config"
	"github.com/SscSPs/bank_account_manager/internal/utils"
	"github.com/shopspring/decimal"
)

// accountServiceImpl implements the AccountSvcFacade interface
type accountServiceImpl struct {
	BaseService
	accountRepo portsrepo.AccountRepositoryFacade
	events      portsrepo.EventPublisher
	clock       domain.Clock
	defaults    config.AccountDefaults
}

// ServiceOption is a functional option for configuring the account service
type ServiceOption func(*accountServiceImpl)

// WithClock sets the clock handed to new accounts.
func WithClock(clock domain.Clock) ServiceOption {
	return func(s *accountServiceImpl) {
		s.clock = clock
	}
}

// WithEventPublisher adds an event publisher dependency
func WithEventPublisher(events portsrepo.EventPublisher) ServiceOption {
	return func(s *accountServiceImpl) {
		s.events = events
	}
}

// WithAccountDefaults overrides the built-in account parameters.
func WithAccountDefaults(defaults config.AccountDefaults) ServiceOption {
	return func(s *accountServiceImpl) {
		s.defaults = defaults
	}
}

// NewAccountServiceImpl creates a new account service with the provided options
func NewAccountServiceImpl(repo portsrepo.AccountRepositoryFacade, options ...ServiceOption) portssvc.AccountSvcFacade {
	svc := &accountServiceImpl{
		accountRepo: repo,
		clock:       domain.SystemClock,
		defaults:    config.DefaultAccountDefaults(),
	}

	for _, option := range options {
		option(svc)
	}

	return svc
}

// Ensure accountServiceImpl implements the AccountSvcFacade interface
var _ portssvc.AccountSvcFacade = (*accountServiceImpl)(nil)

func (s *accountServiceImpl) CreateAccount(ctx context.Context, req dto.CreateAccountRequest) (*domain.Account, error) {
	if err := validateAccountID(req.AccountID); err != nil {
		s.LogWarn(ctx, "Rejected account creation", slog.String("account_id", req.AccountID), slog.String("reason", err.Error()))
		return nil, err
	}
	if req.InitialBalance == nil {
		return nil, fmt.Errorf("%w: initial balance is required", apperrors.ErrValidation)
	}
	if req.InitialBalance.IsNegative() {
		return nil, fmt.Errorf("%w: initial balance cannot be negative", apperrors.ErrValidation)
	}

	terms, err := s.buildTerms(req)
	if err != nil {
		s.LogWarn(ctx, "Rejected account creation",
			slog.String("account_id", req.AccountID),
			slog.String("variant", string(req.Variant)),
			slog.String("reason", err.Error()))
		return nil, err
	}

	account := domain.NewAccount(req.AccountID, *req.InitialBalance, terms, s.clock)
	if err := account.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
	}

	if err := s.accountRepo.SaveAccount(ctx, account); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			s.LogWarn(ctx, "Account number already exists", slog.String("account_id", account.AccountID))
		} else {
			s.LogError(ctx, err, "Failed to save account", slog.String("account_id", account.AccountID))
		}
		return nil, err
	}

	s.publish(ctx, portsrepo.EventAccountCreated, portsrepo.AccountCreatedEvent{
		AccountID:      account.AccountID,
		Variant:        string(account.Variant()),
		InitialBalance: account.Balance(),
	})
	for _, txn := range account.RecentTransactions(account.TransactionCount()) {
		s.publishTransaction(ctx, account, txn)
	}

	s.LogInfo(ctx, "Account created successfully",
		slog.String("account_id", account.AccountID),
		slog.String("variant", string(account.Variant())),
		slog.String("initial_balance", account.Balance().String()))
	return account, nil
}

// buildTerms resolves the variant parameters, applying configured defaults for omitted values.
// req.InitialBalance must be non-nil.
func (s *accountServiceImpl) buildTerms(req dto.CreateAccountRequest) (domain.Terms, error) {
	initial := *req.InitialBalance
	switch req.Variant {
	case domain.Savings:
		minimum := s.defaults.MinimumBalance
		if req.MinimumBalance != nil {
			minimum = *req.MinimumBalance
		}
		if minimum.IsNegative() {
			return nil, fmt.Errorf("%w: minimum balance cannot be negative", apperrors.ErrValidation)
		}
		if initial.LessThan(minimum) {
			return nil, fmt.Errorf("%w: initial balance must be greater than or equal to minimum balance of %s",
				apperrors.ErrValidation, utils.FormatAmount(minimum))
		}
		return domain.SavingsTerms{MinimumBalance: minimum}, nil

	case domain.Current:
		overdraft := s.defaults.OverdraftLimit
		if req.OverdraftLimit != nil {
			overdraft = *req.OverdraftLimit
		}
		if overdraft.IsNegative() {
			return nil, fmt.Errorf("%w: overdraft limit cannot be negative", apperrors.ErrValidation)
		}
		return domain.CurrentTerms{OverdraftLimit: overdraft}, nil

	case domain.FixedDeposit:
		now := s.clock.Now()
		maturity := now.AddDate(0, s.defaults.MaturityMonths, 0)
		if req.MaturityDate != nil {
			maturity = *req.MaturityDate
		}
		if initial.LessThan(s.defaults.FixedDepositMinimum) {
			return nil, fmt.Errorf("%w: fixed deposit requires a minimum initial balance of %s",
				apperrors.ErrValidation, utils.FormatAmount(s.defaults.FixedDepositMinimum))
		}
		if beforeDay(maturity, now) {
			return nil, fmt.Errorf("%w: maturity date %s is in the past",
				apperrors.ErrValidation, maturity.Format(time.DateOnly))
		}
		return domain.FixedDepositTerms{MaturityDate: maturity}, nil
	}
	return nil, fmt.Errorf("%w: unsupported account variant %q", apperrors.ErrValidation, req.Variant)
}

// validateAccountID requires a non-empty identifier made of ASCII digits.
func validateAccountID(accountID string) error {
	if accountID == "" {
		return fmt.Errorf("%w: account number is required", apperrors.ErrValidation)
	}
	for _, r := range accountID {
		if r < '0' || r > '9' {
			return fmt.Errorf("%w: account number must contain digits only", apperrors.ErrValidation)
		}
	}
	return nil
}

func (s *accountServiceImpl) GetAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find account by ID", slog.String("account_id", accountID))
		}
		return nil, err
	}

	s.LogDebug(ctx, "Account retrieved successfully", slog.String("account_id", account.AccountID))
	return account, nil
}

func (s *accountServiceImpl) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	accounts, err := s.accountRepo.ListAccounts(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list accounts")
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}

	if accounts == nil {
		return []domain.Account{}, nil
	}

	slices.SortFunc(accounts, func(a, b domain.Account) int {
		return cmp.Compare(a.AccountID, b.AccountID)
	})

	s.LogDebug(ctx, "Accounts listed successfully", slog.Int("count", len(accounts)))
	return accounts, nil
}

func (s *accountServiceImpl) CheckBalance(ctx context.Context, accountID string) (decimal.Decimal, error) {
	account, err := s.GetAccountByID(ctx, accountID)
	if err != nil {
		return decimal.Zero, err
	}
	return account.Balance(), nil
}

// publish hands an event to the publisher. A failed publish is logged and never fails the operation.
func (s *accountServiceImpl) publish(ctx context.Context, eventType string, data any) {
	if s.events == nil {
		return
	}
	if err := s.events.Publish(ctx, eventType, data); err != nil {
		s.LogError(ctx, err, "Failed to publish event", slog.String("event_type", eventType))
	}
}

func (s *accountServiceImpl) publishTransaction(ctx context.Context, account *domain.Account, txn domain.Transaction) {
	s.publish(ctx, portsrepo.EventTransactionCreated, portsrepo.TransactionCreatedEvent{
		TransactionID: txn.TransactionID,
		AccountID:     txn.AccountID,
		Kind:          string(txn.Kind),
		Amount:        txn.Amount,
		Balance:       account.Balance(),
	})
}

// beforeDay reports whether t falls on a calendar day before ref, compared in t's location.
// A maturity date of today is accepted.
func beforeDay(t, ref time.Time) bool {
	ty, tm, td := t.Date()
	ry, rm, rd := ref.In(t.Location()).Date()
	return time.Date(ty, tm, td, 0, 0, 0, 0, time.UTC).Before(time.Date(ry, rm, rd, 0, 0, 0, 0, time.UTC))
}
