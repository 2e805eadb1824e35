package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/SscSPs/bank_account_manager/internal/apperrors"
	"github.com/SscSPs/bank_account_manager/internal/core/domain"
	"github.com/shopspring/decimal"
)

func (s *accountServiceImpl) Deposit(ctx context.Context, accountID string, amount decimal.Decimal) (*domain.Posting, error) {
	if !amount.IsPositive() {
		return nil, fmt.Errorf("%w: deposit amount must be positive", apperrors.ErrValidation)
	}

	var posting domain.Posting
	err := s.accountRepo.UpdateAccount(ctx, accountID, func(acc *domain.Account) error {
		if !acc.AcceptsDeposits() {
			return fmt.Errorf("%w: deposits are not allowed into a %s after creation",
				apperrors.ErrPolicyViolation, acc.Variant().Label())
		}
		acc.Deposit(amount)
		txn := acc.RecordTransaction(domain.KindDeposit, amount)
		posting = domain.Posting{Account: acc.Clone(), Transaction: &txn}
		return nil
	})
	if err != nil {
		s.logOperationError(ctx, err, "deposit", accountID)
		return nil, err
	}

	s.publishTransaction(ctx, posting.Account, *posting.Transaction)
	s.LogInfo(ctx, "Deposit successful",
		slog.String("account_id", accountID),
		slog.String("amount", amount.String()),
		slog.String("balance", posting.Account.Balance().String()))
	return &posting, nil
}

func (s *accountServiceImpl) Withdraw(ctx context.Context, accountID string, amount decimal.Decimal) (*domain.WithdrawalOutcome, error) {
	if !amount.IsPositive() {
		return nil, fmt.Errorf("%w: withdrawal amount must be positive", apperrors.ErrValidation)
	}

	var outcome domain.WithdrawalOutcome
	err := s.accountRepo.UpdateAccount(ctx, accountID, func(acc *domain.Account) error {
		outcome.Reason = acc.WithdrawalRejection(amount)
		if outcome.Reason == domain.RejectionNone && acc.Withdraw(amount) {
			txn := acc.RecordTransaction(domain.KindWithdrawal, amount.Neg())
			outcome.Applied = true
			outcome.Transaction = &txn
		}
		outcome.Account = acc.Clone()
		return nil
	})
	if err != nil {
		s.logOperationError(ctx, err, "withdrawal", accountID)
		return nil, err
	}

	if !outcome.Applied {
		s.LogWarn(ctx, "Withdrawal rejected",
			slog.String("account_id", accountID),
			slog.String("amount", amount.String()),
			slog.String("reason", string(outcome.Reason)))
		return &outcome, nil
	}

	s.publishTransaction(ctx, outcome.Account, *outcome.Transaction)
	s.LogInfo(ctx, "Withdrawal successful",
		slog.String("account_id", accountID),
		slog.String("amount", amount.String()),
		slog.String("balance", outcome.Account.Balance().String()))
	return &outcome, nil
}

func (s *accountServiceImpl) ApplySavingsInterest(ctx context.Context, accountID string, rate *decimal.Decimal) (*domain.Posting, error) {
	r, err := resolveRate(rate, s.defaults.SavingsInterestRate)
	if err != nil {
		return nil, err
	}

	var posting domain.Posting
	err = s.accountRepo.UpdateAccount(ctx, accountID, func(acc *domain.Account) error {
		if _, ok := acc.CalculateInterest(r); !ok {
			return fmt.Errorf("%w: interest can only be applied to savings accounts", apperrors.ErrValidation)
		}
		txn := acc.RecentTransactions(1)[0]
		posting = domain.Posting{Account: acc.Clone(), Transaction: &txn}
		return nil
	})
	if err != nil {
		s.logOperationError(ctx, err, "savings interest", accountID)
		return nil, err
	}

	s.publishTransaction(ctx, posting.Account, *posting.Transaction)
	s.LogInfo(ctx, "Interest credited",
		slog.String("account_id", accountID),
		slog.String("rate", r.String()),
		slog.String("interest", posting.Transaction.Amount.String()))
	return &posting, nil
}

func (s *accountServiceImpl) ApplyMaturityInterest(ctx context.Context, accountID string, rate *decimal.Decimal) (*domain.Posting, error) {
	r, err := resolveRate(rate, s.defaults.MaturityInterestRate)
	if err != nil {
		return nil, err
	}

	var posting domain.Posting
	err = s.accountRepo.UpdateAccount(ctx, accountID, func(acc *domain.Account) error {
		if acc.Variant() != domain.FixedDeposit {
			return fmt.Errorf("%w: maturity interest only applies to fixed deposit accounts", apperrors.ErrValidation)
		}
		if _, ok := acc.ApplyMaturityInterest(r); ok {
			txn := acc.RecentTransactions(1)[0]
			posting.Transaction = &txn
		}
		posting.Account = acc.Clone()
		return nil
	})
	if err != nil {
		s.logOperationError(ctx, err, "maturity interest", accountID)
		return nil, err
	}

	if !posting.Applied() {
		s.LogInfo(ctx, "Maturity interest not applied",
			slog.String("account_id", accountID),
			slog.Bool("matured", posting.Account.IsMatured()))
		return &posting, nil
	}

	s.publishTransaction(ctx, posting.Account, *posting.Transaction)
	s.LogInfo(ctx, "Maturity interest credited",
		slog.String("account_id", accountID),
		slog.String("interest", posting.Transaction.Amount.String()))
	return &posting, nil
}

func resolveRate(rate *decimal.Decimal, fallback decimal.Decimal) (decimal.Decimal, error) {
	if rate == nil {
		return fallback, nil
	}
	if rate.IsNegative() {
		return decimal.Zero, fmt.Errorf("%w: interest rate cannot be negative", apperrors.ErrValidation)
	}
	return *rate, nil
}

// logOperationError logs expected refusals at warn level and everything else as errors.
func (s *accountServiceImpl) logOperationError(ctx context.Context, err error, operation, accountID string) {
	if errors.Is(err, apperrors.ErrNotFound) || errors.Is(err, apperrors.ErrValidation) || errors.Is(err, apperrors.ErrPolicyViolation) {
		s.LogWarn(ctx, "Account operation refused",
			slog.String("operation", operation),
			slog.String("account_id", accountID),
			slog.String("reason", err.Error()))
		return
	}
	s.LogError(ctx, err, "Account operation failed",
		slog.String("operation", operation),
		slog.String("account_id", accountID))
}
