package services_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/SscSPs/bank_account_manager/internal/adapters/events"
	"github.com/SscSPs/bank_account_manager/internal/adapters/memory"
	"github.com/SscSPs/bank_account_manager/internal/apperrors"
	"github.com/SscSPs/bank_account_manager/internal/core/domain"
	portsrepo "github.com/SscSPs/bank_account_manager/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/bank_account_manager/internal/core/ports/services"
	"github.com/SscSPs/bank_account_manager/internal/core/services"
	"github.com/SscSPs/bank_account_manager/internal/dto"
	"github.com/SscSPs/bank_account_manager/internal/platform/config"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type steppingClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *steppingClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *steppingClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func newScenarioService(t *testing.T) (portssvc.AccountSvcFacade, *steppingClock) {
	t.Helper()
	clock := &steppingClock{now: testNow}
	cfg := &config.Config{Accounts: config.DefaultAccountDefaults()}
	container := services.NewServiceContainer(cfg, portsrepo.RepositoryProvider{
		AccountRepo: memory.NewAccountRegistry(),
		Events:      events.NoopPublisher{},
	}, clock)
	return container.Account, clock
}

func amount(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func ptr(s string) *decimal.Decimal {
	d := amount(s)
	return &d
}

func TestScenario_SavingsMinimumBalance(t *testing.T) {
	ctx := context.Background()
	svc, _ := newScenarioService(t)

	_, err := svc.CreateAccount(ctx, dto.CreateAccountRequest{
		AccountID: "1001", Variant: domain.Savings, InitialBalance: ptr("1000"), MinimumBalance: ptr("500"),
	})
	require.NoError(t, err)

	outcome, err := svc.Withdraw(ctx, "1001", amount("600"))
	require.NoError(t, err)
	assert.False(t, outcome.Applied)
	assert.Equal(t, domain.RejectionMinimumBalance, outcome.Reason)

	outcome, err = svc.Withdraw(ctx, "1001", amount("400"))
	require.NoError(t, err)
	assert.True(t, outcome.Applied)

	balance, err := svc.CheckBalance(ctx, "1001")
	require.NoError(t, err)
	assert.True(t, amount("600").Equal(balance))

	history, err := svc.ListTransactions(ctx, "1001", dto.ListTransactionsParams{})
	require.NoError(t, err)
	require.Len(t, history.Transactions, 2)
	assert.Equal(t, domain.KindWithdrawal, history.Transactions[0].Kind)
	assert.True(t, amount("-400").Equal(history.Transactions[0].Amount))
	assert.Equal(t, domain.KindInitialDeposit, history.Transactions[1].Kind)
}

func TestScenario_CurrentOverdraft(t *testing.T) {
	ctx := context.Background()
	svc, _ := newScenarioService(t)

	_, err := svc.CreateAccount(ctx, dto.CreateAccountRequest{
		AccountID: "2001", Variant: domain.Current, InitialBalance: ptr("0"), OverdraftLimit: ptr("1000"),
	})
	require.NoError(t, err)

	outcome, err := svc.Withdraw(ctx, "2001", amount("800"))
	require.NoError(t, err)
	assert.True(t, outcome.Applied)
	assert.True(t, amount("-800").Equal(outcome.Account.Balance()))

	outcome, err = svc.Withdraw(ctx, "2001", amount("300"))
	require.NoError(t, err)
	assert.False(t, outcome.Applied)
	assert.Equal(t, domain.RejectionOverdraftLimit, outcome.Reason)
	assert.True(t, amount("-800").Equal(outcome.Account.Balance()))
}

func TestScenario_FixedDepositMaturity(t *testing.T) {
	ctx := context.Background()
	svc, clock := newScenarioService(t)
	maturity := testNow.AddDate(0, 6, 0)

	_, err := svc.CreateAccount(ctx, dto.CreateAccountRequest{
		AccountID: "3001", Variant: domain.FixedDeposit, InitialBalance: ptr("1000"), MaturityDate: &maturity,
	})
	require.NoError(t, err)

	_, err = svc.Deposit(ctx, "3001", amount("50"))
	assert.ErrorIs(t, err, apperrors.ErrPolicyViolation)

	outcome, err := svc.Withdraw(ctx, "3001", amount("100"))
	require.NoError(t, err)
	assert.False(t, outcome.Applied)
	assert.Equal(t, domain.RejectionNotMatured, outcome.Reason)

	posting, err := svc.ApplyMaturityInterest(ctx, "3001", nil)
	require.NoError(t, err)
	assert.False(t, posting.Applied())

	clock.Advance(maturity.Sub(testNow))

	outcome, err = svc.Withdraw(ctx, "3001", amount("100"))
	require.NoError(t, err)
	assert.True(t, outcome.Applied)
	assert.True(t, amount("900").Equal(outcome.Account.Balance()))

	posting, err = svc.ApplyMaturityInterest(ctx, "3001", ptr("0.1"))
	require.NoError(t, err)
	assert.True(t, posting.Applied())
	assert.True(t, amount("990").Equal(posting.Account.Balance()))

	acc, err := svc.GetAccountByID(ctx, "3001")
	require.NoError(t, err)
	assert.Equal(t, 3, acc.TransactionCount())
	assert.True(t, acc.Terms().(domain.FixedDepositTerms).Matured)
}

func TestScenario_SavingsInterestCompounds(t *testing.T) {
	ctx := context.Background()
	svc, _ := newScenarioService(t)

	_, err := svc.CreateAccount(ctx, dto.CreateAccountRequest{
		AccountID: "1001", Variant: domain.Savings, InitialBalance: ptr("1000"), MinimumBalance: ptr("0"),
	})
	require.NoError(t, err)

	first, err := svc.ApplySavingsInterest(ctx, "1001", ptr("0.05"))
	require.NoError(t, err)
	assert.True(t, amount("1050").Equal(first.Account.Balance()))

	second, err := svc.ApplySavingsInterest(ctx, "1001", ptr("0.05"))
	require.NoError(t, err)
	assert.True(t, amount("1102.5").Equal(second.Account.Balance()))
}

func TestScenario_DuplicateLeavesExistingAccountUntouched(t *testing.T) {
	ctx := context.Background()
	svc, _ := newScenarioService(t)

	_, err := svc.CreateAccount(ctx, dto.CreateAccountRequest{AccountID: "1001", Variant: domain.Savings, InitialBalance: ptr("1000")})
	require.NoError(t, err)
	_, err = svc.Deposit(ctx, "1001", amount("25"))
	require.NoError(t, err)

	_, err = svc.CreateAccount(ctx, dto.CreateAccountRequest{AccountID: "1001", Variant: domain.Current, InitialBalance: ptr("5")})
	assert.ErrorIs(t, err, apperrors.ErrDuplicate)

	acc, err := svc.GetAccountByID(ctx, "1001")
	require.NoError(t, err)
	assert.Equal(t, domain.Savings, acc.Variant())
	assert.True(t, amount("1025").Equal(acc.Balance()))
	assert.Equal(t, 2, acc.TransactionCount())

	accounts, err := svc.ListAccounts(ctx)
	require.NoError(t, err)
	assert.Len(t, accounts, 1)
}

func TestScenario_ConcurrentDepositsAndWithdrawals(t *testing.T) {
	ctx := context.Background()
	svc, _ := newScenarioService(t)

	_, err := svc.CreateAccount(ctx, dto.CreateAccountRequest{
		AccountID: "2001", Variant: domain.Current, InitialBalance: ptr("100"), OverdraftLimit: ptr("0"),
	})
	require.NoError(t, err)

	var wg sync.WaitGroup
	var mu sync.Mutex
	applied := 0
	for i := 0; i < 20; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_, _ = svc.Deposit(ctx, "2001", amount("10"))
		}()
		go func() {
			defer wg.Done()
			outcome, err := svc.Withdraw(ctx, "2001", amount("15"))
			if err == nil && outcome.Applied {
				mu.Lock()
				applied++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	acc, err := svc.GetAccountByID(ctx, "2001")
	require.NoError(t, err)
	want := amount("100").Add(amount("200")).Sub(amount("15").Mul(decimal.NewFromInt(int64(applied))))
	assert.True(t, want.Equal(acc.Balance()))
	assert.False(t, acc.Balance().IsNegative())
	assert.Equal(t, 1+20+applied, acc.TransactionCount())
}

func TestScenario_HistoryPagesStableAcrossNewEntries(t *testing.T) {
	ctx := context.Background()
	svc, clock := newScenarioService(t)

	_, err := svc.CreateAccount(ctx, dto.CreateAccountRequest{
		AccountID: "2001", Variant: domain.Current, InitialBalance: ptr("1"),
	})
	require.NoError(t, err)
	for _, a := range []string{"10", "20", "30", "40"} {
		clock.Advance(time.Minute)
		_, err := svc.Deposit(ctx, "2001", amount(a))
		require.NoError(t, err)
	}

	first, err := svc.ListTransactions(ctx, "2001", dto.ListTransactionsParams{Limit: 2})
	require.NoError(t, err)
	require.Len(t, first.Transactions, 2)
	assert.True(t, amount("40").Equal(first.Transactions[0].Amount))
	assert.True(t, amount("30").Equal(first.Transactions[1].Amount))
	require.NotNil(t, first.NextToken)

	_, err = svc.Deposit(ctx, "2001", amount("99"))
	require.NoError(t, err)

	second, err := svc.ListTransactions(ctx, "2001", dto.ListTransactionsParams{Limit: 2, NextToken: first.NextToken})
	require.NoError(t, err)
	require.Len(t, second.Transactions, 2)
	assert.True(t, amount("20").Equal(second.Transactions[0].Amount))
	assert.True(t, amount("10").Equal(second.Transactions[1].Amount))

	seen := make(map[string]bool)
	for _, txn := range first.Transactions {
		seen[txn.TransactionID] = true
	}
	for _, txn := range second.Transactions {
		assert.Falsef(t, seen[txn.TransactionID], "transaction %s listed on both pages", txn.TransactionID)
	}

	require.NotNil(t, second.NextToken)
	third, err := svc.ListTransactions(ctx, "2001", dto.ListTransactionsParams{Limit: 2, NextToken: second.NextToken})
	require.NoError(t, err)
	require.Len(t, third.Transactions, 1)
	assert.Equal(t, domain.KindInitialDeposit, third.Transactions[0].Kind)
	assert.Nil(t, third.NextToken)
}
