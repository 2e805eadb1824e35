package domain_test

import (
	"testing"
	"time"

	"github.com/SscSPs/bank_account_manager/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHistory_AppendAndRecent(t *testing.T) {
	h := domain.NewHistory("1001")
	base := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

	first := h.Append(domain.KindInitialDeposit, dec("1000"), base)
	second := h.Append(domain.KindDeposit, dec("50"), base.Add(time.Minute))
	third := h.Append(domain.KindWithdrawal, dec("-20"), base.Add(2*time.Minute))

	assert.Equal(t, 3, h.Len())
	assert.NotEmpty(t, first.TransactionID)
	assert.Equal(t, "1001", first.AccountID)

	recent := h.Recent(10)
	require.Len(t, recent, 3)
	assert.Equal(t, third.TransactionID, recent[0].TransactionID)
	assert.Equal(t, second.TransactionID, recent[1].TransactionID)
	assert.Equal(t, first.TransactionID, recent[2].TransactionID)
}

func TestHistory_RecentBounds(t *testing.T) {
	h := domain.NewHistory("1001")
	now := time.Now()
	for i := 0; i < 5; i++ {
		h.Append(domain.KindDeposit, dec("1"), now)
	}

	tests := []struct {
		name string
		n    int
		want int
	}{
		{name: "fewer than length", n: 2, want: 2},
		{name: "exactly length", n: 5, want: 5},
		{name: "more than length", n: 50, want: 5},
		{name: "zero", n: 0, want: 0},
		{name: "negative", n: -3, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := h.Recent(tt.n)
			assert.NotNil(t, got)
			assert.Len(t, got, tt.want)
		})
	}
}

func TestHistory_RecentOnEmpty(t *testing.T) {
	h := domain.NewHistory("1001")
	assert.Empty(t, h.Recent(10))
	assert.Equal(t, 0, h.Len())
}

func TestHistory_Page(t *testing.T) {
	h := domain.NewHistory("1001")
	now := time.Now()
	amounts := []string{"1", "2", "3", "4", "5"}
	for _, a := range amounts {
		h.Append(domain.KindDeposit, dec(a), now)
	}

	page := h.Page(1, 2)
	require.Len(t, page, 2)
	assertDecimal(t, "4", page[0].Amount)
	assertDecimal(t, "3", page[1].Amount)

	tail := h.Page(4, 10)
	require.Len(t, tail, 1)
	assertDecimal(t, "1", tail[0].Amount)

	assert.Empty(t, h.Page(5, 10))
	assert.Len(t, h.Page(-1, 2), 2)
}

func TestHistory_ReturnedSliceDoesNotAliasLog(t *testing.T) {
	h := domain.NewHistory("1001")
	h.Append(domain.KindDeposit, dec("10"), time.Now())

	got := h.Recent(1)
	got[0].Amount = dec("999")

	assertDecimal(t, "10", h.Recent(1)[0].Amount)
}
