package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/bank_account_manager/internal/apperrors"
	"github.com/SscSPs/bank_account_manager/internal/dto"
	"github.com/SscSPs/bank_account_manager/internal/utils/pagination"
)

// ListTransactions retrieves a page of an account's history, newest first.
func (s *accountServiceImpl) ListTransactions(ctx context.Context, accountID string, params dto.ListTransactionsParams) (*dto.ListTransactionsResponse, error) {
	limit := params.Limit
	if limit <= 0 {
		limit = s.defaults.HistoryPageSize
	}

	remaining := -1
	if params.NextToken != nil && *params.NextToken != "" {
		var err error
		remaining, err = pagination.DecodeHistoryToken(*params.NextToken, accountID)
		if err != nil {
			s.LogWarn(ctx, "Invalid pagination token", slog.String("account_id", accountID), slog.String("error", err.Error()))
			return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
		}
	}

	account, err := s.GetAccountByID(ctx, accountID)
	if err != nil {
		return nil, err
	}

	// The token counts from the oldest entry; history only grows, so a valid
	// token never exceeds the current length.
	count := account.TransactionCount()
	offset := 0
	if remaining >= 0 {
		if remaining > count {
			s.LogWarn(ctx, "Pagination token beyond history", slog.String("account_id", accountID), slog.Int("remaining", remaining))
			return nil, fmt.Errorf("%w: invalid pagination token", apperrors.ErrValidation)
		}
		offset = count - remaining
	}

	page := account.TransactionPage(offset, limit)
	resp := &dto.ListTransactionsResponse{
		Transactions: dto.ToTransactionResponses(page),
	}
	if next := offset + len(page); next < count {
		token := pagination.EncodeHistoryToken(accountID, count-next)
		resp.NextToken = &token
	}

	s.LogDebug(ctx, "Transactions listed successfully",
		slog.String("account_id", accountID),
		slog.Int("count", len(page)))
	return resp, nil
}
