package handlers

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/SscSPs/bank_account_manager/internal/dto"
	"github.com/SscSPs/bank_account_manager/internal/middleware"
	"github.com/SscSPs/bank_account_manager/internal/utils"
	"github.com/gin-gonic/gin"
)

// deposit godoc
// @Summary Deposit into an account
// @Description Credits the amount and records a Deposit transaction. Fixed deposit accounts refuse deposits.
// @Tags operations
// @Accept  json
// @Produce  json
// @Param   accountID path string true "Account ID"
// @Param   deposit body dto.AmountRequest true "Deposit amount"
// @Success 200 {object} dto.PostingResponse
// @Failure 400 {object} middleware.BadRequestErrorResponse "Invalid amount"
// @Failure 404 {object} map[string]string "Account not found"
// @Failure 422 {object} map[string]string "Deposits not allowed for this account"
// @Router /accounts/{accountID}/deposits [post]
func (h *accountHandler) deposit(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	accountID := c.Param("accountID")
	logger = logger.With(slog.String("target_account_id", accountID))

	var req dto.AmountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for Deposit", slog.String("error", err.Error()))
		middleware.RespondWithBindingError(c, err)
		return
	}

	posting, err := h.accountService.Deposit(c.Request.Context(), accountID, req.Amount)
	if err != nil {
		respondWithServiceError(c, logger, err, "Failed to deposit")
		return
	}

	msg := fmt.Sprintf("Successfully deposited %s to account %s", utils.FormatAmount(req.Amount), accountID)
	c.JSON(http.StatusOK, dto.ToPostingResponse(posting, msg))
}

// withdraw godoc
// @Summary Withdraw from an account
// @Description Applies the account's withdrawal policy. A refused withdrawal returns 422 with the reason and a message naming the limit.
// @Tags operations
// @Accept  json
// @Produce  json
// @Param   accountID path string true "Account ID"
// @Param   withdrawal body dto.AmountRequest true "Withdrawal amount"
// @Success 200 {object} dto.WithdrawalResponse
// @Failure 400 {object} middleware.BadRequestErrorResponse "Invalid amount"
// @Failure 404 {object} map[string]string "Account not found"
// @Failure 422 {object} dto.WithdrawalResponse "Withdrawal refused"
// @Router /accounts/{accountID}/withdrawals [post]
func (h *accountHandler) withdraw(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	accountID := c.Param("accountID")
	logger = logger.With(slog.String("target_account_id", accountID))

	var req dto.AmountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for Withdraw", slog.String("error", err.Error()))
		middleware.RespondWithBindingError(c, err)
		return
	}

	outcome, err := h.accountService.Withdraw(c.Request.Context(), accountID, req.Amount)
	if err != nil {
		respondWithServiceError(c, logger, err, "Failed to withdraw")
		return
	}

	status := http.StatusOK
	if !outcome.Applied {
		status = http.StatusUnprocessableEntity
	}
	c.JSON(status, dto.ToWithdrawalResponse(outcome, req.Amount))
}

// applySavingsInterest godoc
// @Summary Post interest to a savings account
// @Description Credits balance times rate. Every call posts interest again.
// @Tags operations
// @Accept  json
// @Produce  json
// @Param   accountID path string true "Account ID"
// @Param   interest body dto.InterestRequest false "Interest rate, defaults to the configured rate"
// @Success 200 {object} dto.PostingResponse
// @Failure 400 {object} map[string]string "Not a savings account or invalid rate"
// @Failure 404 {object} map[string]string "Account not found"
// @Router /accounts/{accountID}/interest [post]
func (h *accountHandler) applySavingsInterest(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	accountID := c.Param("accountID")
	logger = logger.With(slog.String("target_account_id", accountID))

	req, ok := bindInterestRequest(c, logger)
	if !ok {
		return
	}

	posting, err := h.accountService.ApplySavingsInterest(c.Request.Context(), accountID, req.Rate)
	if err != nil {
		respondWithServiceError(c, logger, err, "Failed to apply interest")
		return
	}

	msg := fmt.Sprintf("Interest of %s credited to account %s", utils.FormatAmount(posting.Transaction.Amount), accountID)
	c.JSON(http.StatusOK, dto.ToPostingResponse(posting, msg))
}

// applyMaturityInterest godoc
// @Summary Credit maturity interest to a fixed deposit account
// @Description Applies balance times rate once the account has matured. Later calls change nothing.
// @Tags operations
// @Accept  json
// @Produce  json
// @Param   accountID path string true "Account ID"
// @Param   interest body dto.InterestRequest false "Interest rate, defaults to the configured rate"
// @Success 200 {object} dto.PostingResponse
// @Failure 400 {object} map[string]string "Not a fixed deposit account or invalid rate"
// @Failure 404 {object} map[string]string "Account not found"
// @Router /accounts/{accountID}/maturity [post]
func (h *accountHandler) applyMaturityInterest(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	accountID := c.Param("accountID")
	logger = logger.With(slog.String("target_account_id", accountID))

	req, ok := bindInterestRequest(c, logger)
	if !ok {
		return
	}

	posting, err := h.accountService.ApplyMaturityInterest(c.Request.Context(), accountID, req.Rate)
	if err != nil {
		respondWithServiceError(c, logger, err, "Failed to apply maturity interest")
		return
	}

	var msg string
	switch {
	case posting.Applied():
		msg = fmt.Sprintf("Maturity interest of %s credited to account %s", utils.FormatAmount(posting.Transaction.Amount), accountID)
	case posting.Account.IsMatured():
		msg = "Maturity interest has already been applied"
	default:
		msg = "Account has not reached its maturity date"
	}
	c.JSON(http.StatusOK, dto.ToPostingResponse(posting, msg))
}

// bindInterestRequest accepts an empty body as a request for the default rate.
func bindInterestRequest(c *gin.Context, logger *slog.Logger) (dto.InterestRequest, bool) {
	var req dto.InterestRequest
	if c.Request.ContentLength == 0 {
		return req, true
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		if errors.Is(err, io.EOF) {
			return req, true
		}
		logger.Warn("Failed to bind JSON for interest request", slog.String("error", err.Error()))
		middleware.RespondWithBindingError(c, err)
		return req, false
	}
	return req, true
}
