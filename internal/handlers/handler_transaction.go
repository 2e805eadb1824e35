package handlers

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/bank_account_manager/internal/dto"
	"github.com/SscSPs/bank_account_manager/internal/middleware"
	"github.com/gin-gonic/gin"
)

// listTransactions godoc
// @Summary List account transactions
// @Description Returns the account history newest first, a page at a time
// @Tags transactions
// @Produce  json
// @Param   accountID path string true "Account ID"
// @Param   limit query int false "Page size, defaults to the configured page size" minimum(1) maximum(100)
// @Param   nextToken query string false "Token from the previous page"
// @Success 200 {object} dto.ListTransactionsResponse
// @Failure 400 {object} middleware.BadRequestErrorResponse "Invalid query parameters or token"
// @Failure 404 {object} map[string]string "Account not found"
// @Router /accounts/{accountID}/transactions [get]
func (h *accountHandler) listTransactions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	accountID := c.Param("accountID")
	logger = logger.With(slog.String("target_account_id", accountID))

	var params dto.ListTransactionsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query parameters for ListTransactions", slog.String("error", err.Error()))
		middleware.RespondWithBindingError(c, err)
		return
	}

	resp, err := h.accountService.ListTransactions(c.Request.Context(), accountID, params)
	if err != nil {
		respondWithServiceError(c, logger, err, "Failed to retrieve transactions")
		return
	}

	c.JSON(http.StatusOK, resp)
}
