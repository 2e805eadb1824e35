package middleware

import (
	"net/http"
	"strings"

	"github.com/SscSPs/bank_account_manager/internal/utils"
	"github.com/gin-gonic/gin"
)

// pathsToSkip contains paths that should not be tracked by PostHog
var pathsToSkip = map[string]bool{
	"/health": true,
}

// PosthogMiddleware creates a Gin middleware handler that tracks successful API calls with PostHog.
// There are no user accounts, so the client IP is the distinct ID.
func PosthogMiddleware(posthogClient *utils.PosthogClientWrapper) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !posthogClient.IsInitialized() || pathsToSkip[c.Request.URL.Path] {
			c.Next()
			return
		}

		c.Next()

		if len(c.Errors) > 0 || c.Writer.Status() >= http.StatusBadRequest {
			return
		}

		// "/api/v1/accounts/:accountID/deposits" -> "POST_api_v1_accounts_:accountID_deposits"
		route := strings.ReplaceAll(strings.TrimPrefix(c.FullPath(), "/"), "/", "_")
		if route == "" {
			return
		}

		props := map[string]any{
			"method":      c.Request.Method,
			"path":        c.Request.URL.Path,
			"status_code": c.Writer.Status(),
		}
		if accountID := c.Param("accountID"); accountID != "" {
			props["account_id"] = accountID
		}

		posthogClient.Enqueue(c.ClientIP(), c.Request.Method+"_"+route, props)
	}
}
