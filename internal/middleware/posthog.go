package middleware

import (
	"net/http"
	"strings"

	"github.com/SscSPs/shop_pos_app/internal/utils"
	"github.com/gin-gonic/gin"
)

// untrackedPrefixes are routes never reported to PostHog.
var untrackedPrefixes = []string{"/health", "/swagger"}

// PosthogMiddleware reports every successful authenticated call as an event named after its route,
// e.g. "/api/v1/pos/checkout" becomes "api_v1_pos_checkout".
func PosthogMiddleware(posthogClient *utils.PosthogClientWrapper) gin.HandlerFunc {
	return func(c *gin.Context) {
		if posthogClient == nil || !posthogClient.IsInitialized() || untracked(c.Request.URL.Path) {
			c.Next()
			return
		}

		c.Next()

		if len(c.Errors) > 0 || c.Writer.Status() >= http.StatusBadRequest {
			return
		}
		userID, exists := GetUserIDFromContext(c)
		if !exists {
			return
		}
		eventName := strings.ReplaceAll(strings.TrimPrefix(c.FullPath(), "/"), "/", "_")
		if eventName == "" {
			return
		}

		props := map[string]any{
			"method":      c.Request.Method,
			"status_code": c.Writer.Status(),
		}
		for _, param := range c.Params {
			props[param.Key] = param.Value
		}
		posthogClient.Enqueue(userID, eventName, props)
	}
}

func untracked(path string) bool {
	for _, p := range untrackedPrefixes {
		if strings.HasPrefix(path, p) {
			return true
		}
	}
	return false
}
