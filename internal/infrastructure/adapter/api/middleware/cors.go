package middleware

import (
	"net/http"
	"slices"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

var (
	corsAllowMethods = []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions}
	corsAllowHeaders = []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"}
)

const corsMaxAge = 10 * time.Minute

// CORS allows cross-origin requests from allowedOrigins; "*" allows any origin.
// Requests from other origins are rejected with 403. An empty list disables CORS.
func CORS(allowedOrigins []string) gin.HandlerFunc {
	if len(allowedOrigins) == 0 {
		return func(c *gin.Context) { c.Next() }
	}

	cfg := cors.Config{
		AllowMethods:  corsAllowMethods,
		AllowHeaders:  corsAllowHeaders,
		AllowWildcard: true,
		MaxAge:        corsMaxAge,
	}
	if slices.Contains(allowedOrigins, "*") {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = allowedOrigins
	}

	return cors.New(cfg)
}
