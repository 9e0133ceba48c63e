package middleware

import (
	"go-caduae-backend/config"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Origins allowed to call the form endpoints. This list is a fixed contract
// with the website deployments; changing it breaks the browser side.
var allowedOrigins = map[string]bool{
	"http://localhost:3000":  true,
	"https://caduae.com":     true,
	"https://www.caduae.com": true,
}

// productionOrigin is the canonical fallback when a release build receives a
// request from an unlisted origin.
const productionOrigin = "https://caduae.com"

// CORSMiddleware adds CORS headers for cross-origin requests from the website
// forms. Every response carries the headers: listed origins are echoed back,
// anything else falls back to the canonical origin in production or the
// wildcard during development.
func CORSMiddleware(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")

		allowOrigin := "*"
		switch {
		case allowedOrigins[origin]:
			allowOrigin = origin
		case cfg.Production:
			allowOrigin = productionOrigin
		}

		c.Header("Access-Control-Allow-Origin", allowOrigin)
		c.Header("Access-Control-Allow-Methods", "POST, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type")
		c.Header("Access-Control-Max-Age", "86400") // 24 hours

		// Caches must key on the requesting origin
		c.Header("Vary", "Origin")

		// Preflight requests never fail, whatever the origin: the browser
		// decides from the headers whether the POST may proceed.
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusOK)
			return
		}

		c.Next()
	}
}
