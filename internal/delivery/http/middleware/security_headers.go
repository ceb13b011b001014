package middleware

import (
	"github.com/gin-gonic/gin"
)

// SecurityHeadersMiddleware adds baseline security headers to all responses.
// These headers cover:
// - MITM attacks (HSTS, production only)
// - MIME sniffing (X-Content-Type-Options)
// - Clickjacking (X-Frame-Options, frame-ancestors)
// - Information leakage (Referrer-Policy, Permissions-Policy)
func SecurityHeadersMiddleware(production bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		// HTTP Strict Transport Security (HSTS)
		// Only sent in production, local development runs over plain HTTP
		// max-age=63072000 = 2 years
		if production {
			c.Header("Strict-Transport-Security", "max-age=63072000; includeSubDomains")
		}

		// Prevent MIME type sniffing
		c.Header("X-Content-Type-Options", "nosniff")

		// Prevent clickjacking by disallowing framing
		c.Header("X-Frame-Options", "DENY")

		// Send only the origin on cross-origin requests
		c.Header("Referrer-Policy", "strict-origin-when-cross-origin")

		// Restrict browser features access
		// Empty values = disable the feature entirely
		c.Header("Permissions-Policy", "camera=(), microphone=(), geolocation=(), payment=()")

		// Content Security Policy
		// Swagger UI needs inline scripts and styles
		// Vacancy and candidate images are served from imagedelivery.net
		c.Header("Content-Security-Policy",
			"default-src 'self'; "+
				"script-src 'self' 'unsafe-inline'; "+
				"style-src 'self' 'unsafe-inline'; "+
				"img-src 'self' data: https://imagedelivery.net; "+
				"connect-src 'self'; "+
				"frame-ancestors 'none'; "+
				"base-uri 'self'")

		// Prevent caching of authenticated responses
		// Employer vacancy and candidate lists carry personal data
		if c.GetHeader("Authorization") != "" {
			c.Header("Cache-Control", "no-store, no-cache, must-revalidate, private")
			c.Header("Pragma", "no-cache")
			c.Header("Expires", "0")
		}

		c.Next()
	}
}
