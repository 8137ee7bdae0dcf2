package middlewares

import (
	"github.com/gin-gonic/gin"
)

// This middleware adds standard security headers to every response going out of Uplift.
func SecurityHeadersMiddleware() gin.HandlerFunc {
	return func(gctx *gin.Context) {
		gctx.Writer.Header().Set("X-Content-Type-Options", "nosniff")
		gctx.Writer.Header().Set("X-Frame-Options", "DENY")
		gctx.Writer.Header().Set("X-XSS-Protection", "1; mode=block")
		gctx.Writer.Header().Set("Strict-Transport-Security", "max-age=31536000; includeSubDomains")
		gctx.Writer.Header().Set("Referrer-Policy", "strict-origin-when-cross-origin")
		gctx.Next()
	}
}
