// Terminal recovery handler of Uplift.
// Any panic escaping a handler is converted into the structured error body
// instead of a raw fault, the envelope decorator still runs on the result.

package errors

import (
	"Uplift/pkg/log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// RecoveryMiddleware catches panics from handlers down the chain and responds
// with the standard internal-server-error body. It never rethrows, so outer
// middlewares (decoration, analytics) complete normally for the failed request.
func RecoveryMiddleware(logger log.Logger) gin.HandlerFunc {
	return func(gctx *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				logger.WithCtx(gctx).Error().Interface("panic", rec).Msg("Recovered from panic in handler chain")
				if !gctx.Writer.Written() {
					gctx.AbortWithStatusJSON(http.StatusInternalServerError, InternalServerError(""))
				} else {
					gctx.Abort()
				}
			}
		}()
		gctx.Next()
	}
}
