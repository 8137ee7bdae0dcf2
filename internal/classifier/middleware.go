// Classification middleware used to populate request context with the
// empowerment classification of the request path.

package classifier

import (
	"Uplift/internal/entity"

	"github.com/gin-gonic/gin"
)

// Key under which the classification is stored in the request's gin context.
const ContextKey = "EmpowermentClassification"

// Middleware classifies every incoming request's path once and attaches the
// result for consumption by the downstream stages.
func Middleware() gin.HandlerFunc {
	return func(gctx *gin.Context) {
		gctx.Set(ContextKey, Classify(gctx.Request.URL.Path))
		gctx.Next()
	}
}

// From fetches the classification from the request's gin context.
// Recomputes from the path when the middleware never ran, classification
// stays total either way.
func From(gctx *gin.Context) entity.EmpowermentClassification {
	classification, ok := gctx.Value(ContextKey).(entity.EmpowermentClassification)
	if !ok {
		return Classify(gctx.Request.URL.Path)
	}
	return classification
}
