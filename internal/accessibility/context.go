// Accessibility context extraction in Uplift.
// Parses the per-request signal headers into an entity.AccessibilityContext.

package accessibility

import (
	"Uplift/internal/entity"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

// Key under which the extracted context is stored in the request's gin context.
const ContextKey = "AccessibilityContext"

// FromHeaders builds an AccessibilityContext out of the inbound signal headers.
// This is a total function: missing or malformed values fall back to defaults,
// extraction never fails and performs no I/O.
func FromHeaders(headers http.Header) entity.AccessibilityContext {
	actx := entity.DefaultAccessibilityContext()
	actx.ScreenReaderActive = headers.Get("X-Screen-Reader") == "true"
	actx.HighContrast = headers.Get("X-High-Contrast") == "true"
	actx.ReducedMotion = headers.Get("X-Reduced-Motion") == "true"
	actx.KeyboardNavigation = headers.Get("X-Keyboard-Navigation") == "true"
	if size, prserr := strconv.Atoi(strings.TrimSpace(headers.Get("X-Font-Size"))); prserr == nil && size > 0 {
		actx.FontSize = size
	}
	if lang := strings.TrimSpace(headers.Get("Accept-Language")); lang != "" {
		actx.Language = lang
	}
	return actx
}

// ContextMiddleware populates every incoming request's context with the
// extracted AccessibilityContext for consumption by the downstream stages.
func ContextMiddleware() gin.HandlerFunc {
	return func(gctx *gin.Context) {
		gctx.Set(ContextKey, FromHeaders(gctx.Request.Header))
		gctx.Next()
	}
}

// ContextFrom fetches the extracted context from the request's gin context.
// Returns the default context when extraction never ran, downstream stages
// should keep working rather than fail.
func ContextFrom(gctx *gin.Context) entity.AccessibilityContext {
	actx, ok := gctx.Value(ContextKey).(entity.AccessibilityContext)
	if !ok {
		return entity.DefaultAccessibilityContext()
	}
	return actx
}
