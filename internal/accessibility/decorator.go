// Response envelope decorator of Uplift.
// Intercepts the outbound response body of every handler and injects the
// compliance metadata block, without the handlers' cooperation and without
// ever corrupting non-JSON payloads.

package accessibility

import (
	"Uplift/internal/entity"
	"Uplift/pkg/log"
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/h2non/filetype"
)

// Platform-wide capability constants carried by every structured response.
// These describe the platform, not the requester's own context.
const (
	WCAGLevel             = "AA"
	complianceHeaderValue = "WCAG-2.1-AA"
)

// The compliance metadata block injected into structured response bodies.
type envelope struct {
	WCAGLevel             string                      `json:"wcag_level"`
	ScreenReaderOptimized bool                        `json:"screen_reader_optimized"`
	KeyboardAccessible    bool                        `json:"keyboard_accessible"`
	HighContrastAvailable bool                        `json:"high_contrast_available"`
	Context               entity.AccessibilityContext `json:"context"`
}

// envelopeWriter buffers everything a handler writes so the decorator can
// rewrite the body and still set headers afterwards. WriteHeader is deferred
// until the final flush, gin handlers never observe the difference.
type envelopeWriter struct {
	gin.ResponseWriter
	body        *bytes.Buffer
	status      int
	wroteHeader bool
}

func (w *envelopeWriter) WriteHeader(code int) {
	w.status = code
	w.wroteHeader = true
}

// Suppressed, the real header goes out on flush.
func (w *envelopeWriter) WriteHeaderNow() {}

func (w *envelopeWriter) Write(b []byte) (int, error) {
	w.wroteHeader = true
	return w.body.Write(b)
}

func (w *envelopeWriter) WriteString(s string) (int, error) {
	w.wroteHeader = true
	return w.body.WriteString(s)
}

func (w *envelopeWriter) Status() int {
	return w.status
}

func (w *envelopeWriter) Size() int {
	return w.body.Len()
}

func (w *envelopeWriter) Written() bool {
	return w.wroteHeader
}

// DecoratorMiddleware wraps the response writer for the rest of the handler
// chain and decorates whatever body comes out of it. Structured (JSON object)
// bodies get the _accessibility block and, for error bodies, the assistive
// message variants. Anything else passes through byte-identical. The four
// compliance headers are set unconditionally, including on error responses.
// Decoration never alters the handler's status code.
func DecoratorMiddleware(logger log.Logger) gin.HandlerFunc {
	return func(gctx *gin.Context) {
		if gctx.IsWebsocket() {
			// Live connections hijack the underlying conn, nothing to decorate
			gctx.Next()
			return
		}

		writer := &envelopeWriter{
			ResponseWriter: gctx.Writer,
			body:           &bytes.Buffer{},
			status:         http.StatusOK,
		}
		gctx.Writer = writer

		gctx.Next()

		flushDecorated(gctx, writer, logger)
	}
}

// flushDecorated applies the envelope contract and writes the buffered
// response out on the real writer.
func flushDecorated(gctx *gin.Context, writer *envelopeWriter, logger log.Logger) {
	header := writer.ResponseWriter.Header()
	setComplianceHeaders(header)
	header.Set("X-Content-Language", ContextFrom(gctx).Language)

	body := writer.body.Bytes()
	if isStructured(header.Get("Content-Type"), body) {
		if decorated, ok := decorateBody(body, ContextFrom(gctx)); ok {
			body = decorated
		} else {
			// Decoration failure is never allowed to break the response
			logger.WithCtx(gctx).Warn().Msg("Couldn't decorate structured response body, passing it through.")
		}
	}

	if len(body) > 0 {
		header.Set("Content-Length", strconv.Itoa(len(body)))
	}
	writer.ResponseWriter.WriteHeader(writer.status)
	if len(body) > 0 {
		if _, werr := writer.ResponseWriter.Write(body); werr != nil {
			logger.WithCtx(gctx).Error().Err(werr).Msg("Error occured during writing decorated response body")
		}
	}
}

// setComplianceHeaders sets the fixed outbound compliance headers.
// These go out on every response so that failure paths stay equally inspectable.
func setComplianceHeaders(header http.Header) {
	header.Set("X-Accessibility-Compliant", complianceHeaderValue)
	header.Set("X-Screen-Reader-Optimized", "true")
	header.Set("X-Keyboard-Accessible", "true")
	header.Set("X-High-Contrast-Support", "true")
}

// isStructured reports whether the body is a key-value payload safe to rewrite.
// Binary payloads are recognized by magic bytes regardless of the declared
// content type and are always passed through untouched.
func isStructured(contentType string, body []byte) bool {
	if len(body) == 0 {
		return false
	}
	if kind, _ := filetype.Match(body); kind != filetype.Unknown {
		return false
	}
	return strings.Contains(contentType, "application/json")
}

// decorateBody parses a structured body, injects the _accessibility block and
// the error message variants, and serializes it back. Returns ok=false when
// the body turns out not to be a JSON object after all.
func decorateBody(body []byte, actx entity.AccessibilityContext) ([]byte, bool) {
	var data map[string]interface{}
	if jsonerr := json.Unmarshal(body, &data); jsonerr != nil || data == nil {
		return nil, false
	}

	data["_accessibility"] = envelope{
		WCAGLevel:             WCAGLevel,
		ScreenReaderOptimized: true,
		KeyboardAccessible:    true,
		HighContrastAvailable: true,
		Context:               actx,
	}

	if errObj, ok := data["error"].(map[string]interface{}); ok {
		decorateErrorBody(errObj)
	}

	decorated, jsonerr := json.Marshal(data)
	if jsonerr != nil {
		return nil, false
	}
	return decorated, true
}

// decorateErrorBody attaches the assistive message variants onto an error
// object that doesn't carry them already.
func decorateErrorBody(errObj map[string]interface{}) {
	if _, present := errObj["accessibility"]; present {
		return
	}
	message, _ := errObj["message"].(string)
	code := 0
	if rawCode, ok := errObj["code"].(float64); ok {
		code = int(rawCode)
	}

	screenReaderMsg := ScreenReaderMessage(strconv.Itoa(code) + " " + message)
	if screenReaderMsg == strconv.Itoa(code)+" "+message {
		screenReaderMsg = message
		if code != 0 {
			screenReaderMsg = fmt.Sprintf("Error %d: %s", code, message)
		}
	}

	errObj["accessibility"] = map[string]interface{}{
		"screen_reader_message": screenReaderMsg,
		"user_friendly_message": UserFriendlyMessage(message),
		"suggested_action":      defaultSuggestedAction,
	}
}
