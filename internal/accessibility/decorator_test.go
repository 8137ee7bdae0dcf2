// Response envelope decorator tests in Uplift.

package accessibility

import (
	"Uplift/internal/errors"
	"Uplift/internal/test"
	"Uplift/pkg/log"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Global instance of log.Logger to be used during decorator testing.
var logger log.Logger = log.New("test")

// Minimal PNG header, enough for magic byte sniffing.
var pngBytes = []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A, 0x00, 0x00, 0x00, 0x0D}

// Helper to build up a mock router wrapped by the decoration pipeline.
func setupDecoratedRouter() *gin.Engine {
	mockRouter := test.MockRouter()
	mockRouter.Use(ContextMiddleware())
	mockRouter.Use(DecoratorMiddleware(logger))

	mockRouter.GET("/api/v1/jobs", func(gctx *gin.Context) {
		gctx.JSON(http.StatusOK, gin.H{"jobs": []string{"Frontend Developer"}})
	})
	mockRouter.GET("/api/v1/missing", func(gctx *gin.Context) {
		resp := errors.NotFound("")
		gctx.JSON(resp.StatusCode(), resp)
	})
	mockRouter.GET("/api/v1/report.png", func(gctx *gin.Context) {
		gctx.Data(http.StatusOK, "image/png", pngBytes)
	})
	mockRouter.GET("/api/v1/mislabeled", func(gctx *gin.Context) {
		// Declares JSON but ships PNG bytes, sniffing must win
		gctx.Data(http.StatusOK, "application/json", pngBytes)
	})
	mockRouter.GET("/api/v1/plain", func(gctx *gin.Context) {
		gctx.String(http.StatusOK, "Welcome to Uplift!")
	})
	mockRouter.GET("/api/v1/nobody", func(gctx *gin.Context) {
		gctx.Status(http.StatusNoContent)
	})
	return mockRouter
}

func assertComplianceHeaders(t *testing.T, header http.Header) {
	assert.Equal(t, "WCAG-2.1-AA", header.Get("X-Accessibility-Compliant"))
	assert.Equal(t, "true", header.Get("X-Screen-Reader-Optimized"))
	assert.Equal(t, "true", header.Get("X-Keyboard-Accessible"))
	assert.Equal(t, "true", header.Get("X-High-Contrast-Support"))
}

func TestDecoratorStructuredResponse(t *testing.T) {
	mockRouter := setupDecoratedRouter()
	w := test.ExecuteAPITest(logger, t, mockRouter, test.RequestAPITest{
		Method:       http.MethodGet,
		Path:         "/api/v1/jobs?accommodations=screen-reader",
		WantResponse: []int{http.StatusOK},
		Headers:      map[string]string{"X-Screen-Reader": "true"},
	})
	assertComplianceHeaders(t, w.Header())

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	envelope, ok := body["_accessibility"].(map[string]interface{})
	require.True(t, ok, "structured response must carry the _accessibility block")
	assert.Equal(t, "AA", envelope["wcag_level"])
	assert.Equal(t, true, envelope["screen_reader_optimized"])
	assert.Equal(t, true, envelope["keyboard_accessible"])
	assert.Equal(t, true, envelope["high_contrast_available"])

	actx, ok := envelope["context"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, true, actx["screenReaderActive"])

	// Handler payload stays intact
	assert.Contains(t, body, "jobs")
}

func TestDecoratorErrorResponse(t *testing.T) {
	mockRouter := setupDecoratedRouter()
	w := test.ExecuteAPITest(logger, t, mockRouter, test.RequestAPITest{
		Method:       http.MethodGet,
		Path:         "/api/v1/missing",
		WantResponse: []int{http.StatusNotFound},
	})
	// Failure paths carry the exact same headers
	assertComplianceHeaders(t, w.Header())

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Contains(t, body, "_accessibility")

	errObj, ok := body["error"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, float64(http.StatusNotFound), errObj["code"])
	assert.Equal(t, "not_found", errObj["type"])

	help, ok := errObj["accessibility"].(map[string]interface{})
	require.True(t, ok, "error body must carry the accessibility block")
	assert.Equal(t, "The requested resource was not found.", help["screen_reader_message"])
	assert.Equal(t, "The item you're looking for couldn't be found.", help["user_friendly_message"])
	assert.NotEmpty(t, help["suggested_action"])
}

func TestDecoratorBinaryPassthrough(t *testing.T) {
	mockRouter := setupDecoratedRouter()
	for _, path := range []string{"/api/v1/report.png", "/api/v1/mislabeled"} {
		w := test.ExecuteAPITest(logger, t, mockRouter, test.RequestAPITest{
			Method:       http.MethodGet,
			Path:         path,
			WantResponse: []int{http.StatusOK},
		})
		// Headers still go out, bytes stay untouched
		assertComplianceHeaders(t, w.Header())
		assert.Equal(t, pngBytes, w.Body.Bytes(), "binary body must pass through unmodified for %s", path)
	}
}

func TestDecoratorPlainTextPassthrough(t *testing.T) {
	mockRouter := setupDecoratedRouter()
	w := test.ExecuteAPITest(logger, t, mockRouter, test.RequestAPITest{
		Method:       http.MethodGet,
		Path:         "/api/v1/plain",
		WantResponse: []int{http.StatusOK},
	})
	assertComplianceHeaders(t, w.Header())
	assert.Equal(t, "Welcome to Uplift!", w.Body.String())
}

func TestDecoratorEmptyBody(t *testing.T) {
	mockRouter := setupDecoratedRouter()
	w := test.ExecuteAPITest(logger, t, mockRouter, test.RequestAPITest{
		Method:       http.MethodGet,
		Path:         "/api/v1/nobody",
		WantResponse: []int{http.StatusNoContent},
	})
	assertComplianceHeaders(t, w.Header())
	assert.Zero(t, w.Body.Len())
}

func TestDecoratorPreservesStatusCode(t *testing.T) {
	mockRouter := setupDecoratedRouter()
	w := test.ExecuteAPITest(logger, t, mockRouter, test.RequestAPITest{
		Method:       http.MethodGet,
		Path:         "/api/v1/missing",
		WantResponse: []int{http.StatusNotFound},
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
}
