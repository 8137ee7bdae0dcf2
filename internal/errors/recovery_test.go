package errors_test

import (
	"Uplift/internal/errors"
	"Uplift/internal/test"
	"Uplift/pkg/log"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

var logger = log.New("test")

func TestRecoveryConvertsPanicToErrorBody(t *testing.T) {
	router := test.MockRouter()
	router.Use(errors.RecoveryMiddleware(logger))
	router.GET("/boom", func(gctx *gin.Context) {
		panic("handler exploded")
	})

	w := test.ExecuteAPITest(logger, t, router, test.RequestAPITest{
		Method:       "GET",
		Path:         "/boom",
		WantResponse: []int{http.StatusInternalServerError},
	})

	var resp errors.ErrorResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, http.StatusInternalServerError, resp.Err.Code)
	assert.Equal(t, "server_error", resp.Err.Type)
	assert.NotEmpty(t, resp.Err.Message)
}

func TestRecoveryLeavesWrittenResponseAlone(t *testing.T) {
	router := test.MockRouter()
	router.Use(errors.RecoveryMiddleware(logger))
	router.GET("/late", func(gctx *gin.Context) {
		gctx.JSON(http.StatusOK, gin.H{"partial": true})
		panic("after write")
	})

	w := test.ExecuteAPITest(logger, t, router, test.RequestAPITest{
		Method:       "GET",
		Path:         "/late",
		WantResponse: []int{http.StatusOK},
	})
	assert.Contains(t, w.Body.String(), "partial")
}

func TestRecoveryDoesNotTouchHealthyRequests(t *testing.T) {
	router := test.MockRouter()
	router.Use(errors.RecoveryMiddleware(logger))
	router.GET("/fine", func(gctx *gin.Context) {
		gctx.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})

	test.ExecuteAPITest(logger, t, router, test.RequestAPITest{
		Method:       "GET",
		Path:         "/fine",
		WantResponse: []int{http.StatusOK},
	})
}

func TestGenerateValidationErrorResponse(t *testing.T) {
	errs := []error{
		errors.New("SubjectID: non space characters only"),
		errors.New("plain failure"),
	}
	resp := errors.GenerateValidationErrorResponse(errs)
	assert.Equal(t, http.StatusBadRequest, resp.Err.Code)
	assert.Equal(t, "validation_error", resp.Err.Type)

	details, ok := resp.Err.Details.(errors.ValidationErrorResponse)
	assert.True(t, ok)
	assert.Len(t, details.Response, 2)
}
