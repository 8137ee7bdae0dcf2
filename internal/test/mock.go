// Mock methods required in Uplift tests are all here.

package test

import (
	"github.com/gin-gonic/gin"
)

// MockRouter returns a fresh gin engine for API tests.
// Each test file builds its own middleware chain on top of it.
func MockRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}
