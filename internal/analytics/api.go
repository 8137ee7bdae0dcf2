// Exposes all of the REST APIs related to analytics in Uplift.

package analytics

import (
	"Uplift/internal/errors"
	"Uplift/pkg/log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// Registers all of the REST API handlers related to internal package analytics onto the gin server.
func APIHandlers(router *gin.Engine, service Service, logger log.Logger) {
	analyticsGroup := router.Group("/api/analytics")
	{
		analyticsGroup.GET("/recent", recentEvents(service, logger))
	}
}

// recentEvents returns a handler serving the most recent assembled events.
func recentEvents(service Service, logger log.Logger) gin.HandlerFunc {
	return func(gctx *gin.Context) {
		count := int64(20)
		if raw := gctx.Query("count"); raw != "" {
			parsed, prserr := strconv.ParseInt(raw, 10, 64)
			if prserr != nil || parsed <= 0 || parsed > 100 {
				gctx.JSON(http.StatusBadRequest, errors.BadRequest("count must be an integer between 1 and 100"))
				return
			}
			count = parsed
		}
		events, err := service.RecentEvents(gctx, count)
		if err != nil {
			// Error occured in RecentEvents()
			err, ok := err.(errors.ErrorResponse)
			if !ok {
				// Type assertion error
				gctx.JSON(http.StatusInternalServerError, errors.InternalServerError(""))
				return
			}
			gctx.JSON(err.StatusCode(), err)
			return
		}
		gctx.JSON(http.StatusOK, gin.H{"events": events, "count": len(events)})
	}
}
