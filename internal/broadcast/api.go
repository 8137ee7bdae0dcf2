// Exposes the live-connection endpoint of Uplift.

package broadcast

import (
	"Uplift/pkg/log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Origin policy is handled by the CORS collaborator in front of this endpoint.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// Registers the live-connection handler related to internal package broadcast onto the gin server.
func APIHandlers(router *gin.Engine, service Service, logger log.Logger) {
	router.GET("/api/live", livehandler(service, logger))
}

// livehandler upgrades the request to a persistent live connection and blocks
// until the client disconnects.
func livehandler(service Service, logger log.Logger) gin.HandlerFunc {
	return func(gctx *gin.Context) {
		conn, uperr := upgrader.Upgrade(gctx.Writer, gctx.Request, nil)
		if uperr != nil {
			// Upgrader already answered the request with an error status
			logger.WithCtx(gctx).Warn().Err(uperr).Msg("Error occured during live connection upgrade")
			return
		}
		service.HandleConnection(gctx, conn)
	}
}
