// The main file of Uplift.

package main

import (
	"Uplift/internal/config"
	"Uplift/pkg/cleanup"
	"Uplift/pkg/db"
	"Uplift/pkg/log"
	"Uplift/pkg/validation"
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
)

var (
	// Indicates the current version of Uplift.
	Version = "1.0.0"
	// Address and Port to be used by gin.
	srvaddr, srvport string
)

func main() {
	ctx := context.Background()
	logger := log.New(Version)

	env := os.Getenv("ENV")
	if len(env) == 0 {
		logger.Fatal().Err(errors.New("os couldn't load ENV.")).Msg("")
	}
	// Load the env file matching the environment flag
	config.LoadConfig(env)

	logger.Info().Msg(fmt.Sprintf("Welcome to Uplift: v%s", Version))
	logger.Info().Msg(fmt.Sprintf("Uplift Environment: %s", env))

	// This is the preferred mode used by gin server in DEV environment.
	if env == "DEV" {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connecting to the DB used by the event stream and live presence.
	dbConnWrp := db.NewDbConnection(ctx, logger)
	// Sending a PING request to DB for connection status check.
	dbConnWrp.CheckDbConnection(ctx, logger)

	// Registering custom validation tags used by the live-connection protocol.
	validation.RegisterCustomValidations()

	// Initializing the gin server.
	server := gin.New()

	// Running Router() which mounts the decoration pipeline and all of the API groups.
	Router(server, dbConnWrp, logger)

	// Fetching addr and port depending upon env flag.
	srvaddr, srvport = os.Getenv("SRV_ADDR"), os.Getenv("SRV_PORT")

	// Running the server with defined addr and port.
	srv := &http.Server{
		Addr:    srvaddr + ":" + srvport,
		Handler: server,
	}

	// ListenAndServe is a blocking operation, putting it a goroutine
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("")
		}
	}()

	// Graceful shutdown of Uplift server triggered due to system interruptions.
	wait := cleanup.GracefulShutdown(ctx, logger, 5*time.Second, map[string]cleanup.Operation{
		"Redis-server": func(ctx context.Context) error {
			return dbConnWrp.CloseDbConnection(ctx)
		},
		"Gin": func(ctx context.Context) error {
			return srv.Shutdown(ctx)
		},
	})
	<-wait
}
