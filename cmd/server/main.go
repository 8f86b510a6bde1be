package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/12OneTwo12/upvy-sub004/internal/common"
	"github.com/12OneTwo12/upvy-sub004/internal/wire"
)

func main() {
	ctx := context.Background()

	app, err := wire.InitializeApplication(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize application: %v\n", err)
		os.Exit(1)
	}
	logger := app.Logger

	if err := common.ConfigureJWT(app.Config.Auth.JWTSecret); err != nil {
		logger.Fatal().Err(err).Msg("JWT_SECRET is required")
	}

	server := &http.Server{
		Addr:           fmt.Sprintf("%s:%s", app.Config.Server.Host, app.Config.Server.Port),
		Handler:        app.Router,
		ReadTimeout:    time.Duration(app.Config.Server.ReadTimeout) * time.Second,
		WriteTimeout:   time.Duration(app.Config.Server.WriteTimeout) * time.Second,
		MaxHeaderBytes: 1 << 20,
	}

	go func() {
		logger.Info().Str("addr", server.Addr).Msg("server starting")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Warn().Err(err).Msg("forced server shutdown")
	}

	// drain in-flight interaction events before closing connections
	app.Bus.Shutdown()

	if err := app.Mongo.Close(shutdownCtx); err != nil {
		logger.Warn().Err(err).Msg("mongo close failed")
	}

	logger.Info().Msg("server stopped")
}
