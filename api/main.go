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

	"github.com/joho/godotenv"
	"github.com/rogerio-castellano/noticeboard/internal/auth"
	"github.com/rogerio-castellano/noticeboard/internal/config"
	"github.com/rogerio-castellano/noticeboard/internal/http/handlers"
	"github.com/rogerio-castellano/noticeboard/internal/http/router"
	"github.com/rogerio-castellano/noticeboard/internal/logger"
	"github.com/sirupsen/logrus"
)

// @title Noticeboard API
// @version 1.0
// @description REST API for registering users and publishing announcements.
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		logrus.Fatalf("Could not load .env file: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("Invalid configuration: %v", err)
	}

	log, err := logger.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		logrus.Fatalf("Invalid logger configuration: %v", err)
	}

	if err := run(cfg, log); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}

// run returns only after the server has stopped and the stores are closed.
func run(cfg config.Config, log *logrus.Logger) error {
	ctx := context.Background()

	st, err := openStores(ctx, cfg, log)
	if err != nil {
		return fmt.Errorf("open storage: %w", err)
	}
	defer st.Close()

	tokens := auth.NewTokenService([]byte(cfg.JWTSecret), cfg.TokenTTL, st.tokens)
	guard := auth.NewGuard(tokens, st.users)
	authService := auth.NewService(st.users, tokens)

	srv := handlers.NewServer(authService, st.announcements, st.metrics, log)

	httpServer := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           router.NewRouter(srv, guard, log),
		ReadHeaderTimeout: 5 * time.Second,
	}

	log.WithFields(logrus.Fields{
		"addr":        cfg.HTTPAddr,
		"storage":     cfg.StorageDriver,
		"token_store": cfg.TokenStore,
		"token_ttl":   tokens.TTL().String(),
	}).Info("Server running")

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	return serve(httpServer, sigCh, log)
}

// serve runs httpServer until a signal arrives on stop, then shuts it down
// gracefully. A listen failure is returned instead of exiting.
func serve(httpServer *http.Server, stop <-chan os.Signal, log logrus.FieldLogger) error {
	serveErr := make(chan error, 1)
	go func() {
		serveErr <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-stop:
	}

	log.Info("Gracefully shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
