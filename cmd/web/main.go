package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/AlexIvan10/Romanian-Football-Shop-sub000/internal/backend"
	"github.com/AlexIvan10/Romanian-Football-Shop-sub000/internal/config"
	webhttp "github.com/AlexIvan10/Romanian-Football-Shop-sub000/internal/http"
	"github.com/AlexIvan10/Romanian-Football-Shop-sub000/internal/storage"
)

func main() {
	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(log)

	if err := run(log); err != nil {
		log.Error("fatal", "error", err)
		os.Exit(1)
	}
}

func run(log *slog.Logger) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	api := backend.New(cfg.API.BaseURL, cfg.API.SessionCookie, cfg.API.Timeout, log)

	storeRes, err := storage.FromConfig(context.Background(), cfg.Storage)
	if err != nil {
		return err
	}

	gin.SetMode(gin.ReleaseMode)
	router, err := webhttp.NewRouter(webhttp.RouterDeps{
		Cfg:   cfg,
		API:   api,
		Store: storeRes.Storage,
		Log:   log,
	})
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("server listening", "addr", cfg.Addr, "api", cfg.API.BaseURL)
		errCh <- srv.ListenAndServe()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-stop:
		log.Info("shutting down", "signal", sig.String())
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
