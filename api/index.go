// Package handler is the serverless entry point. The platform calls Handler
// for every request; the router is built once per cold start.
package handler

import (
	"context"
	"net/http"
	"sync"

	"portfolio_api/internal/config"
	applog "portfolio_api/internal/log"
	"portfolio_api/internal/server"
)

var (
	once    sync.Once
	app     *server.App
	initErr error
)

func setup() {
	cfg, err := config.Load()
	if err != nil {
		initErr = err
		return
	}
	applog.Init(applog.Options{Level: cfg.Log.Level, Format: "json"})
	if err := cfg.Validate(); err != nil {
		initErr = err
		return
	}
	// Schema changes are applied with `portfolio-api migrate`, not per cold start.
	cfg.MigrateOnStart = false
	app, initErr = server.NewHandler(context.Background(), cfg)
}

func Handler(w http.ResponseWriter, r *http.Request) {
	once.Do(setup)
	if initErr != nil {
		applog.WithComponent("serverless").Error("startup failed", "error", initErr)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"Server configuration error"}`))
		return
	}
	app.Handler.ServeHTTP(w, r)
}
