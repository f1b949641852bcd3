// HTTP API баллов: покупки, подписки, баланс, история
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	api "github.com/glkeru/kvote/internal/api"
	db "github.com/glkeru/kvote/internal/db"
	appstore "github.com/glkeru/kvote/internal/external/appstore"
	interf "github.com/glkeru/kvote/internal/interfaces"
	model "github.com/glkeru/kvote/internal/models"
	services "github.com/glkeru/kvote/internal/services"
	otel "github.com/glkeru/kvote/observability/otel"
	"go.uber.org/zap"
)

func main() {
	// log
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	// config
	port := os.Getenv("KVOTE_PORT")
	if port == "" {
		panic("env KVOTE_PORT is not set")
	}

	// tracing
	shutdown := otel.InitTracer(context.Background(), "kvote-server")
	defer shutdown()

	// database
	var storage interf.LedgerStorage
	dt, err := db.NewLedgerDB(logger)
	if err != nil {
		panic(err)
	}
	storage = dt

	// cache
	var cache interf.CacheStorage
	cache, err = db.NewCacheService()
	if err != nil {
		logger.Error(err.Error())
		cache = nil
	}

	// верификация чеков
	verifier, err := appstore.NewClient()
	if err != nil {
		panic(err)
	}

	// auth
	auth, err := api.NewTokenVerifier()
	if err != nil {
		panic(err)
	}

	// services
	iap := services.NewIAPService(logger, storage, cache, verifier, model.DefaultCatalog())
	points := services.NewPointsService(logger, storage, cache)

	// api handlers
	r := api.NewLedgerHandler(iap, points, auth, logger)
	srv := &http.Server{
		Handler:      r,
		Addr:         ":" + port,
		WriteTimeout: 10 * time.Second,
		ReadTimeout:  10 * time.Second,
	}
	go srv.ListenAndServe()

	// shutdown
	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)
	<-interrupt
	timeout, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	err = srv.Shutdown(timeout)
	if err != nil {
		logger.Error("shutdown error", zap.Error(err))
	}
}
