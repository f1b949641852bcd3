// HTTP API справочников: айдолы, группы, внешние приложения, CSV импорт/экспорт
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
	interf "github.com/glkeru/kvote/internal/interfaces"
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
	port := os.Getenv("KVOTE_MASTER_PORT")
	if port == "" {
		panic("env KVOTE_MASTER_PORT is not set")
	}

	// tracing
	shutdown := otel.InitTracer(context.Background(), "kvote-master")
	defer shutdown()

	// database
	var storage interf.MasterStorage
	dt, err := db.NewMasterDB()
	if err != nil {
		panic(err)
	}
	storage = dt

	// auth
	auth, err := api.NewTokenVerifier()
	if err != nil {
		panic(err)
	}

	// services
	csv := services.NewMasterService(logger, storage)

	// api handlers
	r := api.NewMasterHandler(storage, csv, auth, logger)
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
