package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"time"

	activitystore "mergington/internal/activity/store/activity"
	documentstore "mergington/internal/activity/store/document"

	"mergington/internal/activity/store"
	dochandler "mergington/internal/document/handler"
	docservice "mergington/internal/document/service"
	enrollhandler "mergington/internal/enrollment/handler"
	enrollservice "mergington/internal/enrollment/service"
	"mergington/internal/platform/config"
	"mergington/internal/platform/httpserver"
	"mergington/internal/platform/logger"
	"mergington/internal/platform/metrics"
	queryhandler "mergington/internal/query/handler"
	queryservice "mergington/internal/query/service"
	httptransport "mergington/internal/transport/http"
)

// main wires high-level dependencies, exposes the HTTP router, and keeps the
// server lifecycle small. Business logic lives in internal services packages.
func main() {
	cfg := config.FromEnv()
	log := logger.New()
	m := metrics.New()

	activities := activitystore.NewInMemory()
	store.SeedActivities(activities)
	documents := documentstore.NewInMemory()

	enrollment := enrollservice.New(activities,
		enrollservice.WithLogger(log),
		enrollservice.WithMetrics(m),
	)
	docs := docservice.New(activities, documents,
		docservice.WithLogger(log),
		docservice.WithMetrics(m),
	)
	queries := queryservice.New(activities, documents)

	router := httptransport.NewRouter(httptransport.Deps{
		Logger:    log,
		Metrics:   m,
		StaticDir: cfg.StaticDir,
		Handlers: []httptransport.Registrar{
			enrollhandler.New(enrollment, log),
			dochandler.New(docs, log),
			queryhandler.New(queries, log),
		},
	})

	srv := httpserver.New(cfg.Addr, router)

	log.Info("starting activities server", "addr", cfg.Addr)

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("graceful shutdown failed", "error", err)
		os.Exit(1)
	}
}
