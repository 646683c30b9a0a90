package main

import (
	"context"
	"database/sql"
	"errors"
	stdhttp "net/http"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"
	"github.com/sirupsen/logrus"

	handler "github.com/SchoolKitHub/nakedtruth-polling-app/internal/adapters/handler/http"
	"github.com/SchoolKitHub/nakedtruth-polling-app/internal/adapters/pubsub"
	repo "github.com/SchoolKitHub/nakedtruth-polling-app/internal/adapters/repository/postgres"
	"github.com/SchoolKitHub/nakedtruth-polling-app/internal/config"
	"github.com/SchoolKitHub/nakedtruth-polling-app/internal/core/identity"
	"github.com/SchoolKitHub/nakedtruth-polling-app/internal/core/services"
)

func main() {
	cfg := config.Load()

	db, err := sql.Open("postgres", cfg.ConnString())
	if err != nil {
		logrus.WithError(err).Fatal("failed to open database")
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		logrus.WithError(err).Fatal("failed to reach database")
	}

	responseRepo := repo.NewResponseRepository(db)
	cacheRepo := repo.NewResultsCacheRepository(db)
	broker := pubsub.NewBroker()
	hasher := identity.NewHasher(cfg.IdentitySalt)

	submissionSvc := services.NewSubmissionService(responseRepo, hasher, broker)
	resultsSvc := services.NewResultsService(responseRepo)
	cacheSvc := services.NewCacheService(resultsSvc, cacheRepo)

	router := handler.NewHandler(
		handler.NewSubmissionHandler(submissionSvc),
		handler.NewResultsHandler(resultsSvc, cacheSvc),
		handler.NewCandidateHandler(),
		handler.NewEventsHandler(broker),
		handler.NewHealthHandler(responseRepo),
	)

	server := &stdhttp.Server{Addr: cfg.Addr, Handler: router}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		logrus.WithField("addr", cfg.Addr).Info("starting server")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, stdhttp.ErrServerClosed) {
			logrus.WithError(err).Fatal("server failed")
		}
	}()

	<-ctx.Done()
	logrus.Info("gracefully shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Fatal("shutdown failed")
	}
}
