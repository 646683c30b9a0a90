package main

import (
	"context"
	"database/sql"
	"flag"
	"os"
	"time"

	_ "github.com/lib/pq"
	"github.com/sirupsen/logrus"

	repo "github.com/SchoolKitHub/nakedtruth-polling-app/internal/adapters/repository/postgres"
	"github.com/SchoolKitHub/nakedtruth-polling-app/internal/config"
	"github.com/SchoolKitHub/nakedtruth-polling-app/internal/core/services"
)

// One-shot job that materializes the aggregate results into the
// results_cache table. Meant to run on a schedule; the live endpoint stays
// correct without it.
func main() {
	cfg := config.Load()

	var dbHost, dbPort, dbUser, dbPass, dbName string
	flag.StringVar(&dbHost, "db-host", cfg.DBHost, "Database host")
	flag.StringVar(&dbPort, "db-port", cfg.DBPort, "Database port")
	flag.StringVar(&dbUser, "db-user", cfg.DBUser, "Database user")
	flag.StringVar(&dbPass, "db-pass", cfg.DBPassword, "Database password")
	flag.StringVar(&dbName, "db-name", cfg.DBName, "Database name")
	flag.Parse()

	cfg.DBHost, cfg.DBPort, cfg.DBUser, cfg.DBPassword, cfg.DBName = dbHost, dbPort, dbUser, dbPass, dbName

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
	cacheSvc := services.NewCacheService(services.NewResultsService(responseRepo), cacheRepo)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	logrus.Info("refreshing results cache...")

	if err := cacheSvc.RefreshResultsCache(ctx); err != nil {
		logrus.WithError(err).Error("failed to refresh results cache")
		os.Exit(1)
	}

	logrus.Info("results cache refreshed successfully")
}
