package main

import (
	"context"
	"database/sql"
	"log/slog"
	"os"
	"time"

	"github.com/golang-cz/devslog"
	_ "github.com/lib/pq"
	"github.com/nexusclub/nexus-board/internal/auth"
	"github.com/nexusclub/nexus-board/internal/config"
	"github.com/nexusclub/nexus-board/internal/core"
	"github.com/nexusclub/nexus-board/internal/utils/databaseutils"
)

type application struct {
	config   *config.Config
	logger   *slog.Logger
	auth     *auth.Auth
	accounts accountService
	content  contentService
	likes    likeService
}

func main() {
	logger := configLogger()
	logger.Info("Starting application...")

	cfg := config.Load(os.Args[1:])

	db, err := openDBConnection(cfg.DatabaseDSN)
	if err != nil {
		logger.Error("Error opening database connection", "error", err)
		os.Exit(1)
	}

	defer func() {
		if err := db.Close(); err != nil {
			logger.Error("Error closing database connection", "error", err)
			os.Exit(1)
		}
	}()

	logger.Info("Database connection established successfully")

	boardCore := core.NewCore(db, logger, databaseutils.NewSQLTemplate(db, cfg.StoreTimeout))

	app := application{
		config:   cfg,
		logger:   logger,
		auth:     auth.New(&auth.BcryptVerifier{Hash: []byte(cfg.AdminPasswordHash)}, cfg.JWTSecret),
		accounts: boardCore,
		content:  boardCore,
		likes:    boardCore,
	}

	if err := app.serve(); err != nil {
		logger.Error("Error starting server", "error", err)
		os.Exit(1)
	}
}

func configLogger() *slog.Logger {
	handler := devslog.NewHandler(
		os.Stdout, &devslog.Options{
			HandlerOptions: &slog.HandlerOptions{
				AddSource: true,
				Level:     slog.LevelDebug,
			},
			NewLineAfterLog: false,
		})

	logger := slog.New(handler)
	return logger
}

func openDBConnection(dsn string) (*sql.DB, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, err
	}

	db.SetMaxIdleConns(10)
	db.SetConnMaxIdleTime(10 * time.Second)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		return nil, err
	}

	return db, nil
}
