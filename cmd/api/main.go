package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"moneytrack/internal/config"
	"moneytrack/internal/database"
	mtHttp "moneytrack/internal/http"
	categoryHandler "moneytrack/internal/http/category"
	summaryHandler "moneytrack/internal/http/summary"
	txHandler "moneytrack/internal/http/transaction"
	"moneytrack/internal/transaction"
	txStore "moneytrack/internal/transaction/store"
)

func main() {
	// Best-effort: a missing .env just means the environment is already set.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	db, err := database.New(cfg.ConnectionString())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		slog.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	transactionService := transaction.NewService(txStore.New(db))

	var (
		transactionH = txHandler.NewHandler(transactionService)
		summaryH     = summaryHandler.NewHandler(transactionService)
		categoryH    = categoryHandler.NewHandler()
	)

	router := mtHttp.New(transactionH, summaryH, categoryH)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	slog.Info("starting server", "name", cfg.App.Name, "port", port)

	if err := http.ListenAndServe(port, router); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
