// Command qlessd runs the Q-Less solver as an HTTP service.
package main

import (
	"context"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"qless/internal/api"
	"qless/internal/dictionary"
	"qless/internal/history"
	"qless/internal/qless"
	"qless/internal/search"
)

func main() {
	_ = godotenv.Load()

	var (
		addr     = flag.String("addr", envOr("PORT", ":8080"), "HTTP server address")
		dbPath   = flag.String("db", envOr("DATABASE_PATH", "qless.db"), "SQLite database path, or \":memory:\"")
		dictPath = flag.String("dict", envOr("DICTIONARY_PATH", ""), "line-delimited word list (empty uses the built-in sample)")
	)
	flag.Parse()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	dict, err := loadDictionary(*dictPath)
	if err != nil {
		logger.Error("failed to load dictionary", "error", err)
		os.Exit(1)
	}
	logger.Info("dictionary loaded", "words", dict.Size())

	db, err := history.NewSQLiteStore(*dbPath)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := db.Migrate(context.Background()); err != nil {
		logger.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	solver := qless.NewSolver(dict, search.DefaultConfig())

	router := api.NewRouter(api.Config{
		Solver:  solver,
		History: db,
		Logger:  logger,
	})

	server := &http.Server{
		Addr:         *addr,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Info("starting server", "addr", *addr)
		if err := server.ListenAndServe(); err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	<-done
	logger.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Error("shutdown error", "error", err)
	}

	logger.Info("server stopped")
}

func loadDictionary(path string) (*dictionary.Dictionary, error) {
	if path == "" {
		return dictionary.SampleEnglishDictionary(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return dictionary.Load(f)
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
