package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"dictionary/internal/api"
	"dictionary/internal/config"
	"dictionary/internal/handler"
	"dictionary/internal/service"
	"dictionary/internal/storage"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	logger, err := newLogger(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("Starting dictionary",
		zap.String("env", cfg.Environment),
		zap.String("db_driver", cfg.Database.Driver),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Open database and apply migrations
	db, err := storage.Open(ctx, cfg, logger)
	if err != nil {
		logger.Fatal("Failed to open database", zap.Error(err))
	}
	defer db.Close()

	logger.Info("Database ready")

	// Initialize repositories
	repos := storage.NewRepositories(db, cfg.Database.Driver)

	// Initialize services
	languageService := service.NewLanguageService(repos.Languages, logger)
	wordService := service.NewWordService(repos.Words, repos.Languages, logger)
	translationService := service.NewTranslationService(repos.Words, repos.Translations, logger)

	// HTTP API
	server := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           api.NewServer(languageService, wordService, translationService, logger).Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		logger.Info("HTTP server listening", zap.String("addr", cfg.HTTPAddr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("HTTP server failed", zap.Error(err))
			stop()
		}
	}()

	// Telegram bot is optional
	var bot *tele.Bot
	if cfg.BotToken != "" {
		bot, err = tele.NewBot(tele.Settings{
			Token:  cfg.BotToken,
			Poller: &tele.LongPoller{Timeout: 10 * time.Second},
		})
		if err != nil {
			logger.Fatal("Failed to create bot", zap.Error(err))
		}

		h := handler.NewHandler(bot, languageService, wordService, translationService, logger)
		h.RegisterHandlers()

		go func() {
			logger.Info("Bot started successfully")
			bot.Start()
		}()
	} else {
		logger.Info("BOT_TOKEN not set, Telegram bot disabled")
	}

	<-ctx.Done()

	logger.Info("Shutdown signal received, stopping...")

	if bot != nil {
		bot.Stop()
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server shutdown failed", zap.Error(err))
	}

	logger.Info("Stopped gracefully")
}

func newLogger(cfg *config.Config) (*zap.Logger, error) {
	if cfg.IsProduction() {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}
