package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"zakat-chatbot/assistant"
	"zakat-chatbot/calculator"
	"zakat-chatbot/config"
	"zakat-chatbot/database"
	"zakat-chatbot/nlp"
	"zakat-chatbot/web"
	"zakat-chatbot/web/services"
)

func main() {
	ctx := context.Background()

	// Initialize logger with default level to load config
	tempLogger, err := config.InitLogger("info")
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}

	// Load config (which includes log level setting)
	cfg := config.Load(tempLogger)

	// Re-initialize logger with configured level
	logger, err := config.InitLogger(cfg.LogLevel)
	if err != nil {
		fmt.Printf("Failed to re-initialize logger with configured level: %v\n", err)
		os.Exit(1)
	}
	defer config.Cleanup()

	store, err := database.NewPostgresStore(cfg.DatabaseURL)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer store.Close()

	// --- Ensure Schema Exists ---
	if err := store.EnsureSchema(ctx); err != nil {
		logger.Fatal("Failed to ensure database schema", zap.Error(err))
	}

	// Seed the starter FAQ set on an empty database
	faqCount, err := store.CountFAQs(ctx)
	if err != nil {
		logger.Fatal("Failed to count FAQs", zap.Error(err))
	}
	if faqCount == 0 {
		if err := store.SeedFAQs(ctx, database.DefaultFAQs()); err != nil {
			logger.Fatal("Failed to seed FAQs", zap.Error(err))
		}
		logger.Info("Seeded starter FAQs", zap.Int("count", len(database.DefaultFAQs())))
	}

	sessionService := services.NewSessionService(cfg, logger)

	// Assemble the matching engine
	tables := nlp.DefaultTables()
	normalizer := nlp.NewNormalizer(tables)
	extractor := nlp.NewKeywordExtractor(normalizer, tables)
	matcher := nlp.NewMatcher(nlp.NewScorer(normalizer, extractor), extractor)
	classifier := nlp.NewClassifier(normalizer, extractor, tables)
	responder := nlp.NewResponder(matcher, classifier, extractor, sessionService)

	var asst services.Assistant
	if cfg.AssistantEnabled {
		asst = assistant.New(cfg, logger)
	}

	chatService := services.NewChatService(cfg, store, responder, matcher, normalizer, asst, sessionService, logger)

	nisabClient := calculator.NewNisabClient(cfg, logger)
	calc := calculator.NewCalculator(nisabClient)

	// Initialize web server
	webServer := web.NewServer(cfg, logger, store, chatService, sessionService, calc)

	// Create context that listens for interrupt signals
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// Start background chat log retention
	if cfg.CleanupEnabled && cfg.LogRetentionDays > 0 {
		cleanupService := web.NewCleanupService(store, logger)
		go web.StartLogRetention(ctx, cfg, cleanupService, logger)
	}

	// Start web server
	port := ":" + cfg.WebPort
	logger.Info("Starting Zakat Kedah chatbot web server", zap.String("port", port))
	if err := webServer.Start(ctx, port); err != nil {
		logger.Error("Web server error", zap.Error(err))
	}

	sessionService.Stop()
}
