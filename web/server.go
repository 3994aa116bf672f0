package web

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"zakat-chatbot/calculator"
	"zakat-chatbot/config"
	"zakat-chatbot/database"
	"zakat-chatbot/web/handlers"
	"zakat-chatbot/web/middleware"
	"zakat-chatbot/web/services"
)

type Server struct {
	router      *gin.Engine
	logger      *zap.Logger
	config      *config.Config
	rateLimiter *middleware.SessionRateLimiter
}

func NewServer(
	cfg *config.Config,
	logger *zap.Logger,
	store *database.PostgresStore,
	chatService *services.ChatService,
	sessionService *services.SessionService,
	calc *calculator.Calculator,
) *Server {
	// Set Gin mode based on environment
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()

	// Add middleware
	router.Use(gin.Recovery())
	router.Use(middleware.CORSMiddleware())
	router.Use(func(c *gin.Context) {
		// Add logger to context
		c.Set("logger", logger)
		c.Next()
	})
	router.Use(middleware.SessionMiddleware())

	server := &Server{
		router:      router,
		logger:      logger,
		config:      cfg,
		rateLimiter: middleware.NewSessionRateLimiter(cfg, logger),
	}

	server.setupRoutes(store, chatService, sessionService, calc)
	return server
}

func (s *Server) setupRoutes(
	store *database.PostgresStore,
	chatService *services.ChatService,
	sessionService *services.SessionService,
	calc *calculator.Calculator,
) {
	chatHandler := handlers.NewChatHandler(chatService, sessionService, store, s.logger)
	healthHandler := handlers.NewHealthHandler(s.config, store, s.logger)
	faqHandler := handlers.NewFAQHandler(store, chatService, s.logger)
	chatLogHandler := handlers.NewChatLogHandler(store, s.logger)
	reminderHandler := handlers.NewReminderHandler(store, s.logger)
	calculatorHandler := handlers.NewCalculatorHandler(calc, s.logger)

	// Conversation routes
	s.router.POST("/chat", middleware.RateLimitMiddleware(s.rateLimiter), chatHandler.HandleChat)
	s.router.GET("/chat/history/:session_id", chatHandler.HandleHistory)
	s.router.POST("/chat/clear/:session_id", chatHandler.HandleClear)

	s.router.GET("/health", healthHandler.HandleHealth)
	s.router.GET("/faqs", faqHandler.HandleList)
	s.router.POST("/retrain", faqHandler.HandleRetrain)

	// Admin panel routes
	adminFAQs := s.router.Group("/admin/faqs")
	{
		adminFAQs.GET("", faqHandler.HandleAdminList)
		adminFAQs.POST("", faqHandler.HandleCreate)
		adminFAQs.GET("/:id", faqHandler.HandleGet)
		adminFAQs.PUT("/:id", faqHandler.HandleUpdate)
		adminFAQs.PATCH("/:id", faqHandler.HandleUpdate)
		adminFAQs.DELETE("/:id", faqHandler.HandleDelete)
	}

	adminLogs := s.router.Group("/admin/chat-logs")
	{
		adminLogs.GET("", chatLogHandler.HandleList)
		adminLogs.GET("/stats", chatLogHandler.HandleStats)
		adminLogs.GET("/:id", chatLogHandler.HandleGet)
		adminLogs.DELETE("/:id", chatLogHandler.HandleDelete)
		adminLogs.POST("/bulk-delete", chatLogHandler.HandleBulkDelete)
		adminLogs.POST("/clear-old", chatLogHandler.HandleClearOld)
	}

	adminReminders := s.router.Group("/admin/reminders")
	{
		adminReminders.GET("", reminderHandler.HandleAdminList)
		adminReminders.GET("/stats", reminderHandler.HandleStats)
		adminReminders.GET("/:id", reminderHandler.HandleGet)
		adminReminders.DELETE("/:id", reminderHandler.HandleDelete)
	}

	// Widget routes
	s.router.POST("/api/save-reminder", reminderHandler.HandleSave)
	s.router.GET("/api/reminders", reminderHandler.HandleRecent)

	// Calculator routes
	s.router.POST("/calculate-zakat", calculatorHandler.HandleCalculate)
	s.router.GET("/zakat/nisab-info", calculatorHandler.HandleNisabInfo)
	s.router.GET("/zakat/years", calculatorHandler.HandleYears)
	s.router.GET("/zakat/help", calculatorHandler.HandleHelp)
}

func (s *Server) Start(ctx context.Context, addr string) error {
	s.logger.Info("Starting web server", zap.String("address", addr))

	srv := &http.Server{
		Addr:    addr,
		Handler: s.router,
	}

	// Start server in a goroutine
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			s.logger.Error("Web server failed to start", zap.Error(err))
		}
	}()

	// Wait for context cancellation
	<-ctx.Done()

	s.logger.Info("Shutting down web server")
	s.rateLimiter.Stop()
	return srv.Shutdown(context.Background())
}
