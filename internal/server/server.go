package server

import (
	"net/http"

	"alzmate/internal/config"
	"alzmate/internal/handler"
	"alzmate/internal/media"
	"alzmate/internal/middleware"
	"alzmate/internal/repository"
	"alzmate/internal/service"
	"alzmate/internal/telegram_bot"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
	"go.uber.org/zap"
)

type Server struct {
	router    *gin.Engine
	db        *sqlx.DB
	cfg       *config.Config
	logger    *zap.Logger
	log       *logrus.Logger
	bot       *telegram_bot.Bot
	uploader  media.Uploader
	masterKey []byte
}

func NewServer(db *sqlx.DB, cfg *config.Config, logger *zap.Logger, bot *telegram_bot.Bot, uploader media.Uploader, masterKey []byte) *Server {
	router := gin.Default()

	if len(cfg.CORS.AllowedOrigins) > 0 {
		corsConfig := cors.DefaultConfig()
		corsConfig.AllowOrigins = cfg.CORS.AllowedOrigins
		corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization")
		router.Use(cors.New(corsConfig))
	}

	s := &Server{
		router:    router,
		db:        db,
		cfg:       cfg,
		logger:    logger,
		log:       logrus.New(),
		bot:       bot,
		uploader:  uploader,
		masterKey: masterKey,
	}

	s.setupRoutes()

	return s
}

func (s *Server) setupRoutes() {
	// Repositories
	userRepo := repository.NewUserRepository(s.db, s.logger)
	journalRepo := repository.NewJournalRepository(s.db, s.masterKey, s.logger)
	taskRepo := repository.NewTaskRepository(s.db, s.logger)
	progressRepo := repository.NewProgressRepository(s.db, s.logger)
	notificationRepo := repository.NewNotificationRepository(s.db, s.logger)

	// Services
	var sender service.AlertSender
	if s.bot != nil {
		sender = s.bot
	}
	authService := service.NewAuthService(userRepo, s.logger)
	notificationService := service.NewNotificationService(notificationRepo, userRepo, sender, s.logger)
	journalService := service.NewJournalService(journalRepo, s.uploader, s.logger)
	emotionService := service.NewEmotionService(journalRepo, notificationService, s.logger)
	progressService := service.NewProgressService(progressRepo, taskRepo, journalRepo, notificationService, s.logger)
	taskService := service.NewTaskService(taskRepo, notificationService, s.logger)

	// Handlers
	authHandler := handler.NewAuthHandler(authService, s.log)
	journalHandler := handler.NewJournalHandler(journalService, s.log)
	emotionHandler := handler.NewEmotionHandler(emotionService, s.log)
	progressHandler := handler.NewProgressHandler(progressService, s.log)
	taskHandler := handler.NewTaskHandler(taskService, s.log)
	notificationHandler := handler.NewNotificationHandler(notificationService, s.log)

	// Ping route for health check
	s.router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
		})
	})

	// Authentication routes
	authGroup := s.router.Group("/api/auth")
	authGroup.POST("/register", authHandler.Register)
	authGroup.POST("/login", authHandler.Login)

	// Authenticated routes
	authRequired := s.router.Group("/api")
	authRequired.Use(middleware.AuthMiddleware(s.logger))
	{
		authRequired.POST("/journal/analyze", journalHandler.Analyze)
		authRequired.POST("/journal/analyze-audio", journalHandler.AnalyzeAudio)
		authRequired.GET("/journal/entries/:patient_id", journalHandler.Entries)

		authRequired.GET("/emotions/trends/:patient_id", emotionHandler.Trends)
		authRequired.GET("/emotions/daily-summary/:patient_id", emotionHandler.DailySummary)
		authRequired.GET("/emotions/weekly-summary/:patient_id", emotionHandler.WeeklySummary)
		authRequired.GET("/emotions/shift/:patient_id", emotionHandler.Shift)
		authRequired.GET("/emotions/persistent-negative/:patient_id", emotionHandler.PersistentNegative)
		authRequired.GET("/emotions/volatility/:patient_id", emotionHandler.Volatility)
		authRequired.GET("/emotions/trend-summary/:patient_id", emotionHandler.TrendSummary)

		authRequired.GET("/progress/weekly-score/:patient_id", progressHandler.WeeklyScore)
		authRequired.GET("/progress/weekly-report/:patient_id", progressHandler.WeeklyReport)
		authRequired.GET("/progress/decline/:patient_id", progressHandler.DeclineCheck)
		authRequired.GET("/reports/weekly/:patient_id", progressHandler.CombinedReport)

		authRequired.POST("/reminders", taskHandler.CreateReminder)
		authRequired.POST("/reminders/:id/complete", taskHandler.CompleteReminder)
		authRequired.POST("/reminders/:id/miss", taskHandler.MissReminder)
		authRequired.POST("/game-scores", taskHandler.RecordGameScore)

		authRequired.POST("/caregivers/link", authHandler.LinkCaregiver)

		authRequired.GET("/notifications", notificationHandler.List)
		authRequired.POST("/notifications/:id/read", notificationHandler.MarkRead)
	}
}

func (s *Server) Run(addr string) {
	s.log.Infof("Server starting on port %s...", addr)
	if err := s.router.Run(addr); err != nil {
		s.log.Fatalf("Server failed to start: %v", err)
	}
}
