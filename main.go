package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"alzmate/internal/config"
	"alzmate/internal/crypto"
	"alzmate/internal/media"
	"alzmate/internal/report_scheduler"
	"alzmate/internal/repository"
	"alzmate/internal/server"
	"alzmate/internal/service"
	"alzmate/internal/telegram_bot"
)

func main() {
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err) // Should not happen in development
	}
	defer func() {
		_ = logger.Sync() // Flushes buffer, if any
	}()

	// Load configuration
	cfgPath := "configs/config.yml"
	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		logger.Fatal("Failed to load config", zap.Error(err))
	}

	// Master key for journal-text encryption at rest
	masterKey, err := crypto.LoadMasterKey()
	if err != nil {
		logger.Fatal("Failed to load master key", zap.Error(err))
	}

	// Database connection
	db, err := repository.NewPostgresDB(cfg.Database.URL, logger)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	// Run migrations
	repository.MigrateDB(db, logger)

	// Initialize repositories
	userRepo := repository.NewUserRepository(db, logger)
	journalRepo := repository.NewJournalRepository(db, masterKey, logger)
	taskRepo := repository.NewTaskRepository(db, logger)
	progressRepo := repository.NewProgressRepository(db, logger)
	notificationRepo := repository.NewNotificationRepository(db, logger)

	// Initialize audio uploader (optional)
	var uploader media.Uploader
	if cfg.Cloudinary.Enabled {
		uploader, err = media.NewCloudinaryUploader(cfg.Cloudinary.CloudName, cfg.Cloudinary.APIKey, cfg.Cloudinary.APISecret, logger)
		if err != nil {
			logger.Warn("Failed to initialize Cloudinary uploader, continuing without audio uploads", zap.Error(err))
			uploader = nil
		}
	}

	// Initialize Telegram bot for caregiver alerts
	bot, err := telegram_bot.NewBot(cfg, userRepo, logger)
	if err != nil {
		logger.Warn("Failed to initialize Telegram bot, continuing without it", zap.Error(err))
		bot = nil
	}

	// Context for graceful shutdown
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// Run Telegram bot in a goroutine (if enabled)
	if bot != nil {
		go func() {
			if err := bot.Start(ctx); err != nil {
				logger.Error("Telegram bot failed", zap.Error(err))
			}
		}()
	}

	// Run the weekly report scheduler in a goroutine (if enabled)
	if cfg.Scheduler.Enabled {
		var sender service.AlertSender
		if bot != nil {
			sender = bot
		}
		notificationService := service.NewNotificationService(notificationRepo, userRepo, sender, logger)
		progressService := service.NewProgressService(progressRepo, taskRepo, journalRepo, notificationService, logger)
		scheduler := report_scheduler.NewScheduler(progressService, userRepo, logger, cfg.Scheduler.SweepInterval)
		go scheduler.Run(ctx)
	}

	// Initialize and run the server
	srv := server.NewServer(db, cfg, logger, bot, uploader, masterKey)
	srv.Run(cfg.Server.Port)

	<-ctx.Done()
	logger.Info("Application stopped.")
}
