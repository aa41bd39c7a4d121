package telegram_bot

import (
	"context"
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"alzmate/internal/config"
	"alzmate/internal/models"
	"alzmate/internal/repository"
)

// Bot delivers caregiver alerts over Telegram. Caregivers link their chat
// with the /link command; afterwards high and urgent notifications are
// pushed to them.
type Bot struct {
	api      *tgbotapi.BotAPI
	logger   *zap.Logger
	userRepo repository.UserRepository
}

// NewBot creates a new Telegram bot instance. Returns nil when the bot is
// disabled in configuration.
func NewBot(cfg *config.Config, userRepo repository.UserRepository, logger *zap.Logger) (*Bot, error) {
	if !cfg.Telegram.Enabled || cfg.Telegram.BotToken == "" {
		logger.Info("Telegram bot is disabled (telegram.enabled=false or token is empty)")
		return nil, nil
	}

	botAPI, err := tgbotapi.NewBotAPI(cfg.Telegram.BotToken)
	if err != nil {
		return nil, fmt.Errorf("failed to create Telegram bot API: %w", err)
	}

	logger.Info("Telegram bot authorized", zap.String("username", botAPI.Self.UserName))

	return &Bot{
		api:      botAPI,
		logger:   logger,
		userRepo: userRepo,
	}, nil
}

// Start begins listening for updates from Telegram.
func (b *Bot) Start(ctx context.Context) error {
	if b == nil {
		return nil // Bot is disabled
	}

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := b.api.GetUpdatesChan(u)

	b.logger.Info("Telegram bot started, waiting for updates...")

	for {
		select {
		case <-ctx.Done():
			b.logger.Info("Telegram bot shutting down...")
			b.api.StopReceivingUpdates()
			return nil
		case update := <-updates:
			if update.Message != nil {
				b.handleMessage(update.Message)
			}
		}
	}
}

func (b *Bot) handleMessage(msg *tgbotapi.Message) {
	text := strings.TrimSpace(msg.Text)

	switch {
	case text == "/start":
		b.reply(msg.Chat.ID, "Send /link <username> to receive caregiver alerts for your account.")
	case strings.HasPrefix(text, "/link "):
		b.handleLink(msg.Chat.ID, strings.TrimSpace(strings.TrimPrefix(text, "/link ")))
	default:
		b.reply(msg.Chat.ID, "Unknown command. Use /link <username>.")
	}
}

// TODO: replace username-based linking with one-time link codes issued to
// the authenticated caregiver.
func (b *Bot) handleLink(chatID int64, username string) {
	user, err := b.userRepo.GetUserByUsername(username)
	if err != nil {
		b.logger.Error("Failed to look up user for Telegram link",
			zap.String("username", username), zap.Error(err))
		b.reply(chatID, "Something went wrong, please try again later.")
		return
	}
	if user == nil || user.Role != models.RoleCaregiver {
		b.reply(chatID, "No caregiver account found with that username.")
		return
	}

	if err := b.userRepo.SetTelegramChatID(username, chatID); err != nil {
		b.logger.Error("Failed to store Telegram chat ID",
			zap.String("username", username), zap.Error(err))
		b.reply(chatID, "Something went wrong, please try again later.")
		return
	}

	b.logger.Info("Caregiver linked Telegram chat",
		zap.String("username", username), zap.Int64("chat_id", chatID))
	b.reply(chatID, fmt.Sprintf("Linked! Alerts for %s will be delivered here.", username))
}

// SendAlert pushes a notification to a linked caregiver chat.
func (b *Bot) SendAlert(chatID int64, title, message string) error {
	if b == nil {
		return nil // Bot is disabled
	}

	msg := tgbotapi.NewMessage(chatID, fmt.Sprintf("⚠️ %s\n\n%s", title, message))
	if _, err := b.api.Send(msg); err != nil {
		return fmt.Errorf("failed to send Telegram alert: %w", err)
	}
	return nil
}

func (b *Bot) reply(chatID int64, text string) {
	if _, err := b.api.Send(tgbotapi.NewMessage(chatID, text)); err != nil {
		b.logger.Error("Failed to send Telegram reply", zap.Int64("chat_id", chatID), zap.Error(err))
	}
}
