package telegram

import (
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/rs/zerolog/log"
)

// Bot wraps the Telegram bot API
type Bot struct {
	api *tgbotapi.BotAPI
}

// NewBot creates a new Telegram bot. An invalid token fails here.
func NewBot(token string, debug bool) (*Bot, error) {
	if err := tgbotapi.SetLogger(NewLogger(log.Logger)); err != nil {
		return nil, fmt.Errorf("failed to set bot logger: %w", err)
	}

	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("failed to create bot: %w", err)
	}

	api.Debug = debug
	log.Info().Str("account", api.Self.UserName).Msg("authorized on account")

	return &Bot{api: api}, nil
}

// Username returns the bot's account name without the leading "@"
func (b *Bot) Username() string {
	return b.api.Self.UserName
}

// DeleteWebhook removes any webhook so long polling can receive updates
func (b *Bot) DeleteWebhook() error {
	if _, err := b.api.Request(tgbotapi.DeleteWebhookConfig{}); err != nil {
		return fmt.Errorf("failed to delete webhook: %w", err)
	}
	return nil
}

// GetUpdatesChan returns a channel for receiving updates
func (b *Bot) GetUpdatesChan() tgbotapi.UpdatesChannel {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60
	u.AllowedUpdates = []string{"message"}
	return b.api.GetUpdatesChan(u)
}

// StopReceivingUpdates stops the long polling loop started by GetUpdatesChan
func (b *Bot) StopReceivingUpdates() {
	b.api.StopReceivingUpdates()
}

// SendMessage sends a plain text message
func (b *Bot) SendMessage(chatID int64, text string) error {
	msg := tgbotapi.NewMessage(chatID, text)
	_, err := b.api.Send(msg)
	return err
}

// SetupCommands configures the bot commands with BotFather
func (b *Bot) SetupCommands() error {
	commands := []tgbotapi.BotCommand{
		{
			Command:     "start",
			Description: "🏠 Приветствие",
		},
		{
			Command:     "help",
			Description: "❓ Список команд",
		},
		{
			Command:     "hello",
			Description: "👋 Поздороваться",
		},
		{
			Command:     "inn",
			Description: "🔎 Найти компании по ИНН",
		},
		{
			Command:     "last",
			Description: "🕘 Последний результат /inn",
		},
	}

	setCommands := tgbotapi.NewSetMyCommands(commands...)
	_, err := b.api.Request(setCommands)
	if err != nil {
		return fmt.Errorf("failed to set bot commands: %w", err)
	}

	log.Info().Msg("bot commands configured successfully")
	return nil
}
