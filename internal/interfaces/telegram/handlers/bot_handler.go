package handlers

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/rs/zerolog/log"

	"inn-lookup-bot/internal/interfaces/telegram"
)

// UpdateSource delivers Telegram updates
type UpdateSource interface {
	GetUpdatesChan() tgbotapi.UpdatesChannel
	StopReceivingUpdates()
}

// BotHandler handles Telegram bot interactions
type BotHandler struct {
	source     UpdateSource
	dispatcher telegram.Dispatcher
}

// NewBotHandler creates a new bot handler
func NewBotHandler(source UpdateSource, dispatcher telegram.Dispatcher) *BotHandler {
	return &BotHandler{
		source:     source,
		dispatcher: dispatcher,
	}
}

// Start receives updates until ctx is cancelled. Each update is handled to
// completion before the next one is read, so /inn batches never overlap.
// Cancelling ctx does not abort an update that is already being handled.
func (h *BotHandler) Start(ctx context.Context) error {
	updates := h.source.GetUpdatesChan()
	defer h.source.StopReceivingUpdates()

	log.Info().Msg("bot started, waiting for updates")

	for {
		select {
		case <-ctx.Done():
			log.Info().Msg("bot stopping")
			return nil
		case update, ok := <-updates:
			if !ok {
				log.Info().Msg("update channel closed")
				return nil
			}
			h.dispatcher.Dispatch(context.WithoutCancel(ctx), update)
		}
	}
}
