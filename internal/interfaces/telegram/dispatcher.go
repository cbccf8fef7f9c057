package telegram

import (
	"context"
	"errors"
	"sync"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"inn-lookup-bot/internal/domain/command"
)

// HandlerFunc produces the reply text for a parsed command
type HandlerFunc func(ctx context.Context, message *tgbotapi.Message, cmd command.Command) string

// Sender delivers a text reply to a chat
type Sender interface {
	SendMessage(chatID int64, text string) error
}

// UpdateObserver receives the content kind of every dispatched message
type UpdateObserver interface {
	ObserveUpdate(kind string)
}

// Dispatcher handles routing of Telegram updates to appropriate handlers
type Dispatcher interface {
	// RegisterHandler registers a handler for a specific command
	RegisterHandler(kind command.Kind, handler HandlerFunc)
	// Dispatch answers an update with exactly one message, or none if it carries no message
	Dispatch(ctx context.Context, update tgbotapi.Update)
}

// NewDispatcher creates a new dispatcher instance. botUsername is the bot's own
// account name, used to accept "/cmd@botUsername" in group chats. observer may be nil.
func NewDispatcher(sender Sender, botUsername string, observer UpdateObserver) Dispatcher {
	return &defaultDispatcher{
		sender:      sender,
		botUsername: botUsername,
		observer:    observer,
		handlers:    make(map[command.Kind]HandlerFunc),
	}
}

type defaultDispatcher struct {
	sender      Sender
	botUsername string
	observer    UpdateObserver
	handlers    map[command.Kind]HandlerFunc

	unauthorizedOnce sync.Once
}

func (d *defaultDispatcher) RegisterHandler(kind command.Kind, handler HandlerFunc) {
	d.handlers[kind] = handler
}

func (d *defaultDispatcher) Dispatch(ctx context.Context, update tgbotapi.Update) {
	logger := log.With().
		Str("request_id", uuid.NewString()).
		Int("update_id", update.UpdateID).
		Logger()

	if update.Message == nil {
		logger.Info().Msg("update without message dropped")
		return
	}

	message := update.Message
	kind := DetectContent(message)

	lc := logger.With().Int("message_id", message.MessageID).Str("content", string(kind))
	if message.Chat != nil {
		lc = lc.Int64("chat_id", message.Chat.ID)
	}
	if message.From != nil {
		lc = lc.Int64("user_id", message.From.ID)
	}
	logger = lc.Logger()
	ctx = logger.WithContext(ctx)

	if d.observer != nil {
		d.observer.ObserveUpdate(string(kind))
	}

	var reply string
	if kind == ContentText {
		reply = d.route(ctx, message)
	} else {
		logger.Info().Msg("non-text message received")
		reply = MediaReply(kind)
	}

	if message.Chat == nil {
		logger.Warn().Msg("message without chat, reply dropped")
		return
	}
	d.send(ctx, message.Chat.ID, reply)
}

func (d *defaultDispatcher) route(ctx context.Context, message *tgbotapi.Message) string {
	cmd := command.Parse(message.Text, d.botUsername)
	logger := zerolog.Ctx(ctx)

	switch cmd.Kind {
	case command.Start, command.Help, command.Hello, command.Inn, command.Last:
		handler, ok := d.handlers[cmd.Kind]
		if ok {
			logger.Info().Str("command", cmd.Kind.String()).Msg("handling command")
			return handler(ctx, message, cmd)
		}
		logger.Warn().Str("command", cmd.Kind.String()).Msg("no handler registered")
		return UnknownCommandReply(cmd.Token)
	case command.Unknown:
		logger.Info().Str("token", cmd.Token).Msg("unknown command")
		return UnknownCommandReply(cmd.Token)
	default:
		return UnknownCommandReply(cmd.Token)
	}
}

// UnknownCommandReply is the answer for text that is not a known command
func UnknownCommandReply(token string) string {
	return "❗ Неизвестная команда '" + token + "'. Введите /help для списка доступных команд."
}

func (d *defaultDispatcher) send(ctx context.Context, chatID int64, text string) {
	err := d.sender.SendMessage(chatID, text)
	if err == nil {
		return
	}

	logger := zerolog.Ctx(ctx)
	var apiErr *tgbotapi.Error
	if errors.As(err, &apiErr) && apiErr.Code == 401 {
		d.unauthorizedOnce.Do(func() {
			logger.Error().Err(err).Msg("telegram rejected the bot token")
		})
		return
	}
	logger.Error().Err(err).Msg("failed to send reply")
}
