package handlers

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"inn-lookup-bot/internal/application/usecases"
	"inn-lookup-bot/internal/domain/command"
	"inn-lookup-bot/internal/interfaces/telegram"
	"inn-lookup-bot/internal/interfaces/telegram/handlers/shared"
)

// CommandHandlers answers the bot's text commands
type CommandHandlers struct {
	innUseCase *usecases.InnUseCase
}

// NewCommandHandlers creates a new command handlers instance
func NewCommandHandlers(innUseCase *usecases.InnUseCase) *CommandHandlers {
	return &CommandHandlers{innUseCase: innUseCase}
}

// RegisterHandlers registers every command handler
func (h *CommandHandlers) RegisterHandlers(dispatcher telegram.Dispatcher) {
	dispatcher.RegisterHandler(command.Start, h.handleStart)
	dispatcher.RegisterHandler(command.Help, h.handleHelp)
	dispatcher.RegisterHandler(command.Hello, h.handleHello)
	dispatcher.RegisterHandler(command.Inn, h.handleInn)
	dispatcher.RegisterHandler(command.Last, h.handleLast)
}

// handleStart processes the /start command
func (h *CommandHandlers) handleStart(ctx context.Context, message *tgbotapi.Message, cmd command.Command) string {
	var firstName string
	if message.From != nil {
		firstName = message.From.FirstName
	}
	return shared.GetStartText(firstName)
}

// handleHelp processes the /help command
func (h *CommandHandlers) handleHelp(ctx context.Context, message *tgbotapi.Message, cmd command.Command) string {
	return shared.GetHelpText()
}

func (h *CommandHandlers) handleHello(ctx context.Context, message *tgbotapi.Message, cmd command.Command) string {
	return shared.GetHelloText()
}

// handleInn processes the /inn command
func (h *CommandHandlers) handleInn(ctx context.Context, message *tgbotapi.Message, cmd command.Command) string {
	return h.innUseCase.Handle(ctx, message.Text)
}

// handleLast processes the /last command
func (h *CommandHandlers) handleLast(ctx context.Context, message *tgbotapi.Message, cmd command.Command) string {
	return h.innUseCase.Last()
}
