package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"

	"inn-lookup-bot/internal/application/usecases"
	"inn-lookup-bot/internal/config"
	"inn-lookup-bot/internal/infrastructure/cache"
	"inn-lookup-bot/internal/infrastructure/logging"
	"inn-lookup-bot/internal/infrastructure/metrics"
	"inn-lookup-bot/internal/infrastructure/registry"
	"inn-lookup-bot/internal/infrastructure/telegram"
	"inn-lookup-bot/internal/interfaces/telegram/handlers"

	telegramif "inn-lookup-bot/internal/interfaces/telegram"
)

func main() {
	// Load configuration
	configPath := os.Getenv("INNBOT_CONFIG")
	if configPath == "" {
		configPath = "config.yaml"
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	if err := logging.Setup(cfg.Log.Level, cfg.Log.Format); err != nil {
		log.Fatal().Err(err).Msg("failed to set up logging")
	}

	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("invalid config")
	}

	m := metrics.New()

	// Initialize registry client and result cache
	registryClient, err := registry.NewClient(cfg.Registry.APIURL, cfg.Registry.APIKey,
		registry.WithTimeout(cfg.Registry.Timeout),
		registry.WithObserver(m),
	)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create registry client")
	}
	lastResult := cache.NewLastResult()

	// Initialize Telegram bot
	bot, err := telegram.NewBot(cfg.Bot.Token, cfg.Bot.Debug)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create bot")
	}

	if err := bot.DeleteWebhook(); err != nil {
		log.Warn().Err(err).Msg("failed to delete webhook")
	}

	// Setup bot commands with Telegram
	if err := bot.SetupCommands(); err != nil {
		log.Warn().Err(err).Msg("failed to setup bot commands, they won't show in Telegram's menu")
	}

	// Wire handlers
	innUseCase := usecases.NewInnUseCase(registryClient, lastResult)
	dispatcher := telegramif.NewDispatcher(bot, bot.Username(), m)
	handlers.NewCommandHandlers(innUseCase).RegisterHandlers(dispatcher)
	handler := handlers.NewBotHandler(bot, dispatcher)

	// Handle graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.Metrics.Addr != "" {
		go func() {
			if err := m.Serve(ctx, cfg.Metrics.Addr); err != nil {
				log.Error().Err(err).Msg("metrics server stopped")
			}
		}()
	}

	log.Info().Msg("starting INN lookup bot, press Ctrl+C to stop")

	if err := handler.Start(ctx); err != nil {
		log.Fatal().Err(err).Msg("bot error")
	}
	log.Info().Msg("shut down")
}
