package main

import (
	"context"
	"errors"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/ykigathi/click-movie-studios-sub000/internal/frontend/telegram"
)

// newBotCmd returns the "bot" subcommand for running the Telegram bot.
func newBotCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "bot",
		Short: "Start the Telegram bot",
		Long:  "Start the clickmovie Telegram bot for browsing the catalog via Telegram.",
		RunE: func(_ *cobra.Command, _ []string) error {
			return runBot()
		},
	}
}

func runBot() error {
	a, err := initApp(configPath)
	if err != nil {
		return err
	}

	if a.cfg.Telegram == nil {
		return errors.New(
			"telegram configuration is required: set telegram.bot_token in config or CLICKMOVIE_TELEGRAM_BOT_TOKEN env var",
		)
	}

	bot, err := telegram.New(
		a.cfg.Telegram.BotToken,
		a.cfg.Telegram.AllowedUserIDs,
		a.catalog,
		a.watchlist,
		a.logger,
	)
	if err != nil {
		return err
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	a.logger.Info("telegram bot starting")
	return bot.Start(ctx)
}
