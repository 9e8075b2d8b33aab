package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/ykigathi/click-movie-studios-sub000/internal/config"
)

// newConfigCmd returns the "config" subcommand group.
func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Configuration management",
	}

	cmd.AddCommand(
		newConfigValidateCmd(),
		newConfigShowCmd(),
		newConfigSetCmd(),
	)
	return cmd
}

func newConfigValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Validate the configuration file",
		RunE: func(_ *cobra.Command, _ []string) error {
			_, err := loadConfig(configPath)
			if err != nil {
				return err
			}
			fmt.Println(styleSuccess.Render("✓ Configuration is valid"))
			return nil
		},
	}
}

func newConfigShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the effective configuration",
		RunE: func(_ *cobra.Command, _ []string) error {
			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}

			fmt.Println(styleHeader.Render("Configuration"))
			fmt.Printf("%s %s\n", styleDim.Render("catalog source:"), sourceName(cfg))
			fmt.Printf("%s %s\n", styleDim.Render("tmdb.api_key:"), redact(cfg.TMDb.APIKey))
			fmt.Printf("%s %s\n", styleDim.Render("tmdb.language:"), cfg.TMDb.Language)
			fmt.Printf("%s %s\n", styleDim.Render("tmdb.region:"), cfg.TMDb.Region)
			fmt.Printf("%s %v\n", styleDim.Render("tmdb.include_adult:"), cfg.TMDb.IncludeAdult)
			fmt.Printf("%s %s\n", styleDim.Render("app.log_level:"), cfg.App.LogLevel)
			fmt.Printf("%s %s\n", styleDim.Render("app.data_dir:"), cfg.App.DataDir)
			if cfg.Telegram != nil {
				fmt.Printf("%s %s\n", styleDim.Render("telegram.bot_token:"), redact(cfg.Telegram.BotToken))
			}
			return nil
		},
	}
}

func newConfigSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Set a configuration value",
		Long: "Set a configuration value and write it back to the config file.\n" +
			"Supported keys: tmdb.api_key, tmdb.language, tmdb.region,\n" +
			"tmdb.include_adult, app.log_level, app.data_dir, telegram.bot_token.",
		Example: "  clickmovie config set tmdb.api_key YOUR_KEY",
		Args:    cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			return runConfigSet(args[0], args[1])
		},
	}
}

func runConfigSet(key, value string) error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}

	switch key {
	case "tmdb.api_key":
		cfg.TMDb.APIKey = value
	case "tmdb.language":
		cfg.TMDb.Language = value
	case "tmdb.region":
		cfg.TMDb.Region = value
	case "tmdb.include_adult":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("tmdb.include_adult must be true or false")
		}
		cfg.TMDb.IncludeAdult = b
	case "app.log_level":
		cfg.App.LogLevel = value
	case "app.data_dir":
		cfg.App.DataDir = value
	case "telegram.bot_token":
		if cfg.Telegram == nil {
			cfg.Telegram = &config.TelegramConfig{}
		}
		cfg.Telegram.BotToken = value
	default:
		return fmt.Errorf("unknown configuration key %q", key)
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	if err := cfg.Save(configPath); err != nil {
		return err
	}
	fmt.Println(styleSuccess.Render(fmt.Sprintf("Set %s.", key)))
	return nil
}

// redact hides all but the last 4 characters of a secret.
func redact(secret string) string {
	if secret == "" {
		return "(not set)"
	}
	if len(secret) <= 4 {
		return "****"
	}
	return "****" + secret[len(secret)-4:]
}

func sourceName(cfg *config.Config) string {
	if cfg.HasCredential() {
		return "tmdb"
	}
	return "local (no API key configured)"
}
