// cmd/register/main.go
//
// One-shot registrar for the static management command. Run it once after
// deploying, or whenever the command definition changes. Set
// REGISTER_GUILD_ID to install the commands guild-scoped (instant
// propagation) instead of globally.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/bwmarrin/discordgo"
	"golang.org/x/time/rate"

	"commandeer/internal/config"
	"commandeer/internal/logging"
	"commandeer/internal/manager"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cfg, err := config.New()
	if err != nil {
		log.Fatal(err)
	}
	logger := logging.New(cfg.LogLevel, cfg.LogFile, cfg.LogPretty)

	session, err := discordgo.New("Bot " + cfg.DiscordToken)
	if err != nil {
		logger.Fatal().Err(err).Msg("discord session")
	}

	guildID := os.Getenv("REGISTER_GUILD_ID")
	scope := "global"
	if guildID != "" {
		scope = "guild " + guildID
	}

	wanted := manager.GlobalCommands()
	wantedNames := make(map[string]bool, len(wanted))
	for _, cmd := range wanted {
		wantedNames[cmd.Name] = true
	}

	// Stay well under the application-command rate bucket.
	limiter := rate.NewLimiter(rate.Limit(2), 1)

	existing, err := session.ApplicationCommands(cfg.DiscordAppID, guildID, discordgo.WithContext(ctx))
	if err != nil {
		logger.Fatal().Err(err).Str("scope", scope).Msg("list commands")
	}

	for _, cmd := range wanted {
		if err := limiter.Wait(ctx); err != nil {
			logger.Fatal().Err(err).Msg("interrupted")
		}
		created, err := session.ApplicationCommandCreate(cfg.DiscordAppID, guildID, cmd, discordgo.WithContext(ctx))
		if err != nil {
			logger.Fatal().Err(err).Str("command", cmd.Name).Msg("register command")
		}
		logger.Info().Str("command", created.Name).Str("id", created.ID).Str("scope", scope).Msg("registered")
	}

	// Drop stale statically-registered commands, global scope only: a
	// guild's command list also contains admin-created custom commands,
	// which must survive a registrar run.
	if guildID != "" {
		return
	}
	for _, cmd := range existing {
		if wantedNames[cmd.Name] {
			continue
		}
		if err := limiter.Wait(ctx); err != nil {
			logger.Fatal().Err(err).Msg("interrupted")
		}
		if err := session.ApplicationCommandDelete(cfg.DiscordAppID, guildID, cmd.ID, discordgo.WithContext(ctx)); err != nil {
			logger.Warn().Err(err).Str("command", cmd.Name).Msg("delete stale command")
			continue
		}
		logger.Info().Str("command", cmd.Name).Str("scope", scope).Msg("removed stale command")
	}
}
