// cmd/webhook/main.go
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/bwmarrin/discordgo"

	"commandeer/internal/config"
	"commandeer/internal/logging"
	"commandeer/internal/manager"
	"commandeer/internal/registry"
	"commandeer/internal/store"
	"commandeer/internal/webhook"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.New()
	if err != nil {
		log.Fatal(err)
	}

	logger := logging.New(cfg.LogLevel, cfg.LogFile, cfg.LogPretty)
	logger.Info().Str("backend", cfg.StorageBackend).Msg("starting webhook service")

	publicKey, err := cfg.DecodePublicKey()
	if err != nil {
		logger.Fatal().Err(err).Msg("bad public key")
	}

	var st store.Store
	switch cfg.StorageBackend {
	case "redis":
		st, err = store.OpenRedis(ctx, cfg.RedisAddr, cfg.RedisDB, logger)
	default:
		st, err = store.OpenFile(cfg.StoragePath, logger)
	}
	if err != nil {
		logger.Fatal().Err(err).Msg("open store")
	}
	defer func() {
		if err := st.Close(); err != nil {
			logger.Warn().Err(err).Msg("store close")
		}
	}()

	session, err := discordgo.New("Bot " + cfg.DiscordToken)
	if err != nil {
		logger.Fatal().Err(err).Msg("discord session")
	}

	reg := registry.NewDiscord(session, cfg.DiscordAppID)
	mgr := manager.New(st, reg, logger)
	srv := webhook.NewServer(cfg.ListenAddr, publicKey, mgr, logger)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Run(ctx)
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)

	select {
	case s := <-sig:
		logger.Info().Str("signal", s.String()).Msg("shutting down")
		cancel()
		<-errCh
	case err := <-errCh:
		if err != nil {
			logger.Error().Err(err).Msg("webhook server error")
		}
		cancel()
	}

	logger.Info().Msg("webhook service exited cleanly")
}
