// Package config loads runtime configuration from the environment, with an
// optional .env file for local development.
package config

import (
	"crypto/ed25519"
	"encoding/hex"
	"fmt"
	"log"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

func init() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, falling back to system environment variables")
	}
}

// Config is the full runtime configuration of the webhook process.
type Config struct {
	DiscordToken     string `env:"DISCORD_TOKEN,required,notEmpty"`
	DiscordAppID     string `env:"DISCORD_APP_ID,required,notEmpty"`
	DiscordPublicKey string `env:"DISCORD_PUBLIC_KEY,required,notEmpty"`

	ListenAddr string `env:"LISTEN_ADDR" envDefault:":8787"`

	// StorageBackend selects "file" or "redis".
	StorageBackend string `env:"STORAGE_BACKEND" envDefault:"file"`
	StoragePath    string `env:"STORAGE_PATH" envDefault:"datastore.json"`
	RedisAddr      string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisDB        int    `env:"REDIS_DB" envDefault:"0"`

	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFile   string `env:"LOG_FILE"`
	LogPretty bool   `env:"LOG_PRETTY" envDefault:"false"`
}

// New parses the environment into a Config.
func New() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}
	switch cfg.StorageBackend {
	case "file", "redis":
	default:
		return nil, fmt.Errorf("unknown STORAGE_BACKEND %q (want file or redis)", cfg.StorageBackend)
	}
	return cfg, nil
}

// DecodePublicKey decodes the hex-encoded application public key Discord
// shows in the developer portal.
func (c *Config) DecodePublicKey() (ed25519.PublicKey, error) {
	raw, err := hex.DecodeString(c.DiscordPublicKey)
	if err != nil {
		return nil, fmt.Errorf("DISCORD_PUBLIC_KEY is not valid hex: %w", err)
	}
	if len(raw) != ed25519.PublicKeySize {
		return nil, fmt.Errorf("DISCORD_PUBLIC_KEY has %d bytes, want %d", len(raw), ed25519.PublicKeySize)
	}
	return ed25519.PublicKey(raw), nil
}
