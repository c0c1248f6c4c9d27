// Package cfg
package cfg

import (
	"os"
	"strconv"
	"time"
)

const (
	ModeDev        = "dev"
	ModeProduction = "prod"

	ServerVersion = "1.0.0"
)

type ActionConfig struct {
	ServerMode string
	LogLevel   string

	Host string
	Port string

	CoinGeckoURL      string
	DefaultAPITimeout time.Duration

	DiscordPublicKey string
	DiscordBotToken  string

	SigningKeyType string
	SigningKey     string

	SentryDSN string
}

func New() (ActionConfig, error) {
	apiDefaultTimeoutStr := os.Getenv("DEFAULT_API_TIMEOUT")
	apiDefaultTimeout, err := strconv.Atoi(apiDefaultTimeoutStr)
	if err != nil {
		apiDefaultTimeout = 10
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}

	coinGeckoURL := os.Getenv("COINGECKO_URL")
	if coinGeckoURL == "" {
		coinGeckoURL = "https://api.coingecko.com"
	}

	signingKeyType := os.Getenv("SIGNING_KEY_TYPE")
	if signingKeyType == "" {
		signingKeyType = "ed25519"
	}

	cfg := ActionConfig{
		ServerMode: os.Getenv("SERVER_MODE"),
		LogLevel:   os.Getenv("LOG_LEVEL"),

		Host: os.Getenv("HOST"),
		Port: port,

		CoinGeckoURL:      coinGeckoURL,
		DefaultAPITimeout: time.Duration(apiDefaultTimeout) * time.Second,

		DiscordPublicKey: os.Getenv("DISCORD_PUBLIC_KEY"),
		DiscordBotToken:  os.Getenv("DISCORD_BOT_TOKEN"),

		SigningKeyType: signingKeyType,
		SigningKey:     os.Getenv("SIGNING_KEY"),

		SentryDSN: os.Getenv("SENTRY_DSN"),
	}

	return cfg, nil
}
