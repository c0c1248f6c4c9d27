package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/getsentry/sentry-go"
	"github.com/joho/godotenv"
	"github.com/labstack/echo"
	"go.uber.org/zap"

	"github.com/abridged/collabland-token-price-action/api"
	"github.com/abridged/collabland-token-price-action/catalog"
	"github.com/abridged/collabland-token-price-action/cfg"
	"github.com/abridged/collabland-token-price-action/coingecko"
	"github.com/abridged/collabland-token-price-action/server"
	"github.com/abridged/collabland-token-price-action/signkey"
)

func main() {
	// .env is optional, env vars may come from the runtime
	_ = godotenv.Load()

	serviceCfg, err := cfg.New()
	if err != nil {
		panic(err.Error())
	}

	logger, err := newLogger(serviceCfg)
	if err != nil {
		panic("cannot init logger")
	}
	logger.Info("Start token-price action...")

	defer func() {
		if err := recover(); err != nil {
			logger.Error("cannot recover")
		}
		if err := logger.Sync(); err != nil {
			logger.Error("cannot sync log")
		}
	}()

	if err := setupSentry(serviceCfg); err != nil {
		panic(err)
	}
	defer sentry.Flush(2 * time.Second)

	signingKey, err := signkey.Resolve(serviceCfg.SigningKeyType, serviceCfg.SigningKey)
	if err != nil {
		logger.Fatal("cannot resolve signing key", zap.Error(err))
	}
	logger.Info("Signing key ready", zap.String("type", signingKey.Type))

	marketClient, err := coingecko.NewClient(coingecko.Config{
		URL:     serviceCfg.CoinGeckoURL,
		Timeout: serviceCfg.DefaultAPITimeout,
		Logger:  logger,
	})
	if err != nil {
		logger.Fatal("cannot create market data client", zap.Error(err))
	}

	ctx := context.Background()
	tokenCatalog, err := catalog.Load(ctx, marketClient)
	if err != nil {
		logger.Fatal("cannot load token catalog", zap.Error(err))
	}
	logger.Info("Token catalog loaded", zap.Int("tokens", tokenCatalog.Len()))

	botToken := serviceCfg.DiscordBotToken
	if botToken != "" {
		botToken = "Bot " + botToken
	}
	// An unauthenticated session is enough for interaction follow-up calls,
	// the interaction token carries the authorization.
	dg, err := discordgo.New(botToken)
	if err != nil {
		logger.Fatal("cannot create discord session", zap.Error(err))
	}

	srv, err := server.New(server.Config{
		Catalog:    tokenCatalog,
		Market:     marketClient,
		Discord:    dg,
		SigningKey: signingKey,
		Logger:     logger,
	})
	if err != nil {
		log.Panicf("cannot create server instance %s", err.Error())
	}

	e := echo.New()
	go func() {
		api.Start(e, srv, serviceCfg)
	}()

	// Wait for interrupt signal to gracefully shutdown the server.
	// Use a buffered channel to avoid missing signals as recommended for signal.Notify
	shutdownCtx, cancel := context.WithCancel(context.Background())
	sigCh := make(chan os.Signal, 1)
	waitExit := make(chan bool)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		for range sigCh {
			cancel()
			if err := e.Shutdown(shutdownCtx); err != nil {
				panic(err)
			}
			waitExit <- true
		}
	}()
	<-waitExit
}

func setupSentry(cfg cfg.ActionConfig) error {
	opts := sentry.ClientOptions{
		Dsn:         cfg.SentryDSN,
		Environment: cfg.ServerMode,
	}
	if err := sentry.Init(opts); err != nil {
		return err
	}
	return nil
}
