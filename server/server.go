// Package server
package server

import (
	"errors"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"

	"github.com/abridged/collabland-token-price-action/catalog"
	"github.com/abridged/collabland-token-price-action/coingecko"
	"github.com/abridged/collabland-token-price-action/signkey"
)

type Config struct {
	Catalog    *catalog.Catalog
	Market     coingecko.ClientInterface
	Discord    *discordgo.Session
	SigningKey *signkey.KeyPair

	Logger *zap.Logger
}

// Server is kind of a router, which receives Discord interactions from the
// hosting framework and controls how we react to those interactions.
type Server struct {
	catalog    *catalog.Catalog
	market     coingecko.ClientInterface
	discord    *discordgo.Session
	signingKey *signkey.KeyPair

	logger *zap.Logger
}

func New(cfg Config) (*Server, error) {
	if cfg.Catalog == nil {
		return nil, errors.New("missing token catalog")
	}
	if cfg.Market == nil {
		return nil, errors.New("missing market data client")
	}
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Server{
		catalog:    cfg.Catalog,
		market:     cfg.Market,
		discord:    cfg.Discord,
		signingKey: cfg.SigningKey,
		logger:     logger,
	}, nil
}

func (s *Server) SetLogger(logger *zap.Logger) *Server {
	s.logger = logger
	return s
}

func (s *Server) SetDiscord(session *discordgo.Session) *Server {
	s.discord = session
	return s
}
