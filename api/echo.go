package api

import (
	"crypto/ed25519"
	"encoding/hex"
	"fmt"

	"github.com/bwmarrin/discordgo"
	"github.com/labstack/echo"
	"github.com/labstack/echo/middleware"

	"github.com/abridged/collabland-token-price-action/cfg"
)

type restDefinition struct {
	method      string
	path        string
	fn          func(c echo.Context) error
	middlewares []echo.MiddlewareFunc
}

func bind(e *echo.Echo, srv RestServer, verify echo.MiddlewareFunc) {
	apis := []restDefinition{
		{
			method:      echo.GET,
			path:        "/ping",
			fn:          srv.Ping,
			middlewares: nil,
		},
		{
			method:      echo.GET,
			path:        "/status",
			fn:          srv.Status,
			middlewares: nil,
		},
		{
			method: echo.GET,
			path:   "/metadata",
			fn:     srv.Metadata,
		},
		{
			method:      echo.POST,
			path:        "/interactions",
			fn:          srv.Interactions,
			middlewares: []echo.MiddlewareFunc{verify},
		},
	}
	for _, api := range apis {
		e.Add(api.method, api.path, api.fn, api.middlewares...)
	}
}

func Start(e *echo.Echo, srv RestServer, cfg cfg.ActionConfig) {
	e.Use(middleware.CORS())
	e.Use(middleware.Logger())
	e.Use(middleware.Gzip())

	verify, err := VerifySignature(cfg.DiscordPublicKey)
	if err != nil {
		panic(err)
	}
	bind(e, srv, verify)

	address := fmt.Sprintf("%s:%s", cfg.Host, cfg.Port)
	fmt.Println("Action server", address)
	if err := e.Start(address); err != nil {
		panic("cannot start echo server")
	}
}

// VerifySignature rejects webhook calls whose Ed25519 signature does not
// match the Discord application public key. The check itself is delegated to
// discordgo, which restores the request body for the next handler.
func VerifySignature(publicKeyHex string) (echo.MiddlewareFunc, error) {
	raw, err := hex.DecodeString(publicKeyHex)
	if err != nil {
		return nil, fmt.Errorf("cannot decode Discord public key: %v", err)
	}
	if len(raw) != ed25519.PublicKeySize {
		return nil, fmt.Errorf("discord public key must be %d bytes, got %d", ed25519.PublicKeySize, len(raw))
	}
	key := ed25519.PublicKey(raw)
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !discordgo.VerifyInteraction(c.Request(), key) {
				return Unauthorized.Build(c)
			}
			return next(c)
		}
	}, nil
}
