package server

import (
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/bwmarrin/discordgo"
	"github.com/labstack/echo"
	"go.uber.org/zap"

	"github.com/abridged/collabland-token-price-action/api"
	"github.com/abridged/collabland-token-price-action/cfg"
)

func (s *Server) Ping(c echo.Context) error {
	type pingStat struct {
		Version string `json:"version"`
	}
	stats := &pingStat{Version: cfg.ServerVersion}
	return api.OK.SetData(stats).Build(c)
}

func (s *Server) Status(c echo.Context) error {
	type serverStatus struct {
		Status string `json:"status"`
		Tokens int    `json:"tokens"`
	}
	status := &serverStatus{
		Status: "ONLINE",
		Tokens: s.catalog.Len(),
	}
	return api.OK.SetData(status).Build(c)
}

func (s *Server) Metadata(c echo.Context) error {
	return c.JSON(http.StatusOK, s.metadata())
}

// Interactions handles one signed Discord webhook call. The signature has
// already been checked by the time this runs.
func (s *Server) Interactions(c echo.Context) error {
	lgr := s.logger.With(zap.String("method", "Interactions"))

	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		lgr.Error("cannot read interaction body", zap.Error(err))
		return api.Invalid.Build(c)
	}
	var interaction discordgo.Interaction
	if err := json.Unmarshal(body, &interaction); err != nil {
		lgr.Error("cannot decode interaction", zap.Error(err))
		return api.Invalid.Build(c)
	}

	resp, err := s.HandleInteraction(context.Background(), &interaction)
	if err != nil {
		lgr.Error("cannot handle interaction", zap.Error(err))
		return api.InternalServer.Build(c)
	}
	if resp == nil {
		return c.NoContent(http.StatusNoContent)
	}
	return c.JSON(http.StatusOK, resp)
}

func (s *Server) metadata() *api.Metadata {
	md := &api.Metadata{
		Manifest: api.Manifest{
			AppID:       CommandName,
			Developer:   collabLandName,
			Name:        "Token price",
			ShortName:   CommandName,
			Platforms:   []string{"discord"},
			Version:     cfg.ServerVersion,
			Description: "Look up live token prices from CoinGecko",
		},
		SupportedInteractions: []api.InteractionFilter{
			{Type: api.FilterApplicationCommand, Names: []string{CommandName}},
			{Type: api.FilterAutocomplete, Names: []string{CommandName}},
			{Type: api.FilterMessageComponent, CustomIDPrefix: CustomIDPrefix},
		},
		ApplicationCommands: applicationCommands(),
	}
	if s.signingKey != nil {
		md.PublicKey = s.signingKey.PublicKeyHex()
	}
	return md
}

func applicationCommands() []*discordgo.ApplicationCommand {
	return []*discordgo.ApplicationCommand{
		{
			Name:        CommandName,
			Description: "Show the current price of a token",
			Type:        discordgo.ChatApplicationCommand,
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:         discordgo.ApplicationCommandOptionString,
					Name:         optionSymbol,
					Description:  "Token symbol, id or name",
					Required:     true,
					Autocomplete: true,
				},
			},
		},
	}
}
