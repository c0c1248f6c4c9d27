package server

import (
	"context"
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"

	"github.com/abridged/collabland-token-price-action/types"
)

const (
	// CommandName is the slash command this action claims.
	CommandName = "token-price"

	// CustomIDPrefix is the component-id namespace this action claims.
	CustomIDPrefix = CommandName + ":"

	// RefreshButtonPrefix scopes refresh buttons inside the namespace; the
	// token id is the third colon-delimited segment of the custom id.
	RefreshButtonPrefix = CommandName + ":refresh-button:"

	optionSymbol = "symbol"
)

// HandleInteraction dispatches one inbound Discord interaction. A nil
// response with a nil error means there is nothing to send back.
func (s *Server) HandleInteraction(ctx context.Context, i *discordgo.Interaction) (*discordgo.InteractionResponse, error) {
	switch i.Type {
	case discordgo.InteractionPing:
		return &discordgo.InteractionResponse{Type: discordgo.InteractionResponsePong}, nil
	case discordgo.InteractionApplicationCommand:
		return s.handleCommand(ctx, i)
	case discordgo.InteractionApplicationCommandAutocomplete:
		return s.handleAutocomplete(i), nil
	case discordgo.InteractionMessageComponent:
		return s.handleComponent(i), nil
	default:
		return nil, fmt.Errorf("unsupported interaction type %d", i.Type)
	}
}

func (s *Server) handleCommand(ctx context.Context, i *discordgo.Interaction) (*discordgo.InteractionResponse, error) {
	data := i.ApplicationCommandData()
	if data.Name != CommandName {
		return ephemeralText(fmt.Sprintf("Command %s is not implemented.", data.Name)), nil
	}

	symbol := ""
	for _, opt := range data.Options {
		if opt != nil && opt.Name == optionSymbol && opt.Type == discordgo.ApplicationCommandOptionString {
			symbol = opt.StringValue()
		}
	}

	token := s.catalog.Find(symbol)
	if token == nil {
		return ephemeralText(fmt.Sprintf("Unknown token %s", symbol)), nil
	}

	quote, err := s.market.Coin(ctx, token.ID, types.QuoteParams{})
	if err != nil {
		s.logger.Error("cannot fetch token quote",
			zap.String("token", token.ID), zap.Error(err))
		return nil, err
	}
	return s.quoteResponse(quote)
}

func (s *Server) handleAutocomplete(i *discordgo.Interaction) *discordgo.InteractionResponse {
	data := i.ApplicationCommandData()
	var partial string
	focused := false
	for _, opt := range data.Options {
		if opt != nil && opt.Focused &&
			opt.Name == optionSymbol && opt.Type == discordgo.ApplicationCommandOptionString {
			partial = opt.StringValue()
			focused = true
		}
	}
	if !focused {
		return nil
	}

	suggestions := s.catalog.Suggest(partial)
	choices := make([]*discordgo.ApplicationCommandOptionChoice, 0, len(suggestions))
	for _, suggestion := range suggestions {
		choices = append(choices, &discordgo.ApplicationCommandOptionChoice{
			Name:  suggestion.Display,
			Value: suggestion.Value,
		})
	}
	return &discordgo.InteractionResponse{
		Type: discordgo.InteractionApplicationCommandAutocompleteResult,
		Data: &discordgo.InteractionResponseData{Choices: choices},
	}
}

func (s *Server) handleComponent(i *discordgo.Interaction) *discordgo.InteractionResponse {
	data := i.MessageComponentData()
	if strings.HasPrefix(data.CustomID, RefreshButtonPrefix) {
		tokenID := strings.SplitN(data.CustomID, ":", 3)[2]
		go s.refresh(context.Background(), i, tokenID)
	} else {
		s.logger.Warn("unexpected component custom id", zap.String("customID", data.CustomID))
	}
	// Discord expects an immediate ack; the message edit follows from the
	// detached refresh goroutine.
	return &discordgo.InteractionResponse{Type: discordgo.InteractionResponseDeferredMessageUpdate}
}

func ephemeralText(content string) *discordgo.InteractionResponse {
	return &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: content,
			Flags:   discordgo.MessageFlagsEphemeral,
		},
	}
}
