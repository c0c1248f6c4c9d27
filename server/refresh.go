package server

import (
	"context"
	"time"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"

	"github.com/abridged/collabland-token-price-action/types"
)

// refresh re-fetches the quote and edits the original message in place. It
// runs detached from the acknowledgement path: failures are logged and
// dropped, the message just stays stale. Rapid clicks race and the last edit
// to arrive wins.
func (s *Server) refresh(ctx context.Context, i *discordgo.Interaction, tokenID string) {
	lgr := s.logger.With(zap.String("method", "refresh"), zap.String("token", tokenID))

	quote, err := s.market.Coin(ctx, tokenID, types.QuoteParams{})
	if err != nil {
		lgr.Error("cannot fetch token quote", zap.Error(err))
		return
	}
	embed, components, err := renderQuote(quote, time.Now().UTC())
	if err != nil {
		lgr.Error("cannot render token quote", zap.Error(err))
		return
	}
	if s.discord == nil {
		lgr.Warn("no discord session, skip message edit")
		return
	}

	embeds := []*discordgo.MessageEmbed{embed}
	edit := &discordgo.WebhookEdit{
		Embeds:     &embeds,
		Components: &components,
	}
	if _, err := s.discord.InteractionResponseEdit(i, edit); err != nil {
		lgr.Error("cannot edit original message", zap.Error(err))
	}
}
