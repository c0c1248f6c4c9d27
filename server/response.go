package server

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/abridged/collabland-token-price-action/types"
)

const (
	embedColor = 0xf0b90b

	collabLandName    = "Collab.Land"
	collabLandURL     = "https://collab.land"
	collabLandIconURL = "https://cdn.collab.land/assets/logo.png"

	coinPageURL = "https://www.coingecko.com/en/coins/"

	timestampLayout = "2006-01-02 15:04:05 UTC"
)

// ErrNoMarketData reports a quote that carries no ticker at all, so there is
// no price or volume to render.
var ErrNoMarketData = errors.New("no market data for token")

func (s *Server) quoteResponse(quote *types.TokenQuote) (*discordgo.InteractionResponse, error) {
	embed, components, err := renderQuote(quote, time.Now().UTC())
	if err != nil {
		return nil, err
	}
	return &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds:     []*discordgo.MessageEmbed{embed},
			Components: components,
			Flags:      discordgo.MessageFlagsEphemeral,
		},
	}, nil
}

// renderQuote builds the embed and the action row for one quote. at stamps
// the footer; everything else is derived from the quote alone.
func renderQuote(quote *types.TokenQuote, at time.Time) (*discordgo.MessageEmbed, []discordgo.MessageComponent, error) {
	if len(quote.Tickers) == 0 {
		return nil, nil, ErrNoMarketData
	}
	ticker := quote.Tickers[0]

	embed := &discordgo.MessageEmbed{
		Title: fmt.Sprintf("$%s (%s)", strings.ToUpper(quote.Symbol), quote.Name),
		URL:   coinPageURL + quote.ID,
		Color: embedColor,
		Author: &discordgo.MessageEmbedAuthor{
			Name:    collabLandName,
			URL:     collabLandURL,
			IconURL: collabLandIconURL,
		},
		Description: quoteDescription(quote, ticker),
		Footer: &discordgo.MessageEmbedFooter{
			Text: fmt.Sprintf("Quoted at %s", at.Format(timestampLayout)),
		},
	}
	if quote.Image != nil && quote.Image.Small != "" {
		embed.Thumbnail = &discordgo.MessageEmbedThumbnail{URL: quote.Image.Small}
	}
	return embed, quoteComponents(quote.ID), nil
}

func quoteDescription(quote *types.TokenQuote, ticker types.Ticker) string {
	var b strings.Builder
	if site := explorerLink(quote); site != "" {
		fmt.Fprintf(&b, "**Contract**: %s\n", site)
	}
	fmt.Fprintf(&b, "**Market cap rank**: #%d\n", quote.MarketCapRank)
	fmt.Fprintf(&b, "**Price**: $%s USD\n", formatAmount(ticker.ConvertedLast["usd"]))
	fmt.Fprintf(&b, "**Volume**: $%s USD\n", formatAmount(ticker.ConvertedVolume["usd"]))
	fmt.Fprintf(&b, "**Quoted at**: %s\n", ticker.Timestamp.UTC().Format(timestampLayout))
	fmt.Fprintf(&b, "**Last traded**: %s", ticker.LastTradedAt.UTC().Format(timestampLayout))
	return b.String()
}

// explorerLink picks the first non-empty blockchain site, which carries the
// chain/contract page for platform tokens.
func explorerLink(quote *types.TokenQuote) string {
	if quote.Links == nil {
		return ""
	}
	for _, site := range quote.Links.BlockchainSite {
		if site != "" {
			return site
		}
	}
	return ""
}

func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func quoteComponents(tokenID string) []discordgo.MessageComponent {
	return []discordgo.MessageComponent{
		discordgo.ActionsRow{
			Components: []discordgo.MessageComponent{
				discordgo.Button{
					Label:    "Refresh",
					Style:    discordgo.PrimaryButton,
					CustomID: RefreshButtonPrefix + tokenID,
				},
				discordgo.Button{
					Label: "Chart",
					Style: discordgo.LinkButton,
					URL:   coinPageURL + tokenID,
				},
			},
		},
	}
}
