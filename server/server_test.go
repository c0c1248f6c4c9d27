// Package server
package server

import (
	"context"
	"errors"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/abridged/collabland-token-price-action/catalog"
	"github.com/abridged/collabland-token-price-action/types"
)

// mockMarket serves canned quotes and can hold fetches open to observe the
// detached refresh path.
type mockMarket struct {
	quotes map[string]*types.TokenQuote

	coinCalls int32
	gate      chan struct{} // when set, Coin blocks until the gate closes
}

func (m *mockMarket) CoinList(ctx context.Context) ([]types.TokenInfo, error) {
	return nil, errors.New("not used")
}

func (m *mockMarket) Coin(ctx context.Context, id string, params types.QuoteParams) (*types.TokenQuote, error) {
	if m.gate != nil {
		<-m.gate
	}
	atomic.AddInt32(&m.coinCalls, 1)
	quote, ok := m.quotes[id]
	if !ok {
		return nil, errors.New("coin not found")
	}
	return quote, nil
}

func (m *mockMarket) calls() int32 {
	return atomic.LoadInt32(&m.coinCalls)
}

func testCatalog() *catalog.Catalog {
	return catalog.New([]types.TokenInfo{
		{ID: "bitcoin", Symbol: "btc", Name: "Bitcoin"},
		{ID: "ethereum", Symbol: "eth", Name: "Ethereum"},
		{ID: "bittorrent", Symbol: "btt", Name: "BitTorrent"},
		{ID: "collab-land", Symbol: "collab", Name: "Collab.Land"},
	})
}

func testQuote() *types.TokenQuote {
	return &types.TokenQuote{
		ID:     "bitcoin",
		Symbol: "btc",
		Name:   "Bitcoin",
		Links: &types.TokenLinks{
			Homepage:       []string{"https://bitcoin.org"},
			BlockchainSite: []string{"https://blockchair.com/bitcoin"},
		},
		Image:         &types.TokenImage{Small: "https://example.com/small.png"},
		MarketCapRank: 1,
		Tickers: []types.Ticker{
			{
				Base:            "BTC",
				Target:          "USDT",
				Market:          types.TickerMarket{Name: "Binance", Identifier: "binance"},
				ConvertedLast:   map[string]float64{"usd": 64250.12},
				ConvertedVolume: map[string]float64{"usd": 12345678.9},
				Timestamp:       time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
				LastTradedAt:    time.Date(2024, 5, 1, 12, 0, 5, 0, time.UTC),
			},
		},
	}
}

func testServer(market *mockMarket) *Server {
	srv, err := New(Config{
		Catalog: testCatalog(),
		Market:  market,
	})
	if err != nil {
		panic(err)
	}
	return srv.SetLogger(zap.NewNop())
}
