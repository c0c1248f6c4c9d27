package types

import "time"

// QuoteParams toggle the optional sections of the coin detail payload.
// Every flag defaults to false.
type QuoteParams struct {
	Localization  bool
	MarketData    bool
	CommunityData bool
	DeveloperData bool
	Sparkline     bool
}

// TokenQuote is the coin detail record returned by the market-data provider.
// It is fetched fresh on every request, never cached.
type TokenQuote struct {
	ID            string            `json:"id"`
	Symbol        string            `json:"symbol"`
	Name          string            `json:"name"`
	Description   map[string]string `json:"description"`
	Links         *TokenLinks       `json:"links"`
	Image         *TokenImage       `json:"image"`
	MarketCapRank int               `json:"market_cap_rank"`
	Tickers       []Ticker          `json:"tickers"`
}

type TokenLinks struct {
	Homepage       []string `json:"homepage"`
	BlockchainSite []string `json:"blockchain_site"`
}

type TokenImage struct {
	Thumb string `json:"thumb"`
	Small string `json:"small"`
	Large string `json:"large"`
}

// Ticker is one exchange-specific price/volume data point within a quote.
type Ticker struct {
	Base            string             `json:"base"`
	Target          string             `json:"target"`
	Market          TickerMarket       `json:"market"`
	Last            float64            `json:"last"`
	Volume          float64            `json:"volume"`
	ConvertedLast   map[string]float64 `json:"converted_last"`
	ConvertedVolume map[string]float64 `json:"converted_volume"`
	Timestamp       time.Time          `json:"timestamp"`
	LastTradedAt    time.Time          `json:"last_traded_at"`
	TradeURL        string             `json:"trade_url"`
}

type TickerMarket struct {
	Name       string `json:"name"`
	Identifier string `json:"identifier"`
}
