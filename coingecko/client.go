// Package coingecko
package coingecko

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/abridged/collabland-token-price-action/types"
)

const (
	coinListPath = "/api/v3/coins/list"
	coinPath     = "/api/v3/coins/"
)

// ClientInterface is the outbound market-data contract this action consumes.
type ClientInterface interface {
	// CoinList fetches the full coin list, including platform contract
	// addresses. Called once at startup; a failure is fatal upstream.
	CoinList(ctx context.Context) ([]types.TokenInfo, error)

	// Coin fetches the detail quote for one coin id. No retry.
	Coin(ctx context.Context, id string, params types.QuoteParams) (*types.TokenQuote, error)
}

type Config struct {
	URL     string
	Timeout time.Duration

	Logger *zap.Logger
}

type Client struct {
	baseURL    string
	httpClient *http.Client

	logger *zap.Logger
}

func NewClient(cfg Config) (*Client, error) {
	if cfg.URL == "" {
		return nil, errors.New("missing market data URL")
	}
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 10 * time.Second
	}
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	netTransport := &http.Transport{
		Dial: (&net.Dialer{
			Timeout: 5 * time.Second,
		}).Dial,
		TLSHandshakeTimeout: 5 * time.Second,
	}
	return &Client{
		baseURL: strings.TrimRight(cfg.URL, "/"),
		httpClient: &http.Client{
			Timeout:   timeout,
			Transport: netTransport,
		},
		logger: logger,
	}, nil
}

func (c *Client) CoinList(ctx context.Context) ([]types.TokenInfo, error) {
	endpoint := c.baseURL + coinListPath + "?include_platform=true"
	body, err := c.get(ctx, endpoint)
	if err != nil {
		return nil, err
	}
	var tokens []types.TokenInfo
	if err := json.Unmarshal(body, &tokens); err != nil {
		return nil, err
	}
	return tokens, nil
}

func (c *Client) Coin(ctx context.Context, id string, params types.QuoteParams) (*types.TokenQuote, error) {
	query := url.Values{}
	query.Set("localization", strconv.FormatBool(params.Localization))
	query.Set("market_data", strconv.FormatBool(params.MarketData))
	query.Set("community_data", strconv.FormatBool(params.CommunityData))
	query.Set("developer_data", strconv.FormatBool(params.DeveloperData))
	query.Set("sparkline", strconv.FormatBool(params.Sparkline))

	endpoint := c.baseURL + coinPath + url.PathEscape(id) + "?" + query.Encode()
	body, err := c.get(ctx, endpoint)
	if err != nil {
		return nil, err
	}
	var quote types.TokenQuote
	if err := json.Unmarshal(body, &quote); err != nil {
		return nil, err
	}
	return &quote, nil
}

func (c *Client) get(ctx context.Context, endpoint string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		c.logger.Warn("market data request failed",
			zap.String("url", endpoint), zap.Int("status", resp.StatusCode))
		return nil, fmt.Errorf("market data request failed with status %d", resp.StatusCode)
	}
	return body, nil
}
