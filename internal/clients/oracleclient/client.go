package oracleclient

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	sdkmath "cosmossdk.io/math"
	"github.com/avast/retry-go/v4"
	"github.com/rs/zerolog/log"

	"github.com/tokenforge-io/presale-ledger/internal/clients/client"
	"github.com/tokenforge-io/presale-ledger/internal/config"
	"github.com/tokenforge-io/presale-ledger/internal/types"
)

const priceEndpoint = "/api/v1/price"

type Client struct {
	httpClient *http.Client
	cfg        *config.OracleConfig
}

func NewClient(cfg *config.OracleConfig) *Client {
	return &Client{
		httpClient: &http.Client{},
		cfg:        cfg,
	}
}

func (c *Client) GetBaseURL() string {
	return c.cfg.Endpoint
}

func (c *Client) GetDefaultRequestTimeout() time.Duration {
	return c.cfg.Timeout
}

func (c *Client) GetHttpClient() *http.Client {
	return c.httpClient
}

func (c *Client) Price(ctx context.Context, symbol string) (sdkmath.Int, error) {
	if symbol == "" {
		return sdkmath.ZeroInt(), fmt.Errorf("empty symbol provided")
	}

	type empty struct{}
	type priceResponse struct {
		Symbol string `json:"symbol"`
		// Price is an 18-digit fixed-point decimal string.
		Price string `json:"price"`
	}

	callForPrice := func() (sdkmath.Int, error) {
		opts := &client.HttpClientOptions{
			Path:         priceEndpoint + "?symbol=" + url.QueryEscape(symbol),
			TemplatePath: priceEndpoint,
		}

		resp, err := client.SendRequest[empty, priceResponse](ctx, c, http.MethodGet, opts, nil)
		if err != nil {
			return sdkmath.ZeroInt(), err
		}

		price, ok := sdkmath.NewIntFromString(resp.Price)
		if !ok {
			return sdkmath.ZeroInt(), fmt.Errorf("oracle returned malformed price %q for %s", resp.Price, symbol)
		}
		return price, nil
	}

	price, err := retry.DoWithData(
		callForPrice,
		retry.Context(ctx),
		retry.Attempts(c.cfg.MaxRetryTimes),
		retry.Delay(c.cfg.RetryInterval),
		retry.LastErrorOnly(true),
		retry.OnRetry(func(n uint, err error) {
			log.Ctx(ctx).Warn().Err(err).Uint("attempt", n).Str("symbol", symbol).
				Msg("retrying oracle price lookup")
		}),
	)
	if err != nil {
		return sdkmath.ZeroInt(), types.NewErrorf(types.ErrOraclePriceUnavailable,
			"price lookup for %s failed: %v", symbol, err)
	}

	// A zero or negative quote is the oracle's way of flagging a stale or
	// unavailable feed.
	if !price.IsPositive() {
		return sdkmath.ZeroInt(), types.NewErrorf(types.ErrOraclePriceUnavailable,
			"oracle returned non-positive price %s for %s", price, symbol)
	}

	return price, nil
}
