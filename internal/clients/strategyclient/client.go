package strategyclient

import (
	"context"
	"encoding/base64"
	"fmt"
	"net/http"
	"time"

	sdkmath "cosmossdk.io/math"

	"github.com/tokenforge-io/presale-ledger/internal/clients/client"
	"github.com/tokenforge-io/presale-ledger/internal/config"
)

const (
	depositEndpoint = "/api/v1/deposit"
	unwindEndpoint  = "/api/v1/unwind"
	claimEndpoint   = "/api/v1/claim-profit"
	rawCallEndpoint = "/api/v1/raw-call"
)

type Client struct {
	httpClient *http.Client
	cfg        *config.StrategyConfig
}

func NewClient(cfg *config.StrategyConfig) *Client {
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

type fundsRequest struct {
	Asset  string `json:"asset"`
	Amount string `json:"amount"`
}

type txResponse struct {
	TxId string `json:"tx_id"`
}

func (c *Client) Deposit(ctx context.Context, asset string, amount sdkmath.Int) error {
	req := &fundsRequest{Asset: asset, Amount: amount.String()}
	opts := &client.HttpClientOptions{
		Path:         depositEndpoint,
		TemplatePath: depositEndpoint,
	}
	_, err := client.SendRequest[fundsRequest, txResponse](ctx, c, http.MethodPost, opts, req)
	if err != nil {
		return fmt.Errorf("strategy deposit of %s %s failed: %w", amount, asset, err)
	}
	return nil
}

func (c *Client) Unwind(ctx context.Context, asset string, amount sdkmath.Int) error {
	req := &fundsRequest{Asset: asset, Amount: amount.String()}
	opts := &client.HttpClientOptions{
		Path:         unwindEndpoint,
		TemplatePath: unwindEndpoint,
	}
	_, err := client.SendRequest[fundsRequest, txResponse](ctx, c, http.MethodPost, opts, req)
	if err != nil {
		return fmt.Errorf("strategy unwind of %s %s failed: %w", amount, asset, err)
	}
	return nil
}

func (c *Client) ClaimProfit(ctx context.Context) error {
	type empty struct{}
	opts := &client.HttpClientOptions{
		Path:         claimEndpoint,
		TemplatePath: claimEndpoint,
	}
	_, err := client.SendRequest[empty, txResponse](ctx, c, http.MethodPost, opts, &empty{})
	if err != nil {
		return fmt.Errorf("strategy profit claim failed: %w", err)
	}
	return nil
}

func (c *Client) RawCall(ctx context.Context, payload []byte, value sdkmath.Int) ([]byte, error) {
	type rawCallRequest struct {
		Payload string `json:"payload"` // base64
		Value   string `json:"value"`
	}
	type rawCallResponse struct {
		Response string `json:"response"` // base64
	}

	req := &rawCallRequest{
		Payload: base64.StdEncoding.EncodeToString(payload),
		Value:   value.String(),
	}
	opts := &client.HttpClientOptions{
		Path:         rawCallEndpoint,
		TemplatePath: rawCallEndpoint,
	}
	resp, err := client.SendRequest[rawCallRequest, rawCallResponse](ctx, c, http.MethodPost, opts, req)
	if err != nil {
		return nil, fmt.Errorf("raw call to strategy failed: %w", err)
	}

	return base64.StdEncoding.DecodeString(resp.Response)
}
