package custodyclient

import (
	"context"
	"encoding/base64"
	"fmt"
	"net/http"
	"net/url"
	"time"

	sdkmath "cosmossdk.io/math"

	"github.com/tokenforge-io/presale-ledger/internal/clients/client"
	"github.com/tokenforge-io/presale-ledger/internal/config"
)

const (
	decimalsEndpoint  = "/api/v1/assets/decimals"
	balanceEndpoint   = "/api/v1/assets/balance"
	transferEndpoint  = "/api/v1/transfers"
	approveEndpoint   = "/api/v1/approvals"
	allowanceEndpoint = "/api/v1/approvals/allowance"
	rawCallEndpoint   = "/api/v1/raw-call"
)

type Client struct {
	httpClient *http.Client
	cfg        *config.CustodyConfig
}

func NewClient(cfg *config.CustodyConfig) *Client {
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

type empty struct{}

func (c *Client) Decimals(ctx context.Context, asset string) (uint8, error) {
	type decimalsResponse struct {
		Asset    string `json:"asset"`
		Decimals uint8  `json:"decimals"`
	}

	opts := &client.HttpClientOptions{
		Path:         decimalsEndpoint + "?asset=" + url.QueryEscape(asset),
		TemplatePath: decimalsEndpoint,
	}
	resp, err := client.SendRequest[empty, decimalsResponse](ctx, c, http.MethodGet, opts, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to fetch decimals for %s: %w", asset, err)
	}

	return resp.Decimals, nil
}

func (c *Client) BalanceOf(ctx context.Context, asset, account string) (sdkmath.Int, error) {
	type balanceResponse struct {
		Asset   string `json:"asset"`
		Account string `json:"account"`
		Balance string `json:"balance"`
	}

	opts := &client.HttpClientOptions{
		Path: balanceEndpoint +
			"?asset=" + url.QueryEscape(asset) +
			"&account=" + url.QueryEscape(account),
		TemplatePath: balanceEndpoint,
	}
	resp, err := client.SendRequest[empty, balanceResponse](ctx, c, http.MethodGet, opts, nil)
	if err != nil {
		return sdkmath.ZeroInt(), fmt.Errorf("failed to fetch %s balance of %s: %w", asset, account, err)
	}

	balance, ok := sdkmath.NewIntFromString(resp.Balance)
	if !ok {
		return sdkmath.ZeroInt(), fmt.Errorf("gateway returned malformed balance %q", resp.Balance)
	}
	return balance, nil
}

type transferRequest struct {
	Asset  string `json:"asset"`
	From   string `json:"from"`
	To     string `json:"to"`
	Amount string `json:"amount"`
}

type transferResponse struct {
	TxId string `json:"tx_id"`
}

func (c *Client) TransferIn(ctx context.Context, asset, from string, amount sdkmath.Int) error {
	req := &transferRequest{
		Asset:  asset,
		From:   from,
		To:     c.cfg.TreasuryAccount,
		Amount: amount.String(),
	}
	opts := &client.HttpClientOptions{
		Path:         transferEndpoint,
		TemplatePath: transferEndpoint,
	}
	_, err := client.SendRequest[transferRequest, transferResponse](ctx, c, http.MethodPost, opts, req)
	if err != nil {
		return fmt.Errorf("failed to pull %s %s from %s: %w", amount, asset, from, err)
	}
	return nil
}

func (c *Client) TransferOut(ctx context.Context, asset, to string, amount sdkmath.Int) error {
	req := &transferRequest{
		Asset:  asset,
		From:   c.cfg.TreasuryAccount,
		To:     to,
		Amount: amount.String(),
	}
	opts := &client.HttpClientOptions{
		Path:         transferEndpoint,
		TemplatePath: transferEndpoint,
	}
	_, err := client.SendRequest[transferRequest, transferResponse](ctx, c, http.MethodPost, opts, req)
	if err != nil {
		return fmt.Errorf("failed to pay %s %s to %s: %w", amount, asset, to, err)
	}
	return nil
}

func (c *Client) Approve(ctx context.Context, asset, spender string) error {
	type approveRequest struct {
		Asset   string `json:"asset"`
		Owner   string `json:"owner"`
		Spender string `json:"spender"`
		// Unlimited approvals carry no amount.
		Unlimited bool `json:"unlimited"`
	}

	req := &approveRequest{
		Asset:     asset,
		Owner:     c.cfg.TreasuryAccount,
		Spender:   spender,
		Unlimited: true,
	}
	opts := &client.HttpClientOptions{
		Path:         approveEndpoint,
		TemplatePath: approveEndpoint,
	}
	_, err := client.SendRequest[approveRequest, transferResponse](ctx, c, http.MethodPost, opts, req)
	if err != nil {
		return fmt.Errorf("failed to approve %s spend of %s: %w", spender, asset, err)
	}
	return nil
}

func (c *Client) Allowance(ctx context.Context, asset, owner, spender string) (sdkmath.Int, error) {
	type allowanceResponse struct {
		Allowance string `json:"allowance"`
	}

	opts := &client.HttpClientOptions{
		Path: allowanceEndpoint +
			"?asset=" + url.QueryEscape(asset) +
			"&owner=" + url.QueryEscape(owner) +
			"&spender=" + url.QueryEscape(spender),
		TemplatePath: allowanceEndpoint,
	}
	resp, err := client.SendRequest[empty, allowanceResponse](ctx, c, http.MethodGet, opts, nil)
	if err != nil {
		return sdkmath.ZeroInt(), fmt.Errorf("failed to fetch allowance: %w", err)
	}

	allowance, ok := sdkmath.NewIntFromString(resp.Allowance)
	if !ok {
		return sdkmath.ZeroInt(), fmt.Errorf("gateway returned malformed allowance %q", resp.Allowance)
	}
	return allowance, nil
}

func (c *Client) RawCall(ctx context.Context, target string, payload []byte, value sdkmath.Int) ([]byte, error) {
	type rawCallRequest struct {
		Target  string `json:"target"`
		Payload string `json:"payload"` // base64
		Value   string `json:"value"`
	}
	type rawCallResponse struct {
		Response string `json:"response"` // base64
	}

	req := &rawCallRequest{
		Target:  target,
		Payload: base64.StdEncoding.EncodeToString(payload),
		Value:   value.String(),
	}
	opts := &client.HttpClientOptions{
		Path:         rawCallEndpoint,
		TemplatePath: rawCallEndpoint,
	}
	resp, err := client.SendRequest[rawCallRequest, rawCallResponse](ctx, c, http.MethodPost, opts, req)
	if err != nil {
		return nil, fmt.Errorf("raw call to %s failed: %w", target, err)
	}

	return base64.StdEncoding.DecodeString(resp.Response)
}
