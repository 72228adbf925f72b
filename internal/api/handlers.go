package api

import (
	"encoding/base64"
	"encoding/json"
	"net/http"

	sdkmath "cosmossdk.io/math"

	"github.com/tokenforge-io/presale-ledger/internal/ledger"
)

type recordResponse struct {
	Amount       string `json:"amount"`
	AvgPrice     string `json:"avg_price"`
	TokensToMint string `json:"tokens_to_mint"`
}

func toRecordResponse(rec ledger.Record) recordResponse {
	return recordResponse{
		Amount:       rec.Amount.String(),
		AvgPrice:     rec.AvgPrice.String(),
		TokensToMint: rec.TokensToMint.String(),
	}
}

// caller extracts the authenticated account from the request.
func caller(r *http.Request) string {
	return r.Header.Get(accountHeader)
}

func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeBadRequest(w, "malformed request body: "+err.Error())
		return false
	}
	return true
}

// parseAmount parses a decimal-string amount field.
func parseAmount(w http.ResponseWriter, field, value string) (sdkmath.Int, bool) {
	parsed, ok := sdkmath.NewIntFromString(value)
	if !ok {
		writeBadRequest(w, field+" is not a valid integer: "+value)
		return sdkmath.Int{}, false
	}
	return parsed, true
}

func requireAccount(w http.ResponseWriter, r *http.Request) (string, bool) {
	account := caller(r)
	if account == "" {
		writeBadRequest(w, accountHeader+" header is required")
		return "", false
	}
	return account, true
}

func (s *Server) handleHealthcheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

type depositRequest struct {
	Asset  string `json:"asset"`
	Amount string `json:"amount"`
	// Payment is the value attached to the request; required to equal
	// amount for the native asset, zero otherwise. Defaults to zero.
	Payment string `json:"payment,omitempty"`
}

type depositResponse struct {
	Record recordResponse `json:"record"`
	Minted string         `json:"minted"`
	Price  string         `json:"price"`
}

func (s *Server) handleDeposit(w http.ResponseWriter, r *http.Request) {
	account, ok := requireAccount(w, r)
	if !ok {
		return
	}

	var req depositRequest
	if !decodeBody(w, r, &req) {
		return
	}
	amount, ok := parseAmount(w, "amount", req.Amount)
	if !ok {
		return
	}
	payment := sdkmath.ZeroInt()
	if req.Payment != "" {
		if payment, ok = parseAmount(w, "payment", req.Payment); !ok {
			return
		}
	}

	result, err := s.service.Deposit(r.Context(), account, req.Asset, amount, payment)
	if err != nil {
		writeDomainError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, depositResponse{
		Record: toRecordResponse(result.Record),
		Minted: result.Minted.String(),
		Price:  result.Price.String(),
	})
}

type releaseRequest struct {
	// Account to release for; defaults to the caller.
	Account string `json:"account,omitempty"`
	// Assets to release; empty means the whole whitelist.
	Assets []string `json:"assets,omitempty"`
}

type releaseResponse struct {
	Account string   `json:"account"`
	Assets  []string `json:"assets"`
	Minted  string   `json:"minted"`
}

func (s *Server) handleRelease(w http.ResponseWriter, r *http.Request) {
	account, ok := requireAccount(w, r)
	if !ok {
		return
	}

	var req releaseRequest
	if !decodeBody(w, r, &req) {
		return
	}

	result, err := s.service.Release(r.Context(), account, req.Account, req.Assets)
	if err != nil {
		writeDomainError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, releaseResponse{
		Account: result.Account,
		Assets:  result.Assets,
		Minted:  result.Minted.String(),
	})
}

type withdrawRequest struct {
	Asset  string `json:"asset"`
	Amount string `json:"amount"`
}

type withdrawResponse struct {
	Record      recordResponse `json:"record"`
	TokensBurnt string         `json:"tokens_burnt"`
}

func (s *Server) handleWithdraw(w http.ResponseWriter, r *http.Request) {
	account, ok := requireAccount(w, r)
	if !ok {
		return
	}

	var req withdrawRequest
	if !decodeBody(w, r, &req) {
		return
	}
	amount, ok := parseAmount(w, "amount", req.Amount)
	if !ok {
		return
	}

	result, err := s.service.Withdraw(r.Context(), account, req.Asset, amount)
	if err != nil {
		writeDomainError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, withdrawResponse{
		Record:      toRecordResponse(result.Record),
		TokensBurnt: result.TokensBurnt.String(),
	})
}

type infoResponse struct {
	Phase              string         `json:"phase"`
	Record             recordResponse `json:"record"`
	CurrentPrice       string         `json:"current_price"`
	TreasuryBalance    string         `json:"treasury_balance"`
	IssuedBalance      string         `json:"issued_balance"`
	TotalCurrentTokens string         `json:"total_current_tokens"`
	TotalMaxTokens     string         `json:"total_max_tokens"`
}

func (s *Server) handleGetInfo(w http.ResponseWriter, r *http.Request) {
	account, ok := requireAccount(w, r)
	if !ok {
		return
	}
	asset := r.URL.Query().Get("asset")
	if asset == "" {
		writeBadRequest(w, "asset query parameter is required")
		return
	}

	info, err := s.service.GetInfo(r.Context(), account, asset)
	if err != nil {
		writeDomainError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, infoResponse{
		Phase:              info.Phase.String(),
		Record:             toRecordResponse(info.Record),
		CurrentPrice:       info.CurrentPrice.String(),
		TreasuryBalance:    info.TreasuryBalance.String(),
		IssuedBalance:      info.IssuedBalance.String(),
		TotalCurrentTokens: info.TotalCurrentTokens.String(),
		TotalMaxTokens:     info.TotalMaxTokens.String(),
	})
}

type assetResponse struct {
	ID       string `json:"id"`
	Symbol   string `json:"symbol"`
	Decimals uint8  `json:"decimals"`
	Native   bool   `json:"native"`
}

func (s *Server) handleListAssets(w http.ResponseWriter, r *http.Request) {
	assets := s.service.ListAssets(r.Context())
	out := make([]assetResponse, 0, len(assets))
	for _, asset := range assets {
		out = append(out, assetResponse{
			ID:       asset.ID,
			Symbol:   asset.Symbol,
			Decimals: asset.Decimals,
			Native:   asset.Native,
		})
	}
	writeJSON(w, http.StatusOK, map[string]any{"assets": out})
}

type enableAssetRequest struct {
	Asset  string `json:"asset"`
	Symbol string `json:"symbol"`
	Native bool   `json:"native"`
}

func (s *Server) handleEnableAsset(w http.ResponseWriter, r *http.Request) {
	account, ok := requireAccount(w, r)
	if !ok {
		return
	}

	var req enableAssetRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.Asset == "" {
		writeBadRequest(w, "asset is required")
		return
	}

	asset, err := s.service.EnableAsset(r.Context(), account, req.Asset, req.Symbol, req.Native)
	if err != nil {
		writeDomainError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, assetResponse{
		ID:       asset.ID,
		Symbol:   asset.Symbol,
		Decimals: asset.Decimals,
		Native:   asset.Native,
	})
}

type approveStrategyRequest struct {
	Assets []string `json:"assets"`
}

func (s *Server) handleApproveStrategySpend(w http.ResponseWriter, r *http.Request) {
	account, ok := requireAccount(w, r)
	if !ok {
		return
	}

	var req approveStrategyRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if len(req.Assets) == 0 {
		writeBadRequest(w, "assets is required")
		return
	}

	for _, asset := range req.Assets {
		if err := s.service.ApproveStrategySpend(r.Context(), account, asset); err != nil {
			writeDomainError(w, r, err)
			return
		}
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "approved"})
}

type deployRequest struct {
	Amount string `json:"amount"`
}

func (s *Server) handleDeployToStrategy(w http.ResponseWriter, r *http.Request) {
	account, ok := requireAccount(w, r)
	if !ok {
		return
	}

	var req deployRequest
	if !decodeBody(w, r, &req) {
		return
	}
	amount, ok := parseAmount(w, "amount", req.Amount)
	if !ok {
		return
	}

	if err := s.service.DeployToStrategy(r.Context(), account, amount); err != nil {
		writeDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "deployed"})
}

func (s *Server) handleClaimStrategyProfit(w http.ResponseWriter, r *http.Request) {
	account, ok := requireAccount(w, r)
	if !ok {
		return
	}

	if err := s.service.ClaimStrategyProfit(r.Context(), account); err != nil {
		writeDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "claimed"})
}

type rawCallRequest struct {
	Target string `json:"target"`
	// Payload is base64-encoded call data.
	Payload string `json:"payload"`
	Value   string `json:"value,omitempty"`
}

func (s *Server) handleRawCall(w http.ResponseWriter, r *http.Request) {
	account, ok := requireAccount(w, r)
	if !ok {
		return
	}

	var req rawCallRequest
	if !decodeBody(w, r, &req) {
		return
	}
	payload, err := base64.StdEncoding.DecodeString(req.Payload)
	if err != nil {
		writeBadRequest(w, "payload is not valid base64")
		return
	}
	value := sdkmath.ZeroInt()
	if req.Value != "" {
		if value, ok = parseAmount(w, "value", req.Value); !ok {
			return
		}
	}

	out, err := s.service.RawCall(r.Context(), account, req.Target, payload, value)
	if err != nil {
		writeDomainError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"output": base64.StdEncoding.EncodeToString(out),
	})
}
