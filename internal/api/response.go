package api

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/tokenforge-io/presale-ledger/internal/types"
)

type apiError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, statusCode int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(payload)
}

// writeDomainError maps a domain error kind to an HTTP status. Anything
// outside the domain set is a 500.
func writeDomainError(w http.ResponseWriter, r *http.Request, err error) {
	kind := types.KindOf(err)
	status := statusOf(kind)
	if status >= http.StatusInternalServerError {
		log.Ctx(r.Context()).Error().Err(err).Msg("Request failed")
	} else {
		log.Ctx(r.Context()).Warn().Err(err).Msg("Request rejected")
	}
	writeJSON(w, status, apiError{Code: kind.String(), Message: err.Error()})
}

func statusOf(kind types.ErrorKind) int {
	switch kind {
	case types.ErrPhaseClosed, types.ErrPhaseNotReached:
		return http.StatusConflict
	case types.ErrCapExceeded:
		return http.StatusUnprocessableEntity
	case types.ErrUnknownAsset:
		return http.StatusNotFound
	case types.ErrPaymentMismatch,
		types.ErrPendingEntitlement,
		types.ErrInsufficientDepositBalance,
		types.ErrInsufficientIssuedBalance,
		types.ErrPayoutUnsupported:
		return http.StatusUnprocessableEntity
	case types.ErrPermissionDenied:
		return http.StatusForbidden
	case types.ErrOraclePriceUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func writeBadRequest(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusBadRequest, apiError{Code: "BAD_REQUEST", Message: message})
}
