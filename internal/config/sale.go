package config

import (
	"errors"
	"fmt"
	"time"

	sdkmath "cosmossdk.io/math"
)

type SaleConfig struct {
	// MaxTokens is the immutable global entitlement cap in issued-asset
	// base units (18 decimals), as a decimal string.
	MaxTokens string `mapstructure:"max-tokens"`
	// EnrollmentDeadline and LockExpiry are unix timestamps (seconds).
	EnrollmentDeadline int64 `mapstructure:"enrollment-deadline"`
	LockExpiry         int64 `mapstructure:"lock-expiry"`
	// OwnerAccount may call the administrative operations.
	OwnerAccount string `mapstructure:"owner-account"`
}

func (cfg *SaleConfig) Validate() error {
	maxTokens, ok := sdkmath.NewIntFromString(cfg.MaxTokens)
	if !ok {
		return fmt.Errorf("sale max-tokens %q is not a valid integer", cfg.MaxTokens)
	}
	if !maxTokens.IsPositive() {
		return errors.New("sale max-tokens must be positive")
	}
	if cfg.EnrollmentDeadline <= 0 {
		return errors.New("sale enrollment-deadline is required")
	}
	if cfg.LockExpiry <= 0 {
		return errors.New("sale lock-expiry is required")
	}
	if cfg.LockExpiry < cfg.EnrollmentDeadline {
		return errors.New("sale lock-expiry must not precede enrollment-deadline")
	}
	if cfg.OwnerAccount == "" {
		return errors.New("sale owner-account is required")
	}

	return nil
}

// MaxTokensInt returns the cap as an integer. Validate must have passed.
func (cfg *SaleConfig) MaxTokensInt() sdkmath.Int {
	maxTokens, _ := sdkmath.NewIntFromString(cfg.MaxTokens)
	return maxTokens
}

func (cfg *SaleConfig) EnrollmentDeadlineTime() time.Time {
	return time.Unix(cfg.EnrollmentDeadline, 0).UTC()
}

func (cfg *SaleConfig) LockExpiryTime() time.Time {
	return time.Unix(cfg.LockExpiry, 0).UTC()
}
