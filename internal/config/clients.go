package config

import (
	"errors"
	"time"
)

type OracleConfig struct {
	// Endpoint is the price feed base URL.
	Endpoint      string        `mapstructure:"endpoint"`
	Timeout       time.Duration `mapstructure:"timeout"`
	MaxRetryTimes uint          `mapstructure:"max-retry-times"`
	RetryInterval time.Duration `mapstructure:"retry-interval"`
}

func (cfg *OracleConfig) Validate() error {
	if cfg.Endpoint == "" {
		return errors.New("oracle endpoint is required")
	}
	if cfg.Timeout <= 0 {
		return errors.New("oracle timeout must be positive")
	}
	if cfg.MaxRetryTimes == 0 {
		return errors.New("oracle max-retry-times must be positive")
	}
	if cfg.RetryInterval <= 0 {
		return errors.New("oracle retry-interval must be positive")
	}

	return nil
}

type CustodyConfig struct {
	// Endpoint is the custody gateway base URL.
	Endpoint string        `mapstructure:"endpoint"`
	Timeout  time.Duration `mapstructure:"timeout"`
	// GatewayAddress is the gateway's on-ledger address; one of the two
	// targets the raw-call escape hatch accepts.
	GatewayAddress string `mapstructure:"gateway-address"`
	// TreasuryAccount is the account holding deposited funds.
	TreasuryAccount string `mapstructure:"treasury-account"`
}

func (cfg *CustodyConfig) Validate() error {
	if cfg.Endpoint == "" {
		return errors.New("custody endpoint is required")
	}
	if cfg.Timeout <= 0 {
		return errors.New("custody timeout must be positive")
	}
	if cfg.GatewayAddress == "" {
		return errors.New("custody gateway-address is required")
	}
	if cfg.TreasuryAccount == "" {
		return errors.New("custody treasury-account is required")
	}

	return nil
}

type StrategyConfig struct {
	// Endpoint is the yield strategy base URL.
	Endpoint string        `mapstructure:"endpoint"`
	Timeout  time.Duration `mapstructure:"timeout"`
	// Address is the strategy's on-ledger address; the second raw-call
	// target.
	Address string `mapstructure:"address"`
	// Asset is the one asset the strategy can unwind for payouts.
	Asset string `mapstructure:"asset"`
}

func (cfg *StrategyConfig) Validate() error {
	if cfg.Endpoint == "" {
		return errors.New("strategy endpoint is required")
	}
	if cfg.Timeout <= 0 {
		return errors.New("strategy timeout must be positive")
	}
	if cfg.Address == "" {
		return errors.New("strategy address is required")
	}
	if cfg.Asset == "" {
		return errors.New("strategy asset is required")
	}

	return nil
}
