package config

import (
	"errors"
	"time"
)

type PollerConfig struct {
	StatusPollingInterval time.Duration `mapstructure:"status-polling-interval"`
	PricePollingInterval  time.Duration `mapstructure:"price-polling-interval"`
}

func (cfg *PollerConfig) Validate() error {
	if cfg.StatusPollingInterval <= 0 {
		return errors.New("status-polling-interval must be positive")
	}

	if cfg.PricePollingInterval <= 0 {
		return errors.New("price-polling-interval must be positive")
	}

	return nil
}
