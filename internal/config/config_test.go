package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	return &Config{
		Sale: SaleConfig{
			MaxTokens:          "1000000000000000000000000",
			EnrollmentDeadline: 1772323200,
			LockExpiry:         1788048000,
			OwnerAccount:       "owner",
		},
		Db: DbConfig{
			Username: "test",
			Password: "test",
			Address:  "mongodb://localhost:27017",
			DbName:   "test",
		},
		Oracle: OracleConfig{
			Endpoint:      "http://localhost:8085",
			Timeout:       10 * time.Second,
			MaxRetryTimes: 3,
			RetryInterval: time.Second,
		},
		Custody: CustodyConfig{
			Endpoint:        "http://localhost:8086",
			Timeout:         10 * time.Second,
			GatewayAddress:  "0xgateway",
			TreasuryAccount: "treasury",
		},
		Strategy: StrategyConfig{
			Endpoint: "http://localhost:8087",
			Timeout:  10 * time.Second,
			Address:  "0xstrategy",
			Asset:    "USDT",
		},
		Queue: QueueConfig{
			User:     "test",
			Password: "test",
			Url:      "localhost:5672",
			Exchange: "presale.events",
		},
		Api: ApiConfig{
			Host: "0.0.0.0",
			Port: 8080,
		},
		Metrics: MetricsConfig{
			Host: "0.0.0.0",
			Port: 2112,
		},
		Poller: PollerConfig{
			StatusPollingInterval: 10 * time.Second,
			PricePollingInterval:  30 * time.Second,
		},
	}
}

func TestConfigValidate(t *testing.T) {
	cfg := validConfig()
	require.NoError(t, cfg.Validate())
}

func TestSaleConfigValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*SaleConfig)
	}{
		{"non numeric cap", func(c *SaleConfig) { c.MaxTokens = "lots" }},
		{"zero cap", func(c *SaleConfig) { c.MaxTokens = "0" }},
		{"negative cap", func(c *SaleConfig) { c.MaxTokens = "-5" }},
		{"missing deadline", func(c *SaleConfig) { c.EnrollmentDeadline = 0 }},
		{"missing expiry", func(c *SaleConfig) { c.LockExpiry = 0 }},
		{"expiry before deadline", func(c *SaleConfig) { c.LockExpiry = c.EnrollmentDeadline - 1 }},
		{"missing owner", func(c *SaleConfig) { c.OwnerAccount = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(&cfg.Sale)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestSaleConfigAccessors(t *testing.T) {
	cfg := validConfig()

	assert.Equal(t, "1000000000000000000000000", cfg.Sale.MaxTokensInt().String())
	assert.Equal(t, time.Unix(1772323200, 0).UTC(), cfg.Sale.EnrollmentDeadlineTime())
	assert.Equal(t, time.Unix(1788048000, 0).UTC(), cfg.Sale.LockExpiryTime())
	assert.Equal(t, "0.0.0.0:8080", cfg.Api.Address())
	assert.Equal(t, 2112, cfg.Metrics.GetMetricsPort())
}

func TestClientConfigValidate(t *testing.T) {
	cfg := validConfig()
	cfg.Oracle.Endpoint = ""
	assert.Error(t, cfg.Validate())

	cfg = validConfig()
	cfg.Custody.TreasuryAccount = ""
	assert.Error(t, cfg.Validate())

	cfg = validConfig()
	cfg.Strategy.Asset = ""
	assert.Error(t, cfg.Validate())

	cfg = validConfig()
	cfg.Poller.PricePollingInterval = 0
	assert.Error(t, cfg.Validate())
}
