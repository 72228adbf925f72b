package config

import (
	"fmt"

	"github.com/spf13/viper"
)

type Config struct {
	Sale     SaleConfig     `mapstructure:"sale"`
	Db       DbConfig       `mapstructure:"db"`
	Oracle   OracleConfig   `mapstructure:"oracle"`
	Custody  CustodyConfig  `mapstructure:"custody"`
	Strategy StrategyConfig `mapstructure:"strategy"`
	Queue    QueueConfig    `mapstructure:"queue"`
	Api      ApiConfig      `mapstructure:"api"`
	Metrics  MetricsConfig  `mapstructure:"metrics"`
	Poller   PollerConfig   `mapstructure:"poller"`
}

func (cfg *Config) Validate() error {
	if err := cfg.Sale.Validate(); err != nil {
		return err
	}
	if err := cfg.Db.Validate(); err != nil {
		return err
	}
	if err := cfg.Oracle.Validate(); err != nil {
		return err
	}
	if err := cfg.Custody.Validate(); err != nil {
		return err
	}
	if err := cfg.Strategy.Validate(); err != nil {
		return err
	}
	if err := cfg.Queue.Validate(); err != nil {
		return err
	}
	if err := cfg.Api.Validate(); err != nil {
		return err
	}
	if err := cfg.Metrics.Validate(); err != nil {
		return err
	}
	return cfg.Poller.Validate()
}

// New returns a fully parsed and validated Config from the given file path.
func New(cfgPath string) (*Config, error) {
	viper.SetConfigFile(cfgPath)
	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config file: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}
