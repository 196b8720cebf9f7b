package config

import (
	"time"

	"moneymarket/core"

	"github.com/fox-one/pkg/config"
)

// Load load config file
func Load(cfgFile string, cfg *core.Config) error {
	config.AutomaticLoadEnv("MONEYMARKET")
	if cfgFile != "" {
		if err := config.LoadYaml(cfgFile, cfg); err != nil {
			return err
		}
	}

	defaults(cfg)
	return nil
}

func defaults(cfg *core.Config) {
	if cfg.App.Pool == "" {
		cfg.App.Pool = "pool"
	}

	if cfg.App.Location == "" {
		cfg.App.Location = "Local"
	}

	if cfg.KV.Driver == "" {
		cfg.KV.Driver = core.DriverMemory
	}

	if cfg.Token.Driver == "" {
		cfg.Token.Driver = core.DriverMemory
	}

	if cfg.PriceFeed.Interval <= 0 {
		cfg.PriceFeed.Interval = 5 * time.Minute
	}

	if cfg.Liquidator.Interval <= 0 {
		cfg.Liquidator.Interval = time.Minute
	}

	if cfg.Liquidator.Principal == "" {
		cfg.Liquidator.Principal = cfg.App.Admin
	}
}
