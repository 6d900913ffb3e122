package config

import (
	"fmt"

	env "github.com/caarlos0/env/v11"
)

// Config carries the process-level knobs: where the preload files live and
// how to log. Business rules (rates, fees, thresholds) are deliberately not
// configurable; they live with the account types.
type Config struct {
	AccountsFile   string `env:"ACCOUNTS_FILE" envDefault:"accounts.txt"`
	ActivitiesFile string `env:"ACTIVITIES_FILE" envDefault:"activities.txt"`
	LogLevel       string `env:"LOG_LEVEL" envDefault:"info"`
	AppEnv         string `env:"APP_ENV" envDefault:"production"`
}

func Load() (*Config, error) {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return nil, fmt.Errorf("config.Load: %w", err)
	}
	return &cfg, nil
}
