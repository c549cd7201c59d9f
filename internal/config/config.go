package config

import (
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/garrettladley/ecoscan/internal/validator"
	"github.com/garrettladley/ecoscan/internal/xslog"
)

type Config struct {
	// DBPath overrides the default ~/.config/ecoscan/ecoscan.db location.
	DBPath   string      `env:"DB_PATH"`
	LogLevel xslog.Level `env:"LOG_LEVEL" envDefault:"info"`
	APIKey   string      `env:"API_KEY"`

	TickInterval time.Duration `env:"TICK_INTERVAL" envDefault:"100ms"`
	// ResultsDelay is the pause between completion and showing results.
	ResultsDelay time.Duration `env:"RESULTS_DELAY" envDefault:"500ms"`
	ToastTTL     time.Duration `env:"TOAST_TTL" envDefault:"3s"`
}

const envPrefix = "ECOSCAN_"

func Read() (Config, error) {
	cfg, err := env.ParseAsWithOptions[Config](env.Options{Prefix: envPrefix})
	if err != nil {
		return Config{}, err
	}
	if verr := validator.Validate(cfg); verr != nil {
		return Config{}, verr
	}
	return cfg, nil
}

func (c Config) Validate() map[string]string {
	fields := make(map[string]string)
	if c.TickInterval <= 0 {
		fields["TICK_INTERVAL"] = "must be positive"
	}
	if c.ResultsDelay < 0 {
		fields["RESULTS_DELAY"] = "must not be negative"
	}
	if c.ToastTTL <= 0 {
		fields["TOAST_TTL"] = "must be positive"
	}
	return fields
}
