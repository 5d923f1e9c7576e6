package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App struct {
		Name string `envconfig:"APP_NAME" default:"Daftar"`
		Port int    `envconfig:"PORT" default:"8080"`

		// AmountScale is the number of minor-unit digits shown by the CLI and TUI.
		AmountScale int32 `envconfig:"AMOUNT_SCALE" default:"0"`
	}

	DB struct {
		Host            string        `envconfig:"DB_HOST" default:"localhost"`
		Port            int           `envconfig:"DB_PORT" default:"5432"`
		User            string        `envconfig:"DB_USER" default:"postgres"`
		Password        string        `envconfig:"DB_PASSWORD" default:""`
		Name            string        `envconfig:"DB_NAME" default:"daftar"`
		MaxOpenConns    int           `envconfig:"DB_MAX_OPEN_CONNS" default:"25"`
		MaxIdleConns    int           `envconfig:"DB_MAX_IDLE_CONNS" default:"5"`
		ConnMaxLifetime time.Duration `envconfig:"DB_CONN_MAX_LIFETIME" default:"5m"`
	}

	Server struct {
		Timeout time.Duration `envconfig:"SERVER_TIMEOUT" default:"30s"`
	}

	HTTP struct {
		AllowedOrigins []string `envconfig:"HTTP_ALLOWED_ORIGINS"`
		MaxBodyBytes   int64    `envconfig:"HTTP_MAX_BODY_BYTES" default:"1048576"`
	}

	Chart struct {
		// TemplatePath points at a chart CSV used instead of the built-in template.
		TemplatePath string `envconfig:"CHART_TEMPLATE_PATH"`
	}

	// Posting holds the account codes each operation debits or credits.
	// Defaults match the built-in chart template.
	Posting struct {
		Receivable       string `envconfig:"POSTING_RECEIVABLE" default:"1201"`
		Payable          string `envconfig:"POSTING_PAYABLE" default:"3101"`
		ChecksReceivable string `envconfig:"POSTING_CHECKS_RECEIVABLE" default:"1202"`
		ChecksPayable    string `envconfig:"POSTING_CHECKS_PAYABLE" default:"3102"`
		Sales            string `envconfig:"POSTING_SALES" default:"6101"`
		Purchases        string `envconfig:"POSTING_PURCHASES" default:"7101"`
		TaxPayable       string `envconfig:"POSTING_TAX_PAYABLE" default:"3103"`
		TaxReceivable    string `envconfig:"POSTING_TAX_RECEIVABLE" default:"1203"`
		BankFees         string `envconfig:"POSTING_BANK_FEES" default:"7203"`
	}
}

func (c *Config) ConnectionString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		c.DB.User, c.DB.Password, c.DB.Host, c.DB.Port, c.DB.Name)
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	return &cfg, nil
}
