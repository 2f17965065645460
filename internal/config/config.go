// Package config loads the walletsyncd process configuration from
// WALLETSYNC_* environment variables.
package config

import (
	"errors"
	"time"

	"github.com/gabapcia/walletsync/internal/pkg/validator"
	"github.com/gabapcia/walletsync/internal/wallet"
	"github.com/kelseyhightower/envconfig"
)

// Prefix is prepended to every environment variable name.
const Prefix = "WALLETSYNC"

// ErrInvalidConfig is returned when the environment cannot be loaded or
// fails validation.
var ErrInvalidConfig = errors.New("invalid configuration")

// WalletRPC configures the wallet JSON-RPC server the engine talks to.
type WalletRPC struct {
	Endpoint        string        `envconfig:"ENDPOINT" default:"http://127.0.0.1:18083/json_rpc" validate:"required,url"`
	Timeout         time.Duration `envconfig:"TIMEOUT" default:"30s" validate:"gt=0"`
	RefreshInterval time.Duration `envconfig:"REFRESH_INTERVAL" default:"10s" validate:"gt=0"`
}

// Redis configures the session journal. The journal is disabled when Addr
// is empty.
type Redis struct {
	Addr     string `envconfig:"ADDR" validate:"omitempty,hostname_port"`
	Username string `envconfig:"USERNAME"`
	Password string `envconfig:"PASSWORD"`
	DB       int    `envconfig:"DB" default:"0" validate:"gte=0"`
}

// Telemetry configures the OTLP exporters. Endpoints come from the standard
// OTEL_EXPORTER_OTLP_* variables.
type Telemetry struct {
	Enabled     bool   `envconfig:"ENABLED" default:"false"`
	ServiceName string `envconfig:"SERVICE_NAME" default:"walletsyncd" validate:"required"`
}

// Config is the complete process configuration.
type Config struct {
	LogLevel      string    `envconfig:"LOG_LEVEL" default:"info" validate:"oneof=debug info warn error"`
	WalletDir     string    `envconfig:"WALLET_DIR" required:"true" validate:"required,dir"`
	DaemonAddress string    `envconfig:"DAEMON_ADDRESS" default:"127.0.0.1:18081" validate:"required,hostname_port"`
	Network       string    `envconfig:"NETWORK" default:"mainnet" validate:"oneof=mainnet testnet stagenet"`
	WalletRPC     WalletRPC `envconfig:"WALLET_RPC"`
	Redis         Redis     `envconfig:"REDIS"`
	Telemetry     Telemetry `envconfig:"TELEMETRY"`
}

// Load reads the configuration from the environment and validates it.
func Load() (Config, error) {
	var cfg Config
	if err := envconfig.Process(Prefix, &cfg); err != nil {
		return Config{}, errors.Join(ErrInvalidConfig, err)
	}

	if err := validator.Validate(cfg); err != nil {
		return Config{}, errors.Join(ErrInvalidConfig, err)
	}

	return cfg, nil
}

// LedgerNetwork returns the configured network.
func (c Config) LedgerNetwork() wallet.Network {
	// Load validated the name already.
	n, _ := wallet.ParseNetwork(c.Network)
	return n
}

// JournalEnabled reports whether a Redis journal is configured.
func (c Config) JournalEnabled() bool {
	return c.Redis.Addr != ""
}
