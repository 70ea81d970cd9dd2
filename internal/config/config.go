package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"

	"github.com/dmitrymomot/idbridge/core/credreq"
)

// Config is the process configuration, loaded from the environment.
// The session TTL is intentionally absent: it is a core default, not a
// deployment knob.
type Config struct {
	Port        string `env:"PORT" envDefault:"8080"`
	Environment string `env:"ENVIRONMENT" envDefault:"development"`

	// RelyingPartyID identifies this verifier in every credential request.
	RelyingPartyID string `env:"RELYING_PARTY_ID" envDefault:"localhost"`
	// MediatorURL is the mediator endpoint for the mdoc shape.
	MediatorURL string `env:"MEDIATOR_URL" envDefault:"https://identity.apple.com/digital-credentials"`
	// ExchangeProtocol selects the credential-request shape: "mdoc" or
	// "openid4vp". One protocol per deployment.
	ExchangeProtocol string `env:"EXCHANGE_PROTOCOL" envDefault:"mdoc"`
}

// Load parses the environment into a Config and validates it.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse environment: %w", err)
	}
	if !cfg.Protocol().Valid() {
		return Config{}, fmt.Errorf("config: unknown EXCHANGE_PROTOCOL %q", cfg.ExchangeProtocol)
	}
	return cfg, nil
}

// Protocol returns the configured credential-request shape.
func (c Config) Protocol() credreq.Protocol {
	return credreq.Protocol(c.ExchangeProtocol)
}

// IsProduction reports whether the service runs in production mode.
func (c Config) IsProduction() bool {
	return c.Environment == "production"
}
