package idsession

import (
	"time"

	"github.com/dmitrymomot/idbridge/core/credreq"
)

// DefaultTTL is the session time-to-live. Fixed by design; a session
// older than this is invisible to reads and eventually removed.
const DefaultTTL = 15 * time.Minute

// DefaultRelyingPartyID is used when no relying party is configured.
const DefaultRelyingPartyID = "localhost"

// Config holds session manager configuration.
type Config struct {
	TTL            time.Duration
	RelyingPartyID string
	Protocol       credreq.Protocol
	MediatorURL    string
}

func defaultConfig() *Config {
	return &Config{
		TTL:            DefaultTTL,
		RelyingPartyID: DefaultRelyingPartyID,
		Protocol:       credreq.ProtocolMdoc,
		MediatorURL:    credreq.DefaultMediatorURL,
	}
}

// Option is a functional option for configuring the session manager.
type Option func(*Config)

// WithTTL overrides the session time-to-live. Non-positive values keep
// the default.
func WithTTL(ttl time.Duration) Option {
	return func(c *Config) {
		if ttl > 0 {
			c.TTL = ttl
		}
	}
}

// WithRelyingPartyID sets the identifier of the party requesting
// verification. It is embedded in every credential request.
func WithRelyingPartyID(id string) Option {
	return func(c *Config) {
		if id != "" {
			c.RelyingPartyID = id
		}
	}
}

// WithProtocol selects the credential-request shape. A deployment uses
// exactly one protocol; unknown values keep the default mdoc shape.
func WithProtocol(p credreq.Protocol) Option {
	return func(c *Config) {
		if p.Valid() {
			c.Protocol = p
		}
	}
}

// WithMediatorURL sets the mediator endpoint for the mdoc shape.
func WithMediatorURL(url string) Option {
	return func(c *Config) {
		if url != "" {
			c.MediatorURL = url
		}
	}
}
