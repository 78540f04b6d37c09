package types

import (
	"strings"

	"github.com/cockroachdb/errors"
)

// Transports supported by the server
const (
	TransportStdio = "stdio"
	TransportSSE   = "sse"
)

// Config represents the configuration for the calc-mcp server
type Config struct {
	Locale      string `json:"locale,omitempty" mapstructure:"locale"`
	LogLevel    string `json:"log_level,omitempty" mapstructure:"log-level"`
	Transport   string `json:"transport" mapstructure:"transport"`
	Address     string `json:"address,omitempty" mapstructure:"address"`
	BaseURL     string `json:"base_url,omitempty" mapstructure:"base-url"`
	MaxSessions int    `json:"max_sessions" mapstructure:"max-sessions"`
}

// DefaultConfig returns the configuration used when nothing is set
func DefaultConfig() Config {
	return Config{
		Locale:      "en-US",
		LogLevel:    "info",
		Transport:   TransportStdio,
		Address:     ":8080",
		MaxSessions: 1000,
	}
}

// Validate checks that the configuration can start a server
func (c Config) Validate() error {
	switch strings.ToLower(c.Transport) {
	case TransportStdio:
	case TransportSSE:
		if c.Address == "" {
			return errors.New("address is required for the sse transport")
		}
	default:
		return errors.Newf("unsupported transport %q, expected %s or %s", c.Transport, TransportStdio, TransportSSE)
	}

	if c.MaxSessions < 0 {
		return errors.Newf("max sessions must not be negative: %d", c.MaxSessions)
	}
	return nil
}
