package inspect

import (
	"errors"
	"strings"

	"github.com/danmuck/openlink/internal/protocol"
)

var (
	ErrInvalidAddr   = errors.New("inspect: listen addr is required")
	ErrInvalidLimits = errors.New("inspect: max stanza bytes must be positive")
)

// ServiceConfig configures the inspection service and its HTTP surface.
type ServiceConfig struct {
	ServiceID   string
	Addr        string
	CorsOrigins []string
	Limits      protocol.Limits

	// AuthToken, when set, must be sent as a bearer token to inspect.
	AuthToken string
}

func DefaultServiceConfig() ServiceConfig {
	return ServiceConfig{
		ServiceID:   "inspectd.local",
		Addr:        ":9400",
		CorsOrigins: []string{"http://localhost:3000"},
		Limits:      protocol.DefaultLimits(),
	}
}

func (c ServiceConfig) Validate() error {
	if strings.TrimSpace(c.Addr) == "" {
		return ErrInvalidAddr
	}
	if c.Limits.MaxStanzaBytes <= 0 {
		return ErrInvalidLimits
	}
	return nil
}
