package profile

import (
	"os"
	"strconv"

	"github.com/pkg/errors"

	"github.com/hrygo/zhtime/server/timezone"
)

// Profile is the configuration to start the main server.
type Profile struct {
	// Mode can be "prod" or "dev"
	Mode string
	// Addr is the binding address for server
	Addr string
	// Port is the binding port for server
	Port int
	// Timezone is the IANA timezone basetimes are interpreted in
	Timezone string
	// PreferFuture resolves under-specified past-looking expressions to
	// their next future occurrence
	PreferFuture bool
	// Version is the current version of server
	Version string
}

func (p *Profile) IsDev() bool {
	return p.Mode != "prod"
}

// getEnvOrDefault returns the environment variable value or the default value.
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// FromEnv loads configuration from ZHTIME_* environment variables. Values
// already set by flags are only overridden when the variable is present.
func (p *Profile) FromEnv() {
	p.Mode = getEnvOrDefault("ZHTIME_MODE", p.Mode)
	p.Addr = getEnvOrDefault("ZHTIME_ADDR", p.Addr)
	p.Timezone = getEnvOrDefault("ZHTIME_TIMEZONE", p.Timezone)

	if value := os.Getenv("ZHTIME_PORT"); value != "" {
		if port, err := strconv.Atoi(value); err == nil {
			p.Port = port
		}
	}
	if value := os.Getenv("ZHTIME_PREFER_FUTURE"); value != "" {
		p.PreferFuture = value == "true"
	}
}

func (p *Profile) Validate() error {
	if p.Mode != "dev" && p.Mode != "prod" {
		p.Mode = "dev"
	}

	if p.Port <= 0 || p.Port > 65535 {
		return errors.Errorf("invalid port %d", p.Port)
	}

	if p.Timezone == "" {
		p.Timezone = timezone.TimezoneAsiaTaipei
	}
	if !timezone.IsValidTimezone(p.Timezone) {
		return errors.Errorf("invalid timezone %q", p.Timezone)
	}

	return nil
}
