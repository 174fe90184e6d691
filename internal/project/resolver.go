package project

import "github.com/dosanma1/modelforge/internal/driver"

// Resolver handles option precedence: CLI flag > project defaults > built-in default.
type Resolver struct {
	config *Config
}

// NewResolver creates a new option resolver.
func NewResolver(config *Config) *Resolver {
	return &Resolver{config: config}
}

// ResolveDriver resolves the storage driver identifier.
// Precedence: CLI flag > defaults.driver > orm
func (r *Resolver) ResolveDriver(flag string) string {
	if flag != "" {
		return flag
	}
	if r.config != nil && r.config.Defaults.Driver != "" {
		return r.config.Defaults.Driver
	}
	return driver.ORM.ID()
}

// ResolveFormat resolves the driver configuration format.
// Precedence: CLI flag > defaults.format > xml
func (r *Resolver) ResolveFormat(flag string) string {
	if flag != "" {
		return flag
	}
	if r.config != nil && r.config.Defaults.Format != "" {
		return r.config.Defaults.Format
	}
	return string(driver.XML)
}
