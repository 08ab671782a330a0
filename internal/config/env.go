package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Env holds the ROTCURVE_* overrides. Unset variables leave the
// corresponding setting alone.
type Env struct {
	Output  string `env:"OUTPUT"`
	DPI     int    `env:"DPI"`
	Data    string `env:"DATA"`
	Theme   string `env:"THEME"`
	Debug   bool   `env:"DEBUG"`
	Preview *bool  `env:"SHOW"`
}

const EnvPrefix = "ROTCURVE_"

// ParseEnv loads the overrides from the process environment.
func ParseEnv() (Env, error) {
	var e Env
	if err := env.ParseWithOptions(&e, env.Options{Prefix: EnvPrefix}); err != nil {
		return Env{}, fmt.Errorf("parse env: %w", err)
	}
	return e, nil
}

// ParseEnvFrom is ParseEnv over an explicit variable set.
func ParseEnvFrom(vars map[string]string) (Env, error) {
	var e Env
	if err := env.ParseWithOptions(&e, env.Options{Prefix: EnvPrefix, Environment: vars}); err != nil {
		return Env{}, fmt.Errorf("parse env: %w", err)
	}
	return e, nil
}

// Apply copies the set overrides into c.
func (e Env) Apply(c *Config) {
	if e.Output != "" {
		c.Output.Path = e.Output
	}
	if e.DPI != 0 {
		c.Output.DPI = e.DPI
	}
	if e.Theme != "" {
		c.Theme = e.Theme
	}
	if e.Preview != nil {
		c.Output.Show = *e.Preview
	}
}
