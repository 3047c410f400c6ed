package config

import (
	"time"

	"github.com/caarlos0/env/v11"
)

// envConfig mirrors Config for the env parser. Pointer fields distinguish
// "unset" from zero values so env only overrides what is present.
type envConfig struct {
	EndpointAddr                 *string        `env:"TASKDECK_ADDR"`
	DatabaseDSN                  *string        `env:"TASKDECK_DATABASE_DSN"`
	SecretKey                    *string        `env:"TASKDECK_SECRET_KEY"`
	AccessTokenValidityDuration  *time.Duration `env:"TASKDECK_ACCESS_TOKEN_TTL"`
	RefreshTokenValidityDuration *time.Duration `env:"TASKDECK_REFRESH_TOKEN_TTL"`
}

func parseEnv(config *Config) {
	c := envConfig{}
	if err := env.Parse(&c); err != nil {
		panic(err)
	}

	if c.EndpointAddr != nil {
		config.EndpointAddr = *c.EndpointAddr
	}
	if c.DatabaseDSN != nil {
		config.DatabaseDSN = *c.DatabaseDSN
	}
	if c.SecretKey != nil {
		config.SecretKey = *c.SecretKey
	}
	if c.AccessTokenValidityDuration != nil {
		config.AccessTokenValidityDuration = *c.AccessTokenValidityDuration
	}
	if c.RefreshTokenValidityDuration != nil {
		config.RefreshTokenValidityDuration = *c.RefreshTokenValidityDuration
	}
}
