// Package config reads service configuration from the environment.
package config

import "github.com/caarlos0/env/v11"

// Config carries everything the service needs at startup. Table names stay
// with their repositories (same env-with-default scheme) since they are a
// persistence detail.
type Config struct {
	Port        int    `env:"PORT" envDefault:"8080"`
	Environment string `env:"APP_ENV" envDefault:"development"`
	GinMode     string `env:"GIN_MODE" envDefault:"debug"`

	AWSRegion          string `env:"AWS_REGION" envDefault:"us-east-1"`
	AWSAccessKeyID     string `env:"AWS_ACCESS_KEY_ID" envDefault:"local"`
	AWSSecretAccessKey string `env:"AWS_SECRET_ACCESS_KEY" envDefault:"local"`
	// DynamoDBEndpoint points at a local DynamoDB in development; empty
	// means the real AWS endpoint.
	DynamoDBEndpoint string `env:"DYNAMODB_ENDPOINT"`
}

func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
