package config

import (
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Port        string `envconfig:"PORT" default:"8080"`
	Environment string `envconfig:"ENV" default:"development"`

	// Database settings. In deployed environments the credentials are read
	// from Secrets Manager and the host is the RDS proxy endpoint. For local
	// development DB_CONNECTION_STRING bypasses the secret lookup entirely.
	DBSecretName       string `envconfig:"SM_DB_CREDENTIALS"`
	RDSProxyEndpoint   string `envconfig:"RDS_PROXY_ENDPOINT"`
	DBConnectionString string `envconfig:"DB_CONNECTION_STRING"`

	AWSRegion string `envconfig:"AWS_REGION" default:"us-east-1"`
	UserPool  string `envconfig:"USER_POOL"`
	S3Bucket  string `envconfig:"BUCKET"`

	JWTSecret string `envconfig:"JWT_SECRET" required:"true"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
