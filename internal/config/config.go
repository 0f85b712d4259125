package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config is the process configuration, parsed from environment variables.
// cmd/api loads a local .env first via godotenv autoload.
type Config struct {
	Port int `env:"PORT" envDefault:"8080"`

	// DynamoDB connection. The defaults are local-friendly: DynamoDB Local
	// does not validate credentials, but the AWS SDK requires them.
	AWSRegion          string `env:"AWS_REGION" envDefault:"us-east-1"`
	AWSAccessKeyID     string `env:"AWS_ACCESS_KEY_ID" envDefault:"local"`
	AWSSecretAccessKey string `env:"AWS_SECRET_ACCESS_KEY" envDefault:"local"`
	DynamoDBEndpoint   string `env:"DYNAMODB_ENDPOINT"`

	PaymentsTable string `env:"PAYMENTS_TABLE" envDefault:"payments"`

	// Notification webhook targets per payment type. An empty URL means the
	// type has no target and notifications for it are skipped.
	NotificationType1URL string        `env:"NOTIFICATION_TYPE1_URL"`
	NotificationType2URL string        `env:"NOTIFICATION_TYPE2_URL"`
	NotificationTimeout  time.Duration `env:"NOTIFICATION_TIMEOUT" envDefault:"5s"`

	// Country logging for incoming requests.
	CountryLoggingEnabled bool          `env:"COUNTRY_LOGGING_ENABLED" envDefault:"false"`
	CountryLookupBaseURL  string        `env:"COUNTRY_LOOKUP_BASE_URL" envDefault:"https://ipapi.co"`
	CountryLookupTimeout  time.Duration `env:"COUNTRY_LOOKUP_TIMEOUT" envDefault:"3s"`
}

func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}
