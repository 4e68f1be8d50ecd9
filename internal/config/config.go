package config

import (
	"fmt"
	"net/url"
	"time"

	"github.com/caarlos0/env/v6"
)

// Config is loaded from the environment; required values without a
// default abort process startup.
type Config struct {
	IsTestMode bool     `env:"TEST_MODE" envDefault:"false"`
	Port       int      `env:"PORT" envDefault:"8080"`
	Secret     string   `env:"SECRET,required"`
	SentryDsn  string   `env:"SENTRY_DSN"`
	Origins    []string `env:"ALLOWED_ORIGINS" envDefault:"*"`

	PostgresqlURL string `env:"POSTGRESQL_URL,required"`
	RedisURL      string `env:"REDIS_URL,required"`

	RabbitmqURL               string `env:"RABBITMQ_URL,required"`
	RabbitmqDeliveredExchange string `env:"RABBITMQ_DELIVERED_EXCHANGE" envDefault:"calremind.deliveries"`
	RabbitmqDeliveredQueue    string `env:"RABBITMQ_DELIVERED_QUEUE" envDefault:"delivered-reminders"`

	BcryptHasherCost int `env:"BCRYPT_HASHER_COST" envDefault:"10"`

	TelegramToken          string        `env:"TELEGRAM_TOKEN,required"`
	TelegramBaseURL        url.URL       `env:"TELEGRAM_BASE_URL" envDefault:"https://api.telegram.org"`
	TelegramURLSecret      string        `env:"TELEGRAM_URL_SECRET,required"`
	TelegramRequestTimeout time.Duration `env:"TELEGRAM_REQUEST_TIMEOUT" envDefault:"5s"`

	DispatchPeriod  time.Duration `env:"DISPATCH_PERIOD" envDefault:"60s"`
	DeliveryTimeout time.Duration `env:"DELIVERY_TIMEOUT" envDefault:"10s"`

	AwsRegion                       string  `env:"AWS_REGION" envDefault:"us-east-1"`
	AwsAccessKey                    string  `env:"AWS_ACCESS_KEY"`
	AwsSecretKey                    string  `env:"AWS_SECRET_KEY"`
	AwsEmailSender                  string  `env:"AWS_EMAIL_SENDER"`
	AwsEmailActivateAccountTemplate string  `env:"AWS_EMAIL_ACTIVATE_ACCOUNT_TEMPLATE" envDefault:"activate-account"`
	AwsEmailActivationUrl           url.URL `env:"AWS_EMAIL_ACTIVATION_URL" envDefault:"https://calremind.app/activate"`
}

func Load() (*Config, error) {
	config := &Config{}
	if err := env.Parse(config); err != nil {
		return nil, fmt.Errorf("could not load config: %w", err)
	}
	return config, nil
}
