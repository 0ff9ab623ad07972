package config

import (
	"time"

	"github.com/hoshibmatchi/hoshi-client/pkg/env"
)

type (
	Config struct {
		LogLevel string  `env:"LOG_LEVEL" envDefault:"info"`
		API      API     `envPrefix:"API_"`
		Media    Media   `envPrefix:"MEDIA_"`
		HTTP     HTTP    `envPrefix:"HTTP_"`
		Session  Session `envPrefix:"SESSION_"`
	}

	API struct {
		URL      string        `env:"URL" envDefault:"http://localhost:8000"`
		Timeout  time.Duration `env:"TIMEOUT" envDefault:"30s"`
		RetryMax uint64        `env:"RETRY_MAX" envDefault:"0"`
	}

	Media struct {
		StorageHost   string `env:"STORAGE_HOST" envDefault:"localhost:9000"`
		StorageBucket string `env:"STORAGE_BUCKET" envDefault:"media"`
		// DefaultExpiry is in seconds, the unit the API gateway takes.
		DefaultExpiry       int    `env:"DEFAULT_EXPIRY" envDefault:"3600"`
		FallbackURL         string `env:"FALLBACK_URL" envDefault:"/placeholder.svg?height=400&width=400"`
		BatchWorkers        int    `env:"BATCH_WORKERS" envDefault:"0"`
		DeduplicateInFlight bool   `env:"DEDUPLICATE_INFLIGHT" envDefault:"false"`
	}

	HTTP struct {
		Address     string   `env:"ADDRESS" envDefault:":8080"`
		CORSOrigins []string `env:"CORS_ORIGINS" envSeparator:","`
	}

	Session struct {
		KeyringDir      string `env:"KEYRING_DIR" envDefault:"~/.hoshi"`
		KeyringPassword string `env:"KEYRING_PASSWORD"`
	}
)

func (m Media) DefaultExpiryDuration() time.Duration {
	return time.Duration(m.DefaultExpiry) * time.Second
}

func Load(opts ...env.Option) (Config, error) {
	return env.Parse[Config](opts...)
}
