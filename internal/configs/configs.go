package configs

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v9"
	"github.com/sirupsen/logrus"
)

type Config struct {
	HTTPAddr string `env:"HTTP_ADDR" envDefault:":8081"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	GivingAPIURL     string        `env:"GIVING_API_URL" envDefault:"http://localhost:5000"`
	GivingAPITimeout time.Duration `env:"GIVING_API_TIMEOUT" envDefault:"10s"`

	MinWishes int `env:"MIN_WISHES" envDefault:"1"`
	MaxWishes int `env:"MAX_WISHES" envDefault:"5"`

	DraftTTL   time.Duration `env:"DRAFT_TTL" envDefault:"2h"`
	ListingTTL time.Duration `env:"LISTING_TTL" envDefault:"30s"`

	KafkaBrokers string `env:"KAFKA_BROKERS" envDefault:""`
	KafkaTopic   string `env:"KAFKA_TOPIC" envDefault:"charity-submissions"`
	KafkaGroupID string `env:"KAFKA_GROUP_ID" envDefault:"giving-tree-admin"`
	KafkaDLQ     string `env:"KAFKA_DLQ" envDefault:"charity-submissions-dlq"`

	DatabaseURL     string `env:"DATABASE_URL" envDefault:""`
	PostgresHost    string `env:"POSTGRES_HOST" envDefault:""`
	PostgresPort    string `env:"POSTGRES_PORT" envDefault:"5432"`
	PostgresUser    string `env:"POSTGRES_USER" envDefault:"postgres"`
	PostgresPass    string `env:"POSTGRES_PASSWORD" envDefault:"postgres"`
	PostgresDB      string `env:"POSTGRES_DB" envDefault:"giving_tree"`
	PostgresSSLMode string `env:"POSTGRES_SSLMODE" envDefault:"disable"`

	CloudinaryCloud  string `env:"CLOUDINARY_CLOUD" envDefault:""`
	CloudinaryPreset string `env:"CLOUDINARY_PRESET" envDefault:""`
	CloudinaryFolder string `env:"CLOUDINARY_FOLDER" envDefault:"giving-tree"`
	UploadMaxBytes   int64  `env:"UPLOAD_MAX_BYTES" envDefault:"2000000"`

	TelegramToken  string `env:"TELEGRAM_TOKEN" envDefault:""`
	TelegramChatID int64  `env:"TELEGRAM_CHAT_ID" envDefault:"0"`
}

func LoadConfig() (Config, error) {
	var c Config
	if err := env.Parse(&c); err != nil {
		return Config{}, fmt.Errorf("config parse: %w", err)
	}
	if c.MinWishes < 0 || c.MaxWishes < c.MinWishes {
		return Config{}, fmt.Errorf("config parse: wish bounds %d..%d are invalid", c.MinWishes, c.MaxWishes)
	}
	return c, nil
}

// Level falls back to info on anything logrus does not recognise.
func (c Config) Level() logrus.Level {
	lvl, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return logrus.InfoLevel
	}
	return lvl
}

func (c Config) KafkaBrokersSlice() []string {
	parts := strings.Split(c.KafkaBrokers, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

func (c Config) KafkaEnabled() bool { return len(c.KafkaBrokersSlice()) > 0 }

func (c Config) PostgresEnabled() bool { return c.DatabaseURL != "" || c.PostgresHost != "" }

func (c Config) CloudinaryEnabled() bool { return c.CloudinaryCloud != "" && c.CloudinaryPreset != "" }

func (c Config) TelegramEnabled() bool { return c.TelegramToken != "" && c.TelegramChatID != 0 }

func (c Config) PgDSN() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.PostgresUser,
		c.PostgresPass,
		c.PostgresHost,
		c.PostgresPort,
		c.PostgresDB,
		c.PostgresSSLMode,
	)
}
