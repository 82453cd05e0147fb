package config

import (
	"context"
	"fmt"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,       default=8000"`
	Env      string `env:"ENV,        default=development"`
	Secret   string `env:"SECRET"`
	LogLevel string `env:"LOG_LEVEL,  default=info"`

	// BaseURL is the externally reachable address embedded in
	// verification links.
	BaseURL   string `env:"BASE_URL,   default=http://localhost:8000"`
	UploadDir string `env:"UPLOAD_DIR, default=./static/images"`

	Mongo MongoConfig
	Redis RedisConfig
	SMTP  SMTPConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=storefront"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

type SMTPConfig struct {
	Host     string `env:"SMTP_HOST, default=smtp.gmail.com"`
	Port     int    `env:"SMTP_PORT, default=465"`
	Username string `env:"EMAIL"`
	Password string `env:"PASS"`
	From     string `env:"MAIL_FROM"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	if cfg.SMTP.From == "" {
		cfg.SMTP.From = cfg.SMTP.Username
	}
	return &cfg
}
