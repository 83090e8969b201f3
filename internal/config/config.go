package config

import (
	"errors"
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

// Config holds every setting the server and worker read from the environment
type Config struct {
	Environment string `env:"APP_ENV" envDefault:"production"`
	ServerPort  string `env:"SERVER_PORT" envDefault:"8080"`
	SiteURL     string `env:"SITE_URL" envDefault:"http://localhost:8080"`

	CORSOrigins []string `env:"CORS_ALLOWED_ORIGINS" envSeparator:","`

	JWTSecret          string `env:"JWT_SECRET"`
	JWTExpirationHours int64  `env:"JWT_EXPIRATION_HOURS" envDefault:"168"`
	SignupRole         string `env:"SIGNUP_ROLE" envDefault:"admin"`
	SignupEnabled      bool   `env:"SIGNUP_ENABLED" envDefault:"true"`

	DB      DBConfig
	SMTP    SMTPConfig
	Redis   RedisConfig
	Storage StorageConfig
}

type SMTPConfig struct {
	Host         string `env:"SMTP_HOST" envDefault:"smtp.gmail.com"`
	Port         int    `env:"SMTP_PORT" envDefault:"587"`
	User         string `env:"SMTP_USER"`
	Password     string `env:"SMTP_PASS"`
	From         string `env:"SMTP_FROM"`
	ContactEmail string `env:"CONTACT_EMAIL"`
}

type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB" envDefault:"0"`
	Stream   string `env:"REDIS_STREAM" envDefault:"newsletter:broadcast"`
	Group    string `env:"REDIS_GROUP" envDefault:"newsletter"`
	Consumer string `env:"REDIS_CONSUMER" envDefault:"worker-1"`
}

type StorageConfig struct {
	Endpoint  string `env:"S3_ENDPOINT" envDefault:"localhost:9000"`
	AccessKey string `env:"S3_ACCESS_KEY"`
	SecretKey string `env:"S3_SECRET_KEY"`
	Region    string `env:"S3_REGION" envDefault:"us-east-1"`
	Bucket    string `env:"S3_BUCKET" envDefault:"injai-uploads"`
	UseSSL    bool   `env:"S3_USE_SSL" envDefault:"false"`
	PublicURL string `env:"S3_PUBLIC_URL"`
}

// ContactRecipient is where contact form submissions go: CONTACT_EMAIL, else the SMTP account.
func (c SMTPConfig) ContactRecipient() string {
	if c.ContactEmail != "" {
		return c.ContactEmail
	}
	if c.User != "" {
		return c.User
	}
	return c.From
}

// IsDevelopment reports whether cookies may be sent without the Secure flag.
// Only an explicit APP_ENV=development opts out.
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// Load reads .env (when present) and the process environment. A missing JWT_SECRET is fatal.
func Load(log zerolog.Logger) (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("No .env file found or error loading, relying on environment variables")
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the settings the service cannot start without.
func (c *Config) Validate() error {
	if c.JWTSecret == "" {
		return errors.New("JWT_SECRET not set in environment")
	}
	if c.JWTExpirationHours <= 0 {
		return fmt.Errorf("invalid JWT_EXPIRATION_HOURS %d", c.JWTExpirationHours)
	}
	if c.SignupRole != "admin" && c.SignupRole != "user" {
		return fmt.Errorf("invalid SIGNUP_ROLE %q", c.SignupRole)
	}
	if c.DB.DSN() == "" {
		return errors.New("database environment variables not set (DATABASE_URL or DB_HOST, DB_PORT, DB_USER, DB_PASSWORD, DB_NAME)")
	}
	return nil
}
