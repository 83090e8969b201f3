package config

import (
	"os"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	return &Config{
		Environment:        "development",
		JWTSecret:          "secret",
		JWTExpirationHours: 168,
		SignupRole:         "admin",
		DB:                 DBConfig{URL: "postgres://localhost/injai"},
	}
}

func TestValidate_OK(t *testing.T) {
	assert.NoError(t, validConfig().Validate())
}

func TestValidate_MissingSecret(t *testing.T) {
	cfg := validConfig()
	cfg.JWTSecret = ""

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "JWT_SECRET")
}

func TestValidate_BadSignupRole(t *testing.T) {
	cfg := validConfig()
	cfg.SignupRole = "root"

	assert.Error(t, cfg.Validate())
}

func TestValidate_MissingDatabase(t *testing.T) {
	cfg := validConfig()
	cfg.DB = DBConfig{Port: "5432"}

	assert.Error(t, cfg.Validate())
}

func TestDSN(t *testing.T) {
	assert.Equal(t, "postgres://u@h/db", DBConfig{URL: "postgres://u@h/db", Host: "ignored"}.DSN())

	dsn := DBConfig{Host: "db", Port: "5432", User: "injai", Password: "pw", Name: "injai", SSLMode: "disable"}.DSN()
	assert.Equal(t, "host=db port=5432 user=injai password=pw dbname=injai sslmode=disable", dsn)

	assert.Empty(t, DBConfig{Port: "5432"}.DSN())
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("JWT_SECRET", "from-env")
	t.Setenv("DATABASE_URL", "postgres://localhost/injai")
	t.Setenv("SIGNUP_ROLE", "user")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example,https://b.example")

	cfg, err := Load(zerolog.Nop())
	assert.NoError(t, err)
	assert.Equal(t, "from-env", cfg.JWTSecret)
	assert.Equal(t, int64(168), cfg.JWTExpirationHours)
	assert.Equal(t, "user", cfg.SignupRole)
	assert.True(t, cfg.SignupEnabled)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSOrigins)
	assert.Equal(t, "newsletter:broadcast", cfg.Redis.Stream)
}

func TestLoad_MissingSecretFails(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	t.Setenv("DATABASE_URL", "postgres://localhost/injai")

	_, err := Load(zerolog.Nop())
	assert.Error(t, err)
}

func TestSMTPConfig_ContactRecipient(t *testing.T) {
	assert.Equal(t, "contact@injai.example", SMTPConfig{ContactEmail: "contact@injai.example", User: "smtp@injai.example"}.ContactRecipient())
	assert.Equal(t, "smtp@injai.example", SMTPConfig{User: "smtp@injai.example", From: "noreply@injai.example"}.ContactRecipient())
	assert.Equal(t, "noreply@injai.example", SMTPConfig{From: "noreply@injai.example"}.ContactRecipient())
}

func TestLoad_ContactFallsBackToSMTPUser(t *testing.T) {
	t.Setenv("JWT_SECRET", "from-env")
	t.Setenv("DATABASE_URL", "postgres://localhost/injai")
	t.Setenv("SMTP_USER", "smtp@injai.example")
	t.Setenv("CONTACT_EMAIL", "")

	cfg, err := Load(zerolog.Nop())
	assert.NoError(t, err)
	assert.Equal(t, "smtp@injai.example", cfg.SMTP.ContactRecipient())
}

func TestLoad_DefaultsToProduction(t *testing.T) {
	t.Setenv("JWT_SECRET", "from-env")
	t.Setenv("DATABASE_URL", "postgres://localhost/injai")
	t.Setenv("APP_ENV", "")
	require.NoError(t, os.Unsetenv("APP_ENV"))

	cfg, err := Load(zerolog.Nop())
	assert.NoError(t, err)
	assert.Equal(t, "production", cfg.Environment)
	assert.False(t, cfg.IsDevelopment())
}
