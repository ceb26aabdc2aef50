package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "secret")

	cfg, err := load(viper.New())
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "firebaseIdToken", cfg.Session.Cookie)
	assert.Equal(t, 24*time.Hour, cfg.Session.TTL)
	assert.True(t, cfg.Session.Verify)
	assert.Equal(t, 5*time.Minute, cfg.Redis.TTL)
	assert.Empty(t, cfg.Database.URL)
	assert.Equal(t, "secret", cfg.Session.JWTSecret)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("SESSION_JWT_SECRET", "s")
	t.Setenv("SESSION_VERIFY", "false")
	t.Setenv("DB_URL", "postgres://localhost/menyqr")
	t.Setenv("REDIS_ADDR", "localhost:6379")
	t.Setenv("STRIPE_PRICE_SILVER", "price_silver")
	t.Setenv("IDENTITY_ISSUER", "https://securetoken.google.com/menyqr")

	cfg, err := load(viper.New())
	require.NoError(t, err)

	assert.False(t, cfg.Session.Verify)
	assert.Equal(t, "postgres://localhost/menyqr", cfg.Database.URL)
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr)
	assert.Equal(t, "price_silver", cfg.Stripe.PriceSilver)
	assert.Equal(t, "https://securetoken.google.com/menyqr", cfg.Identity.Issuer)
}

func TestLoadRequiresSecret(t *testing.T) {
	_, err := load(viper.New())
	assert.ErrorContains(t, err, "jwt_secret")
}

func TestValidateStripe(t *testing.T) {
	cfg := Config{
		Session: SessionConfig{Cookie: "c", JWTSecret: "s", TTL: time.Hour},
		Stripe:  StripeConfig{SecretKey: "sk_test"},
		Logging: LoggingConfig{Format: "json"},
	}
	assert.ErrorContains(t, cfg.Validate(), "webhook_secret")

	cfg.Stripe.WebhookSecret = "whsec"
	assert.NoError(t, cfg.Validate())
}

func TestSanitizeForLogging(t *testing.T) {
	cfg := Config{
		Session:  SessionConfig{JWTSecret: "s"},
		Database: DatabaseConfig{URL: "postgres://u:p@h/db"},
		Stripe:   StripeConfig{SecretKey: "sk", PriceGold: "price_gold"},
	}
	out := cfg.SanitizeForLogging()

	assert.Equal(t, "***", out.Session.JWTSecret)
	assert.Equal(t, "***", out.Database.URL)
	assert.Equal(t, "***", out.Stripe.SecretKey)
	assert.Empty(t, out.Stripe.WebhookSecret)
	assert.Equal(t, "price_gold", out.Stripe.PriceGold)
	assert.Equal(t, "s", cfg.Session.JWTSecret)
}
