package config

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Session  SessionConfig  `mapstructure:"session"`
	Identity IdentityConfig `mapstructure:"identity"`
	Database DatabaseConfig `mapstructure:"database"`
	Redis    RedisConfig    `mapstructure:"redis"`
	Stripe   StripeConfig   `mapstructure:"stripe"`
	Logging  LoggingConfig  `mapstructure:"logging"`
}

type ServerConfig struct {
	Port       string `mapstructure:"port"`
	Mode       string `mapstructure:"mode"` // gin mode: debug, release, test
	BaseURL    string `mapstructure:"base_url"`
	CORSOrigin string `mapstructure:"cors_origin"`
}

type SessionConfig struct {
	Cookie    string        `mapstructure:"cookie"`
	JWTSecret string        `mapstructure:"jwt_secret"`
	TTL       time.Duration `mapstructure:"ttl"`
	// Verify switches the route guard from cookie presence to a verified token.
	Verify bool `mapstructure:"verify"`
}

type IdentityConfig struct {
	Issuer   string `mapstructure:"issuer"`
	ClientID string `mapstructure:"client_id"`
}

type DatabaseConfig struct {
	URL string `mapstructure:"url"` // empty: in-memory store with demo data
}

type RedisConfig struct {
	Addr     string        `mapstructure:"addr"` // empty: no profile cache
	Password string        `mapstructure:"password"`
	DB       int           `mapstructure:"db"`
	TTL      time.Duration `mapstructure:"ttl"`
}

type StripeConfig struct {
	SecretKey     string `mapstructure:"secret_key"`
	WebhookSecret string `mapstructure:"webhook_secret"`
	PriceBronze   string `mapstructure:"price_bronze"`
	PriceSilver   string `mapstructure:"price_silver"`
	PriceGold     string `mapstructure:"price_gold"`
}

type LoggingConfig struct {
	Level      string `mapstructure:"level"`  // debug, info, warn, error
	Format     string `mapstructure:"format"` // json, console
	File       string `mapstructure:"file"`
	MaxSize    int    `mapstructure:"max_size"` // MB
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAge     int    `mapstructure:"max_age"` // days
}

// legacy env names kept from the first deployment
var envAliases = map[string]string{
	"server.port":           "PORT",
	"database.url":          "DB_URL",
	"session.jwt_secret":    "JWT_SECRET",
	"stripe.secret_key":     "STRIPE_SECRET_KEY",
	"stripe.webhook_secret": "STRIPE_WEBHOOK_SECRET",
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.mode", "debug")
	v.SetDefault("server.base_url", "http://localhost:8080")
	v.SetDefault("server.cors_origin", "http://localhost:3000")

	v.SetDefault("session.cookie", "firebaseIdToken")
	v.SetDefault("session.ttl", "24h")
	v.SetDefault("session.verify", true)

	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.ttl", "5m")

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")
	v.SetDefault("logging.max_size", 100)
	v.SetDefault("logging.max_backups", 3)
	v.SetDefault("logging.max_age", 28)
}

// Load reads .env (if any), then the environment. Keys map to env names
// by upper-casing and replacing dots, e.g. session.cookie -> SESSION_COOKIE.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found. Using system environment variables.")
	}
	return load(viper.New())
}

func load(v *viper.Viper) (*Config, error) {
	setDefaults(v)

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Unmarshal only sees keys viper knows about.
	for _, key := range []string{
		"identity.issuer", "identity.client_id",
		"redis.addr", "redis.password",
		"stripe.price_bronze", "stripe.price_silver", "stripe.price_gold",
		"logging.file",
	} {
		if err := v.BindEnv(key); err != nil {
			return nil, err
		}
	}
	for key, env := range envAliases {
		if err := v.BindEnv(key, strings.ToUpper(strings.ReplaceAll(key, ".", "_")), env); err != nil {
			return nil, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	var errs []error

	if c.Session.JWTSecret == "" {
		errs = append(errs, errors.New("session.jwt_secret (JWT_SECRET) is required"))
	}
	if c.Session.Cookie == "" {
		errs = append(errs, errors.New("session.cookie must not be empty"))
	}
	if c.Session.TTL <= 0 {
		errs = append(errs, errors.New("session.ttl must be positive"))
	}
	if c.Stripe.SecretKey != "" && c.Stripe.WebhookSecret == "" {
		errs = append(errs, errors.New("stripe.webhook_secret is required when stripe.secret_key is set"))
	}
	switch c.Logging.Format {
	case "json", "console":
	default:
		errs = append(errs, fmt.Errorf("logging.format %q: want json or console", c.Logging.Format))
	}

	return errors.Join(errs...)
}

// SanitizeForLogging returns a copy with secrets masked.
func (c Config) SanitizeForLogging() Config {
	c.Session.JWTSecret = mask(c.Session.JWTSecret)
	c.Redis.Password = mask(c.Redis.Password)
	c.Stripe.SecretKey = mask(c.Stripe.SecretKey)
	c.Stripe.WebhookSecret = mask(c.Stripe.WebhookSecret)
	if c.Database.URL != "" {
		c.Database.URL = "***"
	}
	return c
}

func mask(s string) string {
	if s == "" {
		return ""
	}
	return "***"
}
