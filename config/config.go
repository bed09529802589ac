package config

import (
	"errors"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config is the process configuration, read once at startup from the
// environment and an optional .env file.
type Config struct {
	Environment string
	LogLevel    string
	HTTPAddr    string
	SiteURL     string
	SiteName    string
	CORSOrigins []string

	EditPassword string

	KVDriver        string
	RedisURL        string
	DatabaseURL     string
	ContentKey      string
	ContentCacheTTL time.Duration

	S3Bucket        string
	AWSRegion       string
	AWSAccessKey    string
	AWSSecretKey    string
	S3Endpoint      string
	S3PublicBaseURL string

	EmailProvider string
	ResendAPIKey  string
	EmailFrom     string
	EmailReplyTo  string
	AdminEmails   []string

	StripeSecretKey       string
	StripeWebhookSecret   string
	StripeDefaultCurrency string

	ContactRatePerMinute int
}

// SetDefaults registers default values on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("HTTP_ADDR", ":8080")
	v.SetDefault("SITE_URL", "http://localhost:8080")
	v.SetDefault("SITE_NAME", "CodeCamp")
	v.SetDefault("CORS_ORIGINS", "http://localhost:3000")
	v.SetDefault("CONTENT_KEY", "site-content")
	v.SetDefault("CONTENT_CACHE_TTL", "1m")
	v.SetDefault("AWS_REGION", "us-east-1")
	v.SetDefault("EMAIL_PROVIDER", "resend")
	v.SetDefault("EMAIL_FROM", "Bootcamp <no-reply@example.com>")
	v.SetDefault("STRIPE_DEFAULT_CURRENCY", "usd")
	v.SetDefault("CONTACT_RATE_PER_MINUTE", 5)
}

// Load reads .env (when present) and the process environment.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	v.AutomaticEnv()
	SetDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	return FromViper(v), nil
}

// FromViper builds a Config from an already populated viper instance.
func FromViper(v *viper.Viper) *Config {
	cfg := &Config{
		Environment: v.GetString("APP_ENV"),
		LogLevel:    v.GetString("LOG_LEVEL"),
		HTTPAddr:    v.GetString("HTTP_ADDR"),
		SiteURL:     strings.TrimRight(v.GetString("SITE_URL"), "/"),
		SiteName:    v.GetString("SITE_NAME"),
		CORSOrigins: splitList(v.GetString("CORS_ORIGINS")),

		EditPassword: v.GetString("EDIT_PASSWORD"),

		KVDriver:        strings.ToLower(v.GetString("KV_DRIVER")),
		RedisURL:        v.GetString("REDIS_URL"),
		DatabaseURL:     v.GetString("DATABASE_URL"),
		ContentKey:      v.GetString("CONTENT_KEY"),
		ContentCacheTTL: v.GetDuration("CONTENT_CACHE_TTL"),

		S3Bucket:        v.GetString("S3_BUCKET_NAME"),
		AWSRegion:       v.GetString("AWS_REGION"),
		AWSAccessKey:    v.GetString("AWS_ACCESS_KEY"),
		AWSSecretKey:    v.GetString("AWS_SECRET_KEY"),
		S3Endpoint:      v.GetString("S3_ENDPOINT"),
		S3PublicBaseURL: v.GetString("S3_PUBLIC_BASE_URL"),

		EmailProvider: strings.ToLower(v.GetString("EMAIL_PROVIDER")),
		ResendAPIKey:  v.GetString("RESEND_API"),
		EmailFrom:     v.GetString("EMAIL_FROM"),
		EmailReplyTo:  v.GetString("EMAIL_REPLY_TO"),
		AdminEmails:   splitList(v.GetString("ADMIN_EMAIL")),

		StripeSecretKey:       v.GetString("STRIPE_SECRET_KEY"),
		StripeWebhookSecret:   v.GetString("STRIPE_WEBHOOK_SECRET"),
		StripeDefaultCurrency: strings.ToLower(v.GetString("STRIPE_DEFAULT_CURRENCY")),

		ContactRatePerMinute: v.GetInt("CONTACT_RATE_PER_MINUTE"),
	}

	// Without an explicit driver, use whichever store has connection settings.
	if cfg.KVDriver == "" {
		switch {
		case cfg.RedisURL != "":
			cfg.KVDriver = "redis"
		case strings.HasPrefix(cfg.DatabaseURL, "postgres"):
			cfg.KVDriver = "postgres"
		case cfg.DatabaseURL != "":
			cfg.KVDriver = "mysql"
		}
	}
	if cfg.ContentCacheTTL <= 0 {
		cfg.ContentCacheTTL = time.Minute
	}
	return cfg
}

// IsProduction reports whether APP_ENV is production.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
