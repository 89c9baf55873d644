package configs

import (
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Port     string `envconfig:"PORT" default:"8000"`
	DBSource string `envconfig:"DB_SOURCE" default:"sweetbites.db"`

	JWTSecret string        `envconfig:"JWT_SECRET" default:"changeme"`
	JWTTTL    time.Duration `envconfig:"JWT_TTL" default:"24h"`

	StripeSecretKey     string `envconfig:"STRIPE_SECRET_KEY"`
	StripeWebhookSecret string `envconfig:"STRIPE_WEBHOOK_SECRET"`

	ResendAPIKey  string `envconfig:"RESEND_API_KEY"`
	BusinessEmail string `envconfig:"BUSINESS_EMAIL" default:"orders@sweetbites.shop"`
	SenderEmail   string `envconfig:"SENDER_EMAIL" default:"SweetBites <onboarding@resend.dev>"`

	// Frontend origin; Stripe redirects land back here.
	SiteURL string `envconfig:"SITE_URL" default:"http://localhost:5173"`

	AdminEmail    string `envconfig:"ADMIN_EMAIL"`
	AdminPassword string `envconfig:"ADMIN_PASSWORD"`
}

func LoadConfig() (*Config, error) {
	// .env is optional; real env vars win either way.
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
