package config

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config holds runtime configuration parsed from environment variables.
type Config struct {
	Env             string        `envconfig:"APP_ENV" default:"development"`
	HTTPAddr        string        `envconfig:"HTTP_ADDR" default:":8080"`
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"10s"`

	// Backend base URLs; the active one is picked by Env.
	BackendLocalURL    string `envconfig:"BACKEND_LOCAL_URL" default:"http://localhost:4000/api"`
	BackendDeployedURL string `envconfig:"BACKEND_DEPLOYED_URL" default:"https://ccjewllery-backend.onrender.com/api"`

	BackendTimeout time.Duration `envconfig:"BACKEND_TIMEOUT" default:"15s"`

	// Payment provider credentials. Publishable keys are handed to the
	// client; secrets stay server side.
	RazorpayKeyID     string `envconfig:"RAZORPAY_KEY_ID"`
	RazorpayKeySecret string `envconfig:"RAZORPAY_KEY_SECRET"`
	StripePublishable string `envconfig:"STRIPE_PUBLISHABLE_KEY"`

	// Admin console login and session lifetime.
	AdminEmail    string        `envconfig:"ADMIN_EMAIL" default:"admin@ccjewllery.com"`
	AdminPassword string        `envconfig:"ADMIN_PASSWORD"`
	AdminTokenTTL time.Duration `envconfig:"ADMIN_TOKEN_TTL" default:"12h"`

	CORSOrigins []string `envconfig:"CORS_ORIGINS" default:"http://localhost:5173"`
}

// FromEnv parses Config from the environment.
func FromEnv() (Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// BackendBaseURL picks the upstream base URL for the configured environment.
func (c Config) BackendBaseURL() string {
	if c.Env == "production" {
		return c.BackendDeployedURL
	}
	return c.BackendLocalURL
}
