package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config carries every deploy-time value the gateway needs. The WooCommerce
// credentials are injected through the environment and must never ship inside
// a build artifact.
type Config struct {
	// SiteURL is the WooCommerce site root, without a trailing slash.
	SiteURL        string
	ConsumerKey    string
	ConsumerSecret string

	// ExtraCharge is the default surcharge applied by the remote cart-add flow.
	ExtraCharge    float64
	DefaultCountry string

	JWTSecret   string
	AdminAPIKey string
	Port        string
}

// Load reads the gateway configuration from the environment.
func Load() (Config, error) {
	cfg := Config{
		SiteURL:        os.Getenv("WC_SITE_URL"),
		ConsumerKey:    os.Getenv("WC_CONSUMER_KEY"),
		ConsumerSecret: os.Getenv("WC_CONSUMER_SECRET"),
		ExtraCharge:    50,
		DefaultCountry: "AU",
		JWTSecret:      os.Getenv("JWT_SECRET"),
		AdminAPIKey:    os.Getenv("ADMIN_API_KEY"),
		Port:           os.Getenv("PORT"),
	}

	if cfg.SiteURL == "" || cfg.ConsumerKey == "" || cfg.ConsumerSecret == "" {
		return Config{}, fmt.Errorf("woocommerce configuration missing (WC_SITE_URL, WC_CONSUMER_KEY, WC_CONSUMER_SECRET)")
	}
	if cfg.JWTSecret == "" {
		return Config{}, fmt.Errorf("JWT_SECRET is required")
	}

	if raw := os.Getenv("EXTRA_CHARGE"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return Config{}, fmt.Errorf("invalid EXTRA_CHARGE %q: %v", raw, err)
		}
		cfg.ExtraCharge = v
	}
	if country := os.Getenv("DEFAULT_COUNTRY"); country != "" {
		cfg.DefaultCountry = country
	}
	if cfg.Port == "" {
		cfg.Port = "8080"
	}

	return cfg, nil
}
