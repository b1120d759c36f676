package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Server  ServerConfig
	Gateway GatewayConfig
	URLs    URLConfig
	CORS    CORSConfig
}

type ServerConfig struct {
	Port int
	Env  string // "development", "production"
}

type GatewayConfig struct {
	MerchantID  string
	APIKey      string
	PurchaseURL string
	Timeout     time.Duration
	Currency    string
}

type URLConfig struct {
	Frontend string
	Backend  string
}

type CORSConfig struct {
	AllowedOrigins []string
}

// Load reads configuration from .env file and environment variables.
func Load() (*Config, error) {
	// Load .env file (ignore error if missing)
	_ = godotenv.Load()

	viper.AutomaticEnv()

	// Set defaults
	viper.SetDefault("APP_PORT", 4000)
	viper.SetDefault("APP_ENV", "production")
	viper.SetDefault("PAYWAY_API_URL", "https://checkout-sandbox.payway.com.kh/api/payment-gateway/v1/payments/purchase")
	viper.SetDefault("PAYWAY_TIMEOUT", "30s")
	viper.SetDefault("PAYWAY_CURRENCY", "USD")
	viper.SetDefault("FRONTEND_URL", "http://localhost:3001")
	viper.SetDefault("BACKEND_URL", "http://localhost:4000")
	viper.SetDefault("ALLOWED_ORIGINS", "http://localhost:3001")

	timeout, err := time.ParseDuration(viper.GetString("PAYWAY_TIMEOUT"))
	if err != nil {
		timeout = 30 * time.Second
	}

	cfg := &Config{
		Server: ServerConfig{
			Port: viper.GetInt("APP_PORT"),
			Env:  viper.GetString("APP_ENV"),
		},
		Gateway: GatewayConfig{
			MerchantID:  viper.GetString("MERCHANT_ID"),
			APIKey:      viper.GetString("API_KEY"),
			PurchaseURL: viper.GetString("PAYWAY_API_URL"),
			Timeout:     timeout,
			Currency:    viper.GetString("PAYWAY_CURRENCY"),
		},
		URLs: URLConfig{
			Frontend: strings.TrimSuffix(viper.GetString("FRONTEND_URL"), "/"),
			Backend:  strings.TrimSuffix(viper.GetString("BACKEND_URL"), "/"),
		},
		CORS: CORSConfig{
			AllowedOrigins: splitOrigins(viper.GetString("ALLOWED_ORIGINS")),
		},
	}

	return cfg, nil
}

// Validate enforces the settings without which no payment can be signed.
// Missing merchant credentials are fatal at startup, not per request.
func (c *Config) Validate() error {
	if c.Gateway.MerchantID == "" {
		return fmt.Errorf("MERCHANT_ID is not set")
	}
	if c.Gateway.APIKey == "" {
		return fmt.Errorf("API_KEY is not set")
	}
	return nil
}

func splitOrigins(raw string) []string {
	var origins []string
	for _, o := range strings.Split(raw, ",") {
		o = strings.TrimSpace(strings.TrimSuffix(o, "/"))
		if o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}
