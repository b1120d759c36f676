package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("MERCHANT_ID", "ec461963")
	t.Setenv("API_KEY", "test-api-key")

	cfg, err := Load()
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, 4000, cfg.Server.Port)
	assert.Equal(t, "USD", cfg.Gateway.Currency)
	assert.Contains(t, cfg.Gateway.PurchaseURL, "payway.com.kh")
	assert.NotZero(t, cfg.Gateway.Timeout)
}

func TestValidateMissingCredentials(t *testing.T) {
	cfg := &Config{}
	assert.Error(t, cfg.Validate())

	cfg.Gateway.MerchantID = "ec461963"
	assert.Error(t, cfg.Validate())

	cfg.Gateway.APIKey = "test-api-key"
	assert.NoError(t, cfg.Validate())
}

func TestSplitOrigins(t *testing.T) {
	origins := splitOrigins("https://a.example.com, https://b.example.com/ ,,")
	assert.Equal(t, []string{"https://a.example.com", "https://b.example.com"}, origins)
}
