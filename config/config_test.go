package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyDefaults_FillsMissingSections(t *testing.T) {
	cfg := &Config{}

	applyDefaults(cfg)

	require.NotNil(t, cfg.Checkout)
	assert.True(t, cfg.Checkout.DecrementStock)
	assert.Equal(t, defaultDeepLinkBase, cfg.Checkout.DeepLinkBase)
	assert.Equal(t, defaultNotifyTimeout, cfg.Checkout.NotifyTimeout)
	require.NotNil(t, cfg.Shop)
	assert.Equal(t, defaultUniqueIDMaxAttempts, cfg.Shop.UniqueIDMaxAttempts)
	require.NotNil(t, cfg.Email)
	require.NotNil(t, cfg.Database)
	assert.Equal(t, defaultSlowQueryThreshold, cfg.Database.SlowQueryThreshold)
	assert.Equal(t, defaultPoolMonitorInterval, cfg.Database.PoolMonitorInterval)
	assert.Equal(t, defaultPoolWaitWarn, cfg.Database.PoolWaitWarn)
	assert.Equal(t, defaultHTTPHost, cfg.HTTP.Host)
	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
}

func TestApplyDefaults_KeepsExplicitValues(t *testing.T) {
	cfg := &Config{
		Checkout: &CheckoutConfig{
			DeepLinkBase:        "https://wa.me/send",
			DecrementStock:      false,
			RejectMixedCurrency: true,
			NotifyTimeout:       3 * time.Second,
		},
		Shop:     &ShopConfig{UniqueIDMaxAttempts: 9},
		Database: &DatabaseConfig{SlowQueryThreshold: time.Second},
	}

	applyDefaults(cfg)

	assert.Equal(t, "https://wa.me/send", cfg.Checkout.DeepLinkBase)
	assert.False(t, cfg.Checkout.DecrementStock)
	assert.True(t, cfg.Checkout.RejectMixedCurrency)
	assert.Equal(t, 3*time.Second, cfg.Checkout.NotifyTimeout)
	assert.Equal(t, 9, cfg.Shop.UniqueIDMaxAttempts)
	assert.Equal(t, time.Second, cfg.Database.SlowQueryThreshold)
	assert.Equal(t, defaultPoolMonitorInterval, cfg.Database.PoolMonitorInterval)
}

func TestLoadWithEnv_EnvOverridesYAML(t *testing.T) {
	dir := t.TempDir()
	yamlBody := []byte("checkout:\n  deepLinkBase: whatsapp://send\n  notifyTimeout: 5s\nshop:\n  uniqueIdMaxAttempts: 3\n")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "bazaar-test.yaml"), yamlBody, 0o600))

	wd, err := os.Getwd()
	require.NoError(t, err)
	rel, err := filepath.Rel(wd, dir)
	require.NoError(t, err)

	t.Setenv("SHOP_UNIQUEIDMAXATTEMPTS", "7")

	cfg, err := LoadWithEnv[Config]("bazaar-test", rel)
	require.NoError(t, err)
	require.NotNil(t, cfg.Checkout)
	assert.Equal(t, 5*time.Second, cfg.Checkout.NotifyTimeout)
	require.NotNil(t, cfg.Shop)
	assert.Equal(t, 7, cfg.Shop.UniqueIDMaxAttempts)
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	_, err := LoadWithEnv[Config]("does-not-exist")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestLoadWithEnv_DotEnv(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "bazaar-dotenv.yaml"), []byte("shop:\n  uniqueIdMaxAttempts: 3\ncheckout:\n  deepLinkBase: whatsapp://send\n"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("SHOP_UNIQUEIDMAXATTEMPTS=9\nCHECKOUT_DEEPLINKBASE=https://wa.me/send\n"), 0o600))

	wd, err := os.Getwd()
	require.NoError(t, err)
	rel, err := filepath.Rel(wd, dir)
	require.NoError(t, err)

	// The process environment beats the dotenv file.
	t.Setenv("CHECKOUT_DEEPLINKBASE", "whatsapp://custom")
	t.Cleanup(func() { _ = os.Unsetenv("SHOP_UNIQUEIDMAXATTEMPTS") })

	cfg, err := LoadWithEnv[Config]("bazaar-dotenv", rel)
	require.NoError(t, err)
	assert.Equal(t, 9, cfg.Shop.UniqueIDMaxAttempts)
	assert.Equal(t, "whatsapp://custom", cfg.Checkout.DeepLinkBase)
}
