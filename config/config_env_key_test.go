package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalizeEnvKey(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"pubsub": map[string]any{
			"topicId":        "",
			"publishTimeout": "10s",
		},
		"checkout": map[string]any{
			"deepLinkBase":        "",
			"rejectMixedCurrency": false,
		},
		"database": map[string]any{
			"txMaxRetries": 2,
		},
	}

	tests := map[string]string{
		"POSTGRES_SSLMODE":             "postgres.sslMode",
		"POSTGRES_MASTER_USERNAME":     "postgres.master.userName",
		"PUBSUB_PUBLISHTIMEOUT":        "pubsub.publishTimeout",
		"CHECKOUT_REJECTMIXEDCURRENCY": "checkout.rejectMixedCurrency",
		"DATABASE_TXMAXRETRIES":        "database.txMaxRetries",
		"DATABASE__TXMAXRETRIES":       "database.txMaxRetries",
		"SHOP_UNIQUEIDMAXATTEMPTS":     "shop.uniqueidmaxattempts",
	}

	for envKey, want := range tests {
		t.Run(envKey, func(t *testing.T) {
			assert.Equal(t, want, canonicalizeEnvKey(envKey, existing))
		})
	}
}

func TestNormalizeToken(t *testing.T) {
	assert.Equal(t, normalizeToken("deepLinkBase"), normalizeToken("deeplinkbase"))
	assert.NotEqual(t, normalizeToken("topicId"), normalizeToken("topic"))
}
