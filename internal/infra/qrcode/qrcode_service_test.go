package qrcode

import (
	"encoding/json"
	"testing"

	"bazaar/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertPNG(t *testing.T, data []byte) {
	t.Helper()
	require.GreaterOrEqual(t, len(data), 4)
	assert.Equal(t, []byte{0x89, 0x50, 0x4E, 0x47}, data[:4])
}

func TestNewQRCodeService_Levels(t *testing.T) {
	for _, level := range []string{"L", "M", "Q", "H", "invalid"} {
		t.Run(level, func(t *testing.T) {
			svc := NewQRCodeService(256, level, "")
			png, err := svc.GenerateShopQR("bakery-1234")
			require.NoError(t, err)
			assertPNG(t, png)
		})
	}
}

func TestNewQRCodeServiceFromConfig(t *testing.T) {
	svc := NewQRCodeServiceFromConfig(&config.Config{})
	png, err := svc.GenerateShopQR("bakery-1234")
	require.NoError(t, err)
	assertPNG(t, png)

	svc = NewQRCodeServiceFromConfig(&config.Config{QRCode: &config.QRCodeConfig{
		Size:    128,
		BaseURL: "https://bazaar.example/s/",
	}})
	id, err := svc.ParseShopQR("https://bazaar.example/s/bakery-1234")
	require.NoError(t, err)
	assert.Equal(t, "bakery-1234", id)
}

func TestGenerateShopQR_EmptyID(t *testing.T) {
	_, err := NewQRCodeService(256, "M", "").GenerateShopQR("")
	assert.Error(t, err)
}

func TestParseShopQR_JSONPayload(t *testing.T) {
	svc := NewQRCodeService(256, "M", "")
	raw, err := json.Marshal(ShopQRData{UniqueID: "tea-house-0042", Type: "shop"})
	require.NoError(t, err)

	id, err := svc.ParseShopQR(string(raw))
	require.NoError(t, err)
	assert.Equal(t, "tea-house-0042", id)
}

func TestParseShopQR_Invalid(t *testing.T) {
	svc := NewQRCodeService(256, "M", "https://bazaar.example/s")

	tests := []struct {
		name string
		data string
	}{
		{"not json", "hello"},
		{"wrong type", `{"unique_id":"x","type":"subscription"}`},
		{"missing id", `{"type":"shop"}`},
		{"nested path", "https://bazaar.example/s/a/b"},
		{"empty path", "https://bazaar.example/s/"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.ParseShopQR(tt.data)
			assert.Error(t, err)
		})
	}
}
