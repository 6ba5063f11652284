package qrcode

import (
	"encoding/json"
	"strings"

	"bazaar/config"
	"bazaar/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/skip2/go-qrcode"
)

const (
	defaultSize = 256
	shopQRType  = "shop"
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
	baseURL              string
}

// ShopQRData is the payload encoded when no public base URL is configured.
type ShopQRData struct {
	UniqueID string `json:"unique_id"`
	Type     string `json:"type"`
}

// NewQRCodeService creates a new QR code service instance. With a non-empty
// baseURL the code encodes baseURL/<uniqueId>, otherwise a JSON payload.
func NewQRCodeService(size int, errorCorrectionLevel, baseURL string) service.QRCodeService {
	var level qrcode.RecoveryLevel
	switch errorCorrectionLevel {
	case "L":
		level = qrcode.Low
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	if size <= 0 {
		size = defaultSize
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
		baseURL:              strings.TrimRight(baseURL, "/"),
	}
}

// NewQRCodeServiceFromConfig builds the service from the qrcode config section.
func NewQRCodeServiceFromConfig(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		return NewQRCodeService(defaultSize, "M", "")
	}

	return NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel, cfg.QRCode.BaseURL)
}

// GenerateShopQR renders a PNG QR code pointing at the shop.
func (s *qrcodeService) GenerateShopQR(uniqueID string) ([]byte, error) {
	if uniqueID == "" {
		return nil, errors.New("shop unique id is required")
	}

	content, err := s.payload(uniqueID)
	if err != nil {
		return nil, err
	}

	qrCode, err := qrcode.New(content, s.errorCorrectionLevel)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create QR code")
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate PNG")
	}

	return pngBytes, nil
}

func (s *qrcodeService) payload(uniqueID string) (string, error) {
	if s.baseURL != "" {
		return s.baseURL + "/" + uniqueID, nil
	}

	jsonData, err := json.Marshal(ShopQRData{UniqueID: uniqueID, Type: shopQRType})
	if err != nil {
		return "", errors.Wrap(err, "failed to marshal QR code data")
	}

	return string(jsonData), nil
}

// ParseShopQR returns the shop unique id from either payload form.
func (s *qrcodeService) ParseShopQR(qrData string) (string, error) {
	if s.baseURL != "" && strings.HasPrefix(qrData, s.baseURL+"/") {
		uniqueID := strings.TrimPrefix(qrData, s.baseURL+"/")
		if uniqueID == "" || strings.Contains(uniqueID, "/") {
			return "", errors.Errorf("invalid shop link: %s", qrData)
		}

		return uniqueID, nil
	}

	var data ShopQRData
	if err := json.Unmarshal([]byte(qrData), &data); err != nil {
		return "", errors.Wrap(err, "failed to unmarshal QR code data")
	}

	if data.Type != shopQRType {
		return "", errors.Errorf("invalid QR code type: %s", data.Type)
	}

	if data.UniqueID == "" {
		return "", errors.New("QR code carries no shop id")
	}

	return data.UniqueID, nil
}
