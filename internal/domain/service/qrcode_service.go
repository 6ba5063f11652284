package service

// QRCodeService generates and parses shop share codes.
type QRCodeService interface {
	// GenerateShopQR renders a PNG QR code pointing to the shop.
	GenerateShopQR(uniqueID string) ([]byte, error)

	// ParseShopQR returns the shop unique id encoded in a scanned payload.
	ParseShopQR(qrData string) (string, error)
}
