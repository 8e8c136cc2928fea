package pipeline

import (
	"fmt"

	qrcode "github.com/skip2/go-qrcode"
)

// QRSize is the square pixel size of the share QR code.
const QRSize = 200

// QRDataURL renders a URL as a QR code PNG, returned as a data URL for the
// theme's share modal.
func QRDataURL(url string) (string, error) {
	png, err := qrcode.Encode(url, qrcode.Medium, QRSize)
	if err != nil {
		return "", fmt.Errorf("generating QR code for %q: %w", url, err)
	}
	return EncodeDataURL(FormatPNG, png), nil
}
