package qrcode

import (
	"github.com/skip2/go-qrcode"
)

// GeneratePNG encodes data as a QR code and returns the PNG bytes.
func GeneratePNG(data string) ([]byte, error) {
	png, err := qrcode.Encode(data, qrcode.Medium, 256)
	if err != nil {
		return nil, err
	}
	return png, nil
}
