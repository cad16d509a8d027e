package utils

import "github.com/skip2/go-qrcode"

type QRCodeGenerator struct {
	Size int
}

func NewQRCodeGenerator() QRCodeGenerator {
	return QRCodeGenerator{Size: 256}
}

// Generate encodes content as a PNG QR code.
func (g QRCodeGenerator) Generate(content string) ([]byte, error) {
	return qrcode.Encode(content, qrcode.Medium, g.Size)
}
