package service

import (
	"fmt"

	"github.com/skip2/go-qrcode"
)

// TableQRGenerator renders the printable per-table QR code. Scanning it opens
// the menu with the table preselected.
type TableQRGenerator struct {
	BaseURL string
}

func (g TableQRGenerator) Generate(tableNumber string) ([]byte, error) {
	qrData := fmt.Sprintf("%s/?table=%s", g.BaseURL, tableNumber)
	return qrcode.Encode(qrData, qrcode.Medium, 256)
}

var _ QRGenerator = TableQRGenerator{}
