// Package qr renders the shareable per-table codes. A scanned code
// opens the customer menu scoped to that table via the table query
// parameter.
package qr

import (
	"fmt"
	"net/url"

	qrcode "github.com/skip2/go-qrcode"
)

// ExportSize is the edge length in pixels of downloaded PNG codes.
const ExportSize = 1000

// ShareURL builds the customer-mode URL for a table.
func ShareURL(baseURL, tableID string) (string, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return "", fmt.Errorf("qr: parse base url: %w", err)
	}
	q := u.Query()
	q.Set("table", tableID)
	u.RawQuery = q.Encode()
	return u.String(), nil
}

// PNG renders the share URL as a scannable code with high error
// recovery.
func PNG(shareURL string, size int) ([]byte, error) {
	png, err := qrcode.Encode(shareURL, qrcode.High, size)
	if err != nil {
		return nil, fmt.Errorf("qr: encode: %w", err)
	}
	return png, nil
}
