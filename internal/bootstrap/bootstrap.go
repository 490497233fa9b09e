// Package bootstrap renders a Wi-Fi Easy Connect (DPP) bootstrapping
// URI as a QR code, for display during enrollment.
package bootstrap

import (
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/skip2/go-qrcode"
)

// Info describes the parameters of a DPP bootstrapping URI.
type Info struct {
	// Channel is the IEEE 802.11 operating channel the enrollee should
	// listen on, e.g. 6.
	Channel int
	// MAC is the device's bootstrapping MAC address.
	MAC string
	// PublicKey is the raw DER-encoded bootstrapping public key.
	PublicKey []byte
}

// URI renders the DPP bootstrapping URI: "DPP:C:<channel>;M:<mac>;K:<base64 pubkey>;;".
func (i Info) URI() string {
	var b strings.Builder
	b.WriteString("DPP:")
	if i.Channel > 0 {
		fmt.Fprintf(&b, "C:%d;", i.Channel)
	}
	if i.MAC != "" {
		fmt.Fprintf(&b, "M:%s;", i.MAC)
	}
	if len(i.PublicKey) > 0 {
		fmt.Fprintf(&b, "K:%s;", base64.StdEncoding.EncodeToString(i.PublicKey))
	}
	b.WriteString(";")
	return b.String()
}

// EncodePNG renders the bootstrapping URI as a PNG QR code of size x
// size pixels, at medium error-correction.
func EncodePNG(info Info, size int) ([]byte, error) {
	png, err := qrcode.Encode(info.URI(), qrcode.Medium, size)
	if err != nil {
		return nil, fmt.Errorf("bootstrap: encode qr code: %w", err)
	}
	return png, nil
}

// WritePNGFile renders the bootstrapping URI as a PNG QR code and
// writes it to path.
func WritePNGFile(info Info, size int, path string) error {
	if err := qrcode.WriteFile(info.URI(), qrcode.Medium, size, path); err != nil {
		return fmt.Errorf("bootstrap: write qr code file %s: %w", path, err)
	}
	return nil
}
