package client

import (
	"fmt"
	"image"
	"net/url"
	"strings"

	"github.com/makiuchi-d/gozxing"
	"github.com/makiuchi-d/gozxing/qrcode"
)

// UPIPayload holds the payee fields of a upi:// payment QR.
type UPIPayload struct {
	PayeeAddress string // pa: merchant VPA, e.g. furnili@okaxis
	PayeeName    string // pn
	Amount       string // am, optional
}

// QRClient decodes payment QR codes embedded in screenshots. A decoded
// upi:// payload identifies the payee far more reliably than OCR text.
type QRClient struct{}

func NewQRClient() *QRClient {
	return &QRClient{}
}

// DecodeUPI scans the image for a QR code carrying a upi:// URI. Images
// without one return an error the caller treats as "no candidate".
func (q *QRClient) DecodeUPI(img image.Image) (*UPIPayload, error) {
	bmp, err := gozxing.NewBinaryBitmapFromImage(img)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare image for QR decoding: %w", err)
	}

	qrReader := qrcode.NewQRCodeReader()
	result, err := qrReader.Decode(bmp, nil)
	if err != nil {
		return nil, fmt.Errorf("no QR code found: %w", err)
	}

	return parseUPIURI(result.GetText())
}

func parseUPIURI(raw string) (*UPIPayload, error) {
	if !strings.HasPrefix(strings.ToLower(raw), "upi://") {
		return nil, fmt.Errorf("QR payload is not a UPI URI")
	}

	parsed, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("malformed UPI URI: %w", err)
	}

	query := parsed.Query()
	payload := &UPIPayload{
		PayeeAddress: query.Get("pa"),
		PayeeName:    query.Get("pn"),
		Amount:       query.Get("am"),
	}

	if payload.PayeeAddress == "" && payload.PayeeName == "" {
		return nil, fmt.Errorf("UPI URI carries no payee information")
	}

	return payload, nil
}
