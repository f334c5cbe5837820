package qrcode

import (
	"net/url"
	"strings"

	"localharvest/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/skip2/go-qrcode"
)

const trackPathPrefix = "/track/"

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
	baseURL              string
}

// NewQRCodeService creates a QR code service that encodes links to the public tracking page.
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
		size = 256
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
		baseURL:              strings.TrimRight(baseURL, "/"),
	}
}

// TrackingURL returns the link a tracking QR code encodes.
func (s *qrcodeService) TrackingURL(displayID string) string {
	return s.baseURL + trackPathPrefix + url.PathEscape(displayID)
}

func (s *qrcodeService) GenerateTrackingQR(displayID string) ([]byte, error) {
	if strings.TrimSpace(displayID) == "" {
		return nil, errors.New("shipment display id is required")
	}

	qrCode, err := qrcode.New(s.TrackingURL(displayID), s.errorCorrectionLevel)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create QR code")
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate PNG")
	}

	return pngBytes, nil
}

// ParseTrackingQR accepts either a full tracking link or a bare display id.
func (s *qrcodeService) ParseTrackingQR(qrData string) (string, error) {
	data := strings.TrimSpace(qrData)
	if data == "" {
		return "", errors.New("empty QR code data")
	}

	if !strings.Contains(data, "/") {
		return data, nil
	}

	parsed, err := url.Parse(data)
	if err != nil {
		return "", errors.Wrap(err, "failed to parse QR code data")
	}

	idx := strings.LastIndex(parsed.Path, trackPathPrefix)
	if idx < 0 {
		return "", errors.Errorf("not a tracking link: %s", data)
	}

	displayID, err := url.PathUnescape(parsed.Path[idx+len(trackPathPrefix):])
	if err != nil {
		return "", errors.Wrap(err, "failed to decode shipment display id")
	}
	if displayID == "" || strings.Contains(displayID, "/") {
		return "", errors.Errorf("invalid shipment display id in %s", data)
	}

	return displayID, nil
}
