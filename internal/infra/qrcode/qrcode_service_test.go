package qrcode

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewQRCodeService(t *testing.T) {
	tests := []struct {
		name                 string
		size                 int
		errorCorrectionLevel string
	}{
		{"Low error correction", 256, "L"},
		{"Medium error correction", 256, "M"},
		{"High error correction", 256, "Q"},
		{"Highest error correction", 256, "H"},
		{"Default error correction", 256, "invalid"},
		{"Zero size falls back", 0, "M"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewQRCodeService(tt.size, tt.errorCorrectionLevel, "https://harvest.example")
			assert.NotNil(t, svc)
		})
	}
}

func TestQRCodeService_GenerateTrackingQR(t *testing.T) {
	svc := NewQRCodeService(256, "M", "https://harvest.example")

	qrBytes, err := svc.GenerateTrackingQR("SHIP-000042")
	require.NoError(t, err)
	require.Greater(t, len(qrBytes), 4)

	// PNG magic number
	assert.Equal(t, []byte{0x89, 0x50, 0x4E, 0x47}, qrBytes[:4])
}

func TestQRCodeService_GenerateTrackingQR_EmptyID(t *testing.T) {
	svc := NewQRCodeService(256, "M", "https://harvest.example")

	_, err := svc.GenerateTrackingQR("  ")
	assert.Error(t, err)
}

func TestQRCodeService_TrackingURL(t *testing.T) {
	svc := NewQRCodeService(128, "L", "https://harvest.example/").(*qrcodeService)

	assert.Equal(t, "https://harvest.example/track/SHIP-000001", svc.TrackingURL("SHIP-000001"))
}

func TestQRCodeService_ParseTrackingQR(t *testing.T) {
	svc := NewQRCodeService(256, "M", "https://harvest.example")

	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{"full link", "https://harvest.example/track/SHIP-000007", "SHIP-000007", false},
		{"link on another host", "http://localhost:8080/track/SHIP-000008", "SHIP-000008", false},
		{"bare display id", " SHIP-000009 ", "SHIP-000009", false},
		{"empty", "", "", true},
		{"not a tracking link", "https://harvest.example/orders/ORD-000001", "", true},
		{"missing id", "https://harvest.example/track/", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := svc.ParseTrackingQR(tt.input)
			if tt.wantErr {
				assert.Error(t, err)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestQRCodeService_RoundTrip(t *testing.T) {
	svc := NewQRCodeService(256, "M", "https://harvest.example").(*qrcodeService)

	displayID, err := svc.ParseTrackingQR(svc.TrackingURL("SHIP-123456"))
	require.NoError(t, err)
	assert.Equal(t, "SHIP-123456", displayID)
}
