package service

// QRCodeService defines the interface for shipment tracking QR codes
type QRCodeService interface {
	// GenerateTrackingQR renders a PNG QR code pointing at the public tracking page
	GenerateTrackingQR(shipmentDisplayID string) ([]byte, error)

	// ParseTrackingQR extracts the shipment display ID from scanned QR content
	ParseTrackingQR(qrData string) (string, error)
}
