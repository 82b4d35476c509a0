package qrcode

import (
	"encoding/json"
	"fmt"

	"storefront/internal/domain/service"

	"github.com/skip2/go-qrcode"
)

const invoiceType = "invoice"

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// QRCodeData represents the QR code data structure
type QRCodeData struct {
	Type          string `json:"type"`
	TransactionID int64  `json:"transaction_id"`
	InvoiceNumber string `json:"invoice_number"`
	TotalPrice    int    `json:"total_price"`
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(size int, errorCorrectionLevel string) service.QRCodeService {
	var level qrcode.RecoveryLevel
	switch errorCorrectionLevel {
	case "L":
		level = qrcode.Low
	case "M":
		level = qrcode.Medium
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
	}
}

// GenerateInvoiceQR generates a PNG QR code carrying the invoice reference
func (s *qrcodeService) GenerateInvoiceQR(invoice service.InvoiceQR) ([]byte, error) {
	data := QRCodeData{
		Type:          invoiceType,
		TransactionID: invoice.TransactionID,
		InvoiceNumber: invoice.InvoiceNumber,
		TotalPrice:    invoice.TotalPrice,
	}

	jsonData, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal QR code data: %w", err)
	}

	qrCode, err := qrcode.New(string(jsonData), s.errorCorrectionLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PNG: %w", err)
	}

	return pngBytes, nil
}

// ParseInvoiceQR parses QR code data back into the invoice reference
func (s *qrcodeService) ParseInvoiceQR(qrData string) (*service.InvoiceQR, error) {
	var data QRCodeData
	if err := json.Unmarshal([]byte(qrData), &data); err != nil {
		return nil, fmt.Errorf("failed to unmarshal QR code data: %w", err)
	}

	if data.Type != invoiceType {
		return nil, fmt.Errorf("invalid QR code type: %s", data.Type)
	}
	if data.TransactionID <= 0 || data.InvoiceNumber == "" {
		return nil, fmt.Errorf("incomplete invoice QR code")
	}

	return &service.InvoiceQR{
		TransactionID: data.TransactionID,
		InvoiceNumber: data.InvoiceNumber,
		TotalPrice:    data.TotalPrice,
	}, nil
}
