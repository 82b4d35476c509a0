package service

// InvoiceQR is the payload encoded into an invoice QR code.
type InvoiceQR struct {
	TransactionID int64  `json:"transaction_id"`
	InvoiceNumber string `json:"invoice_number"`
	TotalPrice    int    `json:"total_price"`
}

// QRCodeService defines the interface for invoice QR code generation and parsing
type QRCodeService interface {
	// GenerateInvoiceQR renders the invoice as a PNG QR code
	GenerateInvoiceQR(invoice InvoiceQR) ([]byte, error)

	// ParseInvoiceQR decodes the text content of an invoice QR code
	ParseInvoiceQR(qrData string) (*InvoiceQR, error)
}
