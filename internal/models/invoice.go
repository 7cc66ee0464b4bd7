package models

import (
	"fmt"
	"time"

	"gorm.io/gorm"
)

// InvoiceStatus tracks an invoice through its lifecycle
type InvoiceStatus string

const (
	InvoiceDraft   InvoiceStatus = "Draft"
	InvoiceSent    InvoiceStatus = "Sent"
	InvoicePaid    InvoiceStatus = "Paid"
	InvoiceOverdue InvoiceStatus = "Overdue"
)

// ParseInvoiceStatus converts a string into an InvoiceStatus
func ParseInvoiceStatus(s string) (InvoiceStatus, error) {
	switch s {
	case "Draft":
		return InvoiceDraft, nil
	case "Sent":
		return InvoiceSent, nil
	case "Paid":
		return InvoicePaid, nil
	case "Overdue":
		return InvoiceOverdue, nil
	default:
		return "", fmt.Errorf("invalid invoice status: %q", s)
	}
}

// InvoiceStatusOrDraft is the lenient read used when loading stored
// invoices: unknown statuses degrade to Draft instead of failing the load.
// This mirrors how older databases with retired status values are handled.
func InvoiceStatusOrDraft(s string) InvoiceStatus {
	status, err := ParseInvoiceStatus(s)
	if err != nil {
		return InvoiceDraft
	}
	return status
}

// Invoice is a frozen snapshot of billed sessions
type Invoice struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	InvoiceNumber string  `gorm:"unique;not null" json:"invoice_number"`
	ClientName    string  `gorm:"not null" json:"client_name"`
	ClientEmail   string  `json:"client_email"`
	CreatedDate   string  `gorm:"not null" json:"created_date"` // YYYY-MM-DD
	DueDate       string  `gorm:"not null" json:"due_date"`
	Status        string  `gorm:"default:Draft" json:"status"`
	Subtotal      float64 `json:"subtotal"`
	TaxRate       float64 `json:"tax_rate"`
	TaxAmount     float64 `json:"tax_amount"`
	Total         float64 `json:"total"`
	Notes         string  `json:"notes"`

	// Relationships
	Items []InvoiceItem `gorm:"foreignKey:InvoiceID" json:"items"`
}

// InvoiceItem is a frozen copy of a billed session. SessionID is kept
// only so future invoices can exclude already-billed sessions.
type InvoiceItem struct {
	ID        uint `gorm:"primarykey" json:"id"`
	InvoiceID uint `gorm:"not null;index" json:"invoice_id"`

	SessionID   *uint   `gorm:"index" json:"session_id"`
	Description string  `json:"description"`
	Hours       float64 `json:"hours"`
	Rate        float64 `json:"rate"`
	Amount      float64 `json:"amount"`
}

// NewInvoice holds the data needed to create an invoice
type NewInvoice struct {
	ClientName  string `validate:"required"`
	ClientEmail string
	DueDate     string `validate:"required"`
	TaxRate     float64
	Notes       string
	SessionIDs  []uint `validate:"min=1"`
}
