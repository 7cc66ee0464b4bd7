package db

import (
	"fmt"
	"time"

	"github.com/chronodesk/chronodesk/internal/analytics"
	"github.com/chronodesk/chronodesk/internal/models"
)

// ListInvoices returns all invoices with their items, newest first
func (s *Store) ListInvoices() ([]models.Invoice, error) {
	var invoices []models.Invoice
	err := s.db.Preload("Items").Order("created_date DESC").Find(&invoices).Error
	if err != nil {
		return nil, err
	}
	for i := range invoices {
		invoices[i].Status = string(models.InvoiceStatusOrDraft(invoices[i].Status))
	}
	return invoices, nil
}

// GetInvoice retrieves an invoice with its items
func (s *Store) GetInvoice(id uint) (*models.Invoice, error) {
	var invoice models.Invoice
	if err := s.db.Preload("Items").First(&invoice, id).Error; err != nil {
		return nil, fmt.Errorf("invoice #%d: %w", id, ErrNotFound)
	}
	invoice.Status = string(models.InvoiceStatusOrDraft(invoice.Status))
	return &invoice, nil
}

// CreateInvoice freezes the selected sessions into a new draft invoice.
// Items are copies; the only remaining link is the session id used to
// exclude billed sessions from future selection.
func (s *Store) CreateInvoice(req models.NewInvoice) (*models.Invoice, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, fmt.Errorf("invalid invoice: %w", err)
	}

	var sessions []models.Session
	err := s.db.Preload("SessionType").Where("id IN ?", req.SessionIDs).Find(&sessions).Error
	if err != nil {
		return nil, err
	}

	var count int64
	if err := s.db.Model(&models.Invoice{}).Count(&count).Error; err != nil {
		return nil, err
	}

	var subtotal float64
	items := make([]models.InvoiceItem, 0, len(sessions))
	for i := range sessions {
		sess := &sessions[i]
		amount := sess.Pay()
		subtotal += amount
		rate := 0.0
		if sess.HourlyRate != nil {
			rate = *sess.HourlyRate
		}
		sessionID := sess.ID
		items = append(items, models.InvoiceItem{
			SessionID:   &sessionID,
			Description: fmt.Sprintf("%s - %s", sess.CategoryName(), sess.ProjectName),
			Hours:       sess.Hours,
			Rate:        rate,
			Amount:      amount,
		})
	}

	taxAmount := subtotal * req.TaxRate / 100
	invoice := models.Invoice{
		InvoiceNumber: fmt.Sprintf("INV-%04d", count+1),
		ClientName:    req.ClientName,
		ClientEmail:   req.ClientEmail,
		CreatedDate:   analytics.DateOf(time.Now()),
		DueDate:       req.DueDate,
		Status:        string(models.InvoiceDraft),
		Subtotal:      subtotal,
		TaxRate:       req.TaxRate,
		TaxAmount:     taxAmount,
		Total:         subtotal + taxAmount,
		Notes:         req.Notes,
		Items:         items,
	}
	if err := s.db.Create(&invoice).Error; err != nil {
		return nil, err
	}
	return &invoice, nil
}

// UpdateInvoiceStatus moves an invoice to a parsed, known status
func (s *Store) UpdateInvoiceStatus(id uint, status models.InvoiceStatus) error {
	res := s.db.Model(&models.Invoice{}).Where("id = ?", id).Update("status", string(status))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("invoice #%d: %w", id, ErrNotFound)
	}
	return nil
}

// DeleteInvoice removes an invoice and its items
func (s *Store) DeleteInvoice(id uint) error {
	if err := s.db.Where("invoice_id = ?", id).Delete(&models.InvoiceItem{}).Error; err != nil {
		return err
	}
	return s.db.Delete(&models.Invoice{}, id).Error
}

// UninvoicedSessions returns sessions not yet referenced by any invoice
// item, newest first
func (s *Store) UninvoicedSessions() ([]models.Session, error) {
	var sessions []models.Session
	err := s.db.Preload("SessionType").
		Where("id NOT IN (?)", s.db.Model(&models.InvoiceItem{}).
			Select("session_id").Where("session_id IS NOT NULL")).
		Order("date DESC").
		Find(&sessions).Error
	if err != nil {
		return nil, err
	}
	return sessions, nil
}
