package services

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/clockwisehq/workforce-go/config"
	"github.com/clockwisehq/workforce-go/dto"
	"github.com/clockwisehq/workforce-go/models"
	"github.com/clockwisehq/workforce-go/repositories"
	"github.com/clockwisehq/workforce-go/workflow"
	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"
)

var ErrNoBillableWork = errors.New("no approved billable entries in the period")

type InvoiceService struct {
	Repos *repositories.Repos
	Audit *AuditService
}

func NewInvoiceService(repos *repositories.Repos, audit *AuditService) *InvoiceService {
	return &InvoiceService{Repos: repos, Audit: audit}
}

func newInvoiceNumber() string {
	return "INV-" + strings.ToUpper(uuid.NewString()[:8])
}

// Generate builds a DRAFT invoice from the user's approved billable entries
// in [from, to]. Each entry becomes one line item priced at its billing
// amount, falling back to hours times the user's hourly rate.
func (s *InvoiceService) Generate(actorID uint, input dto.GenerateInvoiceInput) (models.Invoice, error) {
	from, err := time.Parse("2006-01-02", input.From)
	if err != nil {
		return models.Invoice{}, fmt.Errorf("invalid from date: %w", err)
	}
	to, err := time.Parse("2006-01-02", input.To)
	if err != nil {
		return models.Invoice{}, fmt.Errorf("invalid to date: %w", err)
	}

	user, err := s.Repos.User.GetByID(input.UserID)
	if err != nil {
		return models.Invoice{}, err
	}

	entries, err := s.Repos.Timesheet.ListApprovedBillable(input.UserID, input.ProjectID, from, to)
	if err != nil {
		return models.Invoice{}, err
	}
	if len(entries) == 0 {
		return models.Invoice{}, ErrNoBillableWork
	}

	currency := input.Currency
	if currency == "" {
		currency = "USD"
	}

	invoice := models.Invoice{
		InvoiceNumber: newInvoiceNumber(),
		UserID:        input.UserID,
		ProjectID:     input.ProjectID,
		Status:        models.InvoiceStatusDraft,
		Currency:      currency,
	}
	for _, e := range entries {
		amount := e.HoursWorked * user.HourlyRate
		if e.BillingAmount != nil {
			amount = *e.BillingAmount
		}
		entryID := e.ID
		invoice.LineItems = append(invoice.LineItems, models.InvoiceLineItem{
			EntryID:     &entryID,
			Date:        e.WorkDate,
			Description: e.Description,
			Hours:       e.HoursWorked,
			Amount:      amount,
		})
		invoice.Total += amount
	}

	if err := s.Repos.Invoice.Create(&invoice); err != nil {
		return models.Invoice{}, err
	}
	s.recordAudit(actorID, "invoice.generate", invoice.ID)
	return invoice, nil
}

// Send issues a DRAFT invoice, stamping the issue date and the due date.
func (s *InvoiceService) Send(actorID, invoiceID uint) (models.Invoice, error) {
	invoice, err := s.transition(invoiceID, models.InvoiceStatusSent)
	if err != nil {
		return models.Invoice{}, err
	}

	now := time.Now()
	due := now.AddDate(0, 0, config.Policy.InvoiceDueDays)
	invoice.IssuedAt = &now
	invoice.DueDate = &due

	if err := s.Repos.Invoice.Save(&invoice); err != nil {
		return models.Invoice{}, err
	}
	s.recordAudit(actorID, "invoice.send", invoice.ID)
	return invoice, nil
}

func (s *InvoiceService) MarkPaid(actorID, invoiceID uint) (models.Invoice, error) {
	invoice, err := s.transition(invoiceID, models.InvoiceStatusPaid)
	if err != nil {
		return models.Invoice{}, err
	}

	now := time.Now()
	invoice.PaidAt = &now

	if err := s.Repos.Invoice.Save(&invoice); err != nil {
		return models.Invoice{}, err
	}
	s.recordAudit(actorID, "invoice.pay", invoice.ID)
	return invoice, nil
}

func (s *InvoiceService) Cancel(actorID, invoiceID uint) (models.Invoice, error) {
	invoice, err := s.transition(invoiceID, models.InvoiceStatusCancelled)
	if err != nil {
		return models.Invoice{}, err
	}
	if err := s.Repos.Invoice.Save(&invoice); err != nil {
		return models.Invoice{}, err
	}
	s.recordAudit(actorID, "invoice.cancel", invoice.ID)
	return invoice, nil
}

func (s *InvoiceService) Get(invoiceID uint) (models.Invoice, error) {
	return s.Repos.Invoice.GetByID(invoiceID)
}

func (s *InvoiceService) List() ([]models.Invoice, error) {
	return s.Repos.Invoice.List()
}

// MarkOverdueSweep flips every SENT invoice past its due date to OVERDUE.
// Run periodically by the scheduler.
func (s *InvoiceService) MarkOverdueSweep(now time.Time) (int, error) {
	invoices, err := s.Repos.Invoice.ListSentDueBefore(now)
	if err != nil {
		return 0, err
	}

	flipped := 0
	for i := range invoices {
		if err := workflow.InvoiceTransitions.Ensure(string(invoices[i].Status), string(models.InvoiceStatusOverdue)); err != nil {
			continue
		}
		invoices[i].Status = models.InvoiceStatusOverdue
		if err := s.Repos.Invoice.Save(&invoices[i]); err != nil {
			return flipped, err
		}
		flipped++
	}
	return flipped, nil
}

// ExportXLSX renders the invoice as a spreadsheet with one row per line item
// and a trailing total row.
func (s *InvoiceService) ExportXLSX(invoiceID uint) (*bytes.Buffer, string, error) {
	invoice, err := s.Repos.Invoice.GetByID(invoiceID)
	if err != nil {
		return nil, "", err
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := "Invoice"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, "", err
	}

	header := []interface{}{"Date", "Description", "Hours", "Amount"}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return nil, "", err
	}
	for i, item := range invoice.LineItems {
		row := []interface{}{
			item.Date.Format("2006-01-02"),
			item.Description,
			item.Hours,
			item.Amount,
		}
		cell := fmt.Sprintf("A%d", i+2)
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return nil, "", err
		}
	}
	totalRow := []interface{}{"", "Total", "", invoice.Total}
	cell := fmt.Sprintf("A%d", len(invoice.LineItems)+2)
	if err := f.SetSheetRow(sheet, cell, &totalRow); err != nil {
		return nil, "", err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, "", err
	}
	return buf, invoice.InvoiceNumber + ".xlsx", nil
}

func (s *InvoiceService) transition(invoiceID uint, target models.InvoiceStatus) (models.Invoice, error) {
	invoice, err := s.Repos.Invoice.GetByID(invoiceID)
	if err != nil {
		return models.Invoice{}, err
	}
	if err := workflow.InvoiceTransitions.Ensure(string(invoice.Status), string(target)); err != nil {
		return models.Invoice{}, err
	}
	invoice.Status = target
	return invoice, nil
}

func (s *InvoiceService) recordAudit(actorID uint, action string, invoiceID uint) {
	// invoice audit failures are non-fatal; the invoice write already landed
	_ = s.Audit.Record(actorID, action, "invoice", invoiceID, "")
}
