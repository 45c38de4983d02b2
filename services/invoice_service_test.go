package services_test

import (
	"errors"
	"testing"
	"time"

	"github.com/clockwisehq/workforce-go/dto"
	"github.com/clockwisehq/workforce-go/models"
	"github.com/clockwisehq/workforce-go/repositories"
	"github.com/clockwisehq/workforce-go/repositories/mock_repositories"
	"github.com/clockwisehq/workforce-go/services"
	"github.com/clockwisehq/workforce-go/workflow"
	"github.com/golang/mock/gomock"
)

func setupInvoiceMocks(t *testing.T) (*services.InvoiceService,
	*mock_repositories.MockInvoiceRepo,
	*mock_repositories.MockTimesheetRepo,
	*mock_repositories.MockUserRepo,
	*mock_repositories.MockAuditRepo) {

	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	mockInvoice := mock_repositories.NewMockInvoiceRepo(ctrl)
	mockTimesheet := mock_repositories.NewMockTimesheetRepo(ctrl)
	mockUser := mock_repositories.NewMockUserRepo(ctrl)
	mockAudit := mock_repositories.NewMockAuditRepo(ctrl)

	repos := &repositories.Repos{
		Invoice:   mockInvoice,
		Timesheet: mockTimesheet,
		User:      mockUser,
		Audit:     mockAudit,
	}

	svc := services.NewInvoiceService(repos, services.NewAuditService(repos))
	return svc, mockInvoice, mockTimesheet, mockUser, mockAudit
}

func approvedBillable(id uint, hours float64, amount *float64) models.TimesheetEntry {
	return models.TimesheetEntry{
		ID:            id,
		UserID:        2,
		WorkDate:      monday,
		HoursWorked:   hours,
		Description:   "billable client work",
		IsBillable:    true,
		BillingAmount: amount,
		Status:        models.EntryStatusApproved,
	}
}

func TestGenerateInvoice(t *testing.T) {
	input := dto.GenerateInvoiceInput{UserID: 2, From: "2026-08-01", To: "2026-08-31"}

	t.Run("prices entries by billing amount or hourly rate", func(t *testing.T) {
		svc, mockInvoice, mockTimesheet, mockUser, mockAudit := setupInvoiceMocks(t)

		rated := managed
		rated.HourlyRate = 50
		amount := 300.0
		mockUser.EXPECT().GetByID(uint(2)).Return(rated, nil)
		mockTimesheet.EXPECT().ListApprovedBillable(uint(2), gomock.Nil(), gomock.Any(), gomock.Any()).Return([]models.TimesheetEntry{
			approvedBillable(1, 4, &amount),
			approvedBillable(2, 3, nil),
		}, nil)
		mockInvoice.EXPECT().Create(gomock.Any()).DoAndReturn(func(inv *models.Invoice) error {
			if len(inv.InvoiceNumber) != 12 || inv.InvoiceNumber[:4] != "INV-" {
				t.Fatalf("unexpected invoice number %q", inv.InvoiceNumber)
			}
			if inv.Total != 300+3*50 {
				t.Fatalf("expected total 450, got %f", inv.Total)
			}
			if len(inv.LineItems) != 2 {
				t.Fatalf("expected 2 line items, got %d", len(inv.LineItems))
			}
			return nil
		})
		mockAudit.EXPECT().Create(gomock.Any()).Return(nil)

		_, err := svc.Generate(9, input)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("no billable work is an error", func(t *testing.T) {
		svc, _, mockTimesheet, mockUser, _ := setupInvoiceMocks(t)

		mockUser.EXPECT().GetByID(uint(2)).Return(managed, nil)
		mockTimesheet.EXPECT().ListApprovedBillable(uint(2), gomock.Nil(), gomock.Any(), gomock.Any()).Return(nil, nil)

		_, err := svc.Generate(9, input)
		if !errors.Is(err, services.ErrNoBillableWork) {
			t.Fatalf("expected ErrNoBillableWork, got %v", err)
		}
	})
}

func TestInvoiceLifecycle(t *testing.T) {
	t.Run("send stamps issue and due dates", func(t *testing.T) {
		svc, mockInvoice, _, _, mockAudit := setupInvoiceMocks(t)

		mockInvoice.EXPECT().GetByID(uint(5)).Return(models.Invoice{ID: 5, Status: models.InvoiceStatusDraft}, nil)
		mockInvoice.EXPECT().Save(gomock.Any()).DoAndReturn(func(inv *models.Invoice) error {
			if inv.IssuedAt == nil || inv.DueDate == nil {
				t.Fatal("expected issue and due dates")
			}
			if !inv.DueDate.After(*inv.IssuedAt) {
				t.Fatal("expected the due date after the issue date")
			}
			return nil
		})
		mockAudit.EXPECT().Create(gomock.Any()).Return(nil)

		inv, err := svc.Send(9, 5)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if inv.Status != models.InvoiceStatusSent {
			t.Fatalf("expected SENT, got %s", inv.Status)
		}
	})

	t.Run("a draft invoice cannot be paid", func(t *testing.T) {
		svc, mockInvoice, _, _, _ := setupInvoiceMocks(t)

		mockInvoice.EXPECT().GetByID(uint(5)).Return(models.Invoice{ID: 5, Status: models.InvoiceStatusDraft}, nil)

		_, err := svc.MarkPaid(9, 5)
		if !errors.Is(err, workflow.ErrInvalidTransition) {
			t.Fatalf("expected invalid transition, got %v", err)
		}
	})

	t.Run("overdue sweep flips sent invoices past due", func(t *testing.T) {
		svc, mockInvoice, _, _, _ := setupInvoiceMocks(t)

		now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
		due := now.AddDate(0, 0, -3)
		mockInvoice.EXPECT().ListSentDueBefore(now).Return([]models.Invoice{
			{ID: 1, Status: models.InvoiceStatusSent, DueDate: &due},
			{ID: 2, Status: models.InvoiceStatusSent, DueDate: &due},
		}, nil)
		mockInvoice.EXPECT().Save(gomock.Any()).DoAndReturn(func(inv *models.Invoice) error {
			if inv.Status != models.InvoiceStatusOverdue {
				t.Fatalf("expected OVERDUE, got %s", inv.Status)
			}
			return nil
		}).Times(2)

		flipped, err := svc.MarkOverdueSweep(now)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if flipped != 2 {
			t.Fatalf("expected 2 flipped, got %d", flipped)
		}
	})
}

func TestExportXLSX(t *testing.T) {
	svc, mockInvoice, _, _, _ := setupInvoiceMocks(t)

	mockInvoice.EXPECT().GetByID(uint(5)).Return(models.Invoice{
		ID:            5,
		InvoiceNumber: "INV-ABCD1234",
		Status:        models.InvoiceStatusSent,
		Total:         450,
		LineItems: []models.InvoiceLineItem{
			{Date: monday, Description: "client work", Hours: 4, Amount: 300},
			{Date: monday.AddDate(0, 0, 1), Description: "more client work", Hours: 3, Amount: 150},
		},
	}, nil)

	buf, filename, err := svc.ExportXLSX(5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if filename != "INV-ABCD1234.xlsx" {
		t.Fatalf("unexpected filename %q", filename)
	}
	if buf.Len() == 0 {
		t.Fatal("expected a non-empty workbook")
	}
}
