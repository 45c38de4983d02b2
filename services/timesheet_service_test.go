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
	"go.uber.org/zap"
)

func setupTimesheetMocks(t *testing.T) (*services.TimesheetService,
	*mock_repositories.MockTimesheetRepo,
	*mock_repositories.MockUserRepo,
	*mock_repositories.MockAuditRepo) {

	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	mockTimesheet := mock_repositories.NewMockTimesheetRepo(ctrl)
	mockUser := mock_repositories.NewMockUserRepo(ctrl)
	mockAudit := mock_repositories.NewMockAuditRepo(ctrl)

	repos := &repositories.Repos{
		Timesheet: mockTimesheet,
		User:      mockUser,
		Audit:     mockAudit,
	}

	svc := services.NewTimesheetService(repos, zap.NewNop(), nil, services.NewAuditService(repos))
	return svc, mockTimesheet, mockUser, mockAudit
}

var (
	monday = time.Date(2026, 8, 24, 0, 0, 0, 0, time.UTC)

	manager  = models.User{UID: 1, Username: "boss", Role: models.UserRoleManager}
	managed  = models.User{UID: 2, Username: "emp", Role: models.UserRoleEmployee, ManagerID: ptrUint(1)}
	rootUser = models.User{UID: 3, Username: "founder", Role: models.UserRoleManager}
	admin    = models.User{UID: 9, Username: "admin", Role: models.UserRoleAdmin}
)

func ptrUint(v uint) *uint { return &v }

func draftEntry(id, userID uint, hours float64) models.TimesheetEntry {
	return models.TimesheetEntry{
		ID:          id,
		UserID:      userID,
		WorkDate:    monday,
		HoursWorked: hours,
		Description: "worked on the quarterly report",
		Status:      models.EntryStatusDraft,
	}
}

func submittedEntry(id, userID uint, hours float64) models.TimesheetEntry {
	e := draftEntry(id, userID, hours)
	e.Status = models.EntryStatusSubmitted
	return e
}

func TestSubmitWeek(t *testing.T) {
	t.Run("submits every draft entry with a timestamp", func(t *testing.T) {
		svc, mockTimesheet, _, mockAudit := setupTimesheetMocks(t)

		entries := []models.TimesheetEntry{draftEntry(1, 2, 8), draftEntry(2, 2, 8)}
		mockTimesheet.EXPECT().ListByUserWeek(uint(2), monday).Return(entries, nil)
		mockTimesheet.EXPECT().SaveAll(gomock.Any()).DoAndReturn(func(batch []models.TimesheetEntry) error {
			for _, e := range batch {
				if e.Status != models.EntryStatusSubmitted {
					t.Fatalf("expected SUBMITTED, got %s", e.Status)
				}
				if e.SubmittedAt == nil {
					t.Fatal("expected submitted_at stamp")
				}
			}
			return nil
		})
		mockAudit.EXPECT().Create(gomock.Any()).Return(nil)

		out, err := svc.SubmitWeek(2, monday)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(out) != 2 {
			t.Fatalf("expected 2 entries, got %d", len(out))
		}
	})

	t.Run("rejects batch with all problems listed and writes nothing", func(t *testing.T) {
		svc, mockTimesheet, _, _ := setupTimesheetMocks(t)

		bad := draftEntry(1, 2, 0)
		bad.Description = "short"
		already := submittedEntry(2, 2, 0)
		mockTimesheet.EXPECT().ListByUserWeek(uint(2), monday).Return([]models.TimesheetEntry{bad, already}, nil)

		_, err := svc.SubmitWeek(2, monday)
		var subErr *services.SubmissionError
		if !errors.As(err, &subErr) {
			t.Fatalf("expected SubmissionError, got %v", err)
		}
		if len(subErr.Problems) < 3 {
			t.Fatalf("expected hours, description and status problems, got %v", subErr.Problems)
		}
	})

	t.Run("rejects empty week", func(t *testing.T) {
		svc, mockTimesheet, _, _ := setupTimesheetMocks(t)

		mockTimesheet.EXPECT().ListByUserWeek(uint(2), monday).Return(nil, nil)

		_, err := svc.SubmitWeek(2, monday)
		if err == nil {
			t.Fatal("expected error, got nil")
		}
	})
}

func TestApprove(t *testing.T) {
	t.Run("manager approves direct report", func(t *testing.T) {
		svc, mockTimesheet, mockUser, mockAudit := setupTimesheetMocks(t)

		mockUser.EXPECT().GetByID(uint(1)).Return(manager, nil)
		mockTimesheet.EXPECT().ListByIDs([]uint{10}).Return([]models.TimesheetEntry{submittedEntry(10, 2, 8)}, nil)
		mockUser.EXPECT().GetByID(uint(2)).Return(managed, nil)
		mockTimesheet.EXPECT().SaveAll(gomock.Any()).Return(nil)
		mockAudit.EXPECT().Create(gomock.Any()).Return(nil)

		entry, err := svc.Approve(1, 10)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if entry.Status != models.EntryStatusApproved {
			t.Fatalf("expected APPROVED, got %s", entry.Status)
		}
		if entry.ApprovedBy == nil || *entry.ApprovedBy != 1 {
			t.Fatal("expected approved_by to be the manager")
		}
		if entry.IsAutoApproved {
			t.Fatal("manager approval must not be flagged auto-approved")
		}
	})

	t.Run("root-level self-approval sets the auto flag", func(t *testing.T) {
		svc, mockTimesheet, mockUser, mockAudit := setupTimesheetMocks(t)

		mockUser.EXPECT().GetByID(uint(3)).Return(rootUser, nil).Times(2)
		mockTimesheet.EXPECT().ListByIDs([]uint{20}).Return([]models.TimesheetEntry{submittedEntry(20, 3, 8)}, nil)
		mockTimesheet.EXPECT().SaveAll(gomock.Any()).Return(nil)
		mockAudit.EXPECT().Create(gomock.Any()).Return(nil)

		entry, err := svc.Approve(3, 20)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !entry.IsAutoApproved {
			t.Fatal("expected auto-approved flag for root-level self-approval")
		}
	})

	t.Run("managed user cannot self-approve", func(t *testing.T) {
		svc, mockTimesheet, mockUser, _ := setupTimesheetMocks(t)

		mockUser.EXPECT().GetByID(uint(2)).Return(managed, nil).Times(2)
		mockTimesheet.EXPECT().ListByIDs([]uint{30}).Return([]models.TimesheetEntry{submittedEntry(30, 2, 8)}, nil)

		_, err := svc.Approve(2, 30)
		if !errors.Is(err, services.ErrNotAuthorized) {
			t.Fatalf("expected ErrNotAuthorized, got %v", err)
		}
	})

	t.Run("unrelated manager is rejected", func(t *testing.T) {
		svc, mockTimesheet, mockUser, _ := setupTimesheetMocks(t)

		other := models.User{UID: 7, Role: models.UserRoleManager}
		mockUser.EXPECT().GetByID(uint(7)).Return(other, nil)
		mockTimesheet.EXPECT().ListByIDs([]uint{10}).Return([]models.TimesheetEntry{submittedEntry(10, 2, 8)}, nil)
		mockUser.EXPECT().GetByID(uint(2)).Return(managed, nil)

		_, err := svc.Approve(7, 10)
		if !errors.Is(err, services.ErrNotAuthorized) {
			t.Fatalf("expected ErrNotAuthorized, got %v", err)
		}
	})
}

func TestBulkApprove(t *testing.T) {
	t.Run("one bad entry fails the whole batch with no writes", func(t *testing.T) {
		svc, mockTimesheet, mockUser, _ := setupTimesheetMocks(t)

		mockUser.EXPECT().GetByID(uint(9)).Return(admin, nil)
		mockTimesheet.EXPECT().ListByIDs([]uint{1, 2, 3}).Return([]models.TimesheetEntry{
			submittedEntry(1, 2, 8),
			submittedEntry(2, 2, 8),
			draftEntry(3, 2, 8),
		}, nil)
		mockUser.EXPECT().GetByID(uint(2)).Return(managed, nil).MaxTimes(1)

		_, err := svc.BulkApprove(9, []uint{1, 2, 3})
		if !errors.Is(err, workflow.ErrInvalidTransition) {
			t.Fatalf("expected invalid transition, got %v", err)
		}
	})

	t.Run("missing ids fail the batch", func(t *testing.T) {
		svc, mockTimesheet, mockUser, _ := setupTimesheetMocks(t)

		mockUser.EXPECT().GetByID(uint(9)).Return(admin, nil)
		mockTimesheet.EXPECT().ListByIDs([]uint{1, 404}).Return([]models.TimesheetEntry{submittedEntry(1, 2, 8)}, nil)

		_, err := svc.BulkApprove(9, []uint{1, 404})
		if !errors.Is(err, services.ErrEntriesMissed) {
			t.Fatalf("expected ErrEntriesMissed, got %v", err)
		}
	})

	t.Run("admin approves a mixed-owner batch", func(t *testing.T) {
		svc, mockTimesheet, mockUser, mockAudit := setupTimesheetMocks(t)

		mockUser.EXPECT().GetByID(uint(9)).Return(admin, nil)
		mockTimesheet.EXPECT().ListByIDs([]uint{1, 2}).Return([]models.TimesheetEntry{
			submittedEntry(1, 2, 8),
			submittedEntry(2, 3, 8),
		}, nil)
		mockUser.EXPECT().GetByID(uint(2)).Return(managed, nil)
		mockUser.EXPECT().GetByID(uint(3)).Return(rootUser, nil)
		mockTimesheet.EXPECT().SaveAll(gomock.Any()).Return(nil)
		mockAudit.EXPECT().Create(gomock.Any()).Return(nil)

		entries, err := svc.BulkApprove(9, []uint{1, 2})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		for _, e := range entries {
			if e.Status != models.EntryStatusApproved {
				t.Fatalf("expected APPROVED, got %s", e.Status)
			}
		}
	})
}

func TestReject(t *testing.T) {
	t.Run("requires a reason", func(t *testing.T) {
		svc, _, _, _ := setupTimesheetMocks(t)

		_, err := svc.Reject(1, 10, "")
		if !errors.Is(err, workflow.ErrReasonRequired) {
			t.Fatalf("expected ErrReasonRequired, got %v", err)
		}
	})

	t.Run("single reject accepts a short reason", func(t *testing.T) {
		svc, mockTimesheet, mockUser, mockAudit := setupTimesheetMocks(t)

		mockUser.EXPECT().GetByID(uint(1)).Return(manager, nil)
		mockTimesheet.EXPECT().ListByIDs([]uint{10}).Return([]models.TimesheetEntry{submittedEntry(10, 2, 8)}, nil)
		mockUser.EXPECT().GetByID(uint(2)).Return(managed, nil)
		mockTimesheet.EXPECT().SaveAll(gomock.Any()).Return(nil)
		mockAudit.EXPECT().Create(gomock.Any()).Return(nil)

		entry, err := svc.Reject(1, 10, "too vague")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if entry.Status != models.EntryStatusRejected {
			t.Fatalf("expected REJECTED, got %s", entry.Status)
		}
		if entry.RejectionReason == nil || *entry.RejectionReason != "too vague" {
			t.Fatal("expected rejection reason to be stored")
		}
	})

	t.Run("bulk reject enforces the minimum reason length", func(t *testing.T) {
		svc, _, _, _ := setupTimesheetMocks(t)

		_, err := svc.BulkReject(1, []uint{10, 11}, "too short")
		if !errors.Is(err, workflow.ErrReasonTooShort) {
			t.Fatalf("expected ErrReasonTooShort, got %v", err)
		}
	})
}

func TestRevertToDraft(t *testing.T) {
	t.Run("clears decision stamps", func(t *testing.T) {
		svc, mockTimesheet, _, _ := setupTimesheetMocks(t)

		now := time.Now()
		entry := submittedEntry(10, 2, 8)
		entry.RejectedAt = &now

		mockTimesheet.EXPECT().GetByID(uint(10)).Return(entry, nil)
		mockTimesheet.EXPECT().Save(gomock.Any()).DoAndReturn(func(e *models.TimesheetEntry) error {
			if e.Status != models.EntryStatusDraft {
				t.Fatalf("expected DRAFT, got %s", e.Status)
			}
			if e.SubmittedAt != nil || e.RejectedAt != nil {
				t.Fatal("expected stamps cleared")
			}
			return nil
		})

		out, err := svc.RevertToDraft(2, 10)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Status != models.EntryStatusDraft {
			t.Fatalf("expected DRAFT, got %s", out.Status)
		}
	})

	t.Run("approved entries cannot revert", func(t *testing.T) {
		svc, mockTimesheet, _, _ := setupTimesheetMocks(t)

		entry := submittedEntry(10, 2, 8)
		entry.Status = models.EntryStatusApproved
		mockTimesheet.EXPECT().GetByID(uint(10)).Return(entry, nil)

		_, err := svc.RevertToDraft(2, 10)
		if !errors.Is(err, workflow.ErrInvalidTransition) {
			t.Fatalf("expected invalid transition, got %v", err)
		}
	})

	t.Run("only the owner can revert", func(t *testing.T) {
		svc, mockTimesheet, _, _ := setupTimesheetMocks(t)

		mockTimesheet.EXPECT().GetByID(uint(10)).Return(submittedEntry(10, 2, 8), nil)

		_, err := svc.RevertToDraft(5, 10)
		if !errors.Is(err, services.ErrNotOwner) {
			t.Fatalf("expected ErrNotOwner, got %v", err)
		}
	})
}

func TestCreateEntryWeekLock(t *testing.T) {
	t.Run("locked week blocks new entries", func(t *testing.T) {
		svc, mockTimesheet, _, _ := setupTimesheetMocks(t)

		mockTimesheet.EXPECT().ListByUserWeek(uint(2), monday).Return([]models.TimesheetEntry{submittedEntry(1, 2, 8)}, nil)

		_, err := svc.CreateEntry(2, dto.CreateTimesheetEntryInput{WorkDate: "2026-08-26", HoursWorked: 4, Description: "more work on reports"})
		if !errors.Is(err, services.ErrWeekLocked) {
			t.Fatalf("expected ErrWeekLocked, got %v", err)
		}
	})

	t.Run("rejected entry reopens the week", func(t *testing.T) {
		svc, mockTimesheet, _, _ := setupTimesheetMocks(t)

		rejected := submittedEntry(1, 2, 8)
		rejected.Status = models.EntryStatusRejected
		mockTimesheet.EXPECT().ListByUserWeek(uint(2), monday).Return([]models.TimesheetEntry{rejected, submittedEntry(2, 2, 8)}, nil)
		mockTimesheet.EXPECT().Create(gomock.Any()).Return(nil)

		_, err := svc.CreateEntry(2, dto.CreateTimesheetEntryInput{WorkDate: "2026-08-26", HoursWorked: 4, Description: "rework after rejection"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}
