package services_test

import (
	"errors"
	"testing"

	"github.com/clockwisehq/workforce-go/dto"
	"github.com/clockwisehq/workforce-go/models"
	"github.com/clockwisehq/workforce-go/repositories"
	"github.com/clockwisehq/workforce-go/repositories/mock_repositories"
	"github.com/clockwisehq/workforce-go/services"
	"github.com/clockwisehq/workforce-go/workflow"
	"github.com/golang/mock/gomock"
	"go.uber.org/zap"
)

func setupExpenseMocks(t *testing.T) (*services.ExpenseService,
	*mock_repositories.MockExpenseRepo,
	*mock_repositories.MockUserRepo,
	*mock_repositories.MockAuditRepo) {

	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	mockExpense := mock_repositories.NewMockExpenseRepo(ctrl)
	mockUser := mock_repositories.NewMockUserRepo(ctrl)
	mockAudit := mock_repositories.NewMockAuditRepo(ctrl)

	repos := &repositories.Repos{
		Expense: mockExpense,
		User:    mockUser,
		Audit:   mockAudit,
	}

	svc := services.NewExpenseService(repos, zap.NewNop(), nil, services.NewAuditService(repos))
	return svc, mockExpense, mockUser, mockAudit
}

func submittedClaim(id, userID uint) models.ExpenseClaim {
	return models.ExpenseClaim{
		ID:       id,
		UserID:   userID,
		Amount:   120.50,
		Currency: "USD",
		Category: "travel",
		Status:   models.ClaimStatusSubmitted,
	}
}

func TestCreateClaim(t *testing.T) {
	t.Run("assigns a claim number and defaults the currency", func(t *testing.T) {
		svc, mockExpense, _, _ := setupExpenseMocks(t)

		mockExpense.EXPECT().Create(gomock.Any()).DoAndReturn(func(c *models.ExpenseClaim) error {
			if len(c.ClaimNumber) != 12 || c.ClaimNumber[:4] != "EXP-" {
				t.Fatalf("unexpected claim number %q", c.ClaimNumber)
			}
			if c.Currency != "USD" {
				t.Fatalf("expected USD default, got %s", c.Currency)
			}
			if c.Status != models.ClaimStatusDraft {
				t.Fatalf("expected DRAFT, got %s", c.Status)
			}
			return nil
		})

		_, err := svc.CreateClaim(2, dto.CreateExpenseClaimInput{
			Amount:      49.90,
			Category:    "meals",
			ExpenseDate: "2026-08-26",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("rejects a non-positive amount", func(t *testing.T) {
		svc, _, _, _ := setupExpenseMocks(t)

		_, err := svc.CreateClaim(2, dto.CreateExpenseClaimInput{Amount: 0, Category: "meals", ExpenseDate: "2026-08-26"})
		if !errors.Is(err, services.ErrInvalidAmount) {
			t.Fatalf("expected ErrInvalidAmount, got %v", err)
		}
	})
}

func TestExpenseDecisions(t *testing.T) {
	t.Run("manager approves a report's claim", func(t *testing.T) {
		svc, mockExpense, mockUser, mockAudit := setupExpenseMocks(t)

		mockUser.EXPECT().GetByID(uint(1)).Return(manager, nil)
		mockExpense.EXPECT().GetByID(uint(10)).Return(submittedClaim(10, 2), nil)
		mockUser.EXPECT().GetByID(uint(2)).Return(managed, nil)
		mockExpense.EXPECT().Save(gomock.Any()).Return(nil)
		mockAudit.EXPECT().Create(gomock.Any()).Return(nil)

		claim, err := svc.Approve(1, 10)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if claim.Status != models.ClaimStatusApproved {
			t.Fatalf("expected APPROVED, got %s", claim.Status)
		}
	})

	t.Run("reject requires a reason", func(t *testing.T) {
		svc, _, _, _ := setupExpenseMocks(t)

		_, err := svc.Reject(1, 10, "")
		if !errors.Is(err, workflow.ErrReasonRequired) {
			t.Fatalf("expected ErrReasonRequired, got %v", err)
		}
	})

	t.Run("managed user cannot approve their own claim", func(t *testing.T) {
		svc, mockExpense, mockUser, _ := setupExpenseMocks(t)

		mockUser.EXPECT().GetByID(uint(2)).Return(managed, nil).Times(2)
		mockExpense.EXPECT().GetByID(uint(10)).Return(submittedClaim(10, 2), nil)

		_, err := svc.Approve(2, 10)
		if !errors.Is(err, services.ErrNotAuthorized) {
			t.Fatalf("expected ErrNotAuthorized, got %v", err)
		}
	})
}

func TestMarkPaid(t *testing.T) {
	t.Run("approved claim becomes paid", func(t *testing.T) {
		svc, mockExpense, _, mockAudit := setupExpenseMocks(t)

		claim := submittedClaim(10, 2)
		claim.Status = models.ClaimStatusApproved
		mockExpense.EXPECT().GetByID(uint(10)).Return(claim, nil)
		mockExpense.EXPECT().Save(gomock.Any()).Return(nil)
		mockAudit.EXPECT().Create(gomock.Any()).Return(nil)

		out, err := svc.MarkPaid(9, 10)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Status != models.ClaimStatusPaid {
			t.Fatalf("expected PAID, got %s", out.Status)
		}
		if out.PaidAt == nil {
			t.Fatal("expected paid_at stamp")
		}
	})

	t.Run("submitted claim cannot be paid", func(t *testing.T) {
		svc, mockExpense, _, _ := setupExpenseMocks(t)

		mockExpense.EXPECT().GetByID(uint(10)).Return(submittedClaim(10, 2), nil)

		_, err := svc.MarkPaid(9, 10)
		if !errors.Is(err, workflow.ErrInvalidTransition) {
			t.Fatalf("expected invalid transition, got %v", err)
		}
	})
}

func TestAttachReceipt(t *testing.T) {
	t.Run("appends to existing receipts", func(t *testing.T) {
		svc, mockExpense, _, _ := setupExpenseMocks(t)

		claim := submittedClaim(10, 2)
		claim.Status = models.ClaimStatusDraft
		claim.ReceiptURLs = []byte(`["claims/10/a.png"]`)
		mockExpense.EXPECT().GetByID(uint(10)).Return(claim, nil)
		mockExpense.EXPECT().Save(gomock.Any()).DoAndReturn(func(c *models.ExpenseClaim) error {
			want := `["claims/10/a.png","claims/10/b.png"]`
			if string(c.ReceiptURLs) != want {
				t.Fatalf("expected %s, got %s", want, c.ReceiptURLs)
			}
			return nil
		})

		_, err := svc.AttachReceipt(2, 10, "claims/10/b.png")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("submitted claim is read-only", func(t *testing.T) {
		svc, mockExpense, _, _ := setupExpenseMocks(t)

		mockExpense.EXPECT().GetByID(uint(10)).Return(submittedClaim(10, 2), nil)

		_, err := svc.AttachReceipt(2, 10, "claims/10/c.png")
		if !errors.Is(err, services.ErrNotEditable) {
			t.Fatalf("expected ErrNotEditable, got %v", err)
		}
	})
}
