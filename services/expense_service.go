package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/clockwisehq/workforce-go/config"
	"github.com/clockwisehq/workforce-go/dto"
	"github.com/clockwisehq/workforce-go/events"
	"github.com/clockwisehq/workforce-go/models"
	"github.com/clockwisehq/workforce-go/repositories"
	"github.com/clockwisehq/workforce-go/workflow"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

var ErrInvalidAmount = errors.New("amount must be greater than zero")

type ExpenseService struct {
	Repos *repositories.Repos
	Log   *zap.Logger
	Hub   *events.Hub
	Audit *AuditService
}

func NewExpenseService(repos *repositories.Repos, logger *zap.Logger, hub *events.Hub, audit *AuditService) *ExpenseService {
	return &ExpenseService{Repos: repos, Log: logger, Hub: hub, Audit: audit}
}

func newClaimNumber() string {
	return "EXP-" + strings.ToUpper(uuid.NewString()[:8])
}

func (s *ExpenseService) CreateClaim(userID uint, input dto.CreateExpenseClaimInput) (models.ExpenseClaim, error) {
	if input.Amount <= 0 {
		return models.ExpenseClaim{}, ErrInvalidAmount
	}
	expenseDate, err := time.Parse("2006-01-02", input.ExpenseDate)
	if err != nil {
		return models.ExpenseClaim{}, fmt.Errorf("invalid expenseDate: %w", err)
	}

	currency := input.Currency
	if currency == "" {
		currency = "USD"
	}

	claim := models.ExpenseClaim{
		ClaimNumber: newClaimNumber(),
		UserID:      userID,
		Amount:      input.Amount,
		Currency:    currency,
		Category:    input.Category,
		Description: input.Description,
		ExpenseDate: expenseDate,
		Status:      models.ClaimStatusDraft,
	}
	if err := s.Repos.Expense.Create(&claim); err != nil {
		return models.ExpenseClaim{}, err
	}
	return claim, nil
}

func (s *ExpenseService) UpdateClaim(userID, claimID uint, input dto.UpdateExpenseClaimInput) (models.ExpenseClaim, error) {
	claim, err := s.Repos.Expense.GetByID(claimID)
	if err != nil {
		return models.ExpenseClaim{}, err
	}
	if claim.UserID != userID {
		return models.ExpenseClaim{}, ErrNotOwner
	}
	if !claim.Editable() {
		return models.ExpenseClaim{}, ErrNotEditable
	}

	if input.Amount != nil {
		if *input.Amount <= 0 {
			return models.ExpenseClaim{}, ErrInvalidAmount
		}
		claim.Amount = *input.Amount
	}
	if input.Currency != nil {
		claim.Currency = *input.Currency
	}
	if input.Category != nil {
		claim.Category = *input.Category
	}
	if input.Description != nil {
		claim.Description = *input.Description
	}
	if input.ExpenseDate != nil {
		expenseDate, err := time.Parse("2006-01-02", *input.ExpenseDate)
		if err != nil {
			return models.ExpenseClaim{}, fmt.Errorf("invalid expenseDate: %w", err)
		}
		claim.ExpenseDate = expenseDate
	}

	if err := s.Repos.Expense.Save(&claim); err != nil {
		return models.ExpenseClaim{}, err
	}
	return claim, nil
}

func (s *ExpenseService) DeleteClaim(userID, claimID uint) error {
	claim, err := s.Repos.Expense.GetByID(claimID)
	if err != nil {
		return err
	}
	if claim.UserID != userID {
		return ErrNotOwner
	}
	if !claim.Editable() {
		return ErrNotEditable
	}
	return s.Repos.Expense.Delete(claimID)
}

func (s *ExpenseService) ListByUser(userID uint) ([]models.ExpenseClaim, error) {
	return s.Repos.Expense.ListByUser(userID)
}

func (s *ExpenseService) ListPending() ([]models.ExpenseClaim, error) {
	return s.Repos.Expense.ListByStatus(models.ClaimStatusSubmitted)
}

// AttachReceipt appends an uploaded receipt URL to the claim.
func (s *ExpenseService) AttachReceipt(userID, claimID uint, url string) (models.ExpenseClaim, error) {
	claim, err := s.Repos.Expense.GetByID(claimID)
	if err != nil {
		return models.ExpenseClaim{}, err
	}
	if claim.UserID != userID {
		return models.ExpenseClaim{}, ErrNotOwner
	}
	if !claim.Editable() {
		return models.ExpenseClaim{}, ErrNotEditable
	}

	var urls []string
	if len(claim.ReceiptURLs) > 0 {
		if err := json.Unmarshal(claim.ReceiptURLs, &urls); err != nil {
			return models.ExpenseClaim{}, err
		}
	}
	urls = append(urls, url)
	raw, err := json.Marshal(urls)
	if err != nil {
		return models.ExpenseClaim{}, err
	}
	claim.ReceiptURLs = raw

	if err := s.Repos.Expense.Save(&claim); err != nil {
		return models.ExpenseClaim{}, err
	}
	return claim, nil
}

func (s *ExpenseService) Submit(userID, claimID uint) (models.ExpenseClaim, error) {
	claim, err := s.Repos.Expense.GetByID(claimID)
	if err != nil {
		return models.ExpenseClaim{}, err
	}
	if claim.UserID != userID {
		return models.ExpenseClaim{}, ErrNotOwner
	}
	if err := workflow.ExpenseTransitions.Ensure(string(claim.Status), string(models.ClaimStatusSubmitted)); err != nil {
		return models.ExpenseClaim{}, err
	}

	now := time.Now()
	claim.Status = models.ClaimStatusSubmitted
	claim.SubmittedAt = &now

	if err := s.Repos.Expense.Save(&claim); err != nil {
		return models.ExpenseClaim{}, err
	}
	return claim, nil
}

func (s *ExpenseService) Approve(approverID, claimID uint) (models.ExpenseClaim, error) {
	return s.decideClaim(approverID, claimID, models.ClaimStatusApproved, "")
}

func (s *ExpenseService) Reject(approverID, claimID uint, reason string) (models.ExpenseClaim, error) {
	if err := workflow.ValidateReason(reason, false, config.Policy); err != nil {
		return models.ExpenseClaim{}, err
	}
	return s.decideClaim(approverID, claimID, models.ClaimStatusRejected, reason)
}

// MarkPaid is the admin-only terminal transition for an approved claim.
func (s *ExpenseService) MarkPaid(actorID, claimID uint) (models.ExpenseClaim, error) {
	claim, err := s.Repos.Expense.GetByID(claimID)
	if err != nil {
		return models.ExpenseClaim{}, err
	}
	if err := workflow.ExpenseTransitions.Ensure(string(claim.Status), string(models.ClaimStatusPaid)); err != nil {
		return models.ExpenseClaim{}, err
	}

	now := time.Now()
	claim.Status = models.ClaimStatusPaid
	claim.PaidAt = &now

	if err := s.Repos.Expense.Save(&claim); err != nil {
		return models.ExpenseClaim{}, err
	}
	s.recordAudit(actorID, "expense.pay", claim.ID)
	return claim, nil
}

func (s *ExpenseService) decideClaim(approverID, claimID uint, target models.ClaimStatus, reason string) (models.ExpenseClaim, error) {
	approver, err := s.Repos.User.GetByID(approverID)
	if err != nil {
		return models.ExpenseClaim{}, err
	}
	claim, err := s.Repos.Expense.GetByID(claimID)
	if err != nil {
		return models.ExpenseClaim{}, err
	}
	if err := workflow.ExpenseTransitions.Ensure(string(claim.Status), string(target)); err != nil {
		return models.ExpenseClaim{}, err
	}

	owner, err := s.Repos.User.GetByID(claim.UserID)
	if err != nil {
		return models.ExpenseClaim{}, err
	}

	selfApproval := claim.UserID == approverID
	if !workflow.CanDecide(approver, owner, selfApproval) {
		return models.ExpenseClaim{}, ErrNotAuthorized
	}

	now := time.Now()
	claim.Status = target
	switch target {
	case models.ClaimStatusApproved:
		claim.ApprovedAt = &now
		claim.ApprovedBy = &approver.UID
	case models.ClaimStatusRejected:
		r := reason
		claim.RejectedAt = &now
		claim.RejectedBy = &approver.UID
		claim.RejectionReason = &r
	}

	if err := s.Repos.Expense.Save(&claim); err != nil {
		return models.ExpenseClaim{}, err
	}

	action := "expense.approve"
	if target == models.ClaimStatusRejected {
		action = "expense.reject"
	}
	s.recordAudit(approverID, action, claim.ID)
	s.Hub.Broadcast(events.ApprovalEvent{
		EntityType: "expense",
		EntityIDs:  []uint{claim.ID},
		Action:     string(target),
		ActorID:    approverID,
	})

	return claim, nil
}

func (s *ExpenseService) recordAudit(actorID uint, action string, claimID uint) {
	if err := s.Audit.Record(actorID, action, "expense_claim", claimID, ""); err != nil {
		s.Log.Warn("audit record failed", zap.String("action", action), zap.Error(err))
	}
}
