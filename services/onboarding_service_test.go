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
	"gorm.io/gorm"
)

func setupOnboardingMocks(t *testing.T) (*services.OnboardingService,
	*mock_repositories.MockOnboardingRepo,
	*mock_repositories.MockUserRepo,
	*mock_repositories.MockAuditRepo) {

	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	mockOnboarding := mock_repositories.NewMockOnboardingRepo(ctrl)
	mockUser := mock_repositories.NewMockUserRepo(ctrl)
	mockAudit := mock_repositories.NewMockAuditRepo(ctrl)

	repos := &repositories.Repos{
		Onboarding: mockOnboarding,
		User:       mockUser,
		Audit:      mockAudit,
	}

	svc := services.NewOnboardingService(repos, services.NewAuditService(repos))
	return svc, mockOnboarding, mockUser, mockAudit
}

func TestInvite(t *testing.T) {
	t.Run("creates a pending user with a tokened invite", func(t *testing.T) {
		svc, mockOnboarding, mockUser, mockAudit := setupOnboardingMocks(t)

		mockUser.EXPECT().GetByUsername("newhire").Return(models.User{}, gorm.ErrRecordNotFound)
		mockUser.EXPECT().Create(gomock.Any()).DoAndReturn(func(u *models.User) error {
			if u.Status != models.UserStatusPending {
				t.Fatalf("expected pending user, got %s", u.Status)
			}
			u.UID = 42
			return nil
		})
		mockOnboarding.EXPECT().Create(gomock.Any()).DoAndReturn(func(inv *models.OnboardingInvite) error {
			if inv.UserID != 42 {
				t.Fatalf("expected invite bound to the new user, got %d", inv.UserID)
			}
			if inv.Token == "" {
				t.Fatal("expected a token")
			}
			if !inv.ExpiresAt.After(time.Now()) {
				t.Fatal("expected a future expiry")
			}
			return nil
		})
		mockAudit.EXPECT().Create(gomock.Any()).Return(nil)

		_, err := svc.Invite(1, dto.CreateInviteInput{Email: "new@corp.test", Username: "newhire"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("taken username is refused", func(t *testing.T) {
		svc, _, mockUser, _ := setupOnboardingMocks(t)

		mockUser.EXPECT().GetByUsername("emp").Return(managed, nil)

		_, err := svc.Invite(1, dto.CreateInviteInput{Email: "emp@corp.test", Username: "emp"})
		if !errors.Is(err, services.ErrUsernameTaken) {
			t.Fatalf("expected ErrUsernameTaken, got %v", err)
		}
	})
}

func TestInviteLifecycle(t *testing.T) {
	future := time.Now().AddDate(0, 0, 7)

	t.Run("expired invite cannot start", func(t *testing.T) {
		svc, mockOnboarding, _, _ := setupOnboardingMocks(t)

		mockOnboarding.EXPECT().GetByToken("tok").Return(models.OnboardingInvite{
			Status:    models.InviteStatusPending,
			ExpiresAt: time.Now().AddDate(0, 0, -1),
		}, nil)

		_, err := svc.Start("tok")
		if !errors.Is(err, services.ErrInviteExpired) {
			t.Fatalf("expected ErrInviteExpired, got %v", err)
		}
	})

	t.Run("approve activates the user", func(t *testing.T) {
		svc, mockOnboarding, mockUser, mockAudit := setupOnboardingMocks(t)

		mockOnboarding.EXPECT().GetByID(uint(7)).Return(models.OnboardingInvite{
			ID:        7,
			UserID:    42,
			Status:    models.InviteStatusSubmitted,
			ExpiresAt: future,
		}, nil)
		mockUser.EXPECT().GetByID(uint(42)).Return(models.User{UID: 42, Status: models.UserStatusPending}, nil)
		mockUser.EXPECT().Save(gomock.Any()).DoAndReturn(func(u *models.User) error {
			if u.Status != models.UserStatusActive {
				t.Fatalf("expected active user, got %s", u.Status)
			}
			return nil
		})
		mockOnboarding.EXPECT().Save(gomock.Any()).DoAndReturn(func(inv *models.OnboardingInvite) error {
			if inv.Status != models.InviteStatusApproved {
				t.Fatalf("expected APPROVED, got %s", inv.Status)
			}
			if inv.ApprovedBy == nil || *inv.ApprovedBy != 1 {
				t.Fatal("expected approver stamp")
			}
			return nil
		})
		mockAudit.EXPECT().Create(gomock.Any()).Return(nil)

		_, err := svc.Approve(1, 7)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("pending invite cannot be approved", func(t *testing.T) {
		svc, mockOnboarding, _, _ := setupOnboardingMocks(t)

		mockOnboarding.EXPECT().GetByID(uint(7)).Return(models.OnboardingInvite{
			ID:        7,
			Status:    models.InviteStatusPending,
			ExpiresAt: future,
		}, nil)

		_, err := svc.Approve(1, 7)
		if !errors.Is(err, workflow.ErrInvalidTransition) {
			t.Fatalf("expected invalid transition, got %v", err)
		}
	})

	t.Run("changes requested reopens submission", func(t *testing.T) {
		svc, mockOnboarding, _, mockAudit := setupOnboardingMocks(t)

		mockOnboarding.EXPECT().GetByID(uint(7)).Return(models.OnboardingInvite{
			ID:        7,
			Status:    models.InviteStatusSubmitted,
			ExpiresAt: future,
		}, nil)
		mockOnboarding.EXPECT().Save(gomock.Any()).DoAndReturn(func(inv *models.OnboardingInvite) error {
			if inv.Status != models.InviteStatusChangesRequested {
				t.Fatalf("expected CHANGES_REQUESTED, got %s", inv.Status)
			}
			if inv.ChangeRequest == nil || *inv.ChangeRequest == "" {
				t.Fatal("expected the change request recorded")
			}
			return nil
		})
		mockAudit.EXPECT().Create(gomock.Any()).Return(nil)

		_, err := svc.RequestChanges(1, 7, "missing emergency contact")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}
