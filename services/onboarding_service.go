package services

import (
	"errors"
	"time"

	"github.com/clockwisehq/workforce-go/config"
	"github.com/clockwisehq/workforce-go/dto"
	"github.com/clockwisehq/workforce-go/models"
	"github.com/clockwisehq/workforce-go/repositories"
	"github.com/clockwisehq/workforce-go/workflow"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var ErrInviteExpired = errors.New("invite has expired")

type OnboardingService struct {
	Repos *repositories.Repos
	Audit *AuditService
}

func NewOnboardingService(repos *repositories.Repos, audit *AuditService) *OnboardingService {
	return &OnboardingService{Repos: repos, Audit: audit}
}

// Invite creates a pending user plus a tokened invite for them. The user
// cannot log in until the invite is approved.
func (s *OnboardingService) Invite(inviterID uint, input dto.CreateInviteInput) (models.OnboardingInvite, error) {
	if _, err := s.Repos.User.GetByUsername(input.Username); err == nil {
		return models.OnboardingInvite{}, ErrUsernameTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return models.OnboardingInvite{}, err
	}

	role := models.UserRoleEmployee
	if input.Role == string(models.UserRoleManager) {
		role = models.UserRoleManager
	}

	// placeholder credential; the invitee sets a real one when completing
	placeholder, err := bcrypt.GenerateFromPassword([]byte(uuid.NewString()), bcrypt.DefaultCost)
	if err != nil {
		return models.OnboardingInvite{}, err
	}

	email := input.Email
	fullName := input.FullName
	user := models.User{
		Username:  input.Username,
		Password:  string(placeholder),
		Email:     &email,
		FullName:  &fullName,
		Role:      role,
		Status:    models.UserStatusPending,
		ManagerID: &inviterID,
	}
	if err := s.Repos.User.Create(&user); err != nil {
		return models.OnboardingInvite{}, err
	}

	invite := models.OnboardingInvite{
		UserID:    user.UID,
		Email:     input.Email,
		Token:     uuid.NewString(),
		Status:    models.InviteStatusPending,
		InvitedBy: inviterID,
		ExpiresAt: time.Now().AddDate(0, 0, config.Policy.InviteExpiryDays),
	}
	if err := s.Repos.Onboarding.Create(&invite); err != nil {
		return models.OnboardingInvite{}, err
	}

	_ = s.Audit.Record(inviterID, "onboarding.invite", "onboarding_invite", invite.ID, input.Email)
	return invite, nil
}

// Start is the invitee opening their invite link for the first time.
func (s *OnboardingService) Start(token string) (models.OnboardingInvite, error) {
	invite, err := s.Repos.Onboarding.GetByToken(token)
	if err != nil {
		return models.OnboardingInvite{}, err
	}
	if time.Now().After(invite.ExpiresAt) {
		return models.OnboardingInvite{}, ErrInviteExpired
	}
	if err := workflow.OnboardingTransitions.Ensure(string(invite.Status), string(models.InviteStatusInProgress)); err != nil {
		return models.OnboardingInvite{}, err
	}

	invite.Status = models.InviteStatusInProgress
	if err := s.Repos.Onboarding.Save(&invite); err != nil {
		return models.OnboardingInvite{}, err
	}
	return invite, nil
}

// Submit records the invitee's completed profile and hands the invite to the
// inviter for review. A CHANGES_REQUESTED invite can be resubmitted.
func (s *OnboardingService) Submit(token, password string, fullName *string) (models.OnboardingInvite, error) {
	invite, err := s.Repos.Onboarding.GetByToken(token)
	if err != nil {
		return models.OnboardingInvite{}, err
	}
	if time.Now().After(invite.ExpiresAt) {
		return models.OnboardingInvite{}, ErrInviteExpired
	}
	if err := workflow.OnboardingTransitions.Ensure(string(invite.Status), string(models.InviteStatusSubmitted)); err != nil {
		return models.OnboardingInvite{}, err
	}

	user, err := s.Repos.User.GetByID(invite.UserID)
	if err != nil {
		return models.OnboardingInvite{}, err
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return models.OnboardingInvite{}, err
	}
	user.Password = string(hashed)
	if fullName != nil {
		user.FullName = fullName
	}
	if err := s.Repos.User.Save(&user); err != nil {
		return models.OnboardingInvite{}, err
	}

	now := time.Now()
	invite.Status = models.InviteStatusSubmitted
	invite.SubmittedAt = &now
	invite.ChangeRequest = nil
	if err := s.Repos.Onboarding.Save(&invite); err != nil {
		return models.OnboardingInvite{}, err
	}
	return invite, nil
}

func (s *OnboardingService) RequestChanges(reviewerID, inviteID uint, reason string) (models.OnboardingInvite, error) {
	invite, err := s.Repos.Onboarding.GetByID(inviteID)
	if err != nil {
		return models.OnboardingInvite{}, err
	}
	if err := workflow.OnboardingTransitions.Ensure(string(invite.Status), string(models.InviteStatusChangesRequested)); err != nil {
		return models.OnboardingInvite{}, err
	}

	invite.Status = models.InviteStatusChangesRequested
	invite.ChangeRequest = &reason
	if err := s.Repos.Onboarding.Save(&invite); err != nil {
		return models.OnboardingInvite{}, err
	}
	_ = s.Audit.Record(reviewerID, "onboarding.request_changes", "onboarding_invite", invite.ID, reason)
	return invite, nil
}

// Approve finalizes the invite and activates the user account.
func (s *OnboardingService) Approve(reviewerID, inviteID uint) (models.OnboardingInvite, error) {
	invite, err := s.Repos.Onboarding.GetByID(inviteID)
	if err != nil {
		return models.OnboardingInvite{}, err
	}
	if err := workflow.OnboardingTransitions.Ensure(string(invite.Status), string(models.InviteStatusApproved)); err != nil {
		return models.OnboardingInvite{}, err
	}

	user, err := s.Repos.User.GetByID(invite.UserID)
	if err != nil {
		return models.OnboardingInvite{}, err
	}
	user.Status = models.UserStatusActive
	if err := s.Repos.User.Save(&user); err != nil {
		return models.OnboardingInvite{}, err
	}

	now := time.Now()
	invite.Status = models.InviteStatusApproved
	invite.ApprovedAt = &now
	invite.ApprovedBy = &reviewerID
	if err := s.Repos.Onboarding.Save(&invite); err != nil {
		return models.OnboardingInvite{}, err
	}
	_ = s.Audit.Record(reviewerID, "onboarding.approve", "onboarding_invite", invite.ID, "")
	return invite, nil
}

func (s *OnboardingService) List() ([]models.OnboardingInvite, error) {
	return s.Repos.Onboarding.List()
}
