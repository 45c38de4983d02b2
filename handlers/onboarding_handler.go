package handlers

import (
	"net/http"

	"github.com/clockwisehq/workforce-go/dto"
	"github.com/clockwisehq/workforce-go/services"
	"github.com/clockwisehq/workforce-go/utils"
	"github.com/gin-gonic/gin"
)

type OnboardingHandler struct {
	Onboarding *services.OnboardingService
}

func NewOnboardingHandler(onboarding *services.OnboardingService) *OnboardingHandler {
	return &OnboardingHandler{Onboarding: onboarding}
}

type completeInviteInput struct {
	Password string  `json:"password" binding:"required,min=6"`
	FullName *string `json:"fullName"`
}

// Invite creates a pending user and a tokenized onboarding invite.
// @Summary Create onboarding invite
// @Tags onboarding
// @Accept json
// @Produce json
// @Param input body dto.CreateInviteInput true "Invitee fields"
// @Success 201 {object} map[string]interface{} "Invite with token"
// @Failure 400 {object} map[string]interface{} "Username taken"
// @Router /admin/onboarding/invites [post]
func (h *OnboardingHandler) Invite(c *gin.Context) {
	inviterID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		abortBadRequest(c, err)
		return
	}

	var input dto.CreateInviteInput
	if err := c.ShouldBindJSON(&input); err != nil {
		abortBadRequest(c, err)
		return
	}

	invite, err := h.Onboarding.Invite(inviterID, input)
	if err != nil {
		abortServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "invite": invite, "token": invite.Token})
}

// List returns all onboarding invites.
// @Summary List invites
// @Tags onboarding
// @Produce json
// @Success 200 {object} map[string]interface{} "Invites"
// @Router /admin/onboarding/invites [get]
func (h *OnboardingHandler) List(c *gin.Context) {
	invites, err := h.Onboarding.List()
	if err != nil {
		abortServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "invites": invites})
}

// Start begins onboarding; the invite token is the credential, no auth.
// @Summary Start onboarding
// @Tags onboarding
// @Produce json
// @Param token path string true "Invite token"
// @Success 200 {object} map[string]interface{} "Invite in progress"
// @Failure 409 {object} map[string]interface{} "Invite expired"
// @Router /onboarding/{token}/start [post]
func (h *OnboardingHandler) Start(c *gin.Context) {
	invite, err := h.Onboarding.Start(c.Param("token"))
	if err != nil {
		abortServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "invite": invite})
}

// Submit completes the invitee's details for review.
// @Summary Submit onboarding details
// @Tags onboarding
// @Accept json
// @Produce json
// @Param token path string true "Invite token"
// @Param input body completeInviteInput true "Password and full name"
// @Success 200 {object} map[string]interface{} "Submitted invite"
// @Failure 409 {object} map[string]interface{} "Invalid transition"
// @Router /onboarding/{token}/submit [post]
func (h *OnboardingHandler) Submit(c *gin.Context) {
	var input completeInviteInput
	if err := c.ShouldBindJSON(&input); err != nil {
		abortBadRequest(c, err)
		return
	}

	invite, err := h.Onboarding.Submit(c.Param("token"), input.Password, input.FullName)
	if err != nil {
		abortServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "invite": invite})
}

// RequestChanges sends a submitted invite back to the invitee with a reason.
// @Summary Request onboarding changes
// @Tags onboarding
// @Accept json
// @Produce json
// @Param id path int true "Invite ID"
// @Param input body dto.RequestChangesInput true "What needs changing"
// @Success 200 {object} map[string]interface{} "Invite awaiting changes"
// @Router /admin/onboarding/invites/{id}/request-changes [post]
func (h *OnboardingHandler) RequestChanges(c *gin.Context) {
	reviewerID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		abortBadRequest(c, err)
		return
	}
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		abortBadRequest(c, err)
		return
	}

	var input dto.RequestChangesInput
	if err := c.ShouldBindJSON(&input); err != nil {
		abortBadRequest(c, err)
		return
	}

	invite, err := h.Onboarding.RequestChanges(reviewerID, id, input.Reason)
	if err != nil {
		abortServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "invite": invite})
}

// Approve accepts a submitted invite and activates the user account.
// @Summary Approve onboarding
// @Tags onboarding
// @Produce json
// @Param id path int true "Invite ID"
// @Success 200 {object} map[string]interface{} "Approved invite"
// @Failure 409 {object} map[string]interface{} "Invalid transition"
// @Router /admin/onboarding/invites/{id}/approve [post]
func (h *OnboardingHandler) Approve(c *gin.Context) {
	reviewerID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		abortBadRequest(c, err)
		return
	}
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		abortBadRequest(c, err)
		return
	}

	invite, err := h.Onboarding.Approve(reviewerID, id)
	if err != nil {
		abortServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "invite": invite})
}
