package handlers

import (
	"net/http"

	"github.com/clockwisehq/workforce-go/dto"
	"github.com/clockwisehq/workforce-go/response"
	"github.com/clockwisehq/workforce-go/services"
	"github.com/clockwisehq/workforce-go/storage"
	"github.com/clockwisehq/workforce-go/utils"
	"github.com/gin-gonic/gin"
)

type ExpenseHandler struct {
	Expenses *services.ExpenseService
}

func NewExpenseHandler(expenses *services.ExpenseService) *ExpenseHandler {
	return &ExpenseHandler{Expenses: expenses}
}

// Create opens a DRAFT expense claim with a generated claim number.
// @Summary Create expense claim
// @Tags expenses
// @Accept json
// @Produce json
// @Param input body dto.CreateExpenseClaimInput true "Claim fields"
// @Success 201 {object} map[string]interface{} "Created claim"
// @Failure 400 {object} map[string]interface{} "Bad request"
// @Router /expenses [post]
func (h *ExpenseHandler) Create(c *gin.Context) {
	userID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		abortBadRequest(c, err)
		return
	}

	var input dto.CreateExpenseClaimInput
	if err := c.ShouldBindJSON(&input); err != nil {
		abortBadRequest(c, err)
		return
	}

	claim, err := h.Expenses.CreateClaim(userID, input)
	if err != nil {
		abortServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "claim": claim})
}

// Update edits an owned DRAFT or REJECTED claim.
// @Summary Update expense claim
// @Tags expenses
// @Accept json
// @Produce json
// @Param id path int true "Claim ID"
// @Param input body dto.UpdateExpenseClaimInput true "Fields to change"
// @Success 200 {object} map[string]interface{} "Updated claim"
// @Failure 409 {object} map[string]interface{} "Claim not editable"
// @Router /expenses/{id} [put]
func (h *ExpenseHandler) Update(c *gin.Context) {
	userID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		abortBadRequest(c, err)
		return
	}
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		abortBadRequest(c, err)
		return
	}

	var input dto.UpdateExpenseClaimInput
	if err := c.ShouldBindJSON(&input); err != nil {
		abortBadRequest(c, err)
		return
	}

	claim, err := h.Expenses.UpdateClaim(userID, id, input)
	if err != nil {
		abortServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "claim": claim})
}

// Delete removes an owned DRAFT or REJECTED claim.
// @Summary Delete expense claim
// @Tags expenses
// @Produce json
// @Param id path int true "Claim ID"
// @Success 200 {object} map[string]interface{} "Deleted"
// @Failure 409 {object} map[string]interface{} "Claim not editable"
// @Router /expenses/{id} [delete]
func (h *ExpenseHandler) Delete(c *gin.Context) {
	userID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		abortBadRequest(c, err)
		return
	}
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		abortBadRequest(c, err)
		return
	}

	if err := h.Expenses.DeleteClaim(userID, id); err != nil {
		abortServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Msg("claim deleted"))
}

// List returns the caller's expense claims.
// @Summary List own claims
// @Tags expenses
// @Produce json
// @Success 200 {object} map[string]interface{} "Claims"
// @Router /expenses [get]
func (h *ExpenseHandler) List(c *gin.Context) {
	userID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		abortBadRequest(c, err)
		return
	}

	claims, err := h.Expenses.ListByUser(userID)
	if err != nil {
		abortServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "claims": claims})
}

// Submit moves an owned DRAFT claim to SUBMITTED.
// @Summary Submit expense claim
// @Tags expenses
// @Produce json
// @Param id path int true "Claim ID"
// @Success 200 {object} map[string]interface{} "Submitted claim"
// @Failure 409 {object} map[string]interface{} "Invalid transition"
// @Router /expenses/{id}/submit [post]
func (h *ExpenseHandler) Submit(c *gin.Context) {
	userID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		abortBadRequest(c, err)
		return
	}
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		abortBadRequest(c, err)
		return
	}

	claim, err := h.Expenses.Submit(userID, id)
	if err != nil {
		abortServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "claim": claim})
}

// UploadReceipt stores a receipt file and attaches its URL to the claim.
// @Summary Upload receipt
// @Tags expenses
// @Accept multipart/form-data
// @Produce json
// @Param id path int true "Claim ID"
// @Param receipt formData file true "Receipt file"
// @Success 200 {object} map[string]interface{} "Claim with receipt URL"
// @Failure 500 {object} map[string]interface{} "Upload failed"
// @Router /expenses/{id}/receipt [post]
func (h *ExpenseHandler) UploadReceipt(c *gin.Context) {
	userID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		abortBadRequest(c, err)
		return
	}
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		abortBadRequest(c, err)
		return
	}

	file, err := c.FormFile("receipt")
	if err != nil {
		abortBadRequest(c, err)
		return
	}
	src, err := file.Open()
	if err != nil {
		abortBadRequest(c, err)
		return
	}
	defer src.Close()

	url, err := storage.UploadReceipt(c.Request.Context(), id, file.Filename, src, file.Size, file.Header.Get("Content-Type"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.Err("receipt upload failed: "+err.Error()))
		return
	}

	claim, err := h.Expenses.AttachReceipt(userID, id, url)
	if err != nil {
		abortServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "claim": claim})
}

// ListPending returns every SUBMITTED claim awaiting a decision.
// @Summary List pending claims
// @Tags admin-expenses
// @Produce json
// @Success 200 {object} map[string]interface{} "Pending claims"
// @Router /admin/expenses/pending [get]
func (h *ExpenseHandler) ListPending(c *gin.Context) {
	claims, err := h.Expenses.ListPending()
	if err != nil {
		abortServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "claims": claims})
}

// Approve moves one SUBMITTED claim to APPROVED.
// @Summary Approve claim
// @Tags admin-expenses
// @Produce json
// @Param id path int true "Claim ID"
// @Success 200 {object} map[string]interface{} "Approved claim"
// @Failure 403 {object} map[string]interface{} "No authority over this claim"
// @Router /admin/expenses/{id}/approve [post]
func (h *ExpenseHandler) Approve(c *gin.Context) {
	approverID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		abortBadRequest(c, err)
		return
	}
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		abortBadRequest(c, err)
		return
	}

	claim, err := h.Expenses.Approve(approverID, id)
	if err != nil {
		abortServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "claim": claim})
}

// Reject moves one SUBMITTED claim to REJECTED with a reason.
// @Summary Reject claim
// @Tags admin-expenses
// @Accept json
// @Produce json
// @Param id path int true "Claim ID"
// @Param input body dto.RejectInput true "Rejection reason"
// @Success 200 {object} map[string]interface{} "Rejected claim"
// @Failure 400 {object} map[string]interface{} "Missing reason"
// @Router /admin/expenses/{id}/reject [post]
func (h *ExpenseHandler) Reject(c *gin.Context) {
	approverID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		abortBadRequest(c, err)
		return
	}
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		abortBadRequest(c, err)
		return
	}

	var input dto.RejectInput
	if err := c.ShouldBindJSON(&input); err != nil {
		abortBadRequest(c, err)
		return
	}

	claim, err := h.Expenses.Reject(approverID, id, input.Reason)
	if err != nil {
		abortServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "claim": claim})
}

// MarkPaid settles an APPROVED claim.
// @Summary Mark claim paid
// @Tags admin-expenses
// @Produce json
// @Param id path int true "Claim ID"
// @Success 200 {object} map[string]interface{} "Paid claim"
// @Failure 409 {object} map[string]interface{} "Claim not approved"
// @Router /admin/expenses/{id}/pay [post]
func (h *ExpenseHandler) MarkPaid(c *gin.Context) {
	actorID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		abortBadRequest(c, err)
		return
	}
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		abortBadRequest(c, err)
		return
	}

	claim, err := h.Expenses.MarkPaid(actorID, id)
	if err != nil {
		abortServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "claim": claim})
}
