package handlers

import (
	"net/http"

	"github.com/clockwisehq/workforce-go/dto"
	"github.com/clockwisehq/workforce-go/response"
	"github.com/clockwisehq/workforce-go/services"
	"github.com/clockwisehq/workforce-go/utils"
	"github.com/gin-gonic/gin"
)

type TimesheetHandler struct {
	Timesheets *services.TimesheetService
}

func NewTimesheetHandler(timesheets *services.TimesheetService) *TimesheetHandler {
	return &TimesheetHandler{Timesheets: timesheets}
}

// Create adds a DRAFT timesheet entry for the calling user.
// @Summary Create timesheet entry
// @Description Create a DRAFT entry for the authenticated user; fails if the target week is locked.
// @Tags timesheets
// @Accept json
// @Produce json
// @Param input body dto.CreateTimesheetEntryInput true "Entry fields"
// @Success 201 {object} map[string]interface{} "Created entry"
// @Failure 400 {object} map[string]interface{} "Bad request"
// @Failure 409 {object} map[string]interface{} "Week locked"
// @Router /timesheets [post]
func (h *TimesheetHandler) Create(c *gin.Context) {
	userID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		abortBadRequest(c, err)
		return
	}

	var input dto.CreateTimesheetEntryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		abortBadRequest(c, err)
		return
	}

	entry, err := h.Timesheets.CreateEntry(userID, input)
	if err != nil {
		abortServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "entry": entry})
}

// Update edits an owned DRAFT or REJECTED entry.
// @Summary Update timesheet entry
// @Tags timesheets
// @Accept json
// @Produce json
// @Param id path int true "Entry ID"
// @Param input body dto.UpdateTimesheetEntryInput true "Fields to change"
// @Success 200 {object} map[string]interface{} "Updated entry"
// @Failure 403 {object} map[string]interface{} "Not the owner"
// @Failure 409 {object} map[string]interface{} "Entry not editable"
// @Router /timesheets/{id} [put]
func (h *TimesheetHandler) Update(c *gin.Context) {
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

	var input dto.UpdateTimesheetEntryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		abortBadRequest(c, err)
		return
	}

	entry, err := h.Timesheets.UpdateEntry(userID, id, input)
	if err != nil {
		abortServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "entry": entry})
}

// Delete removes an owned DRAFT or REJECTED entry.
// @Summary Delete timesheet entry
// @Tags timesheets
// @Produce json
// @Param id path int true "Entry ID"
// @Success 200 {object} map[string]interface{} "Deleted"
// @Failure 409 {object} map[string]interface{} "Entry not editable"
// @Router /timesheets/{id} [delete]
func (h *TimesheetHandler) Delete(c *gin.Context) {
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

	if err := h.Timesheets.DeleteEntry(userID, id); err != nil {
		abortServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Msg("entry deleted"))
}

// ListWeek returns the caller's entries for one week.
// @Summary List week entries
// @Tags timesheets
// @Produce json
// @Param weekStart query string true "Any date in the week (YYYY-MM-DD)"
// @Success 200 {object} map[string]interface{} "Entries"
// @Failure 400 {object} map[string]interface{} "Bad date"
// @Router /timesheets [get]
func (h *TimesheetHandler) ListWeek(c *gin.Context) {
	userID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		abortBadRequest(c, err)
		return
	}
	weekStart, err := utils.ParseDate(c.Query("weekStart"))
	if err != nil {
		abortBadRequest(c, err)
		return
	}

	entries, err := h.Timesheets.ListWeek(userID, weekStart)
	if err != nil {
		abortServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "entries": entries})
}

// SubmitWeek submits every DRAFT entry of a week as one batch.
// @Summary Submit week
// @Description All-or-nothing submission; any guard violation returns the full problem list and nothing changes.
// @Tags timesheets
// @Accept json
// @Produce json
// @Param input body dto.SubmitWeekInput true "Week start date"
// @Success 200 {object} map[string]interface{} "Submitted entries"
// @Failure 422 {object} map[string]interface{} "Submission rejected with problem list"
// @Router /timesheets/submit-week [post]
func (h *TimesheetHandler) SubmitWeek(c *gin.Context) {
	userID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		abortBadRequest(c, err)
		return
	}

	var input dto.SubmitWeekInput
	if err := c.ShouldBindJSON(&input); err != nil {
		abortBadRequest(c, err)
		return
	}
	weekStart, err := utils.ParseDate(input.WeekStart)
	if err != nil {
		abortBadRequest(c, err)
		return
	}

	entries, err := h.Timesheets.SubmitWeek(userID, weekStart)
	if err != nil {
		abortServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "entries": entries})
}

// Revert returns an owned SUBMITTED or REJECTED entry to DRAFT.
// @Summary Revert entry to draft
// @Tags timesheets
// @Produce json
// @Param id path int true "Entry ID"
// @Success 200 {object} map[string]interface{} "Reverted entry"
// @Failure 409 {object} map[string]interface{} "Invalid transition"
// @Router /timesheets/{id}/revert [post]
func (h *TimesheetHandler) Revert(c *gin.Context) {
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

	entry, err := h.Timesheets.RevertToDraft(userID, id)
	if err != nil {
		abortServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "entry": entry})
}

// ListPending returns every SUBMITTED entry awaiting a decision.
// @Summary List pending entries
// @Tags admin-timesheets
// @Produce json
// @Success 200 {object} map[string]interface{} "Pending entries"
// @Failure 403 {object} map[string]interface{} "Manager or admin only"
// @Router /admin/timesheets/pending [get]
func (h *TimesheetHandler) ListPending(c *gin.Context) {
	entries, err := h.Timesheets.ListPending()
	if err != nil {
		abortServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "entries": entries})
}

// Approve moves one SUBMITTED entry to APPROVED.
// @Summary Approve entry
// @Description Managers approve direct reports; root-level users approve their own entries, stamped as auto-approved.
// @Tags admin-timesheets
// @Produce json
// @Param id path int true "Entry ID"
// @Success 200 {object} map[string]interface{} "Approved entry"
// @Failure 403 {object} map[string]interface{} "No authority over this entry"
// @Failure 409 {object} map[string]interface{} "Invalid transition"
// @Router /admin/timesheets/{id}/approve [post]
func (h *TimesheetHandler) Approve(c *gin.Context) {
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

	entry, err := h.Timesheets.Approve(approverID, id)
	if err != nil {
		abortServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "entry": entry})
}

// BulkApprove approves a set of entries atomically.
// @Summary Bulk approve entries
// @Description Any entry that is not SUBMITTED, or outside the caller's authority, fails the whole batch.
// @Tags admin-timesheets
// @Accept json
// @Produce json
// @Param input body dto.BulkApproveInput true "Entry IDs"
// @Success 200 {object} map[string]interface{} "Approved entries"
// @Failure 409 {object} map[string]interface{} "Batch failed, nothing changed"
// @Router /admin/timesheets/bulk-approve [post]
func (h *TimesheetHandler) BulkApprove(c *gin.Context) {
	approverID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		abortBadRequest(c, err)
		return
	}

	var input dto.BulkApproveInput
	if err := c.ShouldBindJSON(&input); err != nil {
		abortBadRequest(c, err)
		return
	}

	entries, err := h.Timesheets.BulkApprove(approverID, input.EntryIDs)
	if err != nil {
		abortServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "entries": entries})
}

// Reject moves one SUBMITTED entry to REJECTED with a reason.
// @Summary Reject entry
// @Tags admin-timesheets
// @Accept json
// @Produce json
// @Param id path int true "Entry ID"
// @Param input body dto.RejectInput true "Rejection reason"
// @Success 200 {object} map[string]interface{} "Rejected entry"
// @Failure 400 {object} map[string]interface{} "Missing reason"
// @Router /admin/timesheets/{id}/reject [post]
func (h *TimesheetHandler) Reject(c *gin.Context) {
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

	entry, err := h.Timesheets.Reject(approverID, id, input.Reason)
	if err != nil {
		abortServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "entry": entry})
}

// BulkReject rejects a set of entries atomically with a shared reason.
// @Summary Bulk reject entries
// @Tags admin-timesheets
// @Accept json
// @Produce json
// @Param input body dto.BulkRejectInput true "Entry IDs and reason (min 10 chars)"
// @Success 200 {object} map[string]interface{} "Rejected entries"
// @Failure 400 {object} map[string]interface{} "Reason too short"
// @Router /admin/timesheets/bulk-reject [post]
func (h *TimesheetHandler) BulkReject(c *gin.Context) {
	approverID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		abortBadRequest(c, err)
		return
	}

	var input dto.BulkRejectInput
	if err := c.ShouldBindJSON(&input); err != nil {
		abortBadRequest(c, err)
		return
	}

	entries, err := h.Timesheets.BulkReject(approverID, input.EntryIDs, input.Reason)
	if err != nil {
		abortServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "entries": entries})
}
