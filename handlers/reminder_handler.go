package handlers

import (
	"net/http"

	"github.com/clockwisehq/workforce-go/dto"
	"github.com/clockwisehq/workforce-go/response"
	"github.com/clockwisehq/workforce-go/services"
	"github.com/clockwisehq/workforce-go/utils"
	"github.com/gin-gonic/gin"
)

type ReminderHandler struct {
	Reminders *services.ReminderService
}

func NewReminderHandler(reminders *services.ReminderService) *ReminderHandler {
	return &ReminderHandler{Reminders: reminders}
}

// Send dispatches timesheet reminders to the listed employees.
// The response counts are exactly what happened: sentCount deliveries went
// out, failedCount did not, and nothing is retried behind the scenes.
// @Summary Send reminders
// @Tags reminders
// @Accept json
// @Produce json
// @Param input body dto.SendRemindersInput true "Employee IDs and week start"
// @Success 200 {object} response.DispatchResponse "Verbatim dispatch counts"
// @Failure 400 {object} map[string]interface{} "Bad request"
// @Router /admin/reminders [post]
func (h *ReminderHandler) Send(c *gin.Context) {
	var input dto.SendRemindersInput
	if err := c.ShouldBindJSON(&input); err != nil {
		abortBadRequest(c, err)
		return
	}
	weekStart, err := utils.ParseDate(input.WeekStart)
	if err != nil {
		abortBadRequest(c, err)
		return
	}

	result, err := h.Reminders.SendReminders(input.EmployeeIDs, weekStart)
	if err != nil {
		abortServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.DispatchResponse{
		Success:     true,
		SentCount:   result.SentCount,
		FailedCount: result.FailedCount,
	})
}
