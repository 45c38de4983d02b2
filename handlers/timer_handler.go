package handlers

import (
	"net/http"

	"github.com/clockwisehq/workforce-go/dto"
	"github.com/clockwisehq/workforce-go/response"
	"github.com/clockwisehq/workforce-go/services"
	"github.com/clockwisehq/workforce-go/utils"
	"github.com/gin-gonic/gin"
)

type TimerHandler struct {
	Timers *services.TimerService
}

func NewTimerHandler(timers *services.TimerService) *TimerHandler {
	return &TimerHandler{Timers: timers}
}

// Start begins a work timer for the caller.
// @Summary Start timer
// @Tags timer
// @Accept json
// @Produce json
// @Param input body dto.StartTimerInput true "Project, task and description"
// @Success 201 {object} map[string]interface{} "Running timer"
// @Failure 409 {object} map[string]interface{} "Timer already running"
// @Router /timer/start [post]
func (h *TimerHandler) Start(c *gin.Context) {
	userID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		abortBadRequest(c, err)
		return
	}

	var input dto.StartTimerInput
	if err := c.ShouldBindJSON(&input); err != nil {
		abortBadRequest(c, err)
		return
	}

	state, err := h.Timers.Start(userID, input)
	if err != nil {
		abortServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "timer": state})
}

// Get returns the caller's timer, if one is running.
// @Summary Get timer
// @Tags timer
// @Produce json
// @Success 200 {object} map[string]interface{} "Timer state and running flag"
// @Router /timer [get]
func (h *TimerHandler) Get(c *gin.Context) {
	userID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		abortBadRequest(c, err)
		return
	}

	state, err := h.Timers.Get(userID)
	if err != nil {
		abortServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "timer": state, "running": state != nil})
}

// Stop ends the timer and materializes a DRAFT entry with the elapsed hours.
// @Summary Stop timer
// @Tags timer
// @Produce json
// @Success 200 {object} map[string]interface{} "Created draft entry"
// @Failure 409 {object} map[string]interface{} "No timer running or week locked"
// @Router /timer/stop [post]
func (h *TimerHandler) Stop(c *gin.Context) {
	userID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		abortBadRequest(c, err)
		return
	}

	entry, err := h.Timers.Stop(userID)
	if err != nil {
		abortServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "entry": entry})
}

// Discard drops the running timer without recording anything.
// @Summary Discard timer
// @Tags timer
// @Produce json
// @Success 200 {object} map[string]interface{} "Timer discarded"
// @Failure 409 {object} map[string]interface{} "No timer running"
// @Router /timer [delete]
func (h *TimerHandler) Discard(c *gin.Context) {
	userID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		abortBadRequest(c, err)
		return
	}

	if err := h.Timers.Discard(userID); err != nil {
		abortServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Msg("timer discarded"))
}
