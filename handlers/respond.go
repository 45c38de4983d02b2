package handlers

import (
	"errors"
	"net/http"

	"github.com/clockwisehq/workforce-go/response"
	"github.com/clockwisehq/workforce-go/services"
	"github.com/clockwisehq/workforce-go/workflow"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// abortServiceError maps service errors onto HTTP statuses, keeping the
// {success, error} envelope. Submission errors expand to the full problem
// list so the client can show every violation at once.
func abortServiceError(c *gin.Context, err error) {
	var subErr *services.SubmissionError
	if errors.As(err, &subErr) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"success":  false,
			"error":    "submission rejected",
			"problems": subErr.Problems,
		})
		return
	}

	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		c.JSON(http.StatusNotFound, response.Err("not found"))
	case errors.Is(err, services.ErrNotOwner),
		errors.Is(err, services.ErrNotAuthorized):
		c.JSON(http.StatusForbidden, response.Err(err.Error()))
	case errors.Is(err, workflow.ErrInvalidTransition),
		errors.Is(err, services.ErrNotEditable),
		errors.Is(err, services.ErrWeekLocked),
		errors.Is(err, services.ErrTimerRunning),
		errors.Is(err, services.ErrTimerNotRunning),
		errors.Is(err, services.ErrInviteExpired):
		c.JSON(http.StatusConflict, response.Err(err.Error()))
	case errors.Is(err, workflow.ErrReasonRequired),
		errors.Is(err, workflow.ErrReasonTooShort),
		errors.Is(err, workflow.ErrEmptyBatch),
		errors.Is(err, services.ErrEntriesMissed),
		errors.Is(err, services.ErrInvalidAmount),
		errors.Is(err, services.ErrNoBillableWork),
		errors.Is(err, services.ErrUsernameTaken):
		c.JSON(http.StatusBadRequest, response.Err(err.Error()))
	default:
		c.JSON(http.StatusInternalServerError, response.Err(err.Error()))
	}
}

func abortBadRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, response.Err(err.Error()))
}
