package handlers

import (
	"net/http"
	"strconv"

	"github.com/clockwisehq/workforce-go/repositories"
	"github.com/clockwisehq/workforce-go/services"
	"github.com/gin-gonic/gin"
)

type AuditHandler struct {
	Audit *services.AuditService
}

func NewAuditHandler(audit *services.AuditService) *AuditHandler {
	return &AuditHandler{Audit: audit}
}

// Query filters the decision audit log.
// @Summary Query audit log
// @Tags audit
// @Produce json
// @Param actorId query int false "Filter by actor"
// @Param action query string false "Filter by action"
// @Param entityType query string false "Filter by entity type"
// @Param limit query int false "Max rows"
// @Success 200 {object} map[string]interface{} "Audit rows"
// @Router /admin/audit [get]
func (h *AuditHandler) Query(c *gin.Context) {
	params := repositories.AuditQueryParams{
		Action:     c.Query("action"),
		EntityType: c.Query("entityType"),
	}
	if v := c.Query("actorId"); v != "" {
		id, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			abortBadRequest(c, err)
			return
		}
		params.ActorID = uint(id)
	}
	if v := c.Query("limit"); v != "" {
		limit, err := strconv.Atoi(v)
		if err != nil {
			abortBadRequest(c, err)
			return
		}
		params.Limit = limit
	}

	logs, err := h.Audit.Query(params)
	if err != nil {
		abortServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "logs": logs})
}
