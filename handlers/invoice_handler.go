package handlers

import (
	"net/http"

	"github.com/clockwisehq/workforce-go/dto"
	"github.com/clockwisehq/workforce-go/models"
	"github.com/clockwisehq/workforce-go/services"
	"github.com/clockwisehq/workforce-go/utils"
	"github.com/gin-gonic/gin"
)

type InvoiceHandler struct {
	Invoices *services.InvoiceService
}

func NewInvoiceHandler(invoices *services.InvoiceService) *InvoiceHandler {
	return &InvoiceHandler{Invoices: invoices}
}

// Generate builds a DRAFT invoice from a user's approved billable entries.
// @Summary Generate invoice
// @Tags invoices
// @Accept json
// @Produce json
// @Param input body dto.GenerateInvoiceInput true "User, client and date range"
// @Success 201 {object} map[string]interface{} "Created invoice"
// @Failure 409 {object} map[string]interface{} "No billable work in range"
// @Router /admin/invoices/generate [post]
func (h *InvoiceHandler) Generate(c *gin.Context) {
	actorID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		abortBadRequest(c, err)
		return
	}

	var input dto.GenerateInvoiceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		abortBadRequest(c, err)
		return
	}

	invoice, err := h.Invoices.Generate(actorID, input)
	if err != nil {
		abortServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "invoice": invoice})
}

// List returns all invoices.
// @Summary List invoices
// @Tags invoices
// @Produce json
// @Success 200 {object} map[string]interface{} "Invoices"
// @Router /admin/invoices [get]
func (h *InvoiceHandler) List(c *gin.Context) {
	invoices, err := h.Invoices.List()
	if err != nil {
		abortServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "invoices": invoices})
}

// Get returns one invoice with its line items.
// @Summary Get invoice
// @Tags invoices
// @Produce json
// @Param id path int true "Invoice ID"
// @Success 200 {object} map[string]interface{} "Invoice"
// @Failure 404 {object} map[string]interface{} "Not found"
// @Router /admin/invoices/{id} [get]
func (h *InvoiceHandler) Get(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		abortBadRequest(c, err)
		return
	}

	invoice, err := h.Invoices.Get(id)
	if err != nil {
		abortServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "invoice": invoice})
}

// Send issues a DRAFT invoice, stamping the issue and due dates.
// @Summary Send invoice
// @Tags invoices
// @Produce json
// @Param id path int true "Invoice ID"
// @Success 200 {object} map[string]interface{} "Sent invoice"
// @Failure 409 {object} map[string]interface{} "Invalid transition"
// @Router /admin/invoices/{id}/send [post]
func (h *InvoiceHandler) Send(c *gin.Context) {
	h.lifecycle(c, h.Invoices.Send)
}

// MarkPaid settles a SENT or OVERDUE invoice.
// @Summary Mark invoice paid
// @Tags invoices
// @Produce json
// @Param id path int true "Invoice ID"
// @Success 200 {object} map[string]interface{} "Paid invoice"
// @Failure 409 {object} map[string]interface{} "Invalid transition"
// @Router /admin/invoices/{id}/pay [post]
func (h *InvoiceHandler) MarkPaid(c *gin.Context) {
	h.lifecycle(c, h.Invoices.MarkPaid)
}

// Cancel voids an invoice that has not been paid.
// @Summary Cancel invoice
// @Tags invoices
// @Produce json
// @Param id path int true "Invoice ID"
// @Success 200 {object} map[string]interface{} "Cancelled invoice"
// @Failure 409 {object} map[string]interface{} "Invalid transition"
// @Router /admin/invoices/{id}/cancel [post]
func (h *InvoiceHandler) Cancel(c *gin.Context) {
	h.lifecycle(c, h.Invoices.Cancel)
}

func (h *InvoiceHandler) lifecycle(c *gin.Context, fn func(actorID, invoiceID uint) (models.Invoice, error)) {
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

	invoice, err := fn(actorID, id)
	if err != nil {
		abortServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "invoice": invoice})
}

// Export downloads the invoice as an XLSX workbook.
// @Summary Export invoice XLSX
// @Tags invoices
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param id path int true "Invoice ID"
// @Success 200 {file} binary "XLSX file"
// @Failure 404 {object} map[string]interface{} "Not found"
// @Router /admin/invoices/{id}/export [get]
func (h *InvoiceHandler) Export(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		abortBadRequest(c, err)
		return
	}

	buf, filename, err := h.Invoices.ExportXLSX(id)
	if err != nil {
		abortServiceError(c, err)
		return
	}

	c.Header("Content-Disposition", "attachment; filename="+filename)
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
}
