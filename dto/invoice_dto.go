package dto

type GenerateInvoiceInput struct {
	UserID    uint   `json:"userId" binding:"required"`
	ProjectID *uint  `json:"projectId"`
	From      string `json:"from" binding:"required"`
	To        string `json:"to" binding:"required"`
	Currency  string `json:"currency"`
}
