package dto

type CreateExpenseClaimInput struct {
	Amount      float64 `json:"amount" binding:"required"`
	Currency    string  `json:"currency"`
	Category    string  `json:"category" binding:"required"`
	Description string  `json:"description"`
	ExpenseDate string  `json:"expenseDate" binding:"required"`
}

type UpdateExpenseClaimInput struct {
	Amount      *float64 `json:"amount"`
	Currency    *string  `json:"currency"`
	Category    *string  `json:"category"`
	Description *string  `json:"description"`
	ExpenseDate *string  `json:"expenseDate"`
}
