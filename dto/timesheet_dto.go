package dto

type CreateTimesheetEntryInput struct {
	WorkDate      string   `json:"workDate" binding:"required"`
	HoursWorked   float64  `json:"hoursWorked" binding:"required"`
	Description   string   `json:"description"`
	IsBillable    bool     `json:"isBillable"`
	BillingAmount *float64 `json:"billingAmount"`
	ProjectID     *uint    `json:"projectId"`
	TaskID        *uint    `json:"taskId"`
}

type UpdateTimesheetEntryInput struct {
	WorkDate      *string  `json:"workDate"`
	HoursWorked   *float64 `json:"hoursWorked"`
	Description   *string  `json:"description"`
	IsBillable    *bool    `json:"isBillable"`
	BillingAmount *float64 `json:"billingAmount"`
	ProjectID     *uint    `json:"projectId"`
	TaskID        *uint    `json:"taskId"`
}

type SubmitWeekInput struct {
	WeekStart string `json:"weekStart" binding:"required"`
}

type BulkApproveInput struct {
	EntryIDs []uint `json:"entryIds" binding:"required"`
}

type RejectInput struct {
	Reason string `json:"reason" binding:"required"`
}

type BulkRejectInput struct {
	EntryIDs []uint `json:"entryIds" binding:"required"`
	Reason   string `json:"reason" binding:"required"`
}
