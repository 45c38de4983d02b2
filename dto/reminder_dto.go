package dto

type SendRemindersInput struct {
	EmployeeIDs []uint `json:"employeeIds" binding:"required"`
	WeekStart   string `json:"weekStart" binding:"required"`
}
