package dto

type StartTimerInput struct {
	ProjectID   *uint  `json:"projectId"`
	TaskID      *uint  `json:"taskId"`
	Description string `json:"description"`
}
