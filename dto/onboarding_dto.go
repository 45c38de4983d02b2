package dto

type CreateInviteInput struct {
	Email    string `json:"email" binding:"required,email"`
	Username string `json:"username" binding:"required"`
	FullName string `json:"fullName"`
	Role     string `json:"role"`
}

type RequestChangesInput struct {
	Reason string `json:"reason" binding:"required"`
}
