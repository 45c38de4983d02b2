package dto

type CreateUserInput struct {
	Username  string  `json:"username" binding:"required"`
	Password  string  `json:"password" binding:"required,min=6"`
	Email     *string `json:"email"`
	FullName  *string `json:"fullName"`
	ManagerID *uint   `json:"managerId"`
}

type LoginInput struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}
