package dto

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	Token string    `json:"token"`
	User  LoginUser `json:"user"`
}

type LoginUser struct {
	ID    string   `json:"id"`
	Email string   `json:"email"`
	Name  *string  `json:"name,omitempty"`
	Roles []string `json:"roles"`
}
