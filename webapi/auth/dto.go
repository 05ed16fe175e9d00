package auth

import "github.com/amirasaad/market/pkg/dto"

// RegisterInput represents the request body for creating an account.
type RegisterInput struct {
	Username        string `json:"username" example:"bob"`
	Email           string `json:"email_address" example:"bob@example.com"`
	Password        string `json:"password" example:"secret1"`
	ConfirmPassword string `json:"confirm_password" example:"secret1"`
}

// LoginInput represents the request body for user authentication.
type LoginInput struct {
	Username string `json:"username" example:"bob"`
	Password string `json:"password" example:"secret1"`
}

// Session is returned by register and login.
type Session struct {
	User  *dto.UserRead `json:"user"`
	Token string        `json:"token"`
}
