package dto

import "time"

// RegisterRequest entrada de POST /api/register.
type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`    // opcional
	Phone    string `json:"phone"`    // opcional, numérico, máx 8 caracteres
	Password string `json:"password"`
}

// LoginRequest entrada de POST /api/login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// UserResponse salida de un usuario. El password nunca se serializa.
type UserResponse struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// LoginResponse salida de POST /api/login.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}
