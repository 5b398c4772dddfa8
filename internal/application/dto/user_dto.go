package dto

import "time"

// CreateUserRequest datos para crear un usuario (administración).
type CreateUserRequest struct {
	Username string `json:"username"`
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Tel      string `json:"tel"`
	Role     string `json:"role"`
	Telegram string `json:"telegram"`
	Memo     string `json:"memo"`
}

// UpdateUserRequest datos para actualizar un usuario. La contraseña solo se
// cambia si Password no está vacío.
type UpdateUserRequest struct {
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Tel      string `json:"tel"`
	Role     string `json:"role"`
	State    string `json:"state"`
	Telegram string `json:"telegram"`
	Memo     string `json:"memo"`
}

// UserResponse representación de salida de un usuario (sin hash).
type UserResponse struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	FullName  string    `json:"full_name"`
	Email     string    `json:"email"`
	Tel       string    `json:"tel"`
	Role      string    `json:"role"`
	State     string    `json:"state"`
	Telegram  string    `json:"telegram"`
	Memo      string    `json:"memo"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
