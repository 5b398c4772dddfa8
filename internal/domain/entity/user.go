package entity

import "time"

// Roles de usuario.
const (
	RoleAdmin   = "ADMIN"
	RoleManager = "MANAGER"
	RoleWorker  = "WORKER"
)

// Estados de usuario.
const (
	UserStateActive   = "ACTIVE"
	UserStateInactive = "INACTIVE"
)

// User usuario del sistema. La contraseña se guarda como hash bcrypt.
type User struct {
	ID           string
	Username     string // único
	FullName     string
	Email        string // único
	PasswordHash string
	Tel          string
	Role         string // ADMIN, MANAGER, WORKER
	State        string // ACTIVE, INACTIVE
	Telegram     string
	Memo         string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
