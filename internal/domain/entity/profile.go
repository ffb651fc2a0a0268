package entity

import "time"

// Roles válidos para un RoleBinding.
const (
	RoleAdmin    = "admin"
	RoleOperador = "operador"
	RoleCajero   = "cajero"
)

// IsValidRole informa si el rol pertenece al conjunto conocido.
func IsValidRole(role string) bool {
	switch role {
	case RoleAdmin, RoleOperador, RoleCajero:
		return true
	}
	return false
}

// Profile representa a un miembro del personal que puede autenticarse.
type Profile struct {
	ID           string
	Email        string // único
	Name         string
	PasswordHash string // bcrypt
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// RoleBinding asocia un rol a un perfil. Hay como máximo uno por UserID.
type RoleBinding struct {
	ID        string
	UserID    string
	Role      string
	CreatedAt time.Time
	UpdatedAt time.Time
}
