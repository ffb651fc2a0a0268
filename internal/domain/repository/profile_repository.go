package repository

import (
	"context"

	"github.com/jhoicas/Parqueadero-api/internal/domain/entity"
)

// ProfileRepository define el puerto de lectura de perfiles del personal.
type ProfileRepository interface {
	// GetByEmail busca por coincidencia exacta; (nil, nil) si no existe.
	GetByEmail(ctx context.Context, email string) (*entity.Profile, error)
	GetByID(ctx context.Context, id string) (*entity.Profile, error)
}

// RoleRepository define el puerto de persistencia para RoleBinding.
type RoleRepository interface {
	// GetByUserID devuelve (nil, nil) si el perfil no tiene rol asignado.
	GetByUserID(ctx context.Context, userID string) (*entity.RoleBinding, error)
	Create(ctx context.Context, binding *entity.RoleBinding) error
	// UpdateRole cambia el rol de la asignación existente, sin crear filas nuevas.
	UpdateRole(ctx context.Context, binding *entity.RoleBinding) error
}
