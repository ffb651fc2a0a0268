package role

import (
	"context"

	"github.com/jhoicas/Parqueadero-api/internal/domain/repository"
)

// RoleTxRunner ejecuta fn con un RoleRepository atado a una unidad de trabajo que
// serializa las reconciliaciones concurrentes para la misma key (el ID del perfil).
type RoleTxRunner interface {
	RunLocked(ctx context.Context, key string, fn func(roles repository.RoleRepository) error) error
}
