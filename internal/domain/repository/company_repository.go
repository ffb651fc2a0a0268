package repository

import (
	"context"

	"github.com/jhoicas/Parqueadero-api/internal/domain/entity"
)

// CompanyRepository define el puerto de persistencia para Company (DIP).
// La implementación vive en infrastructure.
type CompanyRepository interface {
	// Create devuelve domain.ErrDuplicate si el slug ya existe.
	Create(ctx context.Context, company *entity.Company) error
	// GetByID devuelve (nil, nil) si no existe.
	GetByID(ctx context.Context, id string) (*entity.Company, error)
	// Update devuelve domain.ErrNotFound si la empresa ya no existe y domain.ErrDuplicate si el slug choca.
	Update(ctx context.Context, company *entity.Company) error
	List(ctx context.Context) ([]*entity.Company, error)
	// Delete devuelve domain.ErrNotFound si no había fila que eliminar.
	Delete(ctx context.Context, id string) error
}
