package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/Parqueadero-api/internal/domain"
	"github.com/jhoicas/Parqueadero-api/internal/domain/entity"
	"github.com/jhoicas/Parqueadero-api/internal/domain/repository"
)

var _ repository.RoleRepository = (*RoleRepo)(nil)

// RoleRepo persiste asignaciones de rol en user_roles (user_id es único).
type RoleRepo struct {
	db Querier
}

// NewRoleRepository construye el adaptador; db puede ser el pool o una tx.
func NewRoleRepository(db Querier) *RoleRepo {
	return &RoleRepo{db: db}
}

// GetByUserID obtiene la asignación del perfil.
func (r *RoleRepo) GetByUserID(ctx context.Context, userID string) (*entity.RoleBinding, error) {
	query := `
		SELECT id, user_id, role, created_at, updated_at
		FROM user_roles WHERE user_id = $1`
	var b entity.RoleBinding
	err := r.db.QueryRow(ctx, query, userID).Scan(&b.ID, &b.UserID, &b.Role, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get role binding: %w", err)
	}
	return &b, nil
}

// Create inserta la asignación. Si el perfil ya tiene una devuelve domain.ErrDuplicate.
func (r *RoleRepo) Create(ctx context.Context, b *entity.RoleBinding) error {
	query := `
		INSERT INTO user_roles (id, user_id, role, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.db.Exec(ctx, query, b.ID, b.UserID, b.Role, b.CreatedAt, b.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert role binding: %w", err)
	}
	return nil
}

// UpdateRole cambia el rol de una asignación existente.
func (r *RoleRepo) UpdateRole(ctx context.Context, b *entity.RoleBinding) error {
	cmd, err := r.db.Exec(ctx, `UPDATE user_roles SET role = $2, updated_at = $3 WHERE id = $1`,
		b.ID, b.Role, b.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update role binding: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
