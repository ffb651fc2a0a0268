package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/Parqueadero-api/internal/domain/entity"
	"github.com/jhoicas/Parqueadero-api/internal/domain/repository"
)

var _ repository.ProfileRepository = (*ProfileRepo)(nil)

// ProfileRepo implementación del puerto ProfileRepository sobre PostgreSQL.
type ProfileRepo struct {
	db Querier
}

// NewProfileRepository construye el adaptador de lectura de perfiles.
func NewProfileRepository(db Querier) *ProfileRepo {
	return &ProfileRepo{db: db}
}

// GetByEmail busca el perfil por email exacto.
func (r *ProfileRepo) GetByEmail(ctx context.Context, email string) (*entity.Profile, error) {
	return r.findOne(ctx, "email", email)
}

// GetByID obtiene un perfil por ID.
func (r *ProfileRepo) GetByID(ctx context.Context, id string) (*entity.Profile, error) {
	return r.findOne(ctx, "id", id)
}

// findOne column viene de las constantes de este archivo, nunca del usuario.
func (r *ProfileRepo) findOne(ctx context.Context, column, value string) (*entity.Profile, error) {
	query := `
		SELECT id, email, name, password_hash, created_at, updated_at
		FROM profiles WHERE ` + column + ` = $1 LIMIT 1`
	var p entity.Profile
	err := r.db.QueryRow(ctx, query, value).Scan(
		&p.ID, &p.Email, &p.Name, &p.PasswordHash, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get profile by %s: %w", column, err)
	}
	return &p, nil
}
