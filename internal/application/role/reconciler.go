// Package role reconcilia la asignación de rol de un perfil: garantiza que exista exactamente
// un RoleBinding con el rol deseado, actualizando el existente o insertando uno nuevo.
package role

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Parqueadero-api/internal/domain"
	"github.com/jhoicas/Parqueadero-api/internal/domain/entity"
	"github.com/jhoicas/Parqueadero-api/internal/domain/repository"
)

// Result es el estado resultante de una reconciliación exitosa.
type Result struct {
	Email   string `json:"email"`
	Role    string `json:"role"`
	Created bool   `json:"created"` // true si se insertó una asignación nueva
}

// Reconciler resuelve perfiles por email y asegura su rol.
type Reconciler struct {
	profiles repository.ProfileRepository
	tx       RoleTxRunner
	now      func() time.Time
}

// NewReconciler construye el reconciliador.
func NewReconciler(profiles repository.ProfileRepository, tx RoleTxRunner) *Reconciler {
	return &Reconciler{profiles: profiles, tx: tx, now: time.Now}
}

// EnsureRole deja al perfil con email exactamente una asignación con targetRole.
// Repetir la llamada converge al mismo estado (la segunda vez actualiza, no inserta).
//
// Errores:
//   - domain.ErrInvalidInput    email vacío o rol desconocido (sin I/O).
//   - domain.ErrProfileNotFound no hay perfil con ese email (sin escritura).
//   - domain.ErrLookupFailed    falló la consulta del perfil o de la asignación actual.
//   - domain.ErrWriteFailed     falló el insert o el update.
func (r *Reconciler) EnsureRole(ctx context.Context, email, targetRole string) (*Result, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return nil, fmt.Errorf("%w: email requerido", domain.ErrInvalidInput)
	}
	if !entity.IsValidRole(targetRole) {
		return nil, fmt.Errorf("%w: rol desconocido %q", domain.ErrInvalidInput, targetRole)
	}

	profile, err := r.profiles.GetByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("%w: perfil %s: %w", domain.ErrLookupFailed, email, err)
	}
	if profile == nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrProfileNotFound, email)
	}

	var created bool
	err = r.tx.RunLocked(ctx, profile.ID, func(roles repository.RoleRepository) error {
		current, err := roles.GetByUserID(ctx, profile.ID)
		if err != nil {
			return fmt.Errorf("%w: %w", domain.ErrLookupFailed, err)
		}
		now := r.now()
		if current != nil {
			current.Role = targetRole
			current.UpdatedAt = now
			if err := roles.UpdateRole(ctx, current); err != nil {
				return fmt.Errorf("%w: actualizar: %w", domain.ErrWriteFailed, err)
			}
			return nil
		}
		binding := &entity.RoleBinding{
			ID:        uuid.New().String(),
			UserID:    profile.ID,
			Role:      targetRole,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := roles.Create(ctx, binding); err != nil {
			return fmt.Errorf("%w: insertar: %w", domain.ErrWriteFailed, err)
		}
		created = true
		return nil
	})
	if err != nil {
		if errors.Is(err, domain.ErrLookupFailed) || errors.Is(err, domain.ErrWriteFailed) {
			return nil, err
		}
		// Falla de la unidad de trabajo (begin/lock/commit): nada quedó persistido.
		return nil, fmt.Errorf("%w: %w", domain.ErrWriteFailed, err)
	}

	return &Result{Email: email, Role: targetRole, Created: created}, nil
}
