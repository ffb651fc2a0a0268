package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/Parqueadero-api/internal/application/role"
	"github.com/jhoicas/Parqueadero-api/internal/domain/repository"
)

var _ role.RoleTxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	db TxBeginner
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(db TxBeginner) *TxRunner {
	return &TxRunner{db: db}
}

// RunLocked abre una transacción, toma un advisory lock de transacción sobre key y ejecuta fn
// con repos atados a la tx. Dos llamadas con la misma key se serializan; el lock se libera
// con el Commit o el Rollback.
func (r *TxRunner) RunLocked(ctx context.Context, key string, fn func(roles repository.RoleRepository) error) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}

	if _, err := tx.Exec(ctx, `SELECT pg_advisory_xact_lock(hashtext($1))`, key); err != nil {
		_ = tx.Rollback(ctx)
		return fmt.Errorf("advisory lock: %w", err)
	}

	if err := fn(NewRoleRepository(tx)); err != nil {
		_ = tx.Rollback(ctx)
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
