package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dulcehorno/panaderia-api/internal/application/inventory"
	"github.com/dulcehorno/panaderia-api/internal/domain/repository"
)

// Ensure TxRunner implements inventory.TxRunner.
var _ inventory.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL. Es el
// coordinador de consistencia del inventario: el callback ve repositorios
// atados a la tx, y el lock de fila de GetForUpdate serializa los movimientos
// por materia sin bloquear materias distintas entre sí.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con repos atados a la tx y hace
// Commit o Rollback. Si el ctx del caller expira esperando un lock, pgx
// cancela la consulta y la tx se deshace sin estado parcial.
func (r *TxRunner) Run(ctx context.Context, fn func(
	materialRepo repository.RawMaterialRepository,
	movementRepo repository.MovementRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	materialRepo := NewRawMaterialRepository(tx)
	movementRepo := NewMovementRepository(tx)

	if err := fn(materialRepo, movementRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
