package inventory

import (
	"context"

	"github.com/dulcehorno/panaderia-api/internal/domain/entity"
	"github.com/dulcehorno/panaderia-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza que el insert del movimiento y el
// update de cantidad se confirmen (o deshagan) como una sola unidad.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		materialRepo repository.RawMaterialRepository,
		movementRepo repository.MovementRepository,
	) error) error
}

// CriticalCache cache opcional para la lista de stock crítico. El escáner lee
// a través del cache; el motor de movimientos lo invalida tras cada commit.
// Una implementación nil deshabilita el cacheo.
type CriticalCache interface {
	Get(ctx context.Context) ([]*entity.RawMaterial, bool)
	Set(ctx context.Context, materials []*entity.RawMaterial) error
	Invalidate(ctx context.Context) error
}
