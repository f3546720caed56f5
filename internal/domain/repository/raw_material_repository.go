package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/dulcehorno/panaderia-api/internal/domain/entity"
)

// RawMaterialRepository define el puerto de persistencia para RawMaterial (DIP).
// La cantidad solo se escribe vía UpdateQuantity, y solo dentro de la
// transacción del motor de movimientos.
type RawMaterialRepository interface {
	Create(ctx context.Context, material *entity.RawMaterial) error
	GetByID(ctx context.Context, id string) (*entity.RawMaterial, error)
	// GetForUpdate bloquea la fila de la materia (SELECT FOR UPDATE) dentro de
	// la transacción en curso. Fuera de una tx se comporta como GetByID.
	GetForUpdate(ctx context.Context, id string) (*entity.RawMaterial, error)
	// Update modifica los campos editables (nombre, unidad, proveedor,
	// caducidad, mínimo, activo). Nunca toca Quantity.
	Update(ctx context.Context, material *entity.RawMaterial) error
	UpdateQuantity(ctx context.Context, id string, quantity decimal.Decimal) error
	Deactivate(ctx context.Context, id string) error
	List(ctx context.Context, active *bool, limit, offset int) ([]*entity.RawMaterial, error)
	Count(ctx context.Context, active *bool) (int, error)
	// ListCritical devuelve las materias activas con cantidad <= mínimo.
	ListCritical(ctx context.Context) ([]*entity.RawMaterial, error)
}
