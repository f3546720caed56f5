package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// RawMaterial representa una materia prima de la panadería (harina, levadura, etc.).
// Quantity es la vista materializada del libro de movimientos: solo cambia al
// aplicar un movimiento, nunca por edición directa.
type RawMaterial struct {
	ID             string
	Name           string // único entre materias activas
	Unit           string // kg, l, unidad
	Quantity       decimal.Decimal
	Minimum        decimal.Decimal // umbral de stock crítico
	Supplier       *string
	ExpirationDate *time.Time
	Active         bool // soft delete: inactiva no acepta movimientos
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// IsCritical indica si la materia está en stock crítico (cantidad <= mínimo).
func (m *RawMaterial) IsCritical() bool {
	return m.Quantity.LessThanOrEqual(m.Minimum)
}
