package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de movimiento de inventario.
const (
	MovementEntrada = "entrada" // compra o reabastecimiento
	MovementSalida  = "salida"  // consumo en producción
	MovementMerma   = "merma"   // pérdida o desperdicio
)

// ValidMovementType valida el tipo de movimiento.
func ValidMovementType(t string) bool {
	return t == MovementEntrada || t == MovementSalida || t == MovementMerma
}

// Movement es una entrada inmutable del libro de inventario. Una vez creada
// nunca se edita ni se borra: es la pista de auditoría y la fuente de verdad
// de cómo la cantidad de una materia llegó a su valor actual.
type Movement struct {
	ID         string
	MaterialID string
	Type       string          // entrada, salida, merma
	Quantity   decimal.Decimal // siempre positiva; el signo lo da el tipo
	Reason     string
	UserID     string // usuario que lo registró, opcional
	CreatedAt  time.Time
}

// Delta devuelve el efecto del movimiento sobre la cantidad de la materia:
// positivo para entrada, negativo para salida y merma.
func (m *Movement) Delta() decimal.Decimal {
	if m.Type == MovementEntrada {
		return m.Quantity
	}
	return m.Quantity.Neg()
}
