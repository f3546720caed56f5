package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// RegisterMovementRequest body para POST /api/inventory/movimientos.
type RegisterMovementRequest struct {
	MaterialID string          `json:"id_materia_prima"`
	Type       string          `json:"tipo_movimiento"` // entrada, salida, merma
	Quantity   decimal.Decimal `json:"cantidad"`
	Reason     string          `json:"motivo,omitempty"`
}

// MovementResponse movimiento del libro en respuestas HTTP.
type MovementResponse struct {
	ID         string          `json:"id_movimiento"`
	MaterialID string          `json:"id_materia_prima"`
	Type       string          `json:"tipo_movimiento"`
	Quantity   decimal.Decimal `json:"cantidad"`
	Reason     string          `json:"motivo,omitempty"`
	UserID     string          `json:"id_usuario,omitempty"`
	CreatedAt  time.Time       `json:"fecha_movimiento"`
}

// RegisterMovementResponse respuesta del registro: el movimiento creado más el
// stock resultante, para que el caller reporte ambos sin una segunda lectura.
type RegisterMovementResponse struct {
	Movement MovementResponse `json:"movimiento"`
	Stock    decimal.Decimal  `json:"stock_actualizado"`
}

// RestockRequest body para PUT /api/inventory/materias-primas/reabastecer/:id.
type RestockRequest struct {
	Quantity decimal.Decimal `json:"cantidad_disponible"`
}

// MovementHistoryQuery filtros de GET /api/inventory/movimientos.
type MovementHistoryQuery struct {
	MaterialID string `query:"id_materia_prima"`
	Type       string `query:"tipo_movimiento"`
	From       string `query:"fecha_inicio"` // YYYY-MM-DD, inclusivo
	To         string `query:"fecha_fin"`    // YYYY-MM-DD, inclusivo
	PageRequest
}
