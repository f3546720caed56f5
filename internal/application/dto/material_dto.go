package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/dulcehorno/panaderia-api/internal/domain/entity"
)

// CreateMaterialRequest body para POST /api/inventory/materias-primas.
type CreateMaterialRequest struct {
	Name           string          `json:"nombre"`
	Unit           string          `json:"unidad"`
	Quantity       decimal.Decimal `json:"cantidad_disponible"`
	Minimum        decimal.Decimal `json:"minimo"`
	Supplier       *string         `json:"proveedor,omitempty"`
	ExpirationDate *time.Time      `json:"fecha_caducidad,omitempty"`
}

// UpdateMaterialRequest body para PUT /api/inventory/materias-primas/:id.
// La cantidad no es editable por esta vía: solo cambia vía movimientos.
type UpdateMaterialRequest struct {
	Name           string          `json:"nombre"`
	Unit           string          `json:"unidad_medida"`
	Minimum        decimal.Decimal `json:"minimo"`
	Supplier       *string         `json:"proveedor,omitempty"`
	ExpirationDate *time.Time      `json:"fecha_caducidad,omitempty"`
	Active         *bool           `json:"activo,omitempty"`
}

// MaterialResponse materia prima en respuestas HTTP.
type MaterialResponse struct {
	ID             string          `json:"id_materia_prima"`
	Name           string          `json:"nombre"`
	Unit           string          `json:"unidad_medida"`
	Quantity       decimal.Decimal `json:"cantidad_disponible"`
	Minimum        decimal.Decimal `json:"minimo"`
	Supplier       *string         `json:"proveedor,omitempty"`
	ExpirationDate *time.Time      `json:"fecha_caducidad,omitempty"`
	Active         bool            `json:"activo"`
	Critical       bool            `json:"critico"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// MaterialListQuery filtros de GET /api/inventory/materias-primas.
// Activo admite "true", "false" o "all" como en el frontend.
type MaterialListQuery struct {
	Active string `query:"activo"`
	PageRequest
}

// ToMaterialResponse mapea la entidad a su representación HTTP.
func ToMaterialResponse(m *entity.RawMaterial) *MaterialResponse {
	if m == nil {
		return nil
	}
	return &MaterialResponse{
		ID:             m.ID,
		Name:           m.Name,
		Unit:           m.Unit,
		Quantity:       m.Quantity,
		Minimum:        m.Minimum,
		Supplier:       m.Supplier,
		ExpirationDate: m.ExpirationDate,
		Active:         m.Active,
		Critical:       m.IsCritical(),
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}
