package dto

import "github.com/shopspring/decimal"

// DashboardSummaryDTO respuesta de GET /api/dashboard/summary.
// Las cifras de ventas/pedidos siguen simuladas (no hay módulo de ventas);
// los contadores de inventario sí salen del libro de movimientos.
type DashboardSummaryDTO struct {
	TodaySales      decimal.Decimal `json:"ventas_dia"`
	SalesVariation  decimal.Decimal `json:"variacion_ventas"` // % vs día anterior, simulado
	PendingOrders   int             `json:"pedidos_pendientes"`
	InventoryAlerts int             `json:"alertas_inventario"`
	TotalMaterials  int             `json:"total_materias_primas"`
	TodayMovements  int             `json:"movimientos_hoy"`
}

// MermaReportDTO respuesta de GET /api/dashboard/reportes/mermas.
type MermaReportDTO struct {
	TotalMerma       decimal.Decimal     `json:"total_merma_general"`
	MaterialsAffected int                `json:"total_productos_afectados"`
	Detail           []MermaDetailDTO    `json:"detalle_mermas"`
}

// MermaDetailDTO merma acumulada de una materia prima.
type MermaDetailDTO struct {
	MaterialID   string          `json:"id_materia_prima"`
	MaterialName string          `json:"nombre"`
	Unit         string          `json:"unidad_medida"`
	TotalMerma   decimal.Decimal `json:"total_merma"`
	Events       int             `json:"eventos"`
}

// UsageReportDTO respuesta de GET /api/dashboard/reportes/insumos.
type UsageReportDTO struct {
	TotalMaterials int             `json:"total_insumos"`
	Materials      []UsageRowDTO   `json:"insumos"`
}

// UsageRowDTO consumo acumulado de una materia prima.
type UsageRowDTO struct {
	MaterialID   string          `json:"id_materia_prima"`
	MaterialName string          `json:"nombre"`
	Unit         string          `json:"unidad_medida"`
	TotalUsed    decimal.Decimal `json:"total_usado"`
}

// SalesReportDTO respuesta de GET /api/dashboard/reportes/ventas.
// Cifras simuladas: no existe módulo de ventas.
type SalesReportDTO struct {
	WeekTotal decimal.Decimal `json:"total_semana"`
	Days      []DailySalesDTO `json:"ventas_diarias"`
}

// DailySalesDTO ventas simuladas de un día.
type DailySalesDTO struct {
	Day   string          `json:"dia"`
	Total decimal.Decimal `json:"total"`
}

// CostsReportDTO respuesta de GET /api/dashboard/reportes/costos.
// Cifras simuladas: no existe contabilidad de costos reales.
type CostsReportDTO struct {
	TotalCosts decimal.Decimal `json:"costo_total"`
	Items      []CostItemDTO   `json:"detalle_costos"`
}

// CostItemDTO costo simulado por concepto.
type CostItemDTO struct {
	Concept string          `json:"concepto"`
	Amount  decimal.Decimal `json:"monto"`
}

// MarginReportDTO respuesta de GET /api/dashboard/reportes/margen.
// Datos simulados: requeriría tabla de productos terminados con costos reales.
type MarginReportDTO struct {
	AverageMargin decimal.Decimal   `json:"margen_promedio"`
	TotalProducts int               `json:"total_productos"`
	Products      []ProductMarginDTO `json:"productos"`
}

// ProductMarginDTO margen simulado de un producto terminado.
type ProductMarginDTO struct {
	Product       string          `json:"producto"`
	SalePrice     decimal.Decimal `json:"precio_venta"`
	ProductionCost decimal.Decimal `json:"costo_produccion"`
	GrossMargin   decimal.Decimal `json:"margen_bruto"`
	MarginPct     decimal.Decimal `json:"margen_porcentaje"`
}
