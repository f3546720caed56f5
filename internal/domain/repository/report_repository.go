package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// MermaReportRow total de merma acumulada por materia prima.
type MermaReportRow struct {
	MaterialID   string
	MaterialName string
	Unit         string
	TotalMerma   decimal.Decimal
	Events       int
}

// UsageReportRow consumo acumulado (salidas) por materia prima.
type UsageReportRow struct {
	MaterialID   string
	MaterialName string
	Unit         string
	TotalUsed    decimal.Decimal
}

// ReportRepository consultas read-only de agregación para el dashboard.
// Lee el libro de movimientos y el catálogo; nunca escribe.
type ReportRepository interface {
	CountActiveMaterials(ctx context.Context) (int, error)
	CountCriticalMaterials(ctx context.Context) (int, error)
	CountMovementsSince(ctx context.Context, since time.Time) (int, error)
	MermaReport(ctx context.Context) ([]MermaReportRow, error)
	MostUsedMaterials(ctx context.Context, limit int) ([]UsageReportRow, error)
}
