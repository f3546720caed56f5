package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dulcehorno/panaderia-api/internal/domain/repository"
)

var _ repository.ReportRepository = (*ReportRepo)(nil)

// ReportRepo consultas de agregación sobre movimientos y materias primas.
// Trabaja siempre fuera de transacción: son lecturas de solo consulta.
type ReportRepo struct {
	pool *pgxpool.Pool
}

// NewReportRepository construye el adaptador de reportes.
func NewReportRepository(pool *pgxpool.Pool) *ReportRepo {
	return &ReportRepo{pool: pool}
}

// CountActiveMaterials cuenta las materias primas activas del catálogo.
func (r *ReportRepo) CountActiveMaterials(ctx context.Context) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM raw_materials WHERE active = TRUE`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count active materials: %w", err)
	}
	return count, nil
}

// CountCriticalMaterials cuenta las materias activas con stock en o bajo el mínimo.
func (r *ReportRepo) CountCriticalMaterials(ctx context.Context) (int, error) {
	var count int
	query := `SELECT COUNT(*) FROM raw_materials WHERE active = TRUE AND quantity <= minimum`
	if err := r.pool.QueryRow(ctx, query).Scan(&count); err != nil {
		return 0, fmt.Errorf("count critical materials: %w", err)
	}
	return count, nil
}

// CountMovementsSince cuenta los movimientos registrados desde la fecha dada.
func (r *ReportRepo) CountMovementsSince(ctx context.Context, since time.Time) (int, error) {
	var count int
	query := `SELECT COUNT(*) FROM movements WHERE created_at >= $1`
	if err := r.pool.QueryRow(ctx, query, since).Scan(&count); err != nil {
		return 0, fmt.Errorf("count movements since: %w", err)
	}
	return count, nil
}

// MermaReport agrega la merma acumulada por materia prima, de mayor a menor.
func (r *ReportRepo) MermaReport(ctx context.Context) ([]repository.MermaReportRow, error) {
	query := `
		SELECT m.material_id, rm.name, rm.unit, SUM(m.quantity), COUNT(*)
		FROM movements m
		JOIN raw_materials rm ON rm.id = m.material_id
		WHERE m.type = 'merma'
		GROUP BY m.material_id, rm.name, rm.unit
		ORDER BY SUM(m.quantity) DESC`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("merma report: %w", err)
	}
	defer rows.Close()

	var result []repository.MermaReportRow
	for rows.Next() {
		var row repository.MermaReportRow
		if err := rows.Scan(&row.MaterialID, &row.MaterialName, &row.Unit, &row.TotalMerma, &row.Events); err != nil {
			return nil, fmt.Errorf("scan merma row: %w", err)
		}
		result = append(result, row)
	}
	return result, rows.Err()
}

// MostUsedMaterials agrega las salidas por materia prima y devuelve las de
// mayor consumo acumulado.
func (r *ReportRepo) MostUsedMaterials(ctx context.Context, limit int) ([]repository.UsageReportRow, error) {
	query := `
		SELECT m.material_id, rm.name, rm.unit, SUM(m.quantity)
		FROM movements m
		JOIN raw_materials rm ON rm.id = m.material_id
		WHERE m.type = 'salida'
		GROUP BY m.material_id, rm.name, rm.unit
		ORDER BY SUM(m.quantity) DESC
		LIMIT $1`
	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("usage report: %w", err)
	}
	defer rows.Close()

	var result []repository.UsageReportRow
	for rows.Next() {
		var row repository.UsageReportRow
		if err := rows.Scan(&row.MaterialID, &row.MaterialName, &row.Unit, &row.TotalUsed); err != nil {
			return nil, fmt.Errorf("scan usage row: %w", err)
		}
		result = append(result, row)
	}
	return result, rows.Err()
}
