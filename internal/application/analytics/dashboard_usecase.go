// Package analytics contiene los casos de uso read-only del dashboard y los
// reportes. Lee el libro de movimientos y el catálogo; nunca escribe, y las
// cifras de ventas siguen simuladas porque no existe módulo de ventas real.
package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/dulcehorno/panaderia-api/internal/application/dto"
	"github.com/dulcehorno/panaderia-api/internal/domain/repository"
)

// DashboardUseCase genera el resumen del dashboard y los reportes derivados
// del libro de movimientos.
type DashboardUseCase struct {
	reportRepo repository.ReportRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(reportRepo repository.ReportRepository) *DashboardUseCase {
	return &DashboardUseCase{reportRepo: reportRepo}
}

// GetSummary construye el DashboardSummaryDTO. Los contadores de inventario
// salen de la BD; ventas y pedidos son cifras fijas heredadas de la maqueta.
//
// Tres consultas en paralelo:
//  1. CountCriticalMaterials → alertas de inventario
//  2. CountActiveMaterials   → total de materias primas
//  3. CountMovementsSince    → movimientos de hoy
func (uc *DashboardUseCase) GetSummary(ctx context.Context) (*dto.DashboardSummaryDTO, error) {
	now := time.Now()
	todayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	type countResult struct {
		n   int
		err error
	}
	alertsCh := make(chan countResult, 1)
	totalCh := make(chan countResult, 1)
	movsCh := make(chan countResult, 1)

	go func() {
		n, err := uc.reportRepo.CountCriticalMaterials(ctx)
		alertsCh <- countResult{n, err}
	}()
	go func() {
		n, err := uc.reportRepo.CountActiveMaterials(ctx)
		totalCh <- countResult{n, err}
	}()
	go func() {
		n, err := uc.reportRepo.CountMovementsSince(ctx, todayStart)
		movsCh <- countResult{n, err}
	}()

	alerts := <-alertsCh
	total := <-totalCh
	movs := <-movsCh

	if alerts.err != nil {
		return nil, fmt.Errorf("dashboard: alertas de inventario: %w", alerts.err)
	}
	if total.err != nil {
		return nil, fmt.Errorf("dashboard: total de materias: %w", total.err)
	}
	if movs.err != nil {
		return nil, fmt.Errorf("dashboard: movimientos de hoy: %w", movs.err)
	}

	return &dto.DashboardSummaryDTO{
		TodaySales:      decimal.NewFromFloat(4250.00), // simulado
		SalesVariation:  decimal.NewFromInt(12),        // % vs día anterior, simulado
		PendingOrders:   8,                             // simulado
		InventoryAlerts: alerts.n,
		TotalMaterials:  total.n,
		TodayMovements:  movs.n,
	}, nil
}

// GetMermaReport agrega las mermas del libro por materia prima.
func (uc *DashboardUseCase) GetMermaReport(ctx context.Context) (*dto.MermaReportDTO, error) {
	rows, err := uc.reportRepo.MermaReport(ctx)
	if err != nil {
		return nil, fmt.Errorf("reporte de mermas: %w", err)
	}
	total := decimal.Zero
	detail := make([]dto.MermaDetailDTO, 0, len(rows))
	for _, r := range rows {
		total = total.Add(r.TotalMerma)
		detail = append(detail, dto.MermaDetailDTO{
			MaterialID:   r.MaterialID,
			MaterialName: r.MaterialName,
			Unit:         r.Unit,
			TotalMerma:   r.TotalMerma,
			Events:       r.Events,
		})
	}
	return &dto.MermaReportDTO{
		TotalMerma:        total.Round(2),
		MaterialsAffected: len(rows),
		Detail:            detail,
	}, nil
}

// GetUsageReport devuelve los insumos más usados (salidas acumuladas).
func (uc *DashboardUseCase) GetUsageReport(ctx context.Context, limit int) (*dto.UsageReportDTO, error) {
	if limit <= 0 {
		limit = 10
	}
	rows, err := uc.reportRepo.MostUsedMaterials(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("insumos más usados: %w", err)
	}
	materials := make([]dto.UsageRowDTO, 0, len(rows))
	for _, r := range rows {
		materials = append(materials, dto.UsageRowDTO{
			MaterialID:   r.MaterialID,
			MaterialName: r.MaterialName,
			Unit:         r.Unit,
			TotalUsed:    r.TotalUsed,
		})
	}
	return &dto.UsageReportDTO{TotalMaterials: len(materials), Materials: materials}, nil
}

// GetSalesReport devuelve las ventas de la semana por día.
// Datos simulados: no existe módulo de ventas.
func (uc *DashboardUseCase) GetSalesReport(_ context.Context) (*dto.SalesReportDTO, error) {
	days := []dto.DailySalesDTO{
		{Day: "lunes", Total: decimal.NewFromFloat(3850.00)},
		{Day: "martes", Total: decimal.NewFromFloat(4120.00)},
		{Day: "miércoles", Total: decimal.NewFromFloat(3975.00)},
		{Day: "jueves", Total: decimal.NewFromFloat(4480.00)},
		{Day: "viernes", Total: decimal.NewFromFloat(5230.00)},
		{Day: "sábado", Total: decimal.NewFromFloat(6150.00)},
		{Day: "domingo", Total: decimal.NewFromFloat(5890.00)},
	}
	total := decimal.Zero
	for _, d := range days {
		total = total.Add(d.Total)
	}
	return &dto.SalesReportDTO{WeekTotal: total, Days: days}, nil
}

// GetCostsReport devuelve el desglose de costos de operación.
// Datos simulados: requeriría contabilidad de costos reales.
func (uc *DashboardUseCase) GetCostsReport(_ context.Context) (*dto.CostsReportDTO, error) {
	items := []dto.CostItemDTO{
		{Concept: "Materia prima", Amount: decimal.NewFromFloat(12400.00)},
		{Concept: "Mano de obra", Amount: decimal.NewFromFloat(8600.00)},
		{Concept: "Servicios", Amount: decimal.NewFromFloat(2150.00)},
		{Concept: "Empaques", Amount: decimal.NewFromFloat(980.00)},
	}
	total := decimal.Zero
	for _, it := range items {
		total = total.Add(it.Amount)
	}
	return &dto.CostsReportDTO{TotalCosts: total, Items: items}, nil
}

// GetMarginReport devuelve el margen de ganancia por producto terminado.
// Datos simulados: requeriría catálogo de productos con costos y precios.
func (uc *DashboardUseCase) GetMarginReport(_ context.Context) (*dto.MarginReportDTO, error) {
	products := []dto.ProductMarginDTO{
		{Product: "Pan Francés", SalePrice: decimal.NewFromFloat(150.00), ProductionCost: decimal.NewFromFloat(85.00)},
		{Product: "Conchas", SalePrice: decimal.NewFromFloat(150.00), ProductionCost: decimal.NewFromFloat(92.00)},
		{Product: "Bolillos", SalePrice: decimal.NewFromFloat(60.00), ProductionCost: decimal.NewFromFloat(38.00)},
		{Product: "Donas", SalePrice: decimal.NewFromFloat(180.00), ProductionCost: decimal.NewFromFloat(105.00)},
	}
	hundred := decimal.NewFromInt(100)
	sum := decimal.Zero
	for i := range products {
		p := &products[i]
		p.GrossMargin = p.SalePrice.Sub(p.ProductionCost)
		p.MarginPct = p.GrossMargin.Div(p.SalePrice).Mul(hundred).Round(2)
		sum = sum.Add(p.MarginPct)
	}
	avg := sum.Div(decimal.NewFromInt(int64(len(products)))).Round(2)
	return &dto.MarginReportDTO{
		AverageMargin: avg,
		TotalProducts: len(products),
		Products:      products,
	}, nil
}
