package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/dulcehorno/panaderia-api/internal/application/analytics"
)

// DashboardHandler maneja las peticiones HTTP del dashboard y los reportes.
type DashboardHandler struct {
	uc *analytics.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *analytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// Summary godoc
// @Summary      Resumen del dashboard
// @Description  Contadores de inventario calculados del libro de movimientos;
//
//	ventas y pedidos son cifras simuladas.
//
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.DashboardSummaryDTO
// @Router       /api/dashboard/summary [get]
func (h *DashboardHandler) Summary(c *fiber.Ctx) error {
	out, err := h.uc.GetSummary(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// MermaReport godoc
// @Summary      Reporte de mermas
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.MermaReportDTO
// @Router       /api/dashboard/reportes/mermas [get]
func (h *DashboardHandler) MermaReport(c *fiber.Ctx) error {
	out, err := h.uc.GetMermaReport(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// UsageReport godoc
// @Summary      Insumos más usados
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Param        limit  query  int  false  "Máximo de insumos (10 por defecto)"
// @Success      200  {object}  dto.UsageReportDTO
// @Router       /api/dashboard/reportes/insumos [get]
func (h *DashboardHandler) UsageReport(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 10)
	out, err := h.uc.GetUsageReport(c.Context(), limit)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// SalesReport godoc
// @Summary      Ventas de la semana
// @Description  Cifras simuladas: no existe módulo de ventas.
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.SalesReportDTO
// @Router       /api/dashboard/reportes/ventas [get]
func (h *DashboardHandler) SalesReport(c *fiber.Ctx) error {
	out, err := h.uc.GetSalesReport(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// CostsReport godoc
// @Summary      Desglose de costos
// @Description  Cifras simuladas: no existe contabilidad de costos reales.
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.CostsReportDTO
// @Router       /api/dashboard/reportes/costos [get]
func (h *DashboardHandler) CostsReport(c *fiber.Ctx) error {
	out, err := h.uc.GetCostsReport(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// MarginReport godoc
// @Summary      Margen de ganancia por producto
// @Description  Cifras simuladas: no existe catálogo de productos terminados con
//
//	costos reales.
//
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.MarginReportDTO
// @Router       /api/dashboard/reportes/margen [get]
func (h *DashboardHandler) MarginReport(c *fiber.Ctx) error {
	out, err := h.uc.GetMarginReport(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
