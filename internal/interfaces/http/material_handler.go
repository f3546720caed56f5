package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/dulcehorno/panaderia-api/internal/application/dto"
	"github.com/dulcehorno/panaderia-api/internal/application/inventory"
	"github.com/dulcehorno/panaderia-api/internal/application/usecase"
)

// MaterialHandler maneja las peticiones HTTP del catálogo de materias primas.
type MaterialHandler struct {
	uc       *usecase.MaterialUseCase
	critical *inventory.CriticalStockUseCase
}

// NewMaterialHandler construye el handler.
func NewMaterialHandler(uc *usecase.MaterialUseCase, critical *inventory.CriticalStockUseCase) *MaterialHandler {
	return &MaterialHandler{uc: uc, critical: critical}
}

// Create godoc
// @Summary      Crear materia prima
// @Tags         materias-primas
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateMaterialRequest  true  "nombre, unidad, cantidad_disponible, minimo"
// @Success      201   {object}  dto.MaterialResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/inventory/materias-primas [post]
func (h *MaterialHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateMaterialRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar materias primas
// @Tags         materias-primas
// @Security     Bearer
// @Produce      json
// @Param        activo  query  string  false  "true (defecto), false o all"
// @Param        page    query  int     false  "Página"
// @Param        limit   query  int     false  "Tamaño de página"
// @Success      200  {array}   dto.MaterialResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/inventory/materias-primas [get]
func (h *MaterialHandler) List(c *fiber.Ctx) error {
	var q dto.MaterialListQuery
	if err := c.QueryParser(&q); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros inválidos"})
	}
	materials, total, err := h.uc.List(c.Context(), q)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"materias_primas": materials,
		"pagina":          dto.PageResponse{Page: q.Page, Limit: q.Limit, Total: total},
	})
}

// ListCritical godoc
// @Summary      Materias primas en stock crítico
// @Description  Materias activas con cantidad disponible en o por debajo del mínimo,
//
//	ordenadas por urgencia (déficit mayor primero).
//
// @Tags         materias-primas
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.MaterialResponse
// @Router       /api/inventory/materias-primas/criticas [get]
func (h *MaterialHandler) ListCritical(c *fiber.Ctx) error {
	materials, err := h.critical.ListCritical(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	out := make([]dto.MaterialResponse, 0, len(materials))
	for _, m := range materials {
		out = append(out, *dto.ToMaterialResponse(m))
	}
	return c.JSON(fiber.Map{"total": len(out), "materias_primas": out})
}

// GetByID godoc
// @Summary      Obtener materia prima por id
// @Tags         materias-primas
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID de la materia prima"
// @Success      200  {object}  dto.MaterialResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/inventory/materias-primas/{id} [get]
func (h *MaterialHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar materia prima
// @Description  Modifica los campos editables del catálogo. La cantidad disponible
//
//	no es editable por esta vía: solo cambia registrando movimientos.
//
// @Tags         materias-primas
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                     true  "ID de la materia prima"
// @Param        body  body  dto.UpdateMaterialRequest  true  "campos editables"
// @Success      200   {object}  dto.MaterialResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/inventory/materias-primas/{id} [put]
func (h *MaterialHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateMaterialRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(c.Context(), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Deactivate godoc
// @Summary      Desactivar materia prima
// @Description  Soft delete: la materia deja de aparecer en listados activos pero
//
//	sus movimientos históricos se conservan.
//
// @Tags         materias-primas
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID de la materia prima"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/inventory/materias-primas/{id} [delete]
func (h *MaterialHandler) Deactivate(c *fiber.Ctx) error {
	if err := h.uc.Deactivate(c.Context(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "materia prima desactivada"})
}
