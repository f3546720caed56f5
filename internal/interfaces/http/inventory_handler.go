package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/dulcehorno/panaderia-api/internal/application/dto"
	"github.com/dulcehorno/panaderia-api/internal/application/inventory"
	"github.com/dulcehorno/panaderia-api/internal/domain/entity"
	"github.com/dulcehorno/panaderia-api/internal/domain/repository"
)

// InventoryHandler maneja las peticiones HTTP de movimientos de inventario y
// reabastecimiento (protegido).
type InventoryHandler struct {
	uc *inventory.RegisterMovementUseCase
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(uc *inventory.RegisterMovementUseCase) *InventoryHandler {
	return &InventoryHandler{uc: uc}
}

func toMovementResponse(m *entity.Movement) dto.MovementResponse {
	return dto.MovementResponse{
		ID:         m.ID,
		MaterialID: m.MaterialID,
		Type:       m.Type,
		Quantity:   m.Quantity,
		Reason:     m.Reason,
		UserID:     m.UserID,
		CreatedAt:  m.CreatedAt,
	}
}

// RegisterMovement godoc
// @Summary      Registrar movimiento de inventario
// @Description  Aplica un movimiento (entrada, salida o merma) sobre una materia
//
//	prima de forma atómica: el stock y el registro del movimiento se
//	confirman juntos o no se confirma ninguno.
//
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterMovementRequest  true  "id_materia_prima, tipo_movimiento, cantidad, motivo"
// @Success      201   {object}  dto.RegisterMovementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Failure      503   {object}  dto.ErrorResponse
// @Router       /api/inventory/movimientos [post]
func (h *InventoryHandler) RegisterMovement(c *fiber.Ctx) error {
	var in dto.RegisterMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	result, err := h.uc.RegisterMovement(c.Context(), inventory.MovementInputDTO{
		MaterialID: in.MaterialID,
		Type:       in.Type,
		Quantity:   in.Quantity,
		Reason:     in.Reason,
		UserID:     GetUserID(c),
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.RegisterMovementResponse{
		Movement: toMovementResponse(result.Movement),
		Stock:    result.NewStock,
	})
}

// Restock godoc
// @Summary      Reabastecer materia prima
// @Description  Suma la cantidad indicada al stock registrando un movimiento de
//
//	entrada con motivo "reabastecimiento", de modo que el historial
//	siga explicando el stock actual.
//
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string              true  "ID de la materia prima"
// @Param        body  body  dto.RestockRequest  true  "cantidad_disponible a sumar"
// @Success      200   {object}  dto.RegisterMovementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/inventory/materias-primas/reabastecer/{id} [put]
func (h *InventoryHandler) Restock(c *fiber.Ctx) error {
	var in dto.RestockRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	result, err := h.uc.Restock(c.Context(), c.Params("id"), in.Quantity, GetUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.RegisterMovementResponse{
		Movement: toMovementResponse(result.Movement),
		Stock:    result.NewStock,
	})
}

// History godoc
// @Summary      Historial de movimientos
// @Description  Movimientos del libro, más recientes primero, con filtros por
//
//	materia prima, tipo y rango de fechas (inclusivo).
//
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        id_materia_prima  query  string  false  "Filtrar por materia prima"
// @Param        tipo_movimiento   query  string  false  "entrada, salida o merma"
// @Param        fecha_inicio      query  string  false  "YYYY-MM-DD"
// @Param        fecha_fin         query  string  false  "YYYY-MM-DD"
// @Param        page              query  int     false  "Página"
// @Param        limit             query  int     false  "Tamaño de página"
// @Success      200  {array}   dto.MovementResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/inventory/movimientos [get]
func (h *InventoryHandler) History(c *fiber.Ctx) error {
	var q dto.MovementHistoryQuery
	if err := c.QueryParser(&q); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros inválidos"})
	}
	q.DefaultPage()

	filter := repository.MovementFilter{
		MaterialID: q.MaterialID,
		Type:       q.Type,
		Limit:      q.Limit,
		Offset:     q.Offset(),
	}
	if q.From != "" {
		t, err := time.ParseInLocation("2006-01-02", q.From, time.Local)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "fecha_inicio inválida"})
		}
		filter.From = &t
	}
	if q.To != "" {
		t, err := time.ParseInLocation("2006-01-02", q.To, time.Local)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "fecha_fin inválida"})
		}
		// inclusivo: hasta el final del día
		end := t.Add(24*time.Hour - time.Nanosecond)
		filter.To = &end
	}

	movements, err := h.uc.History(c.Context(), filter)
	if err != nil {
		return respondError(c, err)
	}
	out := make([]dto.MovementResponse, 0, len(movements))
	for _, m := range movements {
		out = append(out, toMovementResponse(m))
	}
	return c.JSON(fiber.Map{
		"total":       len(out),
		"movimientos": out,
		"pagina":      dto.PageResponse{Page: q.Page, Limit: q.Limit},
	})
}
