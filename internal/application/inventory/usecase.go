package inventory

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/dulcehorno/panaderia-api/internal/domain"
	"github.com/dulcehorno/panaderia-api/internal/domain/entity"
	"github.com/dulcehorno/panaderia-api/internal/domain/repository"
)

// RegisterMovementUseCase registra movimientos de inventario (entrada, salida,
// merma) de forma transaccional: bloqueo de fila (SELECT FOR UPDATE), update de
// cantidad e insert del movimiento en el mismo Commit. La serialización por
// materia la da el lock de fila: movimientos sobre materias distintas nunca se
// bloquean entre sí.
type RegisterMovementUseCase struct {
	txRunner     TxRunner
	movementRepo repository.MovementRepository // lecturas fuera de tx
	cache        CriticalCache                 // opcional, puede ser nil
}

// NewRegisterMovementUseCase construye el caso de uso.
func NewRegisterMovementUseCase(txRunner TxRunner, movementRepo repository.MovementRepository, cache CriticalCache) *RegisterMovementUseCase {
	return &RegisterMovementUseCase{txRunner: txRunner, movementRepo: movementRepo, cache: cache}
}

// MovementInputDTO entrada para registrar un movimiento.
type MovementInputDTO struct {
	MaterialID string
	Type       string // entrada, salida, merma
	Quantity   decimal.Decimal
	Reason     string
	UserID     string // actor autenticado, opcional
}

// MovementResult movimiento creado más el stock resultante, para que el caller
// reporte ambos sin una segunda lectura que corra contra otros escritores.
type MovementResult struct {
	Movement *entity.Movement
	NewStock decimal.Decimal
}

// RegisterMovement valida la entrada y ejecuta la aplicación atómica:
// bloquea la fila de la materia, verifica existencia/activa y suficiencia de
// stock para salida/merma, actualiza la cantidad e inserta el movimiento.
// Todo o nada: si algo falla la tx se deshace y no queda estado parcial.
func (uc *RegisterMovementUseCase) RegisterMovement(ctx context.Context, input MovementInputDTO) (*MovementResult, error) {
	if input.MaterialID == "" || !entity.ValidMovementType(input.Type) {
		return nil, domain.ErrInvalidInput
	}
	if !input.Quantity.GreaterThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}

	var result MovementResult
	err := uc.txRunner.Run(ctx, func(
		materialRepo repository.RawMaterialRepository,
		movementRepo repository.MovementRepository,
	) error {
		// Bloquea la fila de la materia: a partir de aquí ningún otro
		// movimiento sobre esta materia puede leer-verificar-escribir.
		material, err := materialRepo.GetForUpdate(ctx, input.MaterialID)
		if err != nil {
			return err
		}
		if material == nil || !material.Active {
			return domain.ErrNotFound
		}

		delta := input.Quantity
		if input.Type == entity.MovementSalida || input.Type == entity.MovementMerma {
			if material.Quantity.LessThan(input.Quantity) {
				return &domain.InsufficientStockError{
					Available: material.Quantity,
					Requested: input.Quantity,
				}
			}
			delta = delta.Neg()
		}

		newStock := material.Quantity.Add(delta)
		if err := materialRepo.UpdateQuantity(ctx, material.ID, newStock); err != nil {
			return err
		}

		movement := &entity.Movement{
			ID:         uuid.New().String(),
			MaterialID: material.ID,
			Type:       input.Type,
			Quantity:   input.Quantity,
			Reason:     input.Reason,
			UserID:     input.UserID,
			CreatedAt:  time.Now(),
		}
		if err := movementRepo.Create(ctx, movement); err != nil {
			return err
		}

		result = MovementResult{Movement: movement, NewStock: newStock}
		return nil
	})
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
			return nil, domain.ErrBusy
		}
		return nil, err
	}

	// Tras el commit la lista de críticos pudo cambiar; invalidar el cache.
	// Best effort: un fallo de cache no deshace un movimiento ya confirmado.
	if uc.cache != nil {
		_ = uc.cache.Invalidate(ctx)
	}
	return &result, nil
}

// Restock reabastece una materia. Se modela como un movimiento de entrada para
// que la reconstrucción del stock desde el libro siga cuadrando; el camino del
// sistema original que sumaba cantidad sin dejar rastro rompía esa invariante.
func (uc *RegisterMovementUseCase) Restock(ctx context.Context, materialID string, quantity decimal.Decimal, userID string) (*MovementResult, error) {
	return uc.RegisterMovement(ctx, MovementInputDTO{
		MaterialID: materialID,
		Type:       entity.MovementEntrada,
		Quantity:   quantity,
		Reason:     "reabastecimiento",
		UserID:     userID,
	})
}

// History devuelve el historial de movimientos, más recientes primero.
// Lectura pura sobre un snapshot de la BD; no serializa con los escritores.
func (uc *RegisterMovementUseCase) History(ctx context.Context, filter repository.MovementFilter) ([]*entity.Movement, error) {
	if filter.Type != "" && !entity.ValidMovementType(filter.Type) {
		return nil, domain.ErrInvalidInput
	}
	if filter.Limit <= 0 {
		filter.Limit = 50
	}
	if filter.Offset < 0 {
		filter.Offset = 0
	}
	return uc.movementRepo.List(ctx, filter)
}
