package domain

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// Errores de dominio (sin dependencias de infraestructura).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el correo ya está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrInsufficientStock  = errors.New("stock insuficiente")
	ErrBusy               = errors.New("inventario ocupado, reintente")
)

// InsufficientStockError detalla un rechazo por stock insuficiente: cuánto hay
// disponible y cuánto se solicitó. Compatible con errors.Is(err, ErrInsufficientStock)
// para no romper los chequeos por sentinel.
type InsufficientStockError struct {
	Available decimal.Decimal
	Requested decimal.Decimal
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("stock insuficiente: disponible %s, solicitado %s", e.Available, e.Requested)
}

// Is permite que errors.Is trate este error como ErrInsufficientStock.
func (e *InsufficientStockError) Is(target error) bool {
	return target == ErrInsufficientStock
}
