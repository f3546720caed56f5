package repository

import (
	"context"
	"time"

	"github.com/dulcehorno/panaderia-api/internal/domain/entity"
)

// MovementFilter filtros opcionales para el historial de movimientos.
// From y To son inclusivos.
type MovementFilter struct {
	MaterialID string
	Type       string
	From       *time.Time
	To         *time.Time
	Limit      int
	Offset     int
}

// MovementRepository define el puerto de persistencia para el libro de
// movimientos. Es append-only: no hay Update ni Delete por diseño del dominio.
type MovementRepository interface {
	Create(ctx context.Context, movement *entity.Movement) error
	GetByID(ctx context.Context, id string) (*entity.Movement, error)
	// List devuelve movimientos ordenados por fecha descendente.
	List(ctx context.Context, filter MovementFilter) ([]*entity.Movement, error)
}
