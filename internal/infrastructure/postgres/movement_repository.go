package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/dulcehorno/panaderia-api/internal/domain/entity"
	"github.com/dulcehorno/panaderia-api/internal/domain/repository"
)

var _ repository.MovementRepository = (*MovementRepo)(nil)

// MovementRepo implementación de MovementRepository sobre PostgreSQL (usable
// con pool o tx). El libro es append-only: este adaptador no expone UPDATE ni
// DELETE sobre movements, a propósito.
type MovementRepo struct {
	q Querier
}

// NewMovementRepository construye el adaptador. Pasar pool o tx (Querier).
func NewMovementRepository(q Querier) *MovementRepo {
	return &MovementRepo{q: q}
}

// Create persiste un movimiento del libro.
func (r *MovementRepo) Create(ctx context.Context, m *entity.Movement) error {
	if m.ID == "" {
		m.ID = uuid.New().String()
	}
	query := `
		INSERT INTO movements (id, material_id, type, quantity, reason, user_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	reason := (*string)(nil)
	if m.Reason != "" {
		reason = &m.Reason
	}
	userID := (*string)(nil)
	if m.UserID != "" {
		userID = &m.UserID
	}
	_, err := r.q.Exec(ctx, query,
		m.ID, m.MaterialID, m.Type, m.Quantity, reason, userID, m.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("create movement: %w", err)
	}
	return nil
}

// GetByID obtiene un movimiento por id.
func (r *MovementRepo) GetByID(ctx context.Context, id string) (*entity.Movement, error) {
	query := `
		SELECT id, material_id, type, quantity, reason, user_id, created_at
		FROM movements WHERE id = $1`
	m, err := scanMovement(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get movement: %w", err)
	}
	return m, nil
}

// List lista movimientos con filtros opcionales, más recientes primero.
func (r *MovementRepo) List(ctx context.Context, f repository.MovementFilter) ([]*entity.Movement, error) {
	query := `
		SELECT id, material_id, type, quantity, reason, user_id, created_at
		FROM movements WHERE 1=1`
	args := []any{}
	pos := 1
	if f.MaterialID != "" {
		query += fmt.Sprintf(" AND material_id = $%d", pos)
		args = append(args, f.MaterialID)
		pos++
	}
	if f.Type != "" {
		query += fmt.Sprintf(" AND type = $%d", pos)
		args = append(args, f.Type)
		pos++
	}
	if f.From != nil {
		query += fmt.Sprintf(" AND created_at >= $%d", pos)
		args = append(args, *f.From)
		pos++
	}
	if f.To != nil {
		query += fmt.Sprintf(" AND created_at <= $%d", pos)
		args = append(args, *f.To)
		pos++
	}
	query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d", pos, pos+1)
	args = append(args, f.Limit, f.Offset)

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list movements: %w", err)
	}
	defer rows.Close()
	var list []*entity.Movement
	for rows.Next() {
		m, err := scanMovement(rows)
		if err != nil {
			return nil, fmt.Errorf("scan movement: %w", err)
		}
		list = append(list, m)
	}
	return list, rows.Err()
}

func scanMovement(row pgx.Row) (*entity.Movement, error) {
	var m entity.Movement
	var reason, userID *string
	err := row.Scan(&m.ID, &m.MaterialID, &m.Type, &m.Quantity, &reason, &userID, &m.CreatedAt)
	if err != nil {
		return nil, err
	}
	if reason != nil {
		m.Reason = *reason
	}
	if userID != nil {
		m.UserID = *userID
	}
	return &m, nil
}
