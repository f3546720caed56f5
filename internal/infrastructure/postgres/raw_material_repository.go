package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/dulcehorno/panaderia-api/internal/domain"
	"github.com/dulcehorno/panaderia-api/internal/domain/entity"
	"github.com/dulcehorno/panaderia-api/internal/domain/repository"
)

var _ repository.RawMaterialRepository = (*RawMaterialRepo)(nil)

const materialColumns = `id, name, unit, quantity, minimum, supplier, expiration_date, active, created_at, updated_at`

// RawMaterialRepo implementación de RawMaterialRepository sobre PostgreSQL
// (usable con pool o tx).
type RawMaterialRepo struct {
	q Querier
}

// NewRawMaterialRepository construye el adaptador. Pasar pool o tx (Querier).
func NewRawMaterialRepository(q Querier) *RawMaterialRepo {
	return &RawMaterialRepo{q: q}
}

func scanMaterial(row pgx.Row) (*entity.RawMaterial, error) {
	var m entity.RawMaterial
	err := row.Scan(
		&m.ID, &m.Name, &m.Unit, &m.Quantity, &m.Minimum,
		&m.Supplier, &m.ExpirationDate, &m.Active, &m.CreatedAt, &m.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// Create persiste una materia prima nueva.
func (r *RawMaterialRepo) Create(ctx context.Context, m *entity.RawMaterial) error {
	query := `
		INSERT INTO raw_materials (id, name, unit, quantity, minimum, supplier, expiration_date, active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(ctx, query,
		m.ID, m.Name, m.Unit, m.Quantity, m.Minimum,
		m.Supplier, m.ExpirationDate, m.Active, m.CreatedAt, m.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert raw material: %w", err)
	}
	return nil
}

// GetByID obtiene una materia prima por id.
func (r *RawMaterialRepo) GetByID(ctx context.Context, id string) (*entity.RawMaterial, error) {
	query := `SELECT ` + materialColumns + ` FROM raw_materials WHERE id = $1`
	m, err := scanMaterial(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get raw material: %w", err)
	}
	return m, nil
}

// GetForUpdate obtiene la materia y bloquea su fila (SELECT FOR UPDATE).
// Solo tiene sentido dentro de una transacción del TxRunner.
func (r *RawMaterialRepo) GetForUpdate(ctx context.Context, id string) (*entity.RawMaterial, error) {
	query := `SELECT ` + materialColumns + ` FROM raw_materials WHERE id = $1 FOR UPDATE`
	m, err := scanMaterial(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get raw material for update: %w", err)
	}
	return m, nil
}

// Update actualiza los campos editables. No toca quantity: eso es exclusivo de
// UpdateQuantity dentro de la tx del motor de movimientos.
func (r *RawMaterialRepo) Update(ctx context.Context, m *entity.RawMaterial) error {
	query := `
		UPDATE raw_materials
		SET name = $2, unit = $3, minimum = $4, supplier = $5, expiration_date = $6, active = $7, updated_at = $8
		WHERE id = $1`
	cmd, err := r.q.Exec(ctx, query,
		m.ID, m.Name, m.Unit, m.Minimum, m.Supplier, m.ExpirationDate, m.Active, m.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update raw material: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// UpdateQuantity fija la cantidad materializada de la materia.
func (r *RawMaterialRepo) UpdateQuantity(ctx context.Context, id string, quantity decimal.Decimal) error {
	cmd, err := r.q.Exec(ctx,
		`UPDATE raw_materials SET quantity = $2, updated_at = now() WHERE id = $1`,
		id, quantity,
	)
	if err != nil {
		return fmt.Errorf("update raw material quantity: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Deactivate marca la materia como inactiva (soft delete).
func (r *RawMaterialRepo) Deactivate(ctx context.Context, id string) error {
	cmd, err := r.q.Exec(ctx,
		`UPDATE raw_materials SET active = FALSE, updated_at = now() WHERE id = $1`,
		id,
	)
	if err != nil {
		return fmt.Errorf("deactivate raw material: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List lista materias primas ordenadas por nombre, con filtro opcional de activo.
func (r *RawMaterialRepo) List(ctx context.Context, active *bool, limit, offset int) ([]*entity.RawMaterial, error) {
	query := `SELECT ` + materialColumns + ` FROM raw_materials`
	args := []any{}
	if active != nil {
		query += ` WHERE active = $1`
		args = append(args, *active)
	}
	query += fmt.Sprintf(` ORDER BY name ASC LIMIT $%d OFFSET $%d`, len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list raw materials: %w", err)
	}
	defer rows.Close()
	var list []*entity.RawMaterial
	for rows.Next() {
		m, err := scanMaterial(rows)
		if err != nil {
			return nil, fmt.Errorf("scan raw material: %w", err)
		}
		list = append(list, m)
	}
	return list, rows.Err()
}

// Count cuenta materias primas con el mismo filtro de List.
func (r *RawMaterialRepo) Count(ctx context.Context, active *bool) (int, error) {
	query := `SELECT COUNT(*) FROM raw_materials`
	args := []any{}
	if active != nil {
		query += ` WHERE active = $1`
		args = append(args, *active)
	}
	var n int
	if err := r.q.QueryRow(ctx, query, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("count raw materials: %w", err)
	}
	return n, nil
}

// ListCritical devuelve las materias activas con cantidad <= mínimo.
func (r *RawMaterialRepo) ListCritical(ctx context.Context) ([]*entity.RawMaterial, error) {
	query := `SELECT ` + materialColumns + `
		FROM raw_materials
		WHERE active = TRUE AND quantity <= minimum
		ORDER BY quantity - minimum ASC`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list critical raw materials: %w", err)
	}
	defer rows.Close()
	var list []*entity.RawMaterial
	for rows.Next() {
		m, err := scanMaterial(rows)
		if err != nil {
			return nil, fmt.Errorf("scan critical raw material: %w", err)
		}
		list = append(list, m)
	}
	return list, rows.Err()
}
