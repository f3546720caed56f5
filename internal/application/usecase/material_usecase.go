package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dulcehorno/panaderia-api/internal/application/dto"
	"github.com/dulcehorno/panaderia-api/internal/domain"
	"github.com/dulcehorno/panaderia-api/internal/domain/entity"
	"github.com/dulcehorno/panaderia-api/internal/domain/repository"
)

// MaterialUseCase CRUD del catálogo de materias primas. La cantidad disponible
// solo se fija aquí en la creación; después cambia exclusivamente a través del
// motor de movimientos.
type MaterialUseCase struct {
	materialRepo repository.RawMaterialRepository
}

// NewMaterialUseCase construye el caso de uso.
func NewMaterialUseCase(materialRepo repository.RawMaterialRepository) *MaterialUseCase {
	return &MaterialUseCase{materialRepo: materialRepo}
}

// Create registra una materia prima nueva. Nombre y unidad son obligatorios;
// la cantidad inicial y el mínimo no pueden ser negativos.
func (uc *MaterialUseCase) Create(ctx context.Context, in dto.CreateMaterialRequest) (*dto.MaterialResponse, error) {
	name := strings.TrimSpace(in.Name)
	unit := strings.TrimSpace(in.Unit)
	if name == "" || unit == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Quantity.IsNegative() || in.Minimum.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	material := &entity.RawMaterial{
		ID:             uuid.New().String(),
		Name:           name,
		Unit:           unit,
		Quantity:       in.Quantity,
		Minimum:        in.Minimum,
		Supplier:       in.Supplier,
		ExpirationDate: in.ExpirationDate,
		Active:         true,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := uc.materialRepo.Create(ctx, material); err != nil {
		return nil, err
	}
	return dto.ToMaterialResponse(material), nil
}

// GetByID obtiene una materia prima por id.
func (uc *MaterialUseCase) GetByID(ctx context.Context, id string) (*dto.MaterialResponse, error) {
	material, err := uc.materialRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if material == nil {
		return nil, domain.ErrNotFound
	}
	return dto.ToMaterialResponse(material), nil
}

// List lista materias primas con filtro de activo ("true", "false", "all") y
// paginación; devuelve también el total para los metadatos de página.
func (uc *MaterialUseCase) List(ctx context.Context, q dto.MaterialListQuery) ([]dto.MaterialResponse, int, error) {
	q.DefaultPage()
	var active *bool
	switch q.Active {
	case "", "true":
		v := true
		active = &v
	case "false":
		v := false
		active = &v
	case "all":
		// sin filtro
	default:
		return nil, 0, domain.ErrInvalidInput
	}
	materials, err := uc.materialRepo.List(ctx, active, q.Limit, q.Offset())
	if err != nil {
		return nil, 0, err
	}
	total, err := uc.materialRepo.Count(ctx, active)
	if err != nil {
		return nil, 0, err
	}
	out := make([]dto.MaterialResponse, 0, len(materials))
	for _, m := range materials {
		out = append(out, *dto.ToMaterialResponse(m))
	}
	return out, total, nil
}

// Update modifica los campos editables. La cantidad disponible queda fuera a
// propósito: solo cambia vía movimientos.
func (uc *MaterialUseCase) Update(ctx context.Context, id string, in dto.UpdateMaterialRequest) (*dto.MaterialResponse, error) {
	name := strings.TrimSpace(in.Name)
	unit := strings.TrimSpace(in.Unit)
	if name == "" || unit == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Minimum.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	material, err := uc.materialRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if material == nil {
		return nil, domain.ErrNotFound
	}
	material.Name = name
	material.Unit = unit
	material.Minimum = in.Minimum
	material.Supplier = in.Supplier
	material.ExpirationDate = in.ExpirationDate
	if in.Active != nil {
		material.Active = *in.Active
	}
	material.UpdatedAt = time.Now()
	if err := uc.materialRepo.Update(ctx, material); err != nil {
		return nil, err
	}
	return dto.ToMaterialResponse(material), nil
}

// Deactivate marca la materia como inactiva (soft delete). Los movimientos
// históricos siguen referenciándola; nunca se borra físicamente.
func (uc *MaterialUseCase) Deactivate(ctx context.Context, id string) error {
	material, err := uc.materialRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if material == nil {
		return domain.ErrNotFound
	}
	return uc.materialRepo.Deactivate(ctx, id)
}
