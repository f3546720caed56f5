package inventory

import (
	"context"

	"github.com/dulcehorno/panaderia-api/internal/domain/entity"
	"github.com/dulcehorno/panaderia-api/internal/domain/repository"
)

// CriticalStockUseCase escanea el catálogo en busca de materias activas con
// cantidad <= mínimo. Lectura pura: puede correr en paralelo con el registro
// de movimientos y observar el estado pre o post de un commit concurrente
// (es una señal de alerta, no una guarda transaccional).
type CriticalStockUseCase struct {
	materialRepo repository.RawMaterialRepository
	cache        CriticalCache // opcional, puede ser nil
}

// NewCriticalStockUseCase construye el escáner.
func NewCriticalStockUseCase(materialRepo repository.RawMaterialRepository, cache CriticalCache) *CriticalStockUseCase {
	return &CriticalStockUseCase{materialRepo: materialRepo, cache: cache}
}

// ListCritical devuelve las materias en stock crítico. Cache-aside: si hay
// cache y tiene una entrada fresca se devuelve; si no, consulta la BD y
// repuebla el cache.
func (uc *CriticalStockUseCase) ListCritical(ctx context.Context) ([]*entity.RawMaterial, error) {
	if uc.cache != nil {
		if materials, ok := uc.cache.Get(ctx); ok {
			return materials, nil
		}
	}
	materials, err := uc.materialRepo.ListCritical(ctx)
	if err != nil {
		return nil, err
	}
	if uc.cache != nil {
		_ = uc.cache.Set(ctx, materials)
	}
	return materials, nil
}
