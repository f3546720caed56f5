package inventory_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appinv "github.com/dulcehorno/panaderia-api/internal/application/inventory"
	"github.com/dulcehorno/panaderia-api/internal/domain"
	"github.com/dulcehorno/panaderia-api/internal/domain/entity"
	"github.com/dulcehorno/panaderia-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
//
// memStore emula la BD: catálogo de materias + libro de movimientos. memTxRunner
// reproduce la semántica del TxRunner de postgres: lock de fila por materia
// (GetForUpdate), cambios en staging y commit/rollback todo-o-nada.
// ──────────────────────────────────────────────────────────────────────────────

type memStore struct {
	mu        sync.Mutex
	materials map[string]*entity.RawMaterial
	movements []*entity.Movement
	rowLocks  map[string]*sync.Mutex
}

func newMemStore() *memStore {
	return &memStore{
		materials: make(map[string]*entity.RawMaterial),
		rowLocks:  make(map[string]*sync.Mutex),
	}
}

func (s *memStore) addMaterial(m *entity.RawMaterial) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *m
	s.materials[m.ID] = &cp
	s.rowLocks[m.ID] = &sync.Mutex{}
}

func (s *memStore) quantityOf(t *testing.T, id string) decimal.Decimal {
	t.Helper()
	s.mu.Lock()
	defer s.mu.Unlock()
	m, ok := s.materials[id]
	require.True(t, ok, "la materia %s debe existir", id)
	return m.Quantity
}

func (s *memStore) movementCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.movements)
}

// memTx acumula cambios en staging hasta el commit y sostiene los locks de fila.
type memTx struct {
	store     *memStore
	stagedQty map[string]decimal.Decimal
	stagedMov []*entity.Movement
	locked    []string
}

func (tx *memTx) lockRow(id string) {
	tx.store.mu.Lock()
	lock, ok := tx.store.rowLocks[id]
	tx.store.mu.Unlock()
	if !ok {
		return // materia inexistente: no hay fila que bloquear
	}
	lock.Lock()
	tx.locked = append(tx.locked, id)
}

func (tx *memTx) releaseLocks() {
	for _, id := range tx.locked {
		tx.store.mu.Lock()
		lock := tx.store.rowLocks[id]
		tx.store.mu.Unlock()
		lock.Unlock()
	}
	tx.locked = nil
}

func (tx *memTx) commit() {
	tx.store.mu.Lock()
	for id, qty := range tx.stagedQty {
		if m, ok := tx.store.materials[id]; ok {
			m.Quantity = qty
			m.UpdatedAt = time.Now()
		}
	}
	tx.store.movements = append(tx.store.movements, tx.stagedMov...)
	tx.store.mu.Unlock()
}

// memMaterialRepo implementa repository.RawMaterialRepository. Con tx != nil
// opera sobre el staging de esa transacción.
type memMaterialRepo struct {
	store *memStore
	tx    *memTx
}

func (r *memMaterialRepo) Create(_ context.Context, m *entity.RawMaterial) error {
	r.store.addMaterial(m)
	return nil
}

func (r *memMaterialRepo) GetByID(_ context.Context, id string) (*entity.RawMaterial, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	m, ok := r.store.materials[id]
	if !ok {
		return nil, nil
	}
	cp := *m
	return &cp, nil
}

func (r *memMaterialRepo) GetForUpdate(ctx context.Context, id string) (*entity.RawMaterial, error) {
	if r.tx != nil {
		r.tx.lockRow(id)
	}
	return r.GetByID(ctx, id)
}

func (r *memMaterialRepo) Update(_ context.Context, m *entity.RawMaterial) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	existing, ok := r.store.materials[m.ID]
	if !ok {
		return domain.ErrNotFound
	}
	qty := existing.Quantity
	cp := *m
	cp.Quantity = qty // Update nunca toca la cantidad
	r.store.materials[m.ID] = &cp
	return nil
}

func (r *memMaterialRepo) UpdateQuantity(_ context.Context, id string, qty decimal.Decimal) error {
	if r.tx != nil {
		r.tx.stagedQty[id] = qty
		return nil
	}
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	m, ok := r.store.materials[id]
	if !ok {
		return domain.ErrNotFound
	}
	m.Quantity = qty
	return nil
}

func (r *memMaterialRepo) Deactivate(_ context.Context, id string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	m, ok := r.store.materials[id]
	if !ok {
		return domain.ErrNotFound
	}
	m.Active = false
	return nil
}

func (r *memMaterialRepo) List(_ context.Context, active *bool, limit, offset int) ([]*entity.RawMaterial, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var out []*entity.RawMaterial
	for _, m := range r.store.materials {
		if active != nil && m.Active != *active {
			continue
		}
		cp := *m
		out = append(out, &cp)
	}
	return out, nil
}

func (r *memMaterialRepo) Count(ctx context.Context, active *bool) (int, error) {
	list, _ := r.List(ctx, active, 0, 0)
	return len(list), nil
}

func (r *memMaterialRepo) ListCritical(_ context.Context) ([]*entity.RawMaterial, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var out []*entity.RawMaterial
	for _, m := range r.store.materials {
		if m.Active && m.IsCritical() {
			cp := *m
			out = append(out, &cp)
		}
	}
	return out, nil
}

// memMovementRepo implementa repository.MovementRepository.
type memMovementRepo struct {
	store *memStore
	tx    *memTx
}

func (r *memMovementRepo) Create(_ context.Context, m *entity.Movement) error {
	if r.tx != nil {
		cp := *m
		r.tx.stagedMov = append(r.tx.stagedMov, &cp)
		return nil
	}
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	cp := *m
	r.store.movements = append(r.store.movements, &cp)
	return nil
}

func (r *memMovementRepo) GetByID(_ context.Context, id string) (*entity.Movement, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, m := range r.store.movements {
		if m.ID == id {
			cp := *m
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memMovementRepo) List(_ context.Context, f repository.MovementFilter) ([]*entity.Movement, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	// Orden de inserción = orden cronológico; se recorre al revés (DESC).
	var out []*entity.Movement
	for i := len(r.store.movements) - 1; i >= 0; i-- {
		m := r.store.movements[i]
		if f.MaterialID != "" && m.MaterialID != f.MaterialID {
			continue
		}
		if f.Type != "" && m.Type != f.Type {
			continue
		}
		if f.From != nil && m.CreatedAt.Before(*f.From) {
			continue
		}
		if f.To != nil && m.CreatedAt.After(*f.To) {
			continue
		}
		cp := *m
		out = append(out, &cp)
	}
	if f.Offset > 0 {
		if f.Offset >= len(out) {
			return nil, nil
		}
		out = out[f.Offset:]
	}
	if f.Limit > 0 && len(out) > f.Limit {
		out = out[:f.Limit]
	}
	return out, nil
}

// memTxRunner implementa inventory.TxRunner con semántica commit/rollback.
// failBeforeCommit permite inyectar un fallo de almacenamiento entre la
// validación y el commit para el test de atomicidad.
type memTxRunner struct {
	store            *memStore
	failBeforeCommit error
}

func (r *memTxRunner) Run(_ context.Context, fn func(
	materialRepo repository.RawMaterialRepository,
	movementRepo repository.MovementRepository,
) error) error {
	tx := &memTx{store: r.store, stagedQty: make(map[string]decimal.Decimal)}
	defer tx.releaseLocks()

	if err := fn(&memMaterialRepo{store: r.store, tx: tx}, &memMovementRepo{store: r.store, tx: tx}); err != nil {
		return err // rollback implícito: el staging se descarta
	}
	if r.failBeforeCommit != nil {
		return r.failBeforeCommit
	}
	tx.commit()
	return nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

func qty(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

func newHarina(quantity, minimum string) *entity.RawMaterial {
	now := time.Now()
	return &entity.RawMaterial{
		ID:        "mat-harina",
		Name:      "Harina",
		Unit:      "kg",
		Quantity:  qty(quantity),
		Minimum:   qty(minimum),
		Active:    true,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func buildUseCase(store *memStore) *appinv.RegisterMovementUseCase {
	return appinv.NewRegisterMovementUseCase(
		&memTxRunner{store: store},
		&memMovementRepo{store: store},
		nil,
	)
}

// ──────────────────────────────────────────────────────────────────────────────
// RegisterMovement — validación y aplicación básica
// ──────────────────────────────────────────────────────────────────────────────

func TestRegisterMovement_EntradaSumaStock(t *testing.T) {
	store := newMemStore()
	store.addMaterial(newHarina("10", "0"))
	uc := buildUseCase(store)

	res, err := uc.RegisterMovement(context.Background(), appinv.MovementInputDTO{
		MaterialID: "mat-harina",
		Type:       entity.MovementEntrada,
		Quantity:   qty("25.5"),
		Reason:     "compra semanal",
		UserID:     "user-1",
	})
	require.NoError(t, err)
	require.NotNil(t, res.Movement)

	assert.True(t, res.NewStock.Equal(qty("35.5")), "el stock resultante debe ser 35.5, fue %s", res.NewStock)
	assert.True(t, store.quantityOf(t, "mat-harina").Equal(qty("35.5")))
	assert.Equal(t, entity.MovementEntrada, res.Movement.Type)
	assert.Equal(t, "user-1", res.Movement.UserID)
	assert.NotEmpty(t, res.Movement.ID)
}

// Escenario de la especificación funcional: Harina con 100 kg y mínimo 20.
// salida 30 → 70; merma 50 → 20 (entra al conjunto crítico);
// salida 25 → rechazada por stock insuficiente, el stock queda en 20.
func TestRegisterMovement_EscenarioHarina(t *testing.T) {
	store := newMemStore()
	store.addMaterial(newHarina("100", "20"))
	uc := buildUseCase(store)
	scanner := appinv.NewCriticalStockUseCase(&memMaterialRepo{store: store}, nil)
	ctx := context.Background()

	res, err := uc.RegisterMovement(ctx, appinv.MovementInputDTO{
		MaterialID: "mat-harina", Type: entity.MovementSalida, Quantity: qty("30"),
	})
	require.NoError(t, err)
	assert.True(t, res.NewStock.Equal(qty("70")))

	// Aún no es crítica (70 > 20)
	critical, err := scanner.ListCritical(ctx)
	require.NoError(t, err)
	assert.Empty(t, critical)

	res, err = uc.RegisterMovement(ctx, appinv.MovementInputDTO{
		MaterialID: "mat-harina", Type: entity.MovementMerma, Quantity: qty("50"),
	})
	require.NoError(t, err)
	assert.True(t, res.NewStock.Equal(qty("20")))

	// 20 <= 20: ahora sí aparece en el escáner de stock crítico
	critical, err = scanner.ListCritical(ctx)
	require.NoError(t, err)
	require.Len(t, critical, 1)
	assert.Equal(t, "Harina", critical[0].Name)

	// Sobregiro: debe fallar con disponible/solicitado y sin efecto alguno
	_, err = uc.RegisterMovement(ctx, appinv.MovementInputDTO{
		MaterialID: "mat-harina", Type: entity.MovementSalida, Quantity: qty("25"),
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	var insufficient *domain.InsufficientStockError
	require.ErrorAs(t, err, &insufficient)
	assert.True(t, insufficient.Available.Equal(qty("20")), "disponible debe ser 20")
	assert.True(t, insufficient.Requested.Equal(qty("25")), "solicitado debe ser 25")

	assert.True(t, store.quantityOf(t, "mat-harina").Equal(qty("20")), "el stock no debe cambiar tras el rechazo")
	assert.Equal(t, 2, store.movementCount(), "el movimiento rechazado no debe persistirse")
}

func TestRegisterMovement_CantidadInvalida(t *testing.T) {
	store := newMemStore()
	store.addMaterial(newHarina("100", "0"))
	uc := buildUseCase(store)
	ctx := context.Background()

	// Cantidad negativa
	_, err := uc.RegisterMovement(ctx, appinv.MovementInputDTO{
		MaterialID: "mat-harina", Type: entity.MovementEntrada, Quantity: qty("-5"),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	// Cantidad cero
	_, err = uc.RegisterMovement(ctx, appinv.MovementInputDTO{
		MaterialID: "mat-harina", Type: entity.MovementSalida, Quantity: decimal.Zero,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	// Tipo desconocido
	_, err = uc.RegisterMovement(ctx, appinv.MovementInputDTO{
		MaterialID: "mat-harina", Type: "ajuste", Quantity: qty("1"),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	assert.Equal(t, 0, store.movementCount(), "ninguna entrada inválida debe crear movimientos")
	assert.True(t, store.quantityOf(t, "mat-harina").Equal(qty("100")))
}

func TestRegisterMovement_MateriaInexistenteOInactiva(t *testing.T) {
	store := newMemStore()
	inactive := newHarina("50", "0")
	inactive.ID = "mat-levadura"
	inactive.Name = "Levadura"
	inactive.Active = false
	store.addMaterial(inactive)
	uc := buildUseCase(store)
	ctx := context.Background()

	_, err := uc.RegisterMovement(ctx, appinv.MovementInputDTO{
		MaterialID: "mat-fantasma", Type: entity.MovementEntrada, Quantity: qty("1"),
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	// Una materia inactiva no acepta movimientos, ni siquiera entradas
	_, err = uc.RegisterMovement(ctx, appinv.MovementInputDTO{
		MaterialID: "mat-levadura", Type: entity.MovementEntrada, Quantity: qty("1"),
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	assert.Equal(t, 0, store.movementCount())
}

// ──────────────────────────────────────────────────────────────────────────────
// Atomicidad: fallo inyectado después de la validación, antes del commit
// ──────────────────────────────────────────────────────────────────────────────

func TestRegisterMovement_AtomicidadAnteFalloDeAlmacenamiento(t *testing.T) {
	store := newMemStore()
	store.addMaterial(newHarina("100", "0"))
	storageErr := errors.New("pérdida de conexión")
	uc := appinv.NewRegisterMovementUseCase(
		&memTxRunner{store: store, failBeforeCommit: storageErr},
		&memMovementRepo{store: store},
		nil,
	)

	_, err := uc.RegisterMovement(context.Background(), appinv.MovementInputDTO{
		MaterialID: "mat-harina", Type: entity.MovementSalida, Quantity: qty("10"),
	})
	require.ErrorIs(t, err, storageErr)

	// Ni el movimiento ni el cambio de cantidad deben ser observables
	assert.Equal(t, 0, store.movementCount())
	assert.True(t, store.quantityOf(t, "mat-harina").Equal(qty("100")))
}

// El deadline del caller vence esperando el lock de fila: la tx nunca llega a
// commit, el caller recibe ErrBusy y no queda estado parcial.
func TestRegisterMovement_DeadlineVencidoDevuelveBusy(t *testing.T) {
	store := newMemStore()
	store.addMaterial(newHarina("100", "20"))
	lockTimeout := fmt.Errorf("bloquear fila de la materia: %w", context.DeadlineExceeded)
	uc := appinv.NewRegisterMovementUseCase(
		&memTxRunner{store: store, failBeforeCommit: lockTimeout},
		&memMovementRepo{store: store},
		nil,
	)

	res, err := uc.RegisterMovement(context.Background(), appinv.MovementInputDTO{
		MaterialID: "mat-harina", Type: entity.MovementSalida, Quantity: qty("30"),
	})
	assert.ErrorIs(t, err, domain.ErrBusy)
	assert.Nil(t, res)

	assert.Equal(t, 0, store.movementCount())
	assert.True(t, store.quantityOf(t, "mat-harina").Equal(qty("100")))
}

// Cancelación explícita del contexto: mismo contrato que el deadline vencido.
func TestRegisterMovement_ContextoCanceladoDevuelveBusy(t *testing.T) {
	store := newMemStore()
	store.addMaterial(newHarina("100", "20"))
	uc := appinv.NewRegisterMovementUseCase(
		&memTxRunner{store: store, failBeforeCommit: context.Canceled},
		&memMovementRepo{store: store},
		nil,
	)

	_, err := uc.RegisterMovement(context.Background(), appinv.MovementInputDTO{
		MaterialID: "mat-harina", Type: entity.MovementEntrada, Quantity: qty("10"),
	})
	assert.ErrorIs(t, err, domain.ErrBusy)
	assert.Equal(t, 0, store.movementCount())
}

// ──────────────────────────────────────────────────────────────────────────────
// Concurrencia: serialización por materia e independencia entre materias
// ──────────────────────────────────────────────────────────────────────────────

// Dos salidas concurrentes individualmente válidas pero que juntas sobregiran:
// exactamente una debe ganar y la otra recibir stock insuficiente.
func TestRegisterMovement_SerializacionMismaMateria(t *testing.T) {
	store := newMemStore()
	store.addMaterial(newHarina("50", "0"))
	uc := buildUseCase(store)

	var wg sync.WaitGroup
	results := make([]error, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := uc.RegisterMovement(context.Background(), appinv.MovementInputDTO{
				MaterialID: "mat-harina", Type: entity.MovementSalida, Quantity: qty("30"),
			})
			results[i] = err
		}(i)
	}
	wg.Wait()

	var oks, insufficients int
	for _, err := range results {
		switch {
		case err == nil:
			oks++
		case errors.Is(err, domain.ErrInsufficientStock):
			insufficients++
		default:
			t.Fatalf("error inesperado: %v", err)
		}
	}
	assert.Equal(t, 1, oks, "exactamente una salida debe confirmarse")
	assert.Equal(t, 1, insufficients, "la otra debe rechazarse por stock insuficiente")
	assert.True(t, store.quantityOf(t, "mat-harina").Equal(qty("20")),
		"el stock final debe reflejar solo la salida ganadora")
	assert.Equal(t, 1, store.movementCount())
}

func TestRegisterMovement_IndependenciaEntreMaterias(t *testing.T) {
	store := newMemStore()
	harina := newHarina("100", "0")
	azucar := newHarina("100", "0")
	azucar.ID = "mat-azucar"
	azucar.Name = "Azúcar"
	store.addMaterial(harina)
	store.addMaterial(azucar)
	uc := buildUseCase(store)

	const rounds = 20
	var wg sync.WaitGroup
	for _, id := range []string{"mat-harina", "mat-azucar"} {
		wg.Add(1)
		go func(id string) {
			defer wg.Done()
			for i := 0; i < rounds; i++ {
				_, err := uc.RegisterMovement(context.Background(), appinv.MovementInputDTO{
					MaterialID: id, Type: entity.MovementSalida, Quantity: qty("1"),
				})
				assert.NoError(t, err)
			}
		}(id)
	}
	wg.Wait()

	assert.True(t, store.quantityOf(t, "mat-harina").Equal(qty("80")))
	assert.True(t, store.quantityOf(t, "mat-azucar").Equal(qty("80")))
	assert.Equal(t, 2*rounds, store.movementCount())
}

// ──────────────────────────────────────────────────────────────────────────────
// Invariante de reconstrucción: inicial + Σentradas − Σsalidas − Σmermas == stock
// ──────────────────────────────────────────────────────────────────────────────

func TestRegisterMovement_InvarianteDeReconstruccion(t *testing.T) {
	store := newMemStore()
	store.addMaterial(newHarina("40", "0"))
	uc := buildUseCase(store)
	ctx := context.Background()

	ops := []struct {
		typ string
		qty string
	}{
		{entity.MovementEntrada, "10"},
		{entity.MovementSalida, "15"},
		{entity.MovementMerma, "5"},
		{entity.MovementSalida, "100"}, // rechazada: no debe contar
		{entity.MovementEntrada, "2.75"},
		{entity.MovementMerma, "0.25"},
	}
	for _, op := range ops {
		_, err := uc.RegisterMovement(ctx, appinv.MovementInputDTO{
			MaterialID: "mat-harina", Type: op.typ, Quantity: qty(op.qty),
		})
		if op.qty == "100" {
			require.ErrorIs(t, err, domain.ErrInsufficientStock)
		} else {
			require.NoError(t, err)
		}
	}

	movements, err := uc.History(ctx, repository.MovementFilter{MaterialID: "mat-harina"})
	require.NoError(t, err)

	reconstructed := qty("40") // cantidad inicial al crear la materia
	for _, m := range movements {
		reconstructed = reconstructed.Add(m.Delta())
	}
	assert.True(t, reconstructed.Equal(store.quantityOf(t, "mat-harina")),
		"reconstruido %s vs almacenado %s", reconstructed, store.quantityOf(t, "mat-harina"))
	assert.True(t, store.quantityOf(t, "mat-harina").Equal(qty("32.5")))
}

// ──────────────────────────────────────────────────────────────────────────────
// Restock: equivalente a un movimiento de entrada, deja rastro en el libro
// ──────────────────────────────────────────────────────────────────────────────

func TestRestock_GeneraMovimientoDeEntrada(t *testing.T) {
	store := newMemStore()
	store.addMaterial(newHarina("5", "10"))
	uc := buildUseCase(store)
	ctx := context.Background()

	res, err := uc.Restock(ctx, "mat-harina", qty("45"), "user-7")
	require.NoError(t, err)
	assert.True(t, res.NewStock.Equal(qty("50")))

	movements, err := uc.History(ctx, repository.MovementFilter{MaterialID: "mat-harina"})
	require.NoError(t, err)
	require.Len(t, movements, 1)
	assert.Equal(t, entity.MovementEntrada, movements[0].Type)
	assert.Equal(t, "reabastecimiento", movements[0].Reason)
	assert.Equal(t, "user-7", movements[0].UserID)

	// Un reabastecimiento con cantidad no positiva se rechaza igual que un movimiento
	_, err = uc.Restock(ctx, "mat-harina", qty("-3"), "user-7")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// Historial: orden descendente, filtros y paginación
// ──────────────────────────────────────────────────────────────────────────────

func TestHistory_OrdenDescendenteYFiltros(t *testing.T) {
	store := newMemStore()
	store.addMaterial(newHarina("100", "20"))
	uc := buildUseCase(store)
	ctx := context.Background()

	_, err := uc.RegisterMovement(ctx, appinv.MovementInputDTO{
		MaterialID: "mat-harina", Type: entity.MovementSalida, Quantity: qty("30"),
	})
	require.NoError(t, err)
	_, err = uc.RegisterMovement(ctx, appinv.MovementInputDTO{
		MaterialID: "mat-harina", Type: entity.MovementMerma, Quantity: qty("50"),
	})
	require.NoError(t, err)

	// Más recientes primero: merma(50), luego salida(30)
	movements, err := uc.History(ctx, repository.MovementFilter{MaterialID: "mat-harina"})
	require.NoError(t, err)
	require.Len(t, movements, 2)
	assert.Equal(t, entity.MovementMerma, movements[0].Type)
	assert.True(t, movements[0].Quantity.Equal(qty("50")))
	assert.Equal(t, entity.MovementSalida, movements[1].Type)
	assert.True(t, movements[1].Quantity.Equal(qty("30")))

	// Filtro por tipo
	mermas, err := uc.History(ctx, repository.MovementFilter{Type: entity.MovementMerma})
	require.NoError(t, err)
	require.Len(t, mermas, 1)
	assert.Equal(t, entity.MovementMerma, mermas[0].Type)

	// Tipo inválido en el filtro
	_, err = uc.History(ctx, repository.MovementFilter{Type: "transferencia"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	// Paginación: límite 1 devuelve solo el más reciente
	page, err := uc.History(ctx, repository.MovementFilter{Limit: 1})
	require.NoError(t, err)
	require.Len(t, page, 1)
	assert.Equal(t, entity.MovementMerma, page[0].Type)
}

// El rango de fechas es inclusivo en ambos extremos: un movimiento registrado
// en el último instante de fecha_fin entra; el primer instante del día
// siguiente queda fuera.
func TestHistory_RangoDeFechasInclusivo(t *testing.T) {
	store := newMemStore()
	store.addMaterial(newHarina("100", "20"))
	repo := &memMovementRepo{store: store}
	uc := appinv.NewRegisterMovementUseCase(&memTxRunner{store: store}, repo, nil)
	ctx := context.Background()

	day := time.Date(2026, 3, 10, 0, 0, 0, 0, time.Local)
	endOfDay := day.Add(24*time.Hour - time.Nanosecond)

	insert := func(id string, at time.Time) {
		require.NoError(t, repo.Create(ctx, &entity.Movement{
			ID: id, MaterialID: "mat-harina", Type: entity.MovementEntrada,
			Quantity: qty("1"), CreatedAt: at,
		}))
	}
	insert("mov-manana", day.Add(8*time.Hour))
	insert("mov-limite", endOfDay)
	insert("mov-dia-siguiente", day.Add(24*time.Hour))

	movements, err := uc.History(ctx, repository.MovementFilter{From: &day, To: &endOfDay})
	require.NoError(t, err)
	require.Len(t, movements, 2, "el límite del día entra; el día siguiente no")
	assert.Equal(t, "mov-limite", movements[0].ID)
	assert.Equal(t, "mov-manana", movements[1].ID)

	// Desde el inicio exacto del día también es inclusivo
	atMidnight := day
	insert("mov-medianoche", atMidnight)
	movements, err = uc.History(ctx, repository.MovementFilter{From: &day, To: &endOfDay})
	require.NoError(t, err)
	assert.Len(t, movements, 3)
}

// ──────────────────────────────────────────────────────────────────────────────
// Escáner de stock crítico + cache
// ──────────────────────────────────────────────────────────────────────────────

// fakeCache implementación trivial de CriticalCache para verificar el flujo
// cache-aside y la invalidación tras cada movimiento confirmado.
type fakeCache struct {
	mu      sync.Mutex
	entries []*entity.RawMaterial
	valid   bool
	hits    int
}

func (c *fakeCache) Get(context.Context) ([]*entity.RawMaterial, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.valid {
		return nil, false
	}
	c.hits++
	return c.entries, true
}

func (c *fakeCache) Set(_ context.Context, materials []*entity.RawMaterial) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = materials
	c.valid = true
	return nil
}

func (c *fakeCache) Invalidate(context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.valid = false
	return nil
}

func TestCriticalStock_EscanerConCache(t *testing.T) {
	store := newMemStore()
	critical := newHarina("5", "10") // 5 <= 10: crítica
	store.addMaterial(critical)
	ok := newHarina("100", "10")
	ok.ID = "mat-azucar"
	ok.Name = "Azúcar"
	store.addMaterial(ok)

	cache := &fakeCache{}
	scanner := appinv.NewCriticalStockUseCase(&memMaterialRepo{store: store}, cache)
	uc := appinv.NewRegisterMovementUseCase(
		&memTxRunner{store: store},
		&memMovementRepo{store: store},
		cache,
	)
	ctx := context.Background()

	// Primera lectura puebla el cache; la segunda debe servirse de él
	list, err := scanner.ListCritical(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Harina", list[0].Name)

	_, err = scanner.ListCritical(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, cache.hits)

	// Un movimiento confirmado invalida el cache; la siguiente lectura ve el
	// nuevo estado (Azúcar cae a su mínimo)
	_, err = uc.RegisterMovement(ctx, appinv.MovementInputDTO{
		MaterialID: "mat-azucar", Type: entity.MovementSalida, Quantity: qty("90"),
	})
	require.NoError(t, err)

	list, err = scanner.ListCritical(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 2)
}

func TestCriticalStock_ExcluyeInactivas(t *testing.T) {
	store := newMemStore()
	inactive := newHarina("0", "10")
	inactive.Active = false
	store.addMaterial(inactive)

	scanner := appinv.NewCriticalStockUseCase(&memMaterialRepo{store: store}, nil)
	list, err := scanner.ListCritical(context.Background())
	require.NoError(t, err)
	assert.Empty(t, list, "las materias inactivas no deben aparecer como críticas")
}
