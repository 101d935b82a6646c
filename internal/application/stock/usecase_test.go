package stock_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moganraj05/Inventory-Management-System/internal/application/stock"
	"github.com/moganraj05/Inventory-Management-System/internal/domain"
	"github.com/moganraj05/Inventory-Management-System/internal/domain/entity"
	"github.com/moganraj05/Inventory-Management-System/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

// memStore estado compartido de los fakes. txMu serializa transacciones
// completas (emula el lock de fila de SELECT FOR UPDATE); mu protege los
// accesos puntuales a los datos.
type memStore struct {
	txMu sync.Mutex
	mu   sync.Mutex

	products  map[string]*entity.Product
	suppliers map[string]*entity.Supplier
	ledger    []*entity.StockTransaction
}

func newMemStore() *memStore {
	return &memStore{
		products:  make(map[string]*entity.Product),
		suppliers: make(map[string]*entity.Supplier),
	}
}

func (s *memStore) addProduct(p *entity.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *p
	s.products[p.ID] = &cp
}

func (s *memStore) quantity(id string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.products[id].Quantity
}

func (s *memStore) ledgerLen() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.ledger)
}

type fakeProductRepo struct{ store *memStore }

func (r *fakeProductRepo) Create(p *entity.Product) error {
	r.store.addProduct(p)
	return nil
}

func (r *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	p, ok := r.store.products[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *fakeProductRepo) GetForUpdate(id string) (*entity.Product, error) {
	return r.GetByID(id)
}

func (r *fakeProductRepo) UpdateQuantity(id string, quantity int) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.products[id].Quantity = quantity
	return nil
}

func (r *fakeProductRepo) UpdateMetadata(string, repository.ProductMetadata) (*entity.Product, error) {
	return nil, nil
}
func (r *fakeProductRepo) List(int, int) ([]*entity.Product, error) { return nil, nil }
func (r *fakeProductRepo) Count() (int, error)                      { return 0, nil }
func (r *fakeProductRepo) Delete(string) error                      { return nil }

type fakeTransactionRepo struct{ store *memStore }

func (r *fakeTransactionRepo) Create(tx *entity.StockTransaction) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	cp := *tx
	r.store.ledger = append(r.store.ledger, &cp)
	return nil
}

func (r *fakeTransactionRepo) ListWithNames(int, int) ([]repository.TransactionWithNames, error) {
	return nil, nil
}

type fakeSupplierRepo struct{ store *memStore }

func (r *fakeSupplierRepo) Create(s *entity.Supplier) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	cp := *s
	r.store.suppliers[s.ID] = &cp
	return nil
}

func (r *fakeSupplierRepo) GetByID(id string) (*entity.Supplier, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	s, ok := r.store.suppliers[id]
	if !ok {
		return nil, nil
	}
	cp := *s
	return &cp, nil
}

func (r *fakeSupplierRepo) List() ([]*entity.Supplier, error) { return nil, nil }
func (r *fakeSupplierRepo) Count() (int, error)               { return 0, nil }
func (r *fakeSupplierRepo) Update(*entity.Supplier) error     { return nil }
func (r *fakeSupplierRepo) Delete(string) error               { return nil }

// fakeTxRunner serializa transacciones con txMu y restaura el estado si fn
// falla, emulando el rollback.
type fakeTxRunner struct{ store *memStore }

func (tr *fakeTxRunner) Run(_ context.Context, fn func(
	productRepo repository.ProductRepository,
	txRepo repository.TransactionRepository,
) error) error {
	tr.store.txMu.Lock()
	defer tr.store.txMu.Unlock()

	tr.store.mu.Lock()
	snapshot := make(map[string]int, len(tr.store.products))
	for id, p := range tr.store.products {
		snapshot[id] = p.Quantity
	}
	ledgerLen := len(tr.store.ledger)
	tr.store.mu.Unlock()

	err := fn(&fakeProductRepo{store: tr.store}, &fakeTransactionRepo{store: tr.store})
	if err != nil {
		tr.store.mu.Lock()
		for id, qty := range snapshot {
			tr.store.products[id].Quantity = qty
		}
		tr.store.ledger = tr.store.ledger[:ledgerLen]
		tr.store.mu.Unlock()
	}
	return err
}

// fakePublisher acumula los eventos publicados.
type fakePublisher struct {
	mu        sync.Mutex
	movements []stock.MovementAppliedEvent
	lowStock  []stock.LowStockEvent
}

func (p *fakePublisher) MovementApplied(_ context.Context, ev stock.MovementAppliedEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.movements = append(p.movements, ev)
	return nil
}

func (p *fakePublisher) LowStock(_ context.Context, ev stock.LowStockEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.lowStock = append(p.lowStock, ev)
	return nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

const (
	testProductID  = "prod-001"
	testSupplierID = "supp-001"
	testUserID     = "user-001"
)

func newTestUseCase(t *testing.T, store *memStore, events stock.EventPublisher) *stock.MovementUseCase {
	t.Helper()
	return stock.NewMovementUseCase(
		&fakeTxRunner{store: store},
		&fakeProductRepo{store: store},
		&fakeSupplierRepo{store: store},
		events,
		nil,
	)
}

func seedProduct(store *memStore, quantity, minStock int) {
	now := time.Now()
	store.addProduct(&entity.Product{
		ID:            testProductID,
		Name:          "Teclado mecánico",
		Category:      "Electronics",
		Quantity:      quantity,
		Price:         decimal.NewFromFloat(120.50),
		MinStockLevel: minStock,
		CreatedAt:     now,
		UpdatedAt:     now,
	})
}

func seedSupplier(store *memStore) {
	now := time.Now()
	_ = (&fakeSupplierRepo{store: store}).Create(&entity.Supplier{
		ID:        testSupplierID,
		Name:      "Distribuidora Central",
		CreatedAt: now,
		UpdatedAt: now,
	})
}

// ──────────────────────────────────────────────────────────────────────────────
// Entradas y salidas
// ──────────────────────────────────────────────────────────────────────────────

func TestApplyMovement_EntradaSumaCantidad(t *testing.T) {
	store := newMemStore()
	seedProduct(store, 10, 5)
	seedSupplier(store)
	uc := newTestUseCase(t, store, nil)

	product, tx, err := uc.ApplyMovement(context.Background(), stock.MovementInput{
		ProductID:  testProductID,
		Type:       entity.TransactionTypeIN,
		Quantity:   7,
		SupplierID: testSupplierID,
		UserID:     testUserID,
	})
	require.NoError(t, err)

	assert.Equal(t, 17, product.Quantity, "la entrada debe sumar a la cantidad")
	assert.Equal(t, 17, store.quantity(testProductID))
	assert.Equal(t, entity.TransactionTypeIN, tx.Type)
	assert.Equal(t, 7, tx.Quantity)
	assert.Equal(t, testSupplierID, tx.SupplierID)
	assert.Equal(t, testUserID, tx.PerformedBy)
	assert.Equal(t, 1, store.ledgerLen(), "debe quedar una fila en el ledger")
}

func TestApplyMovement_SalidaRestaCantidad(t *testing.T) {
	store := newMemStore()
	seedProduct(store, 10, 2)
	uc := newTestUseCase(t, store, nil)

	product, tx, err := uc.ApplyMovement(context.Background(), stock.MovementInput{
		ProductID: testProductID,
		Type:      entity.TransactionTypeOUT,
		Quantity:  4,
		UserID:    testUserID,
	})
	require.NoError(t, err)

	assert.Equal(t, 6, product.Quantity)
	assert.Equal(t, 6, store.quantity(testProductID))
	assert.Equal(t, entity.TransactionTypeOUT, tx.Type)
	assert.Equal(t, 1, store.ledgerLen())
}

func TestApplyMovement_SalidaExactaDejaCero(t *testing.T) {
	store := newMemStore()
	seedProduct(store, 4, 0)
	uc := newTestUseCase(t, store, nil)

	product, _, err := uc.ApplyMovement(context.Background(), stock.MovementInput{
		ProductID: testProductID,
		Type:      entity.TransactionTypeOUT,
		Quantity:  4,
		UserID:    testUserID,
	})
	require.NoError(t, err, "salida igual al stock disponible debe permitirse")
	assert.Equal(t, 0, product.Quantity)
}

// ──────────────────────────────────────────────────────────────────────────────
// Guard de stock insuficiente
// ──────────────────────────────────────────────────────────────────────────────

func TestApplyMovement_StockInsuficiente_NoMutaNada(t *testing.T) {
	store := newMemStore()
	seedProduct(store, 3, 1)
	uc := newTestUseCase(t, store, nil)

	_, _, err := uc.ApplyMovement(context.Background(), stock.MovementInput{
		ProductID: testProductID,
		Type:      entity.TransactionTypeOUT,
		Quantity:  5,
		UserID:    testUserID,
	})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	assert.Equal(t, 3, store.quantity(testProductID), "la cantidad no debe cambiar")
	assert.Equal(t, 0, store.ledgerLen(), "no debe quedar rastro en el ledger")
}

// Secuencia: 10 → OUT 4 → OUT 5 → OUT 2 rechazada. La cantidad termina en 1 y
// el ledger solo registra los movimientos aplicados.
func TestApplyMovement_SecuenciaDeSalidas(t *testing.T) {
	store := newMemStore()
	seedProduct(store, 10, 0)
	uc := newTestUseCase(t, store, nil)
	ctx := context.Background()

	_, _, err := uc.ApplyMovement(ctx, stock.MovementInput{
		ProductID: testProductID, Type: entity.TransactionTypeOUT, Quantity: 4, UserID: testUserID,
	})
	require.NoError(t, err)
	_, _, err = uc.ApplyMovement(ctx, stock.MovementInput{
		ProductID: testProductID, Type: entity.TransactionTypeOUT, Quantity: 5, UserID: testUserID,
	})
	require.NoError(t, err)
	_, _, err = uc.ApplyMovement(ctx, stock.MovementInput{
		ProductID: testProductID, Type: entity.TransactionTypeOUT, Quantity: 2, UserID: testUserID,
	})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	assert.Equal(t, 1, store.quantity(testProductID))
	assert.Equal(t, 2, store.ledgerLen())
}

// Dos salidas concurrentes de 6 sobre un stock de 10: exactamente una debe
// aplicarse y la otra fallar con ErrInsufficientStock. La cantidad nunca
// queda negativa.
func TestApplyMovement_SalidasConcurrentes_SoloUnaAplica(t *testing.T) {
	store := newMemStore()
	seedProduct(store, 10, 0)
	uc := newTestUseCase(t, store, nil)

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, _, errs[i] = uc.ApplyMovement(context.Background(), stock.MovementInput{
				ProductID: testProductID,
				Type:      entity.TransactionTypeOUT,
				Quantity:  6,
				UserID:    testUserID,
			})
		}(i)
	}
	wg.Wait()

	var ok, insufficient int
	for _, err := range errs {
		switch {
		case err == nil:
			ok++
		case err == domain.ErrInsufficientStock:
			insufficient++
		default:
			t.Fatalf("error inesperado: %v", err)
		}
	}
	assert.Equal(t, 1, ok, "exactamente una salida debe aplicarse")
	assert.Equal(t, 1, insufficient, "la otra debe fallar por stock insuficiente")
	assert.Equal(t, 4, store.quantity(testProductID))
	assert.Equal(t, 1, store.ledgerLen())
}

// ──────────────────────────────────────────────────────────────────────────────
// Validación de entrada
// ──────────────────────────────────────────────────────────────────────────────

func TestApplyMovement_EntradasInvalidas(t *testing.T) {
	store := newMemStore()
	seedProduct(store, 10, 0)
	uc := newTestUseCase(t, store, nil)
	ctx := context.Background()

	cases := []struct {
		name  string
		input stock.MovementInput
	}{
		{"tipo desconocido", stock.MovementInput{ProductID: testProductID, Type: "TRANSFER", Quantity: 1, UserID: testUserID}},
		{"cantidad cero", stock.MovementInput{ProductID: testProductID, Type: entity.TransactionTypeIN, Quantity: 0, UserID: testUserID}},
		{"cantidad negativa", stock.MovementInput{ProductID: testProductID, Type: entity.TransactionTypeOUT, Quantity: -3, UserID: testUserID}},
		{"sin product_id", stock.MovementInput{Type: entity.TransactionTypeIN, Quantity: 1, UserID: testUserID}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := uc.ApplyMovement(ctx, tc.input)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}

	assert.Equal(t, 10, store.quantity(testProductID))
	assert.Equal(t, 0, store.ledgerLen())
}

func TestApplyMovement_ProductoInexistente(t *testing.T) {
	store := newMemStore()
	uc := newTestUseCase(t, store, nil)

	_, _, err := uc.ApplyMovement(context.Background(), stock.MovementInput{
		ProductID: "no-existe",
		Type:      entity.TransactionTypeIN,
		Quantity:  1,
		UserID:    testUserID,
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestApplyMovement_ProveedorInexistente(t *testing.T) {
	store := newMemStore()
	seedProduct(store, 10, 0)
	uc := newTestUseCase(t, store, nil)

	_, _, err := uc.ApplyMovement(context.Background(), stock.MovementInput{
		ProductID:  testProductID,
		Type:       entity.TransactionTypeIN,
		Quantity:   1,
		SupplierID: "no-existe",
		UserID:     testUserID,
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Eventos post-commit
// ──────────────────────────────────────────────────────────────────────────────

func TestApplyMovement_PublicaEventos(t *testing.T) {
	store := newMemStore()
	seedProduct(store, 10, 5)
	events := &fakePublisher{}
	uc := newTestUseCase(t, store, events)

	// Salida que deja la cantidad en el umbral: evento de movimiento + alerta.
	_, _, err := uc.ApplyMovement(context.Background(), stock.MovementInput{
		ProductID: testProductID,
		Type:      entity.TransactionTypeOUT,
		Quantity:  5,
		UserID:    testUserID,
	})
	require.NoError(t, err)

	require.Len(t, events.movements, 1)
	assert.Equal(t, 5, events.movements[0].NewQuantity)
	require.Len(t, events.lowStock, 1, "al quedar en el umbral debe dispararse la alerta")
	assert.Equal(t, 5, events.lowStock[0].Quantity)
	assert.Equal(t, 5, events.lowStock[0].MinStockLevel)
}

func TestApplyMovement_SinAlertaSobreElUmbral(t *testing.T) {
	store := newMemStore()
	seedProduct(store, 10, 2)
	events := &fakePublisher{}
	uc := newTestUseCase(t, store, events)

	_, _, err := uc.ApplyMovement(context.Background(), stock.MovementInput{
		ProductID: testProductID,
		Type:      entity.TransactionTypeOUT,
		Quantity:  3,
		UserID:    testUserID,
	})
	require.NoError(t, err)

	assert.Len(t, events.movements, 1)
	assert.Empty(t, events.lowStock, "con cantidad sobre el umbral no hay alerta")
}
