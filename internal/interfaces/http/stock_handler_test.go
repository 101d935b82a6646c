package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moganraj05/Inventory-Management-System/internal/application/dto"
	"github.com/moganraj05/Inventory-Management-System/internal/application/stock"
	"github.com/moganraj05/Inventory-Management-System/internal/domain/entity"
	"github.com/moganraj05/Inventory-Management-System/internal/domain/repository"
	apphttp "github.com/moganraj05/Inventory-Management-System/internal/interfaces/http"
)

// stubStore fake único que implementa los puertos que necesita el caso de uso
// de movimientos. Sin concurrencia: los handlers se prueban secuencialmente.
type stubStore struct {
	products map[string]*entity.Product
	ledger   []*entity.StockTransaction
}

func (s *stubStore) Create(p *entity.Product) error {
	s.products[p.ID] = p
	return nil
}

func (s *stubStore) GetByID(id string) (*entity.Product, error) {
	p, ok := s.products[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (s *stubStore) GetForUpdate(id string) (*entity.Product, error) { return s.GetByID(id) }

func (s *stubStore) UpdateQuantity(id string, quantity int) error {
	s.products[id].Quantity = quantity
	return nil
}

func (s *stubStore) UpdateMetadata(string, repository.ProductMetadata) (*entity.Product, error) {
	return nil, nil
}
func (s *stubStore) List(int, int) ([]*entity.Product, error) { return nil, nil }
func (s *stubStore) Count() (int, error)                      { return 0, nil }
func (s *stubStore) Delete(string) error                      { return nil }

type stubTxRepo struct{ store *stubStore }

func (r *stubTxRepo) Create(tx *entity.StockTransaction) error {
	cp := *tx
	r.store.ledger = append(r.store.ledger, &cp)
	return nil
}

func (r *stubTxRepo) ListWithNames(limit, offset int) ([]repository.TransactionWithNames, error) {
	var out []repository.TransactionWithNames
	// Orden de inserción inverso: el ledger real lista por fecha descendente.
	for i := len(r.store.ledger) - 1; i >= 0; i-- {
		tx := r.store.ledger[i]
		out = append(out, repository.TransactionWithNames{
			ID:        tx.ID,
			ProductID: tx.ProductID,
			Type:      tx.Type,
			Quantity:  tx.Quantity,
			CreatedAt: tx.CreatedAt,
		})
	}
	if offset > len(out) {
		offset = len(out)
	}
	out = out[offset:]
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

type stubSupplierRepo struct{}

func (stubSupplierRepo) Create(*entity.Supplier) error            { return nil }
func (stubSupplierRepo) GetByID(string) (*entity.Supplier, error) { return nil, nil }
func (stubSupplierRepo) List() ([]*entity.Supplier, error)        { return nil, nil }
func (stubSupplierRepo) Count() (int, error)                      { return 0, nil }
func (stubSupplierRepo) Update(*entity.Supplier) error            { return nil }
func (stubSupplierRepo) Delete(string) error                      { return nil }

type stubTxRunner struct{ store *stubStore }

func (tr *stubTxRunner) Run(_ context.Context, fn func(
	productRepo repository.ProductRepository,
	txRepo repository.TransactionRepository,
) error) error {
	return fn(tr.store, &stubTxRepo{store: tr.store})
}

// buildStockApp monta las rutas de stock protegidas con el middleware real.
func buildStockApp(store *stubStore) *fiber.App {
	movementUC := stock.NewMovementUseCase(
		&stubTxRunner{store: store}, store, stubSupplierRepo{}, nil, nil,
	)
	ledgerUC := stock.NewLedgerUseCase(&stubTxRepo{store: store})
	handler := apphttp.NewStockHandler(movementUC, ledgerUC)

	app := fiber.New()
	grp := app.Group("/api/stock", apphttp.AuthMiddleware(testJWTSecret))
	grp.Get("/", handler.ListTransactions)
	grp.Post("/in", handler.StockIn)
	grp.Post("/out", handler.StockOut)
	return app
}

func newStubStore() *stubStore {
	now := time.Now()
	return &stubStore{
		products: map[string]*entity.Product{
			"p1": {
				ID: "p1", Name: "Taladro percutor", Category: "Hardware",
				Quantity: 10, Price: decimal.NewFromInt(250), MinStockLevel: 2,
				CreatedAt: now, UpdatedAt: now,
			},
		},
	}
}

func postJSON(t *testing.T, app *fiber.App, path string, body any) *http.Response {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", tokenForRole(t, entity.RoleStaff))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func TestStockIn_Retorna201ConProductoYTransaccion(t *testing.T) {
	store := newStubStore()
	app := buildStockApp(store)

	resp := postJSON(t, app, "/api/stock/in", dto.StockInRequest{ProductID: "p1", Quantity: 5})
	defer resp.Body.Close()

	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var out dto.MovementResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, 15, out.Product.Quantity)
	assert.Equal(t, entity.TransactionTypeIN, out.Transaction.Type)
	assert.Equal(t, testUserID, out.Transaction.PerformedBy,
		"el actor sale del token, no del body")
}

func TestStockOut_StockInsuficiente_Retorna400(t *testing.T) {
	store := newStubStore()
	app := buildStockApp(store)

	resp := postJSON(t, app, "/api/stock/out", dto.StockOutRequest{ProductID: "p1", Quantity: 99})
	defer resp.Body.Close()

	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var out dto.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, "INSUFFICIENT_STOCK", out.Code)
	assert.Equal(t, 10, store.products["p1"].Quantity, "la cantidad no debe cambiar")
	assert.Empty(t, store.ledger, "no debe registrarse la transacción fallida")
}

func TestStockOut_CantidadInvalida_Retorna400(t *testing.T) {
	store := newStubStore()
	app := buildStockApp(store)

	resp := postJSON(t, app, "/api/stock/out", dto.StockOutRequest{ProductID: "p1", Quantity: 0})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestStockIn_ProductoInexistente_Retorna404(t *testing.T) {
	store := newStubStore()
	app := buildStockApp(store)

	resp := postJSON(t, app, "/api/stock/in", dto.StockInRequest{ProductID: "no-existe", Quantity: 1})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestStock_SinToken_Retorna401(t *testing.T) {
	store := newStubStore()
	app := buildStockApp(store)

	payload, _ := json.Marshal(dto.StockInRequest{ProductID: "p1", Quantity: 1})
	req := httptest.NewRequest(http.MethodPost, "/api/stock/in", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestListTransactions_OrdenDescendente(t *testing.T) {
	store := newStubStore()
	app := buildStockApp(store)

	resp := postJSON(t, app, "/api/stock/in", dto.StockInRequest{ProductID: "p1", Quantity: 5})
	resp.Body.Close()
	resp = postJSON(t, app, "/api/stock/out", dto.StockOutRequest{ProductID: "p1", Quantity: 3})
	resp.Body.Close()

	req := httptest.NewRequest(http.MethodGet, "/api/stock/", nil)
	req.Header.Set("Authorization", tokenForRole(t, entity.RoleStaff))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var items []dto.TransactionListItem
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&items))
	require.Len(t, items, 2)
	assert.Equal(t, entity.TransactionTypeOUT, items[0].Type, "el más reciente va primero")
	assert.Equal(t, entity.TransactionTypeIN, items[1].Type)
}
