package analytics_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moganraj05/Inventory-Management-System/internal/application/analytics"
	"github.com/moganraj05/Inventory-Management-System/internal/application/dto"
	"github.com/moganraj05/Inventory-Management-System/internal/domain/entity"
	"github.com/moganraj05/Inventory-Management-System/internal/domain/repository"
)

// fakeDashboardRepo datos fijos para el resumen.
type fakeDashboardRepo struct {
	products   int
	categories int
	suppliers  int
	lowStock   []*entity.Product
	summary    []repository.StockTypeSummary
	recent     []repository.TransactionWithNames
}

func (r *fakeDashboardRepo) CountProducts() (int, error)   { return r.products, nil }
func (r *fakeDashboardRepo) CountCategories() (int, error) { return r.categories, nil }
func (r *fakeDashboardRepo) CountSuppliers() (int, error)  { return r.suppliers, nil }
func (r *fakeDashboardRepo) ListLowStock() ([]*entity.Product, error) {
	return r.lowStock, nil
}
func (r *fakeDashboardRepo) StockSummaryByType() ([]repository.StockTypeSummary, error) {
	return r.summary, nil
}
func (r *fakeDashboardRepo) RecentTransactions(n int) ([]repository.TransactionWithNames, error) {
	if len(r.recent) > n {
		return r.recent[:n], nil
	}
	return r.recent, nil
}

// fakeCache caché en memoria con contadores de acceso.
type fakeCache struct {
	stored *dto.DashboardSummaryDTO
	gets   int
	sets   int
}

func (c *fakeCache) Get(_ context.Context) (*dto.DashboardSummaryDTO, bool, error) {
	c.gets++
	if c.stored == nil {
		return nil, false, nil
	}
	return c.stored, true, nil
}

func (c *fakeCache) Set(_ context.Context, summary *dto.DashboardSummaryDTO) error {
	c.sets++
	c.stored = summary
	return nil
}

func newFakeDashboardRepo() *fakeDashboardRepo {
	now := time.Now()
	return &fakeDashboardRepo{
		products:   12,
		categories: 4,
		suppliers:  3,
		lowStock: []*entity.Product{
			{
				ID: "p1", Name: "Mouse inalámbrico", Category: "Electronics",
				Quantity: 2, Price: decimal.NewFromInt(45), MinStockLevel: 5,
				CreatedAt: now, UpdatedAt: now,
			},
		},
		summary: []repository.StockTypeSummary{
			{Type: entity.TransactionTypeIN, TotalQuantity: 140},
			{Type: entity.TransactionTypeOUT, TotalQuantity: 95},
		},
		recent: []repository.TransactionWithNames{
			{ID: "t1", ProductID: "p1", ProductName: "Mouse inalámbrico", Type: entity.TransactionTypeOUT, Quantity: 3, CreatedAt: now},
			{ID: "t2", ProductID: "p2", ProductName: "Resma de papel", Type: entity.TransactionTypeIN, Quantity: 50, SupplierName: "Distribuidora Central", CreatedAt: now.Add(-time.Hour)},
		},
	}
}

func TestGetSummary_ArmaElResumen(t *testing.T) {
	repo := newFakeDashboardRepo()
	uc := analytics.NewDashboardUseCase(repo, nil, nil)

	summary, err := uc.GetSummary(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 12, summary.TotalProducts)
	assert.Equal(t, 4, summary.TotalCategories)
	assert.Equal(t, 3, summary.TotalSuppliers)

	require.Equal(t, 1, summary.LowStockCount)
	require.Len(t, summary.LowStockProducts, 1)
	assert.Equal(t, "Mouse inalámbrico", summary.LowStockProducts[0].Name)
	assert.True(t, summary.LowStockProducts[0].LowStock)

	require.Len(t, summary.StockSummary, 2)
	assert.Equal(t, entity.TransactionTypeIN, summary.StockSummary[0].Type)
	assert.Equal(t, 140, summary.StockSummary[0].TotalQuantity)

	require.Len(t, summary.RecentTransactions, 2)
	assert.Equal(t, "t1", summary.RecentTransactions[0].ID)
	assert.Equal(t, "Distribuidora Central", summary.RecentTransactions[1].SupplierName)
}

func TestGetSummary_SinStockBajo(t *testing.T) {
	repo := newFakeDashboardRepo()
	repo.lowStock = nil
	uc := analytics.NewDashboardUseCase(repo, nil, nil)

	summary, err := uc.GetSummary(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 0, summary.LowStockCount)
	assert.Empty(t, summary.LowStockProducts)
}

func TestGetSummary_UsaElCache(t *testing.T) {
	repo := newFakeDashboardRepo()
	cache := &fakeCache{}
	uc := analytics.NewDashboardUseCase(repo, cache, nil)

	// Primera llamada: miss → consulta la DB y guarda en caché.
	first, err := uc.GetSummary(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, cache.gets)
	assert.Equal(t, 1, cache.sets)

	// Segunda llamada: hit → se sirve desde el caché sin reconsultar.
	repo.products = 999
	second, err := uc.GetSummary(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, cache.gets)
	assert.Equal(t, 1, cache.sets, "un hit no debe reescribir el caché")
	assert.Equal(t, first.TotalProducts, second.TotalProducts,
		"el hit devuelve el resumen cacheado, no el estado nuevo de la DB")
}
