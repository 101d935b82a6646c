// Package analytics contiene el caso de uso de solo lectura que alimenta el
// dashboard: conteos, stock bajo, sumas por tipo y actividad reciente.
package analytics

import (
	"context"
	"fmt"

	"github.com/moganraj05/Inventory-Management-System/internal/application/dto"
	"github.com/moganraj05/Inventory-Management-System/internal/application/usecase"
	"github.com/moganraj05/Inventory-Management-System/internal/domain/repository"
	"github.com/moganraj05/Inventory-Management-System/pkg/logger"
)

const dashboardRecentTransactions = 5 // transacciones en el widget de actividad

// SummaryCache caché opcional del resumen (Redis). Un fallo del caché nunca
// es fatal: el caso de uso cae a la base de datos.
type SummaryCache interface {
	Get(ctx context.Context) (*dto.DashboardSummaryDTO, bool, error)
	Set(ctx context.Context, summary *dto.DashboardSummaryDTO) error
}

// DashboardUseCase genera el resumen del inventario.
//
// Fuente de datos: DashboardRepository (consultas read-only). No tiene
// capacidad de mutación.
type DashboardUseCase struct {
	repo  repository.DashboardRepository
	cache SummaryCache
	log   *logger.Logger
}

// NewDashboardUseCase construye el caso de uso. cache puede ser nil.
func NewDashboardUseCase(repo repository.DashboardRepository, cache SummaryCache, log *logger.Logger) *DashboardUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &DashboardUseCase{repo: repo, cache: cache, log: log}
}

// GetSummary construye el DashboardSummaryDTO.
//
// Cuatro llamadas en paralelo:
//  1. Conteos (productos, categorías, proveedores)
//  2. Productos en stock bajo
//  3. Suma de cantidades por tipo sobre el ledger
//  4. Últimas 5 transacciones con nombres resueltos
func (uc *DashboardUseCase) GetSummary(ctx context.Context) (*dto.DashboardSummaryDTO, error) {
	if uc.cache != nil {
		cached, found, err := uc.cache.Get(ctx)
		if err != nil {
			uc.log.Warn().Err(err).Msg("leer resumen cacheado")
		} else if found {
			return cached, nil
		}
	}

	type countsResult struct {
		products, categories, suppliers int
		err                             error
	}
	type lowStockResult struct {
		products []dto.ProductResponse
		err      error
	}
	type summaryResult struct {
		rows []repository.StockTypeSummary
		err  error
	}
	type recentResult struct {
		rows []repository.TransactionWithNames
		err  error
	}

	countsCh := make(chan countsResult, 1)
	lowCh := make(chan lowStockResult, 1)
	sumCh := make(chan summaryResult, 1)
	recentCh := make(chan recentResult, 1)

	go func() {
		var r countsResult
		if r.products, r.err = uc.repo.CountProducts(); r.err != nil {
			countsCh <- r
			return
		}
		if r.categories, r.err = uc.repo.CountCategories(); r.err != nil {
			countsCh <- r
			return
		}
		r.suppliers, r.err = uc.repo.CountSuppliers()
		countsCh <- r
	}()
	go func() {
		products, err := uc.repo.ListLowStock()
		items := make([]dto.ProductResponse, 0, len(products))
		for _, p := range products {
			items = append(items, *usecase.ToProductResponse(p))
		}
		lowCh <- lowStockResult{items, err}
	}()
	go func() {
		rows, err := uc.repo.StockSummaryByType()
		sumCh <- summaryResult{rows, err}
	}()
	go func() {
		rows, err := uc.repo.RecentTransactions(dashboardRecentTransactions)
		recentCh <- recentResult{rows, err}
	}()

	counts := <-countsCh
	low := <-lowCh
	sum := <-sumCh
	recent := <-recentCh

	if counts.err != nil {
		return nil, fmt.Errorf("dashboard: conteos: %w", counts.err)
	}
	if low.err != nil {
		return nil, fmt.Errorf("dashboard: stock bajo: %w", low.err)
	}
	if sum.err != nil {
		return nil, fmt.Errorf("dashboard: resumen por tipo: %w", sum.err)
	}
	if recent.err != nil {
		return nil, fmt.Errorf("dashboard: transacciones recientes: %w", recent.err)
	}

	stockSummary := make([]dto.StockTypeSummaryDTO, 0, len(sum.rows))
	for _, row := range sum.rows {
		stockSummary = append(stockSummary, dto.StockTypeSummaryDTO{
			Type:          row.Type,
			TotalQuantity: row.TotalQuantity,
		})
	}
	recentItems := make([]dto.TransactionListItem, 0, len(recent.rows))
	for _, row := range recent.rows {
		recentItems = append(recentItems, dto.TransactionListItem{
			ID:            row.ID,
			ProductID:     row.ProductID,
			ProductName:   row.ProductName,
			Type:          row.Type,
			Quantity:      row.Quantity,
			SupplierID:    row.SupplierID,
			SupplierName:  row.SupplierName,
			PerformedBy:   row.PerformedBy,
			PerformedName: row.PerformedName,
			CreatedAt:     row.CreatedAt,
		})
	}

	summary := &dto.DashboardSummaryDTO{
		TotalProducts:      counts.products,
		TotalCategories:    counts.categories,
		TotalSuppliers:     counts.suppliers,
		LowStockCount:      len(low.products),
		LowStockProducts:   low.products,
		StockSummary:       stockSummary,
		RecentTransactions: recentItems,
	}

	if uc.cache != nil {
		if err := uc.cache.Set(ctx, summary); err != nil {
			uc.log.Warn().Err(err).Msg("guardar resumen en caché")
		}
	}
	return summary, nil
}
