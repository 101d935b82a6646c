package postgres

import (
	"context"
	"fmt"

	"github.com/moganraj05/Inventory-Management-System/internal/domain/entity"
	"github.com/moganraj05/Inventory-Management-System/internal/domain/repository"
)

var _ repository.DashboardRepository = (*DashboardRepo)(nil)

// DashboardRepo consultas de solo lectura para el resumen del dashboard.
type DashboardRepo struct {
	q Querier
}

// NewDashboardRepository construye el adaptador de dashboard.
func NewDashboardRepository(q Querier) *DashboardRepo {
	return &DashboardRepo{q: q}
}

// CountProducts total de productos.
func (r *DashboardRepo) CountProducts() (int, error) {
	return r.count(`SELECT COUNT(*) FROM products`, "count products")
}

// CountCategories total de categorías.
func (r *DashboardRepo) CountCategories() (int, error) {
	return r.count(`SELECT COUNT(*) FROM categories`, "count categories")
}

// CountSuppliers total de proveedores.
func (r *DashboardRepo) CountSuppliers() (int, error) {
	return r.count(`SELECT COUNT(*) FROM suppliers`, "count suppliers")
}

// ListLowStock productos con quantity <= min_stock_level.
func (r *DashboardRepo) ListLowStock() ([]*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE quantity <= min_stock_level ORDER BY quantity`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list low stock: %w", err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Category, &p.Quantity, &p.Price,
			&p.MinStockLevel, &p.CreatedBy, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan low stock product: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// StockSummaryByType suma de cantidades por tipo (IN/OUT) sobre todo el ledger.
func (r *DashboardRepo) StockSummaryByType() ([]repository.StockTypeSummary, error) {
	query := `
		SELECT type, COALESCE(SUM(quantity), 0) AS total_quantity
		FROM stock_transactions
		GROUP BY type
		ORDER BY type`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("stock summary by type: %w", err)
	}
	defer rows.Close()
	var list []repository.StockTypeSummary
	for rows.Next() {
		var s repository.StockTypeSummary
		if err := rows.Scan(&s.Type, &s.TotalQuantity); err != nil {
			return nil, fmt.Errorf("scan stock summary: %w", err)
		}
		list = append(list, s)
	}
	return list, rows.Err()
}

// RecentTransactions últimas n transacciones con nombres de producto y actor.
func (r *DashboardRepo) RecentTransactions(n int) ([]repository.TransactionWithNames, error) {
	query := `
		SELECT
			t.id,
			t.product_id,
			p.name AS product_name,
			t.type,
			t.quantity,
			COALESCE(t.supplier_id::TEXT, '') AS supplier_id,
			COALESCE(s.name, '')              AS supplier_name,
			COALESCE(t.performed_by::TEXT, '') AS performed_by,
			COALESCE(u.name, '')              AS performed_name,
			t.created_at
		FROM stock_transactions t
		JOIN products p       ON p.id = t.product_id
		LEFT JOIN suppliers s ON s.id = t.supplier_id
		LEFT JOIN users u     ON u.id = t.performed_by
		ORDER BY t.created_at DESC
		LIMIT $1`
	rows, err := r.q.Query(context.Background(), query, n)
	if err != nil {
		return nil, fmt.Errorf("recent transactions: %w", err)
	}
	defer rows.Close()
	var list []repository.TransactionWithNames
	for rows.Next() {
		var t repository.TransactionWithNames
		if err := rows.Scan(&t.ID, &t.ProductID, &t.ProductName, &t.Type, &t.Quantity,
			&t.SupplierID, &t.SupplierName, &t.PerformedBy, &t.PerformedName, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan recent transaction: %w", err)
		}
		list = append(list, t)
	}
	return list, rows.Err()
}

func (r *DashboardRepo) count(query, op string) (int, error) {
	var n int
	if err := r.q.QueryRow(context.Background(), query).Scan(&n); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return n, nil
}
