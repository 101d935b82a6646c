package postgres

import (
	"context"
	"fmt"

	"github.com/moganraj05/Inventory-Management-System/internal/domain/entity"
	"github.com/moganraj05/Inventory-Management-System/internal/domain/repository"
)

var _ repository.TransactionRepository = (*TransactionRepo)(nil)

// TransactionRepo implementación del ledger sobre PostgreSQL (usable con pool o tx).
// Append-only: no expone Update ni Delete.
type TransactionRepo struct {
	q Querier
}

// NewTransactionRepository construye el adaptador del ledger. Pasar pool o tx (Querier).
func NewTransactionRepository(q Querier) *TransactionRepo {
	return &TransactionRepo{q: q}
}

// Create persiste una transacción de stock. supplier_id y performed_by se
// guardan como NULL cuando vienen vacíos para mantener la integridad referencial.
func (r *TransactionRepo) Create(tx *entity.StockTransaction) error {
	query := `
		INSERT INTO stock_transactions (id, product_id, type, quantity, supplier_id, performed_by, created_at)
		VALUES ($1, $2, $3, $4, NULLIF($5, '')::UUID, NULLIF($6, '')::UUID, $7)`
	_, err := r.q.Exec(context.Background(), query,
		tx.ID, tx.ProductID, tx.Type, tx.Quantity, tx.SupplierID, tx.PerformedBy, tx.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert stock transaction: %w", err)
	}
	return nil
}

// ListWithNames devuelve las transacciones con nombres de producto, proveedor
// y actor resueltos, ordenadas por fecha descendente.
func (r *TransactionRepo) ListWithNames(limit, offset int) ([]repository.TransactionWithNames, error) {
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
		LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list stock transactions: %w", err)
	}
	defer rows.Close()
	var list []repository.TransactionWithNames
	for rows.Next() {
		var t repository.TransactionWithNames
		if err := rows.Scan(&t.ID, &t.ProductID, &t.ProductName, &t.Type, &t.Quantity,
			&t.SupplierID, &t.SupplierName, &t.PerformedBy, &t.PerformedName, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan stock transaction: %w", err)
		}
		list = append(list, t)
	}
	return list, rows.Err()
}
