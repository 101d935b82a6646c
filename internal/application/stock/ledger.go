package stock

import (
	"github.com/moganraj05/Inventory-Management-System/internal/application/dto"
	"github.com/moganraj05/Inventory-Management-System/internal/domain/repository"
)

// LedgerUseCase lectura del libro de movimientos (GET /api/stock).
type LedgerUseCase struct {
	txRepo repository.TransactionRepository
}

// NewLedgerUseCase construye el caso de uso de lectura del ledger.
func NewLedgerUseCase(txRepo repository.TransactionRepository) *LedgerUseCase {
	return &LedgerUseCase{txRepo: txRepo}
}

// List devuelve las transacciones ordenadas por fecha descendente con
// nombres de producto, proveedor y actor resueltos.
func (uc *LedgerUseCase) List(limit, offset int) ([]dto.TransactionListItem, error) {
	rows, err := uc.txRepo.ListWithNames(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.TransactionListItem, 0, len(rows))
	for _, r := range rows {
		items = append(items, toTransactionListItem(r))
	}
	return items, nil
}

func toTransactionListItem(r repository.TransactionWithNames) dto.TransactionListItem {
	return dto.TransactionListItem{
		ID:            r.ID,
		ProductID:     r.ProductID,
		ProductName:   r.ProductName,
		Type:          r.Type,
		Quantity:      r.Quantity,
		SupplierID:    r.SupplierID,
		SupplierName:  r.SupplierName,
		PerformedBy:   r.PerformedBy,
		PerformedName: r.PerformedName,
		CreatedAt:     r.CreatedAt,
	}
}
