package stock

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/moganraj05/Inventory-Management-System/internal/application/dto"
	"github.com/moganraj05/Inventory-Management-System/internal/domain"
	"github.com/moganraj05/Inventory-Management-System/internal/domain/entity"
	"github.com/moganraj05/Inventory-Management-System/internal/domain/repository"
	"github.com/moganraj05/Inventory-Management-System/pkg/logger"
)

// MovementUseCase aplica movimientos de stock (IN/OUT) de forma transaccional:
// bloqueo de fila sobre el producto (SELECT FOR UPDATE), verificación de
// suficiencia para salidas, actualización de cantidad e insert en el ledger
// dentro de la misma transacción.
//
// Dos OUT concurrentes sobre el mismo producto se serializan en el lock de
// fila: el segundo relee la cantidad ya descontada y falla con
// ErrInsufficientStock si no alcanza.
type MovementUseCase struct {
	txRunner     TxRunner
	productRepo  repository.ProductRepository
	supplierRepo repository.SupplierRepository
	events       EventPublisher
	log          *logger.Logger
}

// NewMovementUseCase construye el caso de uso. events puede ser nil (sin publicación).
func NewMovementUseCase(
	txRunner TxRunner,
	productRepo repository.ProductRepository,
	supplierRepo repository.SupplierRepository,
	events EventPublisher,
	log *logger.Logger,
) *MovementUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &MovementUseCase{
		txRunner:     txRunner,
		productRepo:  productRepo,
		supplierRepo: supplierRepo,
		events:       events,
		log:          log,
	}
}

// MovementInput entrada para aplicar un movimiento de stock.
type MovementInput struct {
	ProductID  string
	Type       string // entity.TransactionTypeIN | entity.TransactionTypeOUT
	Quantity   int
	SupplierID string // opcional, solo entradas
	UserID     string
}

// ApplyMovement valida y aplica un movimiento. Devuelve el producto actualizado
// y la transacción creada, o falla sin mutar nada.
func (uc *MovementUseCase) ApplyMovement(ctx context.Context, input MovementInput) (*entity.Product, *entity.StockTransaction, error) {
	if input.Type != entity.TransactionTypeIN && input.Type != entity.TransactionTypeOUT {
		return nil, nil, domain.ErrInvalidInput
	}
	if input.ProductID == "" || input.Quantity <= 0 {
		return nil, nil, domain.ErrInvalidInput
	}

	// Pre-chequeos fuera de la transacción: existencia de producto y proveedor.
	// La cantidad se relee bajo lock dentro de la tx; esto solo corta rápido.
	product, err := uc.productRepo.GetByID(input.ProductID)
	if err != nil {
		return nil, nil, err
	}
	if product == nil {
		return nil, nil, domain.ErrNotFound
	}
	if input.Type == entity.TransactionTypeIN && input.SupplierID != "" {
		supplier, err := uc.supplierRepo.GetByID(input.SupplierID)
		if err != nil {
			return nil, nil, err
		}
		if supplier == nil {
			return nil, nil, domain.ErrNotFound
		}
	}

	now := time.Now()
	tx := &entity.StockTransaction{
		ID:          uuid.New().String(),
		ProductID:   input.ProductID,
		Type:        input.Type,
		Quantity:    input.Quantity,
		SupplierID:  input.SupplierID,
		PerformedBy: input.UserID,
		CreatedAt:   now,
	}

	var updated *entity.Product
	err = uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		txRepo repository.TransactionRepository,
	) error {
		// Bloquea la fila del producto y relee la cantidad vigente.
		locked, err := productRepo.GetForUpdate(input.ProductID)
		if err != nil {
			return err
		}
		if locked == nil {
			return domain.ErrNotFound
		}

		newQty := locked.Quantity + input.Quantity
		if input.Type == entity.TransactionTypeOUT {
			if locked.Quantity < input.Quantity {
				return domain.ErrInsufficientStock
			}
			newQty = locked.Quantity - input.Quantity
		}

		if err := productRepo.UpdateQuantity(input.ProductID, newQty); err != nil {
			return err
		}
		if err := txRepo.Create(tx); err != nil {
			return err
		}

		locked.Quantity = newQty
		locked.UpdatedAt = now
		updated = locked
		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	uc.publishEvents(ctx, updated, tx)
	return updated, tx, nil
}

// publishEvents publica los eventos post-commit. Best-effort: solo registra fallos.
func (uc *MovementUseCase) publishEvents(ctx context.Context, product *entity.Product, tx *entity.StockTransaction) {
	if uc.events == nil {
		return
	}
	ev := MovementAppliedEvent{
		TransactionID: tx.ID,
		ProductID:     product.ID,
		ProductName:   product.Name,
		Type:          tx.Type,
		Quantity:      tx.Quantity,
		NewQuantity:   product.Quantity,
		PerformedBy:   tx.PerformedBy,
		OccurredAt:    tx.CreatedAt,
	}
	if err := uc.events.MovementApplied(ctx, ev); err != nil {
		uc.log.Warn().Err(err).Str("product_id", product.ID).Msg("publicar evento de movimiento")
	}
	if product.IsLowStock() {
		alert := LowStockEvent{
			ProductID:     product.ID,
			ProductName:   product.Name,
			Quantity:      product.Quantity,
			MinStockLevel: product.MinStockLevel,
			OccurredAt:    tx.CreatedAt,
		}
		if err := uc.events.LowStock(ctx, alert); err != nil {
			uc.log.Warn().Err(err).Str("product_id", product.ID).Msg("publicar alerta de stock bajo")
		}
	}
}

// StockInFromRequest adapta el request HTTP de entrada al caso de uso.
func (uc *MovementUseCase) StockInFromRequest(ctx context.Context, userID string, in dto.StockInRequest) (*entity.Product, *entity.StockTransaction, error) {
	return uc.ApplyMovement(ctx, MovementInput{
		ProductID:  in.ProductID,
		Type:       entity.TransactionTypeIN,
		Quantity:   in.Quantity,
		SupplierID: in.SupplierID,
		UserID:     userID,
	})
}

// StockOutFromRequest adapta el request HTTP de salida al caso de uso.
func (uc *MovementUseCase) StockOutFromRequest(ctx context.Context, userID string, in dto.StockOutRequest) (*entity.Product, *entity.StockTransaction, error) {
	return uc.ApplyMovement(ctx, MovementInput{
		ProductID: in.ProductID,
		Type:      entity.TransactionTypeOUT,
		Quantity:  in.Quantity,
		UserID:    userID,
	})
}
