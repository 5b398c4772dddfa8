package repository

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/almacen-api/internal/domain/document"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
)

// MaterialReceiptRepository define el puerto de persistencia para
// MaterialReceipt (DIP). Los listados van por fecha de recepción descendente.
type MaterialReceiptRepository interface {
	Create(receipt *entity.MaterialReceipt) error
	GetByID(id string) (*entity.MaterialReceipt, error)
	GetByNumber(receiptNumber string) (*entity.MaterialReceipt, error)
	Update(receipt *entity.MaterialReceipt) error
	UpdateTotalAmount(id string, total decimal.Decimal) error
	List(limit, offset int) ([]*entity.MaterialReceipt, error)
	ListByStatus(status document.Status) ([]*entity.MaterialReceipt, error)
	ListByUser(userID string) ([]*entity.MaterialReceipt, error)
	ListByWarehouse(warehouseID string) ([]*entity.MaterialReceipt, error)
	ListByDateRange(start, end time.Time) ([]*entity.MaterialReceipt, error)
	SearchBySupplier(supplier string) ([]*entity.MaterialReceipt, error)
	Delete(id string) error
}

// MaterialReceiptItemRepository define el puerto de persistencia para
// MaterialReceiptItem (DIP).
type MaterialReceiptItemRepository interface {
	Create(item *entity.MaterialReceiptItem) error
	GetByID(id string) (*entity.MaterialReceiptItem, error)
	Update(item *entity.MaterialReceiptItem) error
	ListByReceipt(receiptID string) ([]*entity.MaterialReceiptItem, error)
	Delete(id string) error
	DeleteByReceipt(receiptID string) error
}
