package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// StockLevel existencias de un producto en una bodega (fila producto × bodega).
// ReorderPoint es un override por bodega; si es nil aplica el del producto.
type StockLevel struct {
	ProductID        string
	WarehouseID      string
	QuantityOnHand   int64
	QuantityReserved int64
	UnitCost         decimal.Decimal
	ReorderPoint     *int64
	UpdatedAt        time.Time
}

// QuantityAvailable devuelve disponible = en mano - reservado, nunca negativo.
func (s StockLevel) QuantityAvailable() int64 {
	avail := s.QuantityOnHand - s.QuantityReserved
	if avail < 0 {
		return 0
	}
	return avail
}
