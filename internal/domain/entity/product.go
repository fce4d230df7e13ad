package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto o SKU del catálogo (multi-bodega).
// El stock no vive aquí: se maneja por bodega en StockLevel y se agrega por consulta.
// Invariante: CostPrice <= SalePrice (validado en el caso de uso).
type Product struct {
	ID           string
	SKU          string // código único
	Name         string
	Category     string
	Description  string
	CostPrice    decimal.Decimal
	SalePrice    decimal.Decimal
	ReorderPoint int64 // umbral de stock bajo a nivel de producto (>= 0)
	Active       bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
