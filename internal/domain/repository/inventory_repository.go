package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/stockboard-api/internal/domain/inventory"
)

// ProductStockRow fila agregada del listado: un producto con la suma de sus
// existencias entre bodegas (o en una sola, si el filtro lo restringe).
type ProductStockRow struct {
	ProductID      string
	SKU            string
	Name           string
	Category       string
	SalePrice      decimal.Decimal
	CostPrice      decimal.Decimal
	ReorderPoint   int64
	TotalStock     int64
	WarehouseCount int // bodegas con existencias > 0
	TotalValue     decimal.Decimal
}

// WarehouseStockRow fila (bodega, producto) para el análisis de distribución.
// ReorderPoint es el umbral efectivo de la fila: el override por bodega de
// stock_levels si existe, o el del producto en su defecto; el conteo low/out
// por bodega compara las existencias locales contra ese umbral.
type WarehouseStockRow struct {
	WarehouseID    string
	WarehouseName  string
	ProductID      string
	SKU            string
	ProductName    string
	Category       string
	QuantityOnHand int64
	UnitCost       decimal.Decimal
	ReorderPoint   int64
	LineValue      decimal.Decimal
}

// DistributionFilter filtros opcionales de la operación de distribución.
// MinValue se aplica después de agregar (en el caso de uso), no en SQL.
type DistributionFilter struct {
	WarehouseID string
	ProductID   string
	Category    string
	MinValue    *decimal.Decimal
}

// InventoryReadRepository puerto de solo lectura para las consultas agregadas
// del dashboard. La página y el conteo del listado deben compartir el mismo
// predicado de filtro (incluido el de estado de stock post-agregación); la
// implementación construye ambos desde la misma consulta.
type InventoryReadRepository interface {
	// ListProductStock devuelve la página de productos agregados según el
	// descriptor (filtros, orden y paginación ya normalizados).
	ListProductStock(ctx context.Context, q inventory.ListingQuery) ([]ProductStockRow, error)

	// CountProductStock devuelve el total exacto de productos que cumplen el
	// mismo filtro que ListProductStock, sin paginación. Nunca estima.
	CountProductStock(ctx context.Context, q inventory.ListingQuery) (int, error)

	// GetProductStock devuelve el agregado de un solo producto (vista detalle).
	// nil si el producto no existe.
	GetProductStock(ctx context.Context, productID string) (*ProductStockRow, error)

	// ListWarehouseStock devuelve las filas (bodega, producto) del alcance
	// indicado, ordenadas por bodega y producto.
	ListWarehouseStock(ctx context.Context, f DistributionFilter) ([]WarehouseStockRow, error)
}
