package inventory

import "github.com/shopspring/decimal"

// WarehouseAggregate resumen de inventario de una bodega para el análisis
// de distribución. Valor inmutable derivado por petición (vida = un ciclo
// request/response); nunca se cachea ni se persiste.
type WarehouseAggregate struct {
	WarehouseID     string
	WarehouseName   string
	TotalProducts   int // productos con fila de stock en la bodega
	TotalValue      decimal.Decimal
	LowStockCount   int // productos con 0 < existencias < punto de reorden
	OutOfStockCount int // productos con existencias = 0 en la bodega
}
