package repository

import "github.com/jhoicas/stockboard-api/internal/domain/entity"

// StockLevelRepository define el puerto para consultar/actualizar existencias
// por producto × bodega. Las lecturas agregadas del dashboard no pasan por
// aquí: viven en InventoryReadRepository.
type StockLevelRepository interface {
	Get(productID, warehouseID string) (*entity.StockLevel, error)
	Upsert(level *entity.StockLevel) error
	ListByProduct(productID string) ([]*entity.StockLevel, error)
	ListByWarehouse(warehouseID string, limit, offset int) ([]*entity.StockLevel, error)
}
