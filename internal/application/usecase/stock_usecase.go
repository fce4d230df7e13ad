package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/stockboard-api/internal/application/dto"
	"github.com/jhoicas/stockboard-api/internal/domain"
	"github.com/jhoicas/stockboard-api/internal/domain/entity"
	"github.com/jhoicas/stockboard-api/internal/domain/repository"
)

// StockUseCase fija las existencias de un producto en una bodega (upsert
// idempotente). El dashboard agrega estas filas por consulta; aquí solo se
// valida y persiste.
type StockUseCase struct {
	stockRepo     repository.StockLevelRepository
	productRepo   repository.ProductRepository
	warehouseRepo repository.WarehouseRepository
}

// NewStockUseCase construye el caso de uso.
func NewStockUseCase(
	stockRepo repository.StockLevelRepository,
	productRepo repository.ProductRepository,
	warehouseRepo repository.WarehouseRepository,
) *StockUseCase {
	return &StockUseCase{stockRepo: stockRepo, productRepo: productRepo, warehouseRepo: warehouseRepo}
}

// Upsert fija las existencias de la fila producto × bodega. Ambas claves
// deben existir y las cantidades no pueden ser negativas.
func (uc *StockUseCase) Upsert(in dto.StockUpsertRequest) (*dto.StockLevelResponse, error) {
	if _, err := uuid.Parse(in.ProductID); err != nil {
		return nil, domain.ErrInvalidInput
	}
	if _, err := uuid.Parse(in.WarehouseID); err != nil {
		return nil, domain.ErrInvalidInput
	}
	if in.QuantityOnHand < 0 || in.QuantityReserved < 0 || in.UnitCost.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	if in.ReorderPoint != nil && *in.ReorderPoint < 0 {
		return nil, domain.ErrInvalidInput
	}

	product, err := uc.productRepo.GetByID(in.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	wh, err := uc.warehouseRepo.GetByID(in.WarehouseID)
	if err != nil {
		return nil, err
	}
	if wh == nil {
		return nil, domain.ErrNotFound
	}

	level := &entity.StockLevel{
		ProductID:        in.ProductID,
		WarehouseID:      in.WarehouseID,
		QuantityOnHand:   in.QuantityOnHand,
		QuantityReserved: in.QuantityReserved,
		UnitCost:         in.UnitCost,
		ReorderPoint:     in.ReorderPoint,
		UpdatedAt:        time.Now(),
	}
	if err := uc.stockRepo.Upsert(level); err != nil {
		return nil, err
	}
	return toStockLevelResponse(level), nil
}

// Get obtiene la fila producto × bodega. nil si no existe.
func (uc *StockUseCase) Get(productID, warehouseID string) (*dto.StockLevelResponse, error) {
	level, err := uc.stockRepo.Get(productID, warehouseID)
	if err != nil {
		return nil, err
	}
	if level == nil {
		return nil, nil
	}
	return toStockLevelResponse(level), nil
}

// ListByWarehouse lista las existencias de una bodega.
func (uc *StockUseCase) ListByWarehouse(warehouseID string, page dto.PageRequest) ([]dto.StockLevelResponse, error) {
	page.DefaultPage()
	levels, err := uc.stockRepo.ListByWarehouse(warehouseID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.StockLevelResponse, 0, len(levels))
	for _, lv := range levels {
		out = append(out, *toStockLevelResponse(lv))
	}
	return out, nil
}

func toStockLevelResponse(s *entity.StockLevel) *dto.StockLevelResponse {
	return &dto.StockLevelResponse{
		ProductID:         s.ProductID,
		WarehouseID:       s.WarehouseID,
		QuantityOnHand:    s.QuantityOnHand,
		QuantityReserved:  s.QuantityReserved,
		QuantityAvailable: s.QuantityAvailable(),
		UnitCost:          s.UnitCost,
		ReorderPoint:      s.ReorderPoint,
	}
}
