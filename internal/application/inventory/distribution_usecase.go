package inventory

import (
	"context"
	"fmt"

	"github.com/jhoicas/stockboard-api/internal/application/dto"
	"github.com/jhoicas/stockboard-api/internal/domain/inventory"
	"github.com/jhoicas/stockboard-api/internal/domain/repository"
)

// DistributionUseCase análisis de distribución entre bodegas: agregados por
// bodega, puntaje de desbalance, capacidad y sugerencias de traslado. Todo
// se recalcula por petición a partir de las filas actuales; nada se persiste.
type DistributionUseCase struct {
	repo repository.InventoryReadRepository
}

// NewDistributionUseCase construye el caso de uso.
func NewDistributionUseCase(repo repository.InventoryReadRepository) *DistributionUseCase {
	return &DistributionUseCase{repo: repo}
}

// warehouseBucket acumulador por bodega durante el plegado de filas.
type warehouseBucket struct {
	agg      inventory.WarehouseAggregate
	products []dto.WarehouseProductDTO
}

// AnalyzeDistribution normaliza los filtros, lee las filas (bodega, producto)
// del alcance y las pliega en agregados por bodega. El filtro min_value se
// aplica después de agregar: descarta bodegas cuyo valor total quede por
// debajo del umbral, y esas bodegas tampoco participan del desbalance ni de
// las sugerencias.
func (uc *DistributionUseCase) AnalyzeDistribution(ctx context.Context, raw RawDistributionParams) (*dto.DistributionResponse, error) {
	filter, err := NormalizeDistributionParams(raw)
	if err != nil {
		return nil, err
	}

	rows, err := uc.repo.ListWarehouseStock(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("distribución: %w", err)
	}

	// Plegado preservando el orden de primera aparición (el repositorio
	// ordena por bodega, así que el orden es el de la consulta).
	buckets := make(map[string]*warehouseBucket)
	var order []string
	for _, r := range rows {
		b, ok := buckets[r.WarehouseID]
		if !ok {
			b = &warehouseBucket{agg: inventory.WarehouseAggregate{
				WarehouseID:   r.WarehouseID,
				WarehouseName: r.WarehouseName,
			}}
			buckets[r.WarehouseID] = b
			order = append(order, r.WarehouseID)
		}

		status := inventory.Classify(r.QuantityOnHand, r.ReorderPoint)
		b.agg.TotalProducts++
		b.agg.TotalValue = b.agg.TotalValue.Add(r.LineValue)
		switch status {
		case inventory.StatusOutOfStock:
			b.agg.OutOfStockCount++
		case inventory.StatusLowStock:
			b.agg.LowStockCount++
		}

		b.products = append(b.products, dto.WarehouseProductDTO{
			ProductID:      r.ProductID,
			SKU:            r.SKU,
			Name:           r.ProductName,
			Category:       r.Category,
			QuantityOnHand: r.QuantityOnHand,
			UnitCost:       r.UnitCost,
			LineValue:      r.LineValue,
			StockStatus:    string(status),
		})
	}

	aggregates := make([]inventory.WarehouseAggregate, 0, len(order))
	warehouses := make([]dto.WarehouseDistributionDTO, 0, len(order))
	for _, id := range order {
		b := buckets[id]
		if filter.MinValue != nil && b.agg.TotalValue.LessThan(*filter.MinValue) {
			continue
		}
		aggregates = append(aggregates, b.agg)
		warehouses = append(warehouses, dto.WarehouseDistributionDTO{
			WarehouseID:     b.agg.WarehouseID,
			WarehouseName:   b.agg.WarehouseName,
			TotalProducts:   b.agg.TotalProducts,
			TotalValue:      b.agg.TotalValue,
			LowStockCount:   b.agg.LowStockCount,
			OutOfStockCount: b.agg.OutOfStockCount,
			Products:        b.products,
		})
	}

	score := inventory.ImbalanceScore(aggregates)

	resp := &dto.DistributionResponse{
		Warehouses:          warehouses,
		TransferSuggestions: make([]dto.TransferSuggestionDTO, 0),
		Capacity:            make([]dto.CapacityDTO, 0, len(aggregates)),
		ImbalanceScore:      score,
		ImbalanceLevel:      inventory.ImbalanceLevel(score),
	}

	for _, c := range inventory.ClassifyCapacity(aggregates) {
		resp.Capacity = append(resp.Capacity, dto.CapacityDTO{
			WarehouseID:    c.WarehouseID,
			WarehouseName:  c.WarehouseName,
			UtilizationPct: c.UtilizationPct,
			Level:          c.Level,
			Recommendation: c.Recommendation,
		})
	}

	for _, s := range inventory.SuggestTransfers(aggregates) {
		resp.TransferSuggestions = append(resp.TransferSuggestions, dto.TransferSuggestionDTO{
			FromWarehouseID:   s.FromWarehouseID,
			FromWarehouseName: s.FromWarehouseName,
			ToWarehouseID:     s.ToWarehouseID,
			ToWarehouseName:   s.ToWarehouseName,
			SuggestedQuantity: s.SuggestedQuantity,
			Reason:            s.Reason,
			Priority:          s.Priority,
		})
	}

	return resp, nil
}
