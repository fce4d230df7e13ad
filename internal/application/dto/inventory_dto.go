package dto

import "github.com/shopspring/decimal"

// ProductListingItemDTO fila del listado del dashboard: producto con su
// stock agregado entre bodegas y el estado derivado.
type ProductListingItemDTO struct {
	ID             string          `json:"id"`
	SKU            string          `json:"sku"`
	Name           string          `json:"name"`
	Category       string          `json:"category"`
	SalePrice      decimal.Decimal `json:"sale_price"`
	CostPrice      decimal.Decimal `json:"cost_price"`
	ReorderPoint   int64           `json:"reorder_point"`
	TotalStock     int64           `json:"total_stock"`
	WarehouseCount int             `json:"warehouse_count"`
	TotalValue     decimal.Decimal `json:"total_value"`
	StockStatus    string          `json:"stock_status"`
}

// ListingFiltersDTO eco de los filtros aplicados al listado.
type ListingFiltersDTO struct {
	Search      string `json:"search,omitempty"`
	Category    string `json:"category,omitempty"`
	StockFilter string `json:"stock_filter"`
}

// ProductListingResponse respuesta de la operación de listado.
type ProductListingResponse struct {
	Products   []ProductListingItemDTO `json:"products"`
	Filters    ListingFiltersDTO       `json:"filters"`
	Pagination PaginationMeta          `json:"pagination"`
}

// WarehouseProductDTO producto dentro del desglose de una bodega.
type WarehouseProductDTO struct {
	ProductID      string          `json:"product_id"`
	SKU            string          `json:"sku"`
	Name           string          `json:"name"`
	Category       string          `json:"category,omitempty"`
	QuantityOnHand int64           `json:"quantity_on_hand"`
	UnitCost       decimal.Decimal `json:"unit_cost"`
	LineValue      decimal.Decimal `json:"line_value"`
	StockStatus    string          `json:"stock_status"`
}

// WarehouseDistributionDTO agregado por bodega para el dashboard de distribución.
type WarehouseDistributionDTO struct {
	WarehouseID     string                `json:"warehouse_id"`
	WarehouseName   string                `json:"warehouse_name"`
	TotalProducts   int                   `json:"total_products"`
	TotalValue      decimal.Decimal       `json:"total_value"`
	LowStockCount   int                   `json:"low_stock_count"`
	OutOfStockCount int                   `json:"out_of_stock_count"`
	Products        []WarehouseProductDTO `json:"products"`
}

// TransferSuggestionDTO sugerencia de traslado entre bodegas.
type TransferSuggestionDTO struct {
	FromWarehouseID   string `json:"from_warehouse_id"`
	FromWarehouseName string `json:"from_warehouse_name"`
	ToWarehouseID     string `json:"to_warehouse_id"`
	ToWarehouseName   string `json:"to_warehouse_name"`
	SuggestedQuantity int64  `json:"suggested_quantity"`
	Reason            string `json:"reason"`
	Priority          string `json:"priority"` // high | medium | low
}

// CapacityDTO clasificación de capacidad de una bodega.
type CapacityDTO struct {
	WarehouseID    string  `json:"warehouse_id"`
	WarehouseName  string  `json:"warehouse_name"`
	UtilizationPct float64 `json:"utilization_pct"`
	Level          string  `json:"level"` // low | optimal | high | critical
	Recommendation string  `json:"recommendation"`
}

// DistributionResponse respuesta de la operación de distribución:
// agregados por bodega, sugerencias de traslado y capacidad, más el
// puntaje/nivel de desbalance global del alcance consultado.
type DistributionResponse struct {
	Warehouses          []WarehouseDistributionDTO `json:"warehouses"`
	TransferSuggestions []TransferSuggestionDTO    `json:"transfer_suggestions"`
	Capacity            []CapacityDTO              `json:"capacity"`
	ImbalanceScore      float64                    `json:"imbalance_score"`
	ImbalanceLevel      string                     `json:"imbalance_level"`
}

// StockUpsertRequest body del PUT de existencias por producto × bodega.
type StockUpsertRequest struct {
	ProductID        string          `json:"product_id" validate:"required"`
	WarehouseID      string          `json:"warehouse_id" validate:"required"`
	QuantityOnHand   int64           `json:"quantity_on_hand" validate:"min=0"`
	QuantityReserved int64           `json:"quantity_reserved" validate:"min=0"`
	UnitCost         decimal.Decimal `json:"unit_cost"`
	ReorderPoint     *int64          `json:"reorder_point,omitempty"`
}

// StockLevelResponse existencias de una fila producto × bodega.
type StockLevelResponse struct {
	ProductID         string          `json:"product_id"`
	WarehouseID       string          `json:"warehouse_id"`
	QuantityOnHand    int64           `json:"quantity_on_hand"`
	QuantityReserved  int64           `json:"quantity_reserved"`
	QuantityAvailable int64           `json:"quantity_available"`
	UnitCost          decimal.Decimal `json:"unit_cost"`
	ReorderPoint      *int64          `json:"reorder_point,omitempty"`
}
