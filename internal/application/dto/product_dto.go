package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para crear un producto.
type CreateProductRequest struct {
	SKU          string          `json:"sku" validate:"required,min=1,max=64"`
	Name         string          `json:"name" validate:"required,min=1,max=200"`
	Category     string          `json:"category"`
	Description  string          `json:"description"`
	CostPrice    decimal.Decimal `json:"cost_price"`
	SalePrice    decimal.Decimal `json:"sale_price"`
	ReorderPoint int64           `json:"reorder_point"`
}

// UpdateProductRequest entrada para actualizar un producto (campos opcionales).
type UpdateProductRequest struct {
	Name         *string          `json:"name"`
	Category     *string          `json:"category"`
	Description  *string          `json:"description"`
	CostPrice    *decimal.Decimal `json:"cost_price"`
	SalePrice    *decimal.Decimal `json:"sale_price"`
	ReorderPoint *int64           `json:"reorder_point"`
	Active       *bool            `json:"active"`
}

// ProductResponse salida de un producto del catálogo.
type ProductResponse struct {
	ID           string          `json:"id"`
	SKU          string          `json:"sku"`
	Name         string          `json:"name"`
	Category     string          `json:"category"`
	Description  string          `json:"description"`
	CostPrice    decimal.Decimal `json:"cost_price"`
	SalePrice    decimal.Decimal `json:"sale_price"`
	ReorderPoint int64           `json:"reorder_point"`
	Active       bool            `json:"active"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// ProductListResponse lista paginada de productos (CRUD simple, sin agregados).
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}

// ProductStockLevelDTO existencias de un producto en una bodega (vista detalle).
type ProductStockLevelDTO struct {
	WarehouseID       string          `json:"warehouse_id"`
	QuantityOnHand    int64           `json:"quantity_on_hand"`
	QuantityReserved  int64           `json:"quantity_reserved"`
	QuantityAvailable int64           `json:"quantity_available"`
	UnitCost          decimal.Decimal `json:"unit_cost"`
	ReorderPoint      *int64          `json:"reorder_point,omitempty"`
}

// ProductDetailResponse producto con su stock agregado y el desglose por
// bodega. StockStatus sale del mismo clasificador que usa el listado.
type ProductDetailResponse struct {
	ProductResponse
	TotalStock     int64                  `json:"total_stock"`
	WarehouseCount int                    `json:"warehouse_count"`
	TotalValue     decimal.Decimal        `json:"total_value"`
	StockStatus    string                 `json:"stock_status"`
	Levels         []ProductStockLevelDTO `json:"levels"`
}
