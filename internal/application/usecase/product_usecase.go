package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/stockboard-api/internal/application/dto"
	"github.com/jhoicas/stockboard-api/internal/domain"
	"github.com/jhoicas/stockboard-api/internal/domain/entity"
	"github.com/jhoicas/stockboard-api/internal/domain/inventory"
	"github.com/jhoicas/stockboard-api/internal/domain/repository"
	"github.com/jhoicas/stockboard-api/pkg/logger"
)

// ProductUseCase casos de uso CRUD para el catálogo de productos. El stock
// no se edita por aquí: se maneja por bodega en el caso de uso de stock.
type ProductUseCase struct {
	repo      repository.ProductRepository
	stockRepo repository.StockLevelRepository
	invRepo   repository.InventoryReadRepository
	log       *logger.Logger
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(
	repo repository.ProductRepository,
	stockRepo repository.StockLevelRepository,
	invRepo repository.InventoryReadRepository,
	log *logger.Logger,
) *ProductUseCase {
	return &ProductUseCase{repo: repo, stockRepo: stockRepo, invRepo: invRepo, log: log}
}

// Create crea un producto nuevo. El SKU debe ser único y el costo no puede
// superar el precio de venta.
func (uc *ProductUseCase) Create(in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	existing, _ := uc.repo.GetBySKU(in.SKU)
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	if in.CostPrice.IsNegative() || in.SalePrice.IsNegative() || in.CostPrice.GreaterThan(in.SalePrice) {
		return nil, domain.ErrInvalidInput
	}
	if in.ReorderPoint < 0 {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now()
	product := &entity.Product{
		ID:           uuid.New().String(),
		SKU:          in.SKU,
		Name:         in.Name,
		Category:     in.Category,
		Description:  in.Description,
		CostPrice:    in.CostPrice,
		SalePrice:    in.SalePrice,
		ReorderPoint: in.ReorderPoint,
		Active:       true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// GetByID obtiene un producto por ID. nil si no existe.
func (uc *ProductUseCase) GetByID(id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	return toProductResponse(product), nil
}

// GetDetail obtiene el producto con su stock agregado y el desglose por
// bodega. El estado sale del mismo clasificador que usa el listado, así el
// detalle nunca contradice la fila del dashboard.
func (uc *ProductUseCase) GetDetail(ctx context.Context, id string) (*dto.ProductDetailResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}

	agg, err := uc.invRepo.GetProductStock(ctx, id)
	if err != nil {
		return nil, err
	}

	levels, err := uc.stockRepo.ListByProduct(id)
	if err != nil {
		return nil, err
	}

	detail := &dto.ProductDetailResponse{
		ProductResponse: *toProductResponse(product),
		Levels:          make([]dto.ProductStockLevelDTO, 0, len(levels)),
	}
	if agg != nil {
		detail.TotalStock = agg.TotalStock
		detail.WarehouseCount = agg.WarehouseCount
		detail.TotalValue = agg.TotalValue
	}
	detail.StockStatus = string(inventory.Classify(detail.TotalStock, product.ReorderPoint))

	for _, lv := range levels {
		detail.Levels = append(detail.Levels, dto.ProductStockLevelDTO{
			WarehouseID:       lv.WarehouseID,
			QuantityOnHand:    lv.QuantityOnHand,
			QuantityReserved:  lv.QuantityReserved,
			QuantityAvailable: lv.QuantityAvailable(),
			UnitCost:          lv.UnitCost,
			ReorderPoint:      lv.ReorderPoint,
		})
	}
	return detail, nil
}

// Update actualiza un producto (campos opcionales). El invariante de precios
// se revalida sobre el estado resultante.
func (uc *ProductUseCase) Update(id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}

	if in.Name != nil {
		product.Name = *in.Name
	}
	if in.Category != nil {
		product.Category = *in.Category
	}
	if in.Description != nil {
		product.Description = *in.Description
	}
	if in.CostPrice != nil {
		product.CostPrice = *in.CostPrice
	}
	if in.SalePrice != nil {
		product.SalePrice = *in.SalePrice
	}
	if in.ReorderPoint != nil {
		if *in.ReorderPoint < 0 {
			return nil, domain.ErrInvalidInput
		}
		product.ReorderPoint = *in.ReorderPoint
	}
	if in.Active != nil {
		product.Active = *in.Active
	}
	if product.CostPrice.IsNegative() || product.CostPrice.GreaterThan(product.SalePrice) {
		return nil, domain.ErrInvalidInput
	}

	product.UpdatedAt = time.Now()
	if err := uc.repo.Update(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// List lista el catálogo con paginación limit/offset.
func (uc *ProductUseCase) List(page dto.PageRequest) (*dto.ProductListResponse, error) {
	page.DefaultPage()
	list, err := uc.repo.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return &dto.ProductListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

// Delete elimina un producto. Si aún tiene existencias en alguna bodega se
// elimina igual (las filas de stock caen en cascada), pero queda registro en
// el log para auditoría.
func (uc *ProductUseCase) Delete(id string) error {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}

	levels, err := uc.stockRepo.ListByProduct(id)
	if err != nil {
		return err
	}
	var remaining int64
	for _, lv := range levels {
		remaining += lv.QuantityOnHand
	}
	if remaining > 0 {
		uc.log.Warn().
			Str("product_id", id).
			Str("sku", product.SKU).
			Int64("remaining_stock", remaining).
			Msg("eliminando producto con existencias")
	}

	return uc.repo.Delete(id)
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	return &dto.ProductResponse{
		ID:           p.ID,
		SKU:          p.SKU,
		Name:         p.Name,
		Category:     p.Category,
		Description:  p.Description,
		CostPrice:    p.CostPrice,
		SalePrice:    p.SalePrice,
		ReorderPoint: p.ReorderPoint,
		Active:       p.Active,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}
