package inventory

import (
	"context"
	"fmt"

	"github.com/jhoicas/stockboard-api/internal/application/dto"
	"github.com/jhoicas/stockboard-api/internal/domain/inventory"
	"github.com/jhoicas/stockboard-api/internal/domain/repository"
)

// ListingUseCase operación de listado del dashboard: productos con stock
// agregado, filtrados/ordenados/paginados, con total exacto para la
// paginación. Sin estado: cada petición es un cómputo independiente.
type ListingUseCase struct {
	repo repository.InventoryReadRepository
}

// NewListingUseCase construye el caso de uso.
func NewListingUseCase(repo repository.InventoryReadRepository) *ListingUseCase {
	return &ListingUseCase{repo: repo}
}

// ListProducts normaliza los parámetros crudos, ejecuta la página y el
// conteo en paralelo (son lecturas independientes) y clasifica cada fila
// con el clasificador de dominio.
//
// La página y el conteo no comparten transacción: si hay escrituras entre
// ambas lecturas, pagination.total puede quedar desfasado respecto a la
// página devuelta. Se acepta esa obsolescencia de nivel lectura-repetida;
// el repositorio garantiza en cambio que ambos usan el mismo predicado.
func (uc *ListingUseCase) ListProducts(ctx context.Context, raw RawListingParams) (*dto.ProductListingResponse, error) {
	q, err := NormalizeListingParams(raw)
	if err != nil {
		return nil, err
	}

	type pageResult struct {
		rows []repository.ProductStockRow
		err  error
	}
	type countResult struct {
		total int
		err   error
	}

	pageCh := make(chan pageResult, 1)
	countCh := make(chan countResult, 1)

	go func() {
		rows, err := uc.repo.ListProductStock(ctx, q)
		pageCh <- pageResult{rows, err}
	}()
	go func() {
		total, err := uc.repo.CountProductStock(ctx, q)
		countCh <- countResult{total, err}
	}()

	page := <-pageCh
	count := <-countCh

	if page.err != nil {
		return nil, fmt.Errorf("listado: página: %w", page.err)
	}
	if count.err != nil {
		return nil, fmt.Errorf("listado: conteo: %w", count.err)
	}

	products := make([]dto.ProductListingItemDTO, 0, len(page.rows))
	for _, r := range page.rows {
		products = append(products, dto.ProductListingItemDTO{
			ID:             r.ProductID,
			SKU:            r.SKU,
			Name:           r.Name,
			Category:       r.Category,
			SalePrice:      r.SalePrice,
			CostPrice:      r.CostPrice,
			ReorderPoint:   r.ReorderPoint,
			TotalStock:     r.TotalStock,
			WarehouseCount: r.WarehouseCount,
			TotalValue:     r.TotalValue,
			StockStatus:    string(inventory.Classify(r.TotalStock, r.ReorderPoint)),
		})
	}

	return &dto.ProductListingResponse{
		Products: products,
		Filters: dto.ListingFiltersDTO{
			Search:      q.Search,
			Category:    q.Category,
			StockFilter: string(q.StockFilter),
		},
		Pagination: buildPagination(q.Page, q.Limit, count.total),
	}, nil
}

// buildPagination deriva los metadatos de página del total exacto.
func buildPagination(page, limit, total int) dto.PaginationMeta {
	totalPages := 0
	if total > 0 {
		totalPages = (total + limit - 1) / limit
	}
	return dto.PaginationMeta{
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: totalPages,
		HasNext:    page < totalPages,
		HasPrev:    page > 1,
	}
}
