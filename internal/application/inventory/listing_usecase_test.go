package inventory_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appinv "github.com/jhoicas/stockboard-api/internal/application/inventory"
	"github.com/jhoicas/stockboard-api/internal/domain"
	"github.com/jhoicas/stockboard-api/internal/domain/inventory"
	"github.com/jhoicas/stockboard-api/internal/domain/repository"
)

// fakeInventoryRepo implementación en memoria del puerto de lectura.
// Captura el descriptor recibido para verificar que página y conteo
// comparten exactamente el mismo filtro normalizado.
type fakeInventoryRepo struct {
	rows  []repository.ProductStockRow
	total int

	listErr  error
	countErr error

	listQuery  inventory.ListingQuery
	countQuery inventory.ListingQuery
}

func (f *fakeInventoryRepo) ListProductStock(_ context.Context, q inventory.ListingQuery) ([]repository.ProductStockRow, error) {
	f.listQuery = q
	return f.rows, f.listErr
}

func (f *fakeInventoryRepo) CountProductStock(_ context.Context, q inventory.ListingQuery) (int, error) {
	f.countQuery = q
	return f.total, f.countErr
}

func (f *fakeInventoryRepo) GetProductStock(context.Context, string) (*repository.ProductStockRow, error) {
	return nil, nil
}

func (f *fakeInventoryRepo) ListWarehouseStock(context.Context, repository.DistributionFilter) ([]repository.WarehouseStockRow, error) {
	return nil, nil
}

func stockRow(id, sku string, total, reorder int64) repository.ProductStockRow {
	return repository.ProductStockRow{
		ProductID:      id,
		SKU:            sku,
		Name:           "Producto " + sku,
		Category:       "General",
		SalePrice:      decimal.NewFromInt(100),
		CostPrice:      decimal.NewFromInt(60),
		ReorderPoint:   reorder,
		TotalStock:     total,
		WarehouseCount: 2,
		TotalValue:     decimal.NewFromInt(60 * total),
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// ListProducts
// ──────────────────────────────────────────────────────────────────────────────

func TestListProducts_ClasificaCadaFila(t *testing.T) {
	repo := &fakeInventoryRepo{
		rows: []repository.ProductStockRow{
			stockRow("p1", "SKU-1", 0, 10),   // agotado
			stockRow("p2", "SKU-2", 5, 10),   // bajo
			stockRow("p3", "SKU-3", 10, 10),  // en el umbral: en stock
			stockRow("p4", "SKU-4", 500, 10), // en stock
		},
		total: 4,
	}
	uc := appinv.NewListingUseCase(repo)

	resp, err := uc.ListProducts(context.Background(), appinv.RawListingParams{})
	require.NoError(t, err)
	require.Len(t, resp.Products, 4)

	assert.Equal(t, "out_of_stock", resp.Products[0].StockStatus)
	assert.Equal(t, "low_stock", resp.Products[1].StockStatus)
	assert.Equal(t, "in_stock", resp.Products[2].StockStatus)
	assert.Equal(t, "in_stock", resp.Products[3].StockStatus)
}

func TestListProducts_PaginaYConteoCompartenFiltro(t *testing.T) {
	repo := &fakeInventoryRepo{total: 0}
	uc := appinv.NewListingUseCase(repo)

	_, err := uc.ListProducts(context.Background(), appinv.RawListingParams{
		Search:      "taladro",
		Category:    "Herramientas",
		StockFilter: "low_stock",
		SortBy:      "total_stock",
		SortOrder:   "desc",
		Page:        "2",
		Limit:       "25",
	})
	require.NoError(t, err)

	// Ambas consultas deben recibir el mismo descriptor; de lo contrario el
	// total de paginación no corresponde a la página devuelta.
	assert.Equal(t, repo.listQuery, repo.countQuery)
	assert.Equal(t, "taladro", repo.listQuery.Search)
	assert.Equal(t, inventory.StockFilterLowStock, repo.listQuery.StockFilter)
	assert.Equal(t, 2, repo.listQuery.Page)
	assert.Equal(t, 25, repo.listQuery.Offset())
}

func TestListProducts_MetadatosDePaginacion(t *testing.T) {
	cases := []struct {
		name       string
		page       string
		limit      string
		total      int
		totalPages int
		hasNext    bool
		hasPrev    bool
	}{
		{"sin resultados", "1", "20", 0, 0, false, false},
		{"una página justa", "1", "20", 20, 1, false, false},
		{"total no divisible redondea arriba", "1", "20", 41, 3, true, false},
		{"página intermedia", "2", "20", 41, 3, true, true},
		{"última página", "3", "20", 41, 3, false, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			repo := &fakeInventoryRepo{total: tc.total}
			uc := appinv.NewListingUseCase(repo)

			resp, err := uc.ListProducts(context.Background(), appinv.RawListingParams{
				Page: tc.page, Limit: tc.limit,
			})
			require.NoError(t, err)

			assert.Equal(t, tc.total, resp.Pagination.Total)
			assert.Equal(t, tc.totalPages, resp.Pagination.TotalPages)
			assert.Equal(t, tc.hasNext, resp.Pagination.HasNext)
			assert.Equal(t, tc.hasPrev, resp.Pagination.HasPrev)
		})
	}
}

func TestListProducts_EcoDeFiltros(t *testing.T) {
	repo := &fakeInventoryRepo{}
	uc := appinv.NewListingUseCase(repo)

	resp, err := uc.ListProducts(context.Background(), appinv.RawListingParams{
		Search:   "cable",
		Category: "Eléctricos",
	})
	require.NoError(t, err)

	assert.Equal(t, "cable", resp.Filters.Search)
	assert.Equal(t, "Eléctricos", resp.Filters.Category)
	assert.Equal(t, "all", resp.Filters.StockFilter)
}

func TestListProducts_ParametrosInvalidosNoTocanElRepositorio(t *testing.T) {
	repo := &fakeInventoryRepo{}
	uc := appinv.NewListingUseCase(repo)

	_, err := uc.ListProducts(context.Background(), appinv.RawListingParams{Page: "0"})
	require.Error(t, err)

	_, ok := domain.AsValidation(err)
	assert.True(t, ok)
	assert.Empty(t, repo.listQuery.Page, "no debe ejecutar consultas con entrada inválida")
}

func TestListProducts_PropagaErroresDelRepositorio(t *testing.T) {
	dbErr := errors.New("conexión rechazada")

	t.Run("error en la página", func(t *testing.T) {
		uc := appinv.NewListingUseCase(&fakeInventoryRepo{listErr: dbErr})
		_, err := uc.ListProducts(context.Background(), appinv.RawListingParams{})
		require.Error(t, err)
		assert.ErrorIs(t, err, dbErr)
	})

	t.Run("error en el conteo", func(t *testing.T) {
		uc := appinv.NewListingUseCase(&fakeInventoryRepo{countErr: dbErr})
		_, err := uc.ListProducts(context.Background(), appinv.RawListingParams{})
		require.Error(t, err)
		assert.ErrorIs(t, err, dbErr)
	})
}

func TestListProducts_SinResultadosDevuelveListaVacia(t *testing.T) {
	uc := appinv.NewListingUseCase(&fakeInventoryRepo{})

	resp, err := uc.ListProducts(context.Background(), appinv.RawListingParams{Search: "inexistente"})
	require.NoError(t, err)

	assert.NotNil(t, resp.Products, "lista vacía, no null")
	assert.Empty(t, resp.Products)
	assert.Equal(t, 0, resp.Pagination.Total)
}
