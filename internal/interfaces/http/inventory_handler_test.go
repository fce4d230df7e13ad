package http_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stockboard-api/internal/application/dto"
	appinv "github.com/jhoicas/stockboard-api/internal/application/inventory"
	"github.com/jhoicas/stockboard-api/internal/domain/inventory"
	"github.com/jhoicas/stockboard-api/internal/domain/repository"
	apphttp "github.com/jhoicas/stockboard-api/internal/interfaces/http"
)

// stubInventoryRepo repositorio de lectura fijo para los tests del handler.
type stubInventoryRepo struct {
	rows  []repository.ProductStockRow
	total int
}

func (s *stubInventoryRepo) ListProductStock(context.Context, inventory.ListingQuery) ([]repository.ProductStockRow, error) {
	return s.rows, nil
}
func (s *stubInventoryRepo) CountProductStock(context.Context, inventory.ListingQuery) (int, error) {
	return s.total, nil
}
func (s *stubInventoryRepo) GetProductStock(context.Context, string) (*repository.ProductStockRow, error) {
	return nil, nil
}
func (s *stubInventoryRepo) ListWarehouseStock(context.Context, repository.DistributionFilter) ([]repository.WarehouseStockRow, error) {
	return nil, nil
}

func buildInventoryApp(repo *stubInventoryRepo) *fiber.App {
	listingUC := appinv.NewListingUseCase(repo)
	distributionUC := appinv.NewDistributionUseCase(repo)
	handler := apphttp.NewInventoryHandler(listingUC, distributionUC, nil)

	app := fiber.New()
	app.Get("/api/inventory/products", handler.ListProducts)
	app.Get("/api/inventory/distribution", handler.Distribution)
	return app
}

func TestListProductsHandler_OK(t *testing.T) {
	repo := &stubInventoryRepo{
		rows: []repository.ProductStockRow{{
			ProductID:    "p1",
			SKU:          "SKU-1",
			Name:         "Taladro",
			Category:     "Herramientas",
			SalePrice:    decimal.NewFromInt(100),
			CostPrice:    decimal.NewFromInt(60),
			ReorderPoint: 10,
			TotalStock:   3,
			TotalValue:   decimal.NewFromInt(180),
		}},
		total: 41,
	}
	app := buildInventoryApp(repo)

	req := httptest.NewRequest(http.MethodGet, "/api/inventory/products?stock_filter=low_stock&page=2&limit=20", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body dto.ProductListingResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Len(t, body.Products, 1)
	assert.Equal(t, "low_stock", body.Products[0].StockStatus)
	assert.Equal(t, "low_stock", body.Filters.StockFilter)
	assert.Equal(t, 41, body.Pagination.Total)
	assert.Equal(t, 3, body.Pagination.TotalPages)
	assert.True(t, body.Pagination.HasNext)
	assert.True(t, body.Pagination.HasPrev)
}

func TestListProductsHandler_ParametroInvalidoDevuelve400ConDetalle(t *testing.T) {
	app := buildInventoryApp(&stubInventoryRepo{})

	req := httptest.NewRequest(http.MethodGet, "/api/inventory/products?warehouse_id=abc&page=0", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var body dto.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "VALIDATION", body.Code)
	require.Len(t, body.Errors, 2, "reporta todos los campos inválidos")

	fields := []string{body.Errors[0].Field, body.Errors[1].Field}
	assert.Contains(t, fields, "warehouse_id")
	assert.Contains(t, fields, "page")
	for _, fe := range body.Errors {
		if fe.Field == "warehouse_id" {
			assert.Equal(t, "Invalid warehouse_id parameter", fe.Message)
		}
	}
}

func TestDistributionHandler_SinDatosDevuelveAnalisisVacio(t *testing.T) {
	app := buildInventoryApp(&stubInventoryRepo{})

	req := httptest.NewRequest(http.MethodGet, "/api/inventory/distribution", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body dto.DistributionResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Empty(t, body.Warehouses)
	assert.Zero(t, body.ImbalanceScore)
	assert.Equal(t, "low", body.ImbalanceLevel)
}
