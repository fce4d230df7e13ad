package usecase_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stockboard-api/internal/application/dto"
	"github.com/jhoicas/stockboard-api/internal/application/usecase"
	"github.com/jhoicas/stockboard-api/internal/domain"
	"github.com/jhoicas/stockboard-api/internal/domain/entity"
	"github.com/jhoicas/stockboard-api/internal/domain/inventory"
	"github.com/jhoicas/stockboard-api/internal/domain/repository"
	"github.com/jhoicas/stockboard-api/pkg/logger"
)

type fakeProductRepo struct {
	byID  map[string]*entity.Product
	bySKU map[string]*entity.Product
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{byID: map[string]*entity.Product{}, bySKU: map[string]*entity.Product{}}
}

func (f *fakeProductRepo) Create(p *entity.Product) error {
	f.byID[p.ID] = p
	f.bySKU[p.SKU] = p
	return nil
}
func (f *fakeProductRepo) GetByID(id string) (*entity.Product, error)   { return f.byID[id], nil }
func (f *fakeProductRepo) GetBySKU(sku string) (*entity.Product, error) { return f.bySKU[sku], nil }
func (f *fakeProductRepo) Update(p *entity.Product) error               { f.byID[p.ID] = p; return nil }
func (f *fakeProductRepo) List(int, int) ([]*entity.Product, error)     { return nil, nil }
func (f *fakeProductRepo) Delete(id string) error                       { delete(f.byID, id); return nil }

type fakeStockLevelRepo struct {
	byProduct map[string][]*entity.StockLevel
}

func (f *fakeStockLevelRepo) Get(string, string) (*entity.StockLevel, error) { return nil, nil }
func (f *fakeStockLevelRepo) Upsert(*entity.StockLevel) error                { return nil }
func (f *fakeStockLevelRepo) ListByProduct(productID string) ([]*entity.StockLevel, error) {
	return f.byProduct[productID], nil
}
func (f *fakeStockLevelRepo) ListByWarehouse(string, int, int) ([]*entity.StockLevel, error) {
	return nil, nil
}

type fakeInvReadRepo struct {
	agg *repository.ProductStockRow
}

func (f *fakeInvReadRepo) ListProductStock(context.Context, inventory.ListingQuery) ([]repository.ProductStockRow, error) {
	return nil, nil
}
func (f *fakeInvReadRepo) CountProductStock(context.Context, inventory.ListingQuery) (int, error) {
	return 0, nil
}
func (f *fakeInvReadRepo) GetProductStock(context.Context, string) (*repository.ProductStockRow, error) {
	return f.agg, nil
}
func (f *fakeInvReadRepo) ListWarehouseStock(context.Context, repository.DistributionFilter) ([]repository.WarehouseStockRow, error) {
	return nil, nil
}

func newProductUC(repo *fakeProductRepo, stock *fakeStockLevelRepo, inv *fakeInvReadRepo) *usecase.ProductUseCase {
	if stock == nil {
		stock = &fakeStockLevelRepo{byProduct: map[string][]*entity.StockLevel{}}
	}
	if inv == nil {
		inv = &fakeInvReadRepo{}
	}
	log := logger.New(logger.Config{Env: "test", Level: "error"})
	return usecase.NewProductUseCase(repo, stock, inv, log)
}

func validCreate() dto.CreateProductRequest {
	return dto.CreateProductRequest{
		SKU:          "SKU-001",
		Name:         "Taladro",
		Category:     "Herramientas",
		CostPrice:    decimal.NewFromInt(60),
		SalePrice:    decimal.NewFromInt(100),
		ReorderPoint: 10,
	}
}

func TestProductCreate_OK(t *testing.T) {
	uc := newProductUC(newFakeProductRepo(), nil, nil)

	resp, err := uc.Create(validCreate())
	require.NoError(t, err)
	assert.NotEmpty(t, resp.ID)
	assert.True(t, resp.Active)
	assert.Equal(t, int64(10), resp.ReorderPoint)
}

func TestProductCreate_SKUDuplicado(t *testing.T) {
	repo := newFakeProductRepo()
	uc := newProductUC(repo, nil, nil)

	_, err := uc.Create(validCreate())
	require.NoError(t, err)

	_, err = uc.Create(validCreate())
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestProductCreate_CostoMayorQuePrecio(t *testing.T) {
	uc := newProductUC(newFakeProductRepo(), nil, nil)

	in := validCreate()
	in.CostPrice = decimal.NewFromInt(150)
	_, err := uc.Create(in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestProductUpdate_RevalidaInvarianteDePrecios(t *testing.T) {
	repo := newFakeProductRepo()
	uc := newProductUC(repo, nil, nil)

	created, err := uc.Create(validCreate())
	require.NoError(t, err)

	// Bajar el precio de venta por debajo del costo existente debe fallar.
	bad := decimal.NewFromInt(10)
	_, err = uc.Update(created.ID, dto.UpdateProductRequest{SalePrice: &bad})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestProductDetail_ClasificaConElAgregado(t *testing.T) {
	repo := newFakeProductRepo()
	inv := &fakeInvReadRepo{}
	uc := newProductUC(repo, nil, inv)

	created, err := uc.Create(validCreate())
	require.NoError(t, err)

	inv.agg = &repository.ProductStockRow{
		ProductID:      created.ID,
		TotalStock:     4, // bajo el umbral 10
		WarehouseCount: 1,
		TotalValue:     decimal.NewFromInt(240),
	}

	detail, err := uc.GetDetail(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, "low_stock", detail.StockStatus)
	assert.Equal(t, int64(4), detail.TotalStock)
}

func TestProductDetail_SinFilasDeStockEsAgotado(t *testing.T) {
	repo := newFakeProductRepo()
	uc := newProductUC(repo, nil, nil)

	created, err := uc.Create(validCreate())
	require.NoError(t, err)

	detail, err := uc.GetDetail(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, "out_of_stock", detail.StockStatus)
	assert.Empty(t, detail.Levels)
}

func TestProductDelete_ConExistenciasEliminaIgual(t *testing.T) {
	repo := newFakeProductRepo()
	stock := &fakeStockLevelRepo{byProduct: map[string][]*entity.StockLevel{}}
	uc := newProductUC(repo, stock, nil)

	created, err := uc.Create(validCreate())
	require.NoError(t, err)
	stock.byProduct[created.ID] = []*entity.StockLevel{{ProductID: created.ID, QuantityOnHand: 7}}

	require.NoError(t, uc.Delete(created.ID))
	got, _ := repo.GetByID(created.ID)
	assert.Nil(t, got, "se elimina aunque queden existencias; solo se registra en el log")
}

func TestProductDelete_NoExiste(t *testing.T) {
	uc := newProductUC(newFakeProductRepo(), nil, nil)
	assert.ErrorIs(t, uc.Delete("nope"), domain.ErrNotFound)
}
