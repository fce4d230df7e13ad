package inventory_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appinv "github.com/jhoicas/stockboard-api/internal/application/inventory"
	"github.com/jhoicas/stockboard-api/internal/domain"
	"github.com/jhoicas/stockboard-api/internal/domain/repository"
)

// fakeDistributionRepo devuelve filas fijas y captura el filtro recibido.
type fakeDistributionRepo struct {
	fakeInventoryRepo
	whRows []repository.WarehouseStockRow
	filter repository.DistributionFilter
}

func (f *fakeDistributionRepo) ListWarehouseStock(_ context.Context, filter repository.DistributionFilter) ([]repository.WarehouseStockRow, error) {
	f.filter = filter
	return f.whRows, nil
}

func whRow(whID, whName, productID string, qty, reorder int64, unitCost int64) repository.WarehouseStockRow {
	return repository.WarehouseStockRow{
		WarehouseID:    whID,
		WarehouseName:  whName,
		ProductID:      productID,
		SKU:            "SKU-" + productID,
		ProductName:    "Producto " + productID,
		Category:       "General",
		QuantityOnHand: qty,
		UnitCost:       decimal.NewFromInt(unitCost),
		ReorderPoint:   reorder,
		LineValue:      decimal.NewFromInt(unitCost * qty),
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// AnalyzeDistribution
// ──────────────────────────────────────────────────────────────────────────────

func TestAnalyzeDistribution_PliegaFilasPorBodega(t *testing.T) {
	repo := &fakeDistributionRepo{whRows: []repository.WarehouseStockRow{
		whRow("w1", "Bodega Norte", "p1", 100, 10, 5),
		whRow("w1", "Bodega Norte", "p2", 0, 10, 3), // agotado
		whRow("w1", "Bodega Norte", "p3", 4, 10, 2), // bajo
		whRow("w2", "Bodega Sur", "p1", 50, 10, 5),
	}}
	uc := appinv.NewDistributionUseCase(repo)

	resp, err := uc.AnalyzeDistribution(context.Background(), appinv.RawDistributionParams{})
	require.NoError(t, err)
	require.Len(t, resp.Warehouses, 2)

	norte := resp.Warehouses[0]
	assert.Equal(t, "Bodega Norte", norte.WarehouseName, "conserva el orden de la consulta")
	assert.Equal(t, 3, norte.TotalProducts)
	assert.Equal(t, 1, norte.OutOfStockCount)
	assert.Equal(t, 1, norte.LowStockCount)
	assert.Equal(t, "508", norte.TotalValue.String()) // 100×5 + 0×3 + 4×2
	require.Len(t, norte.Products, 3)
	assert.Equal(t, "out_of_stock", norte.Products[1].StockStatus)

	sur := resp.Warehouses[1]
	assert.Equal(t, 1, sur.TotalProducts)
	assert.Equal(t, "250", sur.TotalValue.String())
}

func TestAnalyzeDistribution_DesbalanceYCapacidad(t *testing.T) {
	// Conteos 3 y 1: promedio 2, desviación máxima |3-2|/2 = 0.5 → high.
	repo := &fakeDistributionRepo{whRows: []repository.WarehouseStockRow{
		whRow("w1", "Norte", "p1", 10, 5, 1),
		whRow("w1", "Norte", "p2", 10, 5, 1),
		whRow("w1", "Norte", "p3", 10, 5, 1),
		whRow("w2", "Sur", "p1", 10, 5, 1),
	}}
	uc := appinv.NewDistributionUseCase(repo)

	resp, err := uc.AnalyzeDistribution(context.Background(), appinv.RawDistributionParams{})
	require.NoError(t, err)

	assert.InDelta(t, 0.5, resp.ImbalanceScore, 1e-9)
	assert.Equal(t, "high", resp.ImbalanceLevel)

	require.Len(t, resp.Capacity, 2)
	assert.InDelta(t, 100.0, resp.Capacity[0].UtilizationPct, 1e-9)
	assert.Equal(t, "critical", resp.Capacity[0].Level)
	assert.InDelta(t, 100.0/3.0, resp.Capacity[1].UtilizationPct, 1e-9)
	assert.Equal(t, "optimal", resp.Capacity[1].Level)
}

func TestAnalyzeDistribution_UnaBodegaSinDesbalanceNiSugerencias(t *testing.T) {
	repo := &fakeDistributionRepo{whRows: []repository.WarehouseStockRow{
		whRow("w1", "Única", "p1", 10, 5, 1),
	}}
	uc := appinv.NewDistributionUseCase(repo)

	resp, err := uc.AnalyzeDistribution(context.Background(), appinv.RawDistributionParams{})
	require.NoError(t, err)

	assert.Zero(t, resp.ImbalanceScore)
	assert.Equal(t, "low", resp.ImbalanceLevel)
	assert.Empty(t, resp.TransferSuggestions)
}

func TestAnalyzeDistribution_SinFilasRespuestaVacia(t *testing.T) {
	uc := appinv.NewDistributionUseCase(&fakeDistributionRepo{})

	resp, err := uc.AnalyzeDistribution(context.Background(), appinv.RawDistributionParams{})
	require.NoError(t, err)

	assert.NotNil(t, resp.Warehouses)
	assert.Empty(t, resp.Warehouses)
	assert.NotNil(t, resp.TransferSuggestions, "lista vacía, no null")
	assert.Zero(t, resp.ImbalanceScore)
}

func TestAnalyzeDistribution_MinValueDescartaBodegasTrasAgregar(t *testing.T) {
	// Norte vale 1000, Sur 50: con min_value=100 Sur desaparece del análisis
	// completo, incluido el cálculo de desbalance.
	repo := &fakeDistributionRepo{whRows: []repository.WarehouseStockRow{
		whRow("w1", "Norte", "p1", 100, 5, 10),
		whRow("w2", "Sur", "p1", 10, 5, 5),
	}}
	uc := appinv.NewDistributionUseCase(repo)

	resp, err := uc.AnalyzeDistribution(context.Background(), appinv.RawDistributionParams{MinValue: "100"})
	require.NoError(t, err)

	require.Len(t, resp.Warehouses, 1)
	assert.Equal(t, "Norte", resp.Warehouses[0].WarehouseName)
	assert.Zero(t, resp.ImbalanceScore, "con una sola bodega restante no hay desbalance")
	require.Len(t, resp.Capacity, 1)
}

func TestAnalyzeDistribution_GeneraSugerenciasDeTraslado(t *testing.T) {
	rows := make([]repository.WarehouseStockRow, 0, 650)
	for i := 0; i < 600; i++ {
		rows = append(rows, whRow("w1", "Central", prodID(i), 50, 5, 1))
	}
	// 50 productos en Sur, 8 de ellos agotados → prioridad high.
	for i := 0; i < 42; i++ {
		rows = append(rows, whRow("w2", "Sur", prodID(i), 50, 5, 1))
	}
	for i := 42; i < 50; i++ {
		rows = append(rows, whRow("w2", "Sur", prodID(i), 0, 5, 1))
	}
	repo := &fakeDistributionRepo{whRows: rows}
	uc := appinv.NewDistributionUseCase(repo)

	resp, err := uc.AnalyzeDistribution(context.Background(), appinv.RawDistributionParams{})
	require.NoError(t, err)

	require.Len(t, resp.TransferSuggestions, 1)
	s := resp.TransferSuggestions[0]
	assert.Equal(t, "w1", s.FromWarehouseID)
	assert.Equal(t, "w2", s.ToWarehouseID)
	assert.Equal(t, int64(110), s.SuggestedQuantity) // floor(0.2 × 550)
	assert.Equal(t, "high", s.Priority)
	assert.Equal(t, "Critical: 8 products out of stock", s.Reason)
}

func TestAnalyzeDistribution_FiltrosInvalidosNoTocanElRepositorio(t *testing.T) {
	repo := &fakeDistributionRepo{}
	uc := appinv.NewDistributionUseCase(repo)

	_, err := uc.AnalyzeDistribution(context.Background(), appinv.RawDistributionParams{WarehouseID: "no-uuid"})
	require.Error(t, err)

	_, ok := domain.AsValidation(err)
	assert.True(t, ok)
	assert.Empty(t, repo.filter.WarehouseID)
}

func prodID(i int) string {
	const digits = "0123456789"
	return "p" + string(digits[i/100%10]) + string(digits[i/10%10]) + string(digits[i%10])
}
