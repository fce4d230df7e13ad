package inventory_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stockboard-api/internal/domain/inventory"
)

func wh(id string, totalProducts int) inventory.WarehouseAggregate {
	return inventory.WarehouseAggregate{
		WarehouseID:   id,
		WarehouseName: "Bodega " + id,
		TotalProducts: totalProducts,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// ImbalanceScore
// ──────────────────────────────────────────────────────────────────────────────

func TestImbalanceScore_CeroConMenosDeDosBodegas(t *testing.T) {
	assert.Zero(t, inventory.ImbalanceScore(nil))
	assert.Zero(t, inventory.ImbalanceScore([]inventory.WarehouseAggregate{wh("a", 100)}))
}

func TestImbalanceScore_CeroConConteosIguales(t *testing.T) {
	whs := []inventory.WarehouseAggregate{wh("a", 80), wh("b", 80), wh("c", 80)}
	assert.Zero(t, inventory.ImbalanceScore(whs))
}

func TestImbalanceScore_CeroConTodasVacias(t *testing.T) {
	// Promedio 0: guard de división por cero.
	whs := []inventory.WarehouseAggregate{wh("a", 0), wh("b", 0)}
	assert.Zero(t, inventory.ImbalanceScore(whs))
}

// El puntaje es la desviación relativa máxima: con una bodega divergiendo
// del promedio el puntaje debe crecer de forma monótona.
func TestImbalanceScore_MonotonoAlDivergir(t *testing.T) {
	prev := -1.0
	for _, diverging := range []int{100, 150, 250, 400, 800} {
		whs := []inventory.WarehouseAggregate{wh("a", diverging), wh("b", 100), wh("c", 100)}
		score := inventory.ImbalanceScore(whs)
		assert.Greater(t, score, prev, "diverging=%d", diverging)
		prev = score
	}
}

func TestImbalanceScore_ValorExacto(t *testing.T) {
	// a=600, b=50: promedio 325. Desviaciones: 275/325 ambas -> 0.84615...
	whs := []inventory.WarehouseAggregate{wh("a", 600), wh("b", 50)}
	assert.InDelta(t, 275.0/325.0, inventory.ImbalanceScore(whs), 1e-9)
}

func TestImbalanceLevel_Bandas(t *testing.T) {
	assert.Equal(t, inventory.ImbalanceLow, inventory.ImbalanceLevel(0))
	assert.Equal(t, inventory.ImbalanceLow, inventory.ImbalanceLevel(0.19))
	assert.Equal(t, inventory.ImbalanceMedium, inventory.ImbalanceLevel(0.2))
	assert.Equal(t, inventory.ImbalanceMedium, inventory.ImbalanceLevel(0.49))
	assert.Equal(t, inventory.ImbalanceHigh, inventory.ImbalanceLevel(0.5))
	assert.Equal(t, inventory.ImbalanceHigh, inventory.ImbalanceLevel(3.2))
}

// ──────────────────────────────────────────────────────────────────────────────
// ClassifyCapacity
// ──────────────────────────────────────────────────────────────────────────────

func TestClassifyCapacity_UtilizacionRelativaAlMaximo(t *testing.T) {
	whs := []inventory.WarehouseAggregate{
		wh("a", 200), // máximo -> 100% critical
		wh("b", 150), // 75% high
		wh("c", 100), // 50% optimal
		wh("d", 20),  // 10% low
	}
	got := inventory.ClassifyCapacity(whs)
	require.Len(t, got, 4)

	assert.InDelta(t, 100, got[0].UtilizationPct, 1e-9)
	assert.Equal(t, inventory.CapacityCritical, got[0].Level)

	assert.InDelta(t, 75, got[1].UtilizationPct, 1e-9)
	assert.Equal(t, inventory.CapacityHigh, got[1].Level)

	assert.InDelta(t, 50, got[2].UtilizationPct, 1e-9)
	assert.Equal(t, inventory.CapacityOptimal, got[2].Level)

	assert.InDelta(t, 10, got[3].UtilizationPct, 1e-9)
	assert.Equal(t, inventory.CapacityLow, got[3].Level)
}

func TestClassifyCapacity_BordesDeBanda(t *testing.T) {
	// Máximo 100 para que el conteo sea directamente el porcentaje.
	cases := []struct {
		count int
		level string
	}{
		{29, inventory.CapacityLow},
		{30, inventory.CapacityOptimal},
		{69, inventory.CapacityOptimal},
		{70, inventory.CapacityHigh},
		{89, inventory.CapacityHigh},
		{90, inventory.CapacityCritical},
		{100, inventory.CapacityCritical},
	}
	for _, tc := range cases {
		whs := []inventory.WarehouseAggregate{wh("max", 100), wh("x", tc.count)}
		got := inventory.ClassifyCapacity(whs)
		require.Len(t, got, 2)
		assert.Equal(t, tc.level, got[1].Level, "count=%d", tc.count)
	}
}

func TestClassifyCapacity_TodasVaciasEsCeroPorciento(t *testing.T) {
	// Guard de división por cero: máximo 0 -> utilización 0 para todas.
	whs := []inventory.WarehouseAggregate{wh("a", 0), wh("b", 0)}
	got := inventory.ClassifyCapacity(whs)
	require.Len(t, got, 2)
	for _, c := range got {
		assert.Zero(t, c.UtilizationPct)
		assert.Equal(t, inventory.CapacityLow, c.Level)
	}
}
