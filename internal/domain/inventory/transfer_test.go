package inventory_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stockboard-api/internal/domain/inventory"
)

func whStock(id string, totalProducts, lowCount, outCount int) inventory.WarehouseAggregate {
	w := wh(id, totalProducts)
	w.LowStockCount = lowCount
	w.OutOfStockCount = outCount
	return w
}

// ──────────────────────────────────────────────────────────────────────────────
// SuggestTransfers — heurístico greedy, no optimización.
// ──────────────────────────────────────────────────────────────────────────────

// Escenario de referencia: a=600, b=50 (promedio 325).
// a > 1.3×325 = 422.5 (excedentaria) y b < 0.7×325 = 227.5 (deficitaria),
// por lo que debe sugerirse a→b con floor(0.2 × 550) = 110 unidades.
func TestSuggestTransfers_EscenarioReferencia(t *testing.T) {
	whs := []inventory.WarehouseAggregate{
		whStock("a", 600, 0, 0),
		whStock("b", 50, 0, 0),
	}
	got := inventory.SuggestTransfers(whs)
	require.Len(t, got, 1)

	s := got[0]
	assert.Equal(t, "a", s.FromWarehouseID)
	assert.Equal(t, "b", s.ToWarehouseID)
	assert.EqualValues(t, 110, s.SuggestedQuantity)
	assert.Equal(t, inventory.PriorityLow, s.Priority)
	assert.Equal(t, "Balance stock distribution", s.Reason)
}

func TestSuggestTransfers_SinBodegasOSolas(t *testing.T) {
	assert.Empty(t, inventory.SuggestTransfers(nil))
	assert.Empty(t, inventory.SuggestTransfers([]inventory.WarehouseAggregate{wh("a", 500)}))
}

func TestSuggestTransfers_SinParesNoSugiere(t *testing.T) {
	// Conteos parejos: nadie supera 1.3×promedio ni cae bajo 0.7×promedio.
	whs := []inventory.WarehouseAggregate{wh("a", 100), wh("b", 110), wh("c", 95)}
	assert.Empty(t, inventory.SuggestTransfers(whs))
}

func TestSuggestTransfers_FiltraCantidadesDeRuido(t *testing.T) {
	// a=55, b=5: el par clasifica pero floor(0.2 × 50) = 10 no supera el
	// umbral de ruido; con a=60, floor(0.2 × 55) = 11 sí se emite.
	conRuido := []inventory.WarehouseAggregate{wh("a", 55), wh("b", 5)}
	assert.Empty(t, inventory.SuggestTransfers(conRuido), "10 unidades es ruido, no se emite")

	justoEncima := []inventory.WarehouseAggregate{wh("a", 60), wh("b", 5)}
	got := inventory.SuggestTransfers(justoEncima)
	require.Len(t, got, 1)
	assert.EqualValues(t, 11, got[0].SuggestedQuantity)
}

func TestSuggestTransfers_PrioridadSegunBodegaReceptora(t *testing.T) {
	cases := []struct {
		name     string
		to       inventory.WarehouseAggregate
		priority string
		reason   string
	}{
		{
			"más de 5 agotados es high",
			whStock("b", 50, 0, 6),
			inventory.PriorityHigh,
			"Critical: 6 products out of stock",
		},
		{
			"más de 10 en stock bajo es medium",
			whStock("b", 50, 11, 5),
			inventory.PriorityMedium,
			"11 products running low",
		},
		{
			"sin urgencia es low",
			whStock("b", 50, 10, 5),
			inventory.PriorityLow,
			"Balance stock distribution",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			whs := []inventory.WarehouseAggregate{whStock("a", 600, 0, 0), tc.to}
			got := inventory.SuggestTransfers(whs)
			require.Len(t, got, 1)
			assert.Equal(t, tc.priority, got[0].Priority)
			assert.Equal(t, tc.reason, got[0].Reason)
		})
	}
}

// La prioridad high solo puede aparecer cuando la receptora tiene más de 5
// productos agotados; el orden final es high, medium, low con empates estables.
func TestSuggestTransfers_OrdenPorPrioridadEstable(t *testing.T) {
	whs := []inventory.WarehouseAggregate{
		whStock("e1", 900, 0, 0), // excedentaria
		whStock("d1", 50, 0, 0),  // low
		whStock("d2", 40, 12, 0), // medium
		whStock("d3", 30, 0, 7),  // high
		whStock("d4", 20, 0, 0),  // low (después de d1 en orden de generación)
	}
	got := inventory.SuggestTransfers(whs)
	require.Len(t, got, 4)

	assert.Equal(t, inventory.PriorityHigh, got[0].Priority)
	assert.Equal(t, "d3", got[0].ToWarehouseID)
	assert.Equal(t, inventory.PriorityMedium, got[1].Priority)
	assert.Equal(t, "d2", got[1].ToWarehouseID)
	// Empate en low: conserva el orden de generación d1 antes que d4.
	assert.Equal(t, inventory.PriorityLow, got[2].Priority)
	assert.Equal(t, "d1", got[2].ToWarehouseID)
	assert.Equal(t, inventory.PriorityLow, got[3].Priority)
	assert.Equal(t, "d4", got[3].ToWarehouseID)
}
