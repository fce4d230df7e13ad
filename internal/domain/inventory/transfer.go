package inventory

import (
	"fmt"
	"sort"
)

// Prioridades de una sugerencia de traslado.
const (
	PriorityHigh   = "high"
	PriorityMedium = "medium"
	PriorityLow    = "low"
)

// Umbrales del heurístico de traslados.
const (
	highStockFactor = 1.3 // bodega con exceso: > 1.3 × promedio
	lowStockFactor  = 0.7 // bodega deficitaria: < 0.7 × promedio
	transferShare   = 0.2 // se propone mover el 20% de la diferencia
	minTransferQty  = 10  // sugerencias de <= 10 unidades se descartan como ruido
)

// TransferSuggestion recomendación de mover stock de una bodega con exceso
// a una deficitaria. Efímera: se recalcula en cada petición a partir de los
// agregados actuales.
type TransferSuggestion struct {
	FromWarehouseID   string
	FromWarehouseName string
	ToWarehouseID     string
	ToWarehouseName   string
	SuggestedQuantity int64
	Reason            string
	Priority          string
}

// SuggestTransfers propone traslados entre bodegas: clasifica cada bodega
// como excedentaria (> 1.3 × promedio) o deficitaria (< 0.7 × promedio) por
// conteo de productos y, para cada par (exceso, déficit), sugiere mover
// floor(0.2 × diferencia) unidades si supera el umbral de ruido.
//
// La prioridad se evalúa sobre la bodega receptora: high si tiene más de 5
// productos agotados, medium si más de 10 en stock bajo, low en otro caso.
// El resultado se ordena por prioridad descendente con orden estable (los
// empates conservan el orden de generación de pares).
//
// Es un pase greedy O(E×D) sobre decenas de bodegas, no un problema de
// transporte: no se garantiza optimalidad y ese es el contrato documentado.
func SuggestTransfers(warehouses []WarehouseAggregate) []TransferSuggestion {
	if len(warehouses) < 2 {
		return nil
	}

	var sum float64
	for _, w := range warehouses {
		sum += float64(w.TotalProducts)
	}
	avg := sum / float64(len(warehouses))

	var highStock, lowStock []WarehouseAggregate
	for _, w := range warehouses {
		switch {
		case float64(w.TotalProducts) > highStockFactor*avg:
			highStock = append(highStock, w)
		case float64(w.TotalProducts) < lowStockFactor*avg:
			lowStock = append(lowStock, w)
		}
	}

	var suggestions []TransferSuggestion
	for _, from := range highStock {
		for _, to := range lowStock {
			qty := int64(transferShare * float64(from.TotalProducts-to.TotalProducts))
			if qty <= minTransferQty {
				continue
			}
			reason, priority := transferPriority(to)
			suggestions = append(suggestions, TransferSuggestion{
				FromWarehouseID:   from.WarehouseID,
				FromWarehouseName: from.WarehouseName,
				ToWarehouseID:     to.WarehouseID,
				ToWarehouseName:   to.WarehouseName,
				SuggestedQuantity: qty,
				Reason:            reason,
				Priority:          priority,
			})
		}
	}

	sort.SliceStable(suggestions, func(i, j int) bool {
		return priorityRank(suggestions[i].Priority) > priorityRank(suggestions[j].Priority)
	})
	return suggestions
}

// transferPriority asigna razón y prioridad según la urgencia de la bodega receptora.
func transferPriority(to WarehouseAggregate) (reason, priority string) {
	switch {
	case to.OutOfStockCount > 5:
		return fmt.Sprintf("Critical: %d products out of stock", to.OutOfStockCount), PriorityHigh
	case to.LowStockCount > 10:
		return fmt.Sprintf("%d products running low", to.LowStockCount), PriorityMedium
	default:
		return "Balance stock distribution", PriorityLow
	}
}

func priorityRank(p string) int {
	switch p {
	case PriorityHigh:
		return 3
	case PriorityMedium:
		return 2
	default:
		return 1
	}
}
