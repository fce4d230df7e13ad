package inventory

import "math"

// Niveles de desbalance de la distribución entre bodegas.
const (
	ImbalanceLow    = "low"
	ImbalanceMedium = "medium"
	ImbalanceHigh   = "high"
)

// Bandas de capacidad por bodega según su utilización relativa.
const (
	CapacityLow      = "low"
	CapacityOptimal  = "optimal"
	CapacityHigh     = "high"
	CapacityCritical = "critical"
)

// CapacityAssessment clasificación de capacidad de una bodega.
// UtilizationPct = (productos de la bodega / máximo entre bodegas) × 100.
type CapacityAssessment struct {
	WarehouseID    string
	WarehouseName  string
	UtilizationPct float64
	Level          string
	Recommendation string
}

// ImbalanceScore calcula el puntaje de desbalance: la desviación relativa
// máxima del conteo de productos de cualquier bodega respecto al promedio.
// Caso degenerado: con menos de 2 bodegas (o promedio 0) el puntaje es 0.
func ImbalanceScore(warehouses []WarehouseAggregate) float64 {
	if len(warehouses) < 2 {
		return 0
	}
	var sum float64
	for _, w := range warehouses {
		sum += float64(w.TotalProducts)
	}
	avg := sum / float64(len(warehouses))
	if avg == 0 {
		return 0
	}
	var score float64
	for _, w := range warehouses {
		dev := math.Abs(float64(w.TotalProducts)-avg) / avg
		if dev > score {
			score = dev
		}
	}
	return score
}

// ImbalanceLevel mapea el puntaje a un nivel: low < 0.2 <= medium < 0.5 <= high.
func ImbalanceLevel(score float64) string {
	switch {
	case score < 0.2:
		return ImbalanceLow
	case score < 0.5:
		return ImbalanceMedium
	default:
		return ImbalanceHigh
	}
}

// ClassifyCapacity clasifica cada bodega por su utilización relativa al
// máximo de productos entre todas las bodegas. Si el máximo es 0 (todas
// vacías), la utilización es 0 para todas.
//
// Bandas: <30 low, [30,70) optimal, [70,90) high, >=90 critical.
func ClassifyCapacity(warehouses []WarehouseAggregate) []CapacityAssessment {
	maxProducts := 0
	for _, w := range warehouses {
		if w.TotalProducts > maxProducts {
			maxProducts = w.TotalProducts
		}
	}

	out := make([]CapacityAssessment, 0, len(warehouses))
	for _, w := range warehouses {
		var pct float64
		if maxProducts > 0 {
			pct = float64(w.TotalProducts) / float64(maxProducts) * 100
		}
		level, recommendation := capacityBand(pct)
		out = append(out, CapacityAssessment{
			WarehouseID:    w.WarehouseID,
			WarehouseName:  w.WarehouseName,
			UtilizationPct: pct,
			Level:          level,
			Recommendation: recommendation,
		})
	}
	return out
}

func capacityBand(pct float64) (level, recommendation string) {
	switch {
	case pct < 30:
		return CapacityLow, "Consider consolidating stock or increasing inventory"
	case pct < 70:
		return CapacityOptimal, "No action needed"
	case pct < 90:
		return CapacityHigh, "Monitor closely and consider expansion"
	default:
		return CapacityCritical, "Urgent: redistribute stock or expand capacity"
	}
}
