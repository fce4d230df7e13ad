// Package inventory contiene la lógica pura del motor de inventario:
// clasificación de stock, análisis de distribución entre bodegas y
// sugerencias de traslado. Sin I/O ni estado compartido; todos los
// valores son efímeros y se recalculan en cada petición.
package inventory

// Status clasificación del stock agregado de un producto frente a su punto de reorden.
type Status string

const (
	StatusOutOfStock Status = "out_of_stock"
	StatusLowStock   Status = "low_stock"
	StatusInStock    Status = "in_stock"
)

// Classify mapea (cantidad total, punto de reorden) a un Status.
// Función pura y total: es la única fuente de verdad del estado de stock;
// tanto el listado como el detalle y la distribución deben llamarla para
// que el estado nunca difiera entre respuestas.
//
//	total == 0              -> out_of_stock
//	0 < total < reorden     -> low_stock
//	total >= reorden        -> in_stock
func Classify(totalQuantity, reorderPoint int64) Status {
	switch {
	case totalQuantity <= 0:
		return StatusOutOfStock
	case totalQuantity < reorderPoint:
		return StatusLowStock
	default:
		return StatusInStock
	}
}
