package postgres

import (
	"fmt"
	"strings"

	"github.com/jhoicas/stockboard-api/internal/domain/inventory"
)

// Columnas ORDER BY permitidas, por campo de orden normalizado. El descriptor
// ya pasó por el allow-list del normalizador; este mapa es la única fuente de
// texto SQL para el orden (nunca se interpola entrada del usuario).
var listingSortColumns = map[string]string{
	"name":        "p.name",
	"sku":         "p.sku",
	"category":    "p.category",
	"sale_price":  "p.sale_price",
	"cost_price":  "p.cost_price",
	"total_stock": "total_stock",
}

const listingSelect = `
SELECT
	p.id, p.sku, p.name, p.category, p.sale_price, p.cost_price, p.reorder_point,
	COALESCE(SUM(s.quantity_on_hand), 0)::bigint AS total_stock,
	COUNT(s.warehouse_id) FILTER (WHERE s.quantity_on_hand > 0)::int AS warehouse_count,
	COALESCE(SUM(s.quantity_on_hand * s.unit_cost), 0) AS total_value`

// buildListingSQL construye la consulta agregada del listado. La página y el
// conteo se derivan del MISMO cuerpo (joins, WHERE, GROUP BY y HAVING): la
// única diferencia es el envoltorio COUNT y la ausencia de ORDER/LIMIT, así
// el total de paginación siempre corresponde al filtro de la página.
//
// La restricción por bodega va dentro del JOIN, no en el WHERE: debe limitar
// las filas que entran a la suma sin excluir productos con agregado cero.
// El filtro de estado de stock es post-agregación, por eso vive en HAVING.
func buildListingSQL(q inventory.ListingQuery, includePage bool) (string, []any) {
	var args []any
	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	var b strings.Builder
	b.WriteString(listingSelect)
	b.WriteString("\nFROM products p")
	b.WriteString("\nLEFT JOIN stock_levels s ON s.product_id = p.id")
	if q.WarehouseID != "" {
		b.WriteString(" AND s.warehouse_id = " + arg(q.WarehouseID))
	}

	where := []string{"p.active"}
	if q.Search != "" {
		p := arg("%" + q.Search + "%")
		where = append(where, fmt.Sprintf("(p.name ILIKE %[1]s OR p.sku ILIKE %[1]s OR p.description ILIKE %[1]s)", p))
	}
	if q.Category != "" {
		where = append(where, "p.category = "+arg(q.Category))
	}
	if q.PriceMin != nil {
		where = append(where, "p.sale_price >= "+arg(*q.PriceMin))
	}
	if q.PriceMax != nil {
		where = append(where, "p.sale_price <= "+arg(*q.PriceMax))
	}
	b.WriteString("\nWHERE " + strings.Join(where, " AND "))

	b.WriteString("\nGROUP BY p.id, p.sku, p.name, p.category, p.sale_price, p.cost_price, p.reorder_point")

	switch q.StockFilter {
	case inventory.StockFilterOutOfStock:
		b.WriteString("\nHAVING COALESCE(SUM(s.quantity_on_hand), 0) = 0")
	case inventory.StockFilterLowStock:
		b.WriteString("\nHAVING COALESCE(SUM(s.quantity_on_hand), 0) > 0 AND COALESCE(SUM(s.quantity_on_hand), 0) < p.reorder_point")
	case inventory.StockFilterInStock:
		// in_stock filtra por existencia de stock (total > 0): incluye también
		// los productos en stock bajo. El estado por fila lo deriva aparte el
		// clasificador de dominio.
		b.WriteString("\nHAVING COALESCE(SUM(s.quantity_on_hand), 0) > 0")
	}

	if !includePage {
		return b.String(), args
	}

	dir := "ASC"
	if q.SortOrder == "desc" {
		dir = "DESC"
	}
	col, ok := listingSortColumns[q.SortBy]
	if !ok {
		col = listingSortColumns[inventory.DefaultSortField]
	}
	// p.id como desempate: orden total estable entre páginas.
	fmt.Fprintf(&b, "\nORDER BY %s %s, p.id", col, dir)

	b.WriteString("\nLIMIT " + arg(q.Limit))
	b.WriteString(" OFFSET " + arg(q.Offset()))

	return b.String(), args
}

// buildListingCountSQL envuelve la consulta sin paginar en un COUNT exacto.
func buildListingCountSQL(q inventory.ListingQuery) (string, []any) {
	inner, args := buildListingSQL(q, false)
	return "SELECT COUNT(*) FROM (" + inner + "\n) AS filtered", args
}
