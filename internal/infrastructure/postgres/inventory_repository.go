package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/stockboard-api/internal/domain/inventory"
	"github.com/jhoicas/stockboard-api/internal/domain/repository"
)

var _ repository.InventoryReadRepository = (*InventoryReadRepo)(nil)

// InventoryReadRepo consultas agregadas del dashboard sobre PostgreSQL.
// La agregación vive en SQL (SUM por producto, HAVING para el filtro de
// estado); el resto de la lógica es del dominio.
type InventoryReadRepo struct {
	q Querier
}

// NewInventoryReadRepository construye el adaptador de lectura. Pasar pool o tx (Querier).
func NewInventoryReadRepository(q Querier) *InventoryReadRepo {
	return &InventoryReadRepo{q: q}
}

// ListProductStock devuelve la página de productos agregados.
func (r *InventoryReadRepo) ListProductStock(ctx context.Context, q inventory.ListingQuery) ([]repository.ProductStockRow, error) {
	query, args := buildListingSQL(q, true)
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list product stock: %w", err)
	}
	defer rows.Close()

	out := make([]repository.ProductStockRow, 0, q.Limit)
	for rows.Next() {
		var row repository.ProductStockRow
		if err := rows.Scan(
			&row.ProductID, &row.SKU, &row.Name, &row.Category,
			&row.SalePrice, &row.CostPrice, &row.ReorderPoint,
			&row.TotalStock, &row.WarehouseCount, &row.TotalValue,
		); err != nil {
			return nil, fmt.Errorf("scan product stock: %w", err)
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

// CountProductStock total exacto bajo el mismo predicado que ListProductStock.
func (r *InventoryReadRepo) CountProductStock(ctx context.Context, q inventory.ListingQuery) (int, error) {
	query, args := buildListingCountSQL(q)
	var total int
	if err := r.q.QueryRow(ctx, query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("count product stock: %w", err)
	}
	return total, nil
}

// GetProductStock agregado de un solo producto. nil si no existe.
func (r *InventoryReadRepo) GetProductStock(ctx context.Context, productID string) (*repository.ProductStockRow, error) {
	query := listingSelect + `
FROM products p
LEFT JOIN stock_levels s ON s.product_id = p.id
WHERE p.id = $1
GROUP BY p.id, p.sku, p.name, p.category, p.sale_price, p.cost_price, p.reorder_point`

	var row repository.ProductStockRow
	err := r.q.QueryRow(ctx, query, productID).Scan(
		&row.ProductID, &row.SKU, &row.Name, &row.Category,
		&row.SalePrice, &row.CostPrice, &row.ReorderPoint,
		&row.TotalStock, &row.WarehouseCount, &row.TotalValue,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product stock: %w", err)
	}
	return &row, nil
}

// ListWarehouseStock filas (bodega, producto) del alcance dado, ordenadas por
// bodega y producto para que el plegado preserve un orden determinista.
// ReorderPoint resuelve el override por bodega con fallback al del producto.
func (r *InventoryReadRepo) ListWarehouseStock(ctx context.Context, f repository.DistributionFilter) ([]repository.WarehouseStockRow, error) {
	var args []any
	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	where := []string{"w.active", "p.active"}
	if f.WarehouseID != "" {
		where = append(where, "s.warehouse_id = "+arg(f.WarehouseID))
	}
	if f.ProductID != "" {
		where = append(where, "s.product_id = "+arg(f.ProductID))
	}
	if f.Category != "" {
		where = append(where, "p.category = "+arg(f.Category))
	}

	query := `
SELECT
	w.id, w.name,
	p.id, p.sku, p.name, p.category,
	s.quantity_on_hand, s.unit_cost,
	COALESCE(s.reorder_point, p.reorder_point) AS reorder_point,
	s.quantity_on_hand * s.unit_cost AS line_value
FROM stock_levels s
JOIN warehouses w ON w.id = s.warehouse_id
JOIN products p ON p.id = s.product_id
WHERE ` + strings.Join(where, " AND ") + `
ORDER BY w.name, w.id, p.name, p.id`

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list warehouse stock: %w", err)
	}
	defer rows.Close()

	var out []repository.WarehouseStockRow
	for rows.Next() {
		var row repository.WarehouseStockRow
		if err := rows.Scan(
			&row.WarehouseID, &row.WarehouseName,
			&row.ProductID, &row.SKU, &row.ProductName, &row.Category,
			&row.QuantityOnHand, &row.UnitCost, &row.ReorderPoint, &row.LineValue,
		); err != nil {
			return nil, fmt.Errorf("scan warehouse stock: %w", err)
		}
		out = append(out, row)
	}
	return out, rows.Err()
}
