// seed puebla la base con datos de demostración: bodegas, productos y
// existencias repartidas de forma deliberadamente desbalanceada, para que el
// dashboard de distribución tenga algo interesante que mostrar.
//
// Uso: go run ./cmd/seed
// Lee la misma configuración que la API (DATABASE_URL o DB_*).
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/stockboard-api/internal/domain/entity"
	"github.com/jhoicas/stockboard-api/internal/infrastructure/postgres"
	"github.com/jhoicas/stockboard-api/pkg/config"
)

type seedProduct struct {
	sku      string
	name     string
	category string
	cost     int64
	price    int64
	reorder  int64
}

var products = []seedProduct{
	{"HER-001", "Taladro percutor 650W", "Herramientas", 180000, 259000, 10},
	{"HER-002", "Juego de destornilladores x12", "Herramientas", 32000, 54900, 25},
	{"HER-003", "Llave inglesa 10\"", "Herramientas", 18000, 32900, 20},
	{"ELE-001", "Cable encauchetado 3x12 (m)", "Eléctricos", 4200, 7500, 200},
	{"ELE-002", "Breaker monopolar 20A", "Eléctricos", 9800, 17900, 50},
	{"ELE-003", "Bombillo LED 9W", "Eléctricos", 3500, 6900, 100},
	{"PIN-001", "Pintura blanca tipo 1 (gal)", "Pinturas", 42000, 68900, 15},
	{"PIN-002", "Rodillo felpa 9\"", "Pinturas", 6500, 12900, 30},
	{"PLO-001", "Tubo PVC 1/2\" x 6m", "Plomería", 8900, 15900, 40},
	{"PLO-002", "Llave de paso 1/2\"", "Plomería", 12000, 21900, 25},
}

type seedWarehouse struct {
	name string
	city string
	// factor de llenado relativo: Central queda sobrecargada a propósito
	fill float64
}

var warehouses = []seedWarehouse{
	{"Bodega Central", "Bogotá", 1.0},
	{"Bodega Norte", "Medellín", 0.45},
	{"Bodega Sur", "Cali", 0.12},
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fail("cargar configuración", err)
	}
	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		fail("conexión a PostgreSQL", err)
	}
	defer pool.Close()

	productRepo := postgres.NewProductRepository(pool)
	warehouseRepo := postgres.NewWarehouseRepository(pool)
	stockRepo := postgres.NewStockLevelRepository(pool)

	now := time.Now()

	whIDs := make([]string, 0, len(warehouses))
	for _, w := range warehouses {
		wh := &entity.Warehouse{
			ID:        uuid.New().String(),
			Name:      w.name,
			City:      w.city,
			Active:    true,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := warehouseRepo.Create(wh); err != nil {
			fail("crear bodega "+w.name, err)
		}
		whIDs = append(whIDs, wh.ID)
		fmt.Printf("bodega %-16s %s\n", w.name, wh.ID)
	}

	for i, p := range products {
		product := &entity.Product{
			ID:           uuid.New().String(),
			SKU:          p.sku,
			Name:         p.name,
			Category:     p.category,
			CostPrice:    decimal.NewFromInt(p.cost),
			SalePrice:    decimal.NewFromInt(p.price),
			ReorderPoint: p.reorder,
			Active:       true,
			CreatedAt:    now,
			UpdatedAt:    now,
		}
		if err := productRepo.Create(product); err != nil {
			fail("crear producto "+p.sku, err)
		}

		for j, w := range warehouses {
			// Cantidad base decreciente por producto, escalada por bodega.
			// En la bodega Sur algunos productos quedan en cero o bajo el
			// umbral para alimentar las sugerencias de traslado.
			base := p.reorder * int64(4-i%3)
			qty := int64(float64(base) * w.fill)
			if j == len(warehouses)-1 && i%3 == 0 {
				qty = 0
			}
			level := &entity.StockLevel{
				ProductID:      product.ID,
				WarehouseID:    whIDs[j],
				QuantityOnHand: qty,
				UnitCost:       decimal.NewFromInt(p.cost),
				UpdatedAt:      now,
			}
			if err := stockRepo.Upsert(level); err != nil {
				fail("existencias "+p.sku, err)
			}
		}
		fmt.Printf("producto %-8s %s\n", p.sku, product.ID)
	}

	fmt.Println("seed completado")
}

func fail(msg string, err error) {
	fmt.Fprintf(os.Stderr, "%s: %v\n", msg, err)
	os.Exit(1)
}
