// Package inventory contiene los casos de uso del dashboard de inventario:
// listado agregado de productos, análisis de distribución entre bodegas y
// el reporte imprimible. La lógica pura vive en internal/domain/inventory.
package inventory

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/text/unicode/norm"

	"github.com/jhoicas/stockboard-api/internal/domain"
	"github.com/jhoicas/stockboard-api/internal/domain/inventory"
	"github.com/jhoicas/stockboard-api/internal/domain/repository"
)

// RawListingParams parámetros del query string tal como llegan (strings).
// El normalizador valida y coacciona; las cadenas vacías cuentan como
// ausentes, nunca como filtro por cadena vacía.
type RawListingParams struct {
	Search      string
	Category    string
	PriceMin    string
	PriceMax    string
	WarehouseID string
	StockFilter string
	SortBy      string
	SortOrder   string
	Page        string
	Limit       string
}

// RawDistributionParams parámetros crudos de la operación de distribución.
type RawDistributionParams struct {
	WarehouseID string
	ProductID   string
	Category    string
	MinValue    string
}

// NormalizeListingParams valida y normaliza los parámetros crudos a un
// descriptor tipado. Acumula todos los errores de campo y los devuelve como
// domain.ValidationErrors: una petición inválida se rechaza antes de tocar
// la base de datos. Validación pura, sin efectos.
func NormalizeListingParams(raw RawListingParams) (inventory.ListingQuery, error) {
	var errs domain.ValidationErrors

	q := inventory.ListingQuery{
		Search:      normalizeSearch(raw.Search),
		Category:    strings.TrimSpace(raw.Category),
		StockFilter: inventory.StockFilterAll,
		SortBy:      inventory.DefaultSortField,
		SortOrder:   "asc",
		Page:        1,
		Limit:       inventory.DefaultPageLimit,
	}

	if raw.WarehouseID != "" {
		if _, err := uuid.Parse(raw.WarehouseID); err != nil {
			errs = append(errs, domain.FieldError{Field: "warehouse_id", Message: "Invalid warehouse_id parameter"})
		} else {
			q.WarehouseID = raw.WarehouseID
		}
	}

	if raw.PriceMin != "" {
		if v, err := decimal.NewFromString(raw.PriceMin); err != nil {
			errs = append(errs, domain.FieldError{Field: "price_min", Message: "Invalid price_min parameter"})
		} else {
			q.PriceMin = &v
		}
	}
	if raw.PriceMax != "" {
		if v, err := decimal.NewFromString(raw.PriceMax); err != nil {
			errs = append(errs, domain.FieldError{Field: "price_max", Message: "Invalid price_max parameter"})
		} else {
			q.PriceMax = &v
		}
	}
	if q.PriceMin != nil && q.PriceMax != nil && q.PriceMin.GreaterThan(*q.PriceMax) {
		errs = append(errs, domain.FieldError{Field: "price_min", Message: "price_min must not exceed price_max"})
	}

	if raw.StockFilter != "" {
		f := inventory.StockFilter(raw.StockFilter)
		if !f.Valid() {
			errs = append(errs, domain.FieldError{
				Field:   "stock_filter",
				Message: fmt.Sprintf("Invalid stock_filter parameter: %q", raw.StockFilter),
			})
		} else {
			q.StockFilter = f
		}
	}

	if raw.Page != "" {
		n, err := strconv.Atoi(raw.Page)
		if err != nil || n < 1 {
			errs = append(errs, domain.FieldError{Field: "page", Message: "Invalid page parameter"})
		} else {
			q.Page = n
		}
	}
	if raw.Limit != "" {
		n, err := strconv.Atoi(raw.Limit)
		if err != nil || n < 1 || n > inventory.MaxPageLimit {
			errs = append(errs, domain.FieldError{Field: "limit", Message: "Invalid limit parameter"})
		} else {
			q.Limit = n
		}
	}

	// Campo de orden no reconocido: cae a name sin error, para no romper
	// clientes que envían campos de orden viejos.
	if raw.SortBy != "" && inventory.ListingSortFields[raw.SortBy] {
		q.SortBy = raw.SortBy
	}
	if strings.EqualFold(raw.SortOrder, "desc") {
		q.SortOrder = "desc"
	}

	if len(errs) > 0 {
		return inventory.ListingQuery{}, errs
	}
	return q, nil
}

// NormalizeDistributionParams valida los filtros opcionales de la operación
// de distribución. Mismas reglas que el listado: vacío = ausente, ids UUID,
// min_value decimal no negativo.
func NormalizeDistributionParams(raw RawDistributionParams) (repository.DistributionFilter, error) {
	var errs domain.ValidationErrors
	var f repository.DistributionFilter

	if raw.WarehouseID != "" {
		if _, err := uuid.Parse(raw.WarehouseID); err != nil {
			errs = append(errs, domain.FieldError{Field: "warehouse_id", Message: "Invalid warehouse_id parameter"})
		} else {
			f.WarehouseID = raw.WarehouseID
		}
	}
	if raw.ProductID != "" {
		if _, err := uuid.Parse(raw.ProductID); err != nil {
			errs = append(errs, domain.FieldError{Field: "product_id", Message: "Invalid product_id parameter"})
		} else {
			f.ProductID = raw.ProductID
		}
	}
	f.Category = strings.TrimSpace(raw.Category)

	if raw.MinValue != "" {
		v, err := decimal.NewFromString(raw.MinValue)
		if err != nil || v.IsNegative() {
			errs = append(errs, domain.FieldError{Field: "min_value", Message: "Invalid min_value parameter"})
		} else {
			f.MinValue = &v
		}
	}

	if len(errs) > 0 {
		return repository.DistributionFilter{}, errs
	}
	return f, nil
}

// normalizeSearch recorta y normaliza a NFC el término de búsqueda, para que
// entradas con diacríticos compuestos/descompuestos comparen igual en ILIKE.
func normalizeSearch(s string) string {
	return norm.NFC.String(strings.TrimSpace(s))
}
