package inventory

import "github.com/shopspring/decimal"

// StockFilter filtro de estado de stock para el listado de productos.
// Se evalúa sobre el agregado (suma de existencias entre bodegas),
// nunca sobre una fila individual.
type StockFilter string

const (
	StockFilterAll        StockFilter = "all"
	StockFilterInStock    StockFilter = "in_stock"
	StockFilterLowStock   StockFilter = "low_stock"
	StockFilterOutOfStock StockFilter = "out_of_stock"
)

// Valid indica si el valor es uno de los filtros enumerados.
func (f StockFilter) Valid() bool {
	switch f {
	case StockFilterAll, StockFilterInStock, StockFilterLowStock, StockFilterOutOfStock:
		return true
	}
	return false
}

// Campos de ordenamiento permitidos para el listado. Cualquier otro valor
// cae silenciosamente a DefaultSortField; no genera error de validación.
var ListingSortFields = map[string]bool{
	"name":        true,
	"sku":         true,
	"category":    true,
	"sale_price":  true,
	"cost_price":  true,
	"total_stock": true,
}

// DefaultSortField campo de orden por defecto y fallback.
const DefaultSortField = "name"

// Límites de paginación del listado.
const (
	DefaultPageLimit = 20
	MaxPageLimit     = 100
)

// ListingQuery descriptor normalizado de filtros, orden y paginación para
// el listado de productos. Derivado por petición, nunca persistido.
// Invariantes: Page >= 1, 1 <= Limit <= MaxPageLimit, SortBy pertenece a
// ListingSortFields, y PriceMin <= PriceMax cuando ambos están presentes.
type ListingQuery struct {
	Search      string
	Category    string
	PriceMin    *decimal.Decimal
	PriceMax    *decimal.Decimal
	WarehouseID string // restringe el agregado a una sola bodega
	StockFilter StockFilter
	SortBy      string
	SortOrder   string // asc | desc
	Page        int
	Limit       int
}

// Offset desplazamiento de la página actual.
func (q ListingQuery) Offset() int {
	return (q.Page - 1) * q.Limit
}
