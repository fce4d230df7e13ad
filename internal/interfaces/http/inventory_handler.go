package http

import (
	"github.com/gofiber/fiber/v2"

	appinv "github.com/jhoicas/stockboard-api/internal/application/inventory"
)

// InventoryHandler maneja las operaciones de lectura del dashboard:
// listado agregado, análisis de distribución y reporte PDF (protegido).
type InventoryHandler struct {
	listingUC      *appinv.ListingUseCase
	distributionUC *appinv.DistributionUseCase
	reportUC       *appinv.ReportUseCase
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(
	listingUC *appinv.ListingUseCase,
	distributionUC *appinv.DistributionUseCase,
	reportUC *appinv.ReportUseCase,
) *InventoryHandler {
	return &InventoryHandler{listingUC: listingUC, distributionUC: distributionUC, reportUC: reportUC}
}

// ListProducts godoc
// @Summary      Listado de productos con stock agregado
// @Description  Productos con la suma de existencias entre bodegas, filtrables por búsqueda, categoría, rango de precio, bodega y estado de stock.
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        search        query  string  false  "Busca en nombre, SKU y descripción"
// @Param        category      query  string  false  "Categoría exacta"
// @Param        price_min     query  string  false  "Precio de venta mínimo"
// @Param        price_max     query  string  false  "Precio de venta máximo"
// @Param        warehouse_id  query  string  false  "Restringe el agregado a una bodega (UUID)"
// @Param        stock_filter  query  string  false  "all | in_stock | low_stock | out_of_stock"  default(all)
// @Param        sort_by       query  string  false  "name | sku | category | sale_price | cost_price | total_stock"  default(name)
// @Param        sort_order    query  string  false  "asc | desc"  default(asc)
// @Param        page          query  int     false  "Página (>= 1)"  default(1)
// @Param        limit         query  int     false  "Tamaño de página (1-100)"  default(20)
// @Success      200  {object}  dto.ProductListingResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/inventory/products [get]
func (h *InventoryHandler) ListProducts(c *fiber.Ctx) error {
	raw := appinv.RawListingParams{
		Search:      c.Query("search"),
		Category:    c.Query("category"),
		PriceMin:    c.Query("price_min"),
		PriceMax:    c.Query("price_max"),
		WarehouseID: c.Query("warehouse_id"),
		StockFilter: c.Query("stock_filter"),
		SortBy:      c.Query("sort_by"),
		SortOrder:   c.Query("sort_order"),
		Page:        c.Query("page"),
		Limit:       c.Query("limit"),
	}
	out, err := h.listingUC.ListProducts(c.Context(), raw)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Distribution godoc
// @Summary      Análisis de distribución entre bodegas
// @Description  Agregados por bodega, puntaje de desbalance, capacidad relativa y sugerencias de traslado. Se recalcula en cada petición.
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        warehouse_id  query  string  false  "Limita el análisis a una bodega (UUID)"
// @Param        product_id    query  string  false  "Limita el análisis a un producto (UUID)"
// @Param        category      query  string  false  "Categoría exacta"
// @Param        min_value     query  string  false  "Descarta bodegas con valor total inferior"
// @Success      200  {object}  dto.DistributionResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/inventory/distribution [get]
func (h *InventoryHandler) Distribution(c *fiber.Ctx) error {
	out, err := h.distributionUC.AnalyzeDistribution(c.Context(), distributionParams(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// DistributionReport godoc
// @Summary      Reporte PDF del análisis de distribución
// @Tags         inventory
// @Security     Bearer
// @Produce      application/pdf
// @Param        warehouse_id  query  string  false  "Limita el análisis a una bodega (UUID)"
// @Param        product_id    query  string  false  "Limita el análisis a un producto (UUID)"
// @Param        category      query  string  false  "Categoría exacta"
// @Param        min_value     query  string  false  "Descarta bodegas con valor total inferior"
// @Success      200  {file}    binary
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/inventory/distribution/report [get]
func (h *InventoryHandler) DistributionReport(c *fiber.Ctx) error {
	pdfBytes, filename, err := h.reportUC.DownloadDistributionPDF(c.Context(), distributionParams(c))
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(pdfBytes)
}

func distributionParams(c *fiber.Ctx) appinv.RawDistributionParams {
	return appinv.RawDistributionParams{
		WarehouseID: c.Query("warehouse_id"),
		ProductID:   c.Query("product_id"),
		Category:    c.Query("category"),
		MinValue:    c.Query("min_value"),
	}
}
