package handlers

import (
	"net/http"

	"github.com/andresuchdata/autoorder/backend/internal/domain"
	"github.com/andresuchdata/autoorder/backend/internal/service"
	"github.com/gin-gonic/gin"
)

type CatalogHandler struct {
	catalogService *service.CatalogService
}

func NewCatalogHandler(catalogService *service.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService}
}

// ListSuppliers returns all suppliers
func (h *CatalogHandler) ListSuppliers(c *gin.Context) {
	suppliers, err := h.catalogService.ListSuppliers(c.Request.Context())
	if err != nil {
		respondError(c, "failed to fetch suppliers", err)
		return
	}
	if suppliers == nil {
		suppliers = []domain.Supplier{}
	}

	c.JSON(http.StatusOK, gin.H{"data": suppliers})
}

// ListProducts returns the catalog of a supplier
func (h *CatalogHandler) ListProducts(c *gin.Context) {
	supplierID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	products, err := h.catalogService.ListProducts(c.Request.Context(), supplierID)
	if err != nil {
		respondError(c, "failed to fetch products", err)
		return
	}
	if products == nil {
		products = []domain.Product{}
	}

	c.JSON(http.StatusOK, gin.H{"data": products})
}

func (h *CatalogHandler) UpsertProduct(c *gin.Context) {
	supplierID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var product domain.Product
	if !bindJSON(c, &product) {
		return
	}
	product.SupplierID = supplierID

	if err := h.catalogService.UpsertProduct(c.Request.Context(), &product); err != nil {
		respondError(c, "failed to save product", err)
		return
	}

	c.JSON(http.StatusOK, product)
}
