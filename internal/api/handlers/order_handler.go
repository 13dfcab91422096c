package handlers

import (
	"net/http"
	"strconv"

	"github.com/andresuchdata/autoorder/backend/internal/calculator"
	"github.com/andresuchdata/autoorder/backend/internal/domain"
	"github.com/andresuchdata/autoorder/backend/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type OrderHandler struct {
	orderService *service.OrderService
}

func NewOrderHandler(orderService *service.OrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

type calculateRequest struct {
	Settings SettingsRequest        `json:"settings"`
	Items    []calculator.OrderItem `json:"items"`
}

type createOrderRequest struct {
	SupplierID  int64              `json:"supplier_id"`
	LegalEntity string             `json:"legal_entity"`
	Settings    SettingsRequest    `json:"settings"`
	Lines       []domain.OrderLine `json:"lines"`
}

type statusRequest struct {
	Status string `json:"status" binding:"required"`
}

type replayRequest struct {
	Settings *SettingsRequest `json:"settings"`
}

// Calculate runs the calculation over unsaved items
func (h *OrderHandler) Calculate(c *gin.Context) {
	var req calculateRequest
	if !bindJSON(c, &req) {
		return
	}
	settings, err := req.Settings.toSettings()
	if err != nil {
		respondError(c, "invalid settings", err)
		return
	}

	summary, err := h.orderService.Calculate(c.Request.Context(), settings, req.Items)
	if err != nil {
		respondError(c, "failed to calculate order", err)
		return
	}

	c.JSON(http.StatusOK, summary)
}

// Shortage returns the shortage warning of every item
func (h *OrderHandler) Shortage(c *gin.Context) {
	var req calculateRequest
	if !bindJSON(c, &req) {
		return
	}
	settings, err := req.Settings.toSettings()
	if err != nil {
		respondError(c, "invalid settings", err)
		return
	}

	results, err := h.orderService.Shortages(c.Request.Context(), settings, req.Items)
	if err != nil {
		respondError(c, "failed to detect shortages", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": results})
}

func (h *OrderHandler) CreateOrder(c *gin.Context) {
	var req createOrderRequest
	if !bindJSON(c, &req) {
		return
	}
	settings, err := req.Settings.toSettings()
	if err != nil {
		respondError(c, "invalid settings", err)
		return
	}

	detail, err := h.orderService.CreateOrder(c.Request.Context(), service.CreateOrderRequest{
		SupplierID:  req.SupplierID,
		LegalEntity: req.LegalEntity,
		Settings:    settings,
		Lines:       req.Lines,
	})
	if err != nil {
		respondError(c, "failed to create order", err)
		return
	}

	c.JSON(http.StatusCreated, detail)
}

func (h *OrderHandler) ListOrders(c *gin.Context) {
	var supplierID int64
	if raw := c.Query("supplier_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || id <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid supplier_id"})
			return
		}
		supplierID = id
	}
	limit := parsePositiveIntWithDefault(c.Query("limit"), 50)

	orders, err := h.orderService.ListOrders(c.Request.Context(), supplierID, limit)
	if err != nil {
		respondError(c, "failed to fetch orders", err)
		return
	}
	if orders == nil {
		orders = []domain.Order{}
	}

	c.JSON(http.StatusOK, gin.H{"data": orders})
}

func (h *OrderHandler) GetOrder(c *gin.Context) {
	id, ok := parseOrderID(c)
	if !ok {
		return
	}

	detail, err := h.orderService.GetOrder(c.Request.Context(), id)
	if err != nil {
		respondError(c, "failed to fetch order", err)
		return
	}

	c.JSON(http.StatusOK, detail)
}

func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	id, ok := parseOrderID(c)
	if !ok {
		return
	}
	var req statusRequest
	if !bindJSON(c, &req) {
		return
	}
	status, valid := domain.ParseOrderStatus(req.Status)
	if !valid {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown status", "details": req.Status})
		return
	}

	if err := h.orderService.UpdateStatus(c.Request.Context(), id, status); err != nil {
		respondError(c, "failed to update order status", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"id": id, "status": status, "label": status.Label()})
}

// ReplayOrder starts a new draft from a previous order
func (h *OrderHandler) ReplayOrder(c *gin.Context) {
	id, ok := parseOrderID(c)
	if !ok {
		return
	}

	var req replayRequest
	if c.Request.ContentLength > 0 && !bindJSON(c, &req) {
		return
	}

	var settings *calculator.Settings
	if req.Settings != nil {
		s, err := req.Settings.toSettings()
		if err != nil {
			respondError(c, "invalid settings", err)
			return
		}
		settings = &s
	}

	detail, err := h.orderService.ReplayOrder(c.Request.Context(), id, settings)
	if err != nil {
		respondError(c, "failed to replay order", err)
		return
	}

	c.JSON(http.StatusCreated, detail)
}

// ExportOrder streams the order as a CSV attachment
func (h *OrderHandler) ExportOrder(c *gin.Context) {
	id, ok := parseOrderID(c)
	if !ok {
		return
	}

	result, err := h.orderService.ExportOrder(c.Request.Context(), id)
	if err != nil {
		respondError(c, "failed to export order", err)
		return
	}

	c.Header("Content-Disposition", "attachment; filename=order_"+id.String()+".csv")
	c.Header("X-Export-Key", result.Key)
	c.Header("X-Export-Uploaded", strconv.FormatBool(result.Uploaded))
	c.Data(http.StatusOK, "text/csv; charset=utf-8", result.Data)
}

func (h *OrderHandler) DeleteOrder(c *gin.Context) {
	id, ok := parseOrderID(c)
	if !ok {
		return
	}

	if err := h.orderService.DeleteOrder(c.Request.Context(), id); err != nil {
		respondError(c, "failed to delete order", err)
		return
	}

	c.Status(http.StatusNoContent)
}

func parseOrderID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid order id"})
		return uuid.Nil, false
	}
	return id, true
}
