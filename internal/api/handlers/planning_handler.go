package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/andresuchdata/autoorder/backend/internal/domain"
	"github.com/andresuchdata/autoorder/backend/internal/service"
	"github.com/gin-gonic/gin"
)

type PlanningHandler struct {
	planningService *service.PlanningService
}

func NewPlanningHandler(planningService *service.PlanningService) *PlanningHandler {
	return &PlanningHandler{planningService: planningService}
}

type planEntriesRequest struct {
	Entries []domain.PlanEntry `json:"entries"`
}

// PlanSupplier returns the multi-month order plan of one supplier
func (h *PlanningHandler) PlanSupplier(c *gin.Context) {
	supplierID, ok := parseIDParam(c, "supplier_id")
	if !ok {
		return
	}
	months, ok := parseMonths(c)
	if !ok {
		return
	}

	plan, err := h.planningService.PlanSupplier(c.Request.Context(), supplierID, months)
	if err != nil {
		respondError(c, "failed to plan supplier", err)
		return
	}

	c.JSON(http.StatusOK, plan)
}

// PlanAll returns the plans of every supplier
func (h *PlanningHandler) PlanAll(c *gin.Context) {
	months, ok := parseMonths(c)
	if !ok {
		return
	}

	plans, err := h.planningService.PlanAll(c.Request.Context(), months)
	if err != nil {
		respondError(c, "failed to plan suppliers", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": plans})
}

func (h *PlanningHandler) SaveEntries(c *gin.Context) {
	supplierID, ok := parseIDParam(c, "supplier_id")
	if !ok {
		return
	}
	var req planEntriesRequest
	if !bindJSON(c, &req) {
		return
	}

	if err := h.planningService.SavePlanEntries(c.Request.Context(), supplierID, req.Entries); err != nil {
		respondError(c, "failed to save plan entries", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"saved": len(req.Entries)})
}

// parseMonths reads ?months=; empty means the configured default.
func parseMonths(c *gin.Context) (int, bool) {
	raw := strings.TrimSpace(c.Query("months"))
	if raw == "" {
		return 0, true
	}
	months, err := strconv.Atoi(raw)
	if err != nil || months < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid months"})
		return 0, false
	}
	return months, true
}
