package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/andresuchdata/autoorder/backend/internal/calculator"
	"github.com/andresuchdata/autoorder/backend/internal/domain"
	"github.com/gin-gonic/gin"
)

// SafetyStockHandler converts between safety days and a safety end date.
type SafetyStockHandler struct {
	now func() time.Time
}

func NewSafetyStockHandler() *SafetyStockHandler {
	return &SafetyStockHandler{now: time.Now}
}

type safetyDaysRequest struct {
	Days  int    `json:"days"`
	Today string `json:"today"`
}

type safetyEndDateRequest struct {
	EndDate string `json:"end_date" binding:"required"`
	Today   string `json:"today"`
}

type safetyStockResponse struct {
	Today   string `json:"today"`
	Days    int    `json:"days"`
	EndDate string `json:"end_date"`
	Label   string `json:"label"`
}

// Days converts a number of safety days into the date they end on
func (h *SafetyStockHandler) Days(c *gin.Context) {
	var req safetyDaysRequest
	if !bindJSON(c, &req) {
		return
	}
	if req.Days < 0 {
		respondError(c, "invalid days", fmt.Errorf("days must not be negative: %w", domain.ErrInvalidInput))
		return
	}
	today, err := h.today(req.Today)
	if err != nil {
		respondError(c, "invalid today", err)
		return
	}

	end := calculator.ConvertSafetyDays(req.Days, today)
	c.JSON(http.StatusOK, safetyStockResponse{
		Today:   today.Format(dateLayout),
		Days:    req.Days,
		EndDate: end.Format(dateLayout),
		Label:   calculator.FormatDate(&end),
	})
}

// EndDate converts a safety end date into whole days from today
func (h *SafetyStockHandler) EndDate(c *gin.Context) {
	var req safetyEndDateRequest
	if !bindJSON(c, &req) {
		return
	}
	end, err := parseDate("end_date", req.EndDate)
	if err != nil {
		respondError(c, "invalid end_date", err)
		return
	}
	today, err := h.today(req.Today)
	if err != nil {
		respondError(c, "invalid today", err)
		return
	}

	days := calculator.ConvertSafetyEndDate(*end, today)
	c.JSON(http.StatusOK, safetyStockResponse{
		Today:   today.Format(dateLayout),
		Days:    days,
		EndDate: end.Format(dateLayout),
		Label:   calculator.FormatDate(end),
	})
}

func (h *SafetyStockHandler) today(value string) (time.Time, error) {
	today, err := parseDate("today", value)
	if err != nil {
		return time.Time{}, err
	}
	if today != nil {
		return *today, nil
	}
	now := h.now().UTC()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC), nil
}
