package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/andresuchdata/autoorder/backend/internal/calculator"
	"github.com/andresuchdata/autoorder/backend/internal/domain"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

const dateLayout = "2006-01-02"

// SettingsRequest is the wire form of calculation settings. Dates are YYYY-MM-DD.
type SettingsRequest struct {
	Today         string  `json:"today"`
	DeliveryDate  string  `json:"delivery_date"`
	PeriodDays    int     `json:"period_days"`
	SafetyDays    int     `json:"safety_days"`
	SafetyPercent float64 `json:"safety_percent"`
	Unit          string  `json:"unit"`
}

func (r SettingsRequest) toSettings() (calculator.Settings, error) {
	today, err := parseDate("today", r.Today)
	if err != nil {
		return calculator.Settings{}, err
	}
	delivery, err := parseDate("delivery_date", r.DeliveryDate)
	if err != nil {
		return calculator.Settings{}, err
	}

	return calculator.Settings{
		Today:         today,
		DeliveryDate:  delivery,
		PeriodDays:    r.PeriodDays,
		SafetyDays:    r.SafetyDays,
		SafetyPercent: r.SafetyPercent,
		Unit:          calculator.Unit(strings.ToLower(strings.TrimSpace(r.Unit))),
	}, nil
}

// parseDate reads an optional date as midnight UTC.
func parseDate(field, value string) (*time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, nil
	}
	t, err := time.ParseInLocation(dateLayout, value, time.UTC)
	if err != nil {
		return nil, fmt.Errorf("%s must be YYYY-MM-DD: %w", field, domain.ErrInvalidInput)
	}
	return &t, nil
}

func parsePositiveIntWithDefault(value string, fallback int) int {
	if v, err := strconv.Atoi(strings.TrimSpace(value)); err == nil && v > 0 {
		return v
	}
	return fallback
}

func parseIDParam(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + name})
		return 0, false
	}
	return id, true
}

func bindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return false
	}
	return true
}

// respondError maps service errors onto HTTP statuses.
func respondError(c *gin.Context, message string, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": message, "details": err.Error()})
	case errors.Is(err, domain.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, gin.H{"error": message, "details": err.Error()})
	default:
		log.Error().Err(err).Str("path", c.Request.URL.Path).Msg(message)
		c.JSON(http.StatusInternalServerError, gin.H{"error": message, "details": err.Error()})
	}
}
