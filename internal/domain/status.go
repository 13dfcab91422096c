package domain

import (
	"errors"
	"strings"
)

var (
	ErrNotFound     = errors.New("not found")
	ErrInvalidInput = errors.New("invalid input")
)

// OrderStatus is the lifecycle state of a saved order
type OrderStatus string

const (
	OrderStatusDraft    OrderStatus = "draft"
	OrderStatusSent     OrderStatus = "sent"
	OrderStatusReceived OrderStatus = "received"
)

var orderStatusLabels = map[OrderStatus]string{
	OrderStatusDraft:    "Черновик",
	OrderStatusSent:     "Отправлен",
	OrderStatusReceived: "Получен",
}

// Label returns the human-readable label shown in exports.
func (s OrderStatus) Label() string {
	if label, ok := orderStatusLabels[s]; ok {
		return label
	}

	return orderStatusLabels[OrderStatusDraft]
}

// ParseOrderStatus returns the status for a given value (case-insensitive).
func ParseOrderStatus(value string) (OrderStatus, bool) {
	status := OrderStatus(strings.ToLower(strings.TrimSpace(value)))
	_, ok := orderStatusLabels[status]

	return status, ok
}

// CanTransition reports whether an order may move from s to next.
// Orders only move forward: draft, sent, received.
func (s OrderStatus) CanTransition(next OrderStatus) bool {
	switch s {
	case OrderStatusDraft:
		return next == OrderStatusSent || next == OrderStatusReceived
	case OrderStatusSent:
		return next == OrderStatusReceived
	default:
		return false
	}
}
