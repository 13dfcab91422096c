package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseOrderStatus(t *testing.T) {
	status, ok := ParseOrderStatus(" Sent ")
	assert.True(t, ok)
	assert.Equal(t, OrderStatusSent, status)

	_, ok = ParseOrderStatus("archived")
	assert.False(t, ok)
}

func TestOrderStatus_Label(t *testing.T) {
	assert.Equal(t, "Получен", OrderStatusReceived.Label())
	assert.Equal(t, "Черновик", OrderStatus("unknown").Label())
}

func TestOrderStatus_CanTransition(t *testing.T) {
	testCases := []struct {
		from, to OrderStatus
		allowed  bool
	}{
		{OrderStatusDraft, OrderStatusSent, true},
		{OrderStatusDraft, OrderStatusReceived, true},
		{OrderStatusSent, OrderStatusReceived, true},
		{OrderStatusSent, OrderStatusDraft, false},
		{OrderStatusReceived, OrderStatusSent, false},
		{OrderStatusDraft, OrderStatusDraft, false},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.allowed, tc.from.CanTransition(tc.to), "%s -> %s", tc.from, tc.to)
	}
}
