package validation

import (
	"testing"

	"github.com/storemart/models"
	"github.com/stretchr/testify/assert"
)

func TestValidateOrderTransition(t *testing.T) {
	tests := []struct {
		name    string
		from    models.OrderStatus
		to      models.OrderStatus
		wantErr bool
	}{
		{"pending to confirmed", models.OrderPending, models.OrderConfirmed, false},
		{"pending to cancelled", models.OrderPending, models.OrderCancelled, false},
		{"confirmed to processing", models.OrderConfirmed, models.OrderProcessing, false},
		{"processing to shipped", models.OrderProcessing, models.OrderShipped, false},
		{"shipped to delivered", models.OrderShipped, models.OrderDelivered, false},
		{"shipped to cancelled", models.OrderShipped, models.OrderCancelled, false},
		{"delivered to refunded", models.OrderDelivered, models.OrderRefunded, false},
		{"pending to shipped skips steps", models.OrderPending, models.OrderShipped, true},
		{"pending to delivered skips steps", models.OrderPending, models.OrderDelivered, true},
		{"delivered to cancelled", models.OrderDelivered, models.OrderCancelled, true},
		{"cancelled is terminal", models.OrderCancelled, models.OrderPending, true},
		{"refunded is terminal", models.OrderRefunded, models.OrderPending, true},
		{"backwards delivered to shipped", models.OrderDelivered, models.OrderShipped, true},
		{"unknown status", models.OrderStatus("bogus"), models.OrderPending, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateOrderTransition(tt.from, tt.to)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidatePaymentTransition(t *testing.T) {
	tests := []struct {
		name    string
		from    models.PaymentStatus
		to      models.PaymentStatus
		wantErr bool
	}{
		{"pending to processing", models.PaymentPending, models.PaymentProcessing, false},
		{"processing to completed", models.PaymentProcessing, models.PaymentCompleted, false},
		{"processing to failed", models.PaymentProcessing, models.PaymentFailed, false},
		{"failed retries to pending", models.PaymentFailed, models.PaymentPending, false},
		{"completed to refunded", models.PaymentCompleted, models.PaymentRefunded, false},
		{"pending straight to completed", models.PaymentPending, models.PaymentCompleted, true},
		{"completed back to pending", models.PaymentCompleted, models.PaymentPending, true},
		{"refunded is terminal", models.PaymentRefunded, models.PaymentPending, true},
		{"cancelled is terminal", models.PaymentCancelled, models.PaymentPending, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePaymentTransition(tt.from, tt.to)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateRefundTransition(t *testing.T) {
	tests := []struct {
		name    string
		from    models.RefundStatus
		to      models.RefundStatus
		wantErr bool
	}{
		{"pending to approved", models.RefundPending, models.RefundApproved, false},
		{"pending to rejected", models.RefundPending, models.RefundRejected, false},
		{"approved to processed", models.RefundApproved, models.RefundProcessed, false},
		{"pending straight to processed", models.RefundPending, models.RefundProcessed, true},
		{"rejected is terminal", models.RefundRejected, models.RefundPending, true},
		{"processed is terminal", models.RefundProcessed, models.RefundPending, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRefundTransition(tt.from, tt.to)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestTerminalStatuses(t *testing.T) {
	assert.True(t, IsTerminalOrderStatus(models.OrderCancelled))
	assert.True(t, IsTerminalOrderStatus(models.OrderRefunded))
	assert.False(t, IsTerminalOrderStatus(models.OrderPending))
	assert.False(t, IsTerminalOrderStatus(models.OrderDelivered))

	assert.True(t, IsTerminalPaymentStatus(models.PaymentRefunded))
	assert.True(t, IsTerminalPaymentStatus(models.PaymentCancelled))
	assert.False(t, IsTerminalPaymentStatus(models.PaymentFailed))
}
