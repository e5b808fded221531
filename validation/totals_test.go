package validation

import (
	"testing"

	"github.com/storemart/models"
	"github.com/stretchr/testify/assert"
)

func validOrder() (*models.Order, []models.OrderItem) {
	items := []models.OrderItem{
		{
			SKU:       "ELEC-BUD-PRO",
			Quantity:  2,
			UnitPrice: 3299.00,
			TaxAmount: 1187.64,
			LineTotal: 7785.64,
		},
		{
			SKU:       "GROC-HNY-500",
			Quantity:  1,
			UnitPrice: 349.00,
			TaxAmount: 17.45,
			LineTotal: 366.45,
		},
	}
	order := &models.Order{
		OrderNumber:    "ORD-TEST-00001",
		Subtotal:       6947.00,
		TaxAmount:      1205.09,
		ShippingAmount: 0,
		DiscountAmount: 300.00,
		TotalAmount:    7852.09,
	}
	return order, items
}

func TestValidateOrderTotals(t *testing.T) {
	t.Run("valid order passes", func(t *testing.T) {
		order, items := validOrder()
		assert.NoError(t, ValidateOrderTotals(order, items))
	})

	t.Run("total not matching components", func(t *testing.T) {
		order, items := validOrder()
		order.TotalAmount = 7852.10
		err := ValidateOrderTotals(order, items)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "total_amount")
	})

	t.Run("line total not matching", func(t *testing.T) {
		order, items := validOrder()
		items[0].LineTotal = 7785.65
		err := ValidateOrderTotals(order, items)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "line_total")
	})

	t.Run("subtotal not matching item sum", func(t *testing.T) {
		order, items := validOrder()
		order.Subtotal = 6948.00
		// Keep the component identity intact so only the item sum trips
		order.TotalAmount = 7853.09
		err := ValidateOrderTotals(order, items)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "subtotal")
	})

	t.Run("non-positive quantity", func(t *testing.T) {
		order, items := validOrder()
		items[1].Quantity = 0
		err := ValidateOrderTotals(order, items)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "quantity")
	})

	t.Run("float noise within a cent is tolerated", func(t *testing.T) {
		order := &models.Order{
			OrderNumber:    "ORD-TEST-00002",
			Subtotal:       0.1 + 0.2, // 0.30000000000000004
			TaxAmount:      0,
			ShippingAmount: 0,
			DiscountAmount: 0,
			TotalAmount:    0.30,
		}
		assert.NoError(t, ValidateOrderTotals(order, nil))
	})
}

func TestValidateRefundAmount(t *testing.T) {
	payment := &models.Payment{PaymentNumber: "PAY-TEST-00001", Amount: 1000.00}

	t.Run("full refund allowed", func(t *testing.T) {
		refund := &models.Refund{RefundNumber: "REF-1", Amount: 1000.00}
		assert.NoError(t, ValidateRefundAmount(payment, 0, refund))
	})

	t.Run("partial refunds within balance", func(t *testing.T) {
		refund := &models.Refund{RefundNumber: "REF-2", Amount: 400.00}
		assert.NoError(t, ValidateRefundAmount(payment, 600.00, refund))
	})

	t.Run("refund over remaining balance rejected", func(t *testing.T) {
		refund := &models.Refund{RefundNumber: "REF-3", Amount: 400.01}
		err := ValidateRefundAmount(payment, 600.00, refund)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "refundable balance")
	})
}
