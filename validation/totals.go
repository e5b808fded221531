// Package validation implements the pre-commit checks the database schema
// cannot express: monetary total arithmetic, status-transition legality and
// cross-tenant reference consistency. Callers run these inside the same
// transaction that performs the write and abort the transaction on error.
package validation

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/storemart/models"
)

// money converts a stored decimal(12,2) column value to an exact decimal,
// rounded to two places to absorb float noise.
func money(v float64) decimal.Decimal {
	return decimal.NewFromFloat(v).Round(2)
}

// ValidateOrderTotals checks total_amount = subtotal + tax + shipping - discount
// and that the subtotal matches the sum of the item line totals.
func ValidateOrderTotals(order *models.Order, items []models.OrderItem) error {
	subtotal := money(order.Subtotal)
	tax := money(order.TaxAmount)
	shipping := money(order.ShippingAmount)
	discount := money(order.DiscountAmount)
	total := money(order.TotalAmount)

	expected := subtotal.Add(tax).Add(shipping).Sub(discount)
	if !total.Equal(expected) {
		return fmt.Errorf("order %s: total_amount %s does not equal subtotal + tax + shipping - discount = %s",
			order.OrderNumber, total, expected)
	}

	itemSum := decimal.Zero
	for i := range items {
		item := &items[i]
		if item.Quantity <= 0 {
			return fmt.Errorf("order %s: item %s has non-positive quantity %d",
				order.OrderNumber, item.SKU, item.Quantity)
		}

		lineExpected := money(item.UnitPrice).
			Mul(decimal.NewFromInt(int64(item.Quantity))).
			Add(money(item.TaxAmount)).
			Sub(money(item.DiscountAmount)).
			Round(2)
		if !money(item.LineTotal).Equal(lineExpected) {
			return fmt.Errorf("order %s: item %s line_total %s does not equal unit_price*qty + tax - discount = %s",
				order.OrderNumber, item.SKU, money(item.LineTotal), lineExpected)
		}

		itemSum = itemSum.Add(money(item.UnitPrice).Mul(decimal.NewFromInt(int64(item.Quantity))))
	}

	if len(items) > 0 && !subtotal.Equal(itemSum.Round(2)) {
		return fmt.Errorf("order %s: subtotal %s does not equal sum of item amounts %s",
			order.OrderNumber, subtotal, itemSum.Round(2))
	}

	return nil
}

// ValidateRefundAmount checks a refund does not exceed what the payment
// still holds after earlier refunds.
func ValidateRefundAmount(payment *models.Payment, priorRefunded float64, refund *models.Refund) error {
	remaining := money(payment.Amount).Sub(money(priorRefunded))
	if money(refund.Amount).GreaterThan(remaining) {
		return fmt.Errorf("refund %s: amount %s exceeds refundable balance %s on payment %s",
			refund.RefundNumber, money(refund.Amount), remaining, payment.PaymentNumber)
	}
	return nil
}
