package validation

import (
	"fmt"

	"github.com/storemart/models"
)

// The schema only constrains status values to the enum set; legal transitions
// are enforced here. Terminal states have no outgoing edges.

var orderTransitions = map[models.OrderStatus][]models.OrderStatus{
	models.OrderPending:    {models.OrderConfirmed, models.OrderCancelled},
	models.OrderConfirmed:  {models.OrderProcessing, models.OrderCancelled},
	models.OrderProcessing: {models.OrderShipped, models.OrderCancelled},
	models.OrderShipped:    {models.OrderDelivered, models.OrderCancelled},
	models.OrderDelivered:  {models.OrderRefunded},
	models.OrderCancelled:  {},
	models.OrderRefunded:   {},
}

var paymentTransitions = map[models.PaymentStatus][]models.PaymentStatus{
	models.PaymentPending:    {models.PaymentProcessing, models.PaymentFailed, models.PaymentCancelled},
	models.PaymentProcessing: {models.PaymentCompleted, models.PaymentFailed, models.PaymentCancelled},
	models.PaymentCompleted:  {models.PaymentRefunded},
	models.PaymentFailed:     {models.PaymentPending},
	models.PaymentCancelled:  {},
	models.PaymentRefunded:   {},
}

var refundTransitions = map[models.RefundStatus][]models.RefundStatus{
	models.RefundPending:   {models.RefundApproved, models.RefundRejected},
	models.RefundApproved:  {models.RefundProcessed},
	models.RefundProcessed: {},
	models.RefundRejected:  {},
}

// ValidateOrderTransition reports whether an order may move from one status
// to another.
func ValidateOrderTransition(from, to models.OrderStatus) error {
	next, ok := orderTransitions[from]
	if !ok {
		return fmt.Errorf("unknown order status %q", from)
	}
	for _, s := range next {
		if s == to {
			return nil
		}
	}
	return fmt.Errorf("illegal order status transition %s -> %s", from, to)
}

// ValidatePaymentTransition reports whether a payment may move from one
// status to another.
func ValidatePaymentTransition(from, to models.PaymentStatus) error {
	next, ok := paymentTransitions[from]
	if !ok {
		return fmt.Errorf("unknown payment status %q", from)
	}
	for _, s := range next {
		if s == to {
			return nil
		}
	}
	return fmt.Errorf("illegal payment status transition %s -> %s", from, to)
}

// ValidateRefundTransition reports whether a refund may move from one status
// to another.
func ValidateRefundTransition(from, to models.RefundStatus) error {
	next, ok := refundTransitions[from]
	if !ok {
		return fmt.Errorf("unknown refund status %q", from)
	}
	for _, s := range next {
		if s == to {
			return nil
		}
	}
	return fmt.Errorf("illegal refund status transition %s -> %s", from, to)
}

// IsTerminalOrderStatus reports whether no further order transitions exist.
func IsTerminalOrderStatus(s models.OrderStatus) bool {
	return len(orderTransitions[s]) == 0
}

// IsTerminalPaymentStatus reports whether no further payment transitions exist.
func IsTerminalPaymentStatus(s models.PaymentStatus) bool {
	return len(paymentTransitions[s]) == 0
}
