package validation

import (
	"fmt"

	"github.com/storemart/models"
	"gorm.io/gorm"
)

// The schema cannot stop a row's foreign keys from pointing at another
// tenant's rows; tenant_id agreement across joined rows is a convention.
// These checks make it a hard rule for writes that go through this layer.

// ValidateOrderTenantConsistency verifies the order's user, coupon and every
// item's product belong to the order's tenant. Run inside the transaction
// that writes the order.
func ValidateOrderTenantConsistency(tx *gorm.DB, order *models.Order, items []models.OrderItem) error {
	var user models.User
	if err := tx.Select("user_id", "tenant_id").First(&user, order.UserID).Error; err != nil {
		return fmt.Errorf("order %s: user %d not found: %w", order.OrderNumber, order.UserID, err)
	}
	if user.TenantID == nil || *user.TenantID != order.TenantID {
		return fmt.Errorf("order %s: user %d does not belong to tenant %d",
			order.OrderNumber, order.UserID, order.TenantID)
	}

	if order.CouponID != nil {
		var coupon models.Coupon
		if err := tx.Select("coupon_id", "tenant_id").First(&coupon, *order.CouponID).Error; err != nil {
			return fmt.Errorf("order %s: coupon %d not found: %w", order.OrderNumber, *order.CouponID, err)
		}
		if coupon.TenantID != order.TenantID {
			return fmt.Errorf("order %s: coupon %d does not belong to tenant %d",
				order.OrderNumber, *order.CouponID, order.TenantID)
		}
	}

	for i := range items {
		item := &items[i]
		if item.TenantID != order.TenantID {
			return fmt.Errorf("order %s: item %s carries tenant %d, order belongs to tenant %d",
				order.OrderNumber, item.SKU, item.TenantID, order.TenantID)
		}

		var product models.Product
		if err := tx.Select("product_id", "tenant_id").First(&product, item.ProductID).Error; err != nil {
			return fmt.Errorf("order %s: product %d not found: %w", order.OrderNumber, item.ProductID, err)
		}
		if product.TenantID != order.TenantID {
			return fmt.Errorf("order %s: product %d does not belong to tenant %d",
				order.OrderNumber, item.ProductID, order.TenantID)
		}
	}

	return nil
}

// ValidatePaymentTenantConsistency verifies a payment's order belongs to the
// payment's tenant.
func ValidatePaymentTenantConsistency(tx *gorm.DB, payment *models.Payment) error {
	var order models.Order
	if err := tx.Select("order_id", "tenant_id").First(&order, payment.OrderID).Error; err != nil {
		return fmt.Errorf("payment %s: order %d not found: %w", payment.PaymentNumber, payment.OrderID, err)
	}
	if order.TenantID != payment.TenantID {
		return fmt.Errorf("payment %s: order %d belongs to tenant %d, not %d",
			payment.PaymentNumber, payment.OrderID, order.TenantID, payment.TenantID)
	}
	return nil
}

// ValidateCartTenantConsistency verifies every cart item's product belongs
// to the cart's tenant.
func ValidateCartTenantConsistency(tx *gorm.DB, cart *models.Cart, items []models.CartItem) error {
	for i := range items {
		item := &items[i]
		var product models.Product
		if err := tx.Select("product_id", "tenant_id").First(&product, item.ProductID).Error; err != nil {
			return fmt.Errorf("cart %d: product %d not found: %w", cart.CartID, item.ProductID, err)
		}
		if product.TenantID != cart.TenantID {
			return fmt.Errorf("cart %d: product %d does not belong to tenant %d",
				cart.CartID, item.ProductID, cart.TenantID)
		}
	}
	return nil
}
