package handlers

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/storemart/database"
	"github.com/storemart/models"
	"github.com/storemart/validation"
	"github.com/storemart/web/middleware"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type orderLineRequest struct {
	ProductID uint  `json:"product_id"`
	VariantID *uint `json:"variant_id"`
	Quantity  int   `json:"quantity"`
}

type orderCreateRequest struct {
	UserID          uint               `json:"user_id"`
	CouponCode      *string            `json:"coupon_code"`
	Items           []orderLineRequest `json:"items"`
	ShippingAddress json.RawMessage    `json:"shipping_address"`
	BillingAddress  json.RawMessage    `json:"billing_address"`
	Notes           *string            `json:"notes"`
}

// OrderList returns the tenant's orders, newest first
func OrderList(c *fiber.Ctx) error {
	tenant := middleware.CurrentTenant(c)
	db := database.GetDB()

	query := db.Where("tenant_id = ?", tenant.TenantID)
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	if userID := c.Query("user_id"); userID != "" {
		query = query.Where("user_id = ?", userID)
	}

	var orders []models.Order
	if err := query.Order("order_id desc").Limit(100).Find(&orders).Error; err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"count":  len(orders),
		"orders": orders,
	})
}

// OrderCreate creates an order directly from an item list. Totals are
// computed server side and validated before commit.
func OrderCreate(c *fiber.Ctx) error {
	tenant := middleware.CurrentTenant(c)

	var req orderCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body: "+err.Error())
	}
	if len(req.Items) == 0 {
		return fiber.NewError(fiber.StatusBadRequest, "order needs at least one item")
	}

	var order *models.Order
	err := database.GetDB().Transaction(func(tx *gorm.DB) error {
		var err error
		order, err = createOrder(tx, tenant, &req)
		return err
	})
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(order)
}

// OrderView returns one order with its items and history
func OrderView(c *fiber.Ctx) error {
	tenant := middleware.CurrentTenant(c)
	db := database.GetDB()

	var order models.Order
	if err := db.Where("tenant_id = ? AND order_number = ?", tenant.TenantID, c.Params("number")).
		First(&order).Error; err != nil {
		return err
	}

	var items []models.OrderItem
	db.Where("order_id = ?", order.OrderID).Order("order_item_id").Find(&items)

	var history []models.OrderHistory
	db.Where("order_id = ?", order.OrderID).Order("id").Find(&history)

	var payments []models.Payment
	db.Where("order_id = ?", order.OrderID).Order("payment_id").Find(&payments)

	return c.JSON(fiber.Map{
		"order":    order,
		"items":    items,
		"history":  history,
		"payments": payments,
	})
}

type statusChangeRequest struct {
	Status    string `json:"status"`
	ChangedBy *uint  `json:"changed_by"`
}

// OrderUpdateStatus applies a status transition, rejecting illegal ones, and
// writes the history row in the same transaction
func OrderUpdateStatus(c *fiber.Ctx) error {
	tenant := middleware.CurrentTenant(c)

	var req statusChangeRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body: "+err.Error())
	}
	to := models.OrderStatus(req.Status)

	db := database.GetDB()
	var order models.Order
	if err := db.Where("tenant_id = ? AND order_number = ?", tenant.TenantID, c.Params("number")).
		First(&order).Error; err != nil {
		return err
	}

	if err := validation.ValidateOrderTransition(order.Status, to); err != nil {
		return fiber.NewError(fiber.StatusUnprocessableEntity, err.Error())
	}

	from := order.Status
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&order).Update("status", to).Error; err != nil {
			return err
		}
		history := models.OrderHistory{
			OrderID:   order.OrderID,
			OldStatus: &from,
			NewStatus: to,
			ChangedBy: req.ChangedBy,
		}
		return tx.Create(&history).Error
	})
	if err != nil {
		return err
	}

	return c.JSON(order)
}

// createOrder builds, validates and persists an order with its items,
// snapshot pricing, coupon application, stock counters and history row
func createOrder(tx *gorm.DB, tenant *models.Tenant, req *orderCreateRequest) (*models.Order, error) {
	var user models.User
	if err := tx.Where("tenant_id = ?", tenant.TenantID).First(&user, req.UserID).Error; err != nil {
		return nil, err
	}

	var subtotal, taxTotal float64
	items := make([]models.OrderItem, 0, len(req.Items))
	for _, line := range req.Items {
		if line.Quantity <= 0 {
			return nil, fiber.NewError(fiber.StatusUnprocessableEntity, "item quantity must be positive")
		}

		var product models.Product
		if err := tx.Where("tenant_id = ? AND is_active = ?", tenant.TenantID, true).
			First(&product, line.ProductID).Error; err != nil {
			return nil, err
		}
		if product.TotalStockAvailable < line.Quantity {
			return nil, fiber.NewError(fiber.StatusUnprocessableEntity,
				fmt.Sprintf("insufficient stock for %s", product.SKU))
		}

		unitPrice := product.Price
		sku := product.SKU
		if line.VariantID != nil {
			var variant models.ProductVariant
			if err := tx.Where("product_id = ?", product.ProductID).
				First(&variant, *line.VariantID).Error; err != nil {
				return nil, err
			}
			unitPrice = round2(product.Price + variant.PriceAdjustment)
			sku = variant.SKU
		}

		lineSubtotal := round2(unitPrice * float64(line.Quantity))
		lineTax := round2(lineSubtotal * taxRateFor(tenant, &product))

		items = append(items, models.OrderItem{
			TenantID:    tenant.TenantID,
			ProductID:   product.ProductID,
			VariantID:   line.VariantID,
			ProductName: product.Name,
			SKU:         sku,
			Quantity:    line.Quantity,
			UnitPrice:   unitPrice,
			TaxAmount:   lineTax,
			LineTotal:   round2(lineSubtotal + lineTax),
		})

		subtotal = round2(subtotal + lineSubtotal)
		taxTotal = round2(taxTotal + lineTax)
	}

	shipping := 49.00
	if subtotal >= 999.00 {
		shipping = 0
	}

	var couponID *uint
	var discount float64
	if req.CouponCode != nil && *req.CouponCode != "" {
		coupon, err := lookupCoupon(tx, tenant.TenantID, *req.CouponCode, subtotal)
		if err != nil {
			return nil, err
		}
		couponID = &coupon.CouponID
		discount = couponDiscount(coupon, subtotal)
	}

	order := models.Order{
		TenantID:        tenant.TenantID,
		UserID:          user.UserID,
		OrderNumber:     newOrderNumber(),
		Status:          models.OrderPending,
		Subtotal:        subtotal,
		TaxAmount:       taxTotal,
		ShippingAmount:  shipping,
		DiscountAmount:  discount,
		TotalAmount:     round2(subtotal + taxTotal + shipping - discount),
		CurrencyCode:    tenant.DefaultCurrency,
		CouponID:        couponID,
		ShippingAddress: datatypes.JSON(req.ShippingAddress),
		BillingAddress:  datatypes.JSON(req.BillingAddress),
		Notes:           req.Notes,
	}

	if err := validation.ValidateOrderTotals(&order, items); err != nil {
		return nil, err
	}
	if err := validation.ValidateOrderTenantConsistency(tx, &order, items); err != nil {
		return nil, err
	}

	if err := tx.Create(&order).Error; err != nil {
		return nil, err
	}

	for i := range items {
		items[i].OrderID = order.OrderID
		if err := tx.Create(&items[i]).Error; err != nil {
			return nil, err
		}

		if err := tx.Model(&models.Product{}).
			Where("product_id = ?", items[i].ProductID).
			Updates(map[string]interface{}{
				"total_stock_sold":      gorm.Expr("total_stock_sold + ?", items[i].Quantity),
				"total_stock_available": gorm.Expr("total_stock_available - ?", items[i].Quantity),
			}).Error; err != nil {
			return nil, err
		}
	}

	if couponID != nil {
		if err := tx.Model(&models.Coupon{}).
			Where("coupon_id = ?", *couponID).
			Update("used_count", gorm.Expr("used_count + 1")).Error; err != nil {
			return nil, err
		}
	}

	history := models.OrderHistory{
		OrderID:   order.OrderID,
		NewStatus: models.OrderPending,
	}
	if err := tx.Create(&history).Error; err != nil {
		return nil, err
	}

	return &order, nil
}

// lookupCoupon finds an active, in-window coupon that the subtotal qualifies
// for
func lookupCoupon(tx *gorm.DB, tenantID uint, code string, subtotal float64) (*models.Coupon, error) {
	var coupon models.Coupon
	if err := tx.Where("tenant_id = ? AND code = ? AND is_active = ?", tenantID, code, true).
		First(&coupon).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusUnprocessableEntity, "unknown coupon "+code)
	}

	now := tx.NowFunc()
	if coupon.ValidFrom != nil && now.Before(*coupon.ValidFrom) {
		return nil, fiber.NewError(fiber.StatusUnprocessableEntity, "coupon "+code+" is not yet valid")
	}
	if coupon.ValidUntil != nil && now.After(*coupon.ValidUntil) {
		return nil, fiber.NewError(fiber.StatusUnprocessableEntity, "coupon "+code+" has expired")
	}
	if coupon.UsageLimit != nil && coupon.UsedCount >= *coupon.UsageLimit {
		return nil, fiber.NewError(fiber.StatusUnprocessableEntity, "coupon "+code+" is exhausted")
	}
	if subtotal < coupon.MinOrderAmount {
		return nil, fiber.NewError(fiber.StatusUnprocessableEntity,
			fmt.Sprintf("order subtotal below coupon minimum %.2f", coupon.MinOrderAmount))
	}

	return &coupon, nil
}

// taxRateFor returns the fractional tax rate for a product under the tenant's
// tax system
func taxRateFor(tenant *models.Tenant, product *models.Product) float64 {
	switch tenant.TaxType {
	case models.TaxGST:
		if product.GstSlab == nil {
			return 0
		}
		switch *product.GstSlab {
		case models.GstSlabFive:
			return 0.05
		case models.GstSlabTwelve:
			return 0.12
		case models.GstSlabEighteen:
			return 0.18
		case models.GstSlabTwentyEight:
			return 0.28
		}
	case models.TaxVAT:
		if product.VatRate == nil {
			return 0
		}
		switch *product.VatRate {
		case models.VatRateFive:
			return 0.05
		case models.VatRateEight:
			return 0.08
		case models.VatRateTen:
			return 0.10
		case models.VatRateTwenty:
			return 0.20
		case models.VatRateTwentyThree:
			return 0.23
		}
	}
	return 0
}

// couponDiscount computes the discount a coupon grants on a subtotal
func couponDiscount(c *models.Coupon, subtotal float64) float64 {
	var discount float64
	switch c.DiscountType {
	case models.DiscountPercentage:
		discount = round2(subtotal * c.DiscountValue / 100)
		if c.MaxDiscountAmount != nil && discount > *c.MaxDiscountAmount {
			discount = *c.MaxDiscountAmount
		}
	case models.DiscountFixedAmount:
		discount = c.DiscountValue
	}
	if discount > subtotal {
		discount = subtotal
	}
	return discount
}

func newOrderNumber() string {
	return "ORD-" + strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:12])
}

func round2(v float64) float64 {
	return float64(int64(v*100+0.5)) / 100
}
