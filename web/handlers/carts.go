package handlers

import (
	"encoding/json"

	"github.com/gofiber/fiber/v2"
	"github.com/storemart/database"
	"github.com/storemart/models"
	"github.com/storemart/validation"
	"github.com/storemart/web/middleware"
	"gorm.io/gorm"
)

type cartOpenRequest struct {
	UserID uint `json:"user_id"`
}

// CartOpen returns the user's open cart, creating one if none exists. The
// partial unique index guarantees at most one open cart per user.
func CartOpen(c *fiber.Ctx) error {
	tenant := middleware.CurrentTenant(c)

	var req cartOpenRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body: "+err.Error())
	}

	db := database.GetDB()
	var user models.User
	if err := db.Where("tenant_id = ?", tenant.TenantID).First(&user, req.UserID).Error; err != nil {
		return err
	}

	cart := models.Cart{
		TenantID: tenant.TenantID,
		UserID:   user.UserID,
		Status:   models.CartOpen,
	}
	if err := db.Where("tenant_id = ? AND user_id = ? AND status = ?",
		tenant.TenantID, user.UserID, models.CartOpen).
		FirstOrCreate(&cart).Error; err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(cart)
}

// CartView returns a cart with its items
func CartView(c *fiber.Ctx) error {
	tenant := middleware.CurrentTenant(c)
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	db := database.GetDB()

	var cart models.Cart
	if err := db.Where("tenant_id = ?", tenant.TenantID).First(&cart, id).Error; err != nil {
		return err
	}

	var items []models.CartItem
	if err := db.Where("cart_id = ?", cart.CartID).
		Preload("Product").
		Order("cart_item_id").
		Find(&items).Error; err != nil {
		return err
	}

	var total float64
	for i := range items {
		total += items[i].UnitPrice * float64(items[i].Quantity)
	}

	return c.JSON(fiber.Map{
		"cart":     cart,
		"items":    items,
		"subtotal": round2(total),
	})
}

type cartItemRequest struct {
	ProductID uint  `json:"product_id"`
	VariantID *uint `json:"variant_id"`
	Quantity  int   `json:"quantity"`
}

// CartAddItem adds a product to an open cart, or bumps the quantity if it is
// already there
func CartAddItem(c *fiber.Ctx) error {
	tenant := middleware.CurrentTenant(c)
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}

	var req cartItemRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body: "+err.Error())
	}
	if req.Quantity <= 0 {
		return fiber.NewError(fiber.StatusUnprocessableEntity, "quantity must be positive")
	}

	db := database.GetDB()
	var cart models.Cart
	if err := db.Where("tenant_id = ?", tenant.TenantID).First(&cart, id).Error; err != nil {
		return err
	}
	if cart.Status != models.CartOpen {
		return fiber.NewError(fiber.StatusConflict, "cart is "+string(cart.Status))
	}

	var product models.Product
	if err := db.Where("tenant_id = ? AND is_active = ?", tenant.TenantID, true).
		First(&product, req.ProductID).Error; err != nil {
		return err
	}

	unitPrice := product.Price
	if req.VariantID != nil {
		var variant models.ProductVariant
		if err := db.Where("product_id = ?", product.ProductID).
			First(&variant, *req.VariantID).Error; err != nil {
			return err
		}
		unitPrice = round2(product.Price + variant.PriceAdjustment)
	}

	var item models.CartItem
	err = db.Transaction(func(tx *gorm.DB) error {
		err := tx.Where("cart_id = ? AND product_id = ?", cart.CartID, req.ProductID).
			First(&item).Error
		if err == gorm.ErrRecordNotFound {
			item = models.CartItem{
				CartID:    cart.CartID,
				ProductID: req.ProductID,
				VariantID: req.VariantID,
				Quantity:  req.Quantity,
				UnitPrice: unitPrice,
			}
			if err := validation.ValidateCartTenantConsistency(tx, &cart, []models.CartItem{item}); err != nil {
				return fiber.NewError(fiber.StatusUnprocessableEntity, err.Error())
			}
			return tx.Create(&item).Error
		}
		if err != nil {
			return err
		}
		return tx.Model(&item).Update("quantity", gorm.Expr("quantity + ?", req.Quantity)).Error
	})
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(item)
}

type cartCheckoutRequest struct {
	CouponCode      *string         `json:"coupon_code"`
	ShippingAddress json.RawMessage `json:"shipping_address"`
	BillingAddress  json.RawMessage `json:"billing_address"`
	Notes           *string         `json:"notes"`
}

// CartCheckout converts an open cart into a pending order and marks the cart
// converted, all in one transaction
func CartCheckout(c *fiber.Ctx) error {
	tenant := middleware.CurrentTenant(c)
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}

	var req cartCheckoutRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body: "+err.Error())
	}

	db := database.GetDB()
	var cart models.Cart
	if err := db.Where("tenant_id = ?", tenant.TenantID).First(&cart, id).Error; err != nil {
		return err
	}
	if cart.Status != models.CartOpen {
		return fiber.NewError(fiber.StatusConflict, "cart is "+string(cart.Status))
	}

	var items []models.CartItem
	if err := db.Where("cart_id = ?", cart.CartID).Find(&items).Error; err != nil {
		return err
	}
	if len(items) == 0 {
		return fiber.NewError(fiber.StatusUnprocessableEntity, "cart is empty")
	}

	orderReq := orderCreateRequest{
		UserID:          cart.UserID,
		CouponCode:      req.CouponCode,
		ShippingAddress: req.ShippingAddress,
		BillingAddress:  req.BillingAddress,
		Notes:           req.Notes,
	}
	for i := range items {
		orderReq.Items = append(orderReq.Items, orderLineRequest{
			ProductID: items[i].ProductID,
			VariantID: items[i].VariantID,
			Quantity:  items[i].Quantity,
		})
	}

	var order *models.Order
	err = db.Transaction(func(tx *gorm.DB) error {
		var err error
		order, err = createOrder(tx, tenant, &orderReq)
		if err != nil {
			return err
		}
		return tx.Model(&cart).Update("status", models.CartConverted).Error
	})
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(order)
}
