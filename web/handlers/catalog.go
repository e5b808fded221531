package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/storemart/database"
	"github.com/storemart/models"
	"github.com/storemart/web/middleware"
)

func paramID(c *fiber.Ctx, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Params(name), 10, 32)
	if err != nil {
		return 0, fiber.NewError(fiber.StatusBadRequest, "invalid "+name)
	}
	return uint(id), nil
}

// CategoryList returns the tenant's categories ordered by position
func CategoryList(c *fiber.Ctx) error {
	tenant := middleware.CurrentTenant(c)

	var categories []models.Category
	if err := database.GetDB().
		Where("tenant_id = ?", tenant.TenantID).
		Order("position, category_id").
		Find(&categories).Error; err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"count":      len(categories),
		"categories": categories,
	})
}

// CategoryCreate creates a category for the tenant
func CategoryCreate(c *fiber.Ctx) error {
	tenant := middleware.CurrentTenant(c)

	var category models.Category
	if err := c.BodyParser(&category); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body: "+err.Error())
	}
	if category.Name == "" || category.Slug == "" {
		return fiber.NewError(fiber.StatusBadRequest, "name and slug are required")
	}
	category.CategoryID = 0
	category.TenantID = tenant.TenantID

	if err := database.GetDB().Create(&category).Error; err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(category)
}

// BrandList returns the tenant's brands
func BrandList(c *fiber.Ctx) error {
	tenant := middleware.CurrentTenant(c)

	var brands []models.Brand
	if err := database.GetDB().
		Where("tenant_id = ?", tenant.TenantID).
		Order("name").
		Find(&brands).Error; err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"count":  len(brands),
		"brands": brands,
	})
}

// BrandCreate creates a brand for the tenant
func BrandCreate(c *fiber.Ctx) error {
	tenant := middleware.CurrentTenant(c)

	var brand models.Brand
	if err := c.BodyParser(&brand); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body: "+err.Error())
	}
	if brand.Name == "" || brand.Slug == "" {
		return fiber.NewError(fiber.StatusBadRequest, "name and slug are required")
	}
	brand.BrandID = 0
	brand.TenantID = tenant.TenantID

	if err := database.GetDB().Create(&brand).Error; err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(brand)
}

// ProductList returns the tenant's products with optional filters and paging
func ProductList(c *fiber.Ctx) error {
	tenant := middleware.CurrentTenant(c)
	db := database.GetDB()

	page, _ := strconv.Atoi(c.Query("page", "1"))
	if page < 1 {
		page = 1
	}
	perPage, _ := strconv.Atoi(c.Query("per_page", "24"))
	if perPage < 1 || perPage > 100 {
		perPage = 24
	}

	query := db.Model(&models.Product{}).Where("tenant_id = ?", tenant.TenantID)

	if categoryID := c.Query("category_id"); categoryID != "" {
		query = query.Where("category_id = ?", categoryID)
	}
	if brandID := c.Query("brand_id"); brandID != "" {
		query = query.Where("brand_id = ?", brandID)
	}
	if search := c.Query("q"); search != "" {
		query = query.Where("name ILIKE ? OR sku ILIKE ?", "%"+search+"%", "%"+search+"%")
	}
	if c.Query("in_stock") == "true" {
		query = query.Where("total_stock_available > 0")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return err
	}

	var products []models.Product
	if err := query.
		Preload("Category").
		Preload("Brand").
		Order("product_id").
		Offset((page - 1) * perPage).
		Limit(perPage).
		Find(&products).Error; err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"total":    total,
		"page":     page,
		"per_page": perPage,
		"products": products,
	})
}

// ProductCreate creates a product for the tenant
func ProductCreate(c *fiber.Ctx) error {
	tenant := middleware.CurrentTenant(c)

	var product models.Product
	if err := c.BodyParser(&product); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body: "+err.Error())
	}
	if product.SKU == "" || product.Slug == "" || product.Name == "" {
		return fiber.NewError(fiber.StatusBadRequest, "sku, slug and name are required")
	}
	if product.Price < 0 {
		return fiber.NewError(fiber.StatusUnprocessableEntity, "price must not be negative")
	}
	product.ProductID = 0
	product.TenantID = tenant.TenantID

	if err := database.GetDB().Create(&product).Error; err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(product)
}

// ProductView returns one product with its images and variants
func ProductView(c *fiber.Ctx) error {
	tenant := middleware.CurrentTenant(c)
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	db := database.GetDB()

	var product models.Product
	if err := db.
		Preload("Category").
		Preload("Brand").
		Where("tenant_id = ?", tenant.TenantID).
		First(&product, id).Error; err != nil {
		return err
	}

	var images []models.ProductImage
	db.Where("product_id = ?", product.ProductID).Order("position").Find(&images)

	var variants []models.ProductVariant
	db.Where("product_id = ?", product.ProductID).Order("variant_id").Find(&variants)

	return c.JSON(fiber.Map{
		"product":  product,
		"images":   images,
		"variants": variants,
	})
}

// ProductUpdate updates a product's editable fields
func ProductUpdate(c *fiber.Ctx) error {
	tenant := middleware.CurrentTenant(c)
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	db := database.GetDB()

	var product models.Product
	if err := db.Where("tenant_id = ?", tenant.TenantID).First(&product, id).Error; err != nil {
		return err
	}

	var updates models.Product
	if err := c.BodyParser(&updates); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body: "+err.Error())
	}
	if updates.Price < 0 {
		return fiber.NewError(fiber.StatusUnprocessableEntity, "price must not be negative")
	}

	// Identity and tenancy are not editable
	updates.ProductID = product.ProductID
	updates.TenantID = product.TenantID

	if err := db.Model(&product).
		Select("category_id", "brand_id", "sku", "slug", "name", "description",
			"price", "compare_at_price", "cost_price", "hsn_code", "gst_slab",
			"vat_rate", "total_stock_available", "is_active").
		Updates(&updates).Error; err != nil {
		return err
	}

	return c.JSON(product)
}

// ProductDelete soft deletes a product
func ProductDelete(c *fiber.Ctx) error {
	tenant := middleware.CurrentTenant(c)
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	db := database.GetDB()

	var product models.Product
	if err := db.Where("tenant_id = ?", tenant.TenantID).First(&product, id).Error; err != nil {
		return err
	}

	if err := db.Delete(&product).Error; err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ReviewList returns approved reviews for a product
func ReviewList(c *fiber.Ctx) error {
	tenant := middleware.CurrentTenant(c)
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}

	var reviews []models.ProductReview
	if err := database.GetDB().
		Where("tenant_id = ? AND product_id = ? AND is_approved = ?", tenant.TenantID, id, true).
		Order("review_id desc").
		Find(&reviews).Error; err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"count":   len(reviews),
		"reviews": reviews,
	})
}

type reviewCreateRequest struct {
	UserID  uint    `json:"user_id"`
	Rating  int     `json:"rating"`
	Title   *string `json:"title"`
	Comment *string `json:"comment"`
}

// ReviewCreate creates a review for a product. The unique pair constraint
// rejects a second review by the same user.
func ReviewCreate(c *fiber.Ctx) error {
	tenant := middleware.CurrentTenant(c)
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}

	var req reviewCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body: "+err.Error())
	}
	if req.Rating < 1 || req.Rating > 5 {
		return fiber.NewError(fiber.StatusUnprocessableEntity, "rating must be between 1 and 5")
	}

	db := database.GetDB()

	var product models.Product
	if err := db.Where("tenant_id = ?", tenant.TenantID).First(&product, id).Error; err != nil {
		return err
	}

	var user models.User
	if err := db.Where("tenant_id = ?", tenant.TenantID).First(&user, req.UserID).Error; err != nil {
		return err
	}

	review := models.ProductReview{
		TenantID:  tenant.TenantID,
		ProductID: product.ProductID,
		UserID:    user.UserID,
		Rating:    req.Rating,
		Title:     req.Title,
		Comment:   req.Comment,
	}

	if err := db.Create(&review).Error; err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(review)
}
