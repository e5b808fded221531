package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/storemart/database"
	"github.com/storemart/models"
	"gorm.io/gorm"
)

// TenantList returns all tenants, newest first
func TenantList(c *fiber.Ctx) error {
	db := database.GetDB()

	var tenants []models.Tenant
	query := db.Order("tenant_id desc")
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	if err := query.Find(&tenants).Error; err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"count":   len(tenants),
		"tenants": tenants,
	})
}

type tenantCreateRequest struct {
	Name            string  `json:"name"`
	Slug            string  `json:"slug"`
	Domain          *string `json:"domain"`
	Subdomain       *string `json:"subdomain"`
	ContactEmail    *string `json:"contact_email"`
	CountryCode     *string `json:"country_code"`
	DefaultCurrency string  `json:"default_currency"`
	TaxType         string  `json:"tax_type"`
	PlanType        string  `json:"plan_type"`
}

// TenantCreate provisions a new tenant
func TenantCreate(c *fiber.Ctx) error {
	var req tenantCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body: "+err.Error())
	}
	if req.Name == "" || req.Slug == "" {
		return fiber.NewError(fiber.StatusBadRequest, "name and slug are required")
	}
	if req.DefaultCurrency == "" {
		req.DefaultCurrency = "USD"
	}
	if req.TaxType == "" {
		req.TaxType = string(models.TaxCustom)
	}
	if req.PlanType == "" {
		req.PlanType = "starter"
	}

	tenant := models.Tenant{
		Name:            req.Name,
		Slug:            req.Slug,
		Domain:          req.Domain,
		Subdomain:       req.Subdomain,
		ContactEmail:    req.ContactEmail,
		CountryCode:     req.CountryCode,
		DefaultCurrency: req.DefaultCurrency,
		TaxType:         models.TaxType(req.TaxType),
		PlanType:        req.PlanType,
		Status:          models.TenantActive,
	}

	err := database.GetDB().Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&tenant).Error; err != nil {
			return err
		}
		return database.ProvisionTenantDefaults(tx, tenant.TenantID)
	})
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(tenant)
}

// TenantView returns one tenant by slug
func TenantView(c *fiber.Ctx) error {
	var tenant models.Tenant
	if err := database.GetDB().Where("slug = ?", c.Params("slug")).First(&tenant).Error; err != nil {
		return err
	}
	return c.JSON(tenant)
}

type tenantStatusRequest struct {
	Status models.TenantStatus `json:"status"`
}

// TenantUpdateStatus activates or suspends a tenant
func TenantUpdateStatus(c *fiber.Ctx) error {
	var req tenantStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body: "+err.Error())
	}

	switch req.Status {
	case models.TenantActive, models.TenantSuspended, models.TenantInactive:
	default:
		return fiber.NewError(fiber.StatusBadRequest, "unknown tenant status "+string(req.Status))
	}

	db := database.GetDB()
	var tenant models.Tenant
	if err := db.Where("slug = ?", c.Params("slug")).First(&tenant).Error; err != nil {
		return err
	}

	if err := db.Model(&tenant).Update("status", req.Status).Error; err != nil {
		return err
	}

	return c.JSON(tenant)
}
