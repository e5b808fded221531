package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/storemart/database"
	"github.com/storemart/models"
)

// ResolveTenant resolves the tenant from the X-Tenant header (the store slug)
// and rejects requests for missing or non-active tenants. Handlers read the
// tenant from c.Locals("tenant").
func ResolveTenant() fiber.Handler {
	return func(c *fiber.Ctx) error {
		slug := c.Get("X-Tenant")
		if slug == "" {
			return fiber.NewError(fiber.StatusBadRequest, "missing X-Tenant header")
		}

		var tenant models.Tenant
		if err := database.GetDB().Where("slug = ?", slug).First(&tenant).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "unknown tenant "+slug)
		}

		if tenant.Status != models.TenantActive {
			return fiber.NewError(fiber.StatusForbidden, "tenant "+slug+" is "+string(tenant.Status))
		}

		c.Locals("tenant", &tenant)
		return c.Next()
	}
}

// CurrentTenant returns the tenant resolved by ResolveTenant
func CurrentTenant(c *fiber.Ctx) *models.Tenant {
	tenant, _ := c.Locals("tenant").(*models.Tenant)
	return tenant
}
