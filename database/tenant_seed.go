package database

import (
	"log"

	"github.com/google/uuid"
	"github.com/storemart/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// seedRolesAndPermissions creates the system roles, permission catalog and
// role-permission grants
func seedRolesAndPermissions(tx *gorm.DB) error {
	roles := []models.UserRole{
		{Name: "super_admin", Description: strPtr("Platform administrator, not bound to a tenant"), IsSystemRole: true},
		{Name: "tenant_admin", Description: strPtr("Full control over a single store"), IsSystemRole: true},
		{Name: "store_manager", Description: strPtr("Catalog and order management"), IsSystemRole: true},
		{Name: "support_agent", Description: strPtr("Read access plus order status updates"), IsSystemRole: true},
		{Name: "customer", Description: strPtr("Storefront customer"), IsSystemRole: true},
	}

	for i := range roles {
		if err := tx.Where(models.UserRole{Name: roles[i].Name}).
			FirstOrCreate(&roles[i]).Error; err != nil {
			return err
		}
	}
	log.Printf("  ✓ Seeded %d roles", len(roles))

	permissions := []models.Permission{
		{Name: "tenants.manage", Module: "tenants", Description: strPtr("Create, suspend and configure tenants")},
		{Name: "users.manage", Module: "users", Description: strPtr("Manage users and role assignments")},
		{Name: "catalog.read", Module: "catalog", Description: strPtr("Browse products, categories and brands")},
		{Name: "catalog.write", Module: "catalog", Description: strPtr("Create and edit catalog entries")},
		{Name: "orders.read", Module: "orders", Description: strPtr("View orders and their history")},
		{Name: "orders.write", Module: "orders", Description: strPtr("Create orders and change their status")},
		{Name: "payments.read", Module: "payments", Description: strPtr("View payments and refunds")},
		{Name: "payments.write", Module: "payments", Description: strPtr("Record payments and process refunds")},
		{Name: "settings.manage", Module: "settings", Description: strPtr("Edit tenant settings")},
		{Name: "reports.read", Module: "reports", Description: strPtr("Read the sales reporting views")},
	}

	for i := range permissions {
		if err := tx.Where(models.Permission{Name: permissions[i].Name}).
			FirstOrCreate(&permissions[i]).Error; err != nil {
			return err
		}
	}
	log.Printf("  ✓ Seeded %d permissions", len(permissions))

	grants := map[string][]string{
		"super_admin":   {"tenants.manage", "users.manage", "catalog.read", "catalog.write", "orders.read", "orders.write", "payments.read", "payments.write", "settings.manage", "reports.read"},
		"tenant_admin":  {"users.manage", "catalog.read", "catalog.write", "orders.read", "orders.write", "payments.read", "payments.write", "settings.manage", "reports.read"},
		"store_manager": {"catalog.read", "catalog.write", "orders.read", "orders.write", "reports.read"},
		"support_agent": {"catalog.read", "orders.read", "orders.write"},
		"customer":      {"catalog.read"},
	}

	granted := 0
	for roleName, permNames := range grants {
		var role models.UserRole
		if err := tx.Where("name = ?", roleName).First(&role).Error; err != nil {
			return err
		}
		for _, permName := range permNames {
			var perm models.Permission
			if err := tx.Where("name = ?", permName).First(&perm).Error; err != nil {
				return err
			}
			rp := models.RolePermission{RoleID: role.RoleID, PermissionID: perm.PermissionID}
			if err := tx.Where(models.RolePermission{RoleID: role.RoleID, PermissionID: perm.PermissionID}).
				FirstOrCreate(&rp).Error; err != nil {
				return err
			}
			granted++
		}
	}
	log.Printf("  ✓ Seeded %d role permission grants", granted)

	return nil
}

// seedDemoTenant creates the demo store tenant
func seedDemoTenant(tx *gorm.DB) (uint, error) {
	tenant := models.Tenant{
		Name:            "Demo Store",
		Slug:            "demo-store",
		Domain:          strPtr("demo.storemart.local"),
		Subdomain:       strPtr("demo"),
		ContactEmail:    strPtr("owner@demo.storemart.local"),
		CountryCode:     strPtr("IND"),
		DefaultCurrency: "INR",
		TaxType:         models.TaxGST,
		PlanType:        "starter",
		Status:          models.TenantActive,
	}

	if err := tx.Where(models.Tenant{Slug: tenant.Slug}).FirstOrCreate(&tenant).Error; err != nil {
		return 0, err
	}
	log.Printf("  ✓ Seeded demo tenant (id=%d)", tenant.TenantID)
	return tenant.TenantID, nil
}

// seedAdminUser creates the tenant admin account with its role assignment
func seedAdminUser(tx *gorm.DB, tenantID uint) error {
	hash, err := bcrypt.GenerateFromPassword([]byte("ChangeMe123!"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := models.User{
		TenantID:      uintPtr(tenantID),
		Email:         "admin@demo.storemart.local",
		Username:      strPtr("demo-admin"),
		PasswordHash:  string(hash),
		FirstName:     "Demo",
		LastName:      "Admin",
		Status:        models.UserActive,
		EmailVerified: true,
	}

	if err := tx.Where("tenant_id = ? AND email = ?", tenantID, admin.Email).
		FirstOrCreate(&admin).Error; err != nil {
		return err
	}

	assignment := models.UserRoleAssignment{
		UserID: admin.UserID,
		RoleID: getRoleID(tx, "tenant_admin"),
	}
	if err := tx.Where(models.UserRoleAssignment{UserID: assignment.UserID, RoleID: assignment.RoleID}).
		FirstOrCreate(&assignment).Error; err != nil {
		return err
	}

	log.Printf("  ✓ Seeded admin user (id=%d)", admin.UserID)
	return nil
}

// ProvisionTenantDefaults creates the fixed-column settings rows every tenant
// must carry: security (with a fresh JWT secret), login, session, rate-limit
// and logging defaults. Idempotent; called from the seed and from tenant
// provisioning.
func ProvisionTenantDefaults(tx *gorm.DB, tenantID uint) error {
	security := models.SecuritySettings{
		TenantID:     tenantID,
		JwtSecretKey: uuid.NewString(),
		CorsOrigins:  datatypes.JSON([]byte(`["http://localhost:3000"]`)),
	}
	if err := tx.Where(models.SecuritySettings{TenantID: tenantID}).
		FirstOrCreate(&security).Error; err != nil {
		return err
	}

	login := models.LoginSettings{TenantID: tenantID}
	if err := tx.Where(models.LoginSettings{TenantID: tenantID}).
		FirstOrCreate(&login).Error; err != nil {
		return err
	}

	session := models.SessionSettings{TenantID: tenantID}
	if err := tx.Where(models.SessionSettings{TenantID: tenantID}).
		FirstOrCreate(&session).Error; err != nil {
		return err
	}

	rateLimit := models.RateLimitSettings{TenantID: tenantID}
	if err := tx.Where(models.RateLimitSettings{TenantID: tenantID}).
		FirstOrCreate(&rateLimit).Error; err != nil {
		return err
	}

	logging := models.LoggingSettings{TenantID: tenantID}
	return tx.Where(models.LoggingSettings{TenantID: tenantID}).
		FirstOrCreate(&logging).Error
}

// seedTenantSettings creates the per-tenant settings rows: one fixed-column
// row per settings domain plus a few key/value entries
func seedTenantSettings(tx *gorm.DB, tenantID uint) error {
	if err := ProvisionTenantDefaults(tx, tenantID); err != nil {
		return err
	}

	kvSettings := []models.TenantSetting{
		{TenantID: tenantID, SettingKey: "storefront.theme", SettingValue: strPtr("aurora"), SettingType: models.SettingString},
		{TenantID: tenantID, SettingKey: "checkout.guest_enabled", SettingValue: strPtr("true"), SettingType: models.SettingBoolean},
		{TenantID: tenantID, SettingKey: "catalog.page_size", SettingValue: strPtr("24"), SettingType: models.SettingInteger},
		{TenantID: tenantID, SettingKey: "shipping.free_above", SettingValue: strPtr("999.00"), SettingType: models.SettingDecimal},
		{TenantID: tenantID, SettingKey: "payments.gateways", SettingValue: strPtr(`["razorpay","stripe"]`), SettingType: models.SettingJSON},
	}
	for i := range kvSettings {
		if err := tx.Where(models.TenantSetting{TenantID: tenantID, SettingKey: kvSettings[i].SettingKey}).
			FirstOrCreate(&kvSettings[i]).Error; err != nil {
			return err
		}
	}

	log.Println("  ✓ Seeded tenant settings")
	return nil
}

// seedSystemSettings creates platform-wide configuration defaults
func seedSystemSettings(tx *gorm.DB) error {
	settings := []models.SystemSetting{
		{SettingKey: "platform.name", SettingValue: strPtr("StoreMart"), SettingType: models.SettingString},
		{SettingKey: "platform.maintenance_mode", SettingValue: strPtr("false"), SettingType: models.SettingBoolean},
		{SettingKey: "tenants.max_per_account", SettingValue: strPtr("5"), SettingType: models.SettingInteger},
		{SettingKey: "uploads.max_file_mb", SettingValue: strPtr("25"), SettingType: models.SettingInteger},
	}

	for i := range settings {
		if err := tx.Where(models.SystemSetting{SettingKey: settings[i].SettingKey}).
			FirstOrCreate(&settings[i]).Error; err != nil {
			return err
		}
	}
	log.Printf("  ✓ Seeded %d system settings", len(settings))
	return nil
}

// seedServiceURLs records the external collaborator service endpoints
func seedServiceURLs(tx *gorm.DB, tenantID uint) error {
	services := []models.ServiceURL{
		{TenantID: tenantID, ServiceName: "auth-service", BaseURL: "http://auth.internal:8001", HealthEndpoint: strPtr("/healthz")},
		{TenantID: tenantID, ServiceName: "checkout-service", BaseURL: "http://checkout.internal:8002", HealthEndpoint: strPtr("/healthz")},
		{TenantID: tenantID, ServiceName: "payment-gateway", BaseURL: "http://payments.internal:8003", HealthEndpoint: strPtr("/healthz")},
		{TenantID: tenantID, ServiceName: "notification-service", BaseURL: "http://notify.internal:8004", HealthEndpoint: strPtr("/healthz")},
		{TenantID: tenantID, ServiceName: "upload-service", BaseURL: "http://uploads.internal:8005", HealthEndpoint: strPtr("/healthz")},
	}

	for i := range services {
		if err := tx.Where(models.ServiceURL{TenantID: tenantID, ServiceName: services[i].ServiceName}).
			FirstOrCreate(&services[i]).Error; err != nil {
			return err
		}
	}
	log.Printf("  ✓ Seeded %d service urls", len(services))
	return nil
}
