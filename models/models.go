package models

// AllModels returns all model structs for auto-migration
// IMPORTANT: Order matters! Parent tables must be created before child tables
func AllModels() []interface{} {
	return []interface{}{
		// 1. Reference data (no dependencies)
		&Country{},
		&Region{},
		&Bank{},

		// 2. Tenant and identity
		&Tenant{},
		&User{},
		&UserRole{},
		&Permission{},
		&RolePermission{},
		&UserRoleAssignment{},
		&UserSession{},
		&LoginHistory{},
		&PasswordHistory{},

		// 3. Catalog (depends on tenant)
		&Category{},
		&Brand{},
		&Product{},
		&ProductImage{},
		&ProductVariant{},
		&ProductReview{},

		// 4. Transactional (depends on catalog + identity)
		&Coupon{},
		&Cart{},
		&CartItem{},
		&Order{},
		&OrderItem{},
		&Payment{},
		&PaymentMethodDetail{},
		&Refund{},

		// 5. Settings and audit (depend on tenant, referenced by nothing)
		&SecuritySettings{},
		&LoginSettings{},
		&SessionSettings{},
		&RateLimitSettings{},
		&LoggingSettings{},
		&TenantSetting{},
		&SystemSetting{},
		&InfrastructureSetting{},
		&ServiceURL{},
		&ActivityLog{},
		&OrderHistory{},
		&PaymentHistory{},
		&RefundHistory{},
		&SettingsHistory{},
		&NotificationLog{},
		&APIKey{},
		&File{},
	}
}
