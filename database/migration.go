package database

import (
	"fmt"
	"log"
	"strings"

	"github.com/storemart/models"
	"gorm.io/gorm"
)

// AutoMigrate runs auto migration for all models
func AutoMigrate(db *gorm.DB) error {
	log.Println("Starting GORM AutoMigrate...")

	if err := db.Exec(fmt.Sprintf("CREATE SCHEMA IF NOT EXISTS %s", schemaName)).Error; err != nil {
		log.Printf("Warning: Could not create schema: %v", err)
	}

	if err := db.Exec(fmt.Sprintf("SET search_path TO %s", schemaName)).Error; err != nil {
		return fmt.Errorf("failed to set search path: %w", err)
	}

	// Get all models in dependency order
	allModels := models.AllModels()

	// First pass: Create all tables WITHOUT foreign keys
	log.Println("Creating tables without foreign keys...")
	migrator := db.Migrator()

	for _, model := range allModels {
		tableName := migrator.CurrentDatabase()
		stmt := &gorm.Statement{DB: db}
		if err := stmt.Parse(model); err == nil {
			tableName = stmt.Schema.Table
		}

		if !migrator.HasTable(model) {
			if err := migrator.CreateTable(model); err != nil {
				log.Printf("  ⚠ Warning: Could not create table %s: %v", tableName, err)
				continue
			}
			log.Printf("  ✓ Created table: %s", tableName)
		} else {
			log.Printf("  ✓ Table already exists: %s", tableName)
		}
	}

	// Second pass: Create foreign key constraints manually
	log.Println("Creating foreign key constraints...")
	if err := CreateForeignKeys(db); err != nil {
		log.Printf("Warning: Some foreign keys could not be created: %v", err)
	}

	// Add constraints that GORM doesn't handle: tenant-scoped uniques and
	// compound checks
	log.Println("Adding custom constraints...")
	if err := AddCustomConstraints(db); err != nil {
		log.Printf("Warning: Some custom constraints could not be added: %v", err)
	}

	// Create indexes
	log.Println("Creating indexes...")
	if err := CreateIndexes(db); err != nil {
		log.Printf("Warning: Some indexes could not be created: %v", err)
	}

	// Create reporting views
	log.Println("Creating reporting views...")
	if err := CreateViews(db); err != nil {
		log.Printf("Warning: Some views could not be created: %v", err)
	}

	log.Println("GORM AutoMigrate completed successfully")
	return nil
}

// CheckConnection verifies the database connection and schema
func CheckConnection(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database instance: %w", err)
	}

	if err := sqlDB.Ping(); err != nil {
		return fmt.Errorf("failed to ping database: %w", err)
	}

	var schemaExists bool
	err = db.Raw("SELECT EXISTS(SELECT 1 FROM information_schema.schemata WHERE schema_name = ?)", schemaName).Scan(&schemaExists).Error
	if err != nil {
		return fmt.Errorf("failed to check schema: %w", err)
	}

	if !schemaExists {
		if err := db.Exec(fmt.Sprintf("CREATE SCHEMA IF NOT EXISTS %s", schemaName)).Error; err != nil {
			return fmt.Errorf("failed to create schema: %w", err)
		}
		log.Printf("Created '%s' schema", schemaName)
	}

	return nil
}

// CreateForeignKeys creates all foreign key constraints. Tenant-scoped
// tables cascade on tenant delete; optional lookups null out instead.
func CreateForeignKeys(db *gorm.DB) error {
	foreignKeys := []struct {
		table     string
		name      string
		column    string
		refTable  string
		refColumn string
		onDelete  string
	}{
		// Reference data
		{"regions", "fk_regions_country", "country_id", "countries", "country_id", "CASCADE"},
		{"banks", "fk_banks_country", "country_id", "countries", "country_id", "SET NULL"},

		// Tenant and identity
		{"users", "fk_users_tenant", "tenant_id", "tenants", "tenant_id", "CASCADE"},
		{"role_permissions", "fk_role_permissions_role", "role_id", "user_roles", "role_id", "CASCADE"},
		{"role_permissions", "fk_role_permissions_permission", "permission_id", "permissions", "permission_id", "CASCADE"},
		{"user_role_assignments", "fk_user_role_assignments_user", "user_id", "users", "user_id", "CASCADE"},
		{"user_role_assignments", "fk_user_role_assignments_role", "role_id", "user_roles", "role_id", "CASCADE"},
		{"user_role_assignments", "fk_user_role_assignments_assigned_by", "assigned_by", "users", "user_id", "SET NULL"},
		{"user_sessions", "fk_user_sessions_tenant", "tenant_id", "tenants", "tenant_id", "CASCADE"},
		{"user_sessions", "fk_user_sessions_user", "user_id", "users", "user_id", "CASCADE"},
		{"login_history", "fk_login_history_user", "user_id", "users", "user_id", "SET NULL"},
		{"login_history", "fk_login_history_tenant", "tenant_id", "tenants", "tenant_id", "CASCADE"},
		{"password_history", "fk_password_history_user", "user_id", "users", "user_id", "CASCADE"},

		// Catalog
		{"categories", "fk_categories_tenant", "tenant_id", "tenants", "tenant_id", "CASCADE"},
		{"categories", "fk_categories_parent", "parent_id", "categories", "category_id", "SET NULL"},
		{"brands", "fk_brands_tenant", "tenant_id", "tenants", "tenant_id", "CASCADE"},
		{"products", "fk_products_tenant", "tenant_id", "tenants", "tenant_id", "CASCADE"},
		{"products", "fk_products_category", "category_id", "categories", "category_id", "SET NULL"},
		{"products", "fk_products_brand", "brand_id", "brands", "brand_id", "SET NULL"},
		{"product_images", "fk_product_images_tenant", "tenant_id", "tenants", "tenant_id", "CASCADE"},
		{"product_images", "fk_product_images_product", "product_id", "products", "product_id", "CASCADE"},
		{"product_variants", "fk_product_variants_tenant", "tenant_id", "tenants", "tenant_id", "CASCADE"},
		{"product_variants", "fk_product_variants_product", "product_id", "products", "product_id", "CASCADE"},
		{"product_reviews", "fk_product_reviews_tenant", "tenant_id", "tenants", "tenant_id", "CASCADE"},
		{"product_reviews", "fk_product_reviews_product", "product_id", "products", "product_id", "CASCADE"},
		{"product_reviews", "fk_product_reviews_user", "user_id", "users", "user_id", "CASCADE"},

		// Transactional
		{"coupons", "fk_coupons_tenant", "tenant_id", "tenants", "tenant_id", "CASCADE"},
		{"carts", "fk_carts_tenant", "tenant_id", "tenants", "tenant_id", "CASCADE"},
		{"carts", "fk_carts_user", "user_id", "users", "user_id", "CASCADE"},
		{"carts", "fk_carts_coupon", "coupon_id", "coupons", "coupon_id", "SET NULL"},
		{"cart_items", "fk_cart_items_cart", "cart_id", "carts", "cart_id", "CASCADE"},
		{"cart_items", "fk_cart_items_product", "product_id", "products", "product_id", "CASCADE"},
		{"cart_items", "fk_cart_items_variant", "variant_id", "product_variants", "variant_id", "SET NULL"},
		{"orders", "fk_orders_tenant", "tenant_id", "tenants", "tenant_id", "CASCADE"},
		{"orders", "fk_orders_user", "user_id", "users", "user_id", "CASCADE"},
		{"orders", "fk_orders_coupon", "coupon_id", "coupons", "coupon_id", "SET NULL"},
		{"order_items", "fk_order_items_order", "order_id", "orders", "order_id", "CASCADE"},
		{"order_items", "fk_order_items_tenant", "tenant_id", "tenants", "tenant_id", "CASCADE"},
		{"order_items", "fk_order_items_product", "product_id", "products", "product_id", "RESTRICT"},
		{"payments", "fk_payments_tenant", "tenant_id", "tenants", "tenant_id", "CASCADE"},
		{"payments", "fk_payments_order", "order_id", "orders", "order_id", "CASCADE"},
		{"payment_method_details", "fk_payment_method_details_tenant", "tenant_id", "tenants", "tenant_id", "CASCADE"},
		{"payment_method_details", "fk_payment_method_details_payment", "payment_id", "payments", "payment_id", "CASCADE"},
		{"payment_method_details", "fk_payment_method_details_bank", "bank_id", "banks", "bank_id", "SET NULL"},
		{"refunds", "fk_refunds_tenant", "tenant_id", "tenants", "tenant_id", "CASCADE"},
		{"refunds", "fk_refunds_order", "order_id", "orders", "order_id", "CASCADE"},
		{"refunds", "fk_refunds_payment", "payment_id", "payments", "payment_id", "CASCADE"},

		// Settings
		{"security_settings", "fk_security_settings_tenant", "tenant_id", "tenants", "tenant_id", "CASCADE"},
		{"login_settings", "fk_login_settings_tenant", "tenant_id", "tenants", "tenant_id", "CASCADE"},
		{"session_settings", "fk_session_settings_tenant", "tenant_id", "tenants", "tenant_id", "CASCADE"},
		{"rate_limit_settings", "fk_rate_limit_settings_tenant", "tenant_id", "tenants", "tenant_id", "CASCADE"},
		{"logging_settings", "fk_logging_settings_tenant", "tenant_id", "tenants", "tenant_id", "CASCADE"},
		{"tenant_settings", "fk_tenant_settings_tenant", "tenant_id", "tenants", "tenant_id", "CASCADE"},
		{"infrastructure_settings", "fk_infrastructure_settings_tenant", "tenant_id", "tenants", "tenant_id", "CASCADE"},
		{"service_urls", "fk_service_urls_tenant", "tenant_id", "tenants", "tenant_id", "CASCADE"},

		// Audit
		{"activity_logs", "fk_activity_logs_user", "user_id", "users", "user_id", "SET NULL"},
		{"activity_logs", "fk_activity_logs_tenant", "tenant_id", "tenants", "tenant_id", "CASCADE"},
		{"order_history", "fk_order_history_order", "order_id", "orders", "order_id", "CASCADE"},
		{"order_history", "fk_order_history_changed_by", "changed_by", "users", "user_id", "SET NULL"},
		{"payment_history", "fk_payment_history_payment", "payment_id", "payments", "payment_id", "CASCADE"},
		{"payment_history", "fk_payment_history_changed_by", "changed_by", "users", "user_id", "SET NULL"},
		{"refund_history", "fk_refund_history_refund", "refund_id", "refunds", "refund_id", "CASCADE"},
		{"refund_history", "fk_refund_history_changed_by", "changed_by", "users", "user_id", "SET NULL"},
		{"settings_history", "fk_settings_history_changed_by", "changed_by", "users", "user_id", "SET NULL"},
		{"notification_logs", "fk_notification_logs_tenant", "tenant_id", "tenants", "tenant_id", "CASCADE"},
		{"api_keys", "fk_api_keys_tenant", "tenant_id", "tenants", "tenant_id", "CASCADE"},
		{"files", "fk_files_tenant", "tenant_id", "tenants", "tenant_id", "CASCADE"},
		{"files", "fk_files_uploaded_by", "uploaded_by", "users", "user_id", "CASCADE"},
	}

	for _, fk := range foreignKeys {
		// Check if foreign key already exists
		var count int64
		db.Raw(`
			SELECT COUNT(*) FROM information_schema.table_constraints
			WHERE constraint_type = 'FOREIGN KEY'
			AND table_schema = ?
			AND table_name = ?
			AND constraint_name = ?
		`, schemaName, fk.table, fk.name).Scan(&count)

		if count > 0 {
			continue
		}

		query := fmt.Sprintf(
			"ALTER TABLE %s ADD CONSTRAINT %s FOREIGN KEY (%s) REFERENCES %s(%s) ON DELETE %s",
			fk.table, fk.name, fk.column, fk.refTable, fk.refColumn, fk.onDelete,
		)

		if err := db.Exec(query).Error; err != nil {
			log.Printf("  ⚠ Failed to create foreign key %s: %v", fk.name, err)
		} else {
			log.Printf("  ✓ Created foreign key: %s", fk.name)
		}
	}

	return nil
}

// AddCustomConstraints adds database constraints that GORM doesn't handle
// automatically: tenant-scoped uniqueness and compound checks. Natural keys
// (slug, sku, email, code) are unique within a tenant, never globally.
func AddCustomConstraints(db *gorm.DB) error {
	constraints := []struct {
		name  string
		query string
	}{
		// Tenant-scoped unique natural keys
		{"uniq_users_tenant_email", "ALTER TABLE users ADD CONSTRAINT uniq_users_tenant_email UNIQUE (tenant_id, email)"},
		{"uniq_categories_tenant_slug", "ALTER TABLE categories ADD CONSTRAINT uniq_categories_tenant_slug UNIQUE (tenant_id, slug)"},
		{"uniq_brands_tenant_slug", "ALTER TABLE brands ADD CONSTRAINT uniq_brands_tenant_slug UNIQUE (tenant_id, slug)"},
		{"uniq_products_tenant_sku", "ALTER TABLE products ADD CONSTRAINT uniq_products_tenant_sku UNIQUE (tenant_id, sku)"},
		{"uniq_products_tenant_slug", "ALTER TABLE products ADD CONSTRAINT uniq_products_tenant_slug UNIQUE (tenant_id, slug)"},
		{"uniq_product_variants_tenant_sku", "ALTER TABLE product_variants ADD CONSTRAINT uniq_product_variants_tenant_sku UNIQUE (tenant_id, sku)"},
		{"uniq_coupons_tenant_code", "ALTER TABLE coupons ADD CONSTRAINT uniq_coupons_tenant_code UNIQUE (tenant_id, code)"},
		{"uniq_orders_tenant_number", "ALTER TABLE orders ADD CONSTRAINT uniq_orders_tenant_number UNIQUE (tenant_id, order_number)"},

		// Other compound uniques
		{"uniq_regions_country_code", "ALTER TABLE regions ADD CONSTRAINT uniq_regions_country_code UNIQUE (country_id, code)"},
		{"uniq_reviews_product_user", "ALTER TABLE product_reviews ADD CONSTRAINT uniq_reviews_product_user UNIQUE (product_id, user_id)"},
		{"uniq_cart_items_cart_product", "ALTER TABLE cart_items ADD CONSTRAINT uniq_cart_items_cart_product UNIQUE (cart_id, product_id)"},
		{"uniq_role_permissions_pair", "ALTER TABLE role_permissions ADD CONSTRAINT uniq_role_permissions_pair UNIQUE (role_id, permission_id)"},
		{"uniq_user_role_assignments_pair", "ALTER TABLE user_role_assignments ADD CONSTRAINT uniq_user_role_assignments_pair UNIQUE (user_id, role_id)"},
		{"uniq_tenant_settings_key", "ALTER TABLE tenant_settings ADD CONSTRAINT uniq_tenant_settings_key UNIQUE (tenant_id, setting_key)"},
		{"uniq_infrastructure_settings_service", "ALTER TABLE infrastructure_settings ADD CONSTRAINT uniq_infrastructure_settings_service UNIQUE (tenant_id, service_name)"},
		{"uniq_service_urls_service", "ALTER TABLE service_urls ADD CONSTRAINT uniq_service_urls_service UNIQUE (tenant_id, service_name)"},

		// Compound checks
		{"check_payment_method_details", `ALTER TABLE payment_method_details ADD CONSTRAINT check_payment_method_details CHECK (
			(payment_method <> 'upi' OR upi_id IS NOT NULL) AND
			(payment_method <> 'card' OR (card_network IS NOT NULL AND card_last4 IS NOT NULL)) AND
			(payment_method <> 'wallet' OR wallet_provider IS NOT NULL)
		)`},
		{"check_order_amounts", `ALTER TABLE orders ADD CONSTRAINT check_order_amounts CHECK (
			subtotal >= 0 AND tax_amount >= 0 AND shipping_amount >= 0 AND
			discount_amount >= 0 AND total_amount >= 0
		)`},
		{"check_coupon_validity_window", "ALTER TABLE coupons ADD CONSTRAINT check_coupon_validity_window CHECK (valid_until IS NULL OR valid_from IS NULL OR valid_until >= valid_from)"},
	}

	for _, c := range constraints {
		if err := db.Exec(c.query).Error; err != nil {
			// Constraint may already exist (PostgreSQL error code 42710)
			if !strings.Contains(err.Error(), "already exists") && !strings.Contains(err.Error(), "42710") {
				log.Printf("  ⚠ Failed to add constraint %s: %v", c.name, err)
			}
		} else {
			log.Printf("  ✓ Added constraint: %s", c.name)
		}
	}

	return nil
}

// CreateIndexes creates performance indexes
func CreateIndexes(db *gorm.DB) error {
	indexes := []struct {
		name  string
		query string
	}{
		// One open cart per user per tenant
		{"uniq_carts_open_user", "CREATE UNIQUE INDEX IF NOT EXISTS uniq_carts_open_user ON carts(tenant_id, user_id) WHERE status = 'open'"},

		// Tenant partition columns
		{"idx_users_tenant", "CREATE INDEX IF NOT EXISTS idx_users_tenant ON users(tenant_id)"},
		{"idx_products_tenant", "CREATE INDEX IF NOT EXISTS idx_products_tenant ON products(tenant_id)"},
		{"idx_orders_tenant", "CREATE INDEX IF NOT EXISTS idx_orders_tenant ON orders(tenant_id)"},
		{"idx_payments_tenant", "CREATE INDEX IF NOT EXISTS idx_payments_tenant ON payments(tenant_id)"},

		// Catalog lookups
		{"idx_products_category", "CREATE INDEX IF NOT EXISTS idx_products_category ON products(category_id)"},
		{"idx_products_brand", "CREATE INDEX IF NOT EXISTS idx_products_brand ON products(brand_id)"},
		{"idx_product_images_product", "CREATE INDEX IF NOT EXISTS idx_product_images_product ON product_images(product_id)"},
		{"idx_product_variants_product", "CREATE INDEX IF NOT EXISTS idx_product_variants_product ON product_variants(product_id)"},
		{"idx_product_reviews_product", "CREATE INDEX IF NOT EXISTS idx_product_reviews_product ON product_reviews(product_id)"},

		// Order and payment lookups
		{"idx_orders_user", "CREATE INDEX IF NOT EXISTS idx_orders_user ON orders(user_id)"},
		{"idx_orders_status", "CREATE INDEX IF NOT EXISTS idx_orders_status ON orders(status)"},
		{"idx_orders_created_at", "CREATE INDEX IF NOT EXISTS idx_orders_created_at ON orders(created_at)"},
		{"idx_order_items_order", "CREATE INDEX IF NOT EXISTS idx_order_items_order ON order_items(order_id)"},
		{"idx_order_items_product", "CREATE INDEX IF NOT EXISTS idx_order_items_product ON order_items(product_id)"},
		{"idx_payments_order", "CREATE INDEX IF NOT EXISTS idx_payments_order ON payments(order_id)"},
		{"idx_refunds_payment", "CREATE INDEX IF NOT EXISTS idx_refunds_payment ON refunds(payment_id)"},

		// Sessions and audit
		{"idx_user_sessions_user", "CREATE INDEX IF NOT EXISTS idx_user_sessions_user ON user_sessions(user_id)"},
		{"idx_user_sessions_expires", "CREATE INDEX IF NOT EXISTS idx_user_sessions_expires ON user_sessions(expires_at)"},
		{"idx_login_history_user", "CREATE INDEX IF NOT EXISTS idx_login_history_user ON login_history(user_id)"},
		{"idx_activity_logs_tenant", "CREATE INDEX IF NOT EXISTS idx_activity_logs_tenant ON activity_logs(tenant_id)"},
		{"idx_activity_logs_created_at", "CREATE INDEX IF NOT EXISTS idx_activity_logs_created_at ON activity_logs(created_at)"},
		{"idx_order_history_order", "CREATE INDEX IF NOT EXISTS idx_order_history_order ON order_history(order_id)"},
		{"idx_payment_history_payment", "CREATE INDEX IF NOT EXISTS idx_payment_history_payment ON payment_history(payment_id)"},
		{"idx_notification_logs_tenant", "CREATE INDEX IF NOT EXISTS idx_notification_logs_tenant ON notification_logs(tenant_id)"},
	}

	successCount := 0
	for _, idx := range indexes {
		if err := db.Exec(idx.query).Error; err != nil {
			log.Printf("  ⚠ Failed to create index %s: %v", idx.name, err)
		} else {
			successCount++
		}
	}

	if successCount > 0 {
		log.Printf("Successfully created %d indexes", successCount)
	}

	return nil
}
