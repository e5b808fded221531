package database

import (
	"errors"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/storemart/config"
	"github.com/storemart/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// setupTestDB connects to the database named by the usual DB_* environment
// variables, runs migration and the base seed, and returns the handle.
// Skipped unless STOREMART_TEST_DB=1: these tests need a disposable Postgres.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	if os.Getenv("STOREMART_TEST_DB") != "1" {
		t.Skip("set STOREMART_TEST_DB=1 and DB_* vars to run database tests")
	}

	cfg, err := config.Load()
	require.NoError(t, err)

	require.NoError(t, InitializeWithOptions(&cfg.Database, true))
	t.Cleanup(func() { Close() })

	db := GetDB()
	require.NoError(t, AutoMigrate(db))
	require.NoError(t, SeedData(db))
	return db
}

// newTestTenant inserts a throwaway tenant so constraint tests do not touch
// the demo store's data.
func newTestTenant(t *testing.T, db *gorm.DB) *models.Tenant {
	t.Helper()

	tenant := &models.Tenant{
		Name:            "Constraint Test Store",
		Slug:            "test-" + uuid.NewString()[:8],
		DefaultCurrency: "INR",
		TaxType:         models.TaxGST,
		Status:          models.TenantActive,
	}
	require.NoError(t, db.Create(tenant).Error)
	t.Cleanup(func() {
		db.Unscoped().Where("tenant_id = ?", tenant.TenantID).Delete(&models.Product{})
		db.Unscoped().Where("tenant_id = ?", tenant.TenantID).Delete(&models.User{})
		db.Unscoped().Delete(tenant)
	})
	return tenant
}

func newTestUser(t *testing.T, db *gorm.DB, tenantID uint) *models.User {
	t.Helper()

	user := &models.User{
		TenantID:     &tenantID,
		Email:        uuid.NewString()[:8] + "@test.example",
		PasswordHash: "x",
		FirstName:    "Test",
		LastName:     "User",
		Status:       models.UserActive,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func TestSeedIsIdempotent(t *testing.T) {
	db := setupTestDB(t)

	require.NoError(t, SeedData(db))

	var tenants int64
	db.Model(&models.Tenant{}).Where("slug = ?", "demo-store").Count(&tenants)
	assert.EqualValues(t, 1, tenants)

	var roles int64
	db.Model(&models.UserRole{}).Count(&roles)
	assert.EqualValues(t, 5, roles)

	var admins int64
	db.Model(&models.User{}).Where("email = ?", "admin@demo.storemart.local").Count(&admins)
	assert.EqualValues(t, 1, admins)

	// The retired coupon must land inactive despite the column's default
	var expired models.Coupon
	require.NoError(t, db.Where("code = ?", "EXPIRED5").First(&expired).Error)
	assert.False(t, expired.IsActive)
}

func TestProductSKUUniquePerTenant(t *testing.T) {
	db := setupTestDB(t)
	tenantA := newTestTenant(t, db)
	tenantB := newTestTenant(t, db)

	first := models.Product{
		TenantID: tenantA.TenantID,
		SKU:      "DUP-SKU-01",
		Slug:     "dup-sku-01",
		Name:     "Duplicate SKU Probe",
		Price:    100,
	}
	require.NoError(t, db.Create(&first).Error)

	dup := models.Product{
		TenantID: tenantA.TenantID,
		SKU:      "DUP-SKU-01",
		Slug:     "dup-sku-01-b",
		Name:     "Duplicate SKU Probe B",
		Price:    100,
	}
	err := db.Create(&dup).Error
	assert.Error(t, err)
	assert.True(t, errors.Is(err, gorm.ErrDuplicatedKey))

	// Same SKU under a different tenant is fine
	other := models.Product{
		TenantID: tenantB.TenantID,
		SKU:      "DUP-SKU-01",
		Slug:     "dup-sku-01",
		Name:     "Duplicate SKU Probe",
		Price:    100,
	}
	assert.NoError(t, db.Create(&other).Error)
}

func TestOneOpenCartPerUser(t *testing.T) {
	db := setupTestDB(t)
	tenant := newTestTenant(t, db)
	user := newTestUser(t, db, tenant.TenantID)
	t.Cleanup(func() {
		db.Where("user_id = ?", user.UserID).Delete(&models.Cart{})
	})

	open := models.Cart{TenantID: tenant.TenantID, UserID: user.UserID, Status: models.CartOpen}
	require.NoError(t, db.Create(&open).Error)

	second := models.Cart{TenantID: tenant.TenantID, UserID: user.UserID, Status: models.CartOpen}
	err := db.Create(&second).Error
	assert.Error(t, err)
	assert.True(t, errors.Is(err, gorm.ErrDuplicatedKey))

	// Converting the open cart frees the slot for a new one
	require.NoError(t, db.Model(&open).Update("status", models.CartConverted).Error)
	assert.NoError(t, db.Create(&models.Cart{
		TenantID: tenant.TenantID, UserID: user.UserID, Status: models.CartOpen,
	}).Error)
}

func TestReviewRatingRange(t *testing.T) {
	db := setupTestDB(t)
	tenant := newTestTenant(t, db)
	user := newTestUser(t, db, tenant.TenantID)

	product := models.Product{
		TenantID: tenant.TenantID,
		SKU:      "RATING-PROBE",
		Slug:     "rating-probe",
		Name:     "Rating Probe",
		Price:    100,
	}
	require.NoError(t, db.Create(&product).Error)
	t.Cleanup(func() {
		db.Where("product_id = ?", product.ProductID).Delete(&models.ProductReview{})
	})

	bad := models.ProductReview{
		TenantID:  tenant.TenantID,
		ProductID: product.ProductID,
		UserID:    user.UserID,
		Rating:    6,
	}
	assert.Error(t, db.Create(&bad).Error)

	good := bad
	good.Rating = 5
	assert.NoError(t, db.Create(&good).Error)
}

func TestOrderItemQuantityCheck(t *testing.T) {
	db := setupTestDB(t)
	tenant := newTestTenant(t, db)
	user := newTestUser(t, db, tenant.TenantID)

	product := models.Product{
		TenantID: tenant.TenantID,
		SKU:      "QTY-PROBE",
		Slug:     "qty-probe",
		Name:     "Quantity Probe",
		Price:    100,
	}
	require.NoError(t, db.Create(&product).Error)

	order := models.Order{
		TenantID:    tenant.TenantID,
		UserID:      user.UserID,
		OrderNumber: "ORD-TESTQTYCHECK",
		Status:      models.OrderPending,
	}
	require.NoError(t, db.Create(&order).Error)
	t.Cleanup(func() {
		db.Where("order_id = ?", order.OrderID).Delete(&models.OrderItem{})
		db.Unscoped().Delete(&order)
	})

	item := models.OrderItem{
		OrderID:     order.OrderID,
		TenantID:    tenant.TenantID,
		ProductID:   product.ProductID,
		SKU:         "QTY-PROBE",
		ProductName: "Quantity Probe",
		Quantity:    0,
		UnitPrice:   100,
		LineTotal:   0,
	}
	err := db.Create(&item).Error
	assert.Error(t, err)
	assert.True(t, errors.Is(err, gorm.ErrCheckConstraintViolated))

	item.Quantity = 1
	item.LineTotal = 100
	assert.NoError(t, db.Create(&item).Error)
}

func TestTenantDeleteCascades(t *testing.T) {
	db := setupTestDB(t)
	tenant := newTestTenant(t, db)
	user := newTestUser(t, db, tenant.TenantID)

	product := models.Product{
		TenantID: tenant.TenantID,
		SKU:      "CASCADE-TENANT",
		Slug:     "cascade-tenant",
		Name:     "Tenant Cascade Probe",
		Price:    100,
	}
	require.NoError(t, db.Create(&product).Error)

	cart := models.Cart{TenantID: tenant.TenantID, UserID: user.UserID, Status: models.CartOpen}
	require.NoError(t, db.Create(&cart).Error)

	order := models.Order{
		TenantID:    tenant.TenantID,
		UserID:      user.UserID,
		OrderNumber: "ORD-TESTTENANTDEL",
		Status:      models.OrderPending,
	}
	require.NoError(t, db.Create(&order).Error)

	require.NoError(t, db.Unscoped().Delete(tenant).Error)

	for _, model := range []interface{}{
		&models.User{}, &models.Product{}, &models.Cart{}, &models.Order{},
	} {
		var remaining int64
		db.Unscoped().Model(model).Where("tenant_id = ?", tenant.TenantID).Count(&remaining)
		assert.EqualValuesf(t, 0, remaining, "%T rows survived tenant delete", model)
	}
}

func TestProvisionTenantDefaults(t *testing.T) {
	db := setupTestDB(t)
	tenant := newTestTenant(t, db)

	require.NoError(t, ProvisionTenantDefaults(db, tenant.TenantID))
	// Second run finds the existing rows
	require.NoError(t, ProvisionTenantDefaults(db, tenant.TenantID))

	var login models.LoginSettings
	require.NoError(t, db.Where("tenant_id = ?", tenant.TenantID).First(&login).Error)
	assert.Equal(t, 8, login.MinPasswordLength)
	assert.Equal(t, 5, login.MaxLoginAttempts)

	var rateLimit models.RateLimitSettings
	require.NoError(t, db.Where("tenant_id = ?", tenant.TenantID).First(&rateLimit).Error)
	assert.Equal(t, 60, rateLimit.RequestsPerMinute)

	var security models.SecuritySettings
	require.NoError(t, db.Where("tenant_id = ?", tenant.TenantID).First(&security).Error)
	assert.NotEmpty(t, security.JwtSecretKey)

	var count int64
	db.Model(&models.SecuritySettings{}).Where("tenant_id = ?", tenant.TenantID).Count(&count)
	assert.EqualValues(t, 1, count)
}

func TestUpiDetailRequiresUpiID(t *testing.T) {
	db := setupTestDB(t)
	tenant := newTestTenant(t, db)
	user := newTestUser(t, db, tenant.TenantID)

	order := models.Order{
		TenantID:    tenant.TenantID,
		UserID:      user.UserID,
		OrderNumber: "ORD-TESTUPICHECK",
		Status:      models.OrderPending,
		Subtotal:    100,
		TotalAmount: 100,
	}
	require.NoError(t, db.Create(&order).Error)
	t.Cleanup(func() {
		db.Where("tenant_id = ?", tenant.TenantID).Delete(&models.PaymentMethodDetail{})
		db.Where("tenant_id = ?", tenant.TenantID).Delete(&models.Payment{})
		db.Unscoped().Delete(&order)
	})

	payment := models.Payment{
		TenantID:      tenant.TenantID,
		OrderID:       order.OrderID,
		PaymentNumber: "PAY-TESTUPICHECK",
		Gateway:       models.GatewayRazorpay,
		Method:        models.MethodUpi,
		Status:        models.PaymentPending,
		Amount:        100,
	}
	require.NoError(t, db.Create(&payment).Error)

	missing := models.PaymentMethodDetail{
		TenantID:      tenant.TenantID,
		PaymentID:     payment.PaymentID,
		PaymentMethod: models.MethodUpi,
	}
	assert.Error(t, db.Create(&missing).Error)

	upiID := "demo@upi"
	complete := missing
	complete.UpiID = &upiID
	assert.NoError(t, db.Create(&complete).Error)
}

func TestOrderItemsCascadeWithOrder(t *testing.T) {
	db := setupTestDB(t)
	tenant := newTestTenant(t, db)
	user := newTestUser(t, db, tenant.TenantID)

	product := models.Product{
		TenantID: tenant.TenantID,
		SKU:      "CASCADE-PROBE",
		Slug:     "cascade-probe",
		Name:     "Cascade Probe",
		Price:    100,
	}
	require.NoError(t, db.Create(&product).Error)

	order := models.Order{
		TenantID:    tenant.TenantID,
		UserID:      user.UserID,
		OrderNumber: "ORD-TESTCASCADE1",
		Status:      models.OrderPending,
		Subtotal:    100,
		TotalAmount: 100,
	}
	require.NoError(t, db.Create(&order).Error)

	item := models.OrderItem{
		OrderID:     order.OrderID,
		TenantID:    tenant.TenantID,
		ProductID:   product.ProductID,
		SKU:         "CASCADE-PROBE",
		ProductName: "Cascade Probe",
		Quantity:    1,
		UnitPrice:   100,
		LineTotal:   100,
	}
	require.NoError(t, db.Create(&item).Error)

	require.NoError(t, db.Unscoped().Delete(&order).Error)

	var remaining int64
	db.Model(&models.OrderItem{}).Where("order_id = ?", order.OrderID).Count(&remaining)
	assert.EqualValues(t, 0, remaining)
}
