package database

import (
	"time"

	"github.com/storemart/models"
	"gorm.io/gorm"
)

// getTenantID retrieves a tenant ID by slug
func getTenantID(tx *gorm.DB, slug string) uint {
	var tenant models.Tenant
	tx.Where("slug = ?", slug).First(&tenant)
	return tenant.TenantID
}

// getRoleID retrieves a role ID by name
func getRoleID(tx *gorm.DB, name string) uint {
	var role models.UserRole
	tx.Where("name = ?", name).First(&role)
	return role.RoleID
}

// getCategoryID retrieves a category ID by tenant and slug
func getCategoryID(tx *gorm.DB, tenantID uint, slug string) uint {
	var category models.Category
	tx.Where("tenant_id = ? AND slug = ?", tenantID, slug).First(&category)
	return category.CategoryID
}

// getBrandID retrieves a brand ID by tenant and slug
func getBrandID(tx *gorm.DB, tenantID uint, slug string) uint {
	var brand models.Brand
	tx.Where("tenant_id = ? AND slug = ?", tenantID, slug).First(&brand)
	return brand.BrandID
}

// Helper functions for creating pointers
func strPtr(s string) *string {
	return &s
}

func intPtr(i int) *int {
	return &i
}

func uintPtr(u uint) *uint {
	return &u
}

func floatPtr(f float64) *float64 {
	return &f
}

func timePtr(t time.Time) *time.Time {
	return &t
}

func gstSlabPtr(g models.GstSlab) *models.GstSlab {
	return &g
}

func upiTypePtr(u models.UpiType) *models.UpiType {
	return &u
}
