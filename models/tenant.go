package models

// TenantStatus type for tenant lifecycle status
type TenantStatus string

const (
	TenantActive    TenantStatus = "active"
	TenantSuspended TenantStatus = "suspended"
	TenantInactive  TenantStatus = "inactive"
)

// TaxType type for the tax system a tenant operates under
type TaxType string

const (
	TaxGST      TaxType = "gst"
	TaxVAT      TaxType = "vat"
	TaxSalesTax TaxType = "sales_tax"
	TaxCustom   TaxType = "custom"
)

// GstSlab type for Indian GST slab percentages
type GstSlab string

const (
	GstSlabZero        GstSlab = "0"
	GstSlabFive        GstSlab = "5"
	GstSlabTwelve      GstSlab = "12"
	GstSlabEighteen    GstSlab = "18"
	GstSlabTwentyEight GstSlab = "28"
)

// VatRate type for EU-style VAT rate percentages
type VatRate string

const (
	VatRateZero        VatRate = "0"
	VatRateFive        VatRate = "5"
	VatRateEight       VatRate = "8"
	VatRateTen         VatRate = "10"
	VatRateTwenty      VatRate = "20"
	VatRateTwentyThree VatRate = "23"
)

// Tenant represents tenants table - the isolation boundary for all store data
type Tenant struct {
	TenantID        uint         `gorm:"primaryKey;column:tenant_id" json:"tenant_id"`
	Name            string       `gorm:"type:varchar(255);not null" json:"name"`
	Slug            string       `gorm:"type:varchar(50);not null;unique" json:"slug"`
	Domain          *string      `gorm:"type:varchar(255);unique" json:"domain,omitempty"`
	Subdomain       *string      `gorm:"type:varchar(100);unique" json:"subdomain,omitempty"`
	ContactEmail    *string      `gorm:"type:varchar(255)" json:"contact_email,omitempty"`
	ContactPhone    *string      `gorm:"type:varchar(20)" json:"contact_phone,omitempty"`
	CountryCode     *string      `gorm:"type:varchar(3)" json:"country_code,omitempty"`
	DefaultCurrency string       `gorm:"type:varchar(3);not null;default:'USD'" json:"default_currency"`
	TaxType         TaxType      `gorm:"type:varchar(20);not null" json:"tax_type"`
	PlanType        string       `gorm:"type:varchar(50);default:'starter'" json:"plan_type"`
	Status          TenantStatus `gorm:"type:varchar(20);not null;default:'active'" json:"status"`
	SoftDeleteModel
}

// TableName specifies the table name for Tenant
func (Tenant) TableName() string {
	return "tenants"
}
