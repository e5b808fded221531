package models

// Category represents categories table. Slug is unique per tenant, not globally.
// HSN code and GST slab / VAT rate give the default tax classification for
// products in the category.
type Category struct {
	CategoryID uint     `gorm:"primaryKey;column:category_id" json:"category_id"`
	TenantID   uint     `gorm:"not null" json:"tenant_id"`
	ParentID   *uint    `json:"parent_id,omitempty"`
	Name       string   `gorm:"type:varchar(150);not null" json:"name"`
	Slug       string   `gorm:"type:varchar(150);not null" json:"slug"`
	HsnCode    *string  `gorm:"type:varchar(10)" json:"hsn_code,omitempty"`
	GstSlab    *GstSlab `gorm:"type:varchar(3)" json:"gst_slab,omitempty"`
	VatRate    *VatRate `gorm:"type:varchar(3)" json:"vat_rate,omitempty"`
	Position   int      `gorm:"default:0" json:"position"`
	IsActive   bool     `gorm:"default:true" json:"is_active"`
	BaseModel

	// Relationships
	Tenant Tenant    `gorm:"foreignKey:TenantID" json:"tenant,omitempty"`
	Parent *Category `gorm:"foreignKey:ParentID" json:"parent,omitempty"`
}

// TableName specifies the table name for Category
func (Category) TableName() string {
	return "categories"
}

// Brand represents brands table
type Brand struct {
	BrandID  uint    `gorm:"primaryKey;column:brand_id" json:"brand_id"`
	TenantID uint    `gorm:"not null" json:"tenant_id"`
	Name     string  `gorm:"type:varchar(150);not null" json:"name"`
	Slug     string  `gorm:"type:varchar(150);not null" json:"slug"`
	LogoURL  *string `gorm:"type:varchar(500)" json:"logo_url,omitempty"`
	IsActive bool    `gorm:"default:true" json:"is_active"`
	BaseModel

	// Relationships
	Tenant Tenant `gorm:"foreignKey:TenantID" json:"tenant,omitempty"`
}

// TableName specifies the table name for Brand
func (Brand) TableName() string {
	return "brands"
}

// Product represents products table. SKU and slug are unique per tenant.
// TotalStockSold and TotalStockAvailable are denormalized counters maintained
// by application logic, never by triggers.
type Product struct {
	ProductID           uint     `gorm:"primaryKey;column:product_id" json:"product_id"`
	TenantID            uint     `gorm:"not null" json:"tenant_id"`
	CategoryID          *uint    `json:"category_id,omitempty"`
	BrandID             *uint    `json:"brand_id,omitempty"`
	SKU                 string   `gorm:"type:varchar(64);not null;column:sku" json:"sku"`
	Slug                string   `gorm:"type:varchar(200);not null" json:"slug"`
	Name                string   `gorm:"type:varchar(200);not null" json:"name"`
	Description         *string  `gorm:"type:text" json:"description,omitempty"`
	Price               float64  `gorm:"type:decimal(12,2);not null;check:price >= 0" json:"price"`
	CompareAtPrice      *float64 `gorm:"type:decimal(12,2)" json:"compare_at_price,omitempty"`
	CostPrice           *float64 `gorm:"type:decimal(12,2)" json:"cost_price,omitempty"`
	HsnCode             *string  `gorm:"type:varchar(10)" json:"hsn_code,omitempty"`
	GstSlab             *GstSlab `gorm:"type:varchar(3)" json:"gst_slab,omitempty"`
	VatRate             *VatRate `gorm:"type:varchar(3)" json:"vat_rate,omitempty"`
	TotalStockSold      int      `gorm:"default:0" json:"total_stock_sold"`
	TotalStockAvailable int      `gorm:"default:0" json:"total_stock_available"`
	IsActive            bool     `gorm:"default:true" json:"is_active"`
	SoftDeleteModel

	// Relationships
	Tenant   Tenant    `gorm:"foreignKey:TenantID" json:"tenant,omitempty"`
	Category *Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	Brand    *Brand    `gorm:"foreignKey:BrandID" json:"brand,omitempty"`
}

// TableName specifies the table name for Product
func (Product) TableName() string {
	return "products"
}

// ProductImage represents product_images table
type ProductImage struct {
	ImageID   uint    `gorm:"primaryKey;column:image_id" json:"image_id"`
	TenantID  uint    `gorm:"not null" json:"tenant_id"`
	ProductID uint    `gorm:"not null" json:"product_id"`
	URL       string  `gorm:"type:varchar(500);not null" json:"url"`
	AltText   *string `gorm:"type:varchar(255)" json:"alt_text,omitempty"`
	Position  int     `gorm:"default:0" json:"position"`
	IsPrimary bool    `gorm:"default:false" json:"is_primary"`
	BaseModel

	// Relationships
	Product Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`
}

// TableName specifies the table name for ProductImage
func (ProductImage) TableName() string {
	return "product_images"
}

// ProductVariant represents product_variants table
type ProductVariant struct {
	VariantID       uint    `gorm:"primaryKey;column:variant_id" json:"variant_id"`
	TenantID        uint    `gorm:"not null" json:"tenant_id"`
	ProductID       uint    `gorm:"not null" json:"product_id"`
	SKU             string  `gorm:"type:varchar(64);not null;column:sku" json:"sku"`
	Name            string  `gorm:"type:varchar(150);not null" json:"name"`
	PriceAdjustment float64 `gorm:"type:decimal(12,2);default:0" json:"price_adjustment"`
	StockQuantity   int     `gorm:"default:0" json:"stock_quantity"`
	IsActive        bool    `gorm:"default:true" json:"is_active"`
	BaseModel

	// Relationships
	Product Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`
}

// TableName specifies the table name for ProductVariant
func (ProductVariant) TableName() string {
	return "product_variants"
}

// ProductReview represents product_reviews table. One review per user per
// product; rating constrained to 1..5.
type ProductReview struct {
	ReviewID   uint    `gorm:"primaryKey;column:review_id" json:"review_id"`
	TenantID   uint    `gorm:"not null" json:"tenant_id"`
	ProductID  uint    `gorm:"not null" json:"product_id"`
	UserID     uint    `gorm:"not null" json:"user_id"`
	Rating     int     `gorm:"not null;check:rating >= 1 AND rating <= 5" json:"rating"`
	Title      *string `gorm:"type:varchar(200)" json:"title,omitempty"`
	Comment    *string `gorm:"type:text" json:"comment,omitempty"`
	IsApproved bool    `gorm:"default:false" json:"is_approved"`
	BaseModel

	// Relationships
	Product Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`
	User    User    `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

// TableName specifies the table name for ProductReview
func (ProductReview) TableName() string {
	return "product_reviews"
}
