package models

// CartStatus type for cart lifecycle status
type CartStatus string

const (
	CartOpen      CartStatus = "open"
	CartConverted CartStatus = "converted"
	CartAbandoned CartStatus = "abandoned"
)

// Cart represents carts table. A user has at most one open cart per tenant,
// enforced by a partial unique index created during migration.
type Cart struct {
	CartID   uint       `gorm:"primaryKey;column:cart_id" json:"cart_id"`
	TenantID uint       `gorm:"not null" json:"tenant_id"`
	UserID   uint       `gorm:"not null" json:"user_id"`
	CouponID *uint      `json:"coupon_id,omitempty"`
	Status   CartStatus `gorm:"type:varchar(20);not null;default:'open'" json:"status"`
	BaseModel

	// Relationships
	Tenant Tenant `gorm:"foreignKey:TenantID" json:"tenant,omitempty"`
	User   User   `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

// TableName specifies the table name for Cart
func (Cart) TableName() string {
	return "carts"
}

// CartItem represents cart_items table
type CartItem struct {
	CartItemID uint    `gorm:"primaryKey;column:cart_item_id" json:"cart_item_id"`
	CartID     uint    `gorm:"not null" json:"cart_id"`
	ProductID  uint    `gorm:"not null" json:"product_id"`
	VariantID  *uint   `json:"variant_id,omitempty"`
	Quantity   int     `gorm:"not null;check:quantity > 0" json:"quantity"`
	UnitPrice  float64 `gorm:"type:decimal(12,2);not null" json:"unit_price"`
	BaseModel

	// Relationships
	Cart    Cart    `gorm:"foreignKey:CartID" json:"cart,omitempty"`
	Product Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`
}

// TableName specifies the table name for CartItem
func (CartItem) TableName() string {
	return "cart_items"
}
