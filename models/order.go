package models

import "gorm.io/datatypes"

// OrderStatus type for order lifecycle status. The schema only constrains the
// value set; transition legality is enforced by the validation package.
type OrderStatus string

const (
	OrderPending    OrderStatus = "pending"
	OrderConfirmed  OrderStatus = "confirmed"
	OrderProcessing OrderStatus = "processing"
	OrderShipped    OrderStatus = "shipped"
	OrderDelivered  OrderStatus = "delivered"
	OrderCancelled  OrderStatus = "cancelled"
	OrderRefunded   OrderStatus = "refunded"
)

// Order represents orders table. Monetary columns must satisfy
// total_amount = subtotal + tax + shipping - discount; the database does not
// check this, the validation package does before every write.
type Order struct {
	OrderID         uint           `gorm:"primaryKey;column:order_id" json:"order_id"`
	TenantID        uint           `gorm:"not null" json:"tenant_id"`
	UserID          uint           `gorm:"not null" json:"user_id"`
	OrderNumber     string         `gorm:"type:varchar(40);not null" json:"order_number"`
	Status          OrderStatus    `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`
	Subtotal        float64        `gorm:"type:decimal(12,2);not null;default:0" json:"subtotal"`
	TaxAmount       float64        `gorm:"type:decimal(12,2);not null;default:0" json:"tax_amount"`
	ShippingAmount  float64        `gorm:"type:decimal(12,2);not null;default:0" json:"shipping_amount"`
	DiscountAmount  float64        `gorm:"type:decimal(12,2);not null;default:0" json:"discount_amount"`
	TotalAmount     float64        `gorm:"type:decimal(12,2);not null;default:0" json:"total_amount"`
	CurrencyCode    string         `gorm:"type:varchar(3);not null;default:'USD'" json:"currency_code"`
	CouponID        *uint          `json:"coupon_id,omitempty"`
	ShippingAddress datatypes.JSON `json:"shipping_address,omitempty"`
	BillingAddress  datatypes.JSON `json:"billing_address,omitempty"`
	Notes           *string        `gorm:"type:text" json:"notes,omitempty"`
	BaseModel

	// Relationships
	Tenant Tenant  `gorm:"foreignKey:TenantID" json:"tenant,omitempty"`
	User   User    `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Coupon *Coupon `gorm:"foreignKey:CouponID" json:"coupon,omitempty"`
}

// TableName specifies the table name for Order
func (Order) TableName() string {
	return "orders"
}

// OrderItem represents order_items table. Product name, SKU and prices are
// copied at order time so later catalog edits do not rewrite history.
type OrderItem struct {
	OrderItemID    uint    `gorm:"primaryKey;column:order_item_id" json:"order_item_id"`
	OrderID        uint    `gorm:"not null" json:"order_id"`
	TenantID       uint    `gorm:"not null" json:"tenant_id"`
	ProductID      uint    `gorm:"not null" json:"product_id"`
	VariantID      *uint   `json:"variant_id,omitempty"`
	ProductName    string  `gorm:"type:varchar(200);not null" json:"product_name"`
	SKU            string  `gorm:"type:varchar(64);not null;column:sku" json:"sku"`
	Quantity       int     `gorm:"not null;check:quantity > 0" json:"quantity"`
	UnitPrice      float64 `gorm:"type:decimal(12,2);not null" json:"unit_price"`
	TaxAmount      float64 `gorm:"type:decimal(12,2);not null;default:0" json:"tax_amount"`
	DiscountAmount float64 `gorm:"type:decimal(12,2);not null;default:0" json:"discount_amount"`
	LineTotal      float64 `gorm:"type:decimal(12,2);not null" json:"line_total"`
	BaseModel

	// Relationships
	Order   Order   `gorm:"foreignKey:OrderID" json:"order,omitempty"`
	Product Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`
}

// TableName specifies the table name for OrderItem
func (OrderItem) TableName() string {
	return "order_items"
}
