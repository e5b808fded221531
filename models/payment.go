package models

import "time"

// PaymentStatus type for payment lifecycle status
type PaymentStatus string

const (
	PaymentPending    PaymentStatus = "pending"
	PaymentProcessing PaymentStatus = "processing"
	PaymentCompleted  PaymentStatus = "completed"
	PaymentFailed     PaymentStatus = "failed"
	PaymentCancelled  PaymentStatus = "cancelled"
	PaymentRefunded   PaymentStatus = "refunded"
)

// RefundStatus type for refund lifecycle status
type RefundStatus string

const (
	RefundPending   RefundStatus = "pending"
	RefundApproved  RefundStatus = "approved"
	RefundProcessed RefundStatus = "processed"
	RefundRejected  RefundStatus = "rejected"
)

// PaymentMethodType type for how a payment was made
type PaymentMethodType string

const (
	MethodBank       PaymentMethodType = "bank"
	MethodUpi        PaymentMethodType = "upi"
	MethodWallet     PaymentMethodType = "wallet"
	MethodCard       PaymentMethodType = "card"
	MethodNetBanking PaymentMethodType = "net_banking"
	MethodCOD        PaymentMethodType = "cod"
)

// PaymentGateway type for the processing gateway
type PaymentGateway string

const (
	GatewayRazorpay  PaymentGateway = "razorpay"
	GatewayStripe    PaymentGateway = "stripe"
	GatewayPaypal    PaymentGateway = "paypal"
	GatewayPaytm     PaymentGateway = "paytm"
	GatewayPhonepe   PaymentGateway = "phonepe"
	GatewayGooglePay PaymentGateway = "google_pay"
	GatewayInstamojo PaymentGateway = "instamojo"
	GatewayCCAvenue  PaymentGateway = "ccavenue"
	GatewayCustom    PaymentGateway = "custom"
)

// CardNetwork type for card schemes
type CardNetwork string

const (
	NetworkVisa       CardNetwork = "visa"
	NetworkMastercard CardNetwork = "mastercard"
	NetworkRupay      CardNetwork = "rupay"
	NetworkAmex       CardNetwork = "amex"
	NetworkDiners     CardNetwork = "diners"
	NetworkDiscover   CardNetwork = "discover"
	NetworkJCB        CardNetwork = "jcb"
)

// CardType type for card categories
type CardType string

const (
	CardCredit  CardType = "credit"
	CardDebit   CardType = "debit"
	CardPrepaid CardType = "prepaid"
)

// DiscountType type for coupon discount calculation
type DiscountType string

const (
	DiscountPercentage  DiscountType = "percentage"
	DiscountFixedAmount DiscountType = "fixed_amount"
)

// Payment represents payments table. An order can carry several payments
// (retries, partial refunds).
type Payment struct {
	PaymentID            uint              `gorm:"primaryKey;column:payment_id" json:"payment_id"`
	TenantID             uint              `gorm:"not null" json:"tenant_id"`
	OrderID              uint              `gorm:"not null" json:"order_id"`
	PaymentNumber        string            `gorm:"type:varchar(40);not null;unique" json:"payment_number"`
	Gateway              PaymentGateway    `gorm:"type:varchar(20);not null" json:"gateway"`
	Method               PaymentMethodType `gorm:"type:varchar(20);not null" json:"method"`
	Status               PaymentStatus     `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`
	Amount               float64           `gorm:"type:decimal(12,2);not null;check:amount > 0" json:"amount"`
	CurrencyCode         string            `gorm:"type:varchar(3);not null;default:'USD'" json:"currency_code"`
	GatewayTransactionID *string           `gorm:"type:varchar(100)" json:"gateway_transaction_id,omitempty"`
	PaidAt               *time.Time        `json:"paid_at,omitempty"`
	BaseModel

	// Relationships
	Tenant Tenant `gorm:"foreignKey:TenantID" json:"tenant,omitempty"`
	Order  Order  `gorm:"foreignKey:OrderID" json:"order,omitempty"`
}

// TableName specifies the table name for Payment
func (Payment) TableName() string {
	return "payments"
}

// PaymentMethodDetail represents payment_method_details table. The compound
// CHECK added during migration requires upi_id for upi payments and card
// fields for card payments.
type PaymentMethodDetail struct {
	DetailID       uint              `gorm:"primaryKey;column:detail_id" json:"detail_id"`
	TenantID       uint              `gorm:"not null" json:"tenant_id"`
	PaymentID      uint              `gorm:"not null" json:"payment_id"`
	PaymentMethod  PaymentMethodType `gorm:"type:varchar(20);not null" json:"payment_method"`
	UpiID          *string           `gorm:"type:varchar(100);column:upi_id" json:"upi_id,omitempty"`
	CardNetwork    *CardNetwork      `gorm:"type:varchar(20)" json:"card_network,omitempty"`
	CardType       *CardType         `gorm:"type:varchar(10)" json:"card_type,omitempty"`
	CardLast4      *string           `gorm:"type:varchar(4)" json:"card_last4,omitempty"`
	BankID         *uint             `json:"bank_id,omitempty"`
	WalletProvider *string           `gorm:"type:varchar(50)" json:"wallet_provider,omitempty"`
	BaseModel

	// Relationships
	Payment Payment `gorm:"foreignKey:PaymentID" json:"payment,omitempty"`
	Bank    *Bank   `gorm:"foreignKey:BankID" json:"bank,omitempty"`
}

// TableName specifies the table name for PaymentMethodDetail
func (PaymentMethodDetail) TableName() string {
	return "payment_method_details"
}

// Refund represents refunds table
type Refund struct {
	RefundID     uint         `gorm:"primaryKey;column:refund_id" json:"refund_id"`
	TenantID     uint         `gorm:"not null" json:"tenant_id"`
	OrderID      uint         `gorm:"not null" json:"order_id"`
	PaymentID    uint         `gorm:"not null" json:"payment_id"`
	RefundNumber string       `gorm:"type:varchar(40);not null;unique" json:"refund_number"`
	Amount       float64      `gorm:"type:decimal(12,2);not null;check:amount > 0" json:"amount"`
	Reason       *string      `gorm:"type:text" json:"reason,omitempty"`
	Status       RefundStatus `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`
	ProcessedAt  *time.Time   `json:"processed_at,omitempty"`
	BaseModel

	// Relationships
	Order   Order   `gorm:"foreignKey:OrderID" json:"order,omitempty"`
	Payment Payment `gorm:"foreignKey:PaymentID" json:"payment,omitempty"`
}

// TableName specifies the table name for Refund
func (Refund) TableName() string {
	return "refunds"
}

// Coupon represents coupons table. Code is unique per tenant.
type Coupon struct {
	CouponID          uint         `gorm:"primaryKey;column:coupon_id" json:"coupon_id"`
	TenantID          uint         `gorm:"not null" json:"tenant_id"`
	Code              string       `gorm:"type:varchar(50);not null" json:"code"`
	Description       *string      `gorm:"type:text" json:"description,omitempty"`
	DiscountType      DiscountType `gorm:"type:varchar(20);not null" json:"discount_type"`
	DiscountValue     float64      `gorm:"type:decimal(12,2);not null;check:discount_value > 0" json:"discount_value"`
	MinOrderAmount    float64      `gorm:"type:decimal(12,2);default:0" json:"min_order_amount"`
	MaxDiscountAmount *float64     `gorm:"type:decimal(12,2)" json:"max_discount_amount,omitempty"`
	UsageLimit        *int         `json:"usage_limit,omitempty"`
	UsedCount         int          `gorm:"default:0" json:"used_count"`
	ValidFrom         *time.Time   `json:"valid_from,omitempty"`
	ValidUntil        *time.Time   `json:"valid_until,omitempty"`
	IsActive          bool         `gorm:"default:true" json:"is_active"`
	BaseModel

	// Relationships
	Tenant Tenant `gorm:"foreignKey:TenantID" json:"tenant,omitempty"`
}

// TableName specifies the table name for Coupon
func (Coupon) TableName() string {
	return "coupons"
}
