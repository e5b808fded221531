package models

// BankStatus type for bank operational status
type BankStatus string

const (
	BankActive      BankStatus = "active"
	BankInactive    BankStatus = "inactive"
	BankMaintenance BankStatus = "maintenance"
)

// UpiType type for UPI handle visibility
type UpiType string

const (
	UpiPublic  UpiType = "public"
	UpiPrivate UpiType = "private"
)

// Country represents countries table
type Country struct {
	CountryID    uint   `gorm:"primaryKey;column:country_id" json:"country_id"`
	Name         string `gorm:"type:varchar(100);not null;unique" json:"name"`
	Code         string `gorm:"type:varchar(3);not null;unique" json:"code"`
	CurrencyCode string `gorm:"type:varchar(3);not null" json:"currency_code"`
	IsActive     bool   `gorm:"default:true" json:"is_active"`
	BaseModel
}

// TableName specifies the table name for Country
func (Country) TableName() string {
	return "countries"
}

// Region represents regions table
type Region struct {
	RegionID  uint   `gorm:"primaryKey;column:region_id" json:"region_id"`
	CountryID uint   `gorm:"not null" json:"country_id"`
	Name      string `gorm:"type:varchar(100);not null" json:"name"`
	Code      string `gorm:"type:varchar(10);not null" json:"code"`
	BaseModel

	// Relationships
	Country Country `gorm:"foreignKey:CountryID" json:"country,omitempty"`
}

// TableName specifies the table name for Region
func (Region) TableName() string {
	return "regions"
}

// Bank represents banks table
type Bank struct {
	BankID    uint       `gorm:"primaryKey;column:bank_id" json:"bank_id"`
	Name      string     `gorm:"type:varchar(150);not null" json:"name"`
	Code      string     `gorm:"type:varchar(20);not null;unique" json:"code"`
	CountryID *uint      `json:"country_id,omitempty"`
	SwiftCode *string    `gorm:"type:varchar(11)" json:"swift_code,omitempty"`
	UpiHandle *string    `gorm:"type:varchar(50)" json:"upi_handle,omitempty"`
	UpiType   *UpiType   `gorm:"type:varchar(10)" json:"upi_type,omitempty"`
	Status    BankStatus `gorm:"type:varchar(20);not null;default:'active'" json:"status"`
	BaseModel

	// Relationships
	Country *Country `gorm:"foreignKey:CountryID" json:"country,omitempty"`
}

// TableName specifies the table name for Bank
func (Bank) TableName() string {
	return "banks"
}
