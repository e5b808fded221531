package models

import (
	"time"

	"gorm.io/datatypes"
)

// NotificationType type for notification delivery channels
type NotificationType string

const (
	NotifyEmail    NotificationType = "email"
	NotifySMS      NotificationType = "sms"
	NotifyWhatsapp NotificationType = "whatsapp"
	NotifyTelegram NotificationType = "telegram"
	NotifyPush     NotificationType = "push"
)

// NotificationStatus type for notification delivery status
type NotificationStatus string

const (
	NotificationPending   NotificationStatus = "pending"
	NotificationSent      NotificationStatus = "sent"
	NotificationFailed    NotificationStatus = "failed"
	NotificationDelivered NotificationStatus = "delivered"
)

// ActivityLog represents activity_logs table
type ActivityLog struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	UserID    *uint          `json:"user_id,omitempty"`
	TenantID  *uint          `json:"tenant_id,omitempty"`
	Action    string         `gorm:"type:varchar(100);not null" json:"action"`
	Meta      datatypes.JSON `json:"meta,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
}

// TableName specifies the table name for ActivityLog
func (ActivityLog) TableName() string {
	return "activity_logs"
}

// OrderHistory represents order_history table. One row per status change,
// written in the same transaction as the change itself.
type OrderHistory struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	OrderID   uint           `gorm:"not null" json:"order_id"`
	OldStatus *OrderStatus   `gorm:"type:varchar(20)" json:"old_status,omitempty"`
	NewStatus OrderStatus    `gorm:"type:varchar(20);not null" json:"new_status"`
	ChangedBy *uint          `json:"changed_by,omitempty"`
	ChangedAt time.Time      `gorm:"not null;default:CURRENT_TIMESTAMP" json:"changed_at"`
	Meta      datatypes.JSON `json:"meta,omitempty"`
}

// TableName specifies the table name for OrderHistory
func (OrderHistory) TableName() string {
	return "order_history"
}

// PaymentHistory represents payment_history table
type PaymentHistory struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	PaymentID uint           `gorm:"not null" json:"payment_id"`
	OldStatus *PaymentStatus `gorm:"type:varchar(20)" json:"old_status,omitempty"`
	NewStatus PaymentStatus  `gorm:"type:varchar(20);not null" json:"new_status"`
	ChangedBy *uint          `json:"changed_by,omitempty"`
	ChangedAt time.Time      `gorm:"not null;default:CURRENT_TIMESTAMP" json:"changed_at"`
	Meta      datatypes.JSON `json:"meta,omitempty"`
}

// TableName specifies the table name for PaymentHistory
func (PaymentHistory) TableName() string {
	return "payment_history"
}

// RefundHistory represents refund_history table
type RefundHistory struct {
	ID        uint          `gorm:"primaryKey" json:"id"`
	RefundID  uint          `gorm:"not null" json:"refund_id"`
	OldStatus *RefundStatus `gorm:"type:varchar(20)" json:"old_status,omitempty"`
	NewStatus RefundStatus  `gorm:"type:varchar(20);not null" json:"new_status"`
	ChangedBy *uint         `json:"changed_by,omitempty"`
	ChangedAt time.Time     `gorm:"not null;default:CURRENT_TIMESTAMP" json:"changed_at"`
}

// TableName specifies the table name for RefundHistory
func (RefundHistory) TableName() string {
	return "refund_history"
}

// SettingsHistory represents settings_history table. Records old/new values
// for any settings table by name; no FK since the source table varies.
type SettingsHistory struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	SettingTable string    `gorm:"type:varchar(50);not null" json:"setting_table"`
	SettingID    uint      `gorm:"not null" json:"setting_id"`
	OldValue     *string   `gorm:"type:text" json:"old_value,omitempty"`
	NewValue     *string   `gorm:"type:text" json:"new_value,omitempty"`
	ChangedBy    *uint     `json:"changed_by,omitempty"`
	ChangedAt    time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"changed_at"`
}

// TableName specifies the table name for SettingsHistory
func (SettingsHistory) TableName() string {
	return "settings_history"
}

// NotificationLog represents notification_logs table
type NotificationLog struct {
	ID        uint               `gorm:"primaryKey" json:"id"`
	TenantID  uint               `gorm:"not null" json:"tenant_id"`
	Type      NotificationType   `gorm:"type:varchar(10);not null" json:"type"`
	Recipient string             `gorm:"type:varchar(255);not null" json:"recipient"`
	Subject   *string            `gorm:"type:varchar(255)" json:"subject,omitempty"`
	Message   string             `gorm:"type:text;not null" json:"message"`
	Status    NotificationStatus `gorm:"type:varchar(10);default:'pending'" json:"status"`
	CreatedAt time.Time          `json:"created_at"`
}

// TableName specifies the table name for NotificationLog
func (NotificationLog) TableName() string {
	return "notification_logs"
}

// APIKey represents api_keys table
type APIKey struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	TenantID    uint           `gorm:"not null" json:"tenant_id"`
	KeyName     string         `gorm:"type:varchar(100);not null" json:"key_name"`
	KeyValue    string         `gorm:"type:varchar(255);not null;unique" json:"-"`
	Permissions datatypes.JSON `json:"permissions,omitempty"`
	IsActive    bool           `gorm:"default:true" json:"is_active"`
	BaseModel
}

// TableName specifies the table name for APIKey
func (APIKey) TableName() string {
	return "api_keys"
}

// File represents files table: upload metadata, the bytes live in the
// external storage service.
type File struct {
	ID         uint    `gorm:"primaryKey" json:"id"`
	TenantID   uint    `gorm:"not null" json:"tenant_id"`
	UploadedBy uint    `gorm:"not null" json:"uploaded_by"`
	FileType   string  `gorm:"type:varchar(50);not null" json:"file_type"`
	URL        string  `gorm:"type:text;not null" json:"url"`
	FileName   *string `gorm:"type:varchar(255)" json:"file_name,omitempty"`
	FileSize   *int64  `json:"file_size,omitempty"`
	MimeType   *string `gorm:"type:varchar(100)" json:"mime_type,omitempty"`
	BaseModel
}

// TableName specifies the table name for File
func (File) TableName() string {
	return "files"
}
