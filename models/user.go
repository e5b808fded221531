package models

import (
	"time"

	"gorm.io/datatypes"
)

// UserStatus type for user account status
type UserStatus string

const (
	UserActive   UserStatus = "active"
	UserInactive UserStatus = "inactive"
	UserBlocked  UserStatus = "blocked"
)

// User represents users table. TenantID is nullable: platform super-admins
// belong to no tenant. Authorization is modeled through user_role_assignments,
// not a direct role column.
type User struct {
	UserID              uint       `gorm:"primaryKey;column:user_id" json:"user_id"`
	TenantID            *uint      `json:"tenant_id,omitempty"`
	Email               string     `gorm:"type:varchar(255);not null" json:"email"`
	Username            *string    `gorm:"type:varchar(100)" json:"username,omitempty"`
	PasswordHash        string     `gorm:"type:varchar(255);not null" json:"-"`
	FirstName           string     `gorm:"type:varchar(100);not null" json:"first_name"`
	LastName            string     `gorm:"type:varchar(100);not null" json:"last_name"`
	Phone               *string    `gorm:"type:varchar(20)" json:"phone,omitempty"`
	AvatarURL           *string    `gorm:"type:varchar(500)" json:"avatar_url,omitempty"`
	Status              UserStatus `gorm:"type:varchar(20);not null;default:'active'" json:"status"`
	EmailVerified       bool       `gorm:"default:false" json:"email_verified"`
	PhoneVerified       bool       `gorm:"default:false" json:"phone_verified"`
	IsLocked            bool       `gorm:"default:false" json:"is_locked"`
	LockedUntil         *time.Time `json:"locked_until,omitempty"`
	FailedLoginAttempts int        `gorm:"default:0" json:"failed_login_attempts"`
	LastLoginAt         *time.Time `json:"last_login_at,omitempty"`
	LastPasswordChange  *time.Time `json:"last_password_change,omitempty"`
	SoftDeleteModel

	// Relationships
	Tenant *Tenant `gorm:"foreignKey:TenantID" json:"tenant,omitempty"`
}

// TableName specifies the table name for User
func (User) TableName() string {
	return "users"
}

// UserRole represents user_roles table
type UserRole struct {
	RoleID       uint    `gorm:"primaryKey;column:role_id" json:"role_id"`
	Name         string  `gorm:"type:varchar(50);not null;unique" json:"name"`
	Description  *string `gorm:"type:text" json:"description,omitempty"`
	IsSystemRole bool    `gorm:"default:false" json:"is_system_role"`
	BaseModel
}

// TableName specifies the table name for UserRole
func (UserRole) TableName() string {
	return "user_roles"
}

// Permission represents permissions table
type Permission struct {
	PermissionID uint    `gorm:"primaryKey;column:permission_id" json:"permission_id"`
	Name         string  `gorm:"type:varchar(100);not null;unique" json:"name"`
	Description  *string `gorm:"type:text" json:"description,omitempty"`
	Module       string  `gorm:"type:varchar(50);not null" json:"module"`
	BaseModel
}

// TableName specifies the table name for Permission
func (Permission) TableName() string {
	return "permissions"
}

// RolePermission represents role_permissions junction table
type RolePermission struct {
	ID           uint `gorm:"primaryKey" json:"id"`
	RoleID       uint `gorm:"not null" json:"role_id"`
	PermissionID uint `gorm:"not null" json:"permission_id"`
	BaseModel

	// Relationships
	Role       UserRole   `gorm:"foreignKey:RoleID" json:"role,omitempty"`
	Permission Permission `gorm:"foreignKey:PermissionID" json:"permission,omitempty"`
}

// TableName specifies the table name for RolePermission
func (RolePermission) TableName() string {
	return "role_permissions"
}

// UserRoleAssignment represents user_role_assignments junction table
type UserRoleAssignment struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	UserID     uint      `gorm:"not null" json:"user_id"`
	RoleID     uint      `gorm:"not null" json:"role_id"`
	AssignedBy *uint     `json:"assigned_by,omitempty"`
	AssignedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"assigned_at"`

	// Relationships
	User User     `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Role UserRole `gorm:"foreignKey:RoleID" json:"role,omitempty"`
}

// TableName specifies the table name for UserRoleAssignment
func (UserRoleAssignment) TableName() string {
	return "user_role_assignments"
}

// UserSession represents user_sessions table
type UserSession struct {
	SessionID    uint       `gorm:"primaryKey;column:session_id" json:"session_id"`
	TenantID     *uint      `json:"tenant_id,omitempty"`
	UserID       uint       `gorm:"not null" json:"user_id"`
	SessionToken string     `gorm:"type:varchar(255);not null;unique" json:"session_token"`
	RefreshToken *string    `gorm:"type:varchar(255)" json:"refresh_token,omitempty"`
	IPAddress    *string    `gorm:"type:varchar(45)" json:"ip_address,omitempty"`
	UserAgent    *string    `gorm:"type:text" json:"user_agent,omitempty"`
	IsActive     bool       `gorm:"default:true" json:"is_active"`
	ExpiresAt    time.Time  `gorm:"not null" json:"expires_at"`
	LastUsedAt   *time.Time `json:"last_used_at,omitempty"`
	BaseModel

	// Relationships
	User User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

// TableName specifies the table name for UserSession
func (UserSession) TableName() string {
	return "user_sessions"
}

// LoginHistory represents login_history table. UserID is nullable so failed
// attempts against unknown emails are still recorded.
type LoginHistory struct {
	ID             uint           `gorm:"primaryKey" json:"id"`
	UserID         *uint          `json:"user_id,omitempty"`
	TenantID       *uint          `json:"tenant_id,omitempty"`
	AttemptedEmail string         `gorm:"type:varchar(255);not null" json:"attempted_email"`
	LoginTime      time.Time      `gorm:"not null;default:CURRENT_TIMESTAMP" json:"login_time"`
	LogoutTime     *time.Time     `json:"logout_time,omitempty"`
	IPAddress      *string        `gorm:"type:varchar(45)" json:"ip_address,omitempty"`
	DeviceInfo     datatypes.JSON `json:"device_info,omitempty"`
	Status         string         `gorm:"type:varchar(20);default:'success'" json:"status"`
}

// TableName specifies the table name for LoginHistory
func (LoginHistory) TableName() string {
	return "login_history"
}

// PasswordHistory represents password_history table
type PasswordHistory struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	UserID       uint      `gorm:"not null" json:"user_id"`
	PasswordHash string    `gorm:"type:varchar(255);not null" json:"-"`
	ChangedAt    time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"changed_at"`
}

// TableName specifies the table name for PasswordHistory
func (PasswordHistory) TableName() string {
	return "password_history"
}
