package models

import "gorm.io/datatypes"

// SettingType type for how a key/value setting should be decoded
type SettingType string

const (
	SettingString  SettingType = "string"
	SettingInteger SettingType = "integer"
	SettingBoolean SettingType = "boolean"
	SettingJSON    SettingType = "json"
	SettingDecimal SettingType = "decimal"
)

// PasswordPolicyType type for password policy presets
type PasswordPolicyType string

const (
	PasswordPolicyBasic  PasswordPolicyType = "basic"
	PasswordPolicyMedium PasswordPolicyType = "medium"
	PasswordPolicyStrong PasswordPolicyType = "strong"
	PasswordPolicyCustom PasswordPolicyType = "custom"
)

// UsernamePolicyType type for username format policy
type UsernamePolicyType string

const (
	UsernamePolicyEmail  UsernamePolicyType = "email"
	UsernamePolicyAny    UsernamePolicyType = "any"
	UsernamePolicyCustom UsernamePolicyType = "custom"
)

// RateLimitStrategy type for rate limiting algorithms
type RateLimitStrategy string

const (
	RateLimitFixedWindow   RateLimitStrategy = "fixed_window"
	RateLimitSlidingWindow RateLimitStrategy = "sliding_window"
	RateLimitTokenBucket   RateLimitStrategy = "token_bucket"
)

// SessionStorageType type for session backends
type SessionStorageType string

const (
	SessionStorageRedis    SessionStorageType = "redis"
	SessionStorageDatabase SessionStorageType = "database"
	SessionStorageJWT      SessionStorageType = "jwt"
)

// SessionTimeoutType type for session expiry behavior
type SessionTimeoutType string

const (
	SessionTimeoutAbsolute SessionTimeoutType = "absolute"
	SessionTimeoutSliding  SessionTimeoutType = "sliding"
)

// ServiceStatus type for external service availability
type ServiceStatus string

const (
	ServiceActive      ServiceStatus = "active"
	ServiceMaintenance ServiceStatus = "maintenance"
	ServiceDisabled    ServiceStatus = "disabled"
)

// SecuritySettings represents security_settings table, one row per tenant.
// Frequently-read operational settings use fixed columns rather than
// key/value rows so they stay type-safe and indexable.
type SecuritySettings struct {
	ID                        uint           `gorm:"primaryKey" json:"id"`
	TenantID                  uint           `gorm:"not null;unique" json:"tenant_id"`
	JwtSecretKey              string         `gorm:"type:varchar(255);not null" json:"-"`
	JwtAlgorithm              string         `gorm:"type:varchar(20);default:'HS256'" json:"jwt_algorithm"`
	AccessTokenExpiryMinutes  int            `gorm:"default:30" json:"access_token_expiry_minutes"`
	RefreshTokenExpiryDays    int            `gorm:"default:7" json:"refresh_token_expiry_days"`
	PasswordResetExpiryMins   int            `gorm:"default:30;column:password_reset_expiry_minutes" json:"password_reset_expiry_minutes"`
	MaxLoginAttempts          int            `gorm:"default:5" json:"max_login_attempts"`
	AccountLockoutMinutes     int            `gorm:"default:30" json:"account_lockout_minutes"`
	RequireHTTPS              bool           `gorm:"default:true;column:require_https" json:"require_https"`
	CorsOrigins               datatypes.JSON `json:"cors_origins,omitempty"`
	BaseModel
}

// TableName specifies the table name for SecuritySettings
func (SecuritySettings) TableName() string {
	return "security_settings"
}

// LoginSettings represents login_settings table, one row per tenant
type LoginSettings struct {
	ID                     uint               `gorm:"primaryKey" json:"id"`
	TenantID               uint               `gorm:"not null;unique" json:"tenant_id"`
	PasswordPolicy         PasswordPolicyType `gorm:"type:varchar(10);default:'medium'" json:"password_policy"`
	MinPasswordLength      int                `gorm:"default:8" json:"min_password_length"`
	RequireUppercase       bool               `gorm:"default:true" json:"require_uppercase"`
	RequireLowercase       bool               `gorm:"default:true" json:"require_lowercase"`
	RequireNumbers         bool               `gorm:"default:true" json:"require_numbers"`
	RequireSpecialChars    bool               `gorm:"default:true" json:"require_special_chars"`
	MaxPasswordAgeDays     int                `gorm:"default:90" json:"max_password_age_days"`
	PasswordHistoryCount   int                `gorm:"default:5" json:"password_history_count"`
	MaxLoginAttempts       int                `gorm:"default:5" json:"max_login_attempts"`
	LockoutDurationMinutes int                `gorm:"default:30" json:"lockout_duration_minutes"`
	UsernamePolicy         UsernamePolicyType `gorm:"type:varchar(10);default:'email'" json:"username_policy"`
	MfaRequired            bool               `gorm:"default:false" json:"mfa_required"`
	BaseModel
}

// TableName specifies the table name for LoginSettings
func (LoginSettings) TableName() string {
	return "login_settings"
}

// SessionSettings represents session_settings table, one row per tenant
type SessionSettings struct {
	ID                     uint               `gorm:"primaryKey" json:"id"`
	TenantID               uint               `gorm:"not null;unique" json:"tenant_id"`
	StorageType            SessionStorageType `gorm:"type:varchar(10);default:'redis'" json:"storage_type"`
	TimeoutType            SessionTimeoutType `gorm:"type:varchar(10);default:'sliding'" json:"timeout_type"`
	SessionTimeoutMinutes  int                `gorm:"default:30" json:"session_timeout_minutes"`
	AbsoluteTimeoutMinutes int                `gorm:"default:480" json:"absolute_timeout_minutes"`
	SlidingTimeoutMinutes  int                `gorm:"default:30" json:"sliding_timeout_minutes"`
	MaxConcurrentSessions  int                `gorm:"default:5" json:"max_concurrent_sessions"`
	RegenerateSession      bool               `gorm:"default:true" json:"regenerate_session"`
	SecureCookies          bool               `gorm:"default:true" json:"secure_cookies"`
	HTTPOnlyCookies        bool               `gorm:"default:true;column:http_only_cookies" json:"http_only_cookies"`
	SameSitePolicy         string             `gorm:"type:varchar(20);default:'lax'" json:"same_site_policy"`
	CookieDomain           *string            `gorm:"type:varchar(255)" json:"cookie_domain,omitempty"`
	CookiePath             string             `gorm:"type:varchar(100);default:'/'" json:"cookie_path"`
	EnableSessionCleanup   bool               `gorm:"default:true" json:"enable_session_cleanup"`
	CleanupIntervalMinutes int                `gorm:"default:60" json:"cleanup_interval_minutes"`
	BaseModel
}

// TableName specifies the table name for SessionSettings
func (SessionSettings) TableName() string {
	return "session_settings"
}

// RateLimitSettings represents rate_limit_settings table, one row per tenant
type RateLimitSettings struct {
	ID                uint              `gorm:"primaryKey" json:"id"`
	TenantID          uint              `gorm:"not null;unique" json:"tenant_id"`
	Strategy          RateLimitStrategy `gorm:"type:varchar(20);default:'fixed_window'" json:"strategy"`
	RequestsPerMinute int               `gorm:"default:60" json:"requests_per_minute"`
	RequestsPerHour   int               `gorm:"default:1000" json:"requests_per_hour"`
	RequestsPerDay    int               `gorm:"default:10000" json:"requests_per_day"`
	BurstCapacity     int               `gorm:"default:10" json:"burst_capacity"`
	Enabled           bool              `gorm:"default:true" json:"enabled"`
	BaseModel
}

// TableName specifies the table name for RateLimitSettings
func (RateLimitSettings) TableName() string {
	return "rate_limit_settings"
}

// LoggingSettings represents logging_settings table, one row per tenant
type LoggingSettings struct {
	ID                uint   `gorm:"primaryKey" json:"id"`
	TenantID          uint   `gorm:"not null;unique" json:"tenant_id"`
	LogLevel          string `gorm:"type:varchar(10);default:'INFO'" json:"log_level"`
	EnableAuditLog    bool   `gorm:"default:true" json:"enable_audit_log"`
	EnableAccessLog   bool   `gorm:"default:true" json:"enable_access_log"`
	EnableSecurityLog bool   `gorm:"default:true" json:"enable_security_log"`
	RetentionDays     int    `gorm:"default:30" json:"retention_days"`
	BaseModel
}

// TableName specifies the table name for LoggingSettings
func (LoggingSettings) TableName() string {
	return "logging_settings"
}

// TenantSetting represents tenant_settings table: loosely-structured
// per-tenant key/value configuration (feature flags, gateway credentials).
// Key is unique per tenant.
type TenantSetting struct {
	ID           uint        `gorm:"primaryKey" json:"id"`
	TenantID     uint        `gorm:"not null" json:"tenant_id"`
	SettingKey   string      `gorm:"type:varchar(100);not null" json:"setting_key"`
	SettingValue *string     `gorm:"type:text" json:"setting_value,omitempty"`
	SettingType  SettingType `gorm:"type:varchar(10);default:'string'" json:"setting_type"`
	BaseModel
}

// TableName specifies the table name for TenantSetting
func (TenantSetting) TableName() string {
	return "tenant_settings"
}

// SystemSetting represents system_settings table: platform-wide key/value
// configuration shared by all tenants.
type SystemSetting struct {
	ID           uint        `gorm:"primaryKey" json:"id"`
	SettingKey   string      `gorm:"type:varchar(100);not null;unique" json:"setting_key"`
	SettingValue *string     `gorm:"type:text" json:"setting_value,omitempty"`
	SettingType  SettingType `gorm:"type:varchar(10);default:'string'" json:"setting_type"`
	BaseModel
}

// TableName specifies the table name for SystemSetting
func (SystemSetting) TableName() string {
	return "system_settings"
}

// InfrastructureSetting represents infrastructure_settings table. Service
// name is unique per tenant.
type InfrastructureSetting struct {
	ID               uint           `gorm:"primaryKey" json:"id"`
	TenantID         uint           `gorm:"not null" json:"tenant_id"`
	ServiceName      string         `gorm:"type:varchar(100);not null" json:"service_name"`
	ServiceType      string         `gorm:"type:varchar(50);not null" json:"service_type"`
	Host             string         `gorm:"type:varchar(255);not null" json:"host"`
	Port             *int           `json:"port,omitempty"`
	Username         *string        `gorm:"type:varchar(255)" json:"username,omitempty"`
	Password         *string        `gorm:"type:varchar(255)" json:"-"`
	DatabaseName     *string        `gorm:"type:varchar(100)" json:"database_name,omitempty"`
	ConnectionString *string        `gorm:"type:text" json:"connection_string,omitempty"`
	MaxConnections   int            `gorm:"default:20" json:"max_connections"`
	TimeoutSeconds   int            `gorm:"default:30" json:"timeout_seconds"`
	Status           ServiceStatus  `gorm:"type:varchar(20);default:'active'" json:"status"`
	HealthCheckURL   *string        `gorm:"type:varchar(500)" json:"health_check_url,omitempty"`
	Metadata         datatypes.JSON `json:"metadata,omitempty"`
	BaseModel
}

// TableName specifies the table name for InfrastructureSetting
func (InfrastructureSetting) TableName() string {
	return "infrastructure_settings"
}

// ServiceURL represents service_urls table: base URLs of the external
// collaborator services (auth, checkout, payment gateway, notifications,
// uploads). The services themselves live outside this repository.
type ServiceURL struct {
	ID                    uint          `gorm:"primaryKey" json:"id"`
	TenantID              uint          `gorm:"not null" json:"tenant_id"`
	ServiceName           string        `gorm:"type:varchar(100);not null" json:"service_name"`
	BaseURL               string        `gorm:"type:varchar(500);not null" json:"base_url"`
	HealthEndpoint        *string       `gorm:"type:varchar(200)" json:"health_endpoint,omitempty"`
	APIVersion            *string       `gorm:"type:varchar(20);column:api_version" json:"api_version,omitempty"`
	TimeoutMs             int           `gorm:"default:30000;column:timeout_ms" json:"timeout_ms"`
	RetryAttempts         int           `gorm:"default:3" json:"retry_attempts"`
	CircuitBreakerEnabled bool          `gorm:"default:true" json:"circuit_breaker_enabled"`
	Status                ServiceStatus `gorm:"type:varchar(20);default:'active'" json:"status"`
	BaseModel
}

// TableName specifies the table name for ServiceURL
func (ServiceURL) TableName() string {
	return "service_urls"
}
